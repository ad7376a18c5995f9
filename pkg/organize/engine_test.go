package organize

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/romsort/romsort/pkg/models"
)

// EngineTestHelper builds source trees and operations for engine tests
type EngineTestHelper struct {
	t          *testing.T
	SourceRoot string
	TargetRoot string
}

func NewEngineTestHelper(t *testing.T) *EngineTestHelper {
	t.Helper()
	base := t.TempDir()
	h := &EngineTestHelper{
		t:          t,
		SourceRoot: filepath.Join(base, "source"),
		TargetRoot: filepath.Join(base, "sorted"),
	}
	if err := os.MkdirAll(h.SourceRoot, 0755); err != nil {
		t.Fatalf("Failed to create source root: %v", err)
	}
	return h
}

// AddFile creates one file with the given content under a source folder
func (h *EngineTestHelper) AddFile(folder, name, content string) {
	h.t.Helper()
	path := filepath.Join(h.SourceRoot, folder, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		h.t.Fatalf("Failed to create folder: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		h.t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// Operation returns a valid operation for the helper's roots
func (h *EngineTestHelper) Operation() *models.OrganizeOperation {
	return &models.OrganizeOperation{
		ID:             "test-run",
		SourcePath:     h.SourceRoot,
		TargetPath:     h.TargetRoot,
		RegionalPolicy: models.PolicyConsolidated,
		SkipIdentical:  true,
		VerifyCopies:   true,
		NormalizeNames: true,
		MaxWorkers:     2,
		BufferSize:     64 * 1024,
	}
}

// Run builds an engine pinned to the aggressive strategy and runs it
func (h *EngineTestHelper) Run(op *models.OrganizeOperation) *models.OrganizeReport {
	h.t.Helper()
	report, err := h.start(context.Background(), op)
	if err != nil {
		h.t.Fatalf("Run() error = %v", err)
	}
	return report
}

func (h *EngineTestHelper) start(ctx context.Context, op *models.OrganizeOperation) (*models.OrganizeReport, error) {
	h.t.Helper()
	engine, err := NewEngine(op, &fakeEnv{version: bareVersion, cpus: 2}, nil)
	if err != nil {
		h.t.Fatalf("NewEngine() error = %v", err)
	}
	return engine.Run(ctx)
}

func (h *EngineTestHelper) readTarget(parts ...string) string {
	h.t.Helper()
	data, err := os.ReadFile(filepath.Join(append([]string{h.TargetRoot}, parts...)...))
	if err != nil {
		h.t.Fatalf("Failed to read target file: %v", err)
	}
	return string(data)
}

func TestEngineOrganizesByPlatform(t *testing.T) {
	helper := NewEngineTestHelper(t)
	helper.AddFile("Nintendo - Nintendo Entertainment System (Retool)", "mario.nes", "mario data")
	helper.AddFile("Nintendo - Nintendo Entertainment System (Retool)", "zelda.nes", "zelda data")
	helper.AddFile("Nintendo - Game Boy (Retool)", "tetris.gb", "tetris data")

	report := helper.Run(helper.Operation())

	if report.Status != models.StatusSuccess {
		t.Fatalf("status = %s, want success (errors: %v)", report.Status, report.Errors)
	}
	if report.Stats.FilesCopied != 3 {
		t.Errorf("FilesCopied = %d, want 3", report.Stats.FilesCopied)
	}
	if got := helper.readTarget("nes", "mario.nes"); got != "mario data" {
		t.Errorf("nes/mario.nes = %q", got)
	}
	if got := helper.readTarget("gb", "tetris.gb"); got != "tetris data" {
		t.Errorf("gb/tetris.gb = %q", got)
	}
	if report.Stats.BytesCopied == 0 {
		t.Error("BytesCopied should be non-zero")
	}
}

// Nested source files land flat in the platform directory
func TestEngineFlattensNestedFiles(t *testing.T) {
	helper := NewEngineTestHelper(t)
	helper.AddFile("Nintendo - Game Boy (Retool)", filepath.Join("USA", "kirby.gb"), "kirby data")

	report := helper.Run(helper.Operation())

	if report.Stats.FilesCopied != 1 {
		t.Fatalf("FilesCopied = %d, want 1", report.Stats.FilesCopied)
	}
	if got := helper.readTarget("gb", "kirby.gb"); got != "kirby data" {
		t.Errorf("gb/kirby.gb = %q", got)
	}
}

func TestEngineIdempotentRerun(t *testing.T) {
	helper := NewEngineTestHelper(t)
	helper.AddFile("Nintendo - Nintendo Entertainment System (Retool)", "mario.nes", "mario data")
	helper.AddFile("Nintendo - Game Boy (Retool)", "tetris.gb", "tetris data")

	first := helper.Run(helper.Operation())
	if first.Stats.FilesCopied != 2 {
		t.Fatalf("first run FilesCopied = %d, want 2", first.Stats.FilesCopied)
	}

	second := helper.Run(helper.Operation())
	if second.Stats.FilesCopied != 0 {
		t.Errorf("second run FilesCopied = %d, want 0", second.Stats.FilesCopied)
	}
	if second.Stats.SkippedDuplicate != 2 {
		t.Errorf("second run SkippedDuplicate = %d, want 2", second.Stats.SkippedDuplicate)
	}
	if second.Status != models.StatusSuccess {
		t.Errorf("second run status = %s, want success", second.Status)
	}
}

// Scenario: two different files named game.nes from two source folders
// must both survive with distinct content
func TestEngineCollisionRenaming(t *testing.T) {
	helper := NewEngineTestHelper(t)
	helper.AddFile("Nintendo - Nintendo Entertainment System (Retool)", "game.nes", "US revision")
	helper.AddFile("Nintendo - Famicom (Parent-Clone) (Retool)", "game.nes", "JP revision!")

	report := helper.Run(helper.Operation())

	if report.Status != models.StatusSuccess {
		t.Fatalf("status = %s (errors: %v)", report.Status, report.Errors)
	}
	if report.Stats.FilesCopied != 2 {
		t.Errorf("FilesCopied = %d, want 2", report.Stats.FilesCopied)
	}
	if report.Stats.FilesRenamed != 1 {
		t.Errorf("FilesRenamed = %d, want 1", report.Stats.FilesRenamed)
	}

	entries, err := os.ReadDir(filepath.Join(helper.TargetRoot, "nes"))
	if err != nil {
		t.Fatalf("Failed to list target: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("target holds %d files, want 2", len(entries))
	}

	contents := make(map[string]bool)
	for _, e := range entries {
		contents[helper.readTarget("nes", e.Name())] = true
	}
	if !contents["US revision"] || !contents["JP revision!"] {
		t.Errorf("target contents = %v, want both revisions intact", contents)
	}
}

// Scenario: two source folders each ship game.nes with the same bytes.
// The second sighting is a duplicate, not a collision, and must be
// skipped instead of landing as a renamed twin.
func TestEngineDeduplicatesAcrossFolders(t *testing.T) {
	helper := NewEngineTestHelper(t)
	helper.AddFile("Nintendo - Nintendo Entertainment System (Retool)", "game.nes", "same bytes")
	helper.AddFile("Nintendo - Famicom (Parent-Clone) (Retool)", "game.nes", "same bytes")

	op := helper.Operation()
	op.MaxWorkers = 1
	report := helper.Run(op)

	if report.Status != models.StatusSuccess {
		t.Fatalf("status = %s (errors: %v)", report.Status, report.Errors)
	}
	if report.Stats.FilesCopied != 1 {
		t.Errorf("FilesCopied = %d, want 1", report.Stats.FilesCopied)
	}
	if report.Stats.FilesRenamed != 0 {
		t.Errorf("FilesRenamed = %d, want 0", report.Stats.FilesRenamed)
	}
	if report.Stats.SkippedDuplicate != 1 {
		t.Errorf("SkippedDuplicate = %d, want 1", report.Stats.SkippedDuplicate)
	}

	entries, err := os.ReadDir(filepath.Join(helper.TargetRoot, "nes"))
	if err != nil {
		t.Fatalf("Failed to list target: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "game.nes" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("target dir = %v, want only game.nes", names)
	}
}

// Organized copies keep the mode their source carried
func TestEnginePreservesFileMode(t *testing.T) {
	helper := NewEngineTestHelper(t)
	helper.AddFile("Nintendo - Nintendo Entertainment System (Retool)", "mario.nes", "mario data")
	source := filepath.Join(helper.SourceRoot, "Nintendo - Nintendo Entertainment System (Retool)", "mario.nes")
	if err := os.Chmod(source, 0640); err != nil {
		t.Fatalf("Failed to chmod source: %v", err)
	}

	report := helper.Run(helper.Operation())

	if report.Status != models.StatusSuccess {
		t.Fatalf("status = %s (errors: %v)", report.Status, report.Errors)
	}
	info, err := os.Stat(filepath.Join(helper.TargetRoot, "nes", "mario.nes"))
	if err != nil {
		t.Fatalf("target missing: %v", err)
	}
	if info.Mode().Perm() != 0640 {
		t.Errorf("target mode = %o, want 640", info.Mode().Perm())
	}
}

// A 0-byte source is a legitimate file and must copy to a 0-byte target
func TestEngineZeroByteSource(t *testing.T) {
	helper := NewEngineTestHelper(t)
	helper.AddFile("Nintendo - Nintendo Entertainment System (Retool)", "empty.nes", "")

	report := helper.Run(helper.Operation())

	if report.Status != models.StatusSuccess {
		t.Fatalf("status = %s (errors: %v)", report.Status, report.Errors)
	}
	if report.Stats.FilesCopied != 1 {
		t.Errorf("FilesCopied = %d, want 1", report.Stats.FilesCopied)
	}
	info, err := os.Stat(filepath.Join(helper.TargetRoot, "nes", "empty.nes"))
	if err != nil {
		t.Fatalf("target missing: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("target size = %d, want 0", info.Size())
	}
}

func TestEngineDryRunParity(t *testing.T) {
	helper := NewEngineTestHelper(t)
	helper.AddFile("Nintendo - Nintendo Entertainment System (Retool)", "game.nes", "US revision")
	helper.AddFile("Nintendo - Famicom (Parent-Clone) (Retool)", "game.nes", "JP revision!")
	helper.AddFile("Nintendo - Game Boy (Retool)", "tetris.gb", "tetris data")

	dryOp := helper.Operation()
	dryOp.DryRun = true
	dry := helper.Run(dryOp)

	if _, err := os.Stat(helper.TargetRoot); !os.IsNotExist(err) {
		t.Error("dry run must not create the target tree")
	}

	live := helper.Run(helper.Operation())

	if dry.Stats.FilesCopied != live.Stats.FilesCopied {
		t.Errorf("FilesCopied: dry %d, live %d", dry.Stats.FilesCopied, live.Stats.FilesCopied)
	}
	if dry.Stats.FilesRenamed != live.Stats.FilesRenamed {
		t.Errorf("FilesRenamed: dry %d, live %d", dry.Stats.FilesRenamed, live.Stats.FilesRenamed)
	}
	if dry.Stats.SkippedDuplicate != live.Stats.SkippedDuplicate {
		t.Errorf("SkippedDuplicate: dry %d, live %d", dry.Stats.SkippedDuplicate, live.Stats.SkippedDuplicate)
	}
	if dry.Stats.BytesCopied != live.Stats.BytesCopied {
		t.Errorf("BytesCopied: dry %d, live %d", dry.Stats.BytesCopied, live.Stats.BytesCopied)
	}
	if len(dry.Stats.DirsCreated) != len(live.Stats.DirsCreated) {
		t.Errorf("DirsCreated: dry %v, live %v", dry.Stats.DirsCreated, live.Stats.DirsCreated)
	}
}

func TestEngineSubformatRouting(t *testing.T) {
	helper := NewEngineTestHelper(t)
	helper.AddFile("Nintendo - Nintendo 64 (ByteSwapped) (Retool)", "game.v64", "swapped bytes")
	helper.AddFile("Nintendo - Nintendo 64 (Retool)", "game.z64", "native bytes")

	report := helper.Run(helper.Operation())

	if report.Status != models.StatusSuccess {
		t.Fatalf("status = %s (errors: %v)", report.Status, report.Errors)
	}
	if got := helper.readTarget("n64", "byteswapped", "game.v64"); got != "swapped bytes" {
		t.Errorf("byteswapped content = %q", got)
	}
	if got := helper.readTarget("n64", "standard", "game.z64"); got != "native bytes" {
		t.Errorf("standard content = %q", got)
	}
}

func TestEnginePlatformSelection(t *testing.T) {
	helper := NewEngineTestHelper(t)
	helper.AddFile("Nintendo - Nintendo Entertainment System (Retool)", "mario.nes", "mario data")
	helper.AddFile("Nintendo - Game Boy (Retool)", "tetris.gb", "tetris data")

	op := helper.Operation()
	op.Platforms = []string{"nes"}
	report := helper.Run(op)

	if report.Stats.PlatformsFound != 2 {
		t.Errorf("PlatformsFound = %d, want 2", report.Stats.PlatformsFound)
	}
	if report.Stats.PlatformsSelected != 1 {
		t.Errorf("PlatformsSelected = %d, want 1", report.Stats.PlatformsSelected)
	}
	if report.Stats.FilesCopied != 1 {
		t.Errorf("FilesCopied = %d, want 1", report.Stats.FilesCopied)
	}
	if _, err := os.Stat(filepath.Join(helper.TargetRoot, "gb")); !os.IsNotExist(err) {
		t.Error("unselected platform must not be copied")
	}
}

func TestEngineSkipsUnclassifiedFiles(t *testing.T) {
	helper := NewEngineTestHelper(t)
	helper.AddFile("Nintendo - Nintendo Entertainment System (Retool)", "mario.nes", "mario data")
	helper.AddFile("Random Backup Stuff", "save.bin", "save data")

	report := helper.Run(helper.Operation())

	if report.Stats.SkippedUnknown != 1 {
		t.Errorf("SkippedUnknown = %d, want 1", report.Stats.SkippedUnknown)
	}
	if report.Stats.FilesCopied != 1 {
		t.Errorf("FilesCopied = %d, want 1", report.Stats.FilesCopied)
	}
}

func TestEngineCancelledBeforeStart(t *testing.T) {
	helper := NewEngineTestHelper(t)
	helper.AddFile("Nintendo - Nintendo Entertainment System (Retool)", "mario.nes", "mario data")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := helper.start(ctx, helper.Operation())
	if err == nil {
		t.Fatal("Run() should report the cancellation")
	}
	if report.Status != models.StatusCancelled {
		t.Errorf("status = %s, want cancelled", report.Status)
	}
}

func TestEngineProgressCallback(t *testing.T) {
	helper := NewEngineTestHelper(t)
	helper.AddFile("Nintendo - Nintendo Entertainment System (Retool)", "mario.nes", "mario data")
	helper.AddFile("Nintendo - Nintendo Entertainment System (Retool)", "zelda.nes", "zelda data")

	op := helper.Operation()
	engine, err := NewEngine(op, &fakeEnv{version: bareVersion, cpus: 1}, nil)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	var lastProcessed, lastTotal int
	engine.SetProgress(func(processed, total int, label string) {
		lastProcessed, lastTotal = processed, total
	})

	if _, err := engine.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if lastProcessed != 2 || lastTotal != 2 {
		t.Errorf("final progress = %d/%d, want 2/2", lastProcessed, lastTotal)
	}
}

func TestEngineReplacesWhenSkipIdenticalDisabled(t *testing.T) {
	helper := NewEngineTestHelper(t)
	helper.AddFile("Nintendo - Nintendo Entertainment System (Retool)", "mario.nes", "mario data")

	helper.Run(helper.Operation())

	op := helper.Operation()
	op.SkipIdentical = false
	second := helper.Run(op)

	if second.Stats.FilesReplaced != 1 {
		t.Errorf("FilesReplaced = %d, want 1", second.Stats.FilesReplaced)
	}
	if second.Stats.SkippedDuplicate != 0 {
		t.Errorf("SkippedDuplicate = %d, want 0", second.Stats.SkippedDuplicate)
	}
}
