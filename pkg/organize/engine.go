// Package organize contains the collision-safe copy engine: per-file
// copy decisions, target path resolution, atomic physical copies with
// retry, and the folder-granularity worker pool that drives them.
package organize

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/romsort/romsort/pkg/classify"
	"github.com/romsort/romsort/pkg/hashing"
	"github.com/romsort/romsort/pkg/logging"
	"github.com/romsort/romsort/pkg/models"
	"github.com/romsort/romsort/pkg/ratelimit"
	"github.com/romsort/romsort/pkg/scan"
)

// ProgressFunc receives bounded-frequency progress updates. It is
// purely informational; a nil callback changes nothing about the run.
type ProgressFunc func(processed, total int, label string)

// minimum interval between progress callbacks
const progressInterval = 100 * time.Millisecond

// workUnit is one source folder's complete file list, always processed
// sequentially inside a single worker so no two workers issue
// concurrent I/O against the same source directory
type workUnit struct {
	Folder   string
	Platform string
}

// Engine runs one organize operation end to end: scan, classify,
// select, then copy with the strategy-chosen worker pool
type Engine struct {
	op       *models.OrganizeOperation
	scanner  *scan.Scanner
	decider  *Decider
	resolver *Resolver
	copier   *Copier
	strategy Strategy
	logger   logging.Logger
	stats    *models.OrganizeStats

	progress   ProgressFunc
	progressMu sync.Mutex
	processed  int
	total      int
	lastReport time.Time

	errMu  sync.Mutex
	errors []models.FileError

	chunkCount int64
}

// NewEngine builds an engine for the operation. env selects the
// concurrency strategy and may be nil for the real host environment.
func NewEngine(op *models.OrganizeOperation, env Environment, logger logging.Logger) (*Engine, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	if env == nil {
		env = NewHostEnvironment()
	}

	strategy := SelectStrategy(env, op.SourcePath, op.TargetPath)
	if op.MaxWorkers > 0 && op.MaxWorkers < strategy.Workers {
		strategy.Workers = op.MaxWorkers
	}

	classifier := classify.NewClassifier(op.RegionalPolicy)
	classifier.SetNormalizeEnabled(op.NormalizeNames)

	scanner := scan.NewScanner(classifier, logger)
	scanner.SetIncludeEmptyDirs(op.IncludeEmptyDirs)

	hasher := hashing.NewHasher()
	limiter := ratelimit.NewLimiter(op.BandwidthLimit)

	return &Engine{
		op:       op,
		scanner:  scanner,
		decider:  NewDecider(hasher),
		resolver: NewResolver(),
		copier:   NewCopier(hasher, strategy, limiter, op.BufferSize, op.VerifyCopies, logger),
		strategy: strategy,
		logger:   logger,
	}, nil
}

// SetProgress installs the progress callback. Must be called before Run.
func (e *Engine) SetProgress(fn ProgressFunc) {
	e.progress = fn
}

// Strategy returns the concurrency strategy selected for this run
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Run executes the operation and always returns a report; the error is
// non-nil only when the run could not start at all. File-level failures
// are recorded in the report and never abort the run.
func (e *Engine) Run(ctx context.Context) (*models.OrganizeReport, error) {
	e.stats = models.NewOrganizeStats()
	started := time.Now()
	e.op.StartedAt = &started

	report := &models.OrganizeReport{
		OperationID: e.op.ID,
		SourcePath:  e.op.SourcePath,
		TargetPath:  e.op.TargetPath,
		Policy:      e.op.RegionalPolicy,
		DryRun:      e.op.DryRun,
		StartTime:   started,
	}

	e.logger.Info(ctx, "organize run starting", logging.Fields{
		"operation_id": e.op.ID,
		"source":       e.op.SourcePath,
		"target":       e.op.TargetPath,
		"policy":       string(e.op.RegionalPolicy),
		"strategy":     e.strategy.Name,
		"workers":      e.strategy.Workers,
		"dry_run":      e.op.DryRun,
	})

	scanResult, err := e.scanner.Scan(ctx, e.op.SourcePath, e.op.TargetPath)
	if err != nil {
		report.Status = models.StatusFailed
		if errors.Is(err, context.Canceled) {
			report.Status = models.StatusCancelled
		}
		e.finish(report)
		return report, fmt.Errorf("scan failed: %w", err)
	}

	selected := e.selectPlatforms(scanResult)
	units, total := buildWorkUnits(selected)

	e.stats.SetDiscovered(len(scanResult.Platforms), len(selected), total)
	e.stats.SetSkippedUnknown(scanResult.Stats.UnclassifiedFiles)
	e.total = total

	e.runWorkers(ctx, units)

	report.Errors = e.errors
	report.Status = e.status(ctx)
	e.finish(report)

	e.logger.Info(ctx, "organize run finished", logging.Fields{
		"operation_id": e.op.ID,
		"status":       string(report.Status),
		"copied":       report.Stats.FilesCopied,
		"replaced":     report.Stats.FilesReplaced,
		"renamed":      report.Stats.FilesRenamed,
		"skipped":      report.Stats.SkippedDuplicate,
		"errored":      report.Stats.FilesErrored,
		"bytes":        report.Stats.BytesCopied,
	})
	return report, nil
}

// selectPlatforms applies the operation's platform restriction to the
// scan result; an empty restriction selects everything discovered
func (e *Engine) selectPlatforms(result *models.ScanResult) map[string]*models.PlatformRecord {
	if len(e.op.Platforms) == 0 {
		return result.Platforms
	}
	selected := make(map[string]*models.PlatformRecord)
	for _, code := range e.op.Platforms {
		if record, ok := result.Platforms[code]; ok {
			selected[code] = record
		}
	}
	return selected
}

// buildWorkUnits flattens the selection into one unit per source
// folder, ordered deterministically
func buildWorkUnits(selected map[string]*models.PlatformRecord) ([]workUnit, int) {
	codes := make([]string, 0, len(selected))
	for code := range selected {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var units []workUnit
	total := 0
	for _, code := range codes {
		record := selected[code]
		total += record.FileCount
		for _, folder := range record.SourceFolders {
			units = append(units, workUnit{Folder: folder, Platform: code})
		}
	}
	return units, total
}

// runWorkers drives the units through a fixed-size pool. Cancellation
// stops new units from being submitted; units already running finish
// their current file and stop between files.
func (e *Engine) runWorkers(ctx context.Context, units []workUnit) {
	semaphore := make(chan struct{}, e.strategy.Workers)
	var wg sync.WaitGroup

	for _, unit := range units {
		if ctx.Err() != nil {
			break
		}

		semaphore <- struct{}{}
		wg.Add(1)

		go func(unit workUnit) {
			defer wg.Done()
			defer func() { <-semaphore }()
			defer func() {
				if r := recover(); r != nil {
					e.logger.Error(ctx, "worker panic", fmt.Errorf("%v", r), logging.Fields{
						"folder": unit.Folder,
					})
					e.stats.AddErrored()
					e.recordError(unit.Folder, "", 0, fmt.Sprintf("worker panic: %v", r))
				}
			}()
			e.processFolder(ctx, unit)
		}(unit)
	}

	wg.Wait()
}

// processFolder copies every recognized file of one source folder, in
// listing order, into the folder's platform directory
func (e *Engine) processFolder(ctx context.Context, unit workUnit) {
	files, err := e.scanner.ListROMFiles(ctx, e.op.SourcePath, unit.Folder)
	if err != nil {
		e.stats.AddErrored()
		e.recordError(filepath.Join(e.op.SourcePath, unit.Folder), "", 0,
			fmt.Sprintf("failed to list folder: %v", err))
		return
	}

	targetDir := TargetDir(e.op.TargetPath, unit.Platform, unit.Folder)
	if err := e.ensureTargetDir(targetDir); err != nil {
		e.stats.AddErroredN(len(files))
		e.recordError(filepath.Join(e.op.SourcePath, unit.Folder), targetDir, 0,
			fmt.Sprintf("failed to create target directory: %v", err))
		return
	}

	for _, file := range files {
		if ctx.Err() != nil {
			return
		}
		e.processFile(ctx, unit, targetDir, file)
		e.chunkPause(ctx)
	}
}

// processFile makes the copy decision for one file and carries it out
func (e *Engine) processFile(ctx context.Context, unit workUnit, targetDir string, file models.FileEntry) {
	filename := filepath.Base(file.AbsolutePath)
	basePath := filepath.Join(targetDir, filename)

	if !e.resolver.Claim(basePath) {
		// Another file in this run already owns the base name. If its
		// copy has landed and the bytes match, this is a duplicate, not
		// a collision, and re-copying would fabricate a renamed twin.
		decision, detail := e.decider.Decide(ctx, file.AbsolutePath, basePath)
		if decision == models.DecisionIdenticalHash {
			e.stats.AddSkippedDuplicate()
			e.logger.Debug(ctx, "identical file skipped", logging.Fields{
				"source": file.AbsolutePath,
				"target": basePath,
				"detail": detail,
			})
			e.tick(filename)
			return
		}
		e.renameAndCopy(ctx, unit, file, basePath)
		return
	}

	decision, detail := e.decider.Decide(ctx, file.AbsolutePath, basePath)

	switch decision.Action() {
	case models.ActionCopy:
		e.copyTo(ctx, file, basePath, false, models.RenameNone)

	case models.ActionSkip:
		if e.op.SkipIdentical {
			e.stats.AddSkippedDuplicate()
			e.logger.Debug(ctx, "identical file skipped", logging.Fields{
				"source": file.AbsolutePath,
				"target": basePath,
			})
			e.tick(filename)
			return
		}
		e.copyTo(ctx, file, basePath, true, models.RenameNone)

	case models.ActionReplace, models.ActionForceCopy:
		e.logger.Warn(ctx, "inconclusive comparison, copying anyway", logging.Fields{
			"source":   file.AbsolutePath,
			"target":   basePath,
			"decision": string(decision),
			"detail":   detail,
		})
		e.copyTo(ctx, file, basePath, true, models.RenameNone)

	case models.ActionRename:
		e.logger.Info(ctx, "name collision with different content", logging.Fields{
			"source":   file.AbsolutePath,
			"target":   basePath,
			"decision": string(decision),
			"detail":   detail,
		})
		e.renameAndCopy(ctx, unit, file, basePath)
	}
}

// renameAndCopy resolves a disambiguated path for a confirmed collision
// and copies there
func (e *Engine) renameAndCopy(ctx context.Context, unit workUnit, file models.FileEntry, basePath string) {
	resolution := e.resolver.ResolveCollision(basePath, unit.Folder)
	if resolution.Reason == models.RenameExhausted {
		e.stats.AddErrored()
		e.recordError(file.AbsolutePath, basePath, 0, "too many duplicates for this filename")
		e.tick(filepath.Base(basePath))
		return
	}

	e.logger.Info(ctx, "collision rename", logging.Fields{
		"source": file.AbsolutePath,
		"target": resolution.Path,
		"reason": string(resolution.Reason),
		"tag":    resolution.Tag,
	})
	e.copyTo(ctx, file, resolution.Path, false, resolution.Reason)
}

// copyTo performs (or, in a dry run, pretends to perform) the physical
// copy and records the outcome. Statistics are identical either way.
func (e *Engine) copyTo(ctx context.Context, file models.FileEntry, targetPath string, replaced bool, rename models.RenameReason) {
	if !e.op.DryRun {
		if err := e.copier.CopyWithRetry(ctx, file.AbsolutePath, targetPath, file.Size, os.FileMode(file.Permissions)); err != nil {
			attempts := 0
			var copyErr *CopyError
			if errors.As(err, &copyErr) {
				attempts = copyErr.Attempts
			}
			e.stats.AddErrored()
			e.recordError(file.AbsolutePath, targetPath, attempts, err.Error())
			e.logger.Error(ctx, "file copy failed", err, logging.Fields{
				"source":   file.AbsolutePath,
				"target":   targetPath,
				"attempts": attempts,
			})
			e.tick(filepath.Base(targetPath))
			return
		}
	}

	if replaced {
		e.stats.AddReplaced(file.Size)
	} else {
		e.stats.AddCopied(file.Size, rename != models.RenameNone)
	}
	e.tick(filepath.Base(targetPath))
}

// ensureTargetDir creates dir unless it exists, recording the creation.
// Dry runs record what would be created without touching the disk.
func (e *Engine) ensureTargetDir(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return nil
	}
	if !e.op.DryRun {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	e.stats.AddDirCreated(dir)
	return nil
}

// chunkPause sleeps between chunks of files under the conservative
// strategy to let the translation layer's queues drain
func (e *Engine) chunkPause(ctx context.Context) {
	if e.strategy.ChunkSize <= 0 {
		return
	}
	n := atomic.AddInt64(&e.chunkCount, 1)
	if n%int64(e.strategy.ChunkSize) != 0 {
		return
	}
	e.logger.Info(ctx, "chunk boundary, pausing", logging.Fields{
		"files_processed": n,
		"pause":           e.strategy.ChunkPause.String(),
	})
	select {
	case <-ctx.Done():
	case <-time.After(e.strategy.ChunkPause):
	}
}

// recordError appends one file-level failure to the report
func (e *Engine) recordError(sourcePath, targetPath string, attempts int, message string) {
	e.errMu.Lock()
	defer e.errMu.Unlock()
	e.errors = append(e.errors, models.FileError{
		SourcePath: sourcePath,
		TargetPath: targetPath,
		Attempts:   attempts,
		Error:      message,
		Timestamp:  time.Now(),
	})
}

// tick counts one processed file and forwards throttled progress
func (e *Engine) tick(label string) {
	e.progressMu.Lock()
	defer e.progressMu.Unlock()
	e.processed++
	if e.progress == nil {
		return
	}
	if e.processed == e.total || time.Since(e.lastReport) >= progressInterval {
		e.progress(e.processed, e.total, label)
		e.lastReport = time.Now()
	}
}

// status derives the overall run status from cancellation state and
// accumulated counters
func (e *Engine) status(ctx context.Context) models.RunStatus {
	if ctx.Err() != nil {
		return models.StatusCancelled
	}
	if e.stats.Snapshot().FilesErrored > 0 {
		return models.StatusPartial
	}
	return models.StatusSuccess
}

// finish stamps the report's end time and final statistics
func (e *Engine) finish(report *models.OrganizeReport) {
	completed := time.Now()
	e.op.CompletedAt = &completed
	report.EndTime = completed
	report.Duration = completed.Sub(report.StartTime)
	if e.stats != nil {
		report.Stats = e.stats.Snapshot()
	}
}
