package organize

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testStrategy() Strategy {
	return Strategy{
		Name:        "test",
		Workers:     1,
		MaxAttempts: 2,
		BaseDelay:   time.Millisecond,
		BackoffBase: 2,
	}
}

func newTestCopier(verify bool) *Copier {
	return NewCopier(nil, testStrategy(), nil, 64*1024, verify, nil)
}

func TestCopyWithRetry(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	t.Run("CopiesContent", func(t *testing.T) {
		content := []byte("rom content for copying")
		source := writeFile(t, dir, "copy-source.rom", string(content))
		target := filepath.Join(dir, "copy-target.rom")

		if err := newTestCopier(true).CopyWithRetry(ctx, source, target, int64(len(content)), 0644); err != nil {
			t.Fatalf("CopyWithRetry() error = %v", err)
		}

		got, err := os.ReadFile(target)
		if err != nil {
			t.Fatalf("Failed to read target: %v", err)
		}
		if !bytes.Equal(got, content) {
			t.Errorf("target content = %q, want %q", got, content)
		}
	})

	t.Run("EmptySource", func(t *testing.T) {
		source := writeFile(t, dir, "empty-source.rom", "")
		target := filepath.Join(dir, "empty-target.rom")

		if err := newTestCopier(true).CopyWithRetry(ctx, source, target, 0, 0644); err != nil {
			t.Fatalf("CopyWithRetry() error = %v, empty sources are valid", err)
		}
		info, err := os.Stat(target)
		if err != nil {
			t.Fatalf("target missing: %v", err)
		}
		if info.Size() != 0 {
			t.Errorf("target size = %d, want 0", info.Size())
		}
	})

	t.Run("PreservesModTime", func(t *testing.T) {
		source := writeFile(t, dir, "mtime-source.rom", "data")
		past := time.Now().Add(-24 * time.Hour).Truncate(time.Second)
		if err := os.Chtimes(source, past, past); err != nil {
			t.Fatalf("Failed to set mtime: %v", err)
		}
		target := filepath.Join(dir, "mtime-target.rom")

		if err := newTestCopier(false).CopyWithRetry(ctx, source, target, 4, 0644); err != nil {
			t.Fatalf("CopyWithRetry() error = %v", err)
		}
		info, _ := os.Stat(target)
		if !info.ModTime().Equal(past) {
			t.Errorf("target mtime = %v, want %v", info.ModTime(), past)
		}
	})
}

func TestCopyWithRetryFailure(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	err := newTestCopier(false).CopyWithRetry(ctx,
		filepath.Join(dir, "does-not-exist.rom"),
		filepath.Join(dir, "never-written.rom"), 100, 0644)
	if err == nil {
		t.Fatal("CopyWithRetry() should fail for a missing source")
	}

	var copyErr *CopyError
	if !errors.As(err, &copyErr) {
		t.Fatalf("error type = %T, want *CopyError", err)
	}
	if copyErr.Attempts != 2 {
		t.Errorf("Attempts = %d, want the full budget of 2", copyErr.Attempts)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "never-written.rom")); !os.IsNotExist(statErr) {
		t.Error("failed copy must not leave a target behind")
	}
}

// A truncated read must never land at the final name
func TestCopyRejectsShortWrite(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "short-source.rom", "only four bytes of data")
	target := filepath.Join(dir, "short-target.rom")

	// Claimed size larger than the real file forces a byte-count mismatch
	err := newTestCopier(false).CopyWithRetry(context.Background(), source, target, 1<<20, 0644)
	if err == nil {
		t.Fatal("CopyWithRetry() should reject a size mismatch")
	}
	if _, statErr := os.Stat(target); !os.IsNotExist(statErr) {
		t.Error("mismatched copy must not leave a target behind")
	}
}

// No temp files may survive a copy, successful or not
func TestCopyLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	targetDir := filepath.Join(dir, "out")
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		t.Fatal(err)
	}
	source := writeFile(t, dir, "tmp-source.rom", "content")

	c := newTestCopier(true)
	if err := c.CopyWithRetry(context.Background(), source, filepath.Join(targetDir, "a.rom"), 7, 0644); err != nil {
		t.Fatalf("CopyWithRetry() error = %v", err)
	}
	c.CopyWithRetry(context.Background(), filepath.Join(dir, "missing.rom"), filepath.Join(targetDir, "b.rom"), 9, 0644)

	entries, err := os.ReadDir(targetDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "a.rom" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("target dir = %v, want only a.rom", names)
	}
}

// The placed file must carry the source's mode, not the temp file's
// private one
func TestCopyPreservesSourceMode(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "mode-source.rom", "mode data")
	if err := os.Chmod(source, 0640); err != nil {
		t.Fatalf("Failed to chmod source: %v", err)
	}
	target := filepath.Join(dir, "mode-target.rom")

	if err := newTestCopier(false).CopyWithRetry(context.Background(), source, target, 9, 0640); err != nil {
		t.Fatalf("CopyWithRetry() error = %v", err)
	}
	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("target missing: %v", err)
	}
	if info.Mode().Perm() != 0640 {
		t.Errorf("target mode = %o, want 640", info.Mode().Perm())
	}
}

// Cancellation must be observed inside the read loop, not only between
// attempts, and with or without a bandwidth limiter
func TestCancelReaderStopsMidStream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := &cancelReader{ctx: ctx, r: bytes.NewReader([]byte("six by"))}

	buf := make([]byte, 3)
	if n, err := r.Read(buf); err != nil || n != 3 {
		t.Fatalf("Read() = %d, %v, want 3 bytes before cancellation", n, err)
	}

	cancel()
	if _, err := r.Read(buf); !errors.Is(err, context.Canceled) {
		t.Errorf("Read() after cancel error = %v, want context.Canceled", err)
	}
}

func TestCopyCancelled(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "cancel-source.rom", "data")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestCopier(false).CopyWithRetry(ctx, source, filepath.Join(dir, "cancel-target.rom"), 4, 0644)
	if err == nil {
		t.Fatal("CopyWithRetry() should fail under a cancelled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled in the chain", err)
	}
}
