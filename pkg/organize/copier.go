package organize

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/romsort/romsort/pkg/hashing"
	"github.com/romsort/romsort/pkg/logging"
	"github.com/romsort/romsort/pkg/ratelimit"
)

// CopyError reports a copy that failed after its whole retry budget
type CopyError struct {
	SourcePath string
	TargetPath string
	Attempts   int
	Err        error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy %s -> %s failed after %d attempt(s): %v",
		e.SourcePath, e.TargetPath, e.Attempts, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// Copier performs crash-atomic single-file copies. Data lands in a
// temporary file in the target directory and is renamed into place only
// after the byte count checks out, so a file at its final name is
// always complete. Transient failures are retried with increasing
// backoff; the verification pass compares fast checksums and throws
// away a target that does not match its source.
type Copier struct {
	hasher     *hashing.Hasher
	limiter    *ratelimit.Limiter
	strategy   Strategy
	verify     bool
	bufferSize int
	bufferPool sync.Pool
	logger     logging.Logger
}

// NewCopier creates a copier using the given strategy's retry
// parameters. limiter may be nil for unthrottled reads.
func NewCopier(hasher *hashing.Hasher, strategy Strategy, limiter *ratelimit.Limiter, bufferSize int, verify bool, logger logging.Logger) *Copier {
	if hasher == nil {
		hasher = hashing.NewHasher()
	}
	if bufferSize < 4096 {
		bufferSize = 64 * 1024
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Copier{
		hasher:     hasher,
		limiter:    limiter,
		strategy:   strategy,
		verify:     verify,
		bufferSize: bufferSize,
		bufferPool: sync.Pool{
			New: func() interface{} {
				return make([]byte, bufferSize)
			},
		},
		logger: logger,
	}
}

// CopyWithRetry copies sourcePath to targetPath, retrying transient
// failures up to the strategy's attempt budget with increasing backoff.
// mode is applied to the target before it reaches its final name; zero
// keeps whatever the temp file was created with.
func (c *Copier) CopyWithRetry(ctx context.Context, sourcePath, targetPath string, sourceSize int64, mode os.FileMode) error {
	maxAttempts := c.strategy.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return &CopyError{SourcePath: sourcePath, TargetPath: targetPath, Attempts: attempt - 1, Err: err}
		}

		lastErr = c.copyOnce(ctx, sourcePath, targetPath, sourceSize, mode)
		if lastErr == nil {
			return nil
		}

		c.logger.Warn(ctx, "copy attempt failed", logging.Fields{
			"source":  sourcePath,
			"target":  targetPath,
			"attempt": attempt,
			"error":   lastErr.Error(),
		})

		if attempt < maxAttempts {
			if err := c.backoff(ctx, attempt); err != nil {
				return &CopyError{SourcePath: sourcePath, TargetPath: targetPath, Attempts: attempt, Err: err}
			}
		}
	}

	return &CopyError{SourcePath: sourcePath, TargetPath: targetPath, Attempts: maxAttempts, Err: lastErr}
}

// copyOnce performs one full copy attempt: temp file, byte-count check,
// atomic rename, optional checksum verification
func (c *Copier) copyOnce(ctx context.Context, sourcePath, targetPath string, sourceSize int64, mode os.FileMode) error {
	if c.strategy.CopyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.strategy.CopyTimeout)
		defer cancel()
	}

	source, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer source.Close()

	dir := filepath.Dir(targetPath)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(targetPath)+".partial-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	// The cancelReader gives the copy loop a cancellation point on every
	// buffer read; the limiter's reader alone only observes the context
	// when a bandwidth cap is configured.
	var reader io.Reader = &cancelReader{ctx: ctx, r: source}
	reader = ratelimit.NewReader(ctx, reader, c.limiter)
	buffer := c.bufferPool.Get().([]byte)
	written, copyErr := io.CopyBuffer(tmp, reader, buffer)
	c.bufferPool.Put(buffer)

	closeErr := tmp.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("copy failed: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to flush temp file: %w", closeErr)
	}

	// A non-empty source landing at 0 bytes is the corruption signature
	// this copier exists to catch; an empty source legitimately yields
	// an empty target.
	if sourceSize > 0 && written == 0 {
		os.Remove(tmpPath)
		return fmt.Errorf("copy produced 0 bytes for %d-byte source", sourceSize)
	}
	if written != sourceSize {
		os.Remove(tmpPath)
		return fmt.Errorf("copied %d bytes, expected %d", written, sourceSize)
	}

	// CreateTemp opens at 0600; restore the source's mode so the
	// organized copy is readable wherever the original was
	if mode != 0 {
		if err := os.Chmod(tmpPath, mode.Perm()); err != nil {
			os.Remove(tmpPath)
			return fmt.Errorf("failed to set target permissions: %w", err)
		}
	}

	if err := os.Rename(tmpPath, targetPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to place target: %w", err)
	}

	if c.verify {
		if err := c.verifyChecksum(ctx, sourcePath, targetPath); err != nil {
			os.Remove(targetPath)
			return err
		}
	}

	if info, err := os.Stat(sourcePath); err == nil {
		os.Chtimes(targetPath, time.Now(), info.ModTime())
	}

	return nil
}

// cancelReader fails the next read once its context is done, so a copy
// deadline or cancellation is honored mid-file instead of only between
// attempts
type cancelReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *cancelReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

// verifyChecksum compares fast checksums of source and placed target
func (c *Copier) verifyChecksum(ctx context.Context, sourcePath, targetPath string) error {
	sourceSum, err := c.hasher.FastChecksum(ctx, sourcePath)
	if err != nil {
		return fmt.Errorf("source verification read failed: %w", err)
	}
	targetSum, err := c.hasher.FastChecksum(ctx, targetPath)
	if err != nil {
		return fmt.Errorf("target verification read failed: %w", err)
	}
	if sourceSum != targetSum {
		return fmt.Errorf("checksum mismatch: source %08x, target %08x", sourceSum, targetSum)
	}
	return nil
}

// backoff sleeps between attempts, growing exponentially with optional
// jitter, and aborts early on cancellation
func (c *Copier) backoff(ctx context.Context, attempt int) error {
	delay := c.strategy.BaseDelay
	if delay <= 0 {
		delay = 100 * time.Millisecond
	}
	base := c.strategy.BackoffBase
	if base < 2 {
		base = 2
	}
	for i := 1; i < attempt; i++ {
		delay *= time.Duration(base)
	}
	if c.strategy.Jitter {
		delay += time.Duration(rand.Int63n(int64(delay)/2 + 1))
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
