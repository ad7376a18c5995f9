// Package ratelimit throttles copy reads with a shared token bucket so
// a conservative run never saturates a slow or translated filesystem.
package ratelimit

import (
	"context"
	"io"
	"sync"
	"time"
)

// minimum burst so small reads are not throttled one by one
const minBucketSize = 65536

// Limiter is a token bucket shared by every reader of one run. Tokens
// are bytes; the bucket refills continuously at the configured rate.
type Limiter struct {
	rate   int64 // bytes per second
	bucket int64 // burst capacity

	mu       sync.Mutex
	tokens   int64
	refilled time.Time
}

// NewLimiter creates a limiter for the given rate. A rate of zero or
// less returns nil, which every wrapper treats as unlimited.
func NewLimiter(bytesPerSecond int64) *Limiter {
	if bytesPerSecond <= 0 {
		return nil
	}

	bucket := bytesPerSecond
	if bucket < minBucketSize {
		bucket = minBucketSize
	}

	return &Limiter{
		rate:     bytesPerSecond,
		bucket:   bucket,
		tokens:   bucket,
		refilled: time.Now(),
	}
}

// Wait blocks until n tokens are available or the context is done, then
// consumes them. n is clamped to the bucket capacity.
func (l *Limiter) Wait(ctx context.Context, n int64) error {
	if n > l.bucket {
		n = l.bucket
	}

	for {
		l.mu.Lock()
		l.refill()
		if l.tokens >= n {
			l.tokens -= n
			l.mu.Unlock()
			return nil
		}
		deficit := n - l.tokens
		l.mu.Unlock()

		pause := time.Duration(float64(deficit) / float64(l.rate) * float64(time.Second))
		if pause < time.Millisecond {
			pause = time.Millisecond
		}

		timer := time.NewTimer(pause)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// refill credits tokens for the time elapsed since the last refill.
// Caller holds the mutex.
func (l *Limiter) refill() {
	now := time.Now()
	credit := int64(float64(now.Sub(l.refilled)) / float64(time.Second) * float64(l.rate))
	if credit <= 0 {
		return
	}
	l.tokens += credit
	if l.tokens > l.bucket {
		l.tokens = l.bucket
	}
	l.refilled = now
}

// Reader throttles an io.Reader against a shared limiter
type Reader struct {
	reader  io.Reader
	limiter *Limiter
	ctx     context.Context
}

// NewReader wraps reader with rate limiting. A nil limiter returns the
// reader unchanged.
func NewReader(ctx context.Context, reader io.Reader, limiter *Limiter) io.Reader {
	if limiter == nil {
		return reader
	}
	return &Reader{
		reader:  reader,
		limiter: limiter,
		ctx:     ctx,
	}
}

// Read acquires tokens for the requested size before delegating. Short
// reads leave the unused tokens consumed; the bucket absorbs the error
// on the next refill cycle.
func (r *Reader) Read(p []byte) (int, error) {
	toRead := int64(len(p))
	if toRead > r.limiter.bucket {
		toRead = r.limiter.bucket
	}

	if err := r.limiter.Wait(r.ctx, toRead); err != nil {
		return 0, err
	}

	return r.reader.Read(p[:toRead])
}
