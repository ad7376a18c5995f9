// Package hashing computes content digests and fast integrity checksums
// for ROM files. The SHA-1 digest drives duplicate detection; the CRC32
// checksum is only for cheap post-copy verification.
package hashing

import (
	"context"
	"crypto/sha1"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"sync"

	"golang.org/x/exp/mmap"
)

const (
	// DefaultMmapThreshold is the file size above which digests are
	// computed through a memory-mapped view instead of buffered reads
	DefaultMmapThreshold = 100 * 1024 * 1024

	// DefaultChunkSize is the read size for the buffered path
	DefaultChunkSize = 64 * 1024
)

// Hasher computes SHA-1 content digests and CRC32 checksums. The zero
// value is not usable; use NewHasher.
type Hasher struct {
	mmapThreshold int64
	chunkSize     int
	bufferPool    *sync.Pool
}

// NewHasher creates a hasher with the default thresholds
func NewHasher() *Hasher {
	return NewHasherWithThreshold(DefaultMmapThreshold, DefaultChunkSize)
}

// NewHasherWithThreshold creates a hasher with an explicit mmap
// threshold and chunk size. Both digest paths produce identical output
// for identical content; the threshold only selects the read strategy.
func NewHasherWithThreshold(mmapThreshold int64, chunkSize int) *Hasher {
	if chunkSize < 4096 {
		chunkSize = 4096
	}
	return &Hasher{
		mmapThreshold: mmapThreshold,
		chunkSize:     chunkSize,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				buf := make([]byte, chunkSize)
				return &buf
			},
		},
	}
}

// Digest computes the SHA-1 hex digest of the full file content
func (h *Hasher) Digest(ctx context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat file: %w", err)
	}

	if info.Size() > h.mmapThreshold {
		return h.digestMapped(ctx, path)
	}
	return h.digestChunked(ctx, path)
}

// digestChunked streams the file through a pooled buffer
func (h *Hasher) digestChunked(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	hasher := sha1.New()

	bufPtr := h.bufferPool.Get().(*[]byte)
	buffer := *bufPtr
	defer h.bufferPool.Put(bufPtr)

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		n, err := f.Read(buffer)
		if n > 0 {
			hasher.Write(buffer[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}

// digestMapped reads the file through a memory-mapped view, avoiding a
// full in-memory copy for large files
func (h *Hasher) digestMapped(ctx context.Context, path string) (string, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to map file: %w", err)
	}
	defer r.Close()

	hasher := sha1.New()

	bufPtr := h.bufferPool.Get().(*[]byte)
	buffer := *bufPtr
	defer h.bufferPool.Put(bufPtr)

	size := int64(r.Len())
	var offset int64
	for offset < size {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		n, err := r.ReadAt(buffer[:min64(int64(len(buffer)), size-offset)], offset)
		if n > 0 {
			hasher.Write(buffer[:n])
			offset += int64(n)
		}
		if err != nil && err != io.EOF {
			return "", fmt.Errorf("failed to read mapped file: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}

// FastChecksum computes a CRC32 (IEEE) checksum by streaming fixed-size
// chunks. Collision-tolerant; never used for duplicate decisions.
func (h *Hasher) FastChecksum(ctx context.Context, path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	sum := crc32.NewIEEE()

	bufPtr := h.bufferPool.Get().(*[]byte)
	buffer := *bufPtr
	defer h.bufferPool.Put(bufPtr)

	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		n, err := f.Read(buffer)
		if n > 0 {
			sum.Write(buffer[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read file: %w", err)
		}
	}

	return sum.Sum32(), nil
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
