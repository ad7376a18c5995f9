package hashing

import (
	"context"
	"hash/crc32"
	"os"
	"path/filepath"
	"testing"
)

// TestHelper provides utilities for hashing tests
type TestHelper struct {
	t   *testing.T
	dir string
}

// NewTestHelper creates a test helper with a temp directory
func NewTestHelper(t *testing.T) *TestHelper {
	t.Helper()
	return &TestHelper{t: t, dir: t.TempDir()}
}

// CreateFile creates a file with the given content and returns its path
func (h *TestHelper) CreateFile(name string, content []byte) string {
	h.t.Helper()
	path := filepath.Join(h.dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		h.t.Fatalf("Failed to create file %s: %v", name, err)
	}
	return path
}

func TestDigestKnownValues(t *testing.T) {
	helper := NewTestHelper(t)
	hasher := NewHasher()
	ctx := context.Background()

	tests := []struct {
		name     string
		content  []byte
		expected string
	}{
		{"abc", []byte("abc"), "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"empty", []byte{}, "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := helper.CreateFile(tt.name+".bin", tt.content)
			got, err := hasher.Digest(ctx, path)
			if err != nil {
				t.Fatalf("Digest() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("Digest() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestDigestMethodEquivalence(t *testing.T) {
	helper := NewTestHelper(t)
	ctx := context.Background()

	// Content larger than the shrunk threshold so the mapped path is taken
	content := make([]byte, 256*1024)
	for i := range content {
		content[i] = byte(i * 31)
	}
	path := helper.CreateFile("rom.sfc", content)

	chunked := NewHasherWithThreshold(1<<40, DefaultChunkSize) // always chunked
	mapped := NewHasherWithThreshold(1, DefaultChunkSize)      // always mapped

	chunkedDigest, err := chunked.Digest(ctx, path)
	if err != nil {
		t.Fatalf("chunked Digest() error = %v", err)
	}
	mappedDigest, err := mapped.Digest(ctx, path)
	if err != nil {
		t.Fatalf("mapped Digest() error = %v", err)
	}

	if chunkedDigest != mappedDigest {
		t.Errorf("digest mismatch: chunked=%s mapped=%s", chunkedDigest, mappedDigest)
	}
}

func TestDigestIdenticalContentDifferentFiles(t *testing.T) {
	helper := NewTestHelper(t)
	hasher := NewHasher()
	ctx := context.Background()

	content := []byte("identical rom payload")
	a := helper.CreateFile("a.nes", content)
	b := helper.CreateFile("b.nes", content)

	da, err := hasher.Digest(ctx, a)
	if err != nil {
		t.Fatalf("Digest(a) error = %v", err)
	}
	db, err := hasher.Digest(ctx, b)
	if err != nil {
		t.Fatalf("Digest(b) error = %v", err)
	}
	if da != db {
		t.Errorf("identical content produced different digests: %s vs %s", da, db)
	}
}

func TestDigestMissingFile(t *testing.T) {
	hasher := NewHasher()
	if _, err := hasher.Digest(context.Background(), "/nonexistent/file.rom"); err == nil {
		t.Error("Digest() should fail for a missing file")
	}
}

func TestDigestCancelled(t *testing.T) {
	helper := NewTestHelper(t)
	hasher := NewHasher()
	path := helper.CreateFile("big.bin", make([]byte, 1024*1024))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := hasher.Digest(ctx, path); err == nil {
		t.Error("Digest() should fail when context is cancelled")
	}
}

func TestFastChecksum(t *testing.T) {
	helper := NewTestHelper(t)
	hasher := NewHasher()
	ctx := context.Background()

	content := []byte("verify me after copy")
	path := helper.CreateFile("game.gba", content)

	got, err := hasher.FastChecksum(ctx, path)
	if err != nil {
		t.Fatalf("FastChecksum() error = %v", err)
	}
	if want := crc32.ChecksumIEEE(content); got != want {
		t.Errorf("FastChecksum() = %08x, want %08x", got, want)
	}
}

func TestFastChecksumEmptyFile(t *testing.T) {
	helper := NewTestHelper(t)
	hasher := NewHasher()

	path := helper.CreateFile("empty.rom", nil)
	got, err := hasher.FastChecksum(context.Background(), path)
	if err != nil {
		t.Fatalf("FastChecksum() error = %v", err)
	}
	if got != 0 {
		t.Errorf("FastChecksum(empty) = %08x, want 0", got)
	}
}
