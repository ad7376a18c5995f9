package organize

import (
	"runtime"
	"sync"
	"time"

	"github.com/romsort/romsort/internal/platform"
)

// Environment answers the capability questions strategy selection
// needs. Production code uses HostEnvironment; tests inject fakes.
type Environment interface {
	// KernelVersion returns the running kernel's version string
	KernelVersion() string
	// NumCPU returns the number of usable logical CPUs
	NumCPU() int
	// IsTranslatedPath reports whether path lives on a filesystem
	// reached through a host-translation layer
	IsTranslatedPath(path string) bool
}

// Strategy bundles the concurrency and retry parameters for one run
type Strategy struct {
	Name        string
	Workers     int
	MaxAttempts int
	BaseDelay   time.Duration
	BackoffBase int // exponential growth factor between attempts
	Jitter      bool
	ChunkSize   int           // files per chunk, 0 disables chunking
	ChunkPause  time.Duration // settle pause between chunks
	CopyTimeout time.Duration // per-attempt bound, 0 disables
}

// SelectStrategy picks run parameters for the given source and target
// paths. WSL2 reaching through the 9p translation to a Windows-hosted
// mount serializes badly under concurrent small-file I/O and is the
// environment where 0-byte copies were observed, so it gets a single
// worker, a short retry budget with long pauses, chunked processing
// with settle intervals, and a per-copy timeout. Everything else scales
// workers to the CPU count.
func SelectStrategy(env Environment, sourcePath, targetPath string) Strategy {
	onTranslatedMount := env.IsTranslatedPath(sourcePath) || env.IsTranslatedPath(targetPath)
	underWSL := platform.IsWSL(env.KernelVersion())

	if underWSL && onTranslatedMount {
		return Strategy{
			Name:        "conservative",
			Workers:     1,
			MaxAttempts: 2,
			BaseDelay:   time.Second,
			BackoffBase: 3,
			Jitter:      true,
			ChunkSize:   1000,
			ChunkPause:  5 * time.Second,
			CopyTimeout: 30 * time.Second,
		}
	}

	workers := env.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if workers < 1 {
		workers = 1
	}
	return Strategy{
		Name:        "aggressive",
		Workers:     workers,
		MaxAttempts: 3,
		BaseDelay:   100 * time.Millisecond,
		BackoffBase: 2,
	}
}

// HostEnvironment reads the actual process environment
type HostEnvironment struct {
	once    sync.Once
	version string
}

// NewHostEnvironment creates an environment backed by the running host
func NewHostEnvironment() *HostEnvironment {
	return &HostEnvironment{}
}

// KernelVersion reads the kernel version once and caches it; non-Linux
// hosts read as an empty version
func (e *HostEnvironment) KernelVersion() string {
	e.once.Do(func() {
		e.version = platform.ReadKernelVersion()
	})
	return e.version
}

// NumCPU returns the logical CPU count
func (e *HostEnvironment) NumCPU() int {
	return runtime.NumCPU()
}

// IsTranslatedPath reports whether path sits on a WSL drive mount
func (e *HostEnvironment) IsTranslatedPath(path string) bool {
	return platform.IsTranslatedPath(path)
}
