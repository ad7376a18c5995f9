package models

import (
	"sort"
	"sync"
	"time"
)

// OrganizeReport represents the results of an organize run
type OrganizeReport struct {
	// Operation details
	OperationID string
	SourcePath  string
	TargetPath  string
	Policy      RegionalPolicy
	DryRun      bool

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Final statistics snapshot
	Stats StatsSnapshot

	// Errors encountered, file-level
	Errors []FileError

	// Overall status
	Status RunStatus
}

// FileError records one failed file so the run can continue past it
type FileError struct {
	SourcePath string
	TargetPath string
	Attempts   int
	Error      string
	Timestamp  time.Time
}

// RunStatus represents the overall result
type RunStatus string

const (
	// StatusSuccess indicates every file was processed without error
	StatusSuccess RunStatus = "success"
	// StatusPartial indicates some files failed
	StatusPartial RunStatus = "partial"
	// StatusFailed indicates the run could not start or aborted
	StatusFailed RunStatus = "failed"
	// StatusCancelled indicates the operation was cancelled
	StatusCancelled RunStatus = "cancelled"
)

// ExitCode returns the appropriate process exit code for the run status
func (s RunStatus) ExitCode() int {
	switch s {
	case StatusSuccess:
		return 0
	case StatusPartial:
		return 1
	case StatusFailed:
		return 2
	case StatusCancelled:
		return 3
	default:
		return 2
	}
}

// StatsSnapshot is a plain copy of the counters, safe to read and
// serialize after all workers have joined
type StatsSnapshot struct {
	PlatformsFound    int
	PlatformsSelected int

	FilesFound       int
	FilesCopied      int
	FilesReplaced    int
	FilesRenamed     int
	SkippedDuplicate int
	SkippedUnknown   int
	FilesErrored     int

	BytesCopied int64

	DirsCreated []string
	Elapsed     time.Duration
}

// Processed is the number of files the run made a decision about
func (s StatsSnapshot) Processed() int {
	return s.FilesCopied + s.FilesReplaced + s.SkippedDuplicate + s.FilesErrored
}

// OrganizeStats accumulates counters across worker units. All mutation
// goes through methods holding the mutex; increments never span I/O.
type OrganizeStats struct {
	mu sync.Mutex

	snap    StatsSnapshot
	started time.Time
	dirs    map[string]struct{}
}

// NewOrganizeStats returns an accumulator with the clock started
func NewOrganizeStats() *OrganizeStats {
	return &OrganizeStats{
		started: time.Now(),
		dirs:    make(map[string]struct{}),
	}
}

// SetDiscovered records scan-phase totals before workers start
func (s *OrganizeStats) SetDiscovered(platformsFound, platformsSelected, filesFound int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.PlatformsFound = platformsFound
	s.snap.PlatformsSelected = platformsSelected
	s.snap.FilesFound = filesFound
}

// AddCopied records one successful copy to a fresh target path
func (s *OrganizeStats) AddCopied(bytes int64, renamed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.FilesCopied++
	s.snap.BytesCopied += bytes
	if renamed {
		s.snap.FilesRenamed++
	}
}

// AddReplaced records one successful overwrite of a stale target
func (s *OrganizeStats) AddReplaced(bytes int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.FilesReplaced++
	s.snap.BytesCopied += bytes
}

// AddSkippedDuplicate records one file skipped for identical content
func (s *OrganizeStats) AddSkippedDuplicate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.SkippedDuplicate++
}

// AddSkippedUnknown records one file left behind in an unclassified folder
func (s *OrganizeStats) AddSkippedUnknown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.SkippedUnknown++
}

// SetSkippedUnknown records the scan-phase total of files left behind
// in unclassified folders
func (s *OrganizeStats) SetSkippedUnknown(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.SkippedUnknown = n
}

// AddErrored records one file that failed after its retry budget
func (s *OrganizeStats) AddErrored() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.FilesErrored++
}

// AddErroredN charges a whole folder's worth of files at once, used when
// a work unit fails at its boundary
func (s *OrganizeStats) AddErroredN(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.FilesErrored += n
}

// AddDirCreated records a target directory created during the run
func (s *OrganizeStats) AddDirCreated(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirs[path] = struct{}{}
}

// Snapshot returns a copy of the counters. Call after workers join.
func (s *OrganizeStats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.snap
	out.Elapsed = time.Since(s.started)
	out.DirsCreated = make([]string, 0, len(s.dirs))
	for d := range s.dirs {
		out.DirsCreated = append(out.DirsCreated, d)
	}
	sort.Strings(out.DirsCreated)
	return out
}
