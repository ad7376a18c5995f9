package models

import (
	"time"
)

// OrganizeOperation represents one organize run configuration
type OrganizeOperation struct {
	ID             string
	SourcePath     string
	TargetPath     string
	RegionalPolicy RegionalPolicy
	Platforms      []string // restrict the copy phase; empty = all discovered

	DryRun             bool
	SkipIdentical      bool
	VerifyCopies       bool
	IncludeEmptyDirs   bool
	NormalizeNames     bool // subcategory/format-tag preprocessing before catalog matching
	MaxWorkers         int
	BandwidthLimit     int64 // bytes per second, 0 = unlimited
	BufferSize         int
	CreatedAt          time.Time
	StartedAt          *time.Time
	CompletedAt        *time.Time
}

// Validate checks if the operation configuration is valid
func (op *OrganizeOperation) Validate() error {
	if op.SourcePath == "" {
		return &ValidationError{Field: "SourcePath", Message: "source path is required"}
	}
	if op.TargetPath == "" {
		return &ValidationError{Field: "TargetPath", Message: "target path is required"}
	}
	if op.RegionalPolicy != PolicyConsolidated && op.RegionalPolicy != PolicyRegional {
		return &ValidationError{Field: "RegionalPolicy", Message: "policy must be consolidated or regional"}
	}
	if op.MaxWorkers < 1 || op.MaxWorkers > 8 {
		return &ValidationError{Field: "MaxWorkers", Message: "max workers must be between 1 and 8"}
	}
	if op.BufferSize < 1024 {
		return &ValidationError{Field: "BufferSize", Message: "buffer size must be at least 1024 bytes"}
	}
	return nil
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
