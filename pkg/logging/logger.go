// Package logging provides the run log for organize and scan
// operations: a small structured Logger interface, a size-rotating
// file implementation, and a no-op fallback for quiet runs.
package logging

import (
	"context"
	"strings"
)

// Level orders severities from noisiest to most severe
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// LevelString returns the canonical upper-case name of a level
func LevelString(level Level) string {
	if level < DebugLevel || level > ErrorLevel {
		return "UNKNOWN"
	}
	return levelNames[level]
}

// ParseLevel maps a flag or config value to a level. Unrecognized
// input falls back to InfoLevel rather than failing the run over a
// typo in a log setting.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Fields carries the structured context of one entry: source and
// target paths, platform codes, attempt counts, byte totals
type Fields map[string]interface{}

// merge returns a copy of f overlaid with extra; either side may be
// nil. The receiver is never mutated, so a logger's bound fields stay
// stable across calls.
func (f Fields) merge(extra Fields) Fields {
	if len(f) == 0 && len(extra) == 0 {
		return nil
	}
	merged := make(Fields, len(f)+len(extra))
	for k, v := range f {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

// Logger is the run log every collaborator writes to. Error takes the
// failing error alongside the message; WithFields pins context, such
// as the operation id, onto every subsequent entry.
type Logger interface {
	Debug(ctx context.Context, msg string, fields Fields)
	Info(ctx context.Context, msg string, fields Fields)
	Warn(ctx context.Context, msg string, fields Fields)
	Error(ctx context.Context, msg string, err error, fields Fields)
	WithFields(fields Fields) Logger
	Close() error
}
