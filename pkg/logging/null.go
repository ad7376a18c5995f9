package logging

import "context"

// NullLogger drops every entry. Quiet runs and tests use it so
// collaborators never nil-check their logger.
type NullLogger struct{}

// NewNullLogger returns a logger that discards everything
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Debug(context.Context, string, Fields)        {}
func (l *NullLogger) Info(context.Context, string, Fields)         {}
func (l *NullLogger) Warn(context.Context, string, Fields)         {}
func (l *NullLogger) Error(context.Context, string, error, Fields) {}

// WithFields has nothing to pin; the same logger comes back
func (l *NullLogger) WithFields(Fields) Logger {
	return l
}

func (l *NullLogger) Close() error {
	return nil
}
