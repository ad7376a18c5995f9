package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Format selects how entries are serialized
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// FileLoggerConfig configures a run log file
type FileLoggerConfig struct {
	// Path of the log file; parent directories are created
	Path string
	// Format is json or text
	Format Format
	// Level is the minimum severity written
	Level Level
	// MaxSize in bytes before the file rotates; 0 disables rotation
	MaxSize int64
	// MaxBackups bounds how many rotated files are kept
	MaxBackups int
}

// FileLogger appends structured entries to one log file per run.
// WithFields children share the underlying sink, so writes from every
// worker serialize on the same lock and rotation stays coherent.
type FileLogger struct {
	level  Level
	format Format
	bound  Fields
	sink   *logSink
}

// logSink owns the open file and its rotation state
type logSink struct {
	path       string
	maxSize    int64
	maxBackups int

	mu   sync.Mutex
	file *os.File
	size int64
}

// NewFileLogger opens (or continues) the log file at config.Path
func NewFileLogger(config FileLoggerConfig) (*FileLogger, error) {
	if err := os.MkdirAll(filepath.Dir(config.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := openAppend(config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat log file: %w", err)
	}

	return &FileLogger{
		level:  config.Level,
		format: config.Format,
		sink: &logSink{
			path:       config.Path,
			maxSize:    config.MaxSize,
			maxBackups: config.MaxBackups,
			file:       file,
			size:       info.Size(),
		},
	}, nil
}

func (l *FileLogger) Debug(ctx context.Context, msg string, fields Fields) {
	l.emit(DebugLevel, msg, nil, fields)
}

func (l *FileLogger) Info(ctx context.Context, msg string, fields Fields) {
	l.emit(InfoLevel, msg, nil, fields)
}

func (l *FileLogger) Warn(ctx context.Context, msg string, fields Fields) {
	l.emit(WarnLevel, msg, nil, fields)
}

func (l *FileLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	l.emit(ErrorLevel, msg, err, fields)
}

// WithFields returns a logger whose every entry carries the given
// fields in addition to its own. The child writes through the parent's
// sink.
func (l *FileLogger) WithFields(fields Fields) Logger {
	return &FileLogger{
		level:  l.level,
		format: l.format,
		bound:  l.bound.merge(fields),
		sink:   l.sink,
	}
}

// Close closes the underlying file for this logger and all its
// WithFields children
func (l *FileLogger) Close() error {
	return l.sink.close()
}

// emit filters by level, serializes the entry, and hands it to the sink
func (l *FileLogger) emit(level Level, msg string, err error, fields Fields) {
	if level < l.level {
		return
	}

	e := entry{
		when:    time.Now().UTC(),
		level:   level,
		message: msg,
		err:     err,
		fields:  l.bound.merge(fields),
	}

	var line []byte
	if l.format == FormatJSON {
		line = e.jsonLine()
	} else {
		line = e.textLine()
	}
	if line == nil {
		return
	}
	l.sink.write(line)
}

// entry is one log record before serialization
type entry struct {
	when    time.Time
	level   Level
	message string
	err     error
	fields  Fields
}

// jsonLine renders the entry as one JSON object per line. Fields sit
// at the top level next to timestamp, level, and message; a field
// named like one of those keys loses.
func (e entry) jsonLine() []byte {
	record := make(map[string]interface{}, len(e.fields)+4)
	for k, v := range e.fields {
		record[k] = v
	}
	record["timestamp"] = e.when.Format(time.RFC3339)
	record["level"] = LevelString(e.level)
	record["message"] = e.message
	if e.err != nil {
		record["error"] = e.err.Error()
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil
	}
	return append(data, '\n')
}

// textLine renders the entry as a single human-readable line with
// key=value fields in sorted order, so repeated runs diff cleanly
func (e entry) textLine() []byte {
	var b strings.Builder
	b.WriteString(e.when.Format(time.RFC3339))
	b.WriteString(" [")
	b.WriteString(LevelString(e.level))
	b.WriteString("] ")
	b.WriteString(e.message)

	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.fields[k])
	}

	if e.err != nil {
		fmt.Fprintf(&b, " error=%q", e.err.Error())
	}

	b.WriteByte('\n')
	return []byte(b.String())
}

// write appends one serialized line, rotating first when the file has
// grown past its size bound
func (s *logSink) write(line []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxSize > 0 && s.size >= s.maxSize {
		s.rotateLocked()
	}
	if s.file == nil {
		return
	}

	n, _ := s.file.Write(line)
	s.size += int64(n)
}

// rotateLocked shifts romsort.log -> romsort.log.1 -> romsort.log.2,
// drops the copy past maxBackups, and reopens a fresh file. Callers
// hold the mutex. Rename failures are ignored; the log keeps going in
// whatever file can be opened.
func (s *logSink) rotateLocked() {
	if s.file == nil {
		return
	}
	s.file.Close()
	s.file = nil

	for i := s.maxBackups - 1; i >= 1; i-- {
		os.Rename(backupName(s.path, i), backupName(s.path, i+1))
	}
	os.Rename(s.path, backupName(s.path, 1))
	if s.maxBackups > 0 {
		os.Remove(backupName(s.path, s.maxBackups+1))
	}

	file, err := openAppend(s.path)
	if err != nil {
		return
	}
	s.file = file
	s.size = 0
}

func (s *logSink) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

func openAppend(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

func backupName(path string, n int) string {
	return fmt.Sprintf("%s.%d", path, n)
}
