package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/romsort/romsort/pkg/models"
)

// JSONFormatter formats the final report as JSON for automation and
// scripting; it emits nothing during the run
type JSONFormatter struct {
	writer io.Writer
}

// JSONReportData represents the final report data
type JSONReportData struct {
	OperationID string          `json:"operation_id,omitempty"`
	Source      string          `json:"source"`
	Target      string          `json:"target"`
	Policy      string          `json:"regional_policy"`
	DryRun      bool            `json:"dry_run"`
	Status      string          `json:"status"`
	Duration    string          `json:"duration"`
	DurationMs  int64           `json:"duration_ms"`
	Stats       JSONStatsData   `json:"stats"`
	Errors      []JSONErrorData `json:"errors,omitempty"`
}

// JSONStatsData represents statistics in JSON format
type JSONStatsData struct {
	PlatformsFound    int      `json:"platforms_found"`
	PlatformsSelected int      `json:"platforms_selected"`
	FilesFound        int      `json:"files_found"`
	FilesCopied       int      `json:"files_copied"`
	FilesReplaced     int      `json:"files_replaced"`
	FilesRenamed      int      `json:"files_renamed"`
	SkippedDuplicate  int      `json:"skipped_duplicate"`
	SkippedUnknown    int      `json:"skipped_unknown"`
	FilesErrored      int      `json:"files_errored"`
	BytesCopied       int64    `json:"bytes_copied"`
	DirsCreated       []string `json:"dirs_created,omitempty"`
}

// JSONErrorData represents a file-level error entry
type JSONErrorData struct {
	Source   string `json:"source"`
	Target   string `json:"target,omitempty"`
	Attempts int    `json:"attempts,omitempty"`
	Error    string `json:"error"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Start initializes the formatter
func (f *JSONFormatter) Start(writer io.Writer, totalFiles int) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer
	return nil
}

// Progress is a no-op: progress events would break parseability of the
// single-document output
func (f *JSONFormatter) Progress(processed, total int, label string) error {
	return nil
}

// Complete emits the final report as one JSON document
func (f *JSONFormatter) Complete(report *models.OrganizeReport) error {
	if f.writer == nil {
		f.writer = io.Discard
	}

	var errors []JSONErrorData
	for _, fileErr := range report.Errors {
		errors = append(errors, JSONErrorData{
			Source:   fileErr.SourcePath,
			Target:   fileErr.TargetPath,
			Attempts: fileErr.Attempts,
			Error:    fileErr.Error,
		})
	}

	reportData := JSONReportData{
		OperationID: report.OperationID,
		Source:      report.SourcePath,
		Target:      report.TargetPath,
		Policy:      string(report.Policy),
		DryRun:      report.DryRun,
		Status:      string(report.Status),
		Duration:    report.Duration.Round(time.Millisecond).String(),
		DurationMs:  report.Duration.Milliseconds(),
		Stats: JSONStatsData{
			PlatformsFound:    report.Stats.PlatformsFound,
			PlatformsSelected: report.Stats.PlatformsSelected,
			FilesFound:        report.Stats.FilesFound,
			FilesCopied:       report.Stats.FilesCopied,
			FilesReplaced:     report.Stats.FilesReplaced,
			FilesRenamed:      report.Stats.FilesRenamed,
			SkippedDuplicate:  report.Stats.SkippedDuplicate,
			SkippedUnknown:    report.Stats.SkippedUnknown,
			FilesErrored:      report.Stats.FilesErrored,
			BytesCopied:       report.Stats.BytesCopied,
			DirsCreated:       report.Stats.DirsCreated,
		},
		Errors: errors,
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(reportData)
}

// Error emits a single error document
func (f *JSONFormatter) Error(err error) error {
	if f.writer == nil {
		f.writer = os.Stderr
	}
	return json.NewEncoder(f.writer).Encode(map[string]string{"error": err.Error()})
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
