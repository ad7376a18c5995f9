// Package output renders run progress, scan summaries, and final
// reports in human-readable or machine-readable form.
package output

import (
	"fmt"
	"io"

	"github.com/romsort/romsort/pkg/models"
)

// Formatter defines the interface for output formatting.
// Implementations include human-readable, progress-bar and JSON
// formatters.
type Formatter interface {
	// Start initializes the formatter for a new organize run
	Start(writer io.Writer, totalFiles int) error

	// Progress reports bounded-frequency progress during the run
	Progress(processed, total int, label string) error

	// Complete finalizes output and displays the run summary
	Complete(report *models.OrganizeReport) error

	// Error reports a fatal error
	Error(err error) error

	// Name returns the formatter name
	Name() string
}

// New returns the formatter for a configured format name
func New(format string, showProgress bool) (Formatter, error) {
	switch format {
	case "json":
		return NewJSONFormatter(), nil
	case "human":
		if showProgress {
			return NewProgressFormatter(), nil
		}
		return NewHumanFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}
