package output

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/romsort/romsort/pkg/models"
)

// HumanFormatter formats output in human-readable format
type HumanFormatter struct {
	writer     io.Writer
	totalFiles int
}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// Start initializes the formatter
func (f *HumanFormatter) Start(writer io.Writer, totalFiles int) error {
	if writer == nil {
		writer = io.Discard
	}
	f.writer = writer
	f.totalFiles = totalFiles

	fmt.Fprintf(writer, "Organizing %d files...\n", totalFiles)
	return nil
}

// Progress reports progress during the run
func (f *HumanFormatter) Progress(processed, total int, label string) error {
	if f.writer == nil {
		return nil
	}
	fmt.Fprintf(f.writer, "[%d/%d] %s\n", processed, total, label)
	return nil
}

// Complete finalizes output and displays summary
func (f *HumanFormatter) Complete(report *models.OrganizeReport) error {
	if f.writer == nil {
		f.writer = io.Discard
	}
	printSummary(f.writer, report)
	return nil
}

// Error reports an error
func (f *HumanFormatter) Error(err error) error {
	if f.writer != nil {
		fmt.Fprintf(f.writer, "%s %v\n", color.RedString("Error:"), err)
	}
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

// printSummary writes the colored run summary shared by the human and
// progress formatters
func printSummary(w io.Writer, report *models.OrganizeReport) {
	verb := "Organize"
	if report.DryRun {
		verb = "Dry run"
	}
	fmt.Fprintf(w, "\n%s completed in %s\n\n", verb, report.Duration.Round(time.Millisecond))

	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "  Platforms:\n")
	fmt.Fprintf(w, "    Found:     %d\n", report.Stats.PlatformsFound)
	fmt.Fprintf(w, "    Selected:  %d\n", report.Stats.PlatformsSelected)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  Files:\n")
	fmt.Fprintf(w, "    Copied:            %s\n", color.GreenString("%d", report.Stats.FilesCopied))
	fmt.Fprintf(w, "    Replaced:          %d\n", report.Stats.FilesReplaced)
	fmt.Fprintf(w, "    Renamed:           %s\n", color.YellowString("%d", report.Stats.FilesRenamed))
	fmt.Fprintf(w, "    Skipped identical: %d\n", report.Stats.SkippedDuplicate)
	fmt.Fprintf(w, "    Skipped unknown:   %d\n", report.Stats.SkippedUnknown)
	if report.Stats.FilesErrored > 0 {
		fmt.Fprintf(w, "    Errored:           %s\n", color.RedString("%d", report.Stats.FilesErrored))
	} else {
		fmt.Fprintf(w, "    Errored:           0\n")
	}
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  Transfer:\n")
	fmt.Fprintf(w, "    Data:            %s\n", formatBytes(report.Stats.BytesCopied))
	if report.Duration.Seconds() > 0 && report.Stats.BytesCopied > 0 {
		avgSpeed := float64(report.Stats.BytesCopied) / report.Duration.Seconds()
		fmt.Fprintf(w, "    Average speed:   %s/s\n", formatBytes(int64(avgSpeed)))
	}
	fmt.Fprintf(w, "    Dirs created:    %d\n", len(report.Stats.DirsCreated))

	fmt.Fprintf(w, "\nStatus: %s\n", colorStatus(report.Status))

	if len(report.Errors) > 0 {
		fmt.Fprintf(w, "\nErrors:\n")
		for _, fileErr := range report.Errors {
			fmt.Fprintf(w, "  %s: %s\n", fileErr.SourcePath, fileErr.Error)
		}
	}
}

func colorStatus(status models.RunStatus) string {
	switch status {
	case models.StatusSuccess:
		return color.GreenString(string(status))
	case models.StatusPartial:
		return color.YellowString(string(status))
	default:
		return color.RedString(string(status))
	}
}

// formatBytes formats bytes in human-readable format
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
