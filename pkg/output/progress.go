package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/romsort/romsort/pkg/models"
)

// default bar width when the terminal size cannot be detected
const fallbackTermWidth = 100

// ProgressFormatter renders a live progress bar during the run and the
// human summary at the end
type ProgressFormatter struct {
	mu     sync.Mutex
	writer io.Writer
	bar    *pb.ProgressBar
}

// NewProgressFormatter creates a new progress bar formatter
func NewProgressFormatter() *ProgressFormatter {
	return &ProgressFormatter{}
}

// Start initializes the bar
func (f *ProgressFormatter) Start(writer io.Writer, totalFiles int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer

	width := fallbackTermWidth
	if file, ok := writer.(*os.File); ok {
		if w, _, err := term.GetSize(int(file.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	f.bar = pb.New(totalFiles)
	f.bar.SetWriter(writer)
	f.bar.SetMaxWidth(width)
	f.bar.SetTemplateString(`{{counters . }} {{bar . }} {{percent . }} {{string . "file"}}`)
	f.bar.Start()
	return nil
}

// Progress advances the bar
func (f *ProgressFormatter) Progress(processed, total int, label string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.bar == nil {
		return nil
	}
	f.bar.Set("file", label)
	f.bar.SetCurrent(int64(processed))
	return nil
}

// Complete stops the bar and prints the run summary
func (f *ProgressFormatter) Complete(report *models.OrganizeReport) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.bar != nil {
		f.bar.SetCurrent(int64(report.Stats.Processed()))
		f.bar.Finish()
	}
	if f.writer == nil {
		f.writer = io.Discard
	}
	printSummary(f.writer, report)
	return nil
}

// Error stops the bar and reports the error
func (f *ProgressFormatter) Error(err error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.bar != nil {
		f.bar.Finish()
	}
	if f.writer != nil {
		fmt.Fprintf(f.writer, "%s %v\n", color.RedString("Error:"), err)
	}
	return nil
}

// Name returns the formatter name
func (f *ProgressFormatter) Name() string {
	return "progress"
}
