package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/romsort/romsort/pkg/logging"
	"github.com/romsort/romsort/pkg/organize"
	"github.com/romsort/romsort/pkg/output"
)

// OrganizeFlags holds organize command flags
type OrganizeFlags struct {
	Source        string
	Target        string
	RegionalMode  string
	Platforms     []string
	DryRun        bool
	CreateTarget  bool
	IncludeEmpty  bool
	NoSubcategory bool
	Workers       int
	Bandwidth     string
	Verify        bool
	SkipIdentical bool
	Output        string
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

var organizeFlags OrganizeFlags

// NewOrganizeCommand creates the organize command
func NewOrganizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Organize a ROM collection into per-platform folders",
		Long: `Scan a source directory of platform-named folders, classify each one
against the platform catalog, and copy the ROM files into a clean
target layout with collision-safe naming.`,
		RunE: runOrganize,
	}

	// Required flags
	cmd.Flags().StringVarP(&organizeFlags.Source, "source", "s", "", "source directory path (required)")
	cmd.Flags().StringVarP(&organizeFlags.Target, "target", "t", "", "target directory path (required)")
	cmd.MarkFlagRequired("source")
	cmd.MarkFlagRequired("target")

	// Optional flags
	cmd.Flags().StringVarP(&organizeFlags.RegionalMode, "regional-mode", "m", "consolidated", "regional mode: consolidated, regional")
	cmd.Flags().StringSliceVar(&organizeFlags.Platforms, "platforms", []string{}, "restrict copying to these platform shortcodes")
	cmd.Flags().BoolVar(&organizeFlags.DryRun, "dry-run", false, "decide and report only, don't copy")
	cmd.Flags().BoolVar(&organizeFlags.CreateTarget, "create-target", false, "create target directory if it doesn't exist")
	cmd.Flags().BoolVar(&organizeFlags.IncludeEmpty, "include-empty-dirs", false, "classify source folders with no recognized ROM files")
	cmd.Flags().BoolVar(&organizeFlags.NoSubcategory, "no-subcategory", false, "disable subcategory name preprocessing before catalog matching")
	cmd.Flags().IntVarP(&organizeFlags.Workers, "workers", "w", 0, "number of parallel workers, 1-8 (default: strategy-chosen)")
	cmd.Flags().StringVarP(&organizeFlags.Bandwidth, "bandwidth", "b", "", "read bandwidth limit (e.g., \"10M\", \"1G\")")
	cmd.Flags().BoolVar(&organizeFlags.Verify, "verify", true, "verify each copy with a checksum")
	cmd.Flags().BoolVar(&organizeFlags.SkipIdentical, "skip-identical", true, "skip files whose target already has identical content")
	cmd.Flags().StringVarP(&organizeFlags.Output, "output", "o", "human", "output format: human, json")

	// Logging flags
	cmd.Flags().StringVar(&organizeFlags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.Flags().StringVar(&organizeFlags.LogFormat, "log-format", "text", "log format: text, json")
	cmd.Flags().StringVar(&organizeFlags.LogLevel, "log-level", "info", "log level: debug, info, warn, error")

	return cmd
}

func runOrganize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Validate flags
	if err := validateOrganizeFlags(); err != nil {
		return err
	}

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with command-line flags
	applyFlagsToConfig(cfg, cmd)

	// Create organize operation
	operation, err := createOrganizeOperation(cfg)
	if err != nil {
		return fmt.Errorf("failed to create organize operation: %w", err)
	}

	// Create output formatter
	formatter, err := output.New(cfg.Output.Format, cfg.Output.Progress)
	if err != nil {
		return err
	}

	// Create logger
	logger, err := createLogger(organizeFlags.LogFile, organizeFlags.LogFormat, organizeFlags.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	// Create copy engine
	engine, err := organize.NewEngine(operation, nil, logger)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	var writer io.Writer = os.Stdout
	if cfg.Output.Quiet {
		writer = io.Discard
	}

	// The file total is only known after the scan phase, so the
	// formatter starts on the first progress callback
	var startOnce sync.Once
	engine.SetProgress(func(processed, total int, label string) {
		startOnce.Do(func() {
			formatter.Start(writer, total)
		})
		formatter.Progress(processed, total, label)
	})

	// Run organize
	report, err := engine.Run(ctx)
	if err != nil {
		formatter.Error(err)
		os.Exit(report.Status.ExitCode())
	}

	startOnce.Do(func() {
		formatter.Start(writer, report.Stats.FilesFound)
	})
	if err := formatter.Complete(report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	// Exit with appropriate code
	os.Exit(report.Status.ExitCode())
	return nil
}

// createLogger creates a logger based on configuration
func createLogger(logFile, logFormat, logLevel string) (logging.Logger, error) {
	// If no log file specified, return null logger
	if logFile == "" {
		return logging.NewNullLogger(), nil
	}

	// Parse log format
	var format logging.Format
	switch logFormat {
	case "json":
		format = logging.FormatJSON
	default:
		format = logging.FormatText
	}

	// Create file logger
	config := logging.FileLoggerConfig{
		Path:       logFile,
		Format:     format,
		Level:      logging.ParseLevel(logLevel),
		MaxSize:    10 * 1024 * 1024, // 10 MB
		MaxBackups: 5,
	}

	return logging.NewFileLogger(config)
}
