package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/romsort/romsort/pkg/classify"
	"github.com/romsort/romsort/pkg/models"
	"github.com/romsort/romsort/pkg/output"
	"github.com/romsort/romsort/pkg/scan"
)

// ScanFlags holds scan command flags
type ScanFlags struct {
	Source        string
	RegionalMode  string
	IncludeEmpty  bool
	NoSubcategory bool
}

var scanFlags ScanFlags

// NewScanCommand creates the scan command
func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Analyze a ROM collection without copying",
		Long: `Scan a source directory and report which platforms its folders map
to, which folders are excluded and why, and which could not be
classified. No files are copied.`,
		RunE: runScan,
	}

	cmd.Flags().StringVarP(&scanFlags.Source, "source", "s", "", "source directory path (required)")
	cmd.MarkFlagRequired("source")

	cmd.Flags().StringVarP(&scanFlags.RegionalMode, "regional-mode", "m", "consolidated", "regional mode: consolidated, regional")
	cmd.Flags().BoolVar(&scanFlags.IncludeEmpty, "include-empty-dirs", false, "classify source folders with no recognized ROM files")
	cmd.Flags().BoolVar(&scanFlags.NoSubcategory, "no-subcategory", false, "disable subcategory name preprocessing before catalog matching")

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := os.Stat(scanFlags.Source); os.IsNotExist(err) {
		return fmt.Errorf("source path does not exist: %s", scanFlags.Source)
	}

	policy := models.RegionalPolicy(scanFlags.RegionalMode)
	if policy != models.PolicyConsolidated && policy != models.PolicyRegional {
		return fmt.Errorf("invalid regional mode: %s (valid: consolidated, regional)", scanFlags.RegionalMode)
	}

	classifier := classify.NewClassifier(policy)
	classifier.SetNormalizeEnabled(!scanFlags.NoSubcategory)

	scanner := scan.NewScanner(classifier, nil)
	scanner.SetIncludeEmptyDirs(scanFlags.IncludeEmpty)

	// Scan never writes, so there is no target root to skip
	result, err := scanner.Scan(ctx, scanFlags.Source, "")
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	return output.RenderScanSummary(os.Stdout, result)
}
