package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/romsort/romsort/pkg/config"
	"github.com/romsort/romsort/pkg/models"
)

// validateOrganizeFlags validates the organize command flags
func validateOrganizeFlags() error {
	// Validate source exists
	if _, err := os.Stat(organizeFlags.Source); os.IsNotExist(err) {
		return fmt.Errorf("source path does not exist: %s", organizeFlags.Source)
	}

	// Check target
	targetInfo, err := os.Stat(organizeFlags.Target)
	if os.IsNotExist(err) {
		// Target doesn't exist
		if organizeFlags.CreateTarget {
			// Create target directory with parents
			if err := os.MkdirAll(organizeFlags.Target, 0755); err != nil {
				return fmt.Errorf("failed to create target directory: %w", err)
			}
		} else {
			return fmt.Errorf("target path does not exist: %s (use --create-target to create it)", organizeFlags.Target)
		}
	} else if err != nil {
		return fmt.Errorf("failed to access target path: %w", err)
	} else if !targetInfo.IsDir() {
		return fmt.Errorf("target path exists but is not a directory: %s", organizeFlags.Target)
	}

	// Validate paths are not identical
	sourceAbs, err := filepath.Abs(organizeFlags.Source)
	if err != nil {
		return fmt.Errorf("failed to resolve source path: %w", err)
	}

	targetAbs, err := filepath.Abs(organizeFlags.Target)
	if err != nil {
		return fmt.Errorf("failed to resolve target path: %w", err)
	}

	if sourceAbs == targetAbs {
		return fmt.Errorf("source and target cannot be the same: %s", sourceAbs)
	}

	// Validate paths are not nested
	if strings.HasPrefix(targetAbs, sourceAbs+string(filepath.Separator)) {
		return fmt.Errorf("target cannot be inside source directory")
	}
	if strings.HasPrefix(sourceAbs, targetAbs+string(filepath.Separator)) {
		return fmt.Errorf("source cannot be inside target directory")
	}

	// Validate regional mode
	validModes := map[string]bool{
		"consolidated": true,
		"regional":     true,
	}
	if !validModes[organizeFlags.RegionalMode] {
		return fmt.Errorf("invalid regional mode: %s (valid: consolidated, regional)", organizeFlags.RegionalMode)
	}

	// Validate workers range; 0 means strategy-chosen
	if organizeFlags.Workers < 0 || organizeFlags.Workers > 8 {
		return fmt.Errorf("invalid worker count: %d (valid: 1-8)", organizeFlags.Workers)
	}

	// Validate bandwidth format
	if organizeFlags.Bandwidth != "" {
		if _, err := parseBandwidth(organizeFlags.Bandwidth); err != nil {
			return err
		}
	}

	return nil
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config values with command-line flags
func applyFlagsToConfig(cfg *config.Config, cmd *cobra.Command) {
	// Regional mode
	if organizeFlags.RegionalMode != "" {
		cfg.Organize.RegionalPolicy = models.RegionalPolicy(organizeFlags.RegionalMode)
	}

	// Toggles default to the config values; only explicit flags override
	if cmd.Flags().Changed("verify") {
		cfg.Organize.VerifyCopies = organizeFlags.Verify
	}
	if cmd.Flags().Changed("skip-identical") {
		cfg.Organize.SkipIdentical = organizeFlags.SkipIdentical
	}
	if organizeFlags.IncludeEmpty {
		cfg.Organize.IncludeEmptyDirs = true
	}
	if organizeFlags.NoSubcategory {
		cfg.Organize.NormalizeNames = false
	}

	// Parallel workers
	if organizeFlags.Workers > 0 {
		cfg.Performance.MaxWorkers = organizeFlags.Workers
	}

	// Bandwidth limit
	if organizeFlags.Bandwidth != "" {
		if limit, err := parseBandwidth(organizeFlags.Bandwidth); err == nil {
			cfg.Performance.BandwidthLimit = limit
		}
	}

	// Output format
	if organizeFlags.Output != "" {
		cfg.Output.Format = organizeFlags.Output
	}

	// Disable progress in quiet mode
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}

	// Enable progress in verbose mode
	if globalFlags.Verbose {
		cfg.Output.Progress = true
	}
}

// createOrganizeOperation creates an organize operation from configuration
func createOrganizeOperation(cfg *config.Config) (*models.OrganizeOperation, error) {
	operation := &models.OrganizeOperation{
		ID:               uuid.New().String(),
		SourcePath:       organizeFlags.Source,
		TargetPath:       organizeFlags.Target,
		RegionalPolicy:   cfg.Organize.RegionalPolicy,
		Platforms:        organizeFlags.Platforms,
		DryRun:           organizeFlags.DryRun,
		SkipIdentical:    cfg.Organize.SkipIdentical,
		VerifyCopies:     cfg.Organize.VerifyCopies,
		IncludeEmptyDirs: cfg.Organize.IncludeEmptyDirs,
		NormalizeNames:   cfg.Organize.NormalizeNames,
		MaxWorkers:       cfg.Performance.MaxWorkers,
		BandwidthLimit:   cfg.Performance.BandwidthLimit,
		BufferSize:       cfg.Performance.BufferSize,
		CreatedAt:        time.Now(),
	}

	if err := operation.Validate(); err != nil {
		return nil, err
	}

	return operation, nil
}

// parseBandwidth parses a human bandwidth value like "500K", "10M" or
// "1G" into bytes per second
func parseBandwidth(value string) (int64, error) {
	s := strings.TrimSpace(strings.ToUpper(value))
	multiplier := int64(1)
	switch {
	case strings.HasSuffix(s, "K"):
		multiplier = 1024
		s = strings.TrimSuffix(s, "K")
	case strings.HasSuffix(s, "M"):
		multiplier = 1024 * 1024
		s = strings.TrimSuffix(s, "M")
	case strings.HasSuffix(s, "G"):
		multiplier = 1024 * 1024 * 1024
		s = strings.TrimSuffix(s, "G")
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid bandwidth limit: %s (e.g., \"500K\", \"10M\", \"1G\")", value)
	}
	return n * multiplier, nil
}
