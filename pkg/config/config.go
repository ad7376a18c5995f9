package config

import (
	"github.com/romsort/romsort/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Organize    OrganizeConfig    `yaml:"organize"`
	Performance PerformanceConfig `yaml:"performance"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// OrganizeConfig holds classification and copy behavior settings
type OrganizeConfig struct {
	RegionalPolicy   models.RegionalPolicy `yaml:"regional_policy"`
	SkipIdentical    bool                  `yaml:"skip_identical"`
	VerifyCopies     bool                  `yaml:"verify_copies"`
	IncludeEmptyDirs bool                  `yaml:"include_empty_dirs"`
	NormalizeNames   bool                  `yaml:"normalize_names"`
}

// PerformanceConfig holds performance-related settings
type PerformanceConfig struct {
	MaxWorkers     int   `yaml:"max_workers"`
	BufferSize     int   `yaml:"buffer_size"`
	BandwidthLimit int64 `yaml:"bandwidth_limit"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show progress bars
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"` // "json" or "text"
	Level   string `yaml:"level"`  // "debug", "info", "warn", "error"
	File    string `yaml:"file"`   // Log file path (empty = stderr)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Organize: OrganizeConfig{
			RegionalPolicy:   models.PolicyConsolidated,
			SkipIdentical:    true,
			VerifyCopies:     true,
			IncludeEmptyDirs: false,
			NormalizeNames:   true,
		},
		Performance: PerformanceConfig{
			MaxWorkers:     4,
			BufferSize:     65536,
			BandwidthLimit: 0,
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Format:  "json",
			Level:   "info",
			File:    "",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Organize.RegionalPolicy != models.PolicyConsolidated &&
		c.Organize.RegionalPolicy != models.PolicyRegional {
		return &models.ValidationError{
			Field:   "organize.regional_policy",
			Message: "must be 'consolidated' or 'regional'",
		}
	}

	if c.Performance.MaxWorkers < 1 || c.Performance.MaxWorkers > 8 {
		return &models.ValidationError{
			Field:   "performance.max_workers",
			Message: "must be between 1 and 8",
		}
	}

	if c.Performance.BufferSize < 1024 {
		return &models.ValidationError{
			Field:   "performance.buffer_size",
			Message: "must be at least 1024 bytes",
		}
	}

	if c.Performance.BandwidthLimit < 0 {
		return &models.ValidationError{
			Field:   "performance.bandwidth_limit",
			Message: "must be zero or positive",
		}
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}
