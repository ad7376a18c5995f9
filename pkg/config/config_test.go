package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/romsort/romsort/pkg/models"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() should validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"BadPolicy", func(c *Config) { c.Organize.RegionalPolicy = "worldwide" }},
		{"ZeroWorkers", func(c *Config) { c.Performance.MaxWorkers = 0 }},
		{"TooManyWorkers", func(c *Config) { c.Performance.MaxWorkers = 32 }},
		{"TinyBuffer", func(c *Config) { c.Performance.BufferSize = 100 }},
		{"NegativeBandwidth", func(c *Config) { c.Performance.BandwidthLimit = -1 }},
		{"BadOutputFormat", func(c *Config) { c.Output.Format = "xml" }},
		{"BadLogLevel", func(c *Config) { c.Logging.Level = "trace" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
organize:
  regional_policy: regional
  skip_identical: false
performance:
  max_workers: 2
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Organize.RegionalPolicy != models.PolicyRegional {
		t.Errorf("RegionalPolicy = %s, want regional", cfg.Organize.RegionalPolicy)
	}
	if cfg.Organize.SkipIdentical {
		t.Error("SkipIdentical should be overridden to false")
	}
	if cfg.Performance.MaxWorkers != 2 {
		t.Errorf("MaxWorkers = %d, want 2", cfg.Performance.MaxWorkers)
	}
	// Untouched sections keep their defaults
	if cfg.Output.Format != "human" {
		t.Errorf("Format = %s, want default human", cfg.Output.Format)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("performance:\n  max_workers: 99\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("LoadFromFile() should reject invalid values")
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := Default()
	cfg.Organize.RegionalPolicy = models.PolicyRegional
	cfg.Performance.BandwidthLimit = 1 << 20

	if err := SaveToFile(cfg, path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if loaded.Organize.RegionalPolicy != models.PolicyRegional {
		t.Errorf("RegionalPolicy = %s, want regional", loaded.Organize.RegionalPolicy)
	}
	if loaded.Performance.BandwidthLimit != 1<<20 {
		t.Errorf("BandwidthLimit = %d, want %d", loaded.Performance.BandwidthLimit, 1<<20)
	}
}
