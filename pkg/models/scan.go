package models

import "sort"

// ScanResult aggregates everything a directory scan discovered
type ScanResult struct {
	// Platforms keyed by shortcode
	Platforms map[string]*PlatformRecord

	// Excluded folder names mapped to the exclusion reason
	Excluded map[string]string

	// Folder names no rule matched
	Unclassified []string

	Stats DirectoryStats
}

// DirectoryStats counts what happened to top-level source entries
type DirectoryStats struct {
	TotalProcessed      int
	DirectoriesWithROMs int
	EmptyDirectories    int
	TargetSkipped       int

	// UnclassifiedFiles counts recognized files sitting in folders no
	// rule matched; they stay where they are
	UnclassifiedFiles int
}

// TotalFiles sums recognized files across all platforms
func (r *ScanResult) TotalFiles() int {
	total := 0
	for _, p := range r.Platforms {
		total += p.FileCount
	}
	return total
}

// Shortcodes returns the discovered platform codes in sorted order
func (r *ScanResult) Shortcodes() []string {
	codes := make([]string, 0, len(r.Platforms))
	for code := range r.Platforms {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
