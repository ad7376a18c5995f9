package models

// RegionalPolicy defines how regional platform variants are grouped
type RegionalPolicy string

const (
	// PolicyConsolidated merges regional variants into one platform code
	PolicyConsolidated RegionalPolicy = "consolidated"
	// PolicyRegional keeps regional variants as distinct platform codes
	PolicyRegional RegionalPolicy = "regional"
)

// PlatformRecord accumulates everything discovered about one platform
// during a scan. Mutated only by the scanner; the copy phase treats it
// as a read-only snapshot.
type PlatformRecord struct {
	Shortcode     string
	DisplayName   string
	FolderCount   int
	FileCount     int
	SourceFolders []string // relative to the source root, in discovery order
}

// ClassificationKind discriminates the outcome of classifying one folder name
type ClassificationKind string

const (
	// ClassMatched means the folder maps to a recognized platform
	ClassMatched ClassificationKind = "matched"
	// ClassExcluded means the folder matches an exclusion rule
	ClassExcluded ClassificationKind = "excluded"
	// ClassUnclassified means no rule matched; a normal result, not an error
	ClassUnclassified ClassificationKind = "unclassified"
)

// ClassificationResult is the outcome of classifying one folder name.
// Produced fresh per call; carries no identity beyond it.
type ClassificationResult struct {
	Kind        ClassificationKind
	Shortcode   string
	DisplayName string
	Reason      string // populated for exclusions

	// Diagnostics, informational only
	Handler    string
	Confidence float64
	Normalized string // cleaned name used for catalog matching, if any
}

// Matched reports whether the result carries a platform code
func (r ClassificationResult) Matched() bool {
	return r.Kind == ClassMatched
}
