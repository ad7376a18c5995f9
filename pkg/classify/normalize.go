package classify

import (
	"regexp"
	"strings"
)

// NormalizeStep identifies one rewrite step of the normalizer
type NormalizeStep string

const (
	// StepSubcategory strips trailing "- Games"/"- Applications" style segments
	StepSubcategory NormalizeStep = "subcategory"
	// StepFormatTag strips bracketed format tags and trailing parentheticals
	StepFormatTag NormalizeStep = "format_tag"
	// StepPublisher rewrites redundant publisher prefixes
	StepPublisher NormalizeStep = "publisher"
)

// Subcategory patterns, most specific first: multi-level segments with
// a bracketed format tag, then without, then single-level variants.
// First match wins; group 1 captures the base platform label.
var subcategoryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(.+?)\s+-\s+\w+\s+-\s+(Games|Applications|Firmware|Educational|Various)\s+-\s+\[.+?\]\s*.*$`),
	regexp.MustCompile(`(?i)^(.+?)\s+-\s+\w+\s+-\s+(Games|Applications|Firmware|Educational|Various)\s*.*$`),
	regexp.MustCompile(`(?i)^(.+?)\s+-\s+(Games|Applications|Firmware|Educational|Compilations|Coverdisks|Samplers|Operating Systems|Demos|Various)\s+-\s+\[.+?\]\s*.*$`),
	regexp.MustCompile(`(?i)^(.+?)\s+-\s+(Games|Applications|Firmware|Educational|Compilations|Coverdisks|Samplers|Operating Systems|Demos|Various)\s*.*$`),
}

// Format indicator patterns, applied repeatedly anywhere they occur
var formatPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\s*-\s*\[.+?\]\s*`),
	regexp.MustCompile(`\s*\[.+?\]\s*`),
	regexp.MustCompile(`\s*\(.+?\)\s*$`),
}

// Publisher rewrites; a small fixed list of known-ambiguous prefixes.
// Publisher context is usually needed for catalog matching, so the
// general case is never stripped.
var publisherPatterns = []struct {
	re          *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)^Microsoft\s+-\s+(MSX.*)$`), "$1"},
}

// Normalizer strips packaging-tool noise from a folder name before
// generic catalog matching, as an ordered chain of independent steps
type Normalizer struct{}

// NewNormalizer creates a normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize runs the three rewrite steps in fixed order and reports
// which steps fired. Subcategory stripping runs before format-tag
// stripping because some subcategory patterns expect the bracketed
// tag still present.
func (n *Normalizer) Normalize(rawName string) (string, map[NormalizeStep]bool) {
	applied := make(map[NormalizeStep]bool)

	name := n.stripSubcategory(rawName, applied)
	name = n.stripFormatTags(name, applied)
	name = n.rewritePublisher(name, applied)

	return name, applied
}

func (n *Normalizer) stripSubcategory(name string, applied map[NormalizeStep]bool) string {
	for _, re := range subcategoryPatterns {
		if m := re.FindStringSubmatch(name); m != nil {
			applied[StepSubcategory] = true
			return strings.TrimSpace(m[1])
		}
	}
	return name
}

func (n *Normalizer) stripFormatTags(name string, applied map[NormalizeStep]bool) string {
	processed := name
	for _, re := range formatPatterns {
		next := re.ReplaceAllString(processed, "")
		if next != processed {
			applied[StepFormatTag] = true
			processed = strings.TrimSpace(next)
		}
	}
	return processed
}

func (n *Normalizer) rewritePublisher(name string, applied map[NormalizeStep]bool) string {
	for _, p := range publisherPatterns {
		next := p.re.ReplaceAllString(name, p.replacement)
		if next != name {
			applied[StepPublisher] = true
			return next
		}
	}
	return name
}
