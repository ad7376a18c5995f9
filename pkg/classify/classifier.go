package classify

import (
	"github.com/romsort/romsort/pkg/catalog"
	"github.com/romsort/romsort/pkg/models"
)

// Classifier maps one candidate folder name to a final platform,
// an exclusion, or an unclassified result. Per call it runs:
// exclusion check, specialized matchers, normalize-then-catalog,
// regional resolution. Unrecognized input is a normal result, never
// an error.
type Classifier struct {
	catalog     *catalog.Catalog
	specialized *SpecializedClassifier
	normalizer  *Normalizer
	resolver    *RegionalResolver
	normalize   bool
}

// NewClassifier builds the full pipeline for the given policy
func NewClassifier(policy models.RegionalPolicy) *Classifier {
	return &Classifier{
		catalog:     catalog.New(),
		specialized: NewSpecializedClassifier(),
		normalizer:  NewNormalizer(),
		resolver:    NewRegionalResolver(policy),
		normalize:   true,
	}
}

// SetNormalizeEnabled toggles the name-normalization step before
// generic catalog matching
func (c *Classifier) SetNormalizeEnabled(enabled bool) {
	c.normalize = enabled
}

// Resolver exposes the regional resolver for display-name lookups
func (c *Classifier) Resolver() *RegionalResolver {
	return c.resolver
}

// Classify runs the pipeline on one raw folder name
func (c *Classifier) Classify(rawName string) models.ClassificationResult {
	// Exclusions win over everything, including specialized matchers
	if reason, ok := c.catalog.MatchExclusion(rawName); ok {
		return models.ClassificationResult{
			Kind:   models.ClassExcluded,
			Reason: reason,
		}
	}

	// Specialized packaging-tool conventions short-circuit the catalog
	if m, ok := c.specialized.Classify(rawName); ok {
		code := c.resolver.Resolve(rawName, m.Shortcode)
		return models.ClassificationResult{
			Kind:        models.ClassMatched,
			Shortcode:   code,
			DisplayName: c.displayName(code, m.Shortcode, m.DisplayName),
			Handler:     m.Handler,
			Confidence:  m.Confidence,
		}
	}

	name := rawName
	if c.normalize {
		name, _ = c.normalizer.Normalize(rawName)
	}

	if entry, ok := c.catalog.Match(name); ok {
		code := c.resolver.Resolve(rawName, entry.Shortcode)
		return models.ClassificationResult{
			Kind:        models.ClassMatched,
			Shortcode:   code,
			DisplayName: c.displayName(code, entry.Shortcode, entry.DisplayName),
			Handler:     "catalog",
			Normalized:  name,
		}
	}

	return models.ClassificationResult{
		Kind:       models.ClassUnclassified,
		Normalized: name,
	}
}

// displayName picks the label for a resolved code. The policy label
// wins when the active policy changes how the code should read, so a
// consolidated code shows "... (includes Famicom)" even when the
// matcher's own code survived resolution unchanged. A remapped code
// takes the resolver's label for the new code; otherwise the matcher's
// own name stands.
func (c *Classifier) displayName(code, detected, fallback string) string {
	if name, ok := c.resolver.PolicyLabel(code); ok {
		return name
	}
	if code != detected {
		return c.resolver.DisplayNameFor(code)
	}
	return fallback
}
