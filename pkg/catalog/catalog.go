// Package catalog holds the ordered platform-matching rule tables and
// the recognized ROM extension set. The tables are configuration data
// consumed by a single first-match-wins evaluator; precedence is
// declaration order and nothing else.
package catalog

import (
	"regexp"
)

// Entry maps one folder-name pattern to a platform. Patterns are
// matched case-insensitively and anchored at the start of the name.
// RE2 has no negative lookahead, so an entry may carry Exclude
// patterns: the entry matches only when Pattern matches and none of
// the Exclude patterns do.
type Entry struct {
	Pattern     string
	Shortcode   string
	DisplayName string
	Exclude     []string
}

// Exclusion marks a folder-name pattern that must not be organized,
// with a human-readable reason
type Exclusion struct {
	Pattern string
	Reason  string
}

type compiledEntry struct {
	re      *regexp.Regexp
	exclude []*regexp.Regexp
	entry   Entry
}

type compiledExclusion struct {
	re     *regexp.Regexp
	reason string
}

// Catalog evaluates folder names against the rule tables
type Catalog struct {
	entries    []compiledEntry
	exclusions []compiledExclusion
}

// New compiles the default rule tables
func New() *Catalog {
	return NewFromTables(Entries(), Exclusions())
}

// NewFromTables compiles explicit tables, preserving their order.
// Patterns are static configuration, so compilation failures panic.
func NewFromTables(entries []Entry, exclusions []Exclusion) *Catalog {
	c := &Catalog{}
	for _, e := range entries {
		ce := compiledEntry{
			re:    regexp.MustCompile(`(?i)^(?:` + e.Pattern + `)`),
			entry: e,
		}
		for _, ex := range e.Exclude {
			ce.exclude = append(ce.exclude, regexp.MustCompile(`(?i)^(?:`+ex+`)`))
		}
		c.entries = append(c.entries, ce)
	}
	for _, x := range exclusions {
		c.exclusions = append(c.exclusions, compiledExclusion{
			re:     regexp.MustCompile(`(?i)^(?:` + x.Pattern + `)`),
			reason: x.Reason,
		})
	}
	return c
}

// Match evaluates the name against the entry table in declaration
// order and returns the first matching entry
func (c *Catalog) Match(name string) (Entry, bool) {
	for _, ce := range c.entries {
		if !ce.re.MatchString(name) {
			continue
		}
		excluded := false
		for _, ex := range ce.exclude {
			if ex.MatchString(name) {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		return ce.entry, true
	}
	return Entry{}, false
}

// MatchExclusion returns the exclusion reason for the first matching
// exclusion rule, if any
func (c *Catalog) MatchExclusion(name string) (string, bool) {
	for _, cx := range c.exclusions {
		if cx.re.MatchString(name) {
			return cx.reason, true
		}
	}
	return "", false
}

// Len returns the number of entry rules
func (c *Catalog) Len() int {
	return len(c.entries)
}
