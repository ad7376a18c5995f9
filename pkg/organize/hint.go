package organize

import (
	"regexp"
	"strings"
)

// hintPatterns are tried in order of preference against the source
// folder name. The first capture of 1-8 characters that is not a
// stopword becomes the disambiguation tag. The order is part of the
// tool's observable naming behavior, so it stays fixed.
var hintPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)-(\w{1,8})$`),         // suffix after dash: NES-1
	regexp.MustCompile(`(?i)_(\w{1,8})$`),         // suffix after underscore: NES_v2
	regexp.MustCompile(`(?i)\(([^)]{1,8})\)`),     // short parenthetical: (Alt)
	regexp.MustCompile(`(?i)\[([^\]]{1,8})\]`),    // short bracketed: [USA]
	regexp.MustCompile(`(?i)(?:^|\s)v(\d+)`),      // version number: v2
	regexp.MustCompile(`(?i)(?:^|\s)(\d{1,3})$`),  // trailing bare number
	regexp.MustCompile(`(?i)(?:^|\s)(\w{2,4})(?:\s|$)`), // short word
}

var hintStopwords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "of": {},
	"in": {}, "at": {}, "to": {}, "for": {},
}

// ExtractHint derives a short identifier from a source folder name for
// use in collision renames. Returns "" when no meaningful hint exists.
func ExtractHint(folderName string) string {
	folderName = strings.TrimSpace(folderName)

	for _, pattern := range hintPatterns {
		match := pattern.FindStringSubmatch(folderName)
		if match == nil {
			continue
		}
		hint := strings.TrimSpace(match[1])
		if len(hint) < 1 || len(hint) > 8 {
			continue
		}
		if _, stop := hintStopwords[strings.ToLower(hint)]; stop {
			continue
		}
		return hint
	}
	return ""
}
