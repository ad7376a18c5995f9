// Package classify maps raw collection folder names to platform codes.
// The pipeline is layered: specialized packaging-tool matchers run
// first, then name normalization feeds the generic catalog, and a
// regional resolver applies the operator's variant policy last.
package classify

import (
	"fmt"
	"regexp"
	"strings"
)

// Specialized matcher confidence levels, informational only; no
// decision logic branches on them
const (
	confidenceGoodTools = 0.95
	confidenceFinalBurn = 0.85
	confidenceMAME      = 0.75
)

// goodToolCodes maps GoodTools abbreviated platform tags to platforms
var goodToolCodes = map[string]struct{ shortcode, display string }{
	"NES":  {"nes", "Nintendo Entertainment System"},
	"SNES": {"snes", "Super Nintendo Entertainment System"},
	"N64":  {"n64", "Nintendo 64"},
	"GEN":  {"genesis", "Sega Genesis"},
	"SMS":  {"mastersystem", "Sega Master System"},
	"GG":   {"gamegear", "Sega Game Gear"},
	"32X":  {"sega32x", "Sega 32X"},
	"MCD":  {"segacd", "Sega CD"},
	"SAT":  {"saturn", "Sega Saturn"},
	"PCE":  {"pcengine", "PC Engine"},
	"LYNX": {"atarilynx", "Atari Lynx"},
	"5200": {"atari5200", "Atari 5200"},
	"7800": {"atari7800", "Atari 7800"},
	"2600": {"atari2600", "Atari 2600"},
	"A26":  {"atari2600", "Atari 2600"},
	"A78":  {"atari7800", "Atari 7800"},
	"A52":  {"atari5200", "Atari 5200"},
	"GBC":  {"gbc", "Game Boy Color"},
	"GB":   {"gb", "Game Boy"},
	"GBA":  {"gba", "Game Boy Advance"},
	"COL":  {"coleco", "ColecoVision"},
	"INTV": {"intellivision", "Mattel Intellivision"},
}

// finalBurnPlatforms maps FinalBurn Neo collection descriptions to
// platforms; unmatched descriptions fall back to the arcade bucket
var finalBurnPlatforms = map[string]struct{ shortcode, display string }{
	"NES Games":           {"nes", "Nintendo Entertainment System"},
	"SNES Games":          {"snes", "Super Nintendo Entertainment System"},
	"Genesis Games":       {"genesis", "Sega Genesis"},
	"Master System Games": {"mastersystem", "Sega Master System"},
	"Game Gear Games":     {"gamegear", "Sega Game Gear"},
	"PC Engine Games":     {"pcengine", "PC Engine"},
	"Neo Geo Games":       {"neogeo", "Neo Geo"},
	"CPS Games":           {"arcade", "Arcade (CPS)"},
	"Arcade Games":        {"arcade", "Arcade"},
}

var (
	goodToolPattern  = regexp.MustCompile(`(?i)^Good([A-Z0-9]+)\b`)
	finalBurnPattern = regexp.MustCompile(`(?i)^FinalBurn Neo - (.+)$`)
	mamePattern      = regexp.MustCompile(`(?i)^MAME`)
)

// SpecializedMatch reports which packaging-tool matcher recognized a
// folder name
type SpecializedMatch struct {
	Shortcode   string
	DisplayName string
	Handler     string
	Confidence  float64
}

// SpecializedClassifier recognizes GoodTools, FinalBurn Neo, and MAME
// collection names. These conventions are higher-precision than the
// generic catalog and run before it; a match short-circuits the rest
// of classification including name normalization.
type SpecializedClassifier struct{}

// NewSpecializedClassifier creates a specialized classifier
func NewSpecializedClassifier() *SpecializedClassifier {
	return &SpecializedClassifier{}
}

// Classify tries the matchers in fixed priority order: GoodTools,
// then FinalBurn Neo, then the MAME catch-all
func (c *SpecializedClassifier) Classify(rawName string) (SpecializedMatch, bool) {
	if m, ok := c.matchGoodTools(rawName); ok {
		return m, true
	}
	if m, ok := c.matchFinalBurn(rawName); ok {
		return m, true
	}
	if m, ok := c.matchMAME(rawName); ok {
		return m, true
	}
	return SpecializedMatch{}, false
}

// matchGoodTools recognizes names like "GoodNES v3.27" or
// "GoodN64 (2022-01-15)". Unknown tags map to the unknown-collection
// placeholder platform rather than failing.
func (c *SpecializedClassifier) matchGoodTools(rawName string) (SpecializedMatch, bool) {
	m := goodToolPattern.FindStringSubmatch(rawName)
	if m == nil {
		return SpecializedMatch{}, false
	}

	code := strings.ToUpper(m[1])
	if p, ok := goodToolCodes[code]; ok {
		return SpecializedMatch{
			Shortcode:   p.shortcode,
			DisplayName: p.display,
			Handler:     "good_tools",
			Confidence:  confidenceGoodTools,
		}, true
	}

	return SpecializedMatch{
		Shortcode:   "unknown",
		DisplayName: fmt.Sprintf("Good %s Collection", code),
		Handler:     "good_tools",
		Confidence:  confidenceGoodTools,
	}, true
}

// matchFinalBurn recognizes "FinalBurn Neo - <platform> Games" names
func (c *SpecializedClassifier) matchFinalBurn(rawName string) (SpecializedMatch, bool) {
	m := finalBurnPattern.FindStringSubmatch(rawName)
	if m == nil {
		return SpecializedMatch{}, false
	}

	desc := m[1]
	if p, ok := finalBurnPlatforms[desc]; ok {
		return SpecializedMatch{
			Shortcode:   p.shortcode,
			DisplayName: p.display,
			Handler:     "finalburn_neo",
			Confidence:  confidenceFinalBurn,
		}, true
	}

	return SpecializedMatch{
		Shortcode:   "arcade",
		DisplayName: fmt.Sprintf("Arcade (FinalBurn Neo %s)", desc),
		Handler:     "finalburn_neo",
		Confidence:  confidenceFinalBurn,
	}, true
}

// matchMAME treats any MAME-style dump name as arcade content
func (c *SpecializedClassifier) matchMAME(rawName string) (SpecializedMatch, bool) {
	if !mamePattern.MatchString(rawName) {
		return SpecializedMatch{}, false
	}
	return SpecializedMatch{
		Shortcode:   "arcade",
		DisplayName: "Arcade (MAME)",
		Handler:     "mame",
		Confidence:  confidenceMAME,
	}, true
}
