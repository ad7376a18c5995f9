package classify

import (
	"regexp"

	"github.com/romsort/romsort/pkg/models"
)

// alwaysSeparate lists hardware variants that keep their own platform
// code under every policy: disk-system and disk-drive add-ons and the
// two 16-bit-era CD add-ons. Matched anywhere in the raw folder name,
// before any policy logic, so a consolidating policy can never merge
// meaningfully different hardware.
var alwaysSeparate = []struct {
	shortcode string
	patterns  []*regexp.Regexp
}{
	{"fds", []*regexp.Regexp{
		regexp.MustCompile(`(?i)Family Computer.*Disk.*System`),
		regexp.MustCompile(`(?i)Famicom.*Disk.*System`),
	}},
	{"n64dd", []*regexp.Regexp{
		regexp.MustCompile(`(?i)Nintendo 64DD`),
	}},
	{"segacd", []*regexp.Regexp{
		regexp.MustCompile(`(?i)Sega.*CD`),
		regexp.MustCompile(`(?i)Mega.?CD`),
	}},
	{"pcenginecd", []*regexp.Regexp{
		regexp.MustCompile(`(?i)PC Engine.*CD`),
	}},
	{"turbografxcd", []*regexp.Regexp{
		regexp.MustCompile(`(?i)TurboGrafx.*CD`),
	}},
}

// regionalRules remap a detected platform to its regional branding
// under the regional policy, most specific first. RE2 has no negative
// lookahead, so the guard continuations are explicit skip patterns.
var regionalRules = []struct {
	shortcode string
	match     *regexp.Regexp
	skip      *regexp.Regexp
}{
	{"snes", regexp.MustCompile(`(?i)Super Nintendo`), nil},
	{"sfc", regexp.MustCompile(`(?i)Super Famicom`), nil},
	{"nes", regexp.MustCompile(`(?i)Nintendo Entertainment System`), nil},
	{"famicom", regexp.MustCompile(`(?i)Famicom`), regexp.MustCompile(`(?i)Famicom\s+(Disk|&)`)},
	{"famicom", regexp.MustCompile(`(?i)Family Computer`), regexp.MustCompile(`(?i)Family Computer\s+Disk`)},
	{"pcengine", regexp.MustCompile(`(?i)PC Engine`), regexp.MustCompile(`(?i)PC Engine\s+CD`)},
	{"turbografx", regexp.MustCompile(`(?i)TurboGrafx`), regexp.MustCompile(`(?i)TurboGrafx.*\s+CD`)},
}

// consolidatedDisplayNames clarify which variants a consolidated code
// absorbs
var consolidatedDisplayNames = map[string]string{
	"nes":      "Nintendo Entertainment System (includes Famicom)",
	"snes":     "Super Nintendo Entertainment System (includes Super Famicom)",
	"pcengine": "PC Engine (includes TurboGrafx-16)",
}

// displayNames is the policy-independent label table
var displayNames = map[string]string{
	"3do":             "3DO Interactive Multiplayer",
	"amiga":           "Commodore Amiga",
	"amstradcpc":      "Amstrad CPC",
	"apple2":          "Apple II",
	"arcade":          "Arcade (FinalBurn Neo)",
	"atari2600":       "Atari 2600",
	"atari5200":       "Atari 5200",
	"atari7800":       "Atari 7800",
	"atari800":        "Atari 8-bit Family",
	"atarijaguar":     "Atari Jaguar",
	"atarijaguarcd":   "Atari Jaguar CD",
	"atarilynx":       "Atari Lynx",
	"atarist":         "Atari ST",
	"atarixe":         "Atari XE",
	"atomiswave":      "Atomiswave Arcade",
	"c64":             "Commodore 64",
	"cannonball":      "Cannonball (OutRun Engine)",
	"coco":            "TRS-80 Color Computer",
	"coleco":          "ColecoVision",
	"colecovision":    "ColecoVision",
	"dragon32":        "Dragon Data",
	"dreamcast":       "Sega Dreamcast",
	"fds":             "Famicom Disk System",
	"famicom":         "Nintendo Famicom",
	"gamegear":        "Sega Game Gear",
	"gb":              "Game Boy",
	"gba":             "Game Boy Advance",
	"gbc":             "Game Boy Color",
	"gc":              "GameCube",
	"genesis":         "Sega Genesis",
	"gizmondo":        "Tiger Gizmondo",
	"intellivision":   "Mattel Intellivision",
	"macintosh":       "Apple Macintosh",
	"mastersystem":    "Sega Master System",
	"megadrive":       "Sega Mega Drive",
	"msx":             "MSX",
	"n3ds":            "Nintendo 3DS",
	"n64":             "Nintendo 64",
	"n64dd":           "Nintendo 64DD",
	"nds":             "Nintendo DS",
	"neogeo":          "Neo Geo",
	"neogeocd":        "Neo Geo CD",
	"nes":             "Nintendo Entertainment System",
	"ngp":             "Neo Geo Pocket",
	"ngpc":            "Neo Geo Pocket Color",
	"odyssey2":        "Magnavox Odyssey 2",
	"othello":         "Othello Multivision",
	"pc":              "PC (IBM Compatible)",
	"pc98":            "NEC PC-98",
	"pcengine":        "PC Engine",
	"pcenginecd":      "PC Engine CD",
	"pokemini":        "Pokemon Mini",
	"pokitto":         "Pokitto",
	"ps2":             "PlayStation 2",
	"ps3":             "PlayStation 3",
	"ps4":             "PlayStation 4",
	"psp":             "PlayStation Portable",
	"psvita":          "PlayStation Vita",
	"psx":             "PlayStation",
	"saturn":          "Sega Saturn",
	"sega32x":         "Sega 32X",
	"segacd":          "Sega CD",
	"sfc":             "Super Famicom",
	"sg1000":          "Sega SG-1000",
	"snes":            "Super Nintendo Entertainment System",
	"supergrafx":      "PC Engine SuperGrafx",
	"supervision":     "Watara Supervision",
	"trs80":           "TRS-80",
	"turbografx":      "TurboGrafx-16",
	"turbografxcd":    "TurboGrafx-16 CD",
	"unknown":         "Unknown Good Tool Collection",
	"vectrex":         "GCE Vectrex",
	"virtualboy":      "Virtual Boy",
	"wii":             "Wii",
	"wiiu":            "Wii U",
	"wonderswan":      "Bandai WonderSwan",
	"wonderswancolor": "Bandai WonderSwan Color",
	"x1":              "Sharp X1",
	"x68000":          "Sharp X68000",
	"xbox":            "Microsoft Xbox",
	"xbox360":         "Microsoft Xbox 360",
	"zxspectrum":      "ZX Spectrum",
}

// RegionalResolver post-processes a tentative platform code according
// to the operator's regional policy
type RegionalResolver struct {
	policy models.RegionalPolicy
}

// NewRegionalResolver creates a resolver for the given policy
func NewRegionalResolver(policy models.RegionalPolicy) *RegionalResolver {
	return &RegionalResolver{policy: policy}
}

// Resolve returns the final platform code for a folder, given the code
// the catalog or a specialized matcher detected
func (r *RegionalResolver) Resolve(folderName, detected string) string {
	for _, v := range alwaysSeparate {
		for _, re := range v.patterns {
			if re.MatchString(folderName) {
				return v.shortcode
			}
		}
	}

	if r.policy == models.PolicyRegional {
		for _, rule := range regionalRules {
			if !rule.match.MatchString(folderName) {
				continue
			}
			if rule.skip != nil && rule.skip.MatchString(folderName) {
				continue
			}
			return rule.shortcode
		}
	}

	return detected
}

// PolicyLabel returns a label only when the active policy changes how
// the code should read: consolidated codes gain the parenthetical
// naming the variants they absorb
func (r *RegionalResolver) PolicyLabel(shortcode string) (string, bool) {
	if r.policy == models.PolicyConsolidated {
		if name, ok := consolidatedDisplayNames[shortcode]; ok {
			return name, true
		}
	}
	return "", false
}

// DisplayNameFor returns a policy-aware label: consolidated mode
// appends a parenthetical naming the absorbed variants, regional mode
// returns the precise regional label
func (r *RegionalResolver) DisplayNameFor(shortcode string) string {
	if r.policy == models.PolicyConsolidated {
		if name, ok := consolidatedDisplayNames[shortcode]; ok {
			return name
		}
	}
	if name, ok := displayNames[shortcode]; ok {
		return name
	}
	return shortcode
}
