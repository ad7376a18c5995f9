package classify

import (
	"testing"

	"github.com/romsort/romsort/pkg/models"
)

func TestResolveRegionalPolicies(t *testing.T) {
	tests := []struct {
		name         string
		folder       string
		detected     string
		consolidated string
		regional     string
	}{
		{"Famicom", "Nintendo - Famicom (Parent-Clone) (Retool)", "nes", "nes", "famicom"},
		{"SuperFamicom", "Nintendo - Super Famicom (Parent-Clone) (Retool)", "snes", "snes", "sfc"},
		{"SuperNintendo", "Nintendo - Super Nintendo Entertainment System (Retool)", "snes", "snes", "snes"},
		{"NES", "Nintendo - Nintendo Entertainment System (Retool)", "nes", "nes", "nes"},
		{"TurboGrafx", "NEC - TurboGrafx-16 (Parent-Clone) (Retool)", "pcengine", "pcengine", "turbografx"},
		{"PCEngine", "NEC - PC Engine (Retool)", "pcengine", "pcengine", "pcengine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			consolidated := NewRegionalResolver(models.PolicyConsolidated)
			if got := consolidated.Resolve(tt.folder, tt.detected); got != tt.consolidated {
				t.Errorf("consolidated Resolve(%q) = %s, want %s", tt.folder, got, tt.consolidated)
			}

			regional := NewRegionalResolver(models.PolicyRegional)
			if got := regional.Resolve(tt.folder, tt.detected); got != tt.regional {
				t.Errorf("regional Resolve(%q) = %s, want %s", tt.folder, got, tt.regional)
			}
		})
	}
}

// Disk and CD add-on variants keep their own code under every policy
func TestResolveAlwaysSeparate(t *testing.T) {
	tests := []struct {
		name     string
		folder   string
		detected string
		expected string
	}{
		{"MegaCD", "Sega - Mega CD (Parent-Clone) (Retool)", "segacd", "segacd"},
		{"SegaCD", "Sega - Sega CD (Retool)", "genesis", "segacd"},
		{"FamicomDiskSystem", "Nintendo - Famicom Disk System (Retool)", "fds", "fds"},
		{"FamilyComputerDisk", "Nintendo - Family Computer Disk System", "nes", "fds"},
		{"N64DD", "Nintendo - Nintendo 64DD (Retool)", "n64", "n64dd"},
		{"PCEngineCD", "NEC - PC Engine CD-ROM2 (Retool)", "pcengine", "pcenginecd"},
		{"TurboGrafxCD", "NEC - TurboGrafx-CD (Retool)", "pcengine", "turbografxcd"},
	}

	for _, policy := range []models.RegionalPolicy{models.PolicyConsolidated, models.PolicyRegional} {
		r := NewRegionalResolver(policy)
		for _, tt := range tests {
			t.Run(string(policy)+"/"+tt.name, func(t *testing.T) {
				if got := r.Resolve(tt.folder, tt.detected); got != tt.expected {
					t.Errorf("Resolve(%q) = %s, want %s under %s policy",
						tt.folder, got, tt.expected, policy)
				}
			})
		}
	}
}

func TestDisplayNameFor(t *testing.T) {
	t.Run("ConsolidatedAnnotations", func(t *testing.T) {
		r := NewRegionalResolver(models.PolicyConsolidated)
		tests := map[string]string{
			"nes":      "Nintendo Entertainment System (includes Famicom)",
			"snes":     "Super Nintendo Entertainment System (includes Super Famicom)",
			"pcengine": "PC Engine (includes TurboGrafx-16)",
			"segacd":   "Sega CD",
			"gb":       "Game Boy",
		}
		for code, want := range tests {
			if got := r.DisplayNameFor(code); got != want {
				t.Errorf("DisplayNameFor(%s) = %q, want %q", code, got, want)
			}
		}
	})

	t.Run("RegionalLabels", func(t *testing.T) {
		r := NewRegionalResolver(models.PolicyRegional)
		tests := map[string]string{
			"nes":     "Nintendo Entertainment System",
			"famicom": "Nintendo Famicom",
			"sfc":     "Super Famicom",
			"snes":    "Super Nintendo Entertainment System",
		}
		for code, want := range tests {
			if got := r.DisplayNameFor(code); got != want {
				t.Errorf("DisplayNameFor(%s) = %q, want %q", code, got, want)
			}
		}
	})

	t.Run("UnknownCodeFallsBack", func(t *testing.T) {
		r := NewRegionalResolver(models.PolicyConsolidated)
		if got := r.DisplayNameFor("mystery"); got != "mystery" {
			t.Errorf("DisplayNameFor(mystery) = %q, want mystery", got)
		}
	})
}

// PolicyLabel fires only for codes the active policy relabels
func TestPolicyLabel(t *testing.T) {
	consolidated := NewRegionalResolver(models.PolicyConsolidated)
	if name, ok := consolidated.PolicyLabel("nes"); !ok || name != "Nintendo Entertainment System (includes Famicom)" {
		t.Errorf("PolicyLabel(nes) = %q, %v", name, ok)
	}
	if _, ok := consolidated.PolicyLabel("gb"); ok {
		t.Error("PolicyLabel(gb) should not fire; gb absorbs no variants")
	}

	regional := NewRegionalResolver(models.PolicyRegional)
	if _, ok := regional.PolicyLabel("nes"); ok {
		t.Error("the regional policy has no override labels")
	}
}
