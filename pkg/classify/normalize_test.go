package classify

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		// Subcategory consolidation
		{"Atari2600Games", "Atari 2600 & VCS - Games (Retool)", "Atari 2600 & VCS"},
		{"GameBoyApplications", "Nintendo Game Boy - Applications (Retool)", "Nintendo Game Boy"},
		{"MarkIIIFirmware", "Sega Mark III & Master System - Firmware (Retool)", "Sega Mark III & Master System"},
		{"WonderSwanApplications", "Bandai WonderSwan - Applications (Retool)", "Bandai WonderSwan"},

		// Format indicator removal
		{"Atari8bitBIN", "Atari 8bit - Games - [BIN] (Retool)", "Atari 8bit"},
		{"FamicomNESTag", "Nintendo Famicom & Entertainment System - Games - [NES] (Retool)", "Nintendo Famicom & Entertainment System"},
		{"BracketOnly", "Amiga Collection [ADF]", "Amiga Collection"},

		// Publisher disambiguation
		{"MicrosoftMSX", "Microsoft - MSX (Parent-Clone) (Retool)", "MSX"},
		{"MicrosoftMSX2", "Microsoft - MSX2 (Retool)", "MSX2"},

		// Trailing parentheticals
		{"ParentClone", "Nintendo - Nintendo Entertainment System (Retool)", "Nintendo - Nintendo Entertainment System"},
		{"NoAnnotations", "Sega - Mega Drive - Genesis", "Sega - Mega Drive - Genesis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := n.Normalize(tt.input)
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeAppliedSteps(t *testing.T) {
	n := NewNormalizer()

	t.Run("SubcategoryAndFormat", func(t *testing.T) {
		_, applied := n.Normalize("Atari 2600 & VCS - Games (Retool)")
		if !applied[StepSubcategory] {
			t.Error("subcategory step should have fired")
		}
	})

	t.Run("PublisherOnly", func(t *testing.T) {
		_, applied := n.Normalize("Microsoft - MSX2 (Retool)")
		if !applied[StepPublisher] {
			t.Error("publisher step should have fired")
		}
	})

	t.Run("Unchanged", func(t *testing.T) {
		name, applied := n.Normalize("Sega - Mega Drive - Genesis")
		if name != "Sega - Mega Drive - Genesis" {
			t.Errorf("name changed to %q", name)
		}
		if len(applied) != 0 {
			t.Errorf("no steps should have fired, got %v", applied)
		}
	})
}

// Subcategory stripping must run before format-tag stripping: the
// multi-level subcategory patterns expect the bracketed tag present.
func TestNormalizeStepOrder(t *testing.T) {
	n := NewNormalizer()

	got, applied := n.Normalize("Atari 8bit - Games - [BIN] (Retool)")
	if got != "Atari 8bit" {
		t.Errorf("Normalize() = %q, want Atari 8bit", got)
	}
	if !applied[StepSubcategory] {
		t.Error("subcategory step should consume the bracketed tag form")
	}
}
