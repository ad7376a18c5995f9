package organize

import "testing"

func TestExtractHint(t *testing.T) {
	tests := []struct {
		name     string
		folder   string
		expected string
	}{
		{"DashSuffix", "NES-1", "1"},
		{"DashSuffixWord", "NES-USA", "USA"},
		{"UnderscoreSuffix", "NES_v2", "v2"},
		{"Parenthetical", "Nintendo Entertainment System (Europe)", "Europe"},
		{"ShortParenthetical", "NES (Alt)", "Alt"},
		{"Bracketed", "NES [USA]", "USA"},
		{"VersionToken", "GoodNES v3.21", "3"},
		{"TrailingNumber", "NES 2", "2"},
		{"RetoolAnnotation", "Nintendo - Famicom (Parent-Clone) (Retool)", "Retool"},
		{"LongParentheticalSkipped", "System (Parent-Clone)", ""},
		{"StopwordRejected", "Sound of", ""},
		{"NoHint", "Supercalifragilistic", ""},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractHint(tt.folder); got != tt.expected {
				t.Errorf("ExtractHint(%q) = %q, want %q", tt.folder, got, tt.expected)
			}
		})
	}
}

// The dash-suffix pattern outranks the parenthetical pattern; order is
// observable in produced filenames and must stay stable
func TestExtractHintPreferenceOrder(t *testing.T) {
	if got := ExtractHint("NES (Alt)-USA"); got != "USA" {
		t.Errorf("ExtractHint() = %q, want dash suffix USA to win", got)
	}
}
