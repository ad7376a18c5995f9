package platform

import "testing"

func TestIsWSL(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    bool
	}{
		{"WSL2Kernel", "Linux version 5.15.90.1-microsoft-standard-WSL2", true},
		{"WSL1Kernel", "Linux version 4.4.0-19041-Microsoft", true},
		{"NativeLinux", "Linux version 6.1.0-13-amd64 (debian-kernel@lists.debian.org)", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWSL(tt.version); got != tt.want {
				t.Errorf("IsWSL(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

func TestIsTranslatedPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/mnt/c/Users/roms", true},
		{"/mnt/d", true},
		{"/mntx/c", false},
		{"/home/user/roms", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsTranslatedPath(tt.path); got != tt.want {
			t.Errorf("IsTranslatedPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
