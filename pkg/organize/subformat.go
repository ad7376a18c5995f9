package organize

import (
	"path/filepath"
	"strings"
)

// SubformatStandard is the fallback subdirectory for platforms with
// multiple on-disk formats when the source folder carries no marker
const SubformatStandard = "standard"

// subformatMarkers maps the platforms that nest one extra directory
// level by format. Nintendo 64 sets historically ship in two byte
// orders, and DS dumps come in two firmware-encryption states; mixing
// them in one directory breaks emulators that expect a single format.
// Markers are matched case-insensitively as substrings of the source
// folder name, in declared order.
var subformatMarkers = map[string][]string{
	"n64": {"bigendian", "byteswapped"},
	"nds": {"encrypted", "decrypted"},
}

// SubformatFor returns the format subdirectory for a platform given
// its source folder name, or "" for platforms without subformats.
func SubformatFor(platformCode, sourceFolder string) string {
	markers, ok := subformatMarkers[platformCode]
	if !ok {
		return ""
	}
	lower := strings.ToLower(sourceFolder)
	for _, marker := range markers {
		if strings.Contains(lower, marker) {
			return marker
		}
	}
	return SubformatStandard
}

// TargetDir returns the directory files from one source folder land in:
// targetRoot/<platform> or targetRoot/<platform>/<subformat>.
func TargetDir(targetRoot, platformCode, sourceFolder string) string {
	if sub := SubformatFor(platformCode, sourceFolder); sub != "" {
		return filepath.Join(targetRoot, platformCode, sub)
	}
	return filepath.Join(targetRoot, platformCode)
}
