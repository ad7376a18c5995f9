package catalog

import (
	"path/filepath"
	"strings"
)

// romExtensions is the recognized ROM extension set: cartridge and
// disc formats across all supported systems plus common archive
// containers. This set is a contract with operators about what counts
// as a ROM; extend it deliberately, never inline at call sites.
var romExtensions = map[string]struct{}{
	// Nintendo systems
	".nes": {}, ".fds": {}, ".nsf": {}, ".unf": {}, ".nez": {},
	".sfc": {}, ".smc": {}, ".swc": {}, ".fig": {}, ".bsx": {}, ".st": {},
	".gb": {}, ".gbc": {}, ".gba": {}, ".sgb": {},
	".n64": {}, ".v64": {}, ".z64": {}, ".n64dd": {}, ".rom": {},
	".gcm": {}, ".iso": {}, ".rvz": {}, ".ciso": {}, ".wbfs": {}, ".wad": {},
	".nds": {}, ".nde": {}, ".srl": {},
	".3ds": {}, ".cia": {}, ".3dsx": {},
	".xci": {}, ".nsp": {},

	// Sega systems
	".sms": {}, ".gg": {}, ".sg": {}, ".sgd": {},
	".md": {}, ".gen": {}, ".bin": {}, ".smd": {},
	".32x": {},

	// Sony systems
	".pbp": {}, ".cso": {}, ".ecm": {}, ".sbi": {},
	".vpk": {},

	// Atari systems
	".a26": {}, ".a52": {}, ".a78": {},
	".lnx": {}, ".lyx": {},
	".jag": {}, ".j64": {},

	// Other handhelds
	".ws": {}, ".wsc": {}, ".pc2": {},
	".ngp": {}, ".ngc": {},
	".sv": {}, ".vb": {}, ".min": {},

	// Computer and console misc
	".pce": {}, ".int": {}, ".col": {},
	".d64": {}, ".g64": {}, ".t64": {}, ".prg": {}, ".crt": {},
	".adf": {}, ".adz": {}, ".dms": {}, ".hdf": {},
	".cas": {}, ".dsk": {},

	// Disc images and playlists
	".cue": {}, ".chd": {}, ".mds": {}, ".ccd": {}, ".sub": {}, ".img": {},
	".m3u": {}, ".mdf": {}, ".nrg": {},

	// Archive containers
	".zip": {}, ".7z": {}, ".rar": {}, ".gz": {}, ".bz2": {},
}

// IsROMFile reports whether the filename carries a recognized ROM
// extension. Matching is case-insensitive; .tar.gz counts through its
// .gz suffix.
func IsROMFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	_, ok := romExtensions[ext]
	return ok
}

// ROMExtensions returns a copy of the recognized extension set
func ROMExtensions() []string {
	out := make([]string, 0, len(romExtensions))
	for ext := range romExtensions {
		out = append(out, ext)
	}
	return out
}
