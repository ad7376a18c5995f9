package catalog

// Entries returns the ordered platform rule table. Order is the only
// precedence mechanism: narrower rules (disk add-ons, color/advance
// revisions) are declared before their broader parents so they win.
// Treat as append-only configuration.
func Entries() []Entry {
	return []Entry{
		// Nintendo systems, most specific first
		{Pattern: `Nintendo.*Super Nintendo.*`, Shortcode: "snes", DisplayName: "Super Nintendo Entertainment System"},
		{Pattern: `Nintendo.*Super Famicom.*`, Shortcode: "snes", DisplayName: "Super Nintendo Entertainment System"},
		{Pattern: `Nintendo.*Nintendo Entertainment System.*`, Shortcode: "nes", DisplayName: "Nintendo Entertainment System"},
		{Pattern: `Nintendo.*Famicom.*Entertainment System.*`, Shortcode: "nes", DisplayName: "Nintendo Entertainment System"},
		{Pattern: `Nintendo.*Famicom.*`, Shortcode: "nes", DisplayName: "Nintendo Entertainment System",
			Exclude: []string{`Nintendo.*Famicom\s+(Disk|&)`}},
		{Pattern: `Nintendo.*Family Computer.*`, Shortcode: "nes", DisplayName: "Nintendo Entertainment System",
			Exclude: []string{`Nintendo.*Family Computer\s+Disk`}},
		{Pattern: `Nintendo.*Family Computer.*Disk.*System.*`, Shortcode: "fds", DisplayName: "Famicom Disk System"},
		{Pattern: `Nintendo.*Famicom.*Disk.*System.*`, Shortcode: "fds", DisplayName: "Famicom Disk System"},
		{Pattern: `Nintendo.*Game Boy.*`, Shortcode: "gb", DisplayName: "Game Boy",
			Exclude: []string{`Nintendo.*Game Boy\s+(Color|Advance)`}},
		{Pattern: `Nintendo.*Game Boy Color.*`, Shortcode: "gbc", DisplayName: "Game Boy Color"},
		{Pattern: `Nintendo.*Game Boy Advance.*`, Shortcode: "gba", DisplayName: "Game Boy Advance"},
		{Pattern: `Nintendo.*Nintendo 64DD.*`, Shortcode: "n64dd", DisplayName: "Nintendo 64DD"},
		{Pattern: `Nintendo.*Nintendo 64.*`, Shortcode: "n64", DisplayName: "Nintendo 64"},
		{Pattern: `Nintendo.*GameCube.*`, Shortcode: "gc", DisplayName: "GameCube"},
		{Pattern: `Nintendo.*Wii.*`, Shortcode: "wii", DisplayName: "Wii",
			Exclude: []string{`Nintendo.*Wii\s+U`}},
		{Pattern: `Nintendo.*Wii U.*`, Shortcode: "wiiu", DisplayName: "Wii U"},
		{Pattern: `Nintendo.*Nintendo DS.*`, Shortcode: "nds", DisplayName: "Nintendo DS",
			Exclude: []string{`Nintendo.*Nintendo DSi`}},
		{Pattern: `Nintendo.*Nintendo DSi.*`, Shortcode: "nds", DisplayName: "Nintendo DS"},
		{Pattern: `NDS.*`, Shortcode: "nds", DisplayName: "Nintendo DS"},
		{Pattern: `.*Nintendo DS.*`, Shortcode: "nds", DisplayName: "Nintendo DS"},
		{Pattern: `.*Game Boy.*`, Shortcode: "gb", DisplayName: "Game Boy",
			Exclude: []string{`.*Game Boy\s+(Color|Advance)`}},
		{Pattern: `.*GB.*`, Shortcode: "gb", DisplayName: "Game Boy",
			Exclude: []string{`.*GB\s*C`}},
		{Pattern: `Nintendo.*Nintendo 3DS.*`, Shortcode: "n3ds", DisplayName: "Nintendo 3DS"},
		{Pattern: `Nintendo.*Virtual Boy.*`, Shortcode: "virtualboy", DisplayName: "Virtual Boy"},
		{Pattern: `Nintendo.*Pokemon Mini.*`, Shortcode: "pokemini", DisplayName: "Pokemon Mini"},

		// Nintendo, exact forms produced by name normalization
		{Pattern: `^Nintendo 64$`, Shortcode: "n64", DisplayName: "Nintendo 64"},
		{Pattern: `^Nintendo Famicom Disk System$`, Shortcode: "fds", DisplayName: "Famicom Disk System"},
		{Pattern: `^Nintendo Game Boy$`, Shortcode: "gb", DisplayName: "Game Boy"},
		{Pattern: `^Nintendo Game Boy Color$`, Shortcode: "gbc", DisplayName: "Game Boy Color"},
		{Pattern: `^Nintendo Game Boy Advance$`, Shortcode: "gba", DisplayName: "Game Boy Advance"},
		{Pattern: `^Nintendo Pokemon Mini$`, Shortcode: "pokemini", DisplayName: "Pokemon Mini"},
		{Pattern: `^Nintendo Virtual Boy$`, Shortcode: "virtualboy", DisplayName: "Virtual Boy"},
		{Pattern: `^Nintendo DS$`, Shortcode: "nds", DisplayName: "Nintendo DS"},
		{Pattern: `^Nintendo Super Famicom & Super Entertainment System$`, Shortcode: "snes", DisplayName: "Super Nintendo Entertainment System"},
		{Pattern: `^Nintendo Famicom & Entertainment System$`, Shortcode: "nes", DisplayName: "Nintendo Entertainment System"},

		// Sega systems
		{Pattern: `Sega.*Master System.*`, Shortcode: "mastersystem", DisplayName: "Sega Master System"},
		{Pattern: `Sega.*Mark III.*`, Shortcode: "mastersystem", DisplayName: "Sega Master System"},
		{Pattern: `Sega.*Mega Drive.*`, Shortcode: "genesis", DisplayName: "Sega Genesis"},
		{Pattern: `Sega.*Genesis.*`, Shortcode: "genesis", DisplayName: "Sega Genesis"},
		{Pattern: `Sega.*Game Gear.*`, Shortcode: "gamegear", DisplayName: "Sega Game Gear"},
		{Pattern: `Sega.*32X.*`, Shortcode: "sega32x", DisplayName: "Sega 32X"},
		{Pattern: `Sega.*Mega.?CD.*`, Shortcode: "segacd", DisplayName: "Sega CD"},
		{Pattern: `.*Genesis.*`, Shortcode: "genesis", DisplayName: "Sega Genesis"},
		{Pattern: `.*Mega Drive.*`, Shortcode: "genesis", DisplayName: "Sega Genesis"},
		{Pattern: `Sega.*Sega CD.*`, Shortcode: "segacd", DisplayName: "Sega CD"},
		{Pattern: `Sega.*Saturn.*`, Shortcode: "saturn", DisplayName: "Sega Saturn"},
		{Pattern: `Sega.*Dreamcast.*`, Shortcode: "dreamcast", DisplayName: "Sega Dreamcast"},
		{Pattern: `Sega.*SG-1000.*`, Shortcode: "sg1000", DisplayName: "Sega SG-1000"},

		// Sega, exact normalized forms
		{Pattern: `^Sega 32X$`, Shortcode: "sega32x", DisplayName: "Sega 32X"},
		{Pattern: `^Sega Dreamcast$`, Shortcode: "dreamcast", DisplayName: "Sega Dreamcast"},
		{Pattern: `^Sega Game Gear$`, Shortcode: "gamegear", DisplayName: "Sega Game Gear"},
		{Pattern: `^Sega Mark III & Master System$`, Shortcode: "mastersystem", DisplayName: "Sega Master System"},
		{Pattern: `^Sega Mega Drive & Genesis$`, Shortcode: "megadrive", DisplayName: "Sega Mega Drive"},
		{Pattern: `^Sega Mega-CD & Sega CD$`, Shortcode: "segacd", DisplayName: "Sega CD"},
		{Pattern: `^Sega Saturn$`, Shortcode: "saturn", DisplayName: "Sega Saturn"},
		{Pattern: `^Sega Game 1000$`, Shortcode: "sg1000", DisplayName: "Sega SG-1000"},

		// Sony systems
		{Pattern: `Sony.*PlayStation.*`, Shortcode: "psx", DisplayName: "PlayStation",
			Exclude: []string{`Sony.*PlayStation\s+(2|3|4|Portable|Vita)`}},
		{Pattern: `Sony.*PlayStation 2.*`, Shortcode: "ps2", DisplayName: "PlayStation 2"},
		{Pattern: `Sony.*PlayStation 3.*`, Shortcode: "ps3", DisplayName: "PlayStation 3"},
		{Pattern: `Sony.*PlayStation 4.*`, Shortcode: "ps4", DisplayName: "PlayStation 4"},
		{Pattern: `Sony.*PlayStation Portable.*`, Shortcode: "psp", DisplayName: "PlayStation Portable"},
		{Pattern: `Sony.*PlayStation Vita.*`, Shortcode: "psvita", DisplayName: "PlayStation Vita"},
		{Pattern: `.*PlayStation 1.*`, Shortcode: "psx", DisplayName: "PlayStation"},
		{Pattern: `.*PS1.*`, Shortcode: "psx", DisplayName: "PlayStation"},
		{Pattern: `.*PSX.*`, Shortcode: "psx", DisplayName: "PlayStation"},

		// Atari systems
		{Pattern: `Atari.*2600.*`, Shortcode: "atari2600", DisplayName: "Atari 2600"},
		{Pattern: `Atari.*5200.*`, Shortcode: "atari5200", DisplayName: "Atari 5200"},
		{Pattern: `Atari.*7800.*`, Shortcode: "atari7800", DisplayName: "Atari 7800"},
		{Pattern: `Atari.*Lynx.*`, Shortcode: "atarilynx", DisplayName: "Atari Lynx"},
		{Pattern: `Atari.*Jaguar.*`, Shortcode: "atarijaguar", DisplayName: "Atari Jaguar",
			Exclude: []string{`Atari.*Jaguar\s+CD`}},
		{Pattern: `Atari.*Jaguar CD.*`, Shortcode: "atarijaguarcd", DisplayName: "Atari Jaguar CD"},
		{Pattern: `Atari.*8-bit.*`, Shortcode: "atari800", DisplayName: "Atari 8-bit Family"},
		{Pattern: `Atari.*ST.*`, Shortcode: "atarist", DisplayName: "Atari ST"},
		{Pattern: `Atari.*XE.*`, Shortcode: "atarixe", DisplayName: "Atari XE"},

		// Atari, exact normalized forms
		{Pattern: `^Atari 8bit$`, Shortcode: "atari800", DisplayName: "Atari 8-bit"},
		{Pattern: `^Atari Lynx$`, Shortcode: "atarilynx", DisplayName: "Atari Lynx"},
		{Pattern: `^Atari ST$`, Shortcode: "atarist", DisplayName: "Atari ST"},
		{Pattern: `^Atari 2600 & VCS$`, Shortcode: "atari2600", DisplayName: "Atari 2600"},
		{Pattern: `^Atari 5200$`, Shortcode: "atari5200", DisplayName: "Atari 5200"},
		{Pattern: `^Atari 7800$`, Shortcode: "atari7800", DisplayName: "Atari 7800"},

		// PC systems, consolidated to one code
		{Pattern: `DOS.*`, Shortcode: "pc", DisplayName: "PC (DOS)"},
		{Pattern: `IBM.*PC.*`, Shortcode: "pc", DisplayName: "PC (IBM Compatible)"},
		{Pattern: `.*PC and Compatibles.*`, Shortcode: "pc", DisplayName: "PC (IBM Compatible)"},

		// Other supported systems
		{Pattern: `Commodore.*64.*`, Shortcode: "c64", DisplayName: "Commodore 64"},
		{Pattern: `Commodore.*Amiga.*`, Shortcode: "amiga", DisplayName: "Commodore Amiga"},
		{Pattern: `Coleco.*ColecoVision.*`, Shortcode: "colecovision", DisplayName: "ColecoVision"},
		{Pattern: `Mattel.*Intellivision.*`, Shortcode: "intellivision", DisplayName: "Mattel Intellivision"},
		{Pattern: `NEC.*PC Engine.*`, Shortcode: "pcengine", DisplayName: "PC Engine"},
		{Pattern: `NEC.*TurboGrafx.*`, Shortcode: "pcengine", DisplayName: "TurboGrafx-16"},
		{Pattern: `SNK.*Neo.?Geo Pocket.*`, Shortcode: "ngp", DisplayName: "Neo Geo Pocket",
			Exclude: []string{`SNK.*Neo.?Geo Pocket\s+Color`}},
		{Pattern: `SNK.*Neo.?Geo Pocket Color.*`, Shortcode: "ngpc", DisplayName: "Neo Geo Pocket Color"},
		{Pattern: `Bandai.*WonderSwan.*`, Shortcode: "wonderswan", DisplayName: "WonderSwan",
			Exclude: []string{`Bandai.*WonderSwan\s+Color`}},
		{Pattern: `Bandai.*WonderSwan Color.*`, Shortcode: "wonderswancolor", DisplayName: "WonderSwan Color"},
		{Pattern: `3DO.*`, Shortcode: "3do", DisplayName: "3DO Interactive Multiplayer"},
		{Pattern: `Amstrad.*CPC.*`, Shortcode: "amstradcpc", DisplayName: "Amstrad CPC"},
		{Pattern: `Apple.*Apple II.*`, Shortcode: "apple2", DisplayName: "Apple II"},
		{Pattern: `.*MSX.*`, Shortcode: "msx", DisplayName: "MSX",
			Exclude: []string{`.*MSX2`}},
		{Pattern: `Sinclair.*ZX Spectrum.*`, Shortcode: "zxspectrum", DisplayName: "ZX Spectrum"},
		{Pattern: `Microsoft.*Xbox.*`, Shortcode: "xbox", DisplayName: "Microsoft Xbox",
			Exclude: []string{`Microsoft.*Xbox\s+360`}},
		{Pattern: `Microsoft.*Xbox 360.*`, Shortcode: "xbox360", DisplayName: "Microsoft Xbox 360"},
		{Pattern: `.*Macintosh.*`, Shortcode: "macintosh", DisplayName: "Apple Macintosh"},

		// Additional exact and loose forms for normalized names
		{Pattern: `^3DO Interactive Multiplayer$`, Shortcode: "3do", DisplayName: "3DO Interactive Multiplayer"},
		{Pattern: `.*3DO.*`, Shortcode: "3do", DisplayName: "3DO Interactive Multiplayer"},
		{Pattern: `^Bandai WonderSwan Color$`, Shortcode: "wonderswancolor", DisplayName: "Bandai WonderSwan Color"},
		{Pattern: `^Bandai WonderSwan$`, Shortcode: "wonderswan", DisplayName: "Bandai WonderSwan"},
		{Pattern: `.*WonderSwan Color`, Shortcode: "wonderswancolor", DisplayName: "Bandai WonderSwan Color"},
		{Pattern: `.*WonderSwan`, Shortcode: "wonderswan", DisplayName: "Bandai WonderSwan"},
		{Pattern: `^Coleco ColecoVision$`, Shortcode: "coleco", DisplayName: "ColecoVision"},
		{Pattern: `.*ColecoVision`, Shortcode: "coleco", DisplayName: "ColecoVision"},
		{Pattern: `^GCE Vectrex$`, Shortcode: "vectrex", DisplayName: "GCE Vectrex"},
		{Pattern: `.*Vectrex`, Shortcode: "vectrex", DisplayName: "GCE Vectrex"},
		{Pattern: `^Magnavox Odyssey`, Shortcode: "odyssey2", DisplayName: "Magnavox Odyssey 2"},
		{Pattern: `.*Odyssey.*`, Shortcode: "odyssey2", DisplayName: "Magnavox Odyssey 2"},
		{Pattern: `^Mattel Intellivision$`, Shortcode: "intellivision", DisplayName: "Mattel Intellivision"},
		{Pattern: `.*Intellivision`, Shortcode: "intellivision", DisplayName: "Mattel Intellivision"},
		{Pattern: `^NEC PC-Engine & TurboGrafx-16$`, Shortcode: "pcengine", DisplayName: "PC Engine"},
		{Pattern: `^NEC SuperGrafx$`, Shortcode: "supergrafx", DisplayName: "PC Engine SuperGrafx"},
		{Pattern: `^NEC PC-8801$`, Shortcode: "pc98", DisplayName: "NEC PC-98"},
		{Pattern: `^SNK Neo-Geo CD$`, Shortcode: "neogeocd", DisplayName: "Neo Geo CD"},
		{Pattern: `^SNK Neo-Geo Pocket Color$`, Shortcode: "ngpc", DisplayName: "Neo Geo Pocket Color"},
		{Pattern: `^SNK Neo-Geo Pocket$`, Shortcode: "ngp", DisplayName: "Neo Geo Pocket"},
		{Pattern: `.*Neo-Geo CD`, Shortcode: "neogeocd", DisplayName: "Neo Geo CD"},
		{Pattern: `.*Neo-Geo Pocket Color`, Shortcode: "ngpc", DisplayName: "Neo Geo Pocket Color"},
		{Pattern: `.*Neo-Geo Pocket`, Shortcode: "ngp", DisplayName: "Neo Geo Pocket"},
		{Pattern: `^Sony PlayStation$`, Shortcode: "psx", DisplayName: "PlayStation"},
		{Pattern: `^Sony PlayStation 2$`, Shortcode: "ps2", DisplayName: "PlayStation 2"},
		{Pattern: `^Sony - PlayStation Portable$`, Shortcode: "psp", DisplayName: "PlayStation Portable"},
		{Pattern: `^Watara Supervision$`, Shortcode: "supervision", DisplayName: "Watara Supervision"},
		{Pattern: `.*Supervision`, Shortcode: "supervision", DisplayName: "Watara Supervision"},
		{Pattern: `^Commodore Amiga$`, Shortcode: "amiga", DisplayName: "Commodore Amiga"},
		{Pattern: `.*Amiga`, Shortcode: "amiga", DisplayName: "Commodore Amiga"},
		{Pattern: `^Sharp X68000$`, Shortcode: "x68000", DisplayName: "Sharp X68000"},
		{Pattern: `^Sharp X1$`, Shortcode: "x1", DisplayName: "Sharp X1"},
		{Pattern: `.*X68000`, Shortcode: "x68000", DisplayName: "Sharp X68000"},
		{Pattern: `^Tandy TRS-80.*Model I$`, Shortcode: "trs80", DisplayName: "TRS-80"},
		{Pattern: `^Tandy TRS-80.*Model III$`, Shortcode: "trs80", DisplayName: "TRS-80"},
		{Pattern: `^Tandy TRS-80.*Color Computer$`, Shortcode: "coco", DisplayName: "TRS-80 Color Computer"},
		{Pattern: `^Tiger Gizmondo$`, Shortcode: "gizmondo", DisplayName: "Tiger Gizmondo"},
		{Pattern: `^Sinclair ZX Spectrum$`, Shortcode: "zxspectrum", DisplayName: "ZX Spectrum"},
		{Pattern: `^Pokitto$`, Shortcode: "pokitto", DisplayName: "Pokitto"},
		{Pattern: `Pokitto.*`, Shortcode: "pokitto", DisplayName: "Pokitto"},
		{Pattern: `^Dragon`, Shortcode: "dragon32", DisplayName: "Dragon Data"},
		{Pattern: `Dragon.*`, Shortcode: "dragon32", DisplayName: "Dragon Data"},
		{Pattern: `^Tsukuda Othello Multivision$`, Shortcode: "othello", DisplayName: "Othello Multivision"},

		// Arcade systems
		{Pattern: `.*Arcade.*`, Shortcode: "arcade", DisplayName: "Arcade"},
		{Pattern: `Neo.?Geo.*`, Shortcode: "neogeo", DisplayName: "Neo Geo",
			Exclude: []string{`Neo.?Geo\s+Pocket`}},
		{Pattern: `FinalBurn.*Arcade.*`, Shortcode: "arcade", DisplayName: "Arcade"},
		{Pattern: `MAME.*`, Shortcode: "arcade", DisplayName: "Arcade (MAME)"},
		{Pattern: `.*Atomiswave.*`, Shortcode: "atomiswave", DisplayName: "Atomiswave Arcade"},
		{Pattern: `^Atomiswave$`, Shortcode: "atomiswave", DisplayName: "Atomiswave Arcade"},
		{Pattern: `.*Cannonball.*`, Shortcode: "cannonball", DisplayName: "Cannonball (OutRun Engine)"},
		{Pattern: `^Cannonball$`, Shortcode: "cannonball", DisplayName: "Cannonball (OutRun Engine)"},

		// GoodTools collections
		{Pattern: `GoodNES.*`, Shortcode: "nes", DisplayName: "Nintendo Entertainment System"},
		{Pattern: `GoodSNES.*`, Shortcode: "snes", DisplayName: "Super Nintendo Entertainment System"},
		{Pattern: `GoodN64.*`, Shortcode: "n64", DisplayName: "Nintendo 64"},
		{Pattern: `N64.*`, Shortcode: "n64", DisplayName: "Nintendo 64"},
		{Pattern: `GoodGen.*`, Shortcode: "genesis", DisplayName: "Sega Genesis"},
		{Pattern: `GoodSMS.*`, Shortcode: "mastersystem", DisplayName: "Sega Master System"},
		{Pattern: `GoodGG.*`, Shortcode: "gamegear", DisplayName: "Sega Game Gear"},
		{Pattern: `Good32X.*`, Shortcode: "sega32x", DisplayName: "Sega 32X"},
		{Pattern: `GoodMCD.*`, Shortcode: "segacd", DisplayName: "Sega CD"},
		{Pattern: `GoodSAT.*`, Shortcode: "saturn", DisplayName: "Sega Saturn"},
		{Pattern: `GoodPCE.*`, Shortcode: "pcengine", DisplayName: "PC Engine"},
		{Pattern: `GoodLynx.*`, Shortcode: "atarilynx", DisplayName: "Atari Lynx"},
		{Pattern: `Good5200.*`, Shortcode: "atari5200", DisplayName: "Atari 5200"},
		{Pattern: `Good7800.*`, Shortcode: "atari7800", DisplayName: "Atari 7800"},
		{Pattern: `Good2600.*`, Shortcode: "atari2600", DisplayName: "Atari 2600"},
		{Pattern: `GoodGBC.*`, Shortcode: "gbc", DisplayName: "Game Boy Color"},
		{Pattern: `GoodGB.*`, Shortcode: "gb", DisplayName: "Game Boy"},
		{Pattern: `GoodGBA.*`, Shortcode: "gba", DisplayName: "Game Boy Advance"},
		{Pattern: `GoodA26.*`, Shortcode: "atari2600", DisplayName: "Atari 2600"},
		{Pattern: `GoodA78.*`, Shortcode: "atari7800", DisplayName: "Atari 7800"},
		{Pattern: `GoodA52.*`, Shortcode: "atari5200", DisplayName: "Atari 5200"},
		{Pattern: `GoodCOL.*`, Shortcode: "coleco", DisplayName: "ColecoVision"},
		{Pattern: `GoodINTV.*`, Shortcode: "intellivision", DisplayName: "Mattel Intellivision"},
		{Pattern: `Good.*`, Shortcode: "unknown", DisplayName: "Unknown Good Tool Collection"},

		// FinalBurn Neo collections
		{Pattern: `FinalBurn Neo - NES Games`, Shortcode: "nes", DisplayName: "Nintendo Entertainment System"},
		{Pattern: `FinalBurn Neo - SNES Games`, Shortcode: "snes", DisplayName: "Super Nintendo Entertainment System"},
		{Pattern: `FinalBurn Neo - Genesis Games`, Shortcode: "genesis", DisplayName: "Sega Genesis"},
		{Pattern: `FinalBurn Neo - Master System Games`, Shortcode: "mastersystem", DisplayName: "Sega Master System"},
		{Pattern: `FinalBurn Neo - Game Gear Games`, Shortcode: "gamegear", DisplayName: "Sega Game Gear"},
		{Pattern: `FinalBurn Neo - PC Engine Games`, Shortcode: "pcengine", DisplayName: "PC Engine"},
		{Pattern: `FinalBurn Neo - Neo Geo Games`, Shortcode: "neogeo", DisplayName: "Neo Geo"},
		{Pattern: `FinalBurn Neo - CPS Games`, Shortcode: "arcade", DisplayName: "Arcade (CPS)"},
		{Pattern: `FinalBurn Neo - .*`, Shortcode: "arcade", DisplayName: "Arcade (FinalBurn Neo)"},
	}
}

// Exclusions returns the ordered table of folder patterns that are
// reported but never organized
func Exclusions() []Exclusion {
	return []Exclusion{
		{Pattern: `Sharp.*X68000.*`, Reason: "X68000 not supported by EmulationStation"},
		{Pattern: `Tiger.*Gizmondo.*`, Reason: "Gizmondo not supported by EmulationStation"},
		{Pattern: `Dragon Data.*Dragon.*`, Reason: "Dragon Data systems not supported by EmulationStation"},
		{Pattern: `.*TRS-80.*`, Reason: "TRS-80 systems not supported by EmulationStation"},
		{Pattern: `Sharp.*X1.*`, Reason: "Sharp X1 not supported by EmulationStation"},
		{Pattern: `Tsukuda.*Othello.*`, Reason: "Othello Multivision not supported by EmulationStation"},
		{Pattern: `Watara.*Supervision.*`, Reason: "Watara Supervision not supported by EmulationStation"},
		{Pattern: `GCE.*Vectrex.*`, Reason: "Vectrex support limited in EmulationStation"},
		{Pattern: `Magnavox.*Odyssey.*`, Reason: "Odyssey systems support limited in EmulationStation"},
		{Pattern: `Philips.*Videopac.*`, Reason: "Videopac support limited in EmulationStation"},
		{Pattern: `.*Pokitto.*`, Reason: "Pokitto not supported by EmulationStation"},
	}
}
