// Package platform holds OS and environment probes: kernel
// identification for WSL detection and recognition of host-translated
// mount paths.
package platform

import (
	"os"
	"strings"
)

// procVersionPath is the kernel version file on Linux hosts
const procVersionPath = "/proc/version"

// translatedMountPrefix is where WSL exposes Windows drives
const translatedMountPrefix = "/mnt/"

// ReadKernelVersion returns the running kernel's version string, or an
// empty string on hosts without /proc (macOS, Windows)
func ReadKernelVersion() string {
	data, err := os.ReadFile(procVersionPath)
	if err != nil {
		return ""
	}
	return string(data)
}

// IsWSL reports whether the kernel version string identifies a WSL
// kernel. Both WSL1 and WSL2 embed "microsoft" in the version.
func IsWSL(kernelVersion string) bool {
	return strings.Contains(strings.ToLower(kernelVersion), "microsoft")
}

// IsTranslatedPath reports whether path sits under the /mnt/ drive
// mounts WSL exposes for the Windows filesystem
func IsTranslatedPath(path string) bool {
	return strings.HasPrefix(path, translatedMountPrefix)
}
