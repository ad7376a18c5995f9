package models

import (
	"time"
)

// FileEntry represents a file discovered under a source folder
type FileEntry struct {
	// RelativePath is the path relative to the scan root
	RelativePath string

	// AbsolutePath is the full path on the filesystem
	AbsolutePath string

	// Size in bytes
	Size int64

	// ModTime is the last modification time
	ModTime time.Time

	// IsDir indicates if this is a directory
	IsDir bool

	// Permissions are the file mode bits
	Permissions uint32
}
