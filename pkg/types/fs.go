package types

import (
	"io/fs"
)

// FS is the read-only filesystem contract discovery runs against
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)

	// RealPath resolves symbolic links and returns an absolute, clean path.
	// Two paths naming the same directory resolve to the same string.
	RealPath(name string) (string, error)
}
