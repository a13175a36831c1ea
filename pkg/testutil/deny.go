package testutil

import (
	"io/fs"
	"os"
	"strings"

	"github.com/durp-dev/durp/pkg/types"
)

// DenyFS wraps a types.FS and behaves like a directory whose permission bits
// are 0000: the directory itself can be stat'ed, but listing it or reaching
// anything beneath it fails with os.ErrPermission.
type DenyFS struct {
	types.FS
	denied []string
}

// Deny returns fsys with every path in dirs made unreadable
func Deny(fsys types.FS, dirs ...string) *DenyFS {
	return &DenyFS{FS: fsys, denied: dirs}
}

func (d *DenyFS) below(name string) bool {
	for _, dir := range d.denied {
		if strings.HasPrefix(name, strings.TrimSuffix(dir, "/")+"/") {
			return true
		}
	}
	return false
}

func (d *DenyFS) at(name string) bool {
	for _, dir := range d.denied {
		if strings.TrimSuffix(name, "/") == strings.TrimSuffix(dir, "/") {
			return true
		}
	}
	return false
}

func denied(op, name string) error {
	return &fs.PathError{Op: op, Path: name, Err: os.ErrPermission}
}

func (d *DenyFS) Stat(name string) (fs.FileInfo, error) {
	if d.below(name) {
		return nil, denied("stat", name)
	}
	return d.FS.Stat(name)
}

func (d *DenyFS) ReadFile(name string) ([]byte, error) {
	if d.below(name) {
		return nil, denied("open", name)
	}
	return d.FS.ReadFile(name)
}

func (d *DenyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if d.at(name) || d.below(name) {
		return nil, denied("open", name)
	}
	return d.FS.ReadDir(name)
}

func (d *DenyFS) RealPath(name string) (string, error) {
	if d.below(name) {
		return "", denied("lstat", name)
	}
	return d.FS.RealPath(name)
}
