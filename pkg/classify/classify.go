// Package classify builds single-level DirectoryListings: every immediate
// entry of a directory sorted into a category by extension, with
// subdirectories under the reserved "dirs" key.
package classify

import (
	"io/fs"
	"os"

	"github.com/durp-dev/durp/pkg/errors"
	"github.com/durp-dev/durp/pkg/logging"
	"github.com/durp-dev/durp/pkg/types"
)

// Classify lists the immediate children of the directory at path.
//
// The returned listing's Path is path unchanged. Entries are never
// recursed into and hidden entries are not filtered.
func Classify(fsys types.FS, path string) (types.DirectoryListing, error) {
	if path == "" {
		return types.DirectoryListing{}, errors.New(errors.ErrInvalidInput, "classify: path must not be empty")
	}

	info, err := fsys.Stat(path)
	if err != nil {
		return types.DirectoryListing{}, ioError(err, "cannot access directory", path)
	}
	if !info.IsDir() {
		return types.DirectoryListing{}, errors.New(errors.ErrNotADirectory, "path is not a directory").
			WithDetail("path", path)
	}

	entries, err := fsys.ReadDir(path)
	if err != nil {
		return types.DirectoryListing{}, ioError(err, "cannot read directory", path)
	}

	listing := types.NewDirectoryListing(path)
	for _, entry := range entries {
		name := entry.Name()
		if isDirEntry(fsys, path, entry) {
			listing.Add(types.DirsKey, name)
			continue
		}
		listing.Add(types.CategoryKey(name), name)
	}

	logger := logging.GetLogger("classify")
	logger.Trace().
		Str("path", path).
		Int("entries", len(entries)).
		Int("dirs", len(listing.Dirs())).
		Msg("Classified directory")

	return listing, nil
}

// isDirEntry reports whether entry is a directory, following symbolic links.
// A dangling link counts as a file.
func isDirEntry(fsys types.FS, dir string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := fsys.Stat(types.JoinPath(dir, entry.Name()))
	if err != nil {
		return false
	}
	return info.IsDir()
}

func ioError(err error, message, path string) error {
	switch {
	case os.IsNotExist(err):
		return errors.Wrap(err, errors.ErrFileNotFound, "directory does not exist").WithDetail("path", path)
	case os.IsPermission(err):
		return errors.Wrap(err, errors.ErrFileAccess, "permission denied").WithDetail("path", path)
	default:
		return errors.Wrap(err, errors.ErrFileAccess, message).WithDetail("path", path)
	}
}
