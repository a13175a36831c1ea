package types

import (
	"os"
	"sort"
	"strings"
)

// DirsKey is the reserved category for directory entries
const DirsKey = "dirs"

// DirectoryListing is a single-level categorization of a directory's
// immediate entries. Path is the directory path exactly as given by the caller.
type DirectoryListing struct {
	Path       string              `json:"path" yaml:"path" toml:"path"`
	Categories map[string][]string `json:"categories" yaml:"categories" toml:"categories"`
}

// NewDirectoryListing creates an empty listing for path
func NewDirectoryListing(path string) DirectoryListing {
	return DirectoryListing{
		Path:       path,
		Categories: make(map[string][]string),
	}
}

// CategoryKey returns the category a file named name belongs to: everything
// after the first dot, or "" when there is none. A leading dot produces an
// empty first segment, so ".env" lands in "env".
func CategoryKey(name string) string {
	idx := strings.Index(name, ".")
	if idx < 0 {
		return ""
	}
	return name[idx+1:]
}

// Add appends name to the given category
func (l *DirectoryListing) Add(key, name string) {
	if l.Categories == nil {
		l.Categories = make(map[string][]string)
	}
	l.Categories[key] = append(l.Categories[key], name)
}

// Get returns the entries of a category, nil when absent
func (l DirectoryListing) Get(key string) []string {
	return l.Categories[key]
}

// Has reports whether a category is present
func (l DirectoryListing) Has(key string) bool {
	_, ok := l.Categories[key]
	return ok
}

// Count returns the combined number of entries across the given categories
func (l DirectoryListing) Count(keys ...string) int {
	total := 0
	for _, key := range keys {
		total += len(l.Categories[key])
	}
	return total
}

// Dirs returns the subdirectory names in the order they were reported
func (l DirectoryListing) Dirs() []string {
	return l.Categories[DirsKey]
}

// Keys returns the category keys sorted
func (l DirectoryListing) Keys() []string {
	keys := make([]string, 0, len(l.Categories))
	for key := range l.Categories {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ChildPath joins a subdirectory name onto the listing's path without
// normalizing: a trailing separator on Path is reused, never doubled.
func (l DirectoryListing) ChildPath(name string) string {
	return JoinPath(l.Path, name)
}

// JoinPath appends name to dir, inserting a separator only when dir does not
// already end in one.
func JoinPath(dir, name string) string {
	if HasTrailingSeparator(dir) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}

// HasTrailingSeparator reports whether path ends in a path separator
func HasTrailingSeparator(path string) bool {
	return strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(os.PathSeparator))
}
