// Package types defines the data structures and collaborator contracts shared
// by the discovery packages: DirectoryListing, Predicate and the FS interface.
package types
