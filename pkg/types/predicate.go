package types

// Predicate decides whether a classified directory has the structure a
// component needs. A nil return means the listing passes.
type Predicate func(listing DirectoryListing) error
