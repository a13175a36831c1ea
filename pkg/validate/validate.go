// Package validate confirms that a directory is a component and that its
// classified contents satisfy a structural predicate.
package validate

import (
	"github.com/durp-dev/durp/pkg/classify"
	"github.com/durp-dev/durp/pkg/detect"
	"github.com/durp-dev/durp/pkg/errors"
	"github.com/durp-dev/durp/pkg/types"
)

// Validator checks component roots against predicates
type Validator struct {
	fs       types.FS
	detector *detect.Detector
}

// New creates a validator that detects with detector and classifies with fsys
func New(fsys types.FS, detector *detect.Detector) *Validator {
	return &Validator{fs: fsys, detector: detector}
}

// Validate re-runs detection on path, classifies it and applies predicate.
//
// A path without a loadable marker fails with ErrMarkerMissing. Errors
// returned by predicate are passed through as-is. On success the listing
// that was validated is returned.
func (v *Validator) Validate(path string, predicate types.Predicate) (types.DirectoryListing, error) {
	if path == "" {
		return types.DirectoryListing{}, errors.New(errors.ErrInvalidInput, "validate: path must not be empty")
	}
	if predicate == nil {
		return types.DirectoryListing{}, errors.New(errors.ErrInvalidInput, "validate: a predicate is required to validate a component structure")
	}

	_, ok, err := v.detector.Detect(path)
	if err != nil {
		return types.DirectoryListing{}, err
	}
	if !ok {
		return types.DirectoryListing{}, errors.Newf(errors.ErrMarkerMissing,
			"expected path to contain a %s file:\n%s\n", v.detector.MarkerName(), path).
			WithDetail("path", path)
	}

	listing, err := classify.Classify(v.fs, path)
	if err != nil {
		return types.DirectoryListing{}, err
	}

	if err := v.Check(listing, predicate); err != nil {
		return types.DirectoryListing{}, err
	}
	return listing, nil
}

// Check applies predicate to a listing that was already classified. The
// predicate's error is returned unchanged.
func (v *Validator) Check(listing types.DirectoryListing, predicate types.Predicate) error {
	if predicate == nil {
		return errors.New(errors.ErrInvalidInput, "validate: a predicate is required to validate a component structure")
	}
	return predicate(listing)
}
