// Package components exposes the four discovery operations with durp's
// defaults: the real filesystem and every built-in marker format.
//
// The package-level functions always look for DefaultMarkerName; they do
// not read DURP_NAME or any config file. Callers that honor a configured
// marker name build a Finder with NewFinder.
package components

import (
	"context"

	"github.com/durp-dev/durp/pkg/classify"
	"github.com/durp-dev/durp/pkg/detect"
	"github.com/durp-dev/durp/pkg/filesystem"
	"github.com/durp-dev/durp/pkg/marker"
	"github.com/durp-dev/durp/pkg/types"
	"github.com/durp-dev/durp/pkg/validate"
	"github.com/durp-dev/durp/pkg/walker"
)

// DefaultMarkerName is the marker used when none is configured
const DefaultMarkerName = detect.DefaultMarkerName

// DefaultPredicate requires at least one gql or graphql model
var DefaultPredicate types.Predicate = validate.DefaultPredicate

// Finder runs discovery operations against one filesystem and marker name
type Finder struct {
	fs        types.FS
	detector  *detect.Detector
	validator *validate.Validator
	walker    *walker.Walker
}

// Options configures a Finder. Zero values select the defaults.
type Options struct {
	FS         types.FS
	Loader     marker.Loader
	MarkerName string
	Mode       walker.Mode
}

// NewFinder creates a Finder
func NewFinder(opts Options) *Finder {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	loader := opts.Loader
	if loader == nil {
		loader = marker.NewRegistry()
	}
	mode := opts.Mode
	if mode == "" {
		mode = walker.ModeFailFast
	}

	detector := detect.New(fsys, loader, opts.MarkerName)
	return &Finder{
		fs:        fsys,
		detector:  detector,
		validator: validate.New(fsys, detector),
		walker:    walker.New(fsys, detector, walker.WithMode(mode)),
	}
}

// MarkerName returns the marker file name this Finder looks for
func (f *Finder) MarkerName() string {
	return f.detector.MarkerName()
}

// Classify categorizes the immediate entries of path
func (f *Finder) Classify(path string) (types.DirectoryListing, error) {
	return classify.Classify(f.fs, path)
}

// Detect returns (path, true) when path holds a loadable marker file
func (f *Finder) Detect(path string) (string, bool, error) {
	return f.detector.Detect(path)
}

// Probe reports why path is or is not a component
func (f *Finder) Probe(path string) (detect.Detection, error) {
	return f.detector.Probe(path)
}

// Validate checks that path is a component satisfying predicate
func (f *Finder) Validate(path string, predicate types.Predicate) (types.DirectoryListing, error) {
	return f.validator.Validate(path, predicate)
}

// Walk returns every valid component under root, root included
func (f *Finder) Walk(ctx context.Context, predicate types.Predicate, root string) (walker.Result, error) {
	return f.walker.Walk(ctx, predicate, root)
}

// Components walks root and returns the components found. Problems below
// root that the walk recorded as errors are folded into the returned error
// alongside the partial results.
func (f *Finder) Components(ctx context.Context, predicate types.Predicate, root string) ([]types.DirectoryListing, error) {
	result, err := f.Walk(ctx, predicate, root)
	if err != nil {
		return nil, err
	}
	return result.Components, result.Err()
}

var defaultFinder = NewFinder(Options{})

// Classify categorizes the immediate entries of path on the real filesystem
func Classify(path string) (types.DirectoryListing, error) {
	return defaultFinder.Classify(path)
}

// Detect reports whether path holds a loadable bean.json
func Detect(path string) (string, bool, error) {
	return defaultFinder.Detect(path)
}

// Validate checks that path is a component satisfying predicate
func Validate(path string, predicate types.Predicate) (types.DirectoryListing, error) {
	return defaultFinder.Validate(path, predicate)
}

// Walk returns every valid component under root in pre-order, aborting on
// the first invalid one. A subdirectory that cannot be read is skipped and
// reported through the error, next to the components that were found.
func Walk(predicate types.Predicate, root string) ([]types.DirectoryListing, error) {
	return defaultFinder.Components(context.Background(), predicate, root)
}
