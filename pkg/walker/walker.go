// Package walker finds every component in a directory tree.
//
// The walk is a synchronous, pre-order, depth-first traversal: a component
// is emitted before any component beneath it, and siblings are visited in
// the order the filesystem reports them. A component's own subdirectories
// are walked like any other, so nested components are reported too.
package walker

import (
	"context"
	stderrors "errors"

	"github.com/durp-dev/durp/pkg/classify"
	"github.com/durp-dev/durp/pkg/detect"
	"github.com/durp-dev/durp/pkg/errors"
	"github.com/durp-dev/durp/pkg/logging"
	"github.com/durp-dev/durp/pkg/types"
	"github.com/durp-dev/durp/pkg/validate"
	"github.com/rs/zerolog"
)

// Component is a DirectoryListing that passed detection and validation
type Component = types.DirectoryListing

// Walker walks directory trees looking for components
type Walker struct {
	fs        types.FS
	detector  *detect.Detector
	validator *validate.Validator
	mode      Mode
	logger    zerolog.Logger
}

// Option configures a Walker
type Option func(*Walker)

// WithMode sets how validation failures are handled
func WithMode(mode Mode) Option {
	return func(w *Walker) {
		w.mode = mode
	}
}

// New creates a walker. The detector decides which directories are
// components; validation uses the same detector.
func New(fsys types.FS, detector *detect.Detector, opts ...Option) *Walker {
	w := &Walker{
		fs:        fsys,
		detector:  detector,
		validator: validate.New(fsys, detector),
		mode:      ModeFailFast,
		logger:    logging.GetLogger("walker"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Mode returns the walker's validation failure mode
func (w *Walker) Mode() Mode {
	return w.mode
}

// walkState is the per-walk bookkeeping threaded through the recursion
type walkState struct {
	predicate types.Predicate
	visited   map[string]string
	result    Result
}

// Walk returns every component under root, root included, that has a
// loadable marker and passes predicate.
//
// In ModeFailFast the first validation failure aborts the walk and is
// returned with an empty Result. In ModeCollect failures become error
// diagnostics and the walk continues. Either way, a subdirectory that
// cannot be read only prunes its own branch and is reported as a
// diagnostic; failing to read root itself is returned as an error.
func (w *Walker) Walk(ctx context.Context, predicate types.Predicate, root string) (Result, error) {
	if predicate == nil {
		return Result{}, errors.New(errors.ErrInvalidInput, "walk: a predicate is required to validate a component structure")
	}
	if root == "" {
		return Result{}, errors.New(errors.ErrInvalidInput, "walk: root path must not be empty")
	}

	done := logging.LogOperationStart(w.logger, "walk")
	defer done()

	st := &walkState{
		predicate: predicate,
		visited:   make(map[string]string),
	}
	if err := w.visit(ctx, st, root, true); err != nil {
		return Result{}, err
	}

	w.logger.Info().
		Str("root", root).
		Str("mode", string(w.mode)).
		Int("components", len(st.result.Components)).
		Int("diagnostics", len(st.result.Diagnostics)).
		Msg("Walk complete")

	return st.result, nil
}

func (w *Walker) visit(ctx context.Context, st *walkState, path string, isRoot bool) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, errors.ErrWalkCancelled, "walk cancelled").WithDetail("path", path)
	}

	if w.seen(st, path) {
		return nil
	}
	w.logger.Trace().Str("path", path).Msg("Visiting directory")

	probe, err := w.detector.Probe(path)
	if err != nil {
		return err
	}
	listing, err := classify.Classify(w.fs, path)
	if err != nil {
		return w.branchFailed(st, path, isRoot, err)
	}
	if probe.IsComponent() {
		if err := w.accept(st, listing); err != nil {
			return err
		}
	} else {
		w.noteMarker(st, probe)
	}

	for _, name := range listing.Dirs() {
		if err := w.visit(ctx, st, listing.ChildPath(name), false); err != nil {
			return err
		}
	}
	return nil
}

// seen records path's resolved location and reports whether it was already
// walked. Paths that cannot be resolved are keyed as given; classification
// will surface the underlying error.
func (w *Walker) seen(st *walkState, path string) bool {
	key, err := w.fs.RealPath(path)
	if err != nil {
		key = path
	}
	if first, ok := st.visited[key]; ok {
		st.result.Diagnostics = append(st.result.Diagnostics, Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeCycleSkipped,
			Message:  "directory already visited as " + first + ", skipping",
			Path:     path,
		})
		w.logger.Debug().Str("path", path).Str("first", first).Msg("Skipping already visited directory")
		return true
	}
	st.visited[key] = path
	return false
}

// accept applies the predicate to a component's listing. A failure aborts
// the walk in ModeFailFast and becomes an error diagnostic in ModeCollect,
// whatever its error code.
func (w *Walker) accept(st *walkState, listing types.DirectoryListing) error {
	err := w.validator.Check(listing, st.predicate)
	switch {
	case err == nil:
		w.logger.Debug().Str("path", listing.Path).Msg("Found component")
		st.result.Components = append(st.result.Components, listing)
		return nil
	case w.mode == ModeCollect:
		st.result.Diagnostics = append(st.result.Diagnostics, Diagnostic{
			Severity: SeverityError,
			Code:     CodeComponentInvalid,
			Message:  describe(err),
			Path:     listing.Path,
			Cause:    err,
		})
		w.logger.Debug().Err(err).Str("path", listing.Path).Msg("Invalid component, continuing")
		return nil
	default:
		w.logger.Debug().Err(err).Str("path", listing.Path).Msg("Invalid component, aborting walk")
		return err
	}
}

// noteMarker records a diagnostic when a marker file exists but could not
// be used. Directories without a marker are the common case and stay silent.
// Called only after the directory itself was read.
func (w *Walker) noteMarker(st *walkState, probe detect.Detection) {
	var code string
	switch probe.Status {
	case detect.StatusMalformed:
		code = CodeMarkerMalformed
	case detect.StatusUnreadable:
		code = CodeMarkerUnreadable
	case detect.StatusUnsupported:
		code = CodeMarkerUnsupported
	default:
		return
	}
	st.result.Diagnostics = append(st.result.Diagnostics, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  "marker file " + string(probe.Status) + ", directory is not a component",
		Path:     probe.MarkerPath,
		Cause:    probe.Cause,
	})
	w.logger.Debug().
		Str("path", probe.Path).
		Str("status", string(probe.Status)).
		AnErr("cause", probe.Cause).
		Msg("Marker present but unusable")
}

func (w *Walker) branchFailed(st *walkState, path string, isRoot bool, err error) error {
	if isRoot {
		return err
	}
	st.result.Diagnostics = append(st.result.Diagnostics, Diagnostic{
		Severity: SeverityError,
		Code:     CodeDirectoryUnreadable,
		Message:  describe(err),
		Path:     path,
		Cause:    err,
	})
	w.logger.Warn().Err(err).Str("path", path).Msg("Cannot read directory, skipping branch")
	return nil
}

func describe(err error) string {
	var durpErr *errors.DurpError
	if stderrors.As(err, &durpErr) {
		return durpErr.Message
	}
	return err.Error()
}
