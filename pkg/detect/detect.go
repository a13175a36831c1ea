// Package detect decides whether a directory is a component root.
//
// A directory qualifies when its marker file exists and parses in the
// format its extension declares. Probe reports which of those steps
// failed; Detect collapses every failure into "not a component".
package detect

import (
	"os"

	"github.com/durp-dev/durp/pkg/errors"
	"github.com/durp-dev/durp/pkg/logging"
	"github.com/durp-dev/durp/pkg/marker"
	"github.com/durp-dev/durp/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultMarkerName is used when no marker name is configured
const DefaultMarkerName = "bean.json"

// Status is the outcome of probing a directory for its marker file
type Status string

const (
	// StatusFound means the marker exists and parsed
	StatusFound Status = "found"
	// StatusMissing means there is no marker file
	StatusMissing Status = "missing"
	// StatusUnreadable means the marker exists but could not be read
	StatusUnreadable Status = "unreadable"
	// StatusMalformed means the marker was read but did not parse
	StatusMalformed Status = "malformed"
	// StatusUnsupported means no decoder handles the marker's format
	StatusUnsupported Status = "unsupported"
)

// Detection is the result of Probe
type Detection struct {
	Path       string
	MarkerPath string
	Status     Status
	Cause      error
}

// IsComponent reports whether the probed directory qualified
func (d Detection) IsComponent() bool {
	return d.Status == StatusFound
}

// Detector tests directories for a marker file named MarkerName
type Detector struct {
	fs         types.FS
	loader     marker.Loader
	markerName string
	logger     zerolog.Logger
}

// New creates a detector. An empty markerName falls back to DefaultMarkerName.
func New(fsys types.FS, loader marker.Loader, markerName string) *Detector {
	if markerName == "" {
		markerName = DefaultMarkerName
	}
	return &Detector{
		fs:         fsys,
		loader:     loader,
		markerName: markerName,
		logger:     logging.GetLogger("detect"),
	}
}

// MarkerName returns the marker file name this detector looks for
func (d *Detector) MarkerName() string {
	return d.markerName
}

// MarkerPath returns where the marker file for path would live
func (d *Detector) MarkerPath(path string) string {
	return types.JoinPath(path, d.markerName)
}

// Probe checks for the marker in two steps, existence and then parse, and
// reports which one failed.
func (d *Detector) Probe(path string) (Detection, error) {
	if path == "" {
		return Detection{}, errors.New(errors.ErrInvalidInput, "detect: path must not be empty")
	}

	result := Detection{Path: path, MarkerPath: d.MarkerPath(path)}

	info, err := d.fs.Stat(result.MarkerPath)
	switch {
	case err != nil && os.IsNotExist(err):
		result.Status = StatusMissing
		return result, nil
	case err != nil:
		result.Status = StatusUnreadable
		result.Cause = errors.Wrap(err, errors.ErrFileAccess, "cannot access marker file").
			WithDetail("path", result.MarkerPath)
		return result, nil
	case info.IsDir():
		result.Status = StatusUnreadable
		result.Cause = errors.New(errors.ErrFileAccess, "marker path is a directory").
			WithDetail("path", result.MarkerPath)
		return result, nil
	}

	if err := d.loader.Load(d.fs, result.MarkerPath); err != nil {
		result.Cause = err
		switch errors.GetErrorCode(err) {
		case errors.ErrMarkerParse:
			result.Status = StatusMalformed
		case errors.ErrMarkerUnsupported:
			result.Status = StatusUnsupported
		case errors.ErrFileNotFound:
			// Removed between the stat and the read.
			result.Status = StatusMissing
		default:
			result.Status = StatusUnreadable
		}
		return result, nil
	}

	result.Status = StatusFound
	return result, nil
}

// Detect returns path unchanged and true when path is a component root.
// Every failure cause collapses to ("", false, nil); only an empty path is
// an error.
func (d *Detector) Detect(path string) (string, bool, error) {
	result, err := d.Probe(path)
	if err != nil {
		return "", false, err
	}
	if !result.IsComponent() {
		d.logger.Trace().
			Str("path", path).
			Str("status", string(result.Status)).
			AnErr("cause", result.Cause).
			Msg("Not a component")
		return "", false, nil
	}
	return path, true, nil
}
