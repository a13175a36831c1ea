package walker

import (
	"fmt"
	"strings"

	"github.com/durp-dev/durp/pkg/errors"
)

const (
	// SeverityWarning indicates something skipped that may be intentional
	SeverityWarning Severity = "warning"
	// SeverityError indicates a directory or component that failed
	SeverityError Severity = "error"
)

// Diagnostic codes
const (
	CodeCycleSkipped        = "cycle_skipped"
	CodeDirectoryUnreadable = "directory_unreadable"
	CodeComponentInvalid    = "component_invalid"
	CodeMarkerMalformed     = "marker_malformed"
	CodeMarkerUnreadable    = "marker_unreadable"
	CodeMarkerUnsupported   = "marker_unsupported"
)

type (
	// Severity represents diagnostic severity
	Severity string

	// Diagnostic is a non-fatal problem found during a walk, returned to the
	// caller alongside the components that were found.
	Diagnostic struct {
		Severity Severity
		// Code is a machine-readable identifier (e.g., "cycle_skipped")
		Code    string
		Message string
		Path    string
		// Cause is the underlying error, if any
		Cause error
	}

	// Result is the outcome of a walk
	Result struct {
		// Components in pre-order: a component precedes its descendants
		Components  []Component
		Diagnostics []Diagnostic
	}
)

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s [%s] %s", d.Severity, d.Code, d.Message)
}

// HasErrors reports whether any diagnostic has error severity
func (r Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Paths returns the path of every component in walk order
func (r Result) Paths() []string {
	paths := make([]string, len(r.Components))
	for i, c := range r.Components {
		paths[i] = c.Path
	}
	return paths
}

// Err folds error diagnostics into a single error, nil when there are none
func (r Result) Err() error {
	var msgs []string
	code := errors.ErrUnknown
	for _, d := range r.Diagnostics {
		if d.Severity != SeverityError {
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", d.Path, d.Message))
		if code == errors.ErrUnknown {
			code = errors.GetErrorCode(d.Cause)
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	if code == errors.ErrUnknown {
		code = errors.ErrComponentInvalid
	}
	return errors.Newf(code, "%d problem(s) found:\n  %s", len(msgs), strings.Join(msgs, "\n  ")).
		WithDetail("count", len(msgs))
}
