// Package report holds the renderer-neutral view of a walk
package report

import (
	"github.com/durp-dev/durp/pkg/types"
	"github.com/durp-dev/durp/pkg/walker"
)

// Report is what every renderer consumes
type Report struct {
	Root        string                   `json:"root" yaml:"root" toml:"root"`
	Marker      string                   `json:"marker" yaml:"marker" toml:"marker"`
	Mode        string                   `json:"mode" yaml:"mode" toml:"mode"`
	Components  []types.DirectoryListing `json:"components" yaml:"components" toml:"components"`
	Diagnostics []Diagnostic             `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty" toml:"diagnostics,omitempty"`
}

// Diagnostic is a walker.Diagnostic with its cause flattened to text
type Diagnostic struct {
	Severity string `json:"severity" yaml:"severity" toml:"severity"`
	Code     string `json:"code" yaml:"code" toml:"code"`
	Message  string `json:"message" yaml:"message" toml:"message"`
	Path     string `json:"path" yaml:"path" toml:"path"`
	Cause    string `json:"cause,omitempty" yaml:"cause,omitempty" toml:"cause,omitempty"`
}

// New builds a report from a walk result
func New(root, marker string, mode walker.Mode, result walker.Result) Report {
	r := Report{
		Root:       root,
		Marker:     marker,
		Mode:       string(mode),
		Components: result.Components,
	}
	if r.Components == nil {
		r.Components = []types.DirectoryListing{}
	}
	for _, d := range result.Diagnostics {
		view := Diagnostic{
			Severity: string(d.Severity),
			Code:     d.Code,
			Message:  d.Message,
			Path:     d.Path,
		}
		if d.Cause != nil {
			view.Cause = d.Cause.Error()
		}
		r.Diagnostics = append(r.Diagnostics, view)
	}
	return r
}

// Count returns the number of components found
func (r Report) Count() int {
	return len(r.Components)
}

// Warnings returns the diagnostics of warning severity
func (r Report) Warnings() []Diagnostic {
	return r.filter(string(walker.SeverityWarning))
}

// Errors returns the diagnostics of error severity
func (r Report) Errors() []Diagnostic {
	return r.filter(string(walker.SeverityError))
}

func (r Report) filter(severity string) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == severity {
			out = append(out, d)
		}
	}
	return out
}
