// Package structured renders reports as YAML or TOML documents
package structured

import (
	"io"

	"github.com/durp-dev/durp/pkg/errors"
	"github.com/durp-dev/durp/pkg/ui/report"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type encodeFunc func(w io.Writer, v interface{}) error

// Renderer writes a report with a document encoder
type Renderer struct {
	output io.Writer
	encode encodeFunc
}

// NewYAML creates a YAML renderer
func NewYAML(output io.Writer) *Renderer {
	return &Renderer{output: output, encode: encodeYAML}
}

// NewTOML creates a TOML renderer
func NewTOML(output io.Writer) *Renderer {
	return &Renderer{output: output, encode: encodeTOML}
}

// Render renders the report as one document
func (r *Renderer) Render(rep report.Report) error {
	return r.encode(r.output, rep)
}

// RenderError renders an error as a document with error and code fields
func (r *Renderer) RenderError(err error) error {
	doc := struct {
		Error string `yaml:"error" toml:"error"`
		Code  string `yaml:"code,omitempty" toml:"code,omitempty"`
	}{Error: err.Error()}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		doc.Code = string(code)
	}
	return r.encode(r.output, doc)
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func encodeTOML(w io.Writer, v interface{}) error {
	return toml.NewEncoder(w).Encode(v)
}
