// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/durp-dev/durp/pkg/errors"
	"github.com/durp-dev/durp/pkg/ui/report"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

// Render renders the report as a single JSON document
func (r *Renderer) Render(rep report.Report) error {
	return r.encoder.Encode(rep)
}

// RenderError renders an error as JSON, including its code and details
// when it carries them
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]interface{}{
		"error": err.Error(),
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		errorObj["code"] = string(code)
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		errorObj["details"] = details
	}
	return r.encoder.Encode(errorObj)
}
