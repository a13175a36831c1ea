// Package ui provides a unified interface for rendering discovered
// components in different formats.
package ui

import (
	"io"
	"os"

	"github.com/durp-dev/durp/pkg/errors"
	"github.com/durp-dev/durp/pkg/ui/json"
	"github.com/durp-dev/durp/pkg/ui/markdown"
	"github.com/durp-dev/durp/pkg/ui/report"
	"github.com/durp-dev/durp/pkg/ui/structured"
	"github.com/durp-dev/durp/pkg/ui/terminal"
	"github.com/durp-dev/durp/pkg/ui/text"
	"github.com/durp-dev/durp/pkg/ui/tree"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// Render renders the outcome of a walk
	Render(r report.Report) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		// Detect terminal capabilities and choose appropriate format
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		// If not a file, default to plain text
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	case FormatYAML:
		return structured.NewYAML(output), nil
	case FormatTOML:
		return structured.NewTOML(output), nil
	case FormatTree:
		return tree.New(output), nil
	case FormatMarkdown:
		return markdown.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
