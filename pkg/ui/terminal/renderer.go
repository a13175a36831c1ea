// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/durp-dev/durp/pkg/style"
	"github.com/durp-dev/durp/pkg/types"
	"github.com/durp-dev/durp/pkg/ui/report"
	"github.com/durp-dev/durp/pkg/ui/text"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// Render prints each component with its categories, then diagnostics and a
// summary line
func (r *Renderer) Render(rep report.Report) error {
	var b strings.Builder

	for _, c := range rep.Components {
		renderComponent(&b, c)
	}

	for _, d := range rep.Diagnostics {
		indicator, msgStyle := style.WarningIndicator, style.WarningStyle
		if d.Severity == "error" {
			indicator, msgStyle = style.ErrorIndicator, style.ErrorStyle
		}
		fmt.Fprintf(&b, "%s %s %s\n", indicator, style.MutedStyle.Render(d.Path), msgStyle.Render(d.Message))
	}

	summary := text.Plural(rep.Count(), "component") + " found under " + rep.Root
	if len(rep.Errors()) > 0 {
		fmt.Fprintf(&b, "%s %s\n", style.ErrorIndicator, style.TitleStyle.Render(summary))
	} else {
		fmt.Fprintf(&b, "%s %s\n", style.SuccessIndicator, style.TitleStyle.Render(summary))
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

func renderComponent(b *strings.Builder, c types.DirectoryListing) {
	b.WriteString(style.PathStyle.Render(c.Path))
	b.WriteByte('\n')
	for _, key := range c.Keys() {
		names := make([]string, 0, len(c.Get(key)))
		for _, name := range c.Get(key) {
			names = append(names, style.CategoryStyle(key).Render(name))
		}
		line := style.KeyStyle.Render(text.KeyLabel(key)) + " " + strings.Join(names, "  ")
		b.WriteString(style.Indent(line, 1))
		b.WriteByte('\n')
	}
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "%s %s\n", style.ErrorIndicator, style.ErrorStyle.Render(err.Error()))
	return err2
}
