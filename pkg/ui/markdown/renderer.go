// Package markdown renders a markdown summary of discovered components,
// styled for the terminal with glamour
package markdown

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/durp-dev/durp/pkg/ui/report"
	"github.com/durp-dev/durp/pkg/ui/text"
)

// Renderer uses the glamour library for rich markdown rendering
type Renderer struct {
	output io.Writer
	Style  string // Style name: "dark", "light", "notty", "auto", or path to custom style
	Width  int    // Word wrap width (0 = glamour default)
}

// New creates a markdown renderer using glamour with auto-detection
func New(output io.Writer) *Renderer {
	return &Renderer{
		output: output,
		Style:  "auto",
	}
}

// Document returns the report as a markdown document
func Document(rep report.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Components under `%s`\n\n", rep.Root)
	fmt.Fprintf(&b, "%s found using marker `%s`.\n\n", text.Plural(rep.Count(), "component"), rep.Marker)

	for _, c := range rep.Components {
		fmt.Fprintf(&b, "## `%s`\n\n", c.Path)
		b.WriteString("| Category | Entries |\n|---|---|\n")
		for _, key := range c.Keys() {
			fmt.Fprintf(&b, "| %s | %s |\n", text.KeyLabel(key), strings.Join(c.Get(key), ", "))
		}
		b.WriteString("\n")
	}

	if len(rep.Diagnostics) > 0 {
		b.WriteString("## Diagnostics\n\n")
		for _, d := range rep.Diagnostics {
			fmt.Fprintf(&b, "- **%s** `%s`: %s\n", d.Severity, d.Path, d.Message)
		}
	}
	return b.String()
}

// Render converts the report to markdown and prints it through glamour,
// falling back to the raw markdown when glamour fails
func (r *Renderer) Render(rep report.Report) error {
	_, err := io.WriteString(r.output, r.style(Document(rep)))
	return err
}

// RenderError renders an error as a markdown block quote
func (r *Renderer) RenderError(err error) error {
	_, err2 := io.WriteString(r.output, r.style(fmt.Sprintf("> **Error:** %v\n", err)))
	return err2
}

func (r *Renderer) style(content string) string {
	var options []glamour.TermRendererOption

	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}

	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
