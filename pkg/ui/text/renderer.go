// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/durp-dev/durp/pkg/types"
	"github.com/durp-dev/durp/pkg/ui/report"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// Render prints one block per component followed by any diagnostics
func (r *Renderer) Render(rep report.Report) error {
	var b strings.Builder
	for _, c := range rep.Components {
		WriteListing(&b, c, "  ")
	}
	for _, d := range rep.Diagnostics {
		fmt.Fprintf(&b, "%s: %s: %s\n", d.Severity, d.Path, d.Message)
	}
	fmt.Fprintf(&b, "%s found under %s\n", Plural(rep.Count(), "component"), rep.Root)

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// WriteListing writes a listing's path and its categories, one per line in
// key order. Files without an extension are shown under "(none)".
func WriteListing(b *strings.Builder, l types.DirectoryListing, indent string) {
	b.WriteString(l.Path)
	b.WriteByte('\n')
	for _, key := range l.Keys() {
		fmt.Fprintf(b, "%s%s: %s\n", indent, KeyLabel(key), strings.Join(l.Get(key), ", "))
	}
}

// KeyLabel is the display name of a category key
func KeyLabel(key string) string {
	if key == "" {
		return "(none)"
	}
	return key
}

// Plural formats a count with a noun, adding an s when needed
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
