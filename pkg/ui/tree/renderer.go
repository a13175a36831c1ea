// Package tree renders components as a directory tree under the walk root
package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/durp-dev/durp/pkg/types"
	"github.com/durp-dev/durp/pkg/ui/report"
	"github.com/durp-dev/durp/pkg/ui/text"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// Renderer prints components as a pterm tree
type Renderer struct {
	output io.Writer
}

// New creates a new tree renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// Render prints the walk root with each component beneath it, nested
// components under their enclosing component, and each component's
// categories as leaves.
func (r *Renderer) Render(rep report.Report) error {
	rendered, err := pterm.DefaultTree.
		WithRoot(putils.TreeFromLeveledList(LeveledList(rep))).
		Srender()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(r.output, rendered); err != nil {
		return err
	}
	_, err = fmt.Fprintf(r.output, "%s\n", text.Plural(rep.Count(), "component"))
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// LeveledList flattens the report into pterm's leveled list. Components
// arrive in pre-order, so a component's ancestors are always already on
// the stack.
func LeveledList(rep report.Report) pterm.LeveledList {
	list := pterm.LeveledList{{Level: 0, Text: rep.Root}}

	var stack []types.DirectoryListing
	for _, c := range rep.Components {
		for len(stack) > 0 && !within(c.Path, stack[len(stack)-1].Path) {
			stack = stack[:len(stack)-1]
		}
		parent := rep.Root
		if len(stack) > 0 {
			parent = stack[len(stack)-1].Path
		}

		level := len(stack) + 1
		list = append(list, pterm.LeveledListItem{Level: level, Text: relative(parent, c.Path)})
		for _, key := range c.Keys() {
			list = append(list, pterm.LeveledListItem{
				Level: level + 1,
				Text:  fmt.Sprintf("%s: %s", text.KeyLabel(key), strings.Join(c.Get(key), ", ")),
			})
		}
		stack = append(stack, c)
	}
	return list
}

func within(path, ancestor string) bool {
	if path == ancestor {
		return false
	}
	if !types.HasTrailingSeparator(ancestor) {
		ancestor += "/"
	}
	return strings.HasPrefix(path, ancestor)
}

// relative trims parent from path, leaving path untouched when it is the
// walk root itself or lies elsewhere
func relative(parent, path string) string {
	if path == parent {
		return path
	}
	if !types.HasTrailingSeparator(parent) {
		parent += "/"
	}
	if rel := strings.TrimPrefix(path, parent); rel != path {
		return rel
	}
	return path
}
