package cli

import (
	stderrors "errors"

	"github.com/durp-dev/durp/pkg/ui"
	"github.com/spf13/cobra"
)

// renderedError marks an error the selected renderer already showed
type renderedError struct {
	err error
}

func (e *renderedError) Error() string { return e.err.Error() }
func (e *renderedError) Unwrap() error { return e.err }

// Rendered reports whether err was already written by the command's
// renderer, so the caller only has to set the exit status.
func Rendered(err error) bool {
	var r *renderedError
	return stderrors.As(err, &r)
}

// fail renders err in the configured output format. Machine-readable
// formats write the error document to stdout where the report would have
// gone; the others write to stderr. If rendering is impossible err is
// returned as is.
func (s *settings) fail(cmd *cobra.Command, err error) error {
	if err == nil || s.cfg == nil || Rendered(err) {
		return err
	}
	format, perr := ui.ParseFormat(s.cfg.Output.Format)
	if perr != nil {
		return err
	}

	out := cmd.ErrOrStderr()
	if format.MachineReadable() {
		out = cmd.OutOrStdout()
	}
	renderer, rerr := ui.NewRenderer(format, out)
	if rerr != nil {
		return err
	}
	if rerr := renderer.RenderError(err); rerr != nil {
		return err
	}
	return &renderedError{err: err}
}
