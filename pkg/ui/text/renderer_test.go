package text_test

import (
	"bytes"
	"testing"

	"github.com/durp-dev/durp/pkg/types"
	"github.com/durp-dev/durp/pkg/ui/report"
	"github.com/durp-dev/durp/pkg/ui/text"
	"github.com/durp-dev/durp/pkg/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	l := types.NewDirectoryListing("/p")
	l.Add("graphql", "A.graphql")
	l.Add("", "Makefile")
	l.Add("json", "bean.json")

	rep := report.New("/p", "bean.json", walker.ModeFailFast, walker.Result{
		Components: []types.DirectoryListing{l},
		Diagnostics: []walker.Diagnostic{{
			Severity: walker.SeverityWarning,
			Code:     walker.CodeMarkerMalformed,
			Message:  "marker file malformed, directory is not a component",
			Path:     "/p/x/bean.json",
		}},
	})

	buf := &bytes.Buffer{}
	require.NoError(t, text.New(buf).Render(rep))

	want := "/p\n" +
		"  (none): Makefile\n" +
		"  graphql: A.graphql\n" +
		"  json: bean.json\n" +
		"warning: /p/x/bean.json: marker file malformed, directory is not a component\n" +
		"1 component found under /p\n"
	assert.Equal(t, want, buf.String())
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "0 components", text.Plural(0, "component"))
	assert.Equal(t, "1 component", text.Plural(1, "component"))
	assert.Equal(t, "4 components", text.Plural(4, "component"))
}
