package markdown_test

import (
	"bytes"
	"testing"

	"github.com/durp-dev/durp/pkg/types"
	"github.com/durp-dev/durp/pkg/ui/markdown"
	"github.com/durp-dev/durp/pkg/ui/report"
	"github.com/durp-dev/durp/pkg/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() report.Report {
	l := types.NewDirectoryListing("/p/a")
	l.Add("gql", "A.gql")
	return report.New("/p", "bean.json", walker.ModeFailFast, walker.Result{
		Components: []types.DirectoryListing{l},
	})
}

func TestDocument(t *testing.T) {
	doc := markdown.Document(sample())
	assert.Contains(t, doc, "# Components under `/p`")
	assert.Contains(t, doc, "1 component found using marker `bean.json`.")
	assert.Contains(t, doc, "## `/p/a`")
	assert.Contains(t, doc, "| gql | A.gql |")
	assert.NotContains(t, doc, "Diagnostics")
}

func TestRender_NoTTYStyle(t *testing.T) {
	buf := &bytes.Buffer{}
	r := markdown.New(buf)
	r.Style = "notty"
	r.Width = 100

	require.NoError(t, r.Render(sample()))
	assert.Contains(t, buf.String(), "/p/a")
	assert.Contains(t, buf.String(), "A.gql")
}
