package ui_test

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/durp-dev/durp/pkg/errors"
	"github.com/durp-dev/durp/pkg/types"
	"github.com/durp-dev/durp/pkg/ui"
	"github.com/durp-dev/durp/pkg/ui/report"
	"github.com/durp-dev/durp/pkg/walker"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() report.Report {
	a := types.NewDirectoryListing("/proj/a")
	a.Add("json", "bean.json")
	a.Add("gql", "A.gql")
	a.Add("dirs", "nested")

	nested := types.NewDirectoryListing("/proj/a/nested")
	nested.Add("json", "bean.json")
	nested.Add("graphql", "N.graphql")

	return report.New("/proj", "bean.json", walker.ModeCollect, walker.Result{
		Components: []types.DirectoryListing{a, nested},
		Diagnostics: []walker.Diagnostic{{
			Severity: walker.SeverityError,
			Code:     walker.CodeComponentInvalid,
			Message:  "no gql or graphql models found in path: /proj/b",
			Path:     "/proj/b",
		}},
	})
}

func TestNewRenderer(t *testing.T) {
	for _, name := range ui.Formats() {
		t.Run(name, func(t *testing.T) {
			format, err := ui.ParseFormat(name)
			require.NoError(t, err)

			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(format, buf)
			require.NoError(t, err)
			require.NotNil(t, renderer)

			require.NoError(t, renderer.Render(sampleReport()))
			assert.Contains(t, buf.String(), "/proj")
			assert.Contains(t, buf.String(), "N.graphql")
		})
	}

	t.Run("invalid_format", func(t *testing.T) {
		renderer, err := ui.NewRenderer(ui.Format(999), &bytes.Buffer{})
		assert.Error(t, err)
		assert.Nil(t, renderer)
	})
}

func TestRenderJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)
	require.NoError(t, renderer.Render(sampleReport()))

	var decoded struct {
		Root       string `json:"root"`
		Components []struct {
			Path       string              `json:"path"`
			Categories map[string][]string `json:"categories"`
		} `json:"components"`
		Diagnostics []map[string]string `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "/proj", decoded.Root)
	require.Len(t, decoded.Components, 2)
	assert.Equal(t, []string{"A.gql"}, decoded.Components[0].Categories["gql"])
	assert.Equal(t, "component_invalid", decoded.Diagnostics[0]["code"])
}

func TestRenderStructured(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		buf := &bytes.Buffer{}
		renderer, err := ui.NewRenderer(ui.FormatYAML, buf)
		require.NoError(t, err)
		require.NoError(t, renderer.Render(sampleReport()))

		var decoded report.Report
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "/proj/a/nested", decoded.Components[1].Path)
	})

	t.Run("toml", func(t *testing.T) {
		buf := &bytes.Buffer{}
		renderer, err := ui.NewRenderer(ui.FormatTOML, buf)
		require.NoError(t, err)
		require.NoError(t, renderer.Render(sampleReport()))

		var decoded report.Report
		require.NoError(t, toml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "collect", decoded.Mode)
		assert.Equal(t, []string{"nested"}, decoded.Components[0].Categories["dirs"])
	})
}

func TestRenderError(t *testing.T) {
	coded := errors.New(errors.ErrFileNotFound, "directory does not exist").WithDetail("path", "/nope")

	t.Run("json_includes_code", func(t *testing.T) {
		buf := &bytes.Buffer{}
		renderer, err := ui.NewRenderer(ui.FormatJSON, buf)
		require.NoError(t, err)
		require.NoError(t, renderer.RenderError(coded))

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "FILE_NOT_FOUND", decoded["code"])
	})

	t.Run("text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		renderer, err := ui.NewRenderer(ui.FormatText, buf)
		require.NoError(t, err)
		require.NoError(t, renderer.RenderError(stderrors.New("boom")))
		assert.Equal(t, "Error: boom\n", buf.String())
	})
}
