package detect_test

import (
	"testing"

	"github.com/durp-dev/durp/pkg/detect"
	"github.com/durp-dev/durp/pkg/errors"
	"github.com/durp-dev/durp/pkg/marker"
	"github.com/durp-dev/durp/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDetector(t *testing.T, tree testutil.Tree, markerName string) *detect.Detector {
	t.Helper()
	return detect.New(testutil.MemTree(t, tree), marker.NewRegistry(), markerName)
}

func TestDetector_MarkerPath(t *testing.T) {
	d := newDetector(t, testutil.Tree{}, "")

	assert.Equal(t, "bean.json", d.MarkerName())
	assert.Equal(t, "/p/bean.json", d.MarkerPath("/p"))
	assert.Equal(t, "/p/bean.json", d.MarkerPath("/p/"))
}

func TestDetector_Detect(t *testing.T) {
	tree := testutil.Tree{
		"ok/bean.json":         `{"name": "ok"}`,
		"malformed/bean.json":  `{"name": `,
		"empty/bean.json":      ``,
		"none/x.gql":           "",
		"dirmarker/bean.json/": "",
	}
	d := newDetector(t, tree, "bean.json")

	tests := []struct {
		name   string
		path   string
		want   string
		ok     bool
		status detect.Status
	}{
		{name: "valid_marker", path: "/ok", want: "/ok", ok: true, status: detect.StatusFound},
		{name: "valid_marker_trailing_separator", path: "/ok/", want: "/ok/", ok: true, status: detect.StatusFound},
		{name: "malformed_marker", path: "/malformed", status: detect.StatusMalformed},
		{name: "empty_marker", path: "/empty", status: detect.StatusMalformed},
		{name: "no_marker", path: "/none", status: detect.StatusMissing},
		{name: "missing_directory", path: "/does/not/exist", status: detect.StatusMissing},
		{name: "marker_is_directory", path: "/dirmarker", status: detect.StatusUnreadable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := d.Detect(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)

			probe, err := d.Probe(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.status, probe.Status)
			assert.Equal(t, tt.path, probe.Path)
			if tt.ok {
				assert.NoError(t, probe.Cause)
			}
		})
	}
}

func TestDetector_ProbeCauses(t *testing.T) {
	d := newDetector(t, testutil.Tree{"bad/bean.json": "{"}, "bean.json")

	probe, err := d.Probe("/bad")
	require.NoError(t, err)
	assert.False(t, probe.IsComponent())
	assert.Equal(t, "/bad/bean.json", probe.MarkerPath)
	assert.True(t, errors.IsErrorCode(probe.Cause, errors.ErrMarkerParse))
}

func TestDetector_EmptyPath(t *testing.T) {
	d := newDetector(t, testutil.Tree{}, "")

	_, ok, err := d.Detect("")
	require.Error(t, err)
	assert.False(t, ok)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestDetector_OverrideMarkerName(t *testing.T) {
	tree := testutil.ComponentStructure()
	const notAComponent = "/testComponentDir1/notAComponent/"

	beans := newDetector(t, tree, "bean.json")
	_, ok, err := beans.Detect(notAComponent)
	require.NoError(t, err)
	assert.False(t, ok)

	corn := newDetector(t, tree, "corn.json")
	got, ok, err := corn.Detect(notAComponent)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, notAComponent, got)
}

func TestDetector_OtherFormats(t *testing.T) {
	tree := testutil.Tree{
		"t/bean.toml": "name = \"t\"\n",
		"y/bean.yaml": "name: y\n",
		"u/bean.ini":  "name=u\n",
	}

	toml := newDetector(t, tree, "bean.toml")
	_, ok, _ := toml.Detect("/t")
	assert.True(t, ok)

	yaml := newDetector(t, tree, "bean.yaml")
	_, ok, _ = yaml.Detect("/y")
	assert.True(t, ok)

	ini := newDetector(t, tree, "bean.ini")
	probe, err := ini.Probe("/u")
	require.NoError(t, err)
	assert.Equal(t, detect.StatusUnsupported, probe.Status)
}
