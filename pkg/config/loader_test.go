// Test Type: Unit Test
// Description: Tests for layered configuration loading

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/durp-dev/durp/pkg/config"
	"github.com/durp-dev/durp/pkg/errors"
	"github.com/durp-dev/durp/pkg/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the XDG config lookup at an empty directory
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load(config.Options{})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	mode, err := cfg.WalkMode()
	require.NoError(t, err)
	assert.Equal(t, walker.ModeFailFast, mode)
	assert.Contains(t, config.DefaultsContent(), `name = "bean.json"`)
}

func TestLoad_Sources(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(t *testing.T, xdgDir string) config.Options
		verify func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "xdg_toml_file",
			setup: func(t *testing.T, xdgDir string) config.Options {
				writeFile(t, filepath.Join(xdgDir, "durp", "config.toml"), "[marker]\nname = \"corn.toml\"\n")
				return config.Options{}
			},
			verify: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "corn.toml", cfg.Marker.Name)
			},
		},
		{
			name: "explicit_yaml_file",
			setup: func(t *testing.T, _ string) config.Options {
				path := writeFile(t, filepath.Join(t.TempDir(), "durp.yaml"), "walk:\n  mode: collect\n  timeout: 3s\n")
				return config.Options{ConfigFile: path}
			},
			verify: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "collect", cfg.Walk.Mode)
				assert.Equal(t, 3*time.Second, cfg.Walk.Timeout)
				assert.Equal(t, "bean.json", cfg.Marker.Name)
			},
		},
		{
			name: "durp_name_env",
			setup: func(t *testing.T, _ string) config.Options {
				t.Setenv("DURP_NAME", "pod.yaml")
				return config.Options{}
			},
			verify: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "pod.yaml", cfg.Marker.Name)
			},
		},
		{
			name: "section_env",
			setup: func(t *testing.T, _ string) config.Options {
				t.Setenv("DURP_OUTPUT_FORMAT", "json")
				t.Setenv("DURP_WALK_MODE", "collect")
				return config.Options{}
			},
			verify: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "json", cfg.Output.Format)
				assert.Equal(t, "collect", cfg.Walk.Mode)
			},
		},
		{
			name: "env_file",
			setup: func(t *testing.T, _ string) config.Options {
				path := writeFile(t, filepath.Join(t.TempDir(), ".env"), "DURP_NAME=bean.cue\nOTHER=ignored\n")
				return config.Options{EnvFile: path}
			},
			verify: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "bean.cue", cfg.Marker.Name)
			},
		},
		{
			name: "environment_overrides_env_file_and_config",
			setup: func(t *testing.T, xdgDir string) config.Options {
				writeFile(t, filepath.Join(xdgDir, "durp", "config.toml"), "[marker]\nname = \"a.json\"\n")
				envFile := writeFile(t, filepath.Join(t.TempDir(), ".env"), "DURP_NAME=b.json\n")
				t.Setenv("DURP_NAME", "c.json")
				return config.Options{EnvFile: envFile}
			},
			verify: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "c.json", cfg.Marker.Name)
			},
		},
		{
			name: "missing_env_file_ignored",
			setup: func(t *testing.T, _ string) config.Options {
				return config.Options{EnvFile: filepath.Join(t.TempDir(), ".env")}
			},
			verify: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "bean.json", cfg.Marker.Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xdgDir := isolate(t)
			cfg, err := config.Load(tt.setup(t, xdgDir))
			require.NoError(t, err)
			tt.verify(t, cfg)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T) config.Options
		wantCode errors.ErrorCode
	}{
		{
			name: "explicit_file_missing",
			setup: func(t *testing.T) config.Options {
				return config.Options{ConfigFile: filepath.Join(t.TempDir(), "nope.toml")}
			},
			wantCode: errors.ErrConfigLoad,
		},
		{
			name: "malformed_toml",
			setup: func(t *testing.T) config.Options {
				return config.Options{ConfigFile: writeFile(t, filepath.Join(t.TempDir(), "c.toml"), "[marker\n")}
			},
			wantCode: errors.ErrConfigParse,
		},
		{
			name: "unknown_mode",
			setup: func(t *testing.T) config.Options {
				t.Setenv("DURP_WALK_MODE", "eventually")
				return config.Options{}
			},
			wantCode: errors.ErrConfigValid,
		},
		{
			name: "marker_with_separator",
			setup: func(t *testing.T) config.Options {
				t.Setenv("DURP_NAME", "sub/bean.json")
				return config.Options{}
			},
			wantCode: errors.ErrConfigValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := config.Load(tt.setup(t))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
			assert.True(t, errors.IsKind(err, errors.KindConfig))
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	cfg.Marker.Name = "  "
	assert.Error(t, cfg.Validate())

	cfg = config.Default()
	cfg.Walk.Timeout = -time.Second
	assert.True(t, errors.IsErrorCode(cfg.Validate(), errors.ErrConfigValid))
}
