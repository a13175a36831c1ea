package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevelForVerbosity(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLevel, LevelForVerbosity(tt.verbosity))
		})
	}
}

func TestSetupLogger_CreatesLogFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tempDir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	SetupLogger(1)

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	_, err := os.Stat(filepath.Join(tempDir, "durp", "durp.log"))
	assert.NoError(t, err, "log file should be created under XDG_STATE_HOME")
}

func TestGetLogger_SetsComponent(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(1, &buf)

	logger := GetLogger("walker")
	logger.Info().Msg("visiting")

	assert.Contains(t, buf.String(), "component=walker")
	assert.Contains(t, buf.String(), "visiting")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(2, &buf)

	done := LogOperationStart(GetLogger("test"), "walk")
	done()

	assert.Contains(t, buf.String(), "Operation started")
	assert.Contains(t, buf.String(), "Operation completed")
}
