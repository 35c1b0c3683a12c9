package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"trace", LevelTrace},
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestSetup_PlainConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := setup(&buf, false, "warn", "")
	require.NoError(t, err)
	defer func() { _ = closer.Close() }()

	logger.Info("hidden")
	logger.Warn("shown", "file", "Pet.cs")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "file=Pet.cs")
}

func TestSetup_ColorConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := setup(&buf, true, "debug", "")
	require.NoError(t, err)
	defer func() { _ = closer.Close() }()

	logger.With("emitter", "csharp-dotnet-core").WithGroup("render").Debug("file", "name", "Pet.cs")

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "file")
	assert.Contains(t, out, "emitter=")
	assert.Contains(t, out, "render.name=")
	assert.Contains(t, out, "Pet.cs")
}

func TestSetup_LogFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "gen.log")

	logger, closer, err := setup(&buf, false, "info", path)
	require.NoError(t, err)

	logger.Info("generated", "files", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=generated")
	assert.Contains(t, buf.String(), "msg=generated")
}

func TestSetup_LogFileError(t *testing.T) {
	_, _, err := setup(&bytes.Buffer{}, false, "info", filepath.Join(t.TempDir(), "missing", "gen.log"))
	assert.Error(t, err)
}
