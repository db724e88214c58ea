package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInit(t *testing.T) {
	prevDefault := slog.Default()
	prevWriter := log.Writer()
	t.Cleanup(func() {
		slog.SetDefault(prevDefault)
		log.SetOutput(prevWriter)
	})

	dir := filepath.Join(t.TempDir(), "logs")
	closer, err := Init(dir, "warn")
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer.Close() })

	slog.Info("hidden message")
	slog.Warn("visible message", "group", "Rocket")
	log.Print("goose says hi")

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)

	content := string(data)
	assert.NotContains(t, content, "hidden message")
	assert.Contains(t, content, "visible message")
	assert.Contains(t, content, "group=Rocket")
	assert.Contains(t, content, "goose says hi")
}

func TestInit_InvalidLevel(t *testing.T) {
	closer, err := Init(t.TempDir(), "loud")
	assert.Error(t, err)
	assert.Nil(t, closer)
}

func TestInit_CloseReleasesFile(t *testing.T) {
	prevDefault := slog.Default()
	prevWriter := log.Writer()
	prevLogger := Logger

	dir := t.TempDir()
	closer, err := Init(dir, "info")
	require.NoError(t, err)

	slog.Info("before close")
	require.NoError(t, closer.Close())

	assert.Same(t, prevDefault, slog.Default())
	assert.Same(t, prevLogger, Logger)
	assert.Equal(t, prevWriter, log.Writer())

	// The descriptor is gone, a second close reports it
	assert.ErrorIs(t, closer.Close(), os.ErrClosed)

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "before close")
}
