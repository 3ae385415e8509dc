package common

import (
	"bytes"
	"context"
	"log/slog"
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
		{input: "debug", want: slog.LevelDebug},
		{input: "", want: slog.LevelInfo},
		{input: "WARN", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogHandler(t *testing.T) {
	var buf bytes.Buffer
	handler, err := NewLogHandler(&buf, LoggerOptions{Level: "warn", Format: "json"})
	require.NoError(t, err)

	logger := slog.New(handler)
	logger.Info("hidden")
	logger.Warn("Schema drift", "sheet", "2024")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"sheet":"2024"`)
	assert.False(t, handler.Enabled(context.Background(), slog.LevelInfo))
}

func TestNewLogHandlerConsole(t *testing.T) {
	var buf bytes.Buffer
	handler, err := NewLogHandler(&buf, LoggerOptions{Format: "console"})
	require.NoError(t, err)

	slog.New(handler).Info("Workbook loaded", "events", 3)
	assert.Contains(t, buf.String(), "Workbook loaded")
	assert.Contains(t, buf.String(), "events=3")
}

func TestNewLogHandlerFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "ledger.log")
	handler, err := NewLogHandler(&buf, LoggerOptions{Format: "json", File: path})
	require.NoError(t, err)

	slog.New(handler).Info("written twice")
	assert.Contains(t, buf.String(), "written twice")
	assert.FileExists(t, path)
}

func TestNewLogHandlerInvalidFormat(t *testing.T) {
	_, err := NewLogHandler(&bytes.Buffer{}, LoggerOptions{Format: "xml"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
