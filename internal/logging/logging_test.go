package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv("TSR_DEBUG", "")
	assert.False(t, DebugEnabled())

	t.Setenv("TSR_DEBUG", "1")
	assert.True(t, DebugEnabled())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_JSON(t *testing.T) {
	t.Setenv("TSR_DEBUG", "")
	var buf bytes.Buffer

	logger, err := New(&buf, "json", "info")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("report generated", slog.Int64("request_id", 3))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "report generated", record["msg"])
	assert.EqualValues(t, 3, record["request_id"])
}

func TestNew_DebugOverride(t *testing.T) {
	t.Setenv("TSR_DEBUG", "1")
	var buf bytes.Buffer

	logger, err := New(&buf, "text", "error")
	require.NoError(t, err)

	logger.Debug("fold complete")
	assert.Contains(t, buf.String(), "fold complete")
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "xml", "info")
	assert.Error(t, err)
}
