package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_DisabledDiscards(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Enabled: false, Output: &buf})
	Info("hello", "k", 1)
	assert.Empty(t, buf.String())
}

func TestInit_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Enabled: true, Output: &buf, Level: slog.LevelWarn})
	t.Cleanup(func() { Init(Options{}) })

	Info("skipped")
	Warn("kept", "count", 3)

	out := buf.String()
	assert.NotContains(t, out, "skipped")
	assert.Contains(t, out, "msg=kept")
	assert.Contains(t, out, "count=3")
}

func TestInit_JSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Enabled: true, Output: &buf, Level: slog.LevelDebug, JSON: true})
	t.Cleanup(func() { Init(Options{}) })

	Debug("grow", "cap", 8)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "grow", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.EqualValues(t, 8, rec["cap"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
