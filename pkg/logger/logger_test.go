package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-crossqueue/pkg/settings"
)

func captureConsole(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := console
	console = &buf
	t.Cleanup(func() { console = prev })
	return &buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		text    string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zapcore.InfoLevel, false},
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"loud", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseLevel(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_ConsoleOnly(t *testing.T) {
	buf := captureConsole(t)

	log, err := New(settings.Logger{LogLevel: "warn"})
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept", zap.String("stage", "w0"))
	_ = log.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "w0", entry["stage"])
}

func TestNew_FileSink(t *testing.T) {
	captureConsole(t)
	path := filepath.Join(t.TempDir(), "logs", "pipeline.log")

	log, err := New(settings.Logger{LogLevel: "debug", FileLogName: path, MaxSize: 1})
	require.NoError(t, err)

	log.Debug("to file", zap.Int("worker", 3))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to file"`)
	assert.Contains(t, string(data), `"worker":3`)
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(settings.Logger{LogLevel: "chatty"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	require.NotNil(t, log)
	log.Info("discarded")
}
