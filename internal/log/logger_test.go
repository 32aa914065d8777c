package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/dragline/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"DEBUG":   slog.LevelDebug,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"WARNING": slog.LevelWarn,
		"Error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestNewLoggerWithWriter_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, config.LogFormatJSON, "WARN")

	l.Slog().Info("dropped")
	l.Slog().Warn("kept", "start", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, float64(3), rec["start"])
}

func TestNewLoggerWithWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, config.LogFormatText, "DEBUG")

	l.Slog().Debug("drag armed", "start", 1)

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, `msg="drag armed"`)
	assert.Contains(t, out, "start=1")
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, config.LogFormatJSON, "INFO").With("component", "editor")

	l.Slog().Info("ready")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "editor", rec["component"])
}

func TestNewLogger_EmptyFileDiscards(t *testing.T) {
	l, err := NewLogger(config.Default())
	require.NoError(t, err)

	l.Slog().Error("nowhere")
	assert.NoError(t, l.Close())
}

func TestNewLogger_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dragline.log")
	cfg := config.Default()
	cfg.LogFile = path
	cfg.LogLevel = "DEBUG"

	for i := 0; i < 2; i++ {
		l, err := NewLogger(cfg)
		require.NoError(t, err)
		l.Slog().Debug("line")
		require.NoError(t, l.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), `msg=line`))
}

func TestNewLogger_UnwritablePath(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "missing", "dragline.log")

	_, err := NewLogger(cfg)
	assert.Error(t, err)
}

func TestClose_Twice(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "dragline.log")

	l, err := NewLogger(cfg)
	require.NoError(t, err)
	require.NoError(t, l.Close())
	assert.NoError(t, l.Close())
}

func TestDiscard(t *testing.T) {
	assert.NotNil(t, Discard().Slog())
}
