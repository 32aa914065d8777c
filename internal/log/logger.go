// Package log builds the structured logger dragline components share.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/iw2rmb/dragline/internal/config"
)

// Logger wraps slog.Logger with the file it writes to, if any.
type Logger struct {
	logger *slog.Logger
	closer io.Closer
}

// NewLogger creates a Logger from configuration. Logs are appended to
// cfg.LogFile, or discarded when it is empty.
func NewLogger(cfg config.Config) (*Logger, error) {
	if cfg.LogFile == "" {
		return NewLoggerWithWriter(io.Discard, cfg.LogFormat, cfg.LogLevel), nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l := NewLoggerWithWriter(f, cfg.LogFormat, cfg.LogLevel)
	l.closer = f
	return l, nil
}

// NewLoggerWithWriter creates a Logger that writes to w.
func NewLoggerWithWriter(w io.Writer, format config.LogFormat, level string) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	switch format {
	case config.LogFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return &Logger{logger: slog.New(handler)}
}

// Discard returns a Logger that drops every record.
func Discard() *Logger {
	return NewLoggerWithWriter(io.Discard, config.LogFormatText, config.DefaultLogLevel)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Slog returns the underlying slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

// With returns a Logger with additional attributes sharing the same output.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...), closer: l.closer}
}

// Close releases the log file. It is safe to call on loggers without one.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}
