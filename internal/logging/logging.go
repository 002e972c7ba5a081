package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logging configuration.
type Config struct {
	Level  string    // "debug", "info", "warn", "error"
	Format string    // "json", "text"
	Output io.Writer // defaults to stderr so reports on stdout stay clean
}

// New builds a structured slog.Logger. Unlike Init it leaves the process
// default logger alone.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	default:
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler)
}

// Init builds a logger with New and installs it as the slog default.
func Init(cfg Config) *slog.Logger {
	logger := New(cfg)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel converts a level name to slog.Level; unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// CalcLogger adapts a slog.Logger to the printf-style calculation.Logger.
type CalcLogger struct {
	L *slog.Logger
}

// NewCalcLogger wraps l, tagging every record with component=calculation.
func NewCalcLogger(l *slog.Logger) CalcLogger {
	return CalcLogger{L: l.With("component", "calculation")}
}

func (c CalcLogger) Debugf(format string, args ...any) { c.L.Debug(fmt.Sprintf(format, args...)) }
func (c CalcLogger) Infof(format string, args ...any)  { c.L.Info(fmt.Sprintf(format, args...)) }
func (c CalcLogger) Warnf(format string, args ...any)  { c.L.Warn(fmt.Sprintf(format, args...)) }
func (c CalcLogger) Errorf(format string, args ...any) { c.L.Error(fmt.Sprintf(format, args...)) }
