// Package logger wraps zerolog for the generation engine. The CLI keeps its
// colored verdict output; everything the engine reports (profiles inferred,
// capacity adjustments, allocation totals) goes through here.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type Logger struct {
	zlog zerolog.Logger
}

// Config holds logger settings.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output io.Writer
}

func DefaultConfig() *Config {
	return &Config{
		Level:  "info",
		Format: "console",
		Output: os.Stderr,
	}
}

func New(cfg *Config) *Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	out := cfg.Output
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339}
	}

	zlog := zerolog.New(out).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	return &Logger{zlog: zlog}
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *Logger) Debug() *zerolog.Event { return l.zlog.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zlog.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zlog.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zlog.Error() }
