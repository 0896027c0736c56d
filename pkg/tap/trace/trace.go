package trace

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ib-77/tap/pkg/tap"
)

// LogLevel represents the severity a tapped value is logged at.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

const defaultMessage = "TAP: value"

// Logger defines the logging methods used by trace callbacks.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Config struct {
	// Level defaults to debug.
	Level LogLevel
	// Message defaults to "TAP: value".
	Message string
	// Args are logged before the value attribute.
	Args []any
}

func (c Config) parse() Config {
	c.Level = LogLevel(strings.ToLower(string(c.Level)))
	switch c.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		c.Level = LogLevelDebug
	}
	if c.Message == "" {
		c.Message = defaultMessage
	}
	return c
}

type loggerKey struct{}

func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// LoggerFrom returns the logger stored by WithLogger, or fallback.
// A nil fallback means slog.Default().
func LoggerFrom(ctx context.Context, fallback Logger) Logger {
	if logger, ok := ctx.Value(loggerKey{}).(Logger); ok && logger != nil {
		return logger
	}
	if fallback == nil {
		return slog.Default()
	}
	return fallback
}

// Value returns a callback for tap.Value that logs the value it receives.
func Value[T any](logger Logger, cfg Config) func(T) {
	cfg = cfg.parse()
	if logger == nil {
		logger = slog.Default()
	}
	return func(v T) {
		log(logger, cfg, v)
	}
}

// Ref returns a callback for tap.Ref and the other shared-view taps.
func Ref[T any](logger Logger, cfg Config) func(tap.View[T]) {
	logValue := Value[T](logger, cfg)
	return func(v tap.View[T]) {
		logValue(v.Get())
	}
}

func log(logger Logger, cfg Config, v any) {
	args := make([]any, 0, len(cfg.Args)+2)
	args = append(args, cfg.Args...)
	args = append(args, "value", v)

	switch cfg.Level {
	case LogLevelInfo:
		logger.Info(cfg.Message, args...)
	case LogLevelWarn:
		logger.Warn(cfg.Message, args...)
	case LogLevelError:
		logger.Error(cfg.Message, args...)
	default:
		logger.Debug(cfg.Message, args...)
	}
}
