package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// Config holds logger configuration
type Config struct {
	output       io.Writer
	level        zerolog.Level
	excludeParts []string
	console      bool
	timestamp    bool
}

// Option configures the logger
type Option interface {
	apply(*Config)
}

type optionFunc func(*Config)

func (f optionFunc) apply(cfg *Config) {
	f(cfg)
}

// WithLevel sets the level by name. Unknown names fall back to info.
func WithLevel(level string) Option {
	return optionFunc(func(cfg *Config) {
		cfg.level = ParseLevel(level)
	})
}

// WithConsoleWriter toggles the human readable console format.
func WithConsoleWriter(console bool) Option {
	return optionFunc(func(cfg *Config) {
		cfg.console = console
	})
}

// WithOutput sets the output writer
func WithOutput(output io.Writer) Option {
	return optionFunc(func(cfg *Config) {
		cfg.output = output
	})
}

// WithTimestamp adds a time field to every line and keeps it visible in console mode.
func WithTimestamp() Option {
	return optionFunc(func(cfg *Config) {
		cfg.timestamp = true
		parts := cfg.excludeParts[:0]
		for _, p := range cfg.excludeParts {
			if p != zerolog.TimestampFieldName {
				parts = append(parts, p)
			}
		}
		cfg.excludeParts = parts
	})
}

func ParseLevel(level string) zerolog.Level {
	switch level {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
