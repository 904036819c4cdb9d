package logger

import (
	"os"

	"github.com/rs/zerolog"
)

const DefaultLogLevel = "info"

// New builds a logger. Without options it writes human readable lines to stdout at info level.
func New(opts ...Option) *zerolog.Logger {
	cfg := &Config{
		output:       os.Stdout,
		level:        zerolog.InfoLevel,
		excludeParts: []string{zerolog.TimestampFieldName, zerolog.LevelFieldName},
		console:      true,
	}
	for _, opt := range opts {
		opt.apply(cfg)
	}

	ctx := zerolog.New(cfg.output).Level(cfg.level).With()
	if cfg.timestamp {
		ctx = ctx.Timestamp()
	}
	logger := ctx.Logger()

	if cfg.console {
		logger = logger.Output(zerolog.ConsoleWriter{
			Out:          cfg.output,
			PartsExclude: cfg.excludeParts,
		})
	}

	return &logger
}

// NewConsoleLogger is the logger used by the klaybind CLI.
func NewConsoleLogger() *zerolog.Logger {
	return New(
		WithLevel(DefaultLogLevel),
		WithOutput(os.Stderr),
		WithConsoleWriter(true),
	)
}
