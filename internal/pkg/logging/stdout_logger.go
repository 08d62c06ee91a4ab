package logging

import (
	"io"
	"log/slog"
	"os"
)

//go:generate mockgen -source=stdout_logger.go -destination=../../../gen/mocks/logging/logger_mock.go -package=mocks

type Logger interface {
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
}

var DiscardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func NewStdoutLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// ParseLevel accepts the slog level names (debug, info, warn, error) in any case.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(name))
	return level, err
}
