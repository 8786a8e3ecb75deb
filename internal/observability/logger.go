package observability

import (
	"log/slog"
	"os"
)

// Logger is the narrow logging surface passed to services.
type Logger struct {
	base *slog.Logger
}

func NewLogger() *Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &Logger{base: slog.New(handler)}
}

func (l *Logger) Info(msg string) {
	l.base.Info(msg)
}

func (l *Logger) Error(msg string) {
	l.base.Error(msg)
}
