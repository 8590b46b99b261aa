package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New creates a slog logger at the provided level, tagged with the app name.
func New(level, app string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	l := slog.New(handler)
	if app != "" {
		l = l.With(slog.String("app", app))
	}
	return l
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
