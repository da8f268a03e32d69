// Package logger builds the process-wide slog logger and the HTTP access log.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"go.uber.org/fx"
)

var Module = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewHTTPLoggerFromEnv,
	),
	fx.Invoke(RegisterHTTPLoggerLifecycle),
)

// NewLogger creates the application logger.
// LOG_LEVEL selects the level (debug, info, warn, error); NODE_ENV or
// GO_ENV set to production switches to the JSON handler.
func NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	}

	var handler slog.Handler
	if production() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func production() bool {
	return os.Getenv("NODE_ENV") == "production" || os.Getenv("GO_ENV") == "production"
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Scope tags log lines with the component that produced them.
func Scope(name string) slog.Attr {
	return slog.String("scope", name)
}

// Error wraps an error as a structured attribute.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
