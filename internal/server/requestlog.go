package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Pritam6569/portfr/pkg/logger"
)

// Health checks and scrapes are not logged at all.
var unloggedPaths = map[string]bool{
	"/api/health": true,
	"/api/ping":   true,
	"/metrics":    true,
}

// requestLevel picks the level for a finished request. A single page view
// pulls a dozen assets, so successful asset hits drop to debug.
func requestLevel(path string, status int, err error) slog.Level {
	switch {
	case err != nil || status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	case strings.HasPrefix(path, "/static/"):
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// requestLogger writes every request to the application log and the access
// log.
func requestLogger(log *slog.Logger, access *logger.HTTPLogger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return unloggedPaths[c.Request().URL.Path]
		},
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogError:     true,
		LogMethod:    true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogUserAgent: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, logger.Error(v.Error))
			}
			level := requestLevel(c.Request().URL.Path, v.Status, v.Error)
			log.LogAttrs(context.Background(), level, "request", attrs...)

			access.LogRequest(v.RemoteIP, v.Method, v.URI, v.Status, v.Latency, v.UserAgent, v.RequestID)
			return nil
		},
	})
}
