package logger

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// HTTPLogger writes one JSON line per served request to a dedicated access log.
type HTTPLogger struct {
	log  *zap.Logger
	file *os.File
}

// NewHTTPLogger opens (or creates) the access log at path.
// An empty path returns a logger that discards everything.
func NewHTTPLogger(path string) (*HTTPLogger, error) {
	if path == "" {
		return &HTTPLogger{log: zap.NewNop()}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zapcore.InfoLevel)
	return &HTTPLogger{log: zap.New(core), file: f}, nil
}

// NewHTTPLoggerFromEnv reads HTTP_LOG_FILE (default logs/http.log).
func NewHTTPLoggerFromEnv() (*HTTPLogger, error) {
	path, ok := os.LookupEnv("HTTP_LOG_FILE")
	if !ok {
		path = filepath.Join("logs", "http.log")
	}
	return NewHTTPLogger(path)
}

// LogRequest records a completed request.
func (h *HTTPLogger) LogRequest(ip, method, uri string, status int, latency time.Duration, userAgent, requestID string) {
	h.log.Info("request",
		zap.String("ip", ip),
		zap.String("method", method),
		zap.String("uri", uri),
		zap.Int("status", status),
		zap.Duration("latency", latency),
		zap.String("user_agent", userAgent),
		zap.String("request_id", requestID),
	)
}

// Close flushes and closes the underlying file.
func (h *HTTPLogger) Close() error {
	_ = h.log.Sync()
	if h.file != nil {
		return h.file.Close()
	}
	return nil
}

// RegisterHTTPLoggerLifecycle closes the access log on shutdown.
func RegisterHTTPLoggerLifecycle(lc fx.Lifecycle, h *HTTPLogger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return h.Close()
		},
	})
}
