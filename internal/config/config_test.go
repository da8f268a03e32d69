package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, k := range []string{"NODE_ENV", "SERVER_PORT", "STATIC_DIR", "DEV_SERVER_URL", "DISCORD_WEBHOOK_URL", "OTEL_EXPORTER_OTLP_ENDPOINT"} {
		unsetenv(t, k)
	}

	cfg, err := NewConfig(slog.Default())
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 5000, cfg.ServerPort)
	assert.Equal(t, "dist/public", cfg.Assets.StaticDir)
	assert.Equal(t, "0.0.0.0", cfg.ServerAddress)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "web/static", cfg.Assets.Dir)
	assert.Equal(t, 30, cfg.Assets.ParticleCount)
	assert.Equal(t, 32, cfg.Visitors.QueueSize)
	assert.Equal(t, 30*time.Second, cfg.Monitor.Interval)
	assert.Equal(t, "portfr", cfg.Otel.ServiceName)
	assert.False(t, cfg.Visitors.Enabled())
	assert.False(t, cfg.Otel.Enabled())
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "production")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("STATIC_DIR", "/srv/public")
	t.Setenv("DISCORD_WEBHOOK_URL", "https://discord.example/webhook")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://collector:4318")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-api-key=secret,x-team=web")

	cfg, err := NewConfig(slog.Default())
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, "/srv/public", cfg.Assets.StaticDir)
	assert.True(t, cfg.Visitors.Enabled())
	assert.True(t, cfg.Otel.Enabled())
	assert.Equal(t, map[string]string{"x-api-key": "secret", "x-team": "web"}, cfg.Otel.Headers)
}

func TestNewConfig_InvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")

	_, err := NewConfig(slog.Default())
	assert.Error(t, err)
}

func TestConfig_IsProduction(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{EnvProduction, true},
		{EnvDevelopment, false},
		{"", false},
		{"staging", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := &Config{Environment: tt.env}
			assert.Equal(t, tt.want, cfg.IsProduction())
		})
	}
}

// unsetenv removes key for the duration of the test and restores it afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
