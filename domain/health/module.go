package health

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Module serves the JSON diagnostics under /api.
var Module = fx.Module("health",
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)

// RegisterRoutes mounts the diagnostic endpoints.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	api := e.Group("/api")
	for path, fn := range map[string]echo.HandlerFunc{
		"/health": h.Health,
		"/ping":   h.Ping,
		"/info":   h.Info,
		"/env":    h.Env,
		"/debug":  h.Debug,
	} {
		api.GET(path, fn)
		api.HEAD(path, fn)
	}
}
