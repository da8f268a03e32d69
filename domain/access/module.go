// Package access serves the self-contained diagnostic pages used to check a
// deployment when the main page does not load.
package access

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var Module = fx.Module("access",
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)

// RegisterRoutes mounts the diagnostic pages.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	for path, fn := range map[string]echo.HandlerFunc{
		"/direct":        h.Direct,
		"/debug":         h.Debug,
		"/vite-test":     h.ModuleTest,
		"/api/test-html": h.TestHTML,
	} {
		e.GET(path, fn)
		e.HEAD(path, fn)
	}
}
