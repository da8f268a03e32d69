package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Pritam6569/portfr/internal/config"
	"github.com/Pritam6569/portfr/pkg/apperror"
	"github.com/Pritam6569/portfr/pkg/logger"
)

// FallbackPath is where every request no route claims ends up.
const FallbackPath = "/direct"

// NewFallback builds the handler for unmatched paths.
//
// In production it first tries the prebuilt static directory (a directory
// path serves its index.html); in development it hands the request to the
// asset dev server when one is configured. Anything still unclaimed is
// redirected to FallbackPath, except FallbackPath itself, which is a 404.
func NewFallback(cfg *config.Config, log *slog.Logger) (echo.HandlerFunc, error) {
	log = log.With(logger.Scope("server.fallback"))

	redirect := func(c echo.Context) error {
		if path.Clean("/"+c.Request().URL.Path) == FallbackPath {
			return apperror.ErrNotFound
		}
		log.Info("fallback route handling", slog.String("uri", c.Request().RequestURI))
		return c.Redirect(http.StatusFound, FallbackPath)
	}

	if cfg.IsProduction() {
		log.Info("setting up static serving", slog.String("dir", cfg.Assets.StaticDir))
		return serveStatic(cfg.Assets.StaticDir, redirect), nil
	}

	if cfg.Assets.DevServerURL == "" {
		return redirect, nil
	}

	target, err := url.Parse(cfg.Assets.DevServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid DEV_SERVER_URL: %w", err)
	}
	log.Info("proxying unmatched requests to asset dev server", slog.String("target", target.String()))

	proxy := middleware.ProxyWithConfig(middleware.ProxyConfig{
		Balancer: middleware.NewRoundRobinBalancer([]*middleware.ProxyTarget{{URL: target}}),
	})
	return proxy(redirect), nil
}

// RegisterFallback installs the unmatched-path handler.
func RegisterFallback(e *echo.Echo, cfg *config.Config, log *slog.Logger) error {
	h, err := NewFallback(cfg, log)
	if err != nil {
		return err
	}
	e.RouteNotFound("/*", h)
	return nil
}

func serveStatic(root string, next echo.HandlerFunc) echo.HandlerFunc {
	if root == "" {
		return next
	}
	return func(c echo.Context) error {
		if m := c.Request().Method; m != http.MethodGet && m != http.MethodHead {
			return next(c)
		}

		name := filepath.Join(root, filepath.FromSlash(path.Clean("/"+c.Request().URL.Path)))
		fi, err := os.Stat(name)
		if err == nil && fi.IsDir() {
			name = filepath.Join(name, "index.html")
			fi, err = os.Stat(name)
		}
		if err != nil || fi.IsDir() {
			return next(c)
		}
		return c.File(name)
	}
}
