package access

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/Pritam6569/portfr/internal/config"
	"github.com/Pritam6569/portfr/pkg/logger"
)

// Handler serves the diagnostic HTML pages.
type Handler struct {
	cfg *config.Config
	log *slog.Logger
	now func() time.Time
}

// NewHandler creates a new access handler
func NewHandler(cfg *config.Config, log *slog.Logger) *Handler {
	return &Handler{
		cfg: cfg,
		log: log.With(logger.Scope("access")),
		now: time.Now,
	}
}

func render(c echo.Context, node g.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return node.Render(c.Response())
}

// Direct serves the fallback information page.
func (h *Handler) Direct(c echo.Context) error {
	h.log.Debug("direct access page served")
	return render(c, DirectPage())
}

// ModuleTest serves the module script check page.
func (h *Handler) ModuleTest(c echo.Context) error {
	return render(c, ModuleTestPage())
}

// TestHTML serves the static verification page.
func (h *Handler) TestHTML(c echo.Context) error {
	return render(c, TestHTMLPage())
}

// Debug serves request and environment facts.
func (h *Handler) Debug(c echo.Context) error {
	req := c.Request()
	fields := []Field{
		{"nodeEnv", h.cfg.Environment},
		{"host", req.Host},
		{"userAgent", req.UserAgent()},
		{"protocol", c.Scheme()},
		{"secure", boolString(c.IsTLS())},
		{"originalUrl", req.RequestURI},
		{"path", req.URL.Path},
		{"realIP", c.RealIP()},
		{"serverTime", h.now().UTC().Format(time.RFC3339)},
	}
	h.log.Debug("debug page served")
	return render(c, DebugPage(fields, KnownRoutes))
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
