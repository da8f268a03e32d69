package site

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the site router on the echo instance.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	router := echo.WrapHandler(h.Router())
	e.GET("/", router)
	e.HEAD("/", router)
	e.GET("/static/*", router)
	e.HEAD("/static/*", router)
}
