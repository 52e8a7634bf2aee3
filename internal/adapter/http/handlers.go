package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler serves the liveness endpoint. The payload reports whether the
// backend is running against real providers or in demo mode, so an operator
// hitting /health can tell a misconfigured deployment from a healthy one.
type Handler struct{ demo bool }

func NewHandler(demo bool) *Handler { return &Handler{demo: demo} }

func (h *Handler) Health(c echo.Context) error {
	mode := "live"
	if h.demo {
		mode = "demo"
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"mode":   mode,
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}
