package router

import (
	"github.com/labstack/echo/v4"

	"github.com/storefront-labs/catalog-api/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of the
// business API surface.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by Kubernetes/monitors).
	r.GET("/status", h.Health.CheckHealth)
}
