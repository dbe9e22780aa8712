package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/storefront-labs/catalog-api/internal/middleware"
	"github.com/storefront-labs/catalog-api/internal/server"
)

// HealthHandler exposes a system endpoint that external systems
// (Kubernetes, uptime monitors, load balancers) can use to verify the
// service is alive.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler with access to shared
// app dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns the service health status.
//
// The service holds no external dependencies (no database, no cache),
// so a reachable process is a healthy process.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	logger.Info().Msg("health check passed")

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
	})
}
