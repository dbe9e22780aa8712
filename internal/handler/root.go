package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront-labs/catalog-api/internal/server"
)

// RootHandler serves the root greeting endpoint.
type RootHandler struct {
	Handler
}

// NewRootHandler constructs a RootHandler.
func NewRootHandler(s *server.Server) *RootHandler {
	return &RootHandler{
		Handler: NewHandler(s),
	}
}

// Greet returns a fixed greeting record.
func (h *RootHandler) Greet(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Hello World",
	})
}
