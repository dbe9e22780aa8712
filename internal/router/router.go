// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/storefront-labs/catalog-api/internal/handler"
	"github.com/storefront-labs/catalog-api/internal/middleware"
	"github.com/storefront-labs/catalog-api/internal/server"
)

// New builds the Echo instance with the full middleware stack and all
// routes registered. The result is an http.Handler ready for
// server.SetupHTTPServer.
func New(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middlewares := middleware.NewMiddlewares(s)
	handlers := handler.NewHandlers(s)

	// Every error, wherever it happened, funnels through the global
	// error handler so clients see one consistent error shape.
	e.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: recovery first, then correlation (request id +
	// request-scoped logger), then the rest.
	e.Use(middlewares.Global.Recover())
	e.Use(middleware.RequestID())
	e.Use(middlewares.ContextEnhancer.EnhanceContext())
	e.Use(middlewares.Global.CORS())
	e.Use(middlewares.Global.Secure())
	e.Use(middlewares.Global.BodyLimit())
	e.Use(middlewares.Global.RequestLogger())

	registerSystemRoutes(e, handlers)
	registerAPIRoutes(e, handlers)

	return e
}
