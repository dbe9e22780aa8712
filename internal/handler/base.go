package handler

import (
	"reflect"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/storefront-labs/catalog-api/internal/middleware"
	"github.com/storefront-labs/catalog-api/internal/server"
	"github.com/storefront-labs/catalog-api/internal/validation"
)

// Handler is the base handler type that holds shared application
// dependencies.
//
// It is embedded by concrete handlers (e.g. ItemHandler, BookHandler)
// so they can access shared resources via *server.Server (config,
// logger). Returning the struct by value is fine: it only contains a
// pointer field, so copies still point at the same Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// --- Generic typed handler plumbing -----------------------------------------

// HandlerFunc represents a typed endpoint function that receives a
// validated request payload (Req) and returns a response (Res) or an
// error.
//
// Req must satisfy validation.Validatable. In practice Req is a
// POINTER type, e.g. *GetItemRequest, because binding needs a pointer
// to populate fields.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// ResponseHandler defines how a successful handler result is written
// to the HTTP response.
type ResponseHandler interface {
	// Handle writes the HTTP response for the given result.
	Handle(c echo.Context, result interface{}) error

	// GetOperation returns an operation name used for structured logging.
	GetOperation() string
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// newRequest allocates a fresh request value from the registered
// prototype. Binding into the prototype itself would share one struct
// across concurrent requests.
func newRequest[Req any](proto Req) Req {
	v := reflect.ValueOf(proto)
	if v.Kind() != reflect.Ptr {
		return proto
	}
	return reflect.New(v.Type().Elem()).Interface().(Req)
}

// handleRequest is the shared execution pipeline for all typed
// endpoints. It centralizes:
//
//   - request binding + validation
//   - structured logging (with request context)
//   - timing (validation duration, handler duration, total duration)
//   - response writing
//
// Req must satisfy validation.Validatable (pointer-to-struct).
func handleRequest[Req validation.Validatable](
	c echo.Context,
	proto Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	method := c.Request().Method
	route := c.Path()

	req := newRequest(proto)

	// The context-enhanced logger already includes request_id and
	// friends; add the handler-level fields on top.
	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", method).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	// ---------------- Validation phase ---------------------------------------
	validationStart := time.Now()

	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Warn().
			Err(err).
			Dur("validation_duration", time.Since(validationStart)).
			Msg("request validation failed")

		// Let the global error handler format the response.
		return err
	}

	validationDuration := time.Since(validationStart)

	// ---------------- Handler execution phase --------------------------------
	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Warn().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")

		return err
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler with binding, validation, error
// handling, logging, and timing, returning an echo.HandlerFunc that
// can be registered directly on routes.
//
// Usage pattern:
//
//	router.POST("/x", handler.Handle(h.create, http.StatusCreated, &CreateRequest{}))
//
// proto is never bound directly; each request gets a fresh instance.
func Handle[Req validation.Validatable, Res any](
	handler HandlerFunc[Req, Res],
	status int,
	proto Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Adapt the typed handler (Res) into the generic interface{} pipeline.
		return handleRequest(c, proto, func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}
