package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront-labs/catalog-api/internal/middleware"
	"github.com/storefront-labs/catalog-api/internal/model"
	"github.com/storefront-labs/catalog-api/internal/server"
	"github.com/storefront-labs/catalog-api/internal/validation"
)

// BookHandler serves the /books endpoints.
type BookHandler struct {
	Handler
}

// NewBookHandler constructs a BookHandler.
func NewBookHandler(s *server.Server) *BookHandler {
	return &BookHandler{
		Handler: NewHandler(s),
	}
}

// sampleBooks is the fixed catalog returned by ListBooks, in fixed
// order.
var sampleBooks = []model.Book{
	{
		Title:   strPtr("Dune"),
		Author:  model.Author{Name: strPtr("Frank Herbert"), Age: intPtr(65)},
		Summary: strPtr("A desert planet, a noble house, and a spice worth killing for."),
	},
	{
		Title:  strPtr("Foundation"),
		Author: model.Author{Name: strPtr("Isaac Asimov"), Age: intPtr(72)},
	},
}

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

// ListBooks returns the fixed book catalog. There is no request to
// bind, so it skips the typed pipeline and writes directly.
func (h *BookHandler) ListBooks(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "list_books").
		Logger()

	logger.Info().Int("count", len(sampleBooks)).Msg("listing books")

	return c.JSON(http.StatusOK, sampleBooks)
}

// CreateBookRequest is a Book JSON body; the nested Author is
// validated against its own rules.
type CreateBookRequest struct {
	model.Book
}

func (r *CreateBookRequest) Validate() error {
	return validation.Struct(r)
}

// BookResponse echoes the book back. Summary serializes as explicit
// null when absent.
type BookResponse struct {
	Title   string       `json:"title"`
	Author  model.Author `json:"author"`
	Summary *string      `json:"summary"`
}

// CreateBook echoes a validated book. It backs both book-creation
// routes; only the registered response status differs.
func (h *BookHandler) CreateBook(c echo.Context, req *CreateBookRequest) (*BookResponse, error) {
	return &BookResponse{
		Title:   *req.Title,
		Author:  req.Author,
		Summary: req.Summary,
	}, nil
}
