package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/storefront-labs/catalog-api/internal/model"
	"github.com/storefront-labs/catalog-api/internal/server"
	"github.com/storefront-labs/catalog-api/internal/validation"
)

// OfferHandler serves the /offers endpoints.
type OfferHandler struct {
	Handler
}

// NewOfferHandler constructs an OfferHandler.
func NewOfferHandler(s *server.Server) *OfferHandler {
	return &OfferHandler{
		Handler: NewHandler(s),
	}
}

// CreateOfferRequest is an Offer JSON body. The nested item list is
// validated item by item before the handler runs.
type CreateOfferRequest struct {
	model.Offer
}

func (r *CreateOfferRequest) Validate() error {
	return validation.Struct(r)
}

// CreateOfferResponse echoes the offer back.
type CreateOfferResponse struct {
	Name     string          `json:"name"`
	Discount decimal.Decimal `json:"discount"`
	Items    []model.Item    `json:"items"`
}

func (h *OfferHandler) CreateOffer(c echo.Context, req *CreateOfferRequest) (*CreateOfferResponse, error) {
	return &CreateOfferResponse{
		Name:     *req.Name,
		Discount: req.Discount,
		Items:    req.Items,
	}, nil
}
