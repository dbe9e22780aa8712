package handler

import (
	"github.com/storefront-labs/catalog-api/internal/server"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup passes one object around instead of many.
type Handlers struct {
	Root   *RootHandler   // Root serves the greeting endpoint.
	Item   *ItemHandler   // Item serves the /items endpoints.
	Offer  *OfferHandler  // Offer serves the /offers endpoints.
	User   *UserHandler   // User serves the /users endpoints.
	Book   *BookHandler   // Book serves the /books endpoints.
	Health *HealthHandler // Health serves the service health endpoint.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server) *Handlers {
	return &Handlers{
		Root:   NewRootHandler(s),
		Item:   NewItemHandler(s),
		Offer:  NewOfferHandler(s),
		User:   NewUserHandler(s),
		Book:   NewBookHandler(s),
		Health: NewHealthHandler(s),
	}
}
