package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront-labs/catalog-api/internal/handler"
)

// registerAPIRoutes maps the endpoint table: each route pairs a path
// with a typed handler and the request prototype that declares its
// parameter schema.
//
// Static segments (cookies, filter, ...) are registered alongside the
// :item_id parameter route; Echo matches static segments first.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Root.Greet)

	items := r.Group("/items")
	items.GET("/:item_id", handler.Handle(h.Item.GetItem, http.StatusOK, &handler.GetItemRequest{}))
	items.PUT("/:item_id", handler.Handle(h.Item.UpdateItem, http.StatusOK, &handler.UpdateItemRequest{}))
	items.POST("/filter/", handler.Handle(h.Item.FilterItems, http.StatusOK, &handler.FilterItemsRequest{}))
	items.POST("/create_with_fields/", handler.Handle(h.Item.CreateItemWithFields, http.StatusOK, &handler.CreateItemWithFieldsRequest{}))
	items.POST("/extra_data_types/", handler.Handle(h.Item.ExtraDataTypes, http.StatusOK, &handler.ExtraDataTypesRequest{}))
	items.GET("/cookies/", handler.Handle(h.Item.ReadCookie, http.StatusOK, &handler.ReadCookieRequest{}))
	items.POST("/form_data/", handler.Handle(h.Item.CreateItemFromForm, http.StatusOK, &handler.ItemFormRequest{}))
	items.POST("/form_and_file/", handler.Handle(h.Item.CreateItemFromFormAndFile, http.StatusOK, &handler.ItemFormWithFileRequest{}))

	r.POST("/offers/", handler.Handle(h.Offer.CreateOffer, http.StatusOK, &handler.CreateOfferRequest{}))
	r.POST("/users/", handler.Handle(h.User.CreateUser, http.StatusOK, &handler.CreateUserRequest{}))

	books := r.Group("/books")
	books.GET("/", h.Book.ListBooks)
	books.POST("/create_with_author/", handler.Handle(h.Book.CreateBook, http.StatusOK, &handler.CreateBookRequest{}))
	// Same handler as above; creation on the collection root answers 201.
	books.POST("/", handler.Handle(h.Book.CreateBook, http.StatusCreated, &handler.CreateBookRequest{}))
}
