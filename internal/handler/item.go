package handler

import (
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/storefront-labs/catalog-api/internal/errs"
	"github.com/storefront-labs/catalog-api/internal/model"
	"github.com/storefront-labs/catalog-api/internal/server"
	"github.com/storefront-labs/catalog-api/internal/validation"
)

// sessionCookieName is the cookie read by the cookie echo endpoint.
const sessionCookieName = "session_id"

// ItemHandler serves the /items endpoints.
type ItemHandler struct {
	Handler
}

// NewItemHandler constructs an ItemHandler with access to shared app
// dependencies.
func NewItemHandler(s *server.Server) *ItemHandler {
	return &ItemHandler{
		Handler: NewHandler(s),
	}
}

// --- GET /items/:item_id -----------------------------------------------------

// GetItemRequest reads the item ID from the path and two optional
// query parameters.
type GetItemRequest struct {
	ItemID    int     `param:"item_id" json:"-" validate:"min=1,max=1000"`
	Q         *string `query:"q" json:"-" validate:"omitempty,min=3,max=50"`
	SortOrder string  `query:"sort_order" json:"-" validate:"omitempty,oneof=asc desc"`
}

func (r *GetItemRequest) Defaults() {
	r.SortOrder = "asc"
}

func (r *GetItemRequest) Validate() error {
	return validation.Struct(r)
}

// GetItemResponse echoes the resolved parameters back.
type GetItemResponse struct {
	ItemID      int    `json:"item_id"`
	Description string `json:"description"`
	SortOrder   string `json:"sort_order"`
}

func (h *ItemHandler) GetItem(c echo.Context, req *GetItemRequest) (*GetItemResponse, error) {
	description := "This is a sample item."
	if req.Q != nil {
		description = fmt.Sprintf("This is a sample item that matches the query %s", *req.Q)
	}

	return &GetItemResponse{
		ItemID:      req.ItemID,
		Description: description,
		SortOrder:   req.SortOrder,
	}, nil
}

// --- PUT /items/:item_id -----------------------------------------------------

// UpdateItemRequest combines a path parameter, an optional query
// parameter, and an Item JSON body. ItemID and Q carry `json:"-"` so a
// body cannot clobber them.
type UpdateItemRequest struct {
	ItemID int     `param:"item_id" json:"-" validate:"min=1,max=1000"`
	Q      *string `query:"q" json:"-" validate:"omitempty,min=3,max=50"`
	model.Item
}

func (r *UpdateItemRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateItemResponse merges the item ID with all Item fields. Q is
// omitted entirely when absent; the optional Item fields serialize as
// explicit null instead.
type UpdateItemResponse struct {
	ItemID      int              `json:"item_id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	Tax         *decimal.Decimal `json:"tax"`
	Q           *string          `json:"q,omitempty"`
}

func (h *ItemHandler) UpdateItem(c echo.Context, req *UpdateItemRequest) (*UpdateItemResponse, error) {
	return &UpdateItemResponse{
		ItemID:      req.ItemID,
		Name:        *req.Name,
		Description: req.Description,
		Price:       req.Price,
		Tax:         req.Tax,
		Q:           req.Q,
	}, nil
}

// --- POST /items/filter/ -----------------------------------------------------

// FilterItemsRequest binds the filter criteria from the query string.
// Every knob has a default, so an empty request is valid.
type FilterItemsRequest struct {
	PriceMin    decimal.Decimal `query:"price_min" json:"-"`
	PriceMax    decimal.Decimal `query:"price_max" json:"-"`
	TaxIncluded bool            `query:"tax_included" json:"-"`
	Tags        []string        `query:"tags" json:"-"`
}

func (r *FilterItemsRequest) Defaults() {
	r.PriceMin = decimal.Zero
	r.PriceMax = decimal.NewFromInt(10000)
	r.TaxIncluded = true
	r.Tags = []string{}
}

func (r *FilterItemsRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	// Cross-field rule tags cannot express: an inverted price range can
	// never match anything.
	if r.PriceMax.LessThan(r.PriceMin) {
		return validation.CustomValidationErrors{
			{Field: "price_max", Message: "must not be less than price_min"},
		}
	}
	return nil
}

// FilterItemsResponse echoes the criteria with a confirmation message.
type FilterItemsResponse struct {
	PriceMin    decimal.Decimal `json:"price_min"`
	PriceMax    decimal.Decimal `json:"price_max"`
	TaxIncluded bool            `json:"tax_included"`
	Tags        []string        `json:"tags"`
	Message     string          `json:"message"`
}

func (h *ItemHandler) FilterItems(c echo.Context, req *FilterItemsRequest) (*FilterItemsResponse, error) {
	return &FilterItemsResponse{
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		TaxIncluded: req.TaxIncluded,
		Tags:        req.Tags,
		Message:     "Filter criteria received",
	}, nil
}

// --- POST /items/create_with_fields/ ----------------------------------------

// CreateItemWithFieldsRequest nests an Item next to a standalone
// importance body field. An absent item surfaces as its missing name
// and price; gt=0 covers both an absent and a non-positive importance.
type CreateItemWithFieldsRequest struct {
	Item       model.Item `json:"item"`
	Importance int        `json:"importance" validate:"gt=0"`
}

func (r *CreateItemWithFieldsRequest) Validate() error {
	return validation.Struct(r)
}

// CreateItemWithFieldsResponse echoes both body fields.
type CreateItemWithFieldsResponse struct {
	Item       model.Item `json:"item"`
	Importance int        `json:"importance"`
}

func (h *ItemHandler) CreateItemWithFields(c echo.Context, req *CreateItemWithFieldsRequest) (*CreateItemWithFieldsResponse, error) {
	return &CreateItemWithFieldsResponse{
		Item:       req.Item,
		Importance: req.Importance,
	}, nil
}

// --- POST /items/extra_data_types/ ------------------------------------------

// ExtraDataTypesRequest exercises the non-primitive body field types:
// an RFC 3339 timestamp, a clock time, a duration in seconds, and a
// UUID. All four are required; pointers so that legitimate zero
// values (a 0-second duration, the nil UUID, midnight) are not
// mistaken for absent fields.
type ExtraDataTypesRequest struct {
	StartTime   *time.Time       `json:"start_time" validate:"required"`
	EndTime     *model.TimeOfDay `json:"end_time" validate:"required"`
	RepeatEvery *model.Seconds   `json:"repeat_every" validate:"required"`
	ProcessID   *uuid.UUID       `json:"process_id" validate:"required"`
}

func (r *ExtraDataTypesRequest) Validate() error {
	return validation.Struct(r)
}

// ExtraDataTypesResponse echoes all four values plus a confirmation.
type ExtraDataTypesResponse struct {
	StartTime   time.Time       `json:"start_time"`
	EndTime     model.TimeOfDay `json:"end_time"`
	RepeatEvery model.Seconds   `json:"repeat_every"`
	ProcessID   uuid.UUID       `json:"process_id"`
	Message     string          `json:"message"`
}

func (h *ItemHandler) ExtraDataTypes(c echo.Context, req *ExtraDataTypesRequest) (*ExtraDataTypesResponse, error) {
	return &ExtraDataTypesResponse{
		StartTime:   *req.StartTime,
		EndTime:     *req.EndTime,
		RepeatEvery: *req.RepeatEvery,
		ProcessID:   *req.ProcessID,
		Message:     "Time span processed successfully",
	}, nil
}

// --- GET /items/cookies/ -----------------------------------------------------

// ReadCookieRequest reads the optional session cookie. Echo's binder
// has no cookie source, so the value is extracted in BindRequest.
type ReadCookieRequest struct {
	SessionID *string
}

func (r *ReadCookieRequest) BindRequest(c echo.Context) error {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil {
		// Missing cookie is fine; the field stays nil.
		return nil
	}
	r.SessionID = &cookie.Value
	return nil
}

func (r *ReadCookieRequest) Validate() error {
	return nil
}

// ReadCookieResponse reports the session ID (possibly null).
type ReadCookieResponse struct {
	SessionID *string `json:"session_id"`
	Message   string  `json:"message"`
}

func (h *ItemHandler) ReadCookie(c echo.Context, req *ReadCookieRequest) (*ReadCookieResponse, error) {
	message := "No session cookie set"
	if req.SessionID != nil {
		message = "Session cookie received"
	}

	return &ReadCookieResponse{
		SessionID: req.SessionID,
		Message:   message,
	}, nil
}

// --- POST /items/form_data/ --------------------------------------------------

// ItemFormRequest binds the item fields from form data instead of
// JSON. The decimal fields bind from their text form values; Name is
// a pointer so required means the field was sent, not non-empty.
type ItemFormRequest struct {
	Name        *string          `form:"name" json:"-" validate:"required"`
	Price       decimal.Decimal  `form:"price" json:"-" validate:"required"`
	Description *string          `form:"description" json:"-"`
	Tax         *decimal.Decimal `form:"tax" json:"-"`
}

func (r *ItemFormRequest) Validate() error {
	return validation.Struct(r)
}

// ItemFormResponse echoes the form fields with a confirmation message.
type ItemFormResponse struct {
	Name        string           `json:"name"`
	Price       decimal.Decimal  `json:"price"`
	Description *string          `json:"description"`
	Tax         *decimal.Decimal `json:"tax"`
	Message     string           `json:"message"`
}

func (h *ItemHandler) CreateItemFromForm(c echo.Context, req *ItemFormRequest) (*ItemFormResponse, error) {
	return &ItemFormResponse{
		Name:        *req.Name,
		Price:       req.Price,
		Description: req.Description,
		Tax:         req.Tax,
		Message:     "Item received via form data",
	}, nil
}

// --- POST /items/form_and_file/ ----------------------------------------------

// ItemFormWithFileRequest extends the form fields with a multipart
// file part. Presence of the file is a business check in the handler,
// not a validator rule, because "missing" and "unnamed" both collapse
// into the same client error.
type ItemFormWithFileRequest struct {
	ItemFormRequest
	File *multipart.FileHeader `form:"file" json:"-"`
}

func (r *ItemFormWithFileRequest) Validate() error {
	return validation.Struct(r)
}

// ItemFormWithFileResponse adds the uploaded filename to the form echo.
type ItemFormWithFileResponse struct {
	Name        string           `json:"name"`
	Price       decimal.Decimal  `json:"price"`
	Description *string          `json:"description"`
	Tax         *decimal.Decimal `json:"tax"`
	Filename    string           `json:"filename"`
	Message     string           `json:"message"`
}

func (h *ItemHandler) CreateItemFromFormAndFile(c echo.Context, req *ItemFormWithFileRequest) (*ItemFormWithFileResponse, error) {
	if req.Price.IsNegative() {
		return nil, errs.NewBadRequestError("Price cannot be negative", false, nil, nil, nil)
	}
	if req.File == nil || req.File.Filename == "" {
		return nil, errs.NewBadRequestError("No file sent", false, nil, nil, nil)
	}

	return &ItemFormWithFileResponse{
		Name:        *req.Name,
		Price:       req.Price,
		Description: req.Description,
		Tax:         req.Tax,
		Filename:    req.File.Filename,
		Message:     "Item and file received",
	}, nil
}
