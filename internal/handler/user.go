package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/storefront-labs/catalog-api/internal/model"
	"github.com/storefront-labs/catalog-api/internal/server"
	"github.com/storefront-labs/catalog-api/internal/validation"
)

// UserHandler serves the /users endpoints.
type UserHandler struct {
	Handler
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(s *server.Server) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
	}
}

// CreateUserRequest is a User JSON body.
type CreateUserRequest struct {
	model.User
}

func (r *CreateUserRequest) Validate() error {
	return validation.Struct(r)
}

// CreateUserResponse echoes the user back. FullName serializes as
// explicit null when absent.
type CreateUserResponse struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
}

func (h *UserHandler) CreateUser(c echo.Context, req *CreateUserRequest) (*CreateUserResponse, error) {
	return &CreateUserResponse{
		Username: *req.Username,
		Email:    *req.Email,
		FullName: req.FullName,
	}, nil
}
