package model

// User is the user schema accepted by the user endpoints.
//
// Username and Email are pointers so required means present, not
// non-empty.
type User struct {
	Username *string `json:"username" validate:"required"`
	Email    *string `json:"email" validate:"required"`
	FullName *string `json:"full_name"`
}
