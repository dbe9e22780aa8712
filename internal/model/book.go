package model

// Author is the nested author schema carried inside Book.
//
// Age is a pointer so a present 0 is distinguishable from an absent
// field; required rejects only nil.
type Author struct {
	Name *string `json:"name" validate:"required"`
	Age  *int    `json:"age" validate:"required"`
}

// Book is the book schema used by the book endpoints. Author is
// validated against its own rules; an absent author surfaces as its
// missing name and age.
type Book struct {
	Title   *string `json:"title" validate:"required"`
	Author  Author  `json:"author"`
	Summary *string `json:"summary"`
}
