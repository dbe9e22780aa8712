package model

import "github.com/shopspring/decimal"

// Item is the catalog item schema used by the item endpoints.
//
// Description and Tax are optional and serialize as explicit null when
// absent. Name is a pointer so required rejects only absence: a
// present empty string is a legal value. Price stays by value — an
// absent decimal is the zero struct, while any bound value (including
// 0) carries an allocated coefficient, so required already means
// presence there.
type Item struct {
	Name        *string          `json:"name" validate:"required"`
	Description *string          `json:"description"`
	Price       decimal.Decimal  `json:"price" validate:"required"`
	Tax         *decimal.Decimal `json:"tax"`
}
