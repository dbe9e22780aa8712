package model

import "github.com/shopspring/decimal"

// Offer bundles a discount with an ordered list of items.
//
// The nested items are validated recursively: `dive` applies each
// Item's own rules before the offer is accepted. required on the
// slice rejects only a nil (absent) list; a present empty list passes.
type Offer struct {
	Name     *string         `json:"name" validate:"required"`
	Discount decimal.Decimal `json:"discount" validate:"required"`
	Items    []Item          `json:"items" validate:"required,dive"`
}
