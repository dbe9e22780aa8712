// Package model defines the request/response entity schemas shared
// across handlers: items, offers, users, and books, plus the wire
// types used by body fields that do not map onto Go's defaults.
//
// Entities have no lifecycle beyond a single request: each is built
// from an incoming payload, echoed back, and discarded. Validation
// rules live in struct tags and are enforced by the validation
// package before any handler runs.
package model

import "github.com/shopspring/decimal"

func init() {
	// Money fields serialize as JSON numbers, not strings. Clients of
	// this API expect {"price": 1.5}, never {"price": "1.5"}.
	decimal.MarshalJSONWithoutQuotes = true
}
