// Package handler is the HTTP layer: the entry point for every
// endpoint after the router.
//
// Each endpoint declares a typed request struct whose binding tags
// (param/query/form/json) say where every parameter comes from and
// whose validator tags say what values are acceptable. The generic
// pipeline in base.go binds, validates, dispatches, and encodes; a
// handler body only ever sees a fully validated request.
package handler
