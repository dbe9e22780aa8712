// Package middleware contains the HTTP middleware stack.
//
// It provides the global middleware (CORS, request logging, recovery,
// secure headers, and the global error handler), request-ID
// correlation, and a context enhancer that installs a request-scoped
// structured logger.
package middleware
