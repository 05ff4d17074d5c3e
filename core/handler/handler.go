package handler

import (
	"context"
	"net/http"
)

// Context is the contract for request contexts flowing through the router.
// Applications usually define their own implementation with typed accessors
// for request-scoped values (locale, translator, auth info).
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	SetValue(key, val any)
}

// Response renders an HTTP response. It sets headers, status code, and
// writes the body. Render errors are passed to the router's error handler.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc is a type-safe HTTP request handler over a custom context.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler handles errors raised during request processing.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps handlers to add cross-cutting functionality.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
