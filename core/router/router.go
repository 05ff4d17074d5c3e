package router

import (
	"net/http"

	"github.com/agusnobile/checkout-verification/core/handler"
)

// Router routes HTTP requests to typed handlers. It supports middleware
// chaining, route grouping, and prefix-mounted sub-trees.
type Router[C handler.Context] interface {
	http.Handler

	// HTTP method handlers
	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Put(pattern string, h handler.HandlerFunc[C])
	Delete(pattern string, h handler.HandlerFunc[C])
	Patch(pattern string, h handler.HandlerFunc[C])
	Head(pattern string, h handler.HandlerFunc[C])
	Options(pattern string, h handler.HandlerFunc[C])

	// Method registers a handler for one or more specific HTTP methods.
	Method(pattern string, h handler.HandlerFunc[C], methods ...string)

	// Middleware
	Use(middlewares ...handler.Middleware[C])
	With(middlewares ...handler.Middleware[C]) Router[C]

	// Grouping
	Group(fn func(r Router[C])) Router[C]
	Route(prefix string, fn func(r Router[C])) Router[C]

	// Routes returns all registered routes for introspection.
	Routes() []Route
}

// Route describes a single registered route.
type Route struct {
	Method  string
	Pattern string
}

// New creates a new router with the given options. The router is generic
// over the context type; provide a context factory for custom contexts.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux[C](opts...)
}
