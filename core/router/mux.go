package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"sort"
	"strings"

	"github.com/agusnobile/checkout-verification/core/handler"
)

// mux is the private implementation of the Router interface. Every route in
// this service is a static path, so routes live in a method-keyed table of
// exact paths rather than a routing tree.
type mux[C handler.Context] struct {
	routes       map[string]map[string]handler.HandlerFunc[C] // path -> method -> handler
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request) C
	logger       *slog.Logger
	prefix       string
	parent       *mux[C] // set for inline groups and mounted sub-trees
	inline       bool
	sealed       bool // routes registered; no more root middleware
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		routes:       make(map[string]map[string]handler.HandlerFunc[C]),
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request) C {
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(NewContext(w, r)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	return m
}

// ServeHTTP implements http.Handler.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := newResponseWriter(w)

	path := r.URL.Path
	if path == "" {
		path = "/"
	}

	ctx := m.newContext(ww, r)

	// Recover from handler panics so a single request cannot take the
	// process down.
	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{value: p, stack: debug.Stack()}
			if ww.Written() {
				m.logger.Error("panic after response written",
					"value", panicErr.value,
					"stack", string(panicErr.stack),
					"path", r.URL.Path,
					"method", r.Method,
					"status", ww.Status(),
				)
				return
			}
			m.errorHandler(ctx, panicErr)
		}
	}()

	byMethod, ok := m.routes[path]
	if !ok {
		m.errorHandler(ctx, ErrNotFound)
		return
	}

	fn, ok := byMethod[r.Method]
	if !ok {
		// HEAD falls back to GET per RFC 9110; the body is discarded by
		// net/http for HEAD requests.
		if r.Method == http.MethodHead {
			fn, ok = byMethod[http.MethodGet]
		}
		if !ok {
			allowed := make([]string, 0, len(byMethod))
			for method := range byMethod {
				allowed = append(allowed, method)
			}
			sort.Strings(allowed)
			if !ww.Written() {
				ww.Header().Set("Allow", strings.Join(allowed, ", "))
			}
			m.errorHandler(ctx, ErrMethodNotAllowed)
			return
		}
	}

	if len(m.middlewares) > 0 {
		fn = chain(m.middlewares, fn)
	}

	response := fn(ctx)
	if response == nil {
		m.errorHandler(ctx, ErrNilResponse)
		return
	}

	if err := response(ww, r); err != nil {
		m.errorHandler(ctx, err)
	}
}

// Get registers a handler for GET requests.
func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodGet, pattern, h)
}

// Post registers a handler for POST requests.
func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPost, pattern, h)
}

// Put registers a handler for PUT requests.
func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPut, pattern, h)
}

// Delete registers a handler for DELETE requests.
func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodDelete, pattern, h)
}

// Patch registers a handler for PATCH requests.
func (m *mux[C]) Patch(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPatch, pattern, h)
}

// Head registers a handler for HEAD requests.
func (m *mux[C]) Head(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodHead, pattern, h)
}

// Options registers a handler for OPTIONS requests.
func (m *mux[C]) Options(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodOptions, pattern, h)
}

// Method registers a handler for one or more specific HTTP methods.
func (m *mux[C]) Method(pattern string, h handler.HandlerFunc[C], methods ...string) {
	if len(methods) == 0 {
		panic(fmt.Errorf("%w: no methods provided", ErrInvalidMethod))
	}
	seen := make(map[string]bool, len(methods))
	for _, method := range methods {
		method = strings.ToUpper(method)
		if !slices.Contains(knownMethods, method) {
			panic(fmt.Errorf("%w: %s", ErrInvalidMethod, method))
		}
		if seen[method] {
			continue
		}
		seen[method] = true
		m.handle(method, pattern, h)
	}
}

// Use appends middleware to the router. All middleware must be registered
// before the first route.
func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	if m.sealed && !m.inline {
		panic("router: all middlewares must be defined before routes")
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

// With creates an inline router whose routes run the additional middleware
// after the parent chain.
func (m *mux[C]) With(middlewares ...handler.Middleware[C]) Router[C] {
	return &mux[C]{
		inline:       true,
		parent:       m,
		prefix:       m.prefix,
		middlewares:  middlewares,
		errorHandler: m.errorHandler,
		newContext:   m.newContext,
		logger:       m.logger,
	}
}

// Group creates an inline router for grouping routes with shared middleware.
func (m *mux[C]) Group(fn func(r Router[C])) Router[C] {
	im := m.With()
	if fn != nil {
		fn(im)
	}
	return im
}

// Route creates an inline router whose routes are registered under the
// given path prefix.
func (m *mux[C]) Route(prefix string, fn func(r Router[C])) Router[C] {
	if fn == nil {
		panic(fmt.Errorf("%w on '%s'", ErrNilSubrouter, prefix))
	}
	if prefix == "" || prefix[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, prefix))
	}
	im := m.With().(*mux[C])
	im.prefix = m.prefix + strings.TrimSuffix(prefix, "/")
	fn(im)
	return im
}

// Routes returns all registered routes sorted by pattern then method.
func (m *mux[C]) Routes() []Route {
	root := m.root()
	var out []Route
	for path, byMethod := range root.routes {
		for method := range byMethod {
			out = append(out, Route{Method: method, Pattern: path})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pattern != out[j].Pattern {
			return out[i].Pattern < out[j].Pattern
		}
		return out[i].Method < out[j].Method
	})
	return out
}

func (m *mux[C]) root() *mux[C] {
	curr := m
	for curr.parent != nil {
		curr = curr.parent
	}
	return curr
}

// handle registers a handler in the route table of the root router,
// wrapping it with any inline middleware collected along the parent chain.
func (m *mux[C]) handle(method, pattern string, fn handler.HandlerFunc[C]) {
	if len(pattern) == 0 || pattern[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern))
	}

	path := m.prefix + pattern
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}

	// Collect inline middleware from this group up to the root. Root
	// middleware is applied at serve time so it wraps every route exactly
	// once.
	var inlineMw []handler.Middleware[C]
	curr := m
	for curr != nil && curr.inline {
		if len(curr.middlewares) > 0 {
			inlineMw = append(slices.Clone(curr.middlewares), inlineMw...)
		}
		curr = curr.parent
	}
	if len(inlineMw) > 0 {
		fn = chain(inlineMw, fn)
	}

	root := m.root()
	root.sealed = true
	if root.routes[path] == nil {
		root.routes[path] = make(map[string]handler.HandlerFunc[C])
	}
	root.routes[path][method] = fn
}

// chain builds a single handler from a middleware stack and endpoint. The
// first middleware in the slice runs first.
func chain[C handler.Context](middlewares []handler.Middleware[C], endpoint handler.HandlerFunc[C]) handler.HandlerFunc[C] {
	h := endpoint
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

var knownMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
}
