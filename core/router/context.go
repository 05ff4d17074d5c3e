package router

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Context is the default request context implementation. It delegates
// context.Context methods to the request's context and stores request-scoped
// values set by middleware.
type Context struct {
	w http.ResponseWriter
	r *http.Request

	mu     sync.RWMutex
	values map[any]any
}

// NewContext creates a default Context for the given response writer and
// request. Applications with custom contexts typically embed or wrap it.
func NewContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{w: w, r: r}
}

// Deadline delegates to the request context.
func (c *Context) Deadline() (time.Time, bool) {
	return c.r.Context().Deadline()
}

// Done delegates to the request context.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err delegates to the request context.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value returns a value set via SetValue, falling back to the request
// context for unknown keys.
func (c *Context) Value(key any) any {
	c.mu.RLock()
	if v, ok := c.values[key]; ok {
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()
	return c.r.Context().Value(key)
}

// Request returns the underlying HTTP request.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the underlying response writer.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// SetValue stores a request-scoped value on the context.
func (c *Context) SetValue(key, val any) {
	c.mu.Lock()
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
	c.mu.Unlock()
}

var _ context.Context = (*Context)(nil)
