package app

import (
	"context"
	"net/http"
	"time"

	"github.com/agusnobile/checkout-verification/core/i18n"
	"github.com/agusnobile/checkout-verification/locale"
	"github.com/agusnobile/checkout-verification/middleware"
)

// Context is the request context for all handlers. It delegates
// cancellation to the request's context and adds locale-aware helpers.
type Context struct {
	w http.ResponseWriter
	r *http.Request
}

func newContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{w: w, r: r}
}

func (c *Context) Deadline() (time.Time, bool) {
	return c.r.Context().Deadline()
}

func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *Context) Err() error {
	return c.r.Context().Err()
}

func (c *Context) Value(key any) any {
	return c.r.Context().Value(key)
}

// SetValue stores a value in the request's context.
func (c *Context) SetValue(key, val any) {
	ctx := context.WithValue(c.r.Context(), key, val)
	c.r = c.r.WithContext(ctx)
}

// Request returns the HTTP request associated with this context.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the HTTP response writer associated with this context.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Locale returns the locale resolved by the locale middleware, or the
// default locale when the middleware did not run.
func (c *Context) Locale() locale.Locale {
	if loc, ok := middleware.GetLocale(c); ok {
		return loc
	}
	return locale.Default()
}

// Translator returns the locale-bound translator, or nil when the
// locale middleware did not run.
func (c *Context) Translator() *i18n.Translator {
	if tr, ok := middleware.GetTranslator(c); ok {
		return tr
	}
	return nil
}

// T translates a key in the request's language. Without a translator it
// returns the key, which keeps error paths renderable.
func (c *Context) T(key string, placeholders ...i18n.M) string {
	if tr := c.Translator(); tr != nil {
		return tr.T(key, placeholders...)
	}
	return key
}
