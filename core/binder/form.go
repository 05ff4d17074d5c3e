package binder

import (
	"fmt"
	"net/http"
	"strings"
)

// Form creates a binder for application/x-www-form-urlencoded request bodies.
//
// Supported struct tags:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"`    - skips the field
//
// Supported types for form fields:
//   - Basic types: string, int, int64, uint, uint64, float32, float64, bool
//   - Slices of basic types for multi-value fields
//   - Pointers for optional fields
//
// Example:
//
//	type VerifyRequest struct {
//		Name    string `form:"name"`
//		Email   string `form:"email"`
//		Country string `form:"country"`
//		Hidden  string `form:"-"`
//	}
//
//	var req VerifyRequest
//	if err := binder.Form()(r, &req); err != nil {
//		// handle binding error
//	}
func Form() Binder {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: missing content-type header, expected application/x-www-form-urlencoded", ErrMissingContentType)
		}

		// Strip charset and other parameters from Content-Type
		mediaType := contentType
		if idx := strings.Index(contentType, ";"); idx != -1 {
			mediaType = strings.TrimSpace(contentType[:idx])
		}

		if mediaType != "application/x-www-form-urlencoded" {
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded", ErrUnsupportedMediaType, mediaType)
		}

		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}

		return bindToStruct(v, "form", r.PostForm, ErrFailedToParseForm)
	}
}
