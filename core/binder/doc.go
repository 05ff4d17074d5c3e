// Package binder maps HTTP request data onto Go structs using reflection.
//
// Two binders are provided: Query for URL query parameters and Form for
// application/x-www-form-urlencoded bodies. Both share the same tag-driven
// binding rules and type conversions:
//
//	type VerifyRequest struct {
//		Name    string `form:"name"`
//		Email   string `form:"email"`
//		Country string `form:"country"`
//	}
//
//	var req VerifyRequest
//	if err := binder.Form()(r, &req); err != nil {
//		// 400 Bad Request
//	}
//
// String values are sanitized during binding: NUL bytes, CR/LF, and control
// characters are stripped to block header injection through echoed input.
package binder
