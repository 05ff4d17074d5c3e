// Package middleware provides typed HTTP middleware for the router's
// generic handler chain.
//
// Available middleware:
//   - RequestID: assigns a correlation ID to each request
//   - Logging: structured request/response logging with slow-request detection
//   - CORS: cross-origin resource sharing with preflight handling
//   - SecurityHeaders: standard browser security headers
//   - Locale: resolves the visitor's locale and binds a translator
//
// All middleware follow the same pattern: a zero-config constructor plus a
// WithConfig variant, and an optional Skip predicate for excluding requests:
//
//	r.Use(middleware.RequestID[*app.Context]())
//	r.Use(middleware.LoggingWithConfig[*app.Context](middleware.LoggingConfig{
//		Logger: log,
//		Skip: func(ctx handler.Context) bool {
//			return ctx.Request().URL.Path == "/live"
//		},
//	}))
//	r.Use(middleware.Locale[*app.Context](translations))
//
// Values stored by middleware are read back with the matching getter
// (GetRequestID, GetLocale, GetTranslator).
package middleware
