// Package router provides an HTTP router over typed handler contexts.
//
// Routes are static paths registered per HTTP method. The router recovers
// from handler panics, funnels all failures through a pluggable error
// handler, and supports inline middleware groups:
//
//	r := router.New[*app.Context](
//		router.WithContextFactory[*app.Context](app.NewContext),
//		router.WithErrorHandler[*app.Context](app.ErrorHandler),
//		router.WithMiddleware(middleware.RequestID[*app.Context]()),
//	)
//
//	r.Get("/health", healthHandler)
//	r.Route("/api", func(api router.Router[*app.Context]) {
//		api.Use(middleware.CORS[*app.Context]())
//		api.Get("/meli-users", userHandler)
//	})
package router
