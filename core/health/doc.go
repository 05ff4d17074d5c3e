// Package health provides HTTP handlers for service health monitoring.
//
// Handlers:
//   - Liveness: Process is running (no dependency checks)
//   - Readiness: All dependencies are available
//   - NoContent: Returns 204 for minimal overhead
//
// Usage:
//
//	r.Get("/live", health.Liveness[*AppContext])
//	r.Get("/ready", health.Readiness[*AppContext](
//		logger,
//		countriesSvc.Ping,
//	))
//	r.Get("/ping", health.NoContent[*AppContext])
//
// Dependency checks must follow func(context.Context) error signature.
package health
