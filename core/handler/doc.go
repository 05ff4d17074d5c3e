// Package handler defines the request-handling contracts shared by the
// router, middleware, and response packages.
//
// Handlers are functions from a typed context to a Response. A Response is
// itself a function that writes to the http.ResponseWriter, which lets
// middleware decorate the write phase (headers, logging) without touching
// handler logic:
//
//	func showUser(ctx *app.Context) handler.Response {
//		user, err := load(ctx)
//		if err != nil {
//			return response.Error(err)
//		}
//		return response.JSON(user)
//	}
//
// The Context interface embeds context.Context so handlers can pass their
// context directly to downstream calls that expect one.
package handler
