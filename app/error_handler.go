package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/agusnobile/checkout-verification/core/i18n"
	"github.com/agusnobile/checkout-verification/core/logger"
	"github.com/agusnobile/checkout-verification/core/response"
	"github.com/agusnobile/checkout-verification/core/router"
	"github.com/agusnobile/checkout-verification/webui"
)

// handleError renders handler failures: API routes get a JSON error
// body, HTML routes get the degraded page that bounces the browser back
// to the entry route with the query string intact.
func (a *App) handleError(ctx *Context, err error) {
	req := ctx.Request()

	status := http.StatusInternalServerError
	var sc interface{ StatusCode() int }
	switch {
	case errors.As(err, &sc):
		status = sc.StatusCode()
	case errors.Is(err, router.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, router.ErrMethodNotAllowed):
		status = http.StatusMethodNotAllowed
	}

	logFn := a.logger.WarnContext
	if status >= 500 {
		logFn = a.logger.ErrorContext
	}
	logFn(ctx, "Request failed",
		logger.Error(err),
		logger.Method(req.Method),
		logger.Path(req.URL.Path),
		logger.StatusCode(status),
	)

	if strings.HasPrefix(req.URL.Path, "/api/") {
		var httpErr response.HTTPError
		switch {
		case errors.As(err, &httpErr):
		case errors.Is(err, router.ErrNotFound):
			httpErr = response.ErrNotFound
		case errors.Is(err, router.ErrMethodNotAllowed):
			httpErr = response.ErrMethodNotAllowed
		default:
			httpErr = response.ErrInternalServerError
			httpErr.Status = status
		}
		_ = response.JSONWithStatus(httpErr, status)(ctx.ResponseWriter(), req)
		return
	}

	tr := ctx.Translator()
	if tr == nil {
		tr = i18n.NewTranslator(a.catalog, ctx.Locale().Lang)
	}
	page := webui.NewFallbackPage(tr, req.URL.RawQuery)
	_ = response.TemplateWithStatus(webui.FallbackTemplate, page, status)(ctx.ResponseWriter(), req)
}
