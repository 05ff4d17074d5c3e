package app

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/agusnobile/checkout-verification/core/binder"
	"github.com/agusnobile/checkout-verification/core/handler"
	"github.com/agusnobile/checkout-verification/core/health"
	"github.com/agusnobile/checkout-verification/core/logger"
	"github.com/agusnobile/checkout-verification/core/response"
	"github.com/agusnobile/checkout-verification/core/router"
	"github.com/agusnobile/checkout-verification/flow"
	"github.com/agusnobile/checkout-verification/middleware"
	"github.com/agusnobile/checkout-verification/webui"
)

const checkoutFlashKey = "checkout_state"

// checkoutState travels from the form submission to the confirmation
// screen in a signed flash cookie.
type checkoutState struct {
	Referrer string `json:"referrer"`
	Token    string `json:"token"`
}

// verifyForm is the POST body of the verification form.
type verifyForm struct {
	Name         string `form:"name"`
	Email        string `form:"email"`
	Address      string `form:"address"`
	Country      string `form:"country"`
	Referrer     string `form:"referrer"`
	Token        string `form:"token"`
	CaptchaToken string `form:"g-recaptcha-response"`
}

func (a *App) registerRoutes() {
	r := a.router

	r.Use(
		middleware.RequestID[*Context](),
		middleware.LoggingWithConfig[*Context](middleware.LoggingConfig{Logger: a.logger}),
		middleware.SecurityHeadersWithConfig[*Context](a.securityHeaders()),
		middleware.Locale[*Context](a.catalog),
	)

	r.Get("/live", health.Liveness[*Context])
	r.Get("/ready", health.Readiness[*Context](a.logger, a.countries.Ping))

	// OPTIONS is routed so the CORS middleware can answer preflights.
	r.Route("/api", func(api router.Router[*Context]) {
		api.Use(middleware.CORS[*Context]())
		api.Method("/meli-users", a.handleUser, http.MethodGet, http.MethodOptions)
		api.Method("/meli-countries", a.handleCountries, http.MethodGet, http.MethodOptions)
	})

	r.Get("/", a.handleForm)
	r.Get("/verify-data", a.handleForm)
	r.Post("/verify-data", a.handleFormSubmit)
	r.Get("/checkout", a.handleCheckout)

	r.Get("/verify-data-ssr", a.handleFormSSR)
	r.Post("/verify-data-ssr", a.handleFormSubmitSSR)
	r.Get("/checkout-ssr", a.handleCheckoutSSR)
}

// securityHeaders extends the balanced policy so the browser may fetch
// the captcha provider's script and render its challenge frame. The
// widget also pulls assets from gstatic.
func (a *App) securityHeaders() middleware.SecurityHeadersConfig {
	origin := "https://www.google.com"
	if u, err := url.Parse(a.captcha.ScriptURL()); err == nil && u.Scheme != "" && u.Host != "" {
		origin = u.Scheme + "://" + u.Host
	}

	cfg := middleware.BalancedSecurity
	cfg.ContentSecurityPolicy = "default-src 'self'; " +
		"script-src 'self' 'unsafe-inline' " + origin + " https://www.gstatic.com; " +
		"frame-src " + origin + "; " +
		"style-src 'self' 'unsafe-inline'; " +
		"img-src 'self' data: https:; " +
		"font-src 'self' data:"
	return cfg
}

func (a *App) handleUser(ctx *Context) handler.Response {
	user, err := a.profile.Current(ctx)
	if err != nil {
		return response.Error(response.ErrInternalServerError.WithError(err))
	}
	return response.JSON(user)
}

func (a *App) handleCountries(ctx *Context) handler.Response {
	region := ctx.Request().URL.Query().Get("region")
	list, err := a.countries.ByRegion(ctx, region)
	if err != nil {
		return response.Error(response.ErrInternalServerError.WithMessage("Error loading countries"))
	}

	resp := response.JSON(list)
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		return resp(w, r)
	}
}

func (a *App) handleForm(ctx *Context) handler.Response {
	q := ctx.Request().URL.Query()
	form := a.buildForm(ctx, q.Get("referrer"), q.Get("token"))
	return a.renderForm(ctx, form, "/verify-data", http.StatusOK)
}

func (a *App) handleFormSubmit(ctx *Context) handler.Response {
	var in verifyForm
	if err := binder.Form()(ctx.Request(), &in); err != nil {
		return response.Error(response.ErrBadRequest.WithError(err))
	}

	form := flow.NewForm(flow.Options{
		Referrer:   in.Referrer,
		Token:      in.Token,
		Country:    ctx.Locale().Country,
		Translator: ctx.Translator(),
		Debounce:   -1,
	})
	if form.State() == flow.StateInvalidParams {
		return a.renderForm(ctx, form, "/verify-data", http.StatusBadRequest)
	}

	form.ProfileUnavailable()
	form.Edit("name", in.Name)
	form.Edit("email", in.Email)
	form.Edit("address", in.Address)
	form.Edit("country", in.Country)
	form.SetCaptchaToken(in.CaptchaToken)
	form.Flush()

	sub, ok := form.Submit()
	if !ok {
		return a.renderForm(ctx, form, "/verify-data", http.StatusUnprocessableEntity)
	}

	state := checkoutState{Referrer: sub.Referrer, Token: sub.Token}
	if err := a.cookie.SetFlash(ctx.ResponseWriter(), checkoutFlashKey, state); err != nil {
		return response.Error(response.ErrInternalServerError.WithError(err))
	}
	return response.RedirectSeeOther("/checkout")
}

func (a *App) handleCheckout(ctx *Context) handler.Response {
	var state checkoutState
	if err := a.cookie.GetFlash(ctx.ResponseWriter(), ctx.Request(), checkoutFlashKey, &state); err != nil {
		// Direct navigation without a submission goes back to the form.
		return response.Redirect("/")
	}

	page := webui.NewCheckoutPage(ctx.Locale(), ctx.Translator(), state.Referrer, state.Token)
	return response.Template(webui.CheckoutTemplate, page)
}

func (a *App) handleFormSSR(ctx *Context) handler.Response {
	q := ctx.Request().URL.Query()
	form := a.buildForm(ctx, q.Get("referrer"), q.Get("token"))
	return cacheControl(a.renderForm(ctx, form, "/verify-data-ssr", http.StatusOK), "public, max-age=60")
}

func (a *App) handleFormSubmitSSR(ctx *Context) handler.Response {
	var in verifyForm
	if err := binder.Form()(ctx.Request(), &in); err != nil {
		return response.Error(response.ErrBadRequest.WithError(err))
	}

	// The state lives in the redirect URL only; this line is the sole
	// server-side record of the submission.
	a.logger.InfoContext(ctx, "Checkout data received",
		slog.String("referrer", in.Referrer),
		slog.String("token", in.Token),
	)

	target := "/checkout-ssr?referrer=" + url.QueryEscape(in.Referrer) +
		"&token=" + url.QueryEscape(in.Token)
	return response.Redirect(target)
}

func (a *App) handleCheckoutSSR(ctx *Context) handler.Response {
	q := ctx.Request().URL.Query()
	referrer := q.Get("referrer")
	if referrer == "" {
		referrer = "/"
	}

	page := webui.NewCheckoutPage(ctx.Locale(), ctx.Translator(), referrer, q.Get("token"))
	return cacheControl(response.Template(webui.CheckoutTemplate, page), "public, max-age=60")
}

// buildForm constructs the flow state for a form render: entry
// parameters first, then the stored profile, then the locale-based
// country preselection.
func (a *App) buildForm(ctx *Context, referrer, token string) *flow.Form {
	form := flow.NewForm(flow.Options{
		Referrer:   referrer,
		Token:      token,
		Country:    ctx.Locale().Country,
		Translator: ctx.Translator(),
		Debounce:   -1,
	})
	if form.State() == flow.StateInvalidParams {
		return form
	}

	if user, err := a.profile.Current(ctx); err != nil {
		a.logger.WarnContext(ctx, "Profile unavailable", logger.Error(err))
		form.ProfileUnavailable()
	} else {
		form.LoadProfile(user.FormValues())
	}
	form.PreselectCountry(ctx.Locale().Country)
	return form
}

func (a *App) renderForm(ctx *Context, form *flow.Form, action string, status int) handler.Response {
	loc := ctx.Locale()

	list, err := a.countries.ByRegion(ctx, string(loc.Region))
	if err != nil {
		a.logger.WarnContext(ctx, "Country filter failed, serving full list", logger.Error(err))
		list, err = a.countries.List(ctx)
		if err != nil {
			return response.Error(response.ErrInternalServerError.WithError(err))
		}
	}

	if form.CaptchaVisible() {
		if err := a.captcha.Load(ctx); err != nil {
			a.logger.WarnContext(ctx, "Captcha unavailable", logger.Error(err))
		}
	}

	page := webui.NewFormPage(loc, ctx.Translator(), form, list, a.captcha)
	page.Action = action
	if !a.config.IsProduction() {
		page.DevLinks = webui.LocaleDevLinks(a.config.BaseURL + action)
	}
	return response.TemplateWithStatus(webui.FormTemplate, page, status)
}

func cacheControl(resp handler.Response, value string) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Cache-Control", value)
		return resp(w, r)
	}
}
