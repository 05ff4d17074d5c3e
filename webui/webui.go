// Package webui renders the server-side HTML for the verification flow.
//
// Templates are embedded and parsed once at startup. Handlers build a
// page model from the domain services and hand it to the response
// package for rendering.
package webui

import (
	"embed"
	"html/template"
	"net/url"
	"sort"
	"strings"

	"github.com/agusnobile/checkout-verification/captcha"
	"github.com/agusnobile/checkout-verification/core/i18n"
	"github.com/agusnobile/checkout-verification/countries"
	"github.com/agusnobile/checkout-verification/flow"
	"github.com/agusnobile/checkout-verification/locale"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	// FormTemplate renders the verification form screen.
	FormTemplate = template.Must(template.ParseFS(templateFS, "templates/form.html"))

	// CheckoutTemplate renders the confirmation screen.
	CheckoutTemplate = template.Must(template.ParseFS(templateFS, "templates/checkout.html"))

	// FallbackTemplate renders the degraded page that bounces the
	// browser back to the entry route when rendering fails.
	FallbackTemplate = template.Must(template.ParseFS(templateFS, "templates/fallback.html"))
)

const tokenPreviewLen = 20

// FormLabels holds the translated field and button labels.
type FormLabels struct {
	Fullname      string
	Email         string
	Address       string
	Country       string
	SelectCountry string
	Confirm       string
	Back          string
}

// CaptchaView is the widget slot on the form screen.
type CaptchaView struct {
	Visible   bool
	Ready     bool
	Failed    bool
	Message   string
	SiteKey   string
	ScriptURL string
}

// DevLink is a locale-switcher entry shown outside production.
type DevLink struct {
	Name string
	URL  string
}

// FormPage is the model for FormTemplate.
type FormPage struct {
	Lang            string
	Title           string
	MetaDescription string
	Locale          locale.Locale

	Invalid       bool
	InvalidTitle  string
	InvalidDetail string

	Action   string
	Referrer string
	Token    string
	BackURL  string

	Labels    FormLabels
	Values    map[string]string
	Errors    map[string]string
	Countries []countries.Country
	Captcha   CaptchaView

	DevLinks []DevLink
}

// NewFormPage assembles the form screen model from the flow state and
// the locale-resolved services.
func NewFormPage(loc locale.Locale, tr *i18n.Translator, form *flow.Form, list []countries.Country, loader *captcha.Loader) FormPage {
	page := FormPage{
		Lang:            shortLang(loc.Lang),
		Title:           tr.T("server.title"),
		MetaDescription: tr.T("server.subtitle"),
		Locale:          loc,
		Action:          "/verify-data-ssr",
		Referrer:        form.Referrer(),
		Token:           form.Token(),
		BackURL:         form.Referrer(),
		Labels: FormLabels{
			Fullname:      tr.T("form.fullname"),
			Email:         tr.T("form.email"),
			Address:       tr.T("form.address"),
			Country:       tr.T("form.country"),
			SelectCountry: tr.T("form.select_country"),
			Confirm:       tr.T("buttons.confirm"),
			Back:          tr.T("buttons.back"),
		},
		Values:    form.Values(),
		Errors:    form.Errors(),
		Countries: list,
	}

	if page.BackURL == "" {
		page.BackURL = flow.FallbackReferrer
	}

	if form.State() == flow.StateInvalidParams {
		page.Invalid = true
		page.InvalidTitle = tr.T("errors.invalid_params.title")
		page.InvalidDetail = tr.T("errors.invalid_params.detail")
		return page
	}

	if loader != nil {
		page.Captcha = CaptchaView{
			Visible:   form.CaptchaVisible(),
			Ready:     loader.State() == captcha.StateReady,
			Failed:    loader.State() == captcha.StateError,
			Message:   tr.T(loader.MessageKey()),
			SiteKey:   loader.SiteKey(),
			ScriptURL: loader.ScriptURL(),
		}
	}
	return page
}

// CheckoutPage is the model for CheckoutTemplate.
type CheckoutPage struct {
	Lang          string
	Title         string
	Locale        locale.Locale
	Referrer      string
	Token         string
	TokenPreview  string
	ReferrerLabel string
	CaptchaLabel  string
	ContinueLabel string
	ContinueURL   string
}

// NewCheckoutPage assembles the confirmation screen model. The full
// token only appears in the title attribute; the visible text is a
// truncated preview.
func NewCheckoutPage(loc locale.Locale, tr *i18n.Translator, referrer, token string) CheckoutPage {
	return CheckoutPage{
		Lang:          shortLang(loc.Lang),
		Title:         tr.T("feedback.title"),
		Locale:        loc,
		Referrer:      referrer,
		Token:         token,
		TokenPreview:  previewToken(token),
		ReferrerLabel: tr.T("feedback.referrer"),
		CaptchaLabel:  tr.T("feedback.captcha"),
		ContinueLabel: tr.T("feedback.continue"),
		ContinueURL:   referrer + "?token=" + url.QueryEscape(token),
	}
}

// FallbackPage is the model for FallbackTemplate.
type FallbackPage struct {
	Title       string
	Message     string
	RedirectURL string
}

// NewFallbackPage assembles the degraded page, preserving the original
// query string in the redirect so the entry route re-resolves locale
// and entry parameters.
func NewFallbackPage(tr *i18n.Translator, rawQuery string) FallbackPage {
	redirect := "/"
	if rawQuery != "" {
		redirect += "?" + rawQuery
	}
	return FallbackPage{
		Title:       tr.T("server.title"),
		Message:     tr.T("server.loading"),
		RedirectURL: redirect,
	}
}

// LocaleDevLinks builds the locale-switcher entries for a base URL,
// sorted by name for stable markup.
func LocaleDevLinks(baseURL string) []DevLink {
	urls := locale.TestURLs(baseURL)
	links := make([]DevLink, 0, len(urls))
	for name, u := range urls {
		links = append(links, DevLink{Name: name, URL: u})
	}
	sort.Slice(links, func(i, j int) bool { return links[i].Name < links[j].Name })
	return links
}

func previewToken(token string) string {
	if len(token) > tokenPreviewLen {
		token = token[:tokenPreviewLen]
	}
	return token + "..."
}

func shortLang(lang string) string {
	if i := strings.IndexByte(lang, '-'); i > 0 {
		return lang[:i]
	}
	return lang
}
