package middleware

import (
	"context"

	"github.com/agusnobile/checkout-verification/core/handler"
	"github.com/agusnobile/checkout-verification/core/i18n"
	"github.com/agusnobile/checkout-verification/locale"
)

// localeContextKey is used as a key for storing the resolved locale in request context.
type localeContextKey struct{}

// localeTranslatorContextKey is used as a key for storing the translator in request context.
type localeTranslatorContextKey struct{}

// LocaleConfig configures the locale middleware.
type LocaleConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// I18n is the translation catalog bound to each resolved locale (required)
	I18n *i18n.I18n
	// Resolver determines the locale from the request
	// Default: locale.Resolve
	Resolver func(ctx handler.Context) locale.Locale
}

// Locale creates a locale middleware with default configuration.
// It resolves the visitor's locale from query parameters, hostname, and
// Accept-Language, then stores the locale and a bound translator in context.
func Locale[C handler.Context](i18nInstance *i18n.I18n) handler.Middleware[C] {
	return LocaleWithConfig[C](LocaleConfig{I18n: i18nInstance})
}

// LocaleWithConfig creates a locale middleware with custom configuration.
func LocaleWithConfig[C handler.Context](cfg LocaleConfig) handler.Middleware[C] {
	if cfg.I18n == nil {
		panic("locale middleware: i18n instance is required")
	}

	if cfg.Resolver == nil {
		cfg.Resolver = func(ctx handler.Context) locale.Locale {
			return locale.Resolve(ctx.Request())
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			loc := cfg.Resolver(ctx)
			translator := i18n.NewTranslator(cfg.I18n, loc.Lang)

			ctx.SetValue(localeContextKey{}, loc)
			ctx.SetValue(localeTranslatorContextKey{}, translator)

			return next(ctx)
		}
	}
}

// GetLocale retrieves the resolved locale from the context.
// Returns the locale and a boolean indicating whether it was found.
// Works with any context.Context, not just handler.Context.
func GetLocale(ctx context.Context) (locale.Locale, bool) {
	loc, ok := ctx.Value(localeContextKey{}).(locale.Locale)
	return loc, ok
}

// GetTranslator retrieves the locale-bound translator from the context.
// Returns the translator and a boolean indicating whether it was found.
func GetTranslator(ctx context.Context) (*i18n.Translator, bool) {
	translator, ok := ctx.Value(localeTranslatorContextKey{}).(*i18n.Translator)
	return translator, ok
}
