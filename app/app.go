package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agusnobile/checkout-verification/captcha"
	"github.com/agusnobile/checkout-verification/core/config"
	"github.com/agusnobile/checkout-verification/core/cookie"
	"github.com/agusnobile/checkout-verification/core/i18n"
	"github.com/agusnobile/checkout-verification/core/logger"
	"github.com/agusnobile/checkout-verification/core/router"
	"github.com/agusnobile/checkout-verification/core/server"
	"github.com/agusnobile/checkout-verification/countries"
	"github.com/agusnobile/checkout-verification/profile"
	"github.com/agusnobile/checkout-verification/translations"
)

// App wires the verification service: configuration, logging, the
// translation catalog, the domain services, and the HTTP surface.
type App struct {
	config    Config
	logger    *slog.Logger
	router    router.Router[*Context]
	server    *server.Server
	cookie    *cookie.Manager
	catalog   *i18n.I18n
	countries *countries.Service
	profile   *profile.Service
	captcha   *captcha.Loader
}

// AppOption overrides a default component during construction.
type AppOption func(*App) error

// NewApp loads configuration from the environment and assembles the
// service. Options replace individual components, which is how tests
// inject fakes.
func NewApp(opts ...AppOption) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	app := &App{config: cfg}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		if cfg.IsProduction() {
			app.logger = logger.New(logger.WithProduction(cfg.AppName))
		} else {
			app.logger = logger.New(logger.WithDevelopment(cfg.AppName))
		}
	}

	if app.catalog == nil {
		log := app.logger
		catalog, err := translations.Load(i18n.WithMissingKeyHandler(func(lang, key string) {
			log.Warn("Missing translation",
				slog.String("lang", lang),
				slog.String("key", key),
			)
		}))
		if err != nil {
			return nil, err
		}
		app.catalog = catalog
	}

	if app.cookie == nil {
		if cfg.Cookie.Secrets == "" {
			if cfg.IsProduction() {
				return nil, errors.New("COOKIE_SECRETS is required in production")
			}
			// Ephemeral secret; flash cookies do not survive restarts in dev.
			cfg.Cookie.Secrets = uuid.NewString() + uuid.NewString()
		}
		cm, err := cookie.NewFromConfig(cfg.Cookie)
		if err != nil {
			return nil, err
		}
		app.cookie = cm
	}

	if app.countries == nil {
		app.countries = countries.NewService(countries.WithTTL(cfg.CountriesTTL))
	}

	if app.profile == nil {
		app.profile = profile.NewService()
	}

	if app.captcha == nil {
		app.captcha = captcha.NewFromConfig(cfg.Captcha)
	}

	if app.router == nil {
		app.router = router.New(
			router.WithContextFactory[*Context](newContext),
			router.WithErrorHandler[*Context](app.handleError),
			router.WithLogger[*Context](app.logger),
		)
	}

	if app.server == nil {
		s, err := server.NewFromConfig(cfg.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	app.registerRoutes()

	return app, nil
}

// Router exposes the configured HTTP handler, mainly for tests.
func (a *App) Router() router.Router[*Context] {
	return a.router
}

// Catalog exposes the loaded translation catalog, mainly for tests.
func (a *App) Catalog() *i18n.I18n {
	return a.catalog
}

// Run starts the HTTP server and blocks until ctx is canceled or the
// server fails. Suitable for errgroup.Go.
func (a *App) Run(ctx context.Context) func() error {
	return a.server.Run(ctx, a.router)
}

// WithLogger replaces the default logger.
func WithLogger(log *slog.Logger) AppOption {
	return func(app *App) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = log
		return nil
	}
}

// WithCookieManager replaces the default cookie manager.
func WithCookieManager(cm *cookie.Manager) AppOption {
	return func(app *App) error {
		if cm == nil {
			return errors.New("cookie manager cannot be nil")
		}
		app.cookie = cm
		return nil
	}
}

// WithCatalog replaces the embedded translation catalog.
func WithCatalog(catalog *i18n.I18n) AppOption {
	return func(app *App) error {
		if catalog == nil {
			return errors.New("catalog cannot be nil")
		}
		app.catalog = catalog
		return nil
	}
}

// WithCountries replaces the default country service.
func WithCountries(svc *countries.Service) AppOption {
	return func(app *App) error {
		if svc == nil {
			return errors.New("countries service cannot be nil")
		}
		app.countries = svc
		return nil
	}
}

// WithProfile replaces the default profile service.
func WithProfile(svc *profile.Service) AppOption {
	return func(app *App) error {
		if svc == nil {
			return errors.New("profile service cannot be nil")
		}
		app.profile = svc
		return nil
	}
}

// WithCaptcha replaces the default captcha loader.
func WithCaptcha(loader *captcha.Loader) AppOption {
	return func(app *App) error {
		if loader == nil {
			return errors.New("captcha loader cannot be nil")
		}
		app.captcha = loader
		return nil
	}
}
