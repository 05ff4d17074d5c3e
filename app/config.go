package app

import (
	"time"

	"github.com/agusnobile/checkout-verification/captcha"
	"github.com/agusnobile/checkout-verification/core/cookie"
	"github.com/agusnobile/checkout-verification/core/server"
)

// Config aggregates all environment-driven settings for the service.
type Config struct {
	Cookie  cookie.Config
	Server  server.Config
	Captcha captcha.Config

	AppName      string        `env:"APP_NAME" envDefault:"checkout-verification"`
	Env          string        `env:"APP_ENV" envDefault:"development"`
	BaseURL      string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	CountriesTTL time.Duration `env:"COUNTRIES_CACHE_TTL" envDefault:"1h"`
}

// IsProduction reports whether the app runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
