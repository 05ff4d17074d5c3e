package captcha

// Config contains captcha settings loaded from environment variables.
type Config struct {
	ScriptURL string `env:"CAPTCHA_SCRIPT_URL" envDefault:"https://www.google.com/recaptcha/api.js"`
	SiteKey   string `env:"CAPTCHA_SITE_KEY" envDefault:""`
}

// NewFromConfig creates a Loader from environment-based configuration.
func NewFromConfig(cfg Config, opts ...Option) *Loader {
	baseOpts := []Option{
		WithScriptURL(cfg.ScriptURL),
		WithSiteKey(cfg.SiteKey),
	}
	return New(append(baseOpts, opts...)...)
}
