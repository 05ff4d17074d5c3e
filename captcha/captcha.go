package captcha

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// State describes the lifecycle of the captcha widget.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateError   State = "error"
	StateReady   State = "ready"
)

var (
	// ErrLoadFailed is returned once loading has failed. The failure is
	// terminal; a new Loader is needed to try again.
	ErrLoadFailed = errors.New("captcha: script load failed")
)

const (
	defaultScriptURL = "https://www.google.com/recaptcha/api.js"
	defaultSiteKey   = "6Ld-qSgrAAAAAKJBgoRh93tejrGuu3pmeuEczuZj"
	defaultTimeout   = 10 * time.Second
)

// Loader lazily verifies that the captcha provider script is reachable
// before the widget is shown. Loading is deferred until the form is
// complete, so users who never finish the form never hit the provider.
type Loader struct {
	mu        sync.Mutex
	state     State
	client    *http.Client
	scriptURL string
	siteKey   string
}

// Option configures a Loader.
type Option func(*Loader)

// WithScriptURL overrides the provider script URL.
func WithScriptURL(url string) Option {
	return func(l *Loader) {
		if url != "" {
			l.scriptURL = url
		}
	}
}

// WithSiteKey overrides the site key rendered into the widget.
func WithSiteKey(key string) Option {
	return func(l *Loader) {
		if key != "" {
			l.siteKey = key
		}
	}
}

// WithHTTPClient overrides the HTTP client used for the script probe.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		if client != nil {
			l.client = client
		}
	}
}

// New creates a Loader in the idle state.
func New(opts ...Option) *Loader {
	l := &Loader{
		state:     StateIdle,
		client:    &http.Client{Timeout: defaultTimeout},
		scriptURL: defaultScriptURL,
		siteKey:   defaultSiteKey,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load checks that the provider script is reachable and marks the
// widget ready. It is a no-op when already ready, and returns
// ErrLoadFailed without retrying once a load has failed.
func (l *Loader) Load(ctx context.Context) error {
	l.mu.Lock()
	switch l.state {
	case StateReady:
		l.mu.Unlock()
		return nil
	case StateError:
		l.mu.Unlock()
		return ErrLoadFailed
	case StateLoading:
		l.mu.Unlock()
		return nil
	}
	l.state = StateLoading
	scriptURL := l.scriptURL
	client := l.client
	l.mu.Unlock()

	err := probe(ctx, client, scriptURL)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.state = StateError
		return fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	l.state = StateReady
	return nil
}

func probe(ctx context.Context, client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

// State returns the current widget state.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// SiteKey returns the key rendered into the widget markup.
func (l *Loader) SiteKey() string {
	return l.siteKey
}

// ScriptURL returns the provider script URL rendered into the page.
func (l *Loader) ScriptURL() string {
	return l.scriptURL
}

// MessageKey maps the widget state to the translation key shown to the
// user while the widget is in that state.
func (l *Loader) MessageKey() string {
	switch l.State() {
	case StateLoading:
		return "captcha.loading"
	case StateError:
		return "captcha.error"
	case StateReady:
		return "captcha.verify"
	default:
		return "captcha.will_load"
	}
}
