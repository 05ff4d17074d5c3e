// Package flow implements the identity verification form state machine:
// entry parameter guarding, debounced touched-field validation, captcha
// gating, and the submit decision.
package flow

import (
	"strings"
	"sync"
	"time"

	"github.com/agusnobile/checkout-verification/core/i18n"
	"github.com/agusnobile/checkout-verification/rules"
)

// State identifies the form's lifecycle phase.
type State string

const (
	// StateInvalidParams is terminal: the entry URL lacked a usable
	// referrer or token.
	StateInvalidParams State = "invalid_params"
	// StateLoading covers the initial profile fetch.
	StateLoading State = "loading"
	// StateEditing is the active phase before the captcha is revealed.
	StateEditing State = "editing"
	// StateCaptchaPending means the captcha is visible but unsolved.
	StateCaptchaPending State = "captcha_pending"
	// StateReadyToSubmit means every gate to submission is open.
	StateReadyToSubmit State = "ready_to_submit"
	// StateSubmitted is terminal: the form was successfully submitted.
	StateSubmitted State = "submitted"
)

// Default entry parameters applied when the query omits them.
const (
	DefaultReferrer = "/dashboard"
	DefaultToken    = "default-token"

	// FallbackReferrer is the external destination used when no referrer
	// survives to submission.
	FallbackReferrer = "https://www.mercadolibre.com.ar/"

	// DefaultDebounce is the quiet period between an edit and its validation.
	DefaultDebounce = 300 * time.Millisecond
)

// Fields validated by the form, in render order.
var formFields = []string{"name", "email", "address", "country"}

// Submission carries the values forwarded to the confirmation screen.
type Submission struct {
	Referrer string
	Token    string
}

// Options configures a new Form.
type Options struct {
	// Referrer and Token come from the entry URL query. Empty values
	// receive defaults; a referrer not starting with "/" invalidates
	// the form.
	Referrer string
	Token    string

	// Country selects the validation rule set.
	Country string

	// Translator renders validation messages in the visitor's language.
	Translator *i18n.Translator

	// Debounce overrides the validation quiet period. Zero means
	// DefaultDebounce; negative disables debouncing (validate on edit).
	Debounce time.Duration
}

// Form tracks the verification form's values, touched fields, validation
// errors, and captcha progress. Safe for concurrent use.
type Form struct {
	mu sync.Mutex

	state       State
	referrer    string
	token       string
	ruleSet     rules.Set
	translator  *i18n.Translator
	debouncer   *Debouncer
	values      map[string]string
	touched     map[string]bool
	errors      map[string]string
	captchaOpen bool
	captchaTok  string
	preselected bool
}

// NewForm validates the entry parameters and creates a form in the
// loading state. A referrer outside the site ("/" prefix) or an empty
// token after defaulting puts the form in the terminal invalid state.
func NewForm(opts Options) *Form {
	referrer := opts.Referrer
	if referrer == "" {
		referrer = DefaultReferrer
	}
	token := opts.Token
	if token == "" {
		token = DefaultToken
	}

	debounce := opts.Debounce
	if debounce == 0 {
		debounce = DefaultDebounce
	}

	f := &Form{
		state:      StateLoading,
		referrer:   referrer,
		token:      token,
		ruleSet:    rules.ForCountry(opts.Country),
		translator: opts.Translator,
		debouncer:  NewDebouncer(debounce),
		values:     make(map[string]string, len(formFields)),
		touched:    make(map[string]bool, len(formFields)),
		errors:     make(map[string]string),
	}

	if !strings.HasPrefix(referrer, "/") || token == "" {
		f.state = StateInvalidParams
	}

	return f
}

// LoadProfile replaces the form values wholesale with the fetched profile
// and leaves the loading state. A complete profile reveals the captcha
// immediately.
func (f *Form) LoadProfile(values map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateInvalidParams || f.state == StateSubmitted {
		return
	}

	complete := true
	for _, field := range formFields {
		f.values[field] = values[field]
		if values[field] == "" {
			complete = false
		}
	}
	f.preselected = true
	if complete {
		f.captchaOpen = true
	}
	f.advanceLocked()
}

// ProfileUnavailable leaves the loading state without prefilled values,
// keeping whatever the visitor typed.
func (f *Form) ProfileUnavailable() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateLoading {
		f.state = StateEditing
	}
}

// PreselectCountry sets the country once, before any profile load or
// earlier preselection. Later calls are ignored.
func (f *Form) PreselectCountry(code string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.preselected || code == "" {
		return
	}
	f.values["country"] = code
	f.preselected = true
}

// Edit updates a field value, marks it touched, reveals the captcha, and
// schedules a debounced validation pass.
func (f *Form) Edit(field, value string) {
	f.mu.Lock()
	if f.state == StateInvalidParams || f.state == StateSubmitted {
		f.mu.Unlock()
		return
	}
	f.touched[field] = true
	f.values[field] = value
	f.captchaOpen = true
	if f.state == StateLoading {
		f.state = StateEditing
	}
	f.mu.Unlock()

	f.debouncer.Do(f.validate)
}

// Blur marks a field as touched without changing its value.
func (f *Form) Blur(field string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched[field] = true
}

// SetCaptchaToken records the solved captcha token. An empty token
// clears a previous solution (expiry).
func (f *Form) SetCaptchaToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateInvalidParams || f.state == StateSubmitted {
		return
	}
	f.captchaTok = token
	f.advanceLocked()
}

// Flush runs any pending debounced validation immediately.
func (f *Form) Flush() {
	f.debouncer.Flush()
}

// validate re-checks every touched field and rebuilds the error map.
func (f *Form) validate() {
	f.mu.Lock()
	defer f.mu.Unlock()

	errors := make(map[string]string)
	for _, field := range formFields {
		if !f.touched[field] {
			continue
		}
		rule, ok := f.ruleSet[field]
		if !ok {
			continue
		}
		if v := rules.Validate(rule, f.values[field]); v != nil {
			errors[field] = f.renderLocked(v)
		}
	}
	f.errors = errors
	f.advanceLocked()
}

func (f *Form) renderLocked(v *rules.Violation) string {
	if f.translator == nil {
		return v.Key
	}
	if len(v.Params) == 0 {
		return f.translator.T(v.Key)
	}
	return f.translator.T(v.Key, i18n.M(v.Params))
}

// advanceLocked recomputes the derived state. Callers hold the lock.
func (f *Form) advanceLocked() {
	switch f.state {
	case StateInvalidParams, StateSubmitted, StateLoading:
		return
	}

	if f.completeLocked() {
		f.state = StateReadyToSubmit
		return
	}
	if f.captchaOpen {
		f.state = StateCaptchaPending
		return
	}
	f.state = StateEditing
}

// completeLocked reports whether submission is allowed: no validation
// errors, all fields filled, and a captcha token present.
func (f *Form) completeLocked() bool {
	if len(f.errors) > 0 || f.captchaTok == "" {
		return false
	}
	for _, field := range formFields {
		if f.values[field] == "" {
			return false
		}
	}
	return true
}

// State returns the current lifecycle phase.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Values returns a copy of the current field values.
func (f *Form) Values() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Errors returns a copy of the rendered validation errors for touched fields.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// CaptchaVisible reports whether the captcha widget should be shown.
func (f *Form) CaptchaVisible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.captchaOpen
}

// Complete reports whether the submit gate is open.
func (f *Form) Complete() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.completeLocked()
}

// Referrer returns the validated entry referrer.
func (f *Form) Referrer() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.referrer
}

// Token returns the validated entry token.
func (f *Form) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

// Submit attempts to submit the form. An incomplete form is a silent
// no-op returning ok=false. On success the form reaches the terminal
// submitted state and the submission carries the referrer plus the
// captcha token for the confirmation screen.
func (f *Form) Submit() (Submission, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateInvalidParams || f.state == StateSubmitted {
		return Submission{}, false
	}
	if !f.completeLocked() {
		return Submission{}, false
	}

	referrer := f.referrer
	if referrer == "" {
		referrer = FallbackReferrer
	}

	f.state = StateSubmitted
	return Submission{Referrer: referrer, Token: f.captchaTok}, true
}
