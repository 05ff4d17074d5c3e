package flow_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agusnobile/checkout-verification/core/i18n"
	"github.com/agusnobile/checkout-verification/flow"
)

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()

	catalog, err := i18n.New(
		i18n.WithDefaultLanguage("es-AR"),
		i18n.WithTranslations("es-AR", map[string]any{
			"validation": map[string]any{
				"required":      "Este campo es obligatorio",
				"min_length":    "Debe tener al menos {min} caracteres",
				"invalid_email": "Ingresá un correo válido",
			},
		}),
	)
	require.NoError(t, err)
	return i18n.NewTranslator(catalog, "es-AR")
}

// newForm creates a form with synchronous validation for deterministic tests.
func newForm(t *testing.T, opts flow.Options) *flow.Form {
	t.Helper()

	if opts.Debounce == 0 {
		opts.Debounce = -1
	}
	if opts.Translator == nil {
		opts.Translator = newTranslator(t)
	}
	if opts.Country == "" {
		opts.Country = "AR"
	}
	return flow.NewForm(opts)
}

func fillValid(f *flow.Form) {
	f.Edit("name", "Ana García")
	f.Edit("email", "ana@example.com")
	f.Edit("address", "Av. Corrientes 1234")
	f.Edit("country", "AR")
}

func TestNewForm(t *testing.T) {
	t.Parallel()

	t.Run("defaults applied to missing params", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, flow.Options{})
		assert.Equal(t, flow.StateLoading, f.State())
		assert.Equal(t, flow.DefaultReferrer, f.Referrer())
		assert.Equal(t, flow.DefaultToken, f.Token())
	})

	t.Run("external referrer rejected", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, flow.Options{Referrer: "https://evil.com", Token: "abc"})
		assert.Equal(t, flow.StateInvalidParams, f.State())
	})

	t.Run("invalid state is terminal", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, flow.Options{Referrer: "evil"})
		f.Edit("name", "Ana")
		f.SetCaptchaToken("tok")
		assert.Equal(t, flow.StateInvalidParams, f.State())

		_, ok := f.Submit()
		assert.False(t, ok)
	})
}

func TestLoadProfile(t *testing.T) {
	t.Parallel()

	t.Run("complete profile reveals captcha", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, flow.Options{})
		f.LoadProfile(map[string]string{
			"name":    "Ana García",
			"email":   "ana@example.com",
			"address": "Av. Corrientes 1234",
			"country": "AR",
		})

		assert.True(t, f.CaptchaVisible())
		assert.Equal(t, flow.StateCaptchaPending, f.State())
		assert.Equal(t, "Ana García", f.Values()["name"])
	})

	t.Run("incomplete profile keeps captcha hidden", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, flow.Options{})
		f.LoadProfile(map[string]string{"name": "Ana", "email": "ana@example.com"})

		assert.False(t, f.CaptchaVisible())
		assert.Equal(t, flow.StateEditing, f.State())
	})

	t.Run("profile overwrites typed values wholesale", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, flow.Options{})
		f.ProfileUnavailable()
		f.Edit("name", "Typed Name")
		f.LoadProfile(map[string]string{"name": "Profile Name"})

		values := f.Values()
		assert.Equal(t, "Profile Name", values["name"])
		assert.Empty(t, values["email"])
	})
}

func TestPreselectCountry(t *testing.T) {
	t.Parallel()

	t.Run("applies once", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, flow.Options{})
		f.ProfileUnavailable()
		f.PreselectCountry("BR")
		f.PreselectCountry("MX")

		assert.Equal(t, "BR", f.Values()["country"])
	})

	t.Run("skipped after profile load", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, flow.Options{})
		f.LoadProfile(map[string]string{"country": "AR"})
		f.PreselectCountry("BR")

		assert.Equal(t, "AR", f.Values()["country"])
	})
}

func TestValidation(t *testing.T) {
	t.Parallel()

	t.Run("only touched fields produce errors", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, flow.Options{})
		f.ProfileUnavailable()
		f.Edit("name", "A")

		errors := f.Errors()
		assert.Contains(t, errors, "name")
		assert.NotContains(t, errors, "email")
		assert.NotContains(t, errors, "address")
	})

	t.Run("messages rendered with translator", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, flow.Options{})
		f.ProfileUnavailable()
		f.Edit("name", "A")
		f.Edit("email", "nope")

		errors := f.Errors()
		assert.Equal(t, "Debe tener al menos 2 caracteres", errors["name"])
		assert.Equal(t, "Ingresá un correo válido", errors["email"])
	})

	t.Run("required wins over format", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, flow.Options{})
		f.ProfileUnavailable()
		f.Edit("email", "   ")

		assert.Equal(t, "Este campo es obligatorio", f.Errors()["email"])
	})

	t.Run("fixing a field clears its error", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, flow.Options{})
		f.ProfileUnavailable()
		f.Edit("name", "A")
		assert.Contains(t, f.Errors(), "name")

		f.Edit("name", "Ana García")
		assert.NotContains(t, f.Errors(), "name")
	})
}

func TestDebouncedValidation(t *testing.T) {
	t.Parallel()

	f := flow.NewForm(flow.Options{
		Translator: newTranslator(t),
		Country:    "AR",
		Debounce:   40 * time.Millisecond,
	})
	f.ProfileUnavailable()

	f.Edit("name", "A")
	assert.Empty(t, f.Errors(), "validation should not run before the quiet period")

	// A second edit within the window supersedes the first
	f.Edit("name", "Ana García")

	time.Sleep(80 * time.Millisecond)
	assert.NotContains(t, f.Errors(), "name")

	t.Run("flush validates immediately", func(t *testing.T) {
		f.Edit("email", "bad")
		f.Flush()
		assert.Contains(t, f.Errors(), "email")
	})
}

func TestSubmitGate(t *testing.T) {
	t.Parallel()

	t.Run("monotonic enablement", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, flow.Options{Referrer: "/", Token: "entry"})
		f.ProfileUnavailable()

		_, ok := f.Submit()
		assert.False(t, ok, "empty form must not submit")

		fillValid(f)
		assert.Equal(t, flow.StateCaptchaPending, f.State())

		_, ok = f.Submit()
		assert.False(t, ok, "captcha missing")

		f.SetCaptchaToken("captcha-tok")
		assert.Equal(t, flow.StateReadyToSubmit, f.State())
		assert.True(t, f.Complete())

		sub, ok := f.Submit()
		require.True(t, ok)
		assert.Equal(t, "/", sub.Referrer)
		assert.Equal(t, "captcha-tok", sub.Token)
		assert.Equal(t, flow.StateSubmitted, f.State())
	})

	t.Run("validation error blocks submit", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, flow.Options{})
		f.ProfileUnavailable()
		fillValid(f)
		f.Edit("email", "broken")
		f.SetCaptchaToken("tok")

		_, ok := f.Submit()
		assert.False(t, ok)
	})

	t.Run("captcha expiry revokes readiness", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, flow.Options{})
		f.ProfileUnavailable()
		fillValid(f)
		f.SetCaptchaToken("tok")
		assert.Equal(t, flow.StateReadyToSubmit, f.State())

		f.SetCaptchaToken("")
		assert.Equal(t, flow.StateCaptchaPending, f.State())

		_, ok := f.Submit()
		assert.False(t, ok)
	})

	t.Run("second submit is a no-op", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, flow.Options{})
		f.ProfileUnavailable()
		fillValid(f)
		f.SetCaptchaToken("tok")

		_, ok := f.Submit()
		require.True(t, ok)

		_, ok = f.Submit()
		assert.False(t, ok)
	})
}

func TestDebouncer(t *testing.T) {
	t.Parallel()

	t.Run("supersedes pending calls", func(t *testing.T) {
		t.Parallel()

		d := flow.NewDebouncer(30 * time.Millisecond)
		var count atomic.Int32

		for i := 0; i < 5; i++ {
			d.Do(func() { count.Add(1) })
		}

		time.Sleep(80 * time.Millisecond)
		assert.Equal(t, int32(1), count.Load())
	})

	t.Run("flush runs pending once", func(t *testing.T) {
		t.Parallel()

		d := flow.NewDebouncer(time.Minute)
		var count atomic.Int32

		d.Do(func() { count.Add(1) })
		d.Flush()
		d.Flush()

		assert.Equal(t, int32(1), count.Load())
	})

	t.Run("stop cancels pending", func(t *testing.T) {
		t.Parallel()

		d := flow.NewDebouncer(20 * time.Millisecond)
		var count atomic.Int32

		d.Do(func() { count.Add(1) })
		d.Stop()

		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, int32(0), count.Load())
	})

	t.Run("non-positive delay runs synchronously", func(t *testing.T) {
		t.Parallel()

		d := flow.NewDebouncer(0)
		var count atomic.Int32
		d.Do(func() { count.Add(1) })
		assert.Equal(t, int32(1), count.Load())
	})
}
