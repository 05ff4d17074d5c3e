package webui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agusnobile/checkout-verification/captcha"
	"github.com/agusnobile/checkout-verification/core/i18n"
	"github.com/agusnobile/checkout-verification/countries"
	"github.com/agusnobile/checkout-verification/flow"
	"github.com/agusnobile/checkout-verification/locale"
	"github.com/agusnobile/checkout-verification/translations"
	"github.com/agusnobile/checkout-verification/webui"
)

func translatorFor(t *testing.T, lang string) *i18n.Translator {
	t.Helper()

	catalog, err := translations.Load()
	require.NoError(t, err)
	return i18n.NewTranslator(catalog, lang)
}

func testCountries() []countries.Country {
	return []countries.Country{
		{Code: "AR", Name: "Argentina"},
		{Code: "BR", Name: "Brasil"},
	}
}

func TestFormPage(t *testing.T) {
	t.Parallel()

	loc := locale.Default()
	tr := translatorFor(t, loc.Lang)

	t.Run("prefilled form renders", func(t *testing.T) {
		t.Parallel()

		form := flow.NewForm(flow.Options{
			Referrer:   "/dashboard",
			Token:      "entry-token",
			Country:    loc.Country,
			Translator: tr,
			Debounce:   -1,
		})
		form.LoadProfile(map[string]string{
			"name":    "Juan Pérez",
			"email":   "juan@example.com",
			"address": "Av. Corrientes 1234",
			"country": "AR",
		})

		page := webui.NewFormPage(loc, tr, form, testCountries(), captcha.New())

		var buf bytes.Buffer
		require.NoError(t, webui.FormTemplate.Execute(&buf, page))
		html := buf.String()

		assert.Contains(t, html, `<html lang="es">`)
		assert.Contains(t, html, "Estamos casi listos...")
		assert.Contains(t, html, `value="Juan Pérez"`)
		assert.Contains(t, html, `name="referrer" value="/dashboard"`)
		assert.Contains(t, html, `name="token" value="entry-token"`)
		assert.Contains(t, html, `<option value="AR" selected>Argentina</option>`)
		assert.Contains(t, html, "window.__INITIAL_LOCALE__")
		assert.Contains(t, html, "El captcha se cargará cuando completes el formulario")
	})

	t.Run("field errors render inline", func(t *testing.T) {
		t.Parallel()

		form := flow.NewForm(flow.Options{
			Country:    loc.Country,
			Translator: tr,
			Debounce:   -1,
		})
		form.ProfileUnavailable()
		form.Edit("email", "not-an-email")

		page := webui.NewFormPage(loc, tr, form, testCountries(), captcha.New())

		var buf bytes.Buffer
		require.NoError(t, webui.FormTemplate.Execute(&buf, page))
		assert.Contains(t, buf.String(), "Ingresá un correo electrónico válido")
	})

	t.Run("invalid params view", func(t *testing.T) {
		t.Parallel()

		form := flow.NewForm(flow.Options{
			Referrer:   "https://evil.example",
			Country:    loc.Country,
			Translator: tr,
			Debounce:   -1,
		})

		page := webui.NewFormPage(loc, tr, form, nil, nil)

		var buf bytes.Buffer
		require.NoError(t, webui.FormTemplate.Execute(&buf, page))
		html := buf.String()

		assert.Contains(t, html, "Error: La URL no contiene los parámetros necesarios.")
		assert.NotContains(t, html, "<form")
	})

	t.Run("portuguese labels", func(t *testing.T) {
		t.Parallel()

		trBR := translatorFor(t, locale.LangPtBR)
		locBR := locale.Locale{Country: "BR", Lang: locale.LangPtBR, Region: locale.RegionLATAM}
		form := flow.NewForm(flow.Options{Country: "BR", Translator: trBR, Debounce: -1})
		form.ProfileUnavailable()

		page := webui.NewFormPage(locBR, trBR, form, testCountries(), nil)

		var buf bytes.Buffer
		require.NoError(t, webui.FormTemplate.Execute(&buf, page))
		html := buf.String()

		assert.Contains(t, html, `<html lang="pt">`)
		assert.Contains(t, html, "Nome completo")
		assert.Contains(t, html, "Estamos quase prontos...")
	})

	t.Run("dev links", func(t *testing.T) {
		t.Parallel()

		links := webui.LocaleDevLinks("http://localhost:8080/verify-data-ssr")
		require.Len(t, links, 3)
		assert.Equal(t, "argentina", links[0].Name)
		assert.Contains(t, links[0].URL, "country=AR&lang=es-AR")
	})
}

func TestCheckoutPage(t *testing.T) {
	t.Parallel()

	loc := locale.Default()
	tr := translatorFor(t, loc.Lang)

	t.Run("long token is truncated with full value in title", func(t *testing.T) {
		t.Parallel()

		token := "0123456789abcdefghijKLMNOPQRST"
		page := webui.NewCheckoutPage(loc, tr, "https://www.mercadolibre.com.ar/", token)

		assert.Equal(t, "0123456789abcdefghij...", page.TokenPreview)

		var buf bytes.Buffer
		require.NoError(t, webui.CheckoutTemplate.Execute(&buf, page))
		html := buf.String()

		assert.Contains(t, html, `title="`+token+`"`)
		assert.Contains(t, html, "0123456789abcdefghij...")
		assert.Contains(t, html, "¡Datos confirmados!")
		assert.Contains(t, html, "Continuar al Checkout")
	})

	t.Run("continue link carries the token", func(t *testing.T) {
		t.Parallel()

		page := webui.NewCheckoutPage(loc, tr, "https://shop.example/", "a b")
		assert.Equal(t, "https://shop.example/?token=a+b", page.ContinueURL)
	})
}

func TestFallbackPage(t *testing.T) {
	t.Parallel()

	loc := locale.Default()
	tr := translatorFor(t, loc.Lang)

	t.Run("redirect preserves query", func(t *testing.T) {
		t.Parallel()

		page := webui.NewFallbackPage(tr, "referrer=%2Fdashboard&token=abc")
		assert.Equal(t, "/?referrer=%2Fdashboard&token=abc", page.RedirectURL)

		var buf bytes.Buffer
		require.NoError(t, webui.FallbackTemplate.Execute(&buf, page))
		assert.Contains(t, buf.String(), "Cargando...")
	})

	t.Run("no query", func(t *testing.T) {
		t.Parallel()

		page := webui.NewFallbackPage(tr, "")
		assert.Equal(t, "/", page.RedirectURL)
	})
}
