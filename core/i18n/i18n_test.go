package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agusnobile/checkout-verification/core/i18n"
)

func newTestI18n(t *testing.T) *i18n.I18n {
	t.Helper()

	instance, err := i18n.New(
		i18n.WithDefaultLanguage("es-AR"),
		i18n.WithLanguages("es-AR", "pt-BR", "es-MX"),
		i18n.WithTranslations("es-AR", map[string]any{
			"verify": map[string]any{
				"title": "Verificá tu identidad",
			},
			"form": map[string]any{
				"fullname": "Nombre completo",
				"email":    "Correo electrónico",
			},
			"validation": map[string]any{
				"required":   "Este campo es obligatorio",
				"min_length": "Debe tener al menos {min} caracteres",
			},
		}),
		i18n.WithTranslations("pt-BR", map[string]any{
			"form": map[string]any{
				"fullname": "Nome completo",
			},
			"validation": map[string]any{
				"min_length": "Deve ter pelo menos {min} caracteres",
			},
		}),
	)
	require.NoError(t, err)
	return instance
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("empty default language rejected", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.New(i18n.WithDefaultLanguage(""))
		assert.Error(t, err)
	})

	t.Run("empty translation language rejected", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.New(i18n.WithTranslations("", map[string]any{"k": "v"}))
		assert.Error(t, err)
	})

	t.Run("default language listed first", func(t *testing.T) {
		t.Parallel()

		instance := newTestI18n(t)
		langs := instance.Languages()
		require.NotEmpty(t, langs)
		assert.Equal(t, "es-AR", langs[0])
		assert.Equal(t, []string{"es-AR", "es-MX", "pt-BR"}, langs)
	})
}

func TestT(t *testing.T) {
	t.Parallel()

	instance := newTestI18n(t)

	t.Run("nested key lookup", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Verificá tu identidad", instance.T("es-AR", "verify.title"))
		assert.Equal(t, "Nome completo", instance.T("pt-BR", "form.fullname"))
	})

	t.Run("placeholder interpolation", func(t *testing.T) {
		t.Parallel()

		got := instance.T("es-AR", "validation.min_length", i18n.M{"min": 2})
		assert.Equal(t, "Debe tener al menos 2 caracteres", got)
	})

	t.Run("unmatched placeholder left verbatim", func(t *testing.T) {
		t.Parallel()

		got := instance.T("es-AR", "validation.min_length", i18n.M{"other": 1})
		assert.Equal(t, "Debe tener al menos {min} caracteres", got)
	})

	t.Run("fallback to default language", func(t *testing.T) {
		t.Parallel()

		// pt-BR has no form.email, es-AR does
		assert.Equal(t, "Correo electrónico", instance.T("pt-BR", "form.email"))
	})

	t.Run("unknown key returned verbatim", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "no.such.key", instance.T("es-AR", "no.such.key"))
	})

	t.Run("missing key handler invoked", func(t *testing.T) {
		t.Parallel()

		var gotLang, gotKey string
		instance, err := i18n.New(
			i18n.WithDefaultLanguage("es-AR"),
			i18n.WithMissingKeyHandler(func(lang, key string) {
				gotLang, gotKey = lang, key
			}),
		)
		require.NoError(t, err)

		instance.T("pt-BR", "absent.key")
		assert.Equal(t, "pt-BR", gotLang)
		assert.Equal(t, "absent.key", gotKey)
	})
}

func TestHas(t *testing.T) {
	t.Parallel()

	instance := newTestI18n(t)

	assert.True(t, instance.Has("es-AR", "form.fullname"))
	assert.False(t, instance.Has("pt-BR", "form.email")) // no fallback
	assert.False(t, instance.Has("es-AR", "absent"))
}

func TestReplacePlaceholders(t *testing.T) {
	t.Parallel()

	t.Run("multiple placeholders", func(t *testing.T) {
		t.Parallel()

		got := i18n.ReplacePlaceholders("Hola {name}, tenés {count} mensajes", i18n.M{
			"name":  "Ana",
			"count": 5,
		})
		assert.Equal(t, "Hola Ana, tenés 5 mensajes", got)
	})

	t.Run("empty map returns template", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "sin cambios {x}", i18n.ReplacePlaceholders("sin cambios {x}", nil))
	})
}

func TestTranslator(t *testing.T) {
	t.Parallel()

	instance := newTestI18n(t)

	t.Run("bound language", func(t *testing.T) {
		t.Parallel()

		tr := i18n.NewTranslator(instance, "pt-BR")
		assert.Equal(t, "pt-BR", tr.Language())
		assert.Equal(t, "Nome completo", tr.T("form.fullname"))
		assert.Equal(t, "Deve ter pelo menos 2 caracteres", tr.T("validation.min_length", i18n.M{"min": 2}))
	})

	t.Run("empty language uses default", func(t *testing.T) {
		t.Parallel()

		tr := i18n.NewTranslator(instance, "")
		assert.Equal(t, "es-AR", tr.Language())
	})

	t.Run("nil i18n panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			i18n.NewTranslator(nil, "es-AR")
		})
	})
}
