// Package i18n provides lightweight internationalization with nested
// translation maps, {name} placeholder interpolation, and default-language
// fallback.
//
// Instances are immutable after construction and safe for concurrent use:
//
//	translations, err := i18n.New(
//		i18n.WithDefaultLanguage("es-AR"),
//		i18n.WithTranslations("es-AR", map[string]any{
//			"form": map[string]any{
//				"fullname": "Nombre completo",
//			},
//			"validation": map[string]any{
//				"min_length": "Debe tener al menos {min} caracteres",
//			},
//		}),
//	)
//
//	translations.T("es-AR", "form.fullname")
//	translations.T("pt-BR", "validation.min_length", i18n.M{"min": 2})
//
// Lookups miss to the default language, and an unknown key is returned
// verbatim so missing translations surface in the UI instead of breaking it.
// Use WithMissingKeyHandler to log misses during development.
//
// Translator binds an I18n instance to a single language, which is the shape
// request handlers want:
//
//	t := i18n.NewTranslator(translations, "pt-BR")
//	t.T("buttons.confirm")
package i18n
