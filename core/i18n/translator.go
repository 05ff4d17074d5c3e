package i18n

// Translator provides a simplified translation interface with a fixed language context.
// It wraps an I18n instance and eliminates the need to specify the language for each translation.
type Translator struct {
	i18n     *I18n
	language string
}

// NewTranslator creates a new Translator with the specified language context.
func NewTranslator(i18n *I18n, language string) *Translator {
	if i18n == nil {
		panic("localization service is not provided")
	}
	if language == "" {
		language = i18n.DefaultLanguage()
	}
	return &Translator{
		i18n:     i18n,
		language: language,
	}
}

// T translates a key using the translator's language context.
// Placeholders in the translation are replaced with values from the provided maps.
func (t *Translator) T(key string, placeholders ...M) string {
	return t.i18n.T(t.language, key, placeholders...)
}

// Language returns the current language context of the translator.
func (t *Translator) Language() string {
	return t.language
}
