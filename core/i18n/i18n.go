package i18n

import (
	"fmt"
	"maps"
	"sort"
)

// DefaultLang is the default language code used when no default language is specified.
const DefaultLang = "en"

// I18n provides internationalization support with key-based translations.
// It is immutable after creation, making it safe for concurrent use.
type I18n struct {
	// Flattened translations map for O(1) lookups
	// Key format: "lang:key.path"
	translations map[string]string

	// Default/fallback language
	defaultLang string

	// Pre-computed list of available languages (for O(1) access)
	languages []string

	// Optional handler called when a translation key is not found
	missingKeyHandler func(lang, key string)
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates a new I18n instance with the given options.
// All configuration happens during construction, making the instance
// immutable and thread-safe from creation.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]string),
		defaultLang:  DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if i.defaultLang == "" {
		return nil, fmt.Errorf("default language cannot be empty")
	}

	i.languages = i.buildLanguagesList()

	return i, nil
}

// WithDefaultLanguage sets the default/fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return fmt.Errorf("language cannot be empty")
		}
		i.defaultLang = lang
		return nil
	}
}

// WithLanguages sets the supported languages for the I18n instance.
// The default language will always be included and placed first in the list.
// Other languages will be sorted alphabetically.
func WithLanguages(langs ...string) Option {
	return func(i *I18n) error {
		if len(langs) == 0 {
			return nil
		}

		langSet := make(map[string]bool)
		for _, lang := range langs {
			if lang != "" {
				langSet[lang] = true
			}
		}

		i.languages = make([]string, 0, len(langSet)+1)
		i.languages = append(i.languages, i.defaultLang)

		delete(langSet, i.defaultLang)

		if len(langSet) > 0 {
			otherLangs := make([]string, 0, len(langSet))
			for lang := range langSet {
				otherLangs = append(otherLangs, lang)
			}
			sort.Strings(otherLangs)
			i.languages = append(i.languages, otherLangs...)
		}

		return nil
	}
}

// WithMissingKeyHandler sets a handler function that will be called when a
// translation key is not found in any language (including the default
// fallback). This is useful for logging missing translations during
// development. The handler receives the requested language and key.
func WithMissingKeyHandler(handler func(lang, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// WithTranslations loads translations for a specific language.
// The translations map can be nested; it will be flattened internally
// into dot-notation keys for efficient lookups.
func WithTranslations(lang string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return fmt.Errorf("language cannot be empty")
		}
		if len(translations) == 0 {
			return nil // Empty translations are allowed
		}

		flattened := flattenTranslations(translations, "")

		for key, value := range flattened {
			i.translations[buildKey(lang, key)] = value
		}

		return nil
	}
}

// T retrieves a translation for the given language and key.
// Placeholders in the translation are replaced with values from the provided maps.
// Falls back to the default language if translation is not found.
// Returns the key itself if no translation exists.
func (i *I18n) T(lang, key string, placeholders ...M) string {
	if translation, exists := i.translations[buildKey(lang, key)]; exists {
		return replacePlaceholdersWithMerge(translation, placeholders...)
	}

	// Fall back to default language if different
	if lang != i.defaultLang {
		if translation, exists := i.translations[buildKey(i.defaultLang, key)]; exists {
			return replacePlaceholdersWithMerge(translation, placeholders...)
		}
	}

	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, key)
	}

	// Return the key as last resort
	return key
}

// Has reports whether a translation exists for the given language and key,
// without consulting the default-language fallback.
func (i *I18n) Has(lang, key string) bool {
	_, exists := i.translations[buildKey(lang, key)]
	return exists
}

// Languages returns all configured languages in the I18n instance.
// The default language is always returned first, followed by other languages sorted alphabetically.
// This is an O(1) operation as the list is pre-computed during construction.
func (i *I18n) Languages() []string {
	return i.languages
}

// DefaultLanguage returns the default language code configured for the I18n instance.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

// buildLanguagesList builds the pre-computed list of languages.
// Called once during construction after all options are applied.
func (i *I18n) buildLanguagesList() []string {
	if len(i.languages) > 0 {
		return i.languages
	}

	return []string{i.defaultLang}
}

// buildKey creates a composite key for the translations map.
func buildKey(lang, key string) string {
	return lang + ":" + key
}

// flattenTranslations recursively flattens a nested map into dot-notation keys.
func flattenTranslations(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			nested := flattenTranslations(v, fullKey)
			maps.Copy(result, nested)
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}

// replacePlaceholdersWithMerge replaces placeholders in a template with values from multiple maps.
func replacePlaceholdersWithMerge(template string, placeholders ...M) string {
	if len(placeholders) == 0 {
		return template
	}

	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}

	return ReplacePlaceholders(template, merged)
}
