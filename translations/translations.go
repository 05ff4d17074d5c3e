// Package translations embeds the message catalogs for all supported
// languages and assembles them into a ready-to-use i18n instance.
package translations

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/agusnobile/checkout-verification/core/i18n"
	"github.com/agusnobile/checkout-verification/locale"
)

//go:embed locales/*.json
var catalogFS embed.FS

// Load parses the embedded catalogs for every supported language.
// Argentine Spanish is the default; lookups in other languages fall
// back to it for keys they do not define.
func Load(opts ...i18n.Option) (*i18n.I18n, error) {
	base := []i18n.Option{
		i18n.WithDefaultLanguage(locale.LangEsAR),
		i18n.WithLanguages(locale.Languages()...),
	}

	for _, lang := range locale.Languages() {
		raw, err := catalogFS.ReadFile("locales/" + lang + ".json")
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", lang, err)
		}

		var messages map[string]any
		if err := json.Unmarshal(raw, &messages); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", lang, err)
		}
		base = append(base, i18n.WithTranslations(lang, messages))
	}

	return i18n.New(append(base, opts...)...)
}

// MustLoad is like Load but panics on error. The catalogs are embedded,
// so a failure here is a build defect, not a runtime condition.
func MustLoad(opts ...i18n.Option) *i18n.I18n {
	catalog, err := Load(opts...)
	if err != nil {
		panic(fmt.Sprintf("translations: %v", err))
	}
	return catalog
}
