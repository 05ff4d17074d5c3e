// Package rules defines per-country form validation rules for the
// identity verification flow.
package rules

import "regexp"

// FieldRule describes the constraints for a single form field.
// PatternKey names the message rendered when Pattern does not match.
type FieldRule struct {
	Required    bool
	MinLength   int
	Pattern     *regexp.Regexp
	PatternKey  string
	Placeholder string
}

// Set maps field names to their validation rules.
type Set map[string]FieldRule

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// baseRules apply to every country.
var baseRules = Set{
	"name":    {Required: true, MinLength: 2},
	"email":   {Required: true, Pattern: emailPattern, PatternKey: KeyInvalidEmail},
	"address": {Required: true, MinLength: 5},
	"country": {Required: true},
}

// byCountry extends the base rules with country-specific phone formats.
var byCountry = map[string]Set{
	"BR": withPhone(FieldRule{
		Required:    true,
		Pattern:     regexp.MustCompile(`^\(\d{2}\)\s\d{4,5}-\d{4}$`),
		PatternKey:  KeyInvalidPhone,
		Placeholder: "(11) 99999-9999",
	}),
	"AR": withPhone(FieldRule{
		Required:    true,
		Pattern:     regexp.MustCompile(`^\+54\s\d{2}\s\d{4}-\d{4}$`),
		PatternKey:  KeyInvalidPhone,
		Placeholder: "+54 11 9999-9999",
	}),
	"MX": withPhone(FieldRule{
		Required:    true,
		Pattern:     regexp.MustCompile(`^\+52\s\d{3}\s\d{3}\s\d{4}$`),
		PatternKey:  KeyInvalidPhone,
		Placeholder: "+52 555 123 4567",
	}),
}

func withPhone(phone FieldRule) Set {
	s := make(Set, len(baseRules)+1)
	for field, rule := range baseRules {
		s[field] = rule
	}
	s["phone"] = phone
	return s
}

// ForCountry returns the validation rules for the given country code.
// Countries without specific rules get the base set.
func ForCountry(country string) Set {
	if s, ok := byCountry[country]; ok {
		return s
	}
	return baseRules
}
