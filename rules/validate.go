package rules

import "strings"

// Violation identifies a failed validation as a translation key plus
// interpolation parameters, so callers render the message in the
// visitor's language.
type Violation struct {
	Key    string
	Params map[string]any
}

// Validation message keys.
const (
	KeyRequired      = "validation.required"
	KeyMinLength     = "validation.min_length"
	KeyInvalidEmail  = "validation.invalid_email"
	KeyInvalidPhone  = "validation.invalid_phone"
	KeyInvalidFormat = "validation.invalid_format"
)

// Validate checks a single field value against its rule. The required
// check runs first; length and pattern checks only apply to non-empty
// values, so an optional field left blank passes. Returns nil when the
// value passes.
func Validate(rule FieldRule, value string) *Violation {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		if rule.Required {
			return &Violation{Key: KeyRequired}
		}
		return nil
	}

	if rule.MinLength > 0 && len([]rune(trimmed)) < rule.MinLength {
		return &Violation{Key: KeyMinLength, Params: map[string]any{"min": rule.MinLength}}
	}

	if rule.Pattern != nil && !rule.Pattern.MatchString(value) {
		key := rule.PatternKey
		if key == "" {
			key = KeyInvalidFormat
		}
		return &Violation{Key: key}
	}

	return nil
}

// ValidateAll checks every field in the set against the provided values.
// Fields absent from values are validated as empty strings. Returns a map
// of field name to violation for each failing field.
func ValidateAll(set Set, values map[string]string) map[string]*Violation {
	violations := make(map[string]*Violation)
	for field, rule := range set {
		if v := Validate(rule, values[field]); v != nil {
			violations[field] = v
		}
	}
	return violations
}
