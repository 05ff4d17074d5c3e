package rules_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agusnobile/checkout-verification/rules"
)

func TestForCountry(t *testing.T) {
	t.Parallel()

	t.Run("base fields present everywhere", func(t *testing.T) {
		t.Parallel()

		for _, country := range []string{"AR", "BR", "MX", "US", ""} {
			set := rules.ForCountry(country)
			for _, field := range []string{"name", "email", "address", "country"} {
				rule, ok := set[field]
				require.True(t, ok, "country %q missing field %q", country, field)
				assert.True(t, rule.Required)
			}
		}
	})

	t.Run("unknown country equals base set", func(t *testing.T) {
		t.Parallel()

		set := rules.ForCountry("US")
		_, hasPhone := set["phone"]
		assert.False(t, hasPhone)
		assert.Len(t, set, 4)
	})

	t.Run("phone formats per country", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			country string
			valid   string
			invalid string
		}{
			{"BR", "(11) 99999-9999", "+55 11 99999-9999"},
			{"AR", "+54 11 9999-9999", "11 9999-9999"},
			{"MX", "+52 555 123 4567", "555-123-4567"},
		}

		for _, tc := range cases {
			set := rules.ForCountry(tc.country)
			phone, ok := set["phone"]
			require.True(t, ok, "country %s", tc.country)
			assert.True(t, phone.Required)
			assert.NotEmpty(t, phone.Placeholder)
			assert.True(t, phone.Pattern.MatchString(tc.valid), "%s should accept %q", tc.country, tc.valid)
			assert.False(t, phone.Pattern.MatchString(tc.invalid), "%s should reject %q", tc.country, tc.invalid)
		}
	})

	t.Run("brazil accepts four digit prefix", func(t *testing.T) {
		t.Parallel()

		phone := rules.ForCountry("BR")["phone"]
		assert.True(t, phone.Pattern.MatchString("(11) 9999-9999"))
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	set := rules.ForCountry("AR")

	t.Run("required runs first", func(t *testing.T) {
		t.Parallel()

		v := rules.Validate(set["name"], "   ")
		require.NotNil(t, v)
		assert.Equal(t, rules.KeyRequired, v.Key)
	})

	t.Run("min length with param", func(t *testing.T) {
		t.Parallel()

		v := rules.Validate(set["name"], "A")
		require.NotNil(t, v)
		assert.Equal(t, rules.KeyMinLength, v.Key)
		assert.Equal(t, 2, v.Params["min"])
	})

	t.Run("email pattern", func(t *testing.T) {
		t.Parallel()

		v := rules.Validate(set["email"], "not-an-email")
		require.NotNil(t, v)
		assert.Equal(t, rules.KeyInvalidEmail, v.Key)

		assert.Nil(t, rules.Validate(set["email"], "ana@example.com"))
	})

	t.Run("phone pattern has its own message", func(t *testing.T) {
		t.Parallel()

		v := rules.Validate(set["phone"], "11 9999-9999")
		require.NotNil(t, v)
		assert.Equal(t, rules.KeyInvalidPhone, v.Key)

		assert.Nil(t, rules.Validate(set["phone"], "+54 11 9999-9999"))
	})

	t.Run("pattern without key falls back to generic message", func(t *testing.T) {
		t.Parallel()

		rule := rules.FieldRule{Pattern: regexp.MustCompile(`^\d+$`)}
		v := rules.Validate(rule, "abc")
		require.NotNil(t, v)
		assert.Equal(t, rules.KeyInvalidFormat, v.Key)
	})

	t.Run("optional fields skip checks when empty", func(t *testing.T) {
		t.Parallel()

		rule := rules.FieldRule{MinLength: 3, Pattern: regexp.MustCompile(`^\d+$`)}
		assert.Nil(t, rules.Validate(rule, ""))
		assert.Nil(t, rules.Validate(rule, "   "))
	})

	t.Run("address min length", func(t *testing.T) {
		t.Parallel()

		v := rules.Validate(set["address"], "Av 1")
		require.NotNil(t, v)
		assert.Equal(t, rules.KeyMinLength, v.Key)
		assert.Equal(t, 5, v.Params["min"])

		assert.Nil(t, rules.Validate(set["address"], "Av. Corrientes 1234"))
	})

	t.Run("valid values pass", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, rules.Validate(set["name"], "Ana García"))
		assert.Nil(t, rules.Validate(set["country"], "AR"))
	})
}

func TestValidateAll(t *testing.T) {
	t.Parallel()

	set := rules.ForCountry("AR")

	t.Run("missing fields validated as empty", func(t *testing.T) {
		t.Parallel()

		violations := rules.ValidateAll(set, map[string]string{"name": "Ana García"})
		assert.NotContains(t, violations, "name")
		assert.Contains(t, violations, "email")
		assert.Contains(t, violations, "address")
		assert.Contains(t, violations, "country")
		assert.Contains(t, violations, "phone")
	})

	t.Run("clean submission", func(t *testing.T) {
		t.Parallel()

		violations := rules.ValidateAll(set, map[string]string{
			"name":    "Ana García",
			"email":   "ana@example.com",
			"address": "Av. Corrientes 1234",
			"country": "AR",
			"phone":   "+54 11 9999-9999",
		})
		assert.Empty(t, violations)
	})
}
