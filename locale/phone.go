package locale

import "strings"

// FormatPhoneNumber formats a raw phone number using the locale's national
// conventions. Input that does not match the country's expected digit count
// is returned unchanged.
func FormatPhoneNumber(phone string, loc Locale) string {
	digits := digitsOnly(phone)

	switch loc.Country {
	case "BR":
		if len(digits) == 11 {
			return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
		}
	case "AR":
		if len(digits) >= 10 {
			return "+54 " + digits[:2] + " " + digits[2:6] + "-" + digits[6:]
		}
	case "MX":
		if len(digits) == 10 {
			return "+52 " + digits[:3] + " " + digits[3:6] + " " + digits[6:]
		}
	}

	return phone
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
