package entity

import "strings"

const (
	// MobileDigits is the number of digits entered after CountryPrefix.
	MobileDigits = 10
	// CountryPrefix is shown in front of every mobile field and never sent.
	CountryPrefix = "+92"
)

// SanitizeMobile applies the input filter of the mobile fields: digits only, at most MobileDigits.
func SanitizeMobile(input string) string {
	var b strings.Builder
	b.Grow(MobileDigits)

	for _, r := range input {
		if b.Len() == MobileDigits {
			break
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// IsCompleteMobile reports whether m is exactly MobileDigits digits.
func IsCompleteMobile(m string) bool {
	if len(m) != MobileDigits {
		return false
	}
	for i := 0; i < len(m); i++ {
		if m[i] < '0' || m[i] > '9' {
			return false
		}
	}

	return true
}
