package utils

import (
	"errors"
	"strings"
	"unicode"
)

var ErrInvalidMobile = errors.New("mobile number must be 7-15 digits")

// cleanMobile strips spaces, dashes and parentheses, keeping a leading '+'.
func cleanMobile(mobile string) string {
	mobile = strings.TrimSpace(mobile)
	var b strings.Builder
	for i, r := range mobile {
		if r == '+' && i == 0 {
			b.WriteRune(r)
			continue
		}
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateMobile checks that the number contains 7 to 15 digits after
// cleanup and returns the cleaned form.
func ValidateMobile(mobile string) (string, error) {
	cleaned := cleanMobile(mobile)
	digits := strings.TrimPrefix(cleaned, "+")
	if len(digits) < 7 || len(digits) > 15 {
		return "", ErrInvalidMobile
	}
	for _, r := range digits {
		if !unicode.IsDigit(r) {
			return "", ErrInvalidMobile
		}
	}
	return cleaned, nil
}

// NormalizePhone prepends the default country code when the number has no
// leading '+', matching the single international-dialing convention used by
// the WhatsApp channel.
func NormalizePhone(mobile, defaultCountryCode string) string {
	cleaned := cleanMobile(mobile)
	if strings.HasPrefix(cleaned, "+") {
		return cleaned
	}
	return defaultCountryCode + cleaned
}
