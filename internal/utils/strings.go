package utils

import (
	"regexp"
	"strings"
)

// emailRegex is a simple local-part@domain.tld check.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail checks if the given string is a valid email address format.
func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// MaskToken keeps the first four characters of a token and masks the rest.
// Short tokens are masked entirely.
func MaskToken(token string) string {
	const visible = 4
	if len(token) <= visible*2 {
		return strings.Repeat("*", len(token))
	}
	return token[:visible] + strings.Repeat("*", len(token)-visible)
}
