// Package validation provides input validation for user record fields.
package validation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Field validation errors
var (
	ErrInvalidUTF8      = fmt.Errorf("ErrInvalidUTF8")
	ErrControlCharacter = fmt.Errorf("ErrControlCharacter")
	ErrFieldTooLong     = fmt.Errorf("ErrFieldTooLong")
	ErrInvalidEmail     = fmt.Errorf("ErrInvalidEmail")
)

const maxFieldLength = 255

// Blocked Unicode categories for record fields
var blockedCategories = []*unicode.RangeTable{
	unicode.Cc, // Control characters
	unicode.Cf, // Format characters (zero-width, etc.)
	unicode.Cs, // Surrogate characters
	unicode.Co, // Private use characters
}

// SanitizeField normalizes a free-text field (NFKC) and rejects input that
// carries control or otherwise non-printable characters. Returns the
// normalized value.
func SanitizeField(input string) (string, error) {
	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	normalized := norm.NFKC.String(strings.TrimSpace(input))

	if utf8.RuneCountInString(normalized) > maxFieldLength {
		return "", ErrFieldTooLong
	}

	for _, r := range normalized {
		if r != ' ' && unicode.IsOneOf(blockedCategories, r) {
			return "", ErrControlCharacter
		}
	}

	return normalized, nil
}

// ValidateEmail sanitizes and shape-checks an email address. The check is
// deliberately minimal: one '@' with a non-empty local part and a dotted
// domain. Full RFC 5322 parsing buys nothing for a mock backend.
func ValidateEmail(input string) (string, error) {
	email, err := SanitizeField(input)
	if err != nil {
		return "", err
	}

	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return "", ErrInvalidEmail
	}

	domain := email[at+1:]
	if strings.Contains(email[at+1:], "@") || !strings.Contains(domain, ".") {
		return "", ErrInvalidEmail
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return "", ErrInvalidEmail
	}

	return email, nil
}
