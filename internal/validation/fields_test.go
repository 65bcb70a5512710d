package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeField_TrimsAndNormalizes(t *testing.T) {
	out, err := SanitizeField("  Jane Doe  ")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", out)

	// NFKC folds compatibility characters (fullwidth digits become ASCII)
	out, err = SanitizeField("User １")
	require.NoError(t, err)
	assert.Equal(t, "User 1", out)
}

func TestSanitizeField_RejectsControlCharacters(t *testing.T) {
	for _, input := range []string{"Jane\x00Doe", "Jane\x1bDoe", "Jane\u200bDoe"} {
		_, err := SanitizeField(input)
		assert.ErrorIs(t, err, ErrControlCharacter, "input %q", input)
	}
}

func TestSanitizeField_RejectsOverlongInput(t *testing.T) {
	_, err := SanitizeField(strings.Repeat("a", 256))
	assert.ErrorIs(t, err, ErrFieldTooLong)
}

func TestSanitizeField_RejectsInvalidUTF8(t *testing.T) {
	_, err := SanitizeField(string([]byte{0xff, 0xfe}))
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"user1@example.com",
		"jane.doe@mail.example.org",
	}
	for _, email := range valid {
		out, err := ValidateEmail(email)
		require.NoError(t, err, "email %q", email)
		assert.Equal(t, email, out)
	}

	invalid := []string{
		"",
		"no-at-sign",
		"@example.com",
		"user@",
		"user@nodot",
		"user@@example.com",
		"user@.example.com",
		"user@example.com.",
	}
	for _, email := range invalid {
		_, err := ValidateEmail(email)
		assert.Error(t, err, "email %q", email)
	}
}
