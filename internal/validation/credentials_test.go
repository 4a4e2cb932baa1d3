package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	valid := []string{"abc", "alice", "user_name", "a1-b2", strings.Repeat("x", 80)}
	for _, u := range valid {
		assert.NoError(t, ValidateUsername(u), "username %q", u)
	}

	invalid := []string{"", "ab", strings.Repeat("x", 81), "has space", "_leading", "-leading", "emoji😀"}
	for _, u := range invalid {
		assert.Error(t, ValidateUsername(u), "username %q", u)
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateEmail("alice@example.com"))
	assert.NoError(t, ValidateEmail("a.b+tag@sub.example.org"))

	for _, e := range []string{"", "nope", "@example.com", "a@", "Alice <alice@example.com>"} {
		assert.Error(t, ValidateEmail(e), "email %q", e)
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePassword("password1"))
	assert.NoError(t, ValidatePassword("aB3"+strings.Repeat("x", 69)))

	tests := []struct {
		name     string
		password string
	}{
		{"too short", "pass1"},
		{"too long", "a1" + strings.Repeat("x", 71)},
		{"no digit", "passwords"},
		{"no letter", "12345678"},
		{"leading space", " password1"},
		{"trailing space", "password1 "},
	}
	for _, tc := range tests {
		assert.Error(t, ValidatePassword(tc.password), tc.name)
	}
}
