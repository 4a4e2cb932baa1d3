// Package validation contains input validation rules for user-supplied values.
package validation

import (
	"errors"
	"net/mail"
	"strings"
	"unicode"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 80
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt input limit
)

// ValidateUsername checks length and allowed characters (letters, digits,
// underscore, hyphen; must start with a letter or digit).
func ValidateUsername(username string) error {
	if len(username) < minUsernameLen {
		return errors.New("username must be at least 3 characters")
	}
	if len(username) > maxUsernameLen {
		return errors.New("username must be at most 80 characters")
	}
	for i, r := range username {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
		case (r == '_' || r == '-') && i > 0:
		default:
			return errors.New("username may only contain letters, digits, underscores and hyphens")
		}
	}
	return nil
}

// ValidateEmail checks that the address parses per RFC 5322.
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errors.New("invalid email address")
	}
	return nil
}

// ValidatePassword enforces minimum strength: length bounds and at least one
// letter and one digit.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return errors.New("password must be at least 8 characters")
	}
	if len(password) > maxPasswordLen {
		return errors.New("password must be at most 72 characters")
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return errors.New("password must contain at least one letter and one digit")
	}
	if strings.TrimSpace(password) != password {
		return errors.New("password must not start or end with whitespace")
	}
	return nil
}
