package valueobject

import (
	"errors"
	"strings"
	"unicode"
)

const (
	minPasswordLength = 8
	passwordSymbols   = "@$!%*?&"
)

var ErrWeakPassword = errors.New("invalid password: must have at least 8 characters, including an uppercase letter, a lowercase letter, a digit and one of " + passwordSymbols)

// Password is an immutable plain-text password that passed the strength rules.
// It is meant to be hashed right away and never persisted as is.
type Password struct {
	value string
}

func NewPassword(value string) (Password, error) {
	if !isStrong(value) {
		return Password{}, ErrWeakPassword
	}
	return Password{value: value}, nil
}

func (p Password) String() string {
	return p.value
}

func (p Password) Equal(other Password) bool {
	return p.value == other.value
}

func isStrong(value string) bool {
	if len(value) < minPasswordLength {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, r := range value {
		switch {
		case r > unicode.MaxASCII:
			return false
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		default:
			return false
		}
	}

	return upper && lower && digit && symbol
}
