package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		address string
		valid   bool
	}{
		{name: "short address", address: "a@b.co", valid: true},
		{name: "subdomain", address: "reader@mail.library.org", valid: true},
		{name: "no at sign", address: "not-an-email", valid: false},
		{name: "no tld", address: "a@b", valid: false},
		{name: "whitespace in local part", address: "a b@c.de", valid: false},
		{name: "empty", address: "", valid: false},
		{name: "two at signs", address: "a@b@c.de", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.address)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.address, email.String())
			} else {
				assert.ErrorIs(t, err, ErrInvalidEmail)
				assert.True(t, email.IsZero())
			}
		})
	}
}

func TestNewPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "all classes present", password: "Abc123!@", valid: true},
		{name: "long", password: "CorrectHorse9Battery&", valid: true},
		{name: "too weak", password: "weak", valid: false},
		{name: "no symbol", password: "Abcdefg1", valid: false},
		{name: "no digit", password: "Abcdefg!", valid: false},
		{name: "no uppercase", password: "abcdef1!", valid: false},
		{name: "no lowercase", password: "ABCDEF1!", valid: false},
		{name: "seven chars", password: "Abc12!@", valid: false},
		{name: "symbol outside allowed set", password: "Abc123#x", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := NewPassword(tt.password)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.password, password.String())
			} else {
				assert.ErrorIs(t, err, ErrWeakPassword)
			}
		})
	}
}

func TestEmailScan(t *testing.T) {
	var email Email
	require.NoError(t, email.Scan([]byte("a@b.co")))
	assert.Equal(t, "a@b.co", email.String())

	other, err := NewEmail("a@b.co")
	require.NoError(t, err)
	assert.True(t, email.Equal(other))

	assert.ErrorIs(t, email.Scan("broken"), ErrInvalidEmail)
	assert.Error(t, email.Scan(42))

	value, err := email.Value()
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", value)
}
