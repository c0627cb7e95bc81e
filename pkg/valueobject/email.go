package valueobject

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
)

var ErrInvalidEmail = errors.New("invalid email address")

var emailRX = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email is an immutable, validated email address.
type Email struct {
	address string
}

func NewEmail(address string) (Email, error) {
	if !emailRX.MatchString(address) {
		return Email{}, ErrInvalidEmail
	}
	return Email{address: address}, nil
}

func (e Email) String() string {
	return e.address
}

func (e Email) Equal(other Email) bool {
	return e.address == other.address
}

func (e Email) IsZero() bool {
	return e.address == ""
}

// Value stores the address as a plain varchar column.
func (e Email) Value() (driver.Value, error) {
	return e.address, nil
}

// Scan re-validates the stored address.
func (e *Email) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case nil:
		*e = Email{}
		return nil
	default:
		return fmt.Errorf("scan email: unsupported type %T", src)
	}

	if s == "" {
		*e = Email{}
		return nil
	}

	parsed, err := NewEmail(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
