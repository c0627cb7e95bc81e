package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"library-system/pkg/valueobject"
)

type Member struct {
	ID               uuid.UUID         `gorm:"column:member_id;type:uuid;primaryKey"`
	Name             string            `gorm:"size:100;not null"`
	Email            valueobject.Email `gorm:"type:varchar(100);not null"`
	PasswordHash     string            `gorm:"column:password;size:100;not null"`
	Phone            string            `gorm:"size:20;not null"`
	RegistrationDate time.Time         `gorm:"not null"`
	IsActive         bool              `gorm:"not null"`
}

func (Member) TableName() string { return "members" }

func (m Member) EntityID() uuid.UUID { return m.ID }

func NewMember(name string, email valueobject.Email, password valueobject.Password, phone string, now time.Time) (*Member, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyMemberName
	}

	m := &Member{
		ID:               uuid.New(),
		Name:             name,
		Email:            email,
		Phone:            phone,
		RegistrationDate: now.UTC(),
		IsActive:         true,
	}
	if err := m.UpdatePassword(password); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Member) UpdateEmail(email valueobject.Email) {
	m.Email = email
}

// UpdatePassword replaces the stored hash.
func (m *Member) UpdatePassword(password valueobject.Password) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password.String()), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	m.PasswordHash = string(hash)
	return nil
}

func (m *Member) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(plain)) == nil
}

func (m *Member) Activate()   { m.IsActive = true }
func (m *Member) Deactivate() { m.IsActive = false }

func (m *Member) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyMemberName
	}
	if m.Email.IsZero() {
		return valueobject.ErrInvalidEmail
	}
	return nil
}
