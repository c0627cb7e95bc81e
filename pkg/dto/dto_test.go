package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotNilValidation(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, RegisterValidations(v))

	tests := []struct {
		name    string
		loan    LoanDTO
		wantErr bool
	}{
		{name: "both ids set", loan: LoanDTO{BookID: uuid.New(), MemberID: uuid.New()}},
		{name: "missing book", loan: LoanDTO{MemberID: uuid.New()}, wantErr: true},
		{name: "missing member", loan: LoanDTO{BookID: uuid.New()}, wantErr: true},
		{name: "negative loan days", loan: LoanDTO{BookID: uuid.New(), MemberID: uuid.New(), LoanDays: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.loan)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
