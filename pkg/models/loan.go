package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LoanStatus int

const (
	LoanActive LoanStatus = iota
	LoanReturned
	LoanLate
	LoanCancelled
)

func (s LoanStatus) String() string {
	switch s {
	case LoanActive:
		return "Active"
	case LoanReturned:
		return "Returned"
	case LoanLate:
		return "Late"
	case LoanCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

const (
	DefaultLoanDays = 14
	day             = 24 * time.Hour
)

// LateFeePerDay is charged for every full day a loan is returned after its due date.
var LateFeePerDay = decimal.RequireFromString("2.00")

type Loan struct {
	ID         uuid.UUID        `gorm:"column:loan_id;type:uuid;primaryKey"`
	BookID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	MemberID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	LoanDate   time.Time        `gorm:"not null"`
	DueDate    time.Time        `gorm:"not null"`
	ReturnDate *time.Time
	Status     LoanStatus       `gorm:"not null;default:0"`
	LateFee    *decimal.Decimal `gorm:"type:decimal(18,2)"`
	Notes      string           `gorm:"size:500"`
}

func (Loan) TableName() string { return "loans" }

func (l Loan) EntityID() uuid.UUID { return l.ID }

func NewLoan(bookID, memberID uuid.UUID, loanDays int, now time.Time) (*Loan, error) {
	if bookID == uuid.Nil {
		return nil, ErrEmptyBookID
	}
	if memberID == uuid.Nil {
		return nil, ErrEmptyMemberID
	}
	if loanDays <= 0 {
		loanDays = DefaultLoanDays
	}

	now = now.UTC()
	return &Loan{
		ID:       uuid.New(),
		BookID:   bookID,
		MemberID: memberID,
		LoanDate: now,
		DueDate:  now.AddDate(0, 0, loanDays),
		Status:   LoanActive,
	}, nil
}

// Return closes the loan and charges the late fee when it comes back after the due date.
func (l *Loan) Return(now time.Time) error {
	if l.Status == LoanReturned {
		return ErrLoanAlreadyReturned
	}

	returned := now.UTC()
	l.ReturnDate = &returned
	l.Status = LoanReturned

	if l.IsLate(now) {
		fee := l.CalculateLateFee(now)
		l.LateFee = &fee
	}
	return nil
}

func (l *Loan) Renew(extraDays int, now time.Time) error {
	if l.Status != LoanActive {
		return ErrLoanNotActive
	}
	if l.IsLate(now) {
		return ErrLoanOverdue
	}
	if extraDays <= 0 {
		return ErrInvalidRenewal
	}

	l.DueDate = l.DueDate.AddDate(0, 0, extraDays)
	return nil
}

func (l *Loan) IsLate(now time.Time) bool {
	return l.compareDate(now).After(l.DueDate)
}

// DaysLate counts whole days past the due date; a partial day is not charged.
func (l *Loan) DaysLate(now time.Time) int {
	if !l.IsLate(now) {
		return 0
	}
	return int(l.compareDate(now).Sub(l.DueDate) / day)
}

func (l *Loan) CalculateLateFee(now time.Time) decimal.Decimal {
	return LateFeePerDay.Mul(decimal.NewFromInt(int64(l.DaysLate(now))))
}

func (l *Loan) Validate() error {
	if l.BookID == uuid.Nil {
		return ErrEmptyBookID
	}
	if l.MemberID == uuid.Nil {
		return ErrEmptyMemberID
	}
	if l.LoanDate.IsZero() || l.DueDate.IsZero() {
		return ErrInvalidLoanDates
	}
	if l.DueDate.Before(l.LoanDate) {
		return ErrDueBeforeLoanDate
	}
	if l.LateFee != nil && l.Status != LoanReturned {
		return ErrLateFeeOnOpenLoan
	}
	return nil
}

func (l *Loan) compareDate(now time.Time) time.Time {
	if l.ReturnDate != nil {
		return *l.ReturnDate
	}
	return now
}
