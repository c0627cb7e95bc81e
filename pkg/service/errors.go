package service

import (
	"errors"
	"fmt"

	"library-system/pkg/models"
	"library-system/pkg/repository"
	"library-system/pkg/valueobject"
)

var (
	ErrNotFound   = repository.ErrNotFound
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

var validationErrors = []error{
	models.ErrInvalidCopies,
	models.ErrEmptyBookID,
	models.ErrEmptyMemberID,
	models.ErrEmptyMemberName,
	models.ErrInvalidLoanDates,
	models.ErrDueBeforeLoanDate,
	models.ErrLateFeeOnOpenLoan,
	models.ErrInvalidRenewal,
	valueobject.ErrInvalidEmail,
	valueobject.ErrWeakPassword,
}

var conflictErrors = []error{
	models.ErrNoCopiesAvailable,
	models.ErrAllCopiesReturned,
	models.ErrLoanAlreadyReturned,
	models.ErrLoanNotActive,
	models.ErrLoanOverdue,
	repository.ErrConstraintViolation,
}

// classify tags domain and storage errors with the service sentinel callers branch on.
func classify(err error) error {
	if err == nil || errors.Is(err, ErrNotFound) {
		return err
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}
	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			return fmt.Errorf("%w: %w", ErrConflict, err)
		}
	}
	return err
}

func idMismatch(path, body fmt.Stringer) error {
	return fmt.Errorf("%w: id %s does not match body id %s", ErrValidation, path, body)
}
