package models

import "errors"

var (
	ErrInvalidCopies       = errors.New("available copies must be between 0 and total copies")
	ErrNoCopiesAvailable   = errors.New("no copies available for loan")
	ErrAllCopiesReturned   = errors.New("all copies have already been returned")
	ErrEmptyBookID         = errors.New("book id must not be empty")
	ErrEmptyMemberID       = errors.New("member id must not be empty")
	ErrInvalidLoanDates    = errors.New("loan date and due date must be set")
	ErrDueBeforeLoanDate   = errors.New("due date must not be before the loan date")
	ErrLateFeeOnOpenLoan   = errors.New("late fee can only be set on a returned loan")
	ErrLoanAlreadyReturned = errors.New("loan has already been returned")
	ErrLoanNotActive       = errors.New("only active loans can be renewed")
	ErrLoanOverdue         = errors.New("overdue loans cannot be renewed")
	ErrInvalidRenewal      = errors.New("renewal must extend the due date by at least one day")
	ErrEmptyMemberName     = errors.New("member name must not be empty")
)
