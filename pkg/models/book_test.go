package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBook(t *testing.T, copies int) *Book {
	t.Helper()
	book, err := NewBook("9780132350884", "Clean Code", "Robert C. Martin", "Prentice Hall", 2008, "Software", copies)
	require.NoError(t, err)
	return book
}

func TestNewBook(t *testing.T) {
	book := newTestBook(t, 3)

	assert.NotEqual(t, uuid.Nil, book.ID)
	assert.Equal(t, 3, book.TotalCopies)
	assert.Equal(t, 3, book.AvailableCopies)
	assert.Equal(t, BookAvailable, book.Status)
	assert.True(t, book.IsAvailable())
	assert.NoError(t, book.Validate())
}

func TestNewBookRejectsNegativeCopies(t *testing.T) {
	book, err := NewBook("1", "T", "A", "P", 2000, "C", -1)
	assert.Nil(t, book)
	assert.ErrorIs(t, err, ErrInvalidCopies)
}

func TestBorrowCopyUntilEmpty(t *testing.T) {
	book := newTestBook(t, 2)

	require.NoError(t, book.BorrowCopy())
	assert.Equal(t, 1, book.AvailableCopies)
	assert.Equal(t, BookAvailable, book.Status)

	require.NoError(t, book.BorrowCopy())
	assert.Equal(t, 0, book.AvailableCopies)
	assert.Equal(t, BookBorrowed, book.Status)
	assert.False(t, book.IsAvailable())

	assert.ErrorIs(t, book.BorrowCopy(), ErrNoCopiesAvailable)
	assert.Equal(t, 0, book.AvailableCopies)
}

func TestReturnCopy(t *testing.T) {
	book := newTestBook(t, 1)

	assert.ErrorIs(t, book.ReturnCopy(), ErrAllCopiesReturned)

	require.NoError(t, book.BorrowCopy())
	require.NoError(t, book.ReturnCopy())
	assert.Equal(t, 1, book.AvailableCopies)
	assert.Equal(t, BookAvailable, book.Status)

	assert.ErrorIs(t, book.ReturnCopy(), ErrAllCopiesReturned)
}

func TestBookValidate(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		available int
		wantErr   bool
	}{
		{name: "all on shelf", total: 2, available: 2},
		{name: "none on shelf", total: 2, available: 0},
		{name: "more available than owned", total: 1, available: 2, wantErr: true},
		{name: "negative available", total: 1, available: -1, wantErr: true},
		{name: "negative total", total: -1, available: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := Book{TotalCopies: tt.total, AvailableCopies: tt.available}
			if tt.wantErr {
				assert.ErrorIs(t, book.Validate(), ErrInvalidCopies)
			} else {
				assert.NoError(t, book.Validate())
			}
		})
	}
}

func TestBookStatusString(t *testing.T) {
	assert.Equal(t, "Available", BookAvailable.String())
	assert.Equal(t, "Borrowed", BookBorrowed.String())
	assert.Equal(t, "Maintenance", BookMaintenance.String())
	assert.Equal(t, "Lost", BookLost.String())
	assert.Equal(t, "Unknown", BookStatus(42).String())
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		available int
		status    BookStatus
		want      BookStatus
	}{
		{name: "available with empty shelf", total: 2, available: 0, status: BookAvailable, want: BookBorrowed},
		{name: "borrowed with copies back", total: 2, available: 1, status: BookBorrowed, want: BookAvailable},
		{name: "consistent available", total: 2, available: 2, status: BookAvailable, want: BookAvailable},
		{name: "consistent borrowed", total: 2, available: 0, status: BookBorrowed, want: BookBorrowed},
		{name: "title without copies", total: 0, available: 0, status: BookAvailable, want: BookAvailable},
		{name: "maintenance untouched", total: 2, available: 0, status: BookMaintenance, want: BookMaintenance},
		{name: "lost untouched", total: 2, available: 2, status: BookLost, want: BookLost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := Book{TotalCopies: tt.total, AvailableCopies: tt.available, Status: tt.status}
			book.NormalizeStatus()
			assert.Equal(t, tt.want, book.Status)
		})
	}
}
