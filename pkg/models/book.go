package models

import (
	"github.com/google/uuid"
)

type BookStatus int

const (
	BookAvailable BookStatus = iota
	BookBorrowed
	BookMaintenance
	BookLost
)

func (s BookStatus) String() string {
	switch s {
	case BookAvailable:
		return "Available"
	case BookBorrowed:
		return "Borrowed"
	case BookMaintenance:
		return "Maintenance"
	case BookLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

type Book struct {
	ID              uuid.UUID  `gorm:"column:book_id;type:uuid;primaryKey"`
	ISBN            string     `gorm:"column:isbn;size:20;not null"`
	Title           string     `gorm:"size:200;not null"`
	Author          string     `gorm:"size:100;not null"`
	Publisher       string     `gorm:"size:100;not null"`
	PublicationYear int        `gorm:"not null"`
	Category        string     `gorm:"size:50;not null"`
	TotalCopies     int        `gorm:"not null;check:chk_books_total_copies,total_copies >= 0"`
	AvailableCopies int        `gorm:"not null;check:chk_books_available_copies,available_copies >= 0 AND available_copies <= total_copies"`
	Status          BookStatus `gorm:"not null;default:0"`
}

func (Book) TableName() string { return "books" }

func (b Book) EntityID() uuid.UUID { return b.ID }

// NewBook registers a title with all of its copies on the shelf.
func NewBook(isbn, title, author, publisher string, publicationYear int, category string, totalCopies int) (*Book, error) {
	if totalCopies < 0 {
		return nil, ErrInvalidCopies
	}

	return &Book{
		ID:              uuid.New(),
		ISBN:            isbn,
		Title:           title,
		Author:          author,
		Publisher:       publisher,
		PublicationYear: publicationYear,
		Category:        category,
		TotalCopies:     totalCopies,
		AvailableCopies: totalCopies,
		Status:          BookAvailable,
	}, nil
}

func (b *Book) IsAvailable() bool {
	return b.AvailableCopies > 0 && b.Status == BookAvailable
}

func (b *Book) BorrowCopy() error {
	if b.AvailableCopies <= 0 {
		return ErrNoCopiesAvailable
	}

	b.AvailableCopies--
	if b.AvailableCopies == 0 {
		b.Status = BookBorrowed
	}
	return nil
}

func (b *Book) ReturnCopy() error {
	if b.AvailableCopies >= b.TotalCopies {
		return ErrAllCopiesReturned
	}

	b.AvailableCopies++
	b.Status = BookAvailable
	return nil
}

// NormalizeStatus keeps Available and Borrowed in line with the copies on the shelf.
// Maintenance and Lost are left as set.
func (b *Book) NormalizeStatus() {
	switch {
	case b.Status == BookAvailable && b.AvailableCopies == 0 && b.TotalCopies > 0:
		b.Status = BookBorrowed
	case b.Status == BookBorrowed && b.AvailableCopies > 0:
		b.Status = BookAvailable
	}
}

func (b *Book) Validate() error {
	if b.TotalCopies < 0 || b.AvailableCopies < 0 || b.AvailableCopies > b.TotalCopies {
		return ErrInvalidCopies
	}
	return nil
}
