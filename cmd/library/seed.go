package main

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"library-system/pkg/models"
	"library-system/pkg/repository"
	"library-system/pkg/valueobject"
)

var (
	testBookID   = uuid.MustParse("f7cdc58f-2caf-4b15-9727-f89dcc629b27")
	testMemberID = uuid.MustParse("83575e12-7ce0-48ee-9931-51919ff3c9ee")
)

// seedTestData inserts a fixed sample book and member and a few extra titles, leaving existing rows alone.
func seedTestData(ctx context.Context) {
	bookRepo := repository.New[models.Book](db, repository.WithLogger(logger))
	memberRepo := repository.New[models.Member](db, repository.WithLogger(logger))

	if _, err := bookRepo.GetByID(ctx, testBookID); errors.Is(err, repository.ErrNotFound) {
		book, _ := models.NewBook("978-0321125217", "The C++ Programming Language", "Bjarne Stroustrup",
			"Addison-Wesley", 2013, "Programming", 3)
		book.ID = testBookID
		if err := bookRepo.Add(ctx, book); err != nil {
			logger.Warn("failed to create test book", "error", err)
		} else {
			logger.Info("created test book", "title", book.Title)
		}
	}

	if _, err := memberRepo.GetByID(ctx, testMemberID); errors.Is(err, repository.ErrNotFound) {
		email, _ := valueobject.NewEmail("reader@library.example")
		password, _ := valueobject.NewPassword("Reader123!")
		member, err := models.NewMember("Test Reader", email, password, "+7-900-000-00-00", time.Now())
		if err != nil {
			logger.Warn("failed to build test member", "error", err)
		} else {
			member.ID = testMemberID
			if err := memberRepo.Add(ctx, member); err != nil {
				logger.Warn("failed to create test member", "error", err)
			} else {
				logger.Info("created test member", "name", member.Name)
			}
		}
	}

	catalogue := []models.Book{
		{ISBN: "978-0262033848", Title: "Introduction to Algorithms", Author: "Thomas H. Cormen", Publisher: "MIT Press", PublicationYear: 2009, Category: "Computer Science", TotalCopies: 2},
		{ISBN: "978-0134190440", Title: "The Go Programming Language", Author: "Alan Donovan", Publisher: "Addison-Wesley", PublicationYear: 2015, Category: "Programming", TotalCopies: 4},
		{ISBN: "978-0441013593", Title: "Dune", Author: "Frank Herbert", Publisher: "Ace", PublicationYear: 1965, Category: "Science Fiction", TotalCopies: 1},
	}
	for _, entry := range catalogue {
		var count int64
		if err := bookRepo.GetAllQueryable(ctx).Where("isbn = ?", entry.ISBN).Count(&count).Error; err != nil {
			logger.Warn("failed to look up book", "isbn", entry.ISBN, "error", err)
			continue
		}
		if count > 0 {
			continue
		}

		book, _ := models.NewBook(entry.ISBN, entry.Title, entry.Author, entry.Publisher, entry.PublicationYear, entry.Category, entry.TotalCopies)
		if err := bookRepo.Add(ctx, book); err != nil {
			logger.Warn("failed to create book", "title", entry.Title, "error", err)
		}
	}
	logger.Info("library test data seeded")
}
