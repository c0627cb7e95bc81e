package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-system/pkg/dto"
)

func borrowBook(c *gin.Context) {
	changeBookCopies(c, books.BorrowCopy)
}

func returnBook(c *gin.Context) {
	changeBookCopies(c, books.ReturnCopy)
}

func changeBookCopies(c *gin.Context, op func(context.Context, uuid.UUID) (dto.BookDTO, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	book, err := op(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	book.SetLinks(resourceLinks(c, "books", "book", book.ID))
	c.JSON(http.StatusOK, book)
}
