package main

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-system/pkg/dto"
	"library-system/pkg/models"
)

func returnLoan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	loan, err := loans.Return(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	loan.SetLinks(resourceLinks(c, "loans", "loan", loan.ID))
	c.JSON(http.StatusOK, loan)
}

// renewLoan extends the due date by the requested days, or the default loan period when days is absent.
func renewLoan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.RenewRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err)
		return
	}
	days := models.DefaultLoanDays
	if req.Days != nil {
		days = *req.Days
	}

	loan, err := loans.Renew(c.Request.Context(), id, days)
	if err != nil {
		respondError(c, err)
		return
	}
	loan.SetLinks(resourceLinks(c, "loans", "loan", loan.ID))
	c.JSON(http.StatusOK, loan)
}
