package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-system/pkg/dto"
	"library-system/pkg/pagination"
	"library-system/pkg/service"
)

var (
	errInvalidID         = errors.New("id must be a valid UUID")
	errInvalidPageNumber = errors.New("pageNumber must be a positive integer")
	errInvalidPageSize   = errors.New("pageSize must be a positive integer")
)

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"message": err.Error(),
		})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, errInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads pageNumber and pageSize, capping the size at the configured maximum.
func parsePagination(c *gin.Context) (dto.PaginationParams, error) {
	page, err := strconv.Atoi(c.DefaultQuery("pageNumber", "1"))
	if err != nil || page < 1 {
		return dto.PaginationParams{}, errInvalidPageNumber
	}

	size, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(cfg.Pagination.DefaultPageSize)))
	if err != nil || size < 1 {
		return dto.PaginationParams{}, errInvalidPageSize
	}
	if cfg.Pagination.MaxPageSize > 0 && size > cfg.Pagination.MaxPageSize {
		size = cfg.Pagination.MaxPageSize
	}

	return dto.PaginationParams{PageNumber: page, PageSize: size}, nil
}

func writePaginationHeader(c *gin.Context, meta pagination.Metadata) error {
	value, err := meta.HeaderValue()
	if err != nil {
		return err
	}
	c.Header(pagination.HeaderName, value)
	return nil
}

func baseURL(c *gin.Context) string {
	if cfg.Server.BaseURL != "" {
		return strings.TrimRight(cfg.Server.BaseURL, "/")
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}

func resourceURL(c *gin.Context, collection string, id uuid.UUID) string {
	return fmt.Sprintf("%s/api/%s/%s", baseURL(c), collection, id)
}

func resourceLinks(c *gin.Context, collection, entity string, id uuid.UUID) []dto.Link {
	href := resourceURL(c, collection, id)
	return []dto.Link{
		{Href: href, Rel: "self", Method: http.MethodGet},
		{Href: href, Rel: "update_" + entity, Method: http.MethodPut},
		{Href: href, Rel: "delete_" + entity, Method: http.MethodDelete},
	}
}
