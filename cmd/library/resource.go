package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-system/pkg/dto"
	"library-system/pkg/pagination"
)

type crudService[D any] interface {
	Get(ctx context.Context, id uuid.UUID) (D, error)
	Paged(ctx context.Context, pageNumber, pageSize int) (pagination.PagedList[D], error)
	Create(ctx context.Context, in D) (D, error)
	Update(ctx context.Context, id uuid.UUID, in D) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type linkedDTO[D any] interface {
	*D
	ResourceID() uuid.UUID
	SetLinks(links []dto.Link)
}

// resource serves the five collection endpoints shared by every entity.
type resource[D any, P linkedDTO[D]] struct {
	collection string
	entity     string
	svc        crudService[D]
}

func (r resource[D, P]) register(group *gin.RouterGroup) {
	group.GET("", r.list)
	group.GET("/:id", r.get)
	group.POST("", r.create)
	group.PUT("/:id", r.update)
	group.DELETE("/:id", r.delete)
}

func (r resource[D, P]) withLinks(c *gin.Context, item *D) {
	P(item).SetLinks(resourceLinks(c, r.collection, r.entity, P(item).ResourceID()))
}

func (r resource[D, P]) list(c *gin.Context) {
	params, err := parsePagination(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	page, err := r.svc.Paged(c.Request.Context(), params.PageNumber, params.PageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	for i := range page.Items {
		r.withLinks(c, &page.Items[i])
	}

	if err := writePaginationHeader(c, page.Metadata()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page.Items)
}

func (r resource[D, P]) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := r.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	r.withLinks(c, &item)
	c.JSON(http.StatusOK, item)
}

func (r resource[D, P]) create(c *gin.Context) {
	var in D
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}

	item, err := r.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	r.withLinks(c, &item)
	c.Header("Location", resourceURL(c, r.collection, P(&item).ResourceID()))
	c.JSON(http.StatusCreated, item)
}

func (r resource[D, P]) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in D
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}

	if err := r.svc.Update(c.Request.Context(), id, in); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r resource[D, P]) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := r.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
