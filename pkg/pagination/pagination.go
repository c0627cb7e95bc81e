package pagination

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// HeaderName carries Metadata on list responses.
const HeaderName = "X-Pagination"

// PagedList is one page of a query result together with the totals of the whole result.
type PagedList[T any] struct {
	Items       []T
	TotalCount  int64
	PageSize    int
	CurrentPage int
	TotalPages  int
	HasNext     bool
	HasPrevious bool
}

type Metadata struct {
	TotalCount  int64 `json:"totalCount"`
	PageSize    int   `json:"pageSize"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	HasNext     bool  `json:"hasNext"`
	HasPrevious bool  `json:"hasPrevious"`
}

func NewPagedList[T any](items []T, totalCount int64, pageNumber, pageSize int) PagedList[T] {
	pageNumber, pageSize = Clamp(pageNumber, pageSize)
	if items == nil {
		items = make([]T, 0)
	}

	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	return PagedList[T]{
		Items:       items,
		TotalCount:  totalCount,
		PageSize:    pageSize,
		CurrentPage: pageNumber,
		TotalPages:  totalPages,
		HasNext:     pageNumber < totalPages,
		HasPrevious: pageNumber > 1,
	}
}

// Clamp brings page and size into range: page >= 1, 1 <= size <= MaxPageSize.
func Clamp(pageNumber, pageSize int) (int, int) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	switch {
	case pageSize < 1:
		pageSize = DefaultPageSize
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}
	return pageNumber, pageSize
}

// Paginate counts the rows matched by query and loads the requested page of them.
// The query must have its model set.
func Paginate[T any](ctx context.Context, query *gorm.DB, pageNumber, pageSize int) (PagedList[T], error) {
	pageNumber, pageSize = Clamp(pageNumber, pageSize)
	query = query.WithContext(ctx).Session(&gorm.Session{})

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return PagedList[T]{}, fmt.Errorf("count rows: %w", err)
	}

	items := make([]T, 0, pageSize)
	err := query.
		Offset((pageNumber - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return PagedList[T]{}, fmt.Errorf("load page %d: %w", pageNumber, err)
	}

	return NewPagedList(items, totalCount, pageNumber, pageSize), nil
}

// Map converts the items of a page and keeps its metadata.
func Map[T, U any](list PagedList[T], fn func(T) U) PagedList[U] {
	items := make([]U, len(list.Items))
	for i, item := range list.Items {
		items[i] = fn(item)
	}
	return PagedList[U]{
		Items:       items,
		TotalCount:  list.TotalCount,
		PageSize:    list.PageSize,
		CurrentPage: list.CurrentPage,
		TotalPages:  list.TotalPages,
		HasNext:     list.HasNext,
		HasPrevious: list.HasPrevious,
	}
}

func (p PagedList[T]) Metadata() Metadata {
	return Metadata{
		TotalCount:  p.TotalCount,
		PageSize:    p.PageSize,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		HasNext:     p.HasNext,
		HasPrevious: p.HasPrevious,
	}
}

// HeaderValue encodes the metadata as the X-Pagination header value.
func (m Metadata) HeaderValue() (string, error) {
	value, err := jsoniter.ConfigFastest.MarshalToString(m)
	if err != nil {
		return "", fmt.Errorf("encode pagination metadata: %w", err)
	}
	return value, nil
}
