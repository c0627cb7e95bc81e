package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"library-system/pkg/dto"
	"library-system/pkg/models"
	"library-system/pkg/pagination"
	"library-system/pkg/repository"
)

type BookService struct {
	repo *repository.Repository[models.Book]
}

func NewBookService(repo *repository.Repository[models.Book]) *BookService {
	return &BookService{repo: repo}
}

func (s *BookService) List(ctx context.Context) ([]dto.BookDTO, error) {
	books, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.BookDTO, len(books))
	for i, book := range books {
		items[i] = toBookDTO(book)
	}
	return items, nil
}

func (s *BookService) Get(ctx context.Context, id uuid.UUID) (dto.BookDTO, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.BookDTO{}, err
	}
	return toBookDTO(*book), nil
}

func (s *BookService) Paged(ctx context.Context, pageNumber, pageSize int) (pagination.PagedList[dto.BookDTO], error) {
	query := s.repo.GetAllQueryable(ctx).Order(clause.OrderByColumn{Column: clause.PrimaryColumn})
	page, err := pagination.Paginate[models.Book](ctx, query, pageNumber, pageSize)
	if err != nil {
		return pagination.PagedList[dto.BookDTO]{}, err
	}
	return pagination.Map(page, toBookDTO), nil
}

func (s *BookService) Create(ctx context.Context, in dto.BookDTO) (dto.BookDTO, error) {
	book, err := models.NewBook(in.ISBN, in.Title, in.Author, in.Publisher, in.PublicationYear, in.Category, in.TotalCopies)
	if err != nil {
		return dto.BookDTO{}, classify(err)
	}
	if err := s.repo.Add(ctx, book); err != nil {
		return dto.BookDTO{}, classify(err)
	}
	return toBookDTO(*book), nil
}

// Update overwrites every field of the stored book with the body.
func (s *BookService) Update(ctx context.Context, id uuid.UUID, in dto.BookDTO) error {
	if in.ID != id {
		return idMismatch(id, in.ID)
	}

	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	book.ISBN = in.ISBN
	book.Title = in.Title
	book.Author = in.Author
	book.Publisher = in.Publisher
	book.PublicationYear = in.PublicationYear
	book.Category = in.Category
	book.TotalCopies = in.TotalCopies
	book.AvailableCopies = in.AvailableCopies
	book.Status = models.BookStatus(in.Status)
	book.NormalizeStatus()
	if err := book.Validate(); err != nil {
		return classify(err)
	}

	return classify(s.repo.Update(ctx, book))
}

func (s *BookService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// BorrowCopy takes one copy off the shelf.
func (s *BookService) BorrowCopy(ctx context.Context, id uuid.UUID) (dto.BookDTO, error) {
	return s.mutate(ctx, id, (*models.Book).BorrowCopy)
}

// ReturnCopy puts one copy back on the shelf.
func (s *BookService) ReturnCopy(ctx context.Context, id uuid.UUID) (dto.BookDTO, error) {
	return s.mutate(ctx, id, (*models.Book).ReturnCopy)
}

func (s *BookService) mutate(ctx context.Context, id uuid.UUID, op func(*models.Book) error) (dto.BookDTO, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.BookDTO{}, err
	}
	if err := op(book); err != nil {
		return dto.BookDTO{}, classify(err)
	}
	if err := s.repo.Update(ctx, book); err != nil {
		return dto.BookDTO{}, classify(err)
	}
	return toBookDTO(*book), nil
}

func toBookDTO(book models.Book) dto.BookDTO {
	return dto.BookDTO{
		ID:              book.ID,
		ISBN:            book.ISBN,
		Title:           book.Title,
		Author:          book.Author,
		Publisher:       book.Publisher,
		PublicationYear: book.PublicationYear,
		Category:        book.Category,
		TotalCopies:     book.TotalCopies,
		AvailableCopies: book.AvailableCopies,
		Status:          int(book.Status),
	}
}
