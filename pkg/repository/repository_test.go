package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-system/pkg/models"
	"library-system/pkg/testutil"
	"library-system/pkg/valueobject"
)

type recordingLogger struct {
	mu      sync.Mutex
	entries []string
}

func (l *recordingLogger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, level+" "+msg)
}

func (l *recordingLogger) Debug(msg string, _ ...any) { l.record("DEBUG", msg) }
func (l *recordingLogger) Info(msg string, _ ...any)  { l.record("INFO", msg) }
func (l *recordingLogger) Warn(msg string, _ ...any)  { l.record("WARN", msg) }
func (l *recordingLogger) Error(msg string, _ ...any) { l.record("ERROR", msg) }

func newBook(t *testing.T, title string, copies int) *models.Book {
	t.Helper()
	book, err := models.NewBook("978-0"+title, title, "Author", "Publisher", 2020, "Fiction", copies)
	require.NoError(t, err)
	return book
}

func TestAddAndGetByID(t *testing.T) {
	repo := New[models.Book](testutil.NewDB(t))
	ctx := context.Background()

	book := newBook(t, "Dune", 3)
	require.NoError(t, repo.Add(ctx, book))

	got, err := repo.GetByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, book.ID, got.ID)
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, 3, got.TotalCopies)
	assert.Equal(t, 3, got.AvailableCopies)
	assert.Equal(t, models.BookAvailable, got.Status)
}

func TestGetByIDMissing(t *testing.T) {
	repo := New[models.Book](testutil.NewDB(t))

	got, err := repo.GetByID(context.Background(), uuid.New())

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAll(t *testing.T) {
	repo := New[models.Book](testutil.NewDB(t))
	ctx := context.Background()

	empty, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NotNil(t, empty)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Add(ctx, newBook(t, fmt.Sprintf("Book %d", i), 1)))
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetAllQueryableIsComposable(t *testing.T) {
	repo := New[models.Book](testutil.NewDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, newBook(t, "Alpha", 1)))
	require.NoError(t, repo.Add(ctx, newBook(t, "Beta", 0)))
	require.NoError(t, repo.Add(ctx, newBook(t, "Gamma", 2)))

	var available []models.Book
	err := repo.GetAllQueryable(ctx).
		Where("available_copies > ?", 0).
		Order("title").
		Find(&available).Error

	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, "Alpha", available[0].Title)
	assert.Equal(t, "Gamma", available[1].Title)
}

func TestAddDuplicateID(t *testing.T) {
	repo := New[models.Book](testutil.NewDB(t))
	ctx := context.Background()

	book := newBook(t, "Emma", 1)
	require.NoError(t, repo.Add(ctx, book))

	dup := *book
	err := repo.Add(ctx, &dup)
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestCheckConstraints(t *testing.T) {
	repo := New[models.Book](testutil.NewDB(t))
	ctx := context.Background()

	t.Run("add with more available than total", func(t *testing.T) {
		book := newBook(t, "Overstocked", 1)
		book.AvailableCopies = 5

		err := repo.Add(ctx, book)
		assert.ErrorIs(t, err, ErrConstraintViolation)
	})

	t.Run("add with negative total", func(t *testing.T) {
		book := newBook(t, "Negative", 0)
		book.TotalCopies = -1

		err := repo.Add(ctx, book)
		assert.ErrorIs(t, err, ErrConstraintViolation)
	})

	t.Run("update breaking the copy range", func(t *testing.T) {
		book := newBook(t, "Shelved", 2)
		require.NoError(t, repo.Add(ctx, book))

		book.AvailableCopies = 3
		err := repo.Update(ctx, book)
		assert.ErrorIs(t, err, ErrConstraintViolation)

		stored, err := repo.GetByID(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, stored.AvailableCopies)
	})
}

func TestUpdateOverwritesRecord(t *testing.T) {
	repo := New[models.Book](testutil.NewDB(t))
	ctx := context.Background()

	book := newBook(t, "Ulysses", 2)
	require.NoError(t, repo.Add(ctx, book))

	require.NoError(t, book.BorrowCopy())
	require.NoError(t, book.BorrowCopy())
	book.Title = "Ulysses (annotated)"
	require.NoError(t, repo.Update(ctx, book))

	got, err := repo.GetByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ulysses (annotated)", got.Title)
	assert.Equal(t, 0, got.AvailableCopies)
	assert.Equal(t, models.BookBorrowed, got.Status)
}

func TestDelete(t *testing.T) {
	repo := New[models.Book](testutil.NewDB(t))
	ctx := context.Background()

	book := newBook(t, "Beloved", 1)
	require.NoError(t, repo.Add(ctx, book))

	require.NoError(t, repo.Delete(ctx, book.ID))

	_, err := repo.GetByID(ctx, book.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	t.Run("missing id is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.Delete(ctx, book.ID))
		assert.NoError(t, repo.Delete(ctx, uuid.New()))
	})
}

func TestMemberEmailRoundTrip(t *testing.T) {
	repo := New[models.Member](testutil.NewDB(t))
	ctx := context.Background()

	email, err := valueobject.NewEmail("ann@example.com")
	require.NoError(t, err)
	member := &models.Member{ID: uuid.New(), Name: "Ann", Email: email, Phone: "555"}
	require.NoError(t, repo.Add(ctx, member))

	got, err := repo.GetByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)
	assert.True(t, email.Equal(got.Email))
}

func TestWithLogger(t *testing.T) {
	logger := &recordingLogger{}
	repo := New[models.Book](testutil.NewDB(t), WithLogger(logger))
	ctx := context.Background()

	book := newBook(t, "Logged", 1)
	require.NoError(t, repo.Add(ctx, book))
	require.NoError(t, repo.Delete(ctx, book.ID))

	assert.Equal(t, []string{"DEBUG entity added", "DEBUG entity deleted"}, logger.entries)
}
