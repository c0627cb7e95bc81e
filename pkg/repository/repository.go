package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrConstraintViolation = errors.New("constraint violation")
)

// Entity is a persisted model keyed by a UUID primary column.
type Entity interface {
	EntityID() uuid.UUID
	TableName() string
}

// Logger is satisfied by *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Option func(*options)

type options struct {
	logger Logger
}

// WithLogger sets the logger for the Repository.
// Writes are logged at Debug, storage failures at Error.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Repository is generic data access over the single table of T.
type Repository[T Entity] struct {
	db     *gorm.DB
	logger Logger
	table  string
}

func New[T Entity](db *gorm.DB, opts ...Option) *Repository[T] {
	o := options{logger: noopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}

	var zero T
	return &Repository[T]{
		db:     db,
		logger: o.logger,
		table:  zero.TableName(),
	}
}

func (r *Repository[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.PrimaryColumn, Value: id}).
		Take(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, r.table, id)
	}
	if err != nil {
		return nil, r.fail("get", id, err)
	}
	return &entity, nil
}

func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	entities := make([]T, 0)
	if err := r.db.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, r.fail("list", uuid.Nil, err)
	}
	return entities, nil
}

// GetAllQueryable returns an unexecuted query over the table of T for callers to refine.
func (r *Repository[T]) GetAllQueryable(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(new(T))
}

func (r *Repository[T]) Add(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return r.fail("add", (*entity).EntityID(), err)
	}
	r.logger.Debug("entity added", "table", r.table, "id", (*entity).EntityID())
	return nil
}

// Update overwrites every column of the stored record.
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return r.fail("update", (*entity).EntityID(), err)
	}
	r.logger.Debug("entity updated", "table", r.table, "id", (*entity).EntityID())
	return nil
}

// Delete removes the record with the given id. A missing id is not an error.
func (r *Repository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	entity, err := r.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(entity).Error; err != nil {
		return r.fail("delete", id, err)
	}
	r.logger.Debug("entity deleted", "table", r.table, "id", id)
	return nil
}

func (r *Repository[T]) fail(op string, id uuid.UUID, err error) error {
	if isConstraintViolation(err) {
		r.logger.Warn("constraint violation", "op", op, "table", r.table, "id", id, "error", err)
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}
	r.logger.Error("storage operation failed", "op", op, "table", r.table, "id", id, "error", err)
	return fmt.Errorf("%s %s: %w", op, r.table, err)
}

// isConstraintViolation also inspects sqlite errors, which gorm only translates for keys.
func isConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
