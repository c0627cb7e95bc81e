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

type LoanService struct {
	repo *repository.Repository[models.Loan]
	opts options
}

func NewLoanService(repo *repository.Repository[models.Loan], opts ...Option) *LoanService {
	return &LoanService{repo: repo, opts: newOptions(opts)}
}

func (s *LoanService) List(ctx context.Context) ([]dto.LoanDTO, error) {
	loans, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.LoanDTO, len(loans))
	for i, loan := range loans {
		items[i] = toLoanDTO(loan)
	}
	return items, nil
}

func (s *LoanService) Get(ctx context.Context, id uuid.UUID) (dto.LoanDTO, error) {
	loan, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.LoanDTO{}, err
	}
	return toLoanDTO(*loan), nil
}

func (s *LoanService) Paged(ctx context.Context, pageNumber, pageSize int) (pagination.PagedList[dto.LoanDTO], error) {
	query := s.repo.GetAllQueryable(ctx).Order(clause.OrderByColumn{Column: clause.PrimaryColumn})
	page, err := pagination.Paginate[models.Loan](ctx, query, pageNumber, pageSize)
	if err != nil {
		return pagination.PagedList[dto.LoanDTO]{}, err
	}
	return pagination.Map(page, toLoanDTO), nil
}

// Create opens a loan. LoanDate defaults to now; DueDate defaults to LoanDate plus LoanDays,
// or the default loan period when LoanDays is zero.
func (s *LoanService) Create(ctx context.Context, in dto.LoanDTO) (dto.LoanDTO, error) {
	loanDate := s.opts.now()
	if !in.LoanDate.IsZero() {
		loanDate = in.LoanDate
	}

	loan, err := models.NewLoan(in.BookID, in.MemberID, in.LoanDays, loanDate)
	if err != nil {
		return dto.LoanDTO{}, classify(err)
	}
	if !in.DueDate.IsZero() {
		loan.DueDate = in.DueDate.UTC()
	}
	loan.Notes = in.Notes
	if err := loan.Validate(); err != nil {
		return dto.LoanDTO{}, classify(err)
	}

	if err := s.repo.Add(ctx, loan); err != nil {
		return dto.LoanDTO{}, classify(err)
	}
	return toLoanDTO(*loan), nil
}

// Update overwrites every field of the stored loan with the body.
func (s *LoanService) Update(ctx context.Context, id uuid.UUID, in dto.LoanDTO) error {
	if in.ID != id {
		return idMismatch(id, in.ID)
	}

	loan, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	loan.BookID = in.BookID
	loan.MemberID = in.MemberID
	loan.LoanDate = in.LoanDate.UTC()
	loan.DueDate = in.DueDate.UTC()
	loan.ReturnDate = in.ReturnDate
	loan.Status = models.LoanStatus(in.Status)
	loan.LateFee = in.LateFee
	loan.Notes = in.Notes
	if err := loan.Validate(); err != nil {
		return classify(err)
	}

	return classify(s.repo.Update(ctx, loan))
}

func (s *LoanService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Return closes the loan now, charging a late fee when it is overdue.
func (s *LoanService) Return(ctx context.Context, id uuid.UUID) (dto.LoanDTO, error) {
	return s.mutate(ctx, id, func(loan *models.Loan) error {
		return loan.Return(s.opts.now())
	})
}

// Renew pushes the due date of an active, not overdue loan back by days.
func (s *LoanService) Renew(ctx context.Context, id uuid.UUID, days int) (dto.LoanDTO, error) {
	return s.mutate(ctx, id, func(loan *models.Loan) error {
		return loan.Renew(days, s.opts.now())
	})
}

func (s *LoanService) mutate(ctx context.Context, id uuid.UUID, op func(*models.Loan) error) (dto.LoanDTO, error) {
	loan, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.LoanDTO{}, err
	}
	if err := op(loan); err != nil {
		return dto.LoanDTO{}, classify(err)
	}
	if err := s.repo.Update(ctx, loan); err != nil {
		return dto.LoanDTO{}, classify(err)
	}
	return toLoanDTO(*loan), nil
}

func toLoanDTO(loan models.Loan) dto.LoanDTO {
	return dto.LoanDTO{
		ID:         loan.ID,
		BookID:     loan.BookID,
		MemberID:   loan.MemberID,
		LoanDate:   loan.LoanDate,
		DueDate:    loan.DueDate,
		ReturnDate: loan.ReturnDate,
		Status:     int(loan.Status),
		LateFee:    loan.LateFee,
		Notes:      loan.Notes,
	}
}
