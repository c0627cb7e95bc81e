package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"library-system/pkg/dto"
	"library-system/pkg/models"
	"library-system/pkg/pagination"
	"library-system/pkg/repository"
	"library-system/pkg/valueobject"
)

type MemberService struct {
	repo *repository.Repository[models.Member]
	opts options
}

func NewMemberService(repo *repository.Repository[models.Member], opts ...Option) *MemberService {
	return &MemberService{repo: repo, opts: newOptions(opts)}
}

func (s *MemberService) List(ctx context.Context) ([]dto.MemberDTO, error) {
	members, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MemberDTO, len(members))
	for i, member := range members {
		items[i] = toMemberDTO(member)
	}
	return items, nil
}

func (s *MemberService) Get(ctx context.Context, id uuid.UUID) (dto.MemberDTO, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.MemberDTO{}, err
	}
	return toMemberDTO(*member), nil
}

func (s *MemberService) Paged(ctx context.Context, pageNumber, pageSize int) (pagination.PagedList[dto.MemberDTO], error) {
	query := s.repo.GetAllQueryable(ctx).Order(clause.OrderByColumn{Column: clause.PrimaryColumn})
	page, err := pagination.Paginate[models.Member](ctx, query, pageNumber, pageSize)
	if err != nil {
		return pagination.PagedList[dto.MemberDTO]{}, err
	}
	return pagination.Map(page, toMemberDTO), nil
}

func (s *MemberService) Create(ctx context.Context, in dto.MemberDTO) (dto.MemberDTO, error) {
	email, err := valueobject.NewEmail(in.Email)
	if err != nil {
		return dto.MemberDTO{}, classify(err)
	}
	password, err := valueobject.NewPassword(in.Password)
	if err != nil {
		return dto.MemberDTO{}, classify(err)
	}

	member, err := models.NewMember(in.Name, email, password, in.Phone, s.opts.now())
	if err != nil {
		return dto.MemberDTO{}, classify(err)
	}
	if err := s.repo.Add(ctx, member); err != nil {
		return dto.MemberDTO{}, classify(err)
	}
	return toMemberDTO(*member), nil
}

// Update overwrites the member with the body. An empty password keeps the current one.
func (s *MemberService) Update(ctx context.Context, id uuid.UUID, in dto.MemberDTO) error {
	if in.ID != id {
		return idMismatch(id, in.ID)
	}

	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	email, err := valueobject.NewEmail(in.Email)
	if err != nil {
		return classify(err)
	}
	if in.Password != "" {
		password, err := valueobject.NewPassword(in.Password)
		if err != nil {
			return classify(err)
		}
		if err := member.UpdatePassword(password); err != nil {
			return err
		}
	}

	member.Name = in.Name
	member.UpdateEmail(email)
	member.Phone = in.Phone
	if !in.RegistrationDate.IsZero() {
		member.RegistrationDate = in.RegistrationDate.UTC()
	}
	if in.IsActive {
		member.Activate()
	} else {
		member.Deactivate()
	}
	if err := member.Validate(); err != nil {
		return classify(err)
	}

	return classify(s.repo.Update(ctx, member))
}

func (s *MemberService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func toMemberDTO(member models.Member) dto.MemberDTO {
	return dto.MemberDTO{
		ID:               member.ID,
		Name:             member.Name,
		Email:            member.Email.String(),
		Phone:            member.Phone,
		RegistrationDate: member.RegistrationDate,
		IsActive:         member.IsActive,
	}
}
