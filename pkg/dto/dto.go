package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Link is a hypermedia control attached to a resource.
type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

type PaginationParams struct {
	PageNumber int
	PageSize   int
}

type BookDTO struct {
	ID              uuid.UUID `json:"id"`
	ISBN            string    `json:"isbn" binding:"required,max=20"`
	Title           string    `json:"title" binding:"required,max=200"`
	Author          string    `json:"author" binding:"max=100"`
	Publisher       string    `json:"publisher" binding:"max=100"`
	PublicationYear int       `json:"publicationYear" binding:"min=0"`
	Category        string    `json:"category" binding:"max=50"`
	TotalCopies     int       `json:"totalCopies" binding:"min=0"`
	AvailableCopies int       `json:"availableCopies" binding:"min=0"`
	Status          int       `json:"status" binding:"min=0,max=3"`
	Links           []Link    `json:"links,omitempty"`
}

// MemberDTO never carries the stored password hash; Password is input only.
type MemberDTO struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name" binding:"required,max=100"`
	Email            string    `json:"email" binding:"required,max=100"`
	Password         string    `json:"password,omitempty"`
	Phone            string    `json:"phone" binding:"max=20"`
	RegistrationDate time.Time `json:"registrationDate"`
	IsActive         bool      `json:"isActive"`
	Links            []Link    `json:"links,omitempty"`
}

type LoanDTO struct {
	ID         uuid.UUID        `json:"id"`
	BookID     uuid.UUID        `json:"bookId" binding:"notnil"`
	MemberID   uuid.UUID        `json:"memberId" binding:"notnil"`
	LoanDays   int              `json:"loanDays,omitempty" binding:"min=0"`
	LoanDate   time.Time        `json:"loanDate"`
	DueDate    time.Time        `json:"dueDate"`
	ReturnDate *time.Time       `json:"returnDate,omitempty"`
	Status     int              `json:"status" binding:"min=0,max=3"`
	LateFee    *decimal.Decimal `json:"lateFee,omitempty"`
	Notes      string           `json:"notes" binding:"max=500"`
	Links      []Link           `json:"links,omitempty"`
}

// RenewRequest leaves Days nil when the client sends no value.
type RenewRequest struct {
	Days *int `json:"days"`
}

// RegisterValidations adds the custom binding rules used by the transfer objects.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("notnil", notNilUUID)
}

func notNilUUID(fl validator.FieldLevel) bool {
	id, ok := fl.Field().Interface().(uuid.UUID)
	return ok && id != uuid.Nil
}

func (d BookDTO) ResourceID() uuid.UUID    { return d.ID }
func (d *BookDTO) SetLinks(links []Link)   { d.Links = links }
func (d MemberDTO) ResourceID() uuid.UUID  { return d.ID }
func (d *MemberDTO) SetLinks(links []Link) { d.Links = links }
func (d LoanDTO) ResourceID() uuid.UUID    { return d.ID }
func (d *LoanDTO) SetLinks(links []Link)   { d.Links = links }
