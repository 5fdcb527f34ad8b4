package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
)

// InvoiceInput carries the fields to issue or replace a charge. The
// community is derived from the resident, never taken from the client.
type InvoiceInput struct {
	ResidentID string    `json:"resident_id" binding:"required"`
	Amount     float64   `json:"amount" binding:"required"`
	Detail     string    `json:"detail"`
	DueDate    time.Time `json:"due_date" binding:"required"`
	Paid       bool      `json:"paid"`
}

// InterfaceInvoiceService manages resident charges. Invoices are personally
// scoped: a resident sees only its own, an admin its community's.
type InterfaceInvoiceService interface {
	Create(caller Caller, input InvoiceInput) (*models.Invoice, error)
	Get(caller Caller, id string) (*models.Invoice, error)
	List(caller Caller, page models.PaginationQuery) ([]models.Invoice, int64, error)
	Update(caller Caller, id string, input InvoiceInput) (*models.Invoice, error)
	Delete(caller Caller, id string) error
}

type InvoiceService struct {
	DB *gorm.DB
}

func NewInvoiceService(db *gorm.DB) InterfaceInvoiceService {
	return &InvoiceService{DB: db}
}

func (s *InvoiceService) Create(caller Caller, input InvoiceInput) (*models.Invoice, error) {
	if caller.Role == models.RoleResident {
		return nil, ErrNotPermitted
	}
	if input.Amount < 0 {
		return nil, errors.New("amount cannot be negative")
	}

	var resident models.Resident
	if err := s.DB.Where("id = ?", input.ResidentID).First(&resident).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !Allow(caller, &resident.CommunityID, nil) {
		return nil, ErrNotPermitted
	}

	invoice := models.Invoice{
		ResidentID:  resident.ID,
		CommunityID: resident.CommunityID,
		Amount:      input.Amount,
		Detail:      input.Detail,
		DueDate:     input.DueDate,
		Paid:        input.Paid,
	}
	if err := s.DB.Create(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (s *InvoiceService) Get(caller Caller, id string) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.DB.Where("id = ?", id).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !Allow(caller, &invoice.CommunityID, &invoice.ResidentID) {
		return nil, ErrNotPermitted
	}
	return &invoice, nil
}

func (s *InvoiceService) List(caller Caller, page models.PaginationQuery) ([]models.Invoice, int64, error) {
	page.Normalize()

	q := scopePersonal(s.DB.Model(&models.Invoice{}), caller, "community_id", "resident_id")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var invoices []models.Invoice
	if err := q.Order("due_date DESC").
		Offset(page.Offset()).Limit(page.PerPage).
		Find(&invoices).Error; err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}

func (s *InvoiceService) Update(caller Caller, id string, input InvoiceInput) (*models.Invoice, error) {
	if caller.Role == models.RoleResident {
		return nil, ErrNotPermitted
	}
	if input.Amount < 0 {
		return nil, errors.New("amount cannot be negative")
	}

	invoice, err := s.Get(caller, id)
	if err != nil {
		return nil, err
	}

	if input.ResidentID != invoice.ResidentID {
		var resident models.Resident
		if err := s.DB.Where("id = ?", input.ResidentID).First(&resident).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if !Allow(caller, &resident.CommunityID, nil) {
			return nil, ErrNotPermitted
		}
		invoice.ResidentID = resident.ID
		invoice.CommunityID = resident.CommunityID
	}

	invoice.Amount = input.Amount
	invoice.Detail = input.Detail
	invoice.DueDate = input.DueDate
	invoice.Paid = input.Paid

	if err := s.DB.Save(invoice).Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *InvoiceService) Delete(caller Caller, id string) error {
	if caller.Role == models.RoleResident {
		return ErrNotPermitted
	}
	invoice, err := s.Get(caller, id)
	if err != nil {
		return err
	}
	return s.DB.Delete(&models.Invoice{}, "id = ?", invoice.ID).Error
}
