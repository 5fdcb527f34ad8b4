package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
)

// ParcelInput carries the fields to log or replace a delivery.
type ParcelInput struct {
	ResidentID  string    `json:"resident_id" binding:"required"`
	Description string    `json:"description"`
	ArrivedAt   time.Time `json:"arrived_at"`
	PickedUp    bool      `json:"picked_up"`
}

// InterfaceParcelService tracks front-desk deliveries. The desk (admin) logs
// and closes them; a resident sees only its own.
type InterfaceParcelService interface {
	Create(caller Caller, input ParcelInput) (*models.Parcel, error)
	Get(caller Caller, id string) (*models.Parcel, error)
	List(caller Caller, page models.PaginationQuery) ([]models.Parcel, int64, error)
	Update(caller Caller, id string, input ParcelInput) (*models.Parcel, error)
	Delete(caller Caller, id string) error
}

type ParcelService struct {
	DB *gorm.DB
}

func NewParcelService(db *gorm.DB) InterfaceParcelService {
	return &ParcelService{DB: db}
}

func (s *ParcelService) Create(caller Caller, input ParcelInput) (*models.Parcel, error) {
	if caller.Role == models.RoleResident {
		return nil, ErrNotPermitted
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

	arrived := input.ArrivedAt
	if arrived.IsZero() {
		arrived = time.Now()
	}

	parcel := models.Parcel{
		ResidentID:  resident.ID,
		CommunityID: resident.CommunityID,
		Description: input.Description,
		ArrivedAt:   arrived,
		PickedUp:    input.PickedUp,
	}
	if err := s.DB.Create(&parcel).Error; err != nil {
		return nil, err
	}
	return &parcel, nil
}

func (s *ParcelService) Get(caller Caller, id string) (*models.Parcel, error) {
	var parcel models.Parcel
	if err := s.DB.Where("id = ?", id).First(&parcel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !Allow(caller, &parcel.CommunityID, &parcel.ResidentID) {
		return nil, ErrNotPermitted
	}
	return &parcel, nil
}

func (s *ParcelService) List(caller Caller, page models.PaginationQuery) ([]models.Parcel, int64, error) {
	page.Normalize()

	q := scopePersonal(s.DB.Model(&models.Parcel{}), caller, "community_id", "resident_id")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var parcels []models.Parcel
	if err := q.Order("arrived_at DESC").
		Offset(page.Offset()).Limit(page.PerPage).
		Find(&parcels).Error; err != nil {
		return nil, 0, err
	}
	return parcels, total, nil
}

func (s *ParcelService) Update(caller Caller, id string, input ParcelInput) (*models.Parcel, error) {
	if caller.Role == models.RoleResident {
		return nil, ErrNotPermitted
	}

	parcel, err := s.Get(caller, id)
	if err != nil {
		return nil, err
	}

	if input.ResidentID != parcel.ResidentID {
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
		parcel.ResidentID = resident.ID
		parcel.CommunityID = resident.CommunityID
	}

	parcel.Description = input.Description
	if !input.ArrivedAt.IsZero() {
		parcel.ArrivedAt = input.ArrivedAt
	}
	parcel.PickedUp = input.PickedUp

	if err := s.DB.Save(parcel).Error; err != nil {
		return nil, err
	}
	return parcel, nil
}

func (s *ParcelService) Delete(caller Caller, id string) error {
	if caller.Role == models.RoleResident {
		return ErrNotPermitted
	}
	parcel, err := s.Get(caller, id)
	if err != nil {
		return err
	}
	return s.DB.Delete(&models.Parcel{}, "id = ?", parcel.ID).Error
}
