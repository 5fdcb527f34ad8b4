package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
)

// InterfaceCommonAreaService manages the bookable shared spaces of a
// community. Residents can browse them; only admins and root change them.
type InterfaceCommonAreaService interface {
	Create(caller Caller, area *models.CommonArea) error
	Get(caller Caller, id string) (*models.CommonArea, error)
	List(caller Caller, page models.PaginationQuery) ([]models.CommonArea, int64, error)
	Update(caller Caller, id string, area *models.CommonArea) (*models.CommonArea, error)
	Delete(caller Caller, id string) error
}

type CommonAreaService struct {
	DB *gorm.DB
}

func NewCommonAreaService(db *gorm.DB) InterfaceCommonAreaService {
	return &CommonAreaService{DB: db}
}

func (s *CommonAreaService) Create(caller Caller, area *models.CommonArea) error {
	if caller.Role == models.RoleResident {
		return ErrNotPermitted
	}
	if !Allow(caller, &area.CommunityID, nil) {
		return ErrNotPermitted
	}
	return s.DB.Create(area).Error
}

func (s *CommonAreaService) Get(caller Caller, id string) (*models.CommonArea, error) {
	var area models.CommonArea
	if err := s.DB.Where("id = ?", id).First(&area).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !Allow(caller, &area.CommunityID, nil) {
		return nil, ErrNotPermitted
	}
	return &area, nil
}

func (s *CommonAreaService) List(caller Caller, page models.PaginationQuery) ([]models.CommonArea, int64, error) {
	page.Normalize()

	q := scopeByCommunity(s.DB.Model(&models.CommonArea{}), caller, "community_id")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var areas []models.CommonArea
	if err := q.Order("name ASC").
		Offset(page.Offset()).Limit(page.PerPage).
		Find(&areas).Error; err != nil {
		return nil, 0, err
	}
	return areas, total, nil
}

func (s *CommonAreaService) Update(caller Caller, id string, area *models.CommonArea) (*models.CommonArea, error) {
	if caller.Role == models.RoleResident {
		return nil, ErrNotPermitted
	}

	existing, err := s.Get(caller, id)
	if err != nil {
		return nil, err
	}
	if area.CommunityID != existing.CommunityID && !Allow(caller, &area.CommunityID, nil) {
		return nil, ErrNotPermitted
	}

	existing.CommunityID = area.CommunityID
	existing.Name = area.Name
	existing.Description = area.Description
	existing.Capacity = area.Capacity
	existing.OpensAt = area.OpensAt
	existing.ClosesAt = area.ClosesAt

	if err := s.DB.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *CommonAreaService) Delete(caller Caller, id string) error {
	if caller.Role == models.RoleResident {
		return ErrNotPermitted
	}
	existing, err := s.Get(caller, id)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("common_area_id = ?", existing.ID).Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		return tx.Delete(existing).Error
	})
}
