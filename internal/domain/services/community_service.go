package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
)

// InterfaceCommunityService manages condominium communities. Only the root
// administrator may change them; admins and residents see their own.
type InterfaceCommunityService interface {
	Create(caller Caller, community *models.Community) error
	Get(caller Caller, id string) (*models.Community, error)
	List(caller Caller, page models.PaginationQuery) ([]models.Community, int64, error)
	Update(caller Caller, id string, community *models.Community) (*models.Community, error)
	Delete(caller Caller, id string) error
}

type CommunityService struct {
	DB *gorm.DB
}

func NewCommunityService(db *gorm.DB) InterfaceCommunityService {
	return &CommunityService{DB: db}
}

func (s *CommunityService) Create(caller Caller, community *models.Community) error {
	if !caller.IsRoot() {
		return ErrNotPermitted
	}
	return s.DB.Create(community).Error
}

func (s *CommunityService) Get(caller Caller, id string) (*models.Community, error) {
	var community models.Community
	if err := s.DB.Where("id = ?", id).First(&community).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !Allow(caller, &community.ID, nil) {
		return nil, ErrNotPermitted
	}
	return &community, nil
}

func (s *CommunityService) List(caller Caller, page models.PaginationQuery) ([]models.Community, int64, error) {
	page.Normalize()

	q := scopeByCommunity(s.DB.Model(&models.Community{}), caller, "id")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var communities []models.Community
	if err := q.Order("name ASC").
		Offset(page.Offset()).Limit(page.PerPage).
		Find(&communities).Error; err != nil {
		return nil, 0, err
	}
	return communities, total, nil
}

// Update replaces the mutable fields of a community. The record id never
// changes.
func (s *CommunityService) Update(caller Caller, id string, community *models.Community) (*models.Community, error) {
	if !caller.IsRoot() {
		return nil, ErrNotPermitted
	}

	var existing models.Community
	if err := s.DB.Where("id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	existing.Name = community.Name
	existing.ShortName = community.ShortName
	existing.Address = community.Address

	if err := s.DB.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (s *CommunityService) Delete(caller Caller, id string) error {
	if !caller.IsRoot() {
		return ErrNotPermitted
	}
	result := s.DB.Where("id = ?", id).Delete(&models.Community{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
