package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
)

// VehicleInput carries the fields to register or replace a vehicle.
type VehicleInput struct {
	ResidentID string `json:"resident_id"`
	Plate      string `json:"plate" binding:"required"`
	Color      string `json:"color"`
	Model      string `json:"model"`
}

// InterfaceVehicleService manages registered vehicles. A vehicle has no
// community column of its own; scoping runs through the owning resident.
// Residents register and manage their own cars. A plate may appear at most
// once per community.
type InterfaceVehicleService interface {
	Create(caller Caller, input VehicleInput) (*models.Vehicle, error)
	Get(caller Caller, id string) (*models.Vehicle, error)
	List(caller Caller, page models.PaginationQuery) ([]models.Vehicle, int64, error)
	Update(caller Caller, id string, input VehicleInput) (*models.Vehicle, error)
	Delete(caller Caller, id string) error
}

type VehicleService struct {
	DB *gorm.DB
}

func NewVehicleService(db *gorm.DB) InterfaceVehicleService {
	return &VehicleService{DB: db}
}

// plateInUse reports whether another vehicle in the same community already
// carries the plate. Community membership runs through the owning resident.
func (s *VehicleService) plateInUse(plate, communityID, excludeID string) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Vehicle{}).
		Joins("JOIN residents ON residents.id = vehicles.resident_id").
		Where("vehicles.plate = ? AND residents.community_id = ? AND vehicles.id <> ?",
			plate, communityID, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *VehicleService) Create(caller Caller, input VehicleInput) (*models.Vehicle, error) {
	if caller.Role == models.RoleResident {
		input.ResidentID = caller.EntityID
	}
	if input.ResidentID == "" {
		return nil, errors.New("resident_id is required")
	}

	var resident models.Resident
	if err := s.DB.Where("id = ?", input.ResidentID).First(&resident).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !Allow(caller, &resident.CommunityID, &resident.ID) {
		return nil, ErrNotPermitted
	}

	taken, err := s.plateInUse(input.Plate, resident.CommunityID, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrPlateTaken
	}

	vehicle := models.Vehicle{
		ResidentID: resident.ID,
		Plate:      input.Plate,
		Color:      input.Color,
		Model:      input.Model,
	}
	if err := s.DB.Create(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (s *VehicleService) Get(caller Caller, id string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := s.DB.Preload("Resident").Where("id = ?", id).First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if vehicle.Resident == nil ||
		!Allow(caller, &vehicle.Resident.CommunityID, &vehicle.ResidentID) {
		return nil, ErrNotPermitted
	}
	return &vehicle, nil
}

func (s *VehicleService) List(caller Caller, page models.PaginationQuery) ([]models.Vehicle, int64, error) {
	page.Normalize()

	q := s.DB.Model(&models.Vehicle{}).
		Joins("JOIN residents ON residents.id = vehicles.resident_id")
	q = scopePersonal(q, caller, "residents.community_id", "vehicles.resident_id")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var vehicles []models.Vehicle
	if err := q.Order("vehicles.plate ASC").
		Offset(page.Offset()).Limit(page.PerPage).
		Find(&vehicles).Error; err != nil {
		return nil, 0, err
	}
	return vehicles, total, nil
}

// Update replaces the registration. Moving a vehicle to another resident is
// an admin operation.
func (s *VehicleService) Update(caller Caller, id string, input VehicleInput) (*models.Vehicle, error) {
	vehicle, err := s.Get(caller, id)
	if err != nil {
		return nil, err
	}

	communityID := vehicle.Resident.CommunityID
	if input.ResidentID != "" && input.ResidentID != vehicle.ResidentID {
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
		vehicle.ResidentID = resident.ID
		communityID = resident.CommunityID
	}

	taken, err := s.plateInUse(input.Plate, communityID, vehicle.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrPlateTaken
	}

	vehicle.Plate = input.Plate
	vehicle.Color = input.Color
	vehicle.Model = input.Model

	if err := s.DB.Omit(clause.Associations).Save(vehicle).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) Delete(caller Caller, id string) error {
	vehicle, err := s.Get(caller, id)
	if err != nil {
		return err
	}
	return s.DB.Delete(&models.Vehicle{}, "id = ?", vehicle.ID).Error
}
