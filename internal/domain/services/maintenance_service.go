package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
)

// MaintenanceInput carries the fields to plan or replace a recurring upkeep
// task.
type MaintenanceInput struct {
	CommunityID  string    `json:"community_id" binding:"required"`
	Name         string    `json:"name" binding:"required"`
	Description  string    `json:"description"`
	NextDate     time.Time `json:"next_date" binding:"required"`
	IntervalDays int       `json:"interval_days"`
}

// InterfaceMaintenanceService manages recurring community upkeep. Residents
// can consult the calendar; admins and root maintain it.
type InterfaceMaintenanceService interface {
	Create(caller Caller, input MaintenanceInput) (*models.MaintenanceSchedule, error)
	Get(caller Caller, id string) (*models.MaintenanceSchedule, error)
	List(caller Caller, page models.PaginationQuery) ([]models.MaintenanceSchedule, int64, error)
	Update(caller Caller, id string, input MaintenanceInput) (*models.MaintenanceSchedule, error)
	Delete(caller Caller, id string) error
}

type MaintenanceService struct {
	DB *gorm.DB
}

func NewMaintenanceService(db *gorm.DB) InterfaceMaintenanceService {
	return &MaintenanceService{DB: db}
}

func (s *MaintenanceService) Create(caller Caller, input MaintenanceInput) (*models.MaintenanceSchedule, error) {
	if caller.Role == models.RoleResident {
		return nil, ErrNotPermitted
	}
	if !Allow(caller, &input.CommunityID, nil) {
		return nil, ErrNotPermitted
	}
	if input.IntervalDays < 0 {
		return nil, errors.New("interval_days cannot be negative")
	}

	schedule := models.MaintenanceSchedule{
		CommunityID:  input.CommunityID,
		Name:         input.Name,
		Description:  input.Description,
		NextDate:     input.NextDate,
		IntervalDays: input.IntervalDays,
	}
	if err := s.DB.Create(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (s *MaintenanceService) Get(caller Caller, id string) (*models.MaintenanceSchedule, error) {
	var schedule models.MaintenanceSchedule
	if err := s.DB.Where("id = ?", id).First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !Allow(caller, &schedule.CommunityID, nil) {
		return nil, ErrNotPermitted
	}
	return &schedule, nil
}

func (s *MaintenanceService) List(caller Caller, page models.PaginationQuery) ([]models.MaintenanceSchedule, int64, error) {
	page.Normalize()

	q := scopeByCommunity(s.DB.Model(&models.MaintenanceSchedule{}), caller, "community_id")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var schedules []models.MaintenanceSchedule
	if err := q.Order("next_date ASC").
		Offset(page.Offset()).Limit(page.PerPage).
		Find(&schedules).Error; err != nil {
		return nil, 0, err
	}
	return schedules, total, nil
}

func (s *MaintenanceService) Update(caller Caller, id string, input MaintenanceInput) (*models.MaintenanceSchedule, error) {
	if caller.Role == models.RoleResident {
		return nil, ErrNotPermitted
	}
	if input.IntervalDays < 0 {
		return nil, errors.New("interval_days cannot be negative")
	}

	schedule, err := s.Get(caller, id)
	if err != nil {
		return nil, err
	}
	if input.CommunityID != schedule.CommunityID && !Allow(caller, &input.CommunityID, nil) {
		return nil, ErrNotPermitted
	}

	schedule.CommunityID = input.CommunityID
	schedule.Name = input.Name
	schedule.Description = input.Description
	schedule.NextDate = input.NextDate
	schedule.IntervalDays = input.IntervalDays

	if err := s.DB.Save(schedule).Error; err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *MaintenanceService) Delete(caller Caller, id string) error {
	if caller.Role == models.RoleResident {
		return ErrNotPermitted
	}
	schedule, err := s.Get(caller, id)
	if err != nil {
		return err
	}
	return s.DB.Delete(&models.MaintenanceSchedule{}, "id = ?", schedule.ID).Error
}
