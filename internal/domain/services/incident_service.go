package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/notification"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/pkg/logger"
)

// IncidentInput carries the fields to file or replace an incident report.
type IncidentInput struct {
	ResidentID  string                `json:"resident_id"`
	Subject     string                `json:"subject" binding:"required"`
	Description string                `json:"description"`
	Status      models.IncidentStatus `json:"status"`
}

// InterfaceIncidentService manages problem reports. Residents file and
// follow their own reports; admins work every report in their community.
// Creations and status changes fan out to the community notice topic.
type InterfaceIncidentService interface {
	Create(caller Caller, input IncidentInput) (*models.Incident, error)
	Get(caller Caller, id string) (*models.Incident, error)
	List(caller Caller, page models.PaginationQuery) ([]models.Incident, int64, error)
	Update(caller Caller, id string, input IncidentInput) (*models.Incident, error)
	Delete(caller Caller, id string) error
}

type IncidentService struct {
	DB      *gorm.DB
	Notices notification.NoticePublisher
}

func NewIncidentService(db *gorm.DB, notices notification.NoticePublisher) InterfaceIncidentService {
	return &IncidentService{DB: db, Notices: notices}
}

// Create files a report. A resident always files for itself; admins and root
// may file on behalf of any resident in scope.
func (s *IncidentService) Create(caller Caller, input IncidentInput) (*models.Incident, error) {
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

	incident := models.Incident{
		ResidentID:  resident.ID,
		CommunityID: resident.CommunityID,
		Subject:     input.Subject,
		Description: input.Description,
		Status:      models.IncidentOpen,
	}
	if err := s.DB.Create(&incident).Error; err != nil {
		return nil, err
	}

	s.notify(incident, "incident_opened")
	return &incident, nil
}

func (s *IncidentService) Get(caller Caller, id string) (*models.Incident, error) {
	var incident models.Incident
	if err := s.DB.Where("id = ?", id).First(&incident).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !Allow(caller, &incident.CommunityID, &incident.ResidentID) {
		return nil, ErrNotPermitted
	}
	return &incident, nil
}

func (s *IncidentService) List(caller Caller, page models.PaginationQuery) ([]models.Incident, int64, error) {
	page.Normalize()

	q := scopePersonal(s.DB.Model(&models.Incident{}), caller, "community_id", "resident_id")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var incidents []models.Incident
	if err := q.Order("created_at DESC").
		Offset(page.Offset()).Limit(page.PerPage).
		Find(&incidents).Error; err != nil {
		return nil, 0, err
	}
	return incidents, total, nil
}

// Update replaces the report. Residents may edit their own report but not
// its status; status moves are for admins and root.
func (s *IncidentService) Update(caller Caller, id string, input IncidentInput) (*models.Incident, error) {
	incident, err := s.Get(caller, id)
	if err != nil {
		return nil, err
	}

	statusChanged := input.Status != "" && input.Status != incident.Status
	if statusChanged {
		if caller.Role == models.RoleResident {
			return nil, ErrNotPermitted
		}
		if !models.EnumValid(input.Status, models.IncidentStatuses) {
			return nil, errors.New("invalid incident status")
		}
		incident.Status = input.Status
	}

	incident.Subject = input.Subject
	incident.Description = input.Description

	if err := s.DB.Save(incident).Error; err != nil {
		return nil, err
	}

	if statusChanged {
		s.notify(*incident, "incident_status_changed")
	}
	return incident, nil
}

func (s *IncidentService) Delete(caller Caller, id string) error {
	if caller.Role == models.RoleResident {
		return ErrNotPermitted
	}
	incident, err := s.Get(caller, id)
	if err != nil {
		return err
	}
	return s.DB.Delete(&models.Incident{}, "id = ?", incident.ID).Error
}

// notify publishes the incident to its community notice topic. Delivery is
// best effort; a broker hiccup never fails the request.
func (s *IncidentService) notify(incident models.Incident, noticeType string) {
	if s.Notices == nil {
		return
	}
	payload := map[string]interface{}{
		"incident_id": incident.ID,
		"subject":     incident.Subject,
		"status":      incident.Status,
	}
	if err := s.Notices.PublishNotice(incident.CommunityID, noticeType, payload); err != nil {
		logger.Warning("failed to publish %s notice for incident %s: %v", noticeType, incident.ID, err)
	}
}
