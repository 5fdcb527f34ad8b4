package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
)

// ReservationInput carries the fields to book or rebook a common area.
type ReservationInput struct {
	ResidentID   string    `json:"resident_id"`
	CommonAreaID string    `json:"common_area_id" binding:"required"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time" binding:"required"`
}

// InterfaceReservationService books common areas. Bookings occupy the
// half-open window [StartTime, EndTime); two reservations of the same area
// collide iff their windows intersect. The collision check and the insert
// run inside one transaction so concurrent requests cannot both win.
type InterfaceReservationService interface {
	Create(caller Caller, input ReservationInput) (*models.Reservation, error)
	Get(caller Caller, id string) (*models.Reservation, error)
	List(caller Caller, page models.PaginationQuery) ([]models.Reservation, int64, error)
	Update(caller Caller, id string, input ReservationInput) (*models.Reservation, error)
	Delete(caller Caller, id string) error
	SweepStatuses(now time.Time) (int64, error)
}

type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) InterfaceReservationService {
	return &ReservationService{DB: db}
}

// Create books a common area. Residents book for themselves only; admins and
// root may book on behalf of any resident in scope.
func (s *ReservationService) Create(caller Caller, input ReservationInput) (*models.Reservation, error) {
	if caller.Role == models.RoleResident {
		input.ResidentID = caller.EntityID
	}
	if input.ResidentID == "" {
		return nil, errors.New("resident_id is required")
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, ErrInvalidWindow
	}

	resident, area, err := s.checkParticipants(caller, input)
	if err != nil {
		return nil, err
	}

	reservation := models.Reservation{
		ResidentID:   resident.ID,
		CommonAreaID: area.ID,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Status:       models.ReservationReserved,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.checkOverlap(tx, area.ID, input.StartTime, input.EndTime, ""); err != nil {
			return err
		}
		return tx.Create(&reservation).Error
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// checkParticipants loads the resident and the area and verifies the caller
// may act for them. The resident and area must belong to the same community.
func (s *ReservationService) checkParticipants(caller Caller, input ReservationInput) (*models.Resident, *models.CommonArea, error) {
	var resident models.Resident
	if err := s.DB.Where("id = ?", input.ResidentID).First(&resident).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	var area models.CommonArea
	if err := s.DB.Where("id = ?", input.CommonAreaID).First(&area).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if area.CommunityID != resident.CommunityID {
		return nil, nil, ErrNotPermitted
	}
	if !Allow(caller, &resident.CommunityID, &resident.ID) {
		return nil, nil, ErrNotPermitted
	}
	return &resident, &area, nil
}

// checkOverlap fails with *OverlapError when any reservation of the area
// still intersects [start, end). Finished reservations no longer block and
// excludeID skips the booking being rescheduled.
func (s *ReservationService) checkOverlap(tx *gorm.DB, areaID string, start, end time.Time, excludeID string) error {
	var conflict models.Reservation
	err := tx.Where("common_area_id = ? AND id <> ? AND status <> ?", areaID, excludeID, models.ReservationFinished).
		Where("start_time < ? AND ? < end_time", end, start).
		First(&conflict).Error
	if err == nil {
		return &OverlapError{Start: conflict.StartTime, End: conflict.EndTime}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (s *ReservationService) Get(caller Caller, id string) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.DB.Preload("Resident").Preload("CommonArea").
		Where("id = ?", id).First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if reservation.Resident == nil ||
		!Allow(caller, &reservation.Resident.CommunityID, &reservation.ResidentID) {
		return nil, ErrNotPermitted
	}
	return &reservation, nil
}

func (s *ReservationService) List(caller Caller, page models.PaginationQuery) ([]models.Reservation, int64, error) {
	page.Normalize()

	q := s.DB.Model(&models.Reservation{}).
		Joins("JOIN residents ON residents.id = reservations.resident_id")
	q = scopePersonal(q, caller, "residents.community_id", "reservations.resident_id")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reservations []models.Reservation
	if err := q.Preload("CommonArea").
		Order("reservations.start_time DESC").
		Offset(page.Offset()).Limit(page.PerPage).
		Find(&reservations).Error; err != nil {
		return nil, 0, err
	}
	return reservations, total, nil
}

// Update reschedules a booking. Only reservations that have not started can
// move, and the new window goes through the same transactional overlap
// check, ignoring the booking itself.
func (s *ReservationService) Update(caller Caller, id string, input ReservationInput) (*models.Reservation, error) {
	reservation, err := s.Get(caller, id)
	if err != nil {
		return nil, err
	}
	if reservation.Status != models.ReservationReserved {
		return nil, ErrInvalidWindow
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, ErrInvalidWindow
	}
	if input.CommonAreaID != "" && input.CommonAreaID != reservation.CommonAreaID {
		var area models.CommonArea
		if err := s.DB.Where("id = ?", input.CommonAreaID).First(&area).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if area.CommunityID != reservation.Resident.CommunityID {
			return nil, ErrNotPermitted
		}
		reservation.CommonAreaID = area.ID
	}

	reservation.StartTime = input.StartTime
	reservation.EndTime = input.EndTime

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.checkOverlap(tx, reservation.CommonAreaID, input.StartTime, input.EndTime, reservation.ID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(reservation).Error
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

func (s *ReservationService) Delete(caller Caller, id string) error {
	reservation, err := s.Get(caller, id)
	if err != nil {
		return err
	}
	return s.DB.Delete(&models.Reservation{}, "id = ?", reservation.ID).Error
}

// SweepStatuses advances reservation statuses to match the clock. Each
// transition is one conditional UPDATE keyed on the prior status, so a sweep
// racing another sweep (or a reschedule) can never regress a status:
//
//	reserved -> ongoing   when start <= now < end
//	ongoing  -> finished  when end <= now
//	reserved -> finished  when end <= now (window missed entirely)
//
// Returns the number of rows moved.
func (s *ReservationService) SweepStatuses(now time.Time) (int64, error) {
	var moved int64

	res := s.DB.Model(&models.Reservation{}).
		Where("status = ? AND start_time <= ? AND end_time > ?", models.ReservationReserved, now, now).
		Update("status", models.ReservationOngoing)
	if res.Error != nil {
		return moved, res.Error
	}
	moved += res.RowsAffected

	res = s.DB.Model(&models.Reservation{}).
		Where("status = ? AND end_time <= ?", models.ReservationOngoing, now).
		Update("status", models.ReservationFinished)
	if res.Error != nil {
		return moved, res.Error
	}
	moved += res.RowsAffected

	res = s.DB.Model(&models.Reservation{}).
		Where("status = ? AND end_time <= ?", models.ReservationReserved, now).
		Update("status", models.ReservationFinished)
	if res.Error != nil {
		return moved, res.Error
	}
	moved += res.RowsAffected

	return moved, nil
}
