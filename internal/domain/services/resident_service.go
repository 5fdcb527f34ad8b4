package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/notification"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/pkg/logger"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/utils"
)

// ResidentInput carries the fields to create or replace a resident account.
type ResidentInput struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	Unit        string `json:"unit"`
	CommunityID string `json:"community_id" binding:"required"`
	Password    string `json:"password"`
}

// InterfaceResidentService manages resident accounts. Admins manage the
// residents of their community; a resident may read and update itself.
type InterfaceResidentService interface {
	Create(caller Caller, input ResidentInput) (*models.Resident, error)
	Invite(caller Caller, input ResidentInput) (*models.Resident, error)
	Get(caller Caller, id string) (*models.Resident, error)
	List(caller Caller, page models.PaginationQuery) ([]models.Resident, int64, error)
	Update(caller Caller, id string, input ResidentInput) (*models.Resident, error)
	Delete(caller Caller, id string) error
}

type ResidentService struct {
	DB   *gorm.DB
	Mail notification.MailPublisher
}

func NewResidentService(db *gorm.DB, mail notification.MailPublisher) InterfaceResidentService {
	return &ResidentService{DB: db, Mail: mail}
}

// Create provisions a resident: profile, login and role in one transaction.
func (s *ResidentService) Create(caller Caller, input ResidentInput) (*models.Resident, error) {
	if caller.Role == models.RoleResident {
		return nil, ErrNotPermitted
	}
	if !Allow(caller, &input.CommunityID, nil) {
		return nil, ErrNotPermitted
	}
	if input.Password == "" {
		return nil, errors.New("password is required")
	}
	return s.create(input)
}

// Invite provisions a resident with a generated temporary password and mails
// it to them. The mail goes through the queue; a publish failure does not
// roll the account back.
func (s *ResidentService) Invite(caller Caller, input ResidentInput) (*models.Resident, error) {
	if caller.Role == models.RoleResident {
		return nil, ErrNotPermitted
	}
	if !Allow(caller, &input.CommunityID, nil) {
		return nil, ErrNotPermitted
	}

	tempPassword := uuid.NewString()
	input.Password = tempPassword

	resident, err := s.create(input)
	if err != nil {
		return nil, err
	}

	msg := notification.MailMessage{
		To:      resident.Email,
		Subject: "Welcome to your condominium portal",
		Body: fmt.Sprintf(
			"Hello %s,<br><br>An account has been created for you. Sign in with this temporary password and change it right away:<br><br><b>%s</b>",
			resident.FirstName, tempPassword),
	}
	if s.Mail == nil {
		logger.Warning("mail queue not configured, invite for %s not sent", resident.Email)
	} else if err := s.Mail.PublishMail(msg); err != nil {
		logger.Error("failed to queue invite mail for %s: %v", resident.Email, err)
	}
	return resident, nil
}

func (s *ResidentService) create(input ResidentInput) (*models.Resident, error) {
	taken, err := EmailInUse(s.DB, input.Email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	var community models.Community
	if err := s.DB.Where("id = ?", input.CommunityID).First(&community).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	resident := models.Resident{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Phone:       input.Phone,
		Unit:        input.Unit,
		CommunityID: input.CommunityID,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&resident).Error; err != nil {
			return err
		}
		user := models.User{
			EntityID:     resident.ID,
			EntityType:   models.EntityResident,
			PasswordHash: hash,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		role := models.UserRole{
			UserID:      user.ID,
			Role:        models.RoleResident,
			CommunityID: &resident.CommunityID,
		}
		return tx.Create(&role).Error
	})
	if err != nil {
		return nil, err
	}
	return &resident, nil
}

func (s *ResidentService) Get(caller Caller, id string) (*models.Resident, error) {
	var resident models.Resident
	if err := s.DB.Where("id = ?", id).First(&resident).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !Allow(caller, &resident.CommunityID, &resident.ID) {
		return nil, ErrNotPermitted
	}
	return &resident, nil
}

func (s *ResidentService) List(caller Caller, page models.PaginationQuery) ([]models.Resident, int64, error) {
	page.Normalize()

	q := scopePersonal(s.DB.Model(&models.Resident{}), caller, "community_id", "id")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var residents []models.Resident
	if err := q.Order("last_name ASC, first_name ASC").
		Offset(page.Offset()).Limit(page.PerPage).
		Find(&residents).Error; err != nil {
		return nil, 0, err
	}
	return residents, total, nil
}

// Update replaces the resident profile. Residents may edit their own record
// but cannot move themselves to another community.
func (s *ResidentService) Update(caller Caller, id string, input ResidentInput) (*models.Resident, error) {
	resident, err := s.Get(caller, id)
	if err != nil {
		return nil, err
	}

	if input.CommunityID != resident.CommunityID {
		if caller.Role == models.RoleResident || !Allow(caller, &input.CommunityID, nil) {
			return nil, ErrNotPermitted
		}
	}

	if input.Email != resident.Email {
		taken, err := EmailInUse(s.DB, input.Email, resident.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}

	resident.FirstName = input.FirstName
	resident.LastName = input.LastName
	resident.Email = input.Email
	resident.Phone = input.Phone
	resident.Unit = input.Unit
	resident.CommunityID = input.CommunityID

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(resident).Error; err != nil {
			return err
		}
		if input.CommunityID != "" {
			if err := tx.Model(&models.UserRole{}).
				Where("user_id IN (?)", tx.Model(&models.User{}).Select("id").
					Where("entity_id = ? AND entity_type = ?", resident.ID, models.EntityResident)).
				Update("community_id", resident.CommunityID).Error; err != nil {
				return err
			}
		}
		if input.Password == "" {
			return nil
		}
		hash, err := utils.HashPassword(input.Password)
		if err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("entity_id = ? AND entity_type = ?", resident.ID, models.EntityResident).
			Update("password_hash", hash).Error
	})
	if err != nil {
		return nil, err
	}
	return resident, nil
}

// Delete removes the resident and everything hanging off it: login, role,
// vehicles and reservations. Sessions are deactivated and kept.
func (s *ResidentService) Delete(caller Caller, id string) error {
	if caller.Role == models.RoleResident {
		return ErrNotPermitted
	}
	resident, err := s.Get(caller, id)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("entity_id = ? AND entity_type = ?", resident.ID, models.EntityResident).
			First(&user).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.AuthToken{}).
			Where("user_id = ?", user.ID).
			Update("active", false).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.PasswordResetToken{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		if err := tx.Where("resident_id = ?", resident.ID).Delete(&models.Vehicle{}).Error; err != nil {
			return err
		}
		if err := tx.Where("resident_id = ?", resident.ID).Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&user).Error; err != nil {
			return err
		}
		return tx.Delete(resident).Error
	})
}
