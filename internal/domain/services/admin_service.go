package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/utils"
)

// AdminInput carries the fields needed to create or replace an admin account.
// CommunityID names the community the admin will manage and lands on the
// role record.
type AdminInput struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	CommunityID string `json:"community_id" binding:"required"`
	Password    string `json:"password"`
}

// InterfaceAdminService manages community administrator accounts.
type InterfaceAdminService interface {
	Create(caller Caller, input AdminInput) (*models.Admin, error)
	Get(caller Caller, id string) (*models.Admin, error)
	List(caller Caller, page models.PaginationQuery) ([]models.Admin, int64, error)
	Update(caller Caller, id string, input AdminInput) (*models.Admin, error)
	Delete(caller Caller, id string) error
}

type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) InterfaceAdminService {
	return &AdminService{DB: db}
}

// Create provisions an admin: profile, login and role in one transaction.
// Root may create admins anywhere; an admin only inside its own community.
func (s *AdminService) Create(caller Caller, input AdminInput) (*models.Admin, error) {
	if caller.Role == models.RoleResident {
		return nil, ErrNotPermitted
	}
	if !Allow(caller, &input.CommunityID, nil) {
		return nil, ErrNotPermitted
	}
	if input.Password == "" {
		return nil, errors.New("password is required")
	}

	taken, err := EmailInUse(s.DB, input.Email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	admin := models.Admin{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
	}
	communityID := input.CommunityID

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		user := models.User{
			EntityID:     admin.ID,
			EntityType:   models.EntityAdmin,
			PasswordHash: hash,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		role := models.UserRole{
			UserID:      user.ID,
			Role:        models.RoleAdmin,
			CommunityID: &communityID,
		}
		return tx.Create(&role).Error
	})
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AdminService) Get(caller Caller, id string) (*models.Admin, error) {
	if caller.Role == models.RoleResident {
		return nil, ErrNotPermitted
	}

	var admin models.Admin
	if err := s.DB.Where("id = ?", id).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	community, err := s.adminCommunity(admin.ID)
	if err != nil {
		return nil, err
	}
	if !Allow(caller, community, nil) {
		return nil, ErrNotPermitted
	}
	return &admin, nil
}

func (s *AdminService) List(caller Caller, page models.PaginationQuery) ([]models.Admin, int64, error) {
	if caller.Role == models.RoleResident {
		return nil, 0, ErrNotPermitted
	}
	page.Normalize()

	q := s.DB.Model(&models.Admin{}).
		Joins("JOIN users ON users.entity_id = admins.id AND users.entity_type = ?", models.EntityAdmin).
		Joins("JOIN user_roles ON user_roles.user_id = users.id")
	q = scopeByCommunity(q, caller, "user_roles.community_id")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var admins []models.Admin
	if err := q.Order("admins.last_name ASC, admins.first_name ASC").
		Offset(page.Offset()).Limit(page.PerPage).
		Find(&admins).Error; err != nil {
		return nil, 0, err
	}
	return admins, total, nil
}

// Update replaces the admin profile. A new password is applied only when one
// is provided; the community on the role record is not moved here.
func (s *AdminService) Update(caller Caller, id string, input AdminInput) (*models.Admin, error) {
	admin, err := s.Get(caller, id)
	if err != nil {
		return nil, err
	}

	if input.Email != admin.Email {
		taken, err := EmailInUse(s.DB, input.Email, admin.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}

	admin.FirstName = input.FirstName
	admin.LastName = input.LastName
	admin.Email = input.Email
	admin.Phone = input.Phone

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(admin).Error; err != nil {
			return err
		}
		if input.Password == "" {
			return nil
		}
		hash, err := utils.HashPassword(input.Password)
		if err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("entity_id = ? AND entity_type = ?", admin.ID, models.EntityAdmin).
			Update("password_hash", hash).Error
	})
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// Delete removes the admin, its login and role. Sessions are deactivated,
// not deleted, so revoked token ids stay on record.
func (s *AdminService) Delete(caller Caller, id string) error {
	admin, err := s.Get(caller, id)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("entity_id = ? AND entity_type = ?", admin.ID, models.EntityAdmin).
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
		if err := tx.Delete(&user).Error; err != nil {
			return err
		}
		return tx.Delete(admin).Error
	})
}

// adminCommunity resolves the community an admin manages from its role row.
func (s *AdminService) adminCommunity(adminID string) (*string, error) {
	var role models.UserRole
	err := s.DB.Model(&models.UserRole{}).
		Joins("JOIN users ON users.id = user_roles.user_id").
		Where("users.entity_id = ? AND users.entity_type = ?", adminID, models.EntityAdmin).
		First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return role.CommunityID, nil
}
