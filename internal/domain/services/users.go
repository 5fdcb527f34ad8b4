package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
)

// EmailInUse reports whether an email already belongs to an admin or a
// resident, excluding the profile with excludeID (pass "" for creations).
// Email uniqueness spans both tables.
func EmailInUse(db *gorm.DB, email, excludeID string) (bool, error) {
	var count int64
	if err := db.Model(&models.Admin{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	if err := db.Model(&models.Resident{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindUserByEmail resolves an email to its login row through whichever
// profile table holds it.
func FindUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var admin models.Admin
	if err := db.Where("email = ?", email).First(&admin).Error; err == nil {
		var user models.User
		if err := db.Where("entity_id = ?", admin.ID).First(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var resident models.Resident
	if err := db.Where("email = ?", email).First(&resident).Error; err != nil {
		return nil, err
	}
	var user models.User
	if err := db.Where("entity_id = ?", resident.ID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
