package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/notification"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/pkg/logger"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/utils"
)

// InterfacePasswordResetService handles the forgot-password flow: a mailed
// one-shot token that, within its TTL, lets the user set a new password.
type InterfacePasswordResetService interface {
	Request(email string) error
	Confirm(token, newPassword string) error
	DeleteExpired(now time.Time) (int64, error)
}

type PasswordResetService struct {
	DB   *gorm.DB
	Mail notification.MailPublisher
	TTL  time.Duration
}

func NewPasswordResetService(db *gorm.DB, mail notification.MailPublisher, ttl time.Duration) InterfacePasswordResetService {
	return &PasswordResetService{DB: db, Mail: mail, TTL: ttl}
}

// Request issues a reset token for the account behind the email and mails
// it. Unknown emails succeed silently so the endpoint cannot be used to
// probe which addresses have accounts.
func (s *PasswordResetService) Request(email string) error {
	user, err := FindUserByEmail(s.DB, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Info("password reset requested for unknown email")
			return nil
		}
		return err
	}

	reset := models.PasswordResetToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Token:     uuid.NewString(),
		CreatedAt: time.Now(),
	}
	if err := s.DB.Create(&reset).Error; err != nil {
		return err
	}

	msg := notification.MailMessage{
		To:      email,
		Subject: "Password reset",
		Body: fmt.Sprintf(
			"A password reset was requested for your account. Use this code within %d minutes:<br><br><b>%s</b><br><br>If you did not ask for this, ignore this message.",
			int(s.TTL.Minutes()), reset.Token),
	}
	if s.Mail == nil {
		logger.Warning("mail queue not configured, reset token not sent")
	} else if err := s.Mail.PublishMail(msg); err != nil {
		logger.Error("failed to queue password reset mail: %v", err)
	}
	return nil
}

// Confirm validates the token, sets the new password and revokes every live
// session of the user. The token is single use: it is deleted on success.
func (s *PasswordResetService) Confirm(token, newPassword string) error {
	if newPassword == "" {
		return ErrResetTokenInvalid
	}

	var reset models.PasswordResetToken
	if err := s.DB.Where("token = ?", token).First(&reset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResetTokenInvalid
		}
		return err
	}
	if time.Since(reset.CreatedAt) > s.TTL {
		// Expired tokens are swept periodically; delete this one now anyway.
		s.DB.Delete(&models.PasswordResetToken{}, "id = ?", reset.ID)
		return ErrResetTokenInvalid
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("id = ?", reset.UserID).
			Update("password_hash", hash).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.AuthToken{}).
			Where("user_id = ?", reset.UserID).
			Update("active", false).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", reset.UserID).
			Delete(&models.PasswordResetToken{}).Error
	})
}

// DeleteExpired hard-deletes reset tokens older than the TTL. Called by the
// background cleanup task.
func (s *PasswordResetService) DeleteExpired(now time.Time) (int64, error) {
	cutoff := now.Add(-s.TTL)
	result := s.DB.Where("created_at < ?", cutoff).Delete(&models.PasswordResetToken{})
	return result.RowsAffected, result.Error
}
