package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/utils"
)

func TestPasswordResetFlow(t *testing.T) {
	db := setupTestDB(t)
	community := seedCommunity(t, db, "RST")
	resident, _ := seedResident(t, db, community.ID, "forgot@test.local", "old-password")

	mail := &fakeMailPublisher{}
	svc := NewPasswordResetService(db, mail, 15*time.Minute)

	require.NoError(t, svc.Request(resident.Email))

	sent := mail.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, resident.Email, sent[0].To)

	var reset models.PasswordResetToken
	require.NoError(t, db.First(&reset).Error)
	assert.Contains(t, sent[0].Body, reset.Token)

	require.NoError(t, svc.Confirm(reset.Token, "new-password"))

	var user models.User
	require.NoError(t, db.First(&user, "entity_id = ?", resident.ID).Error)
	assert.True(t, utils.CheckPasswordHash("new-password", user.PasswordHash))
	assert.False(t, utils.CheckPasswordHash("old-password", user.PasswordHash))

	// The token is single use.
	assert.ErrorIs(t, svc.Confirm(reset.Token, "another-password"), ErrResetTokenInvalid)
}

func TestPasswordResetUnknownEmailSilent(t *testing.T) {
	db := setupTestDB(t)
	mail := &fakeMailPublisher{}
	svc := NewPasswordResetService(db, mail, 15*time.Minute)

	// Unknown emails answer success and mail nothing so the endpoint
	// cannot be used to probe registered addresses.
	assert.NoError(t, svc.Request("nobody@test.local"))
	assert.Empty(t, mail.sent())
}

func TestPasswordResetExpiredToken(t *testing.T) {
	db := setupTestDB(t)
	community := seedCommunity(t, db, "RST")
	resident, _ := seedResident(t, db, community.ID, "forgot@test.local", "old-password")

	mail := &fakeMailPublisher{}
	svc := NewPasswordResetService(db, mail, 15*time.Minute)

	require.NoError(t, svc.Request(resident.Email))

	var reset models.PasswordResetToken
	require.NoError(t, db.First(&reset).Error)
	require.NoError(t, db.Model(&models.PasswordResetToken{}).
		Where("id = ?", reset.ID).
		Update("created_at", time.Now().Add(-16*time.Minute)).Error)

	assert.ErrorIs(t, svc.Confirm(reset.Token, "new-password"), ErrResetTokenInvalid)

	// The expired token is gone after the attempt.
	var count int64
	require.NoError(t, db.Model(&models.PasswordResetToken{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPasswordResetRevokesSessions(t *testing.T) {
	db := setupTestDB(t)
	community := seedCommunity(t, db, "RST")
	resident, caller := seedResident(t, db, community.ID, "forgot@test.local", "old-password")

	token := models.AuthToken{
		ID:         "session-1",
		UserID:     caller.UserID,
		Active:     true,
		LastUsedAt: time.Now(),
	}
	require.NoError(t, db.Create(&token).Error)

	mail := &fakeMailPublisher{}
	svc := NewPasswordResetService(db, mail, 15*time.Minute)

	require.NoError(t, svc.Request(resident.Email))
	var reset models.PasswordResetToken
	require.NoError(t, db.First(&reset).Error)
	require.NoError(t, svc.Confirm(reset.Token, "new-password"))

	var after models.AuthToken
	require.NoError(t, db.First(&after, "id = ?", token.ID).Error)
	assert.False(t, after.Active)
}

func TestPasswordResetRejectsEmptyPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPasswordResetService(db, &fakeMailPublisher{}, 15*time.Minute)
	assert.ErrorIs(t, svc.Confirm("whatever", ""), ErrResetTokenInvalid)
}

func TestPasswordResetDeleteExpired(t *testing.T) {
	db := setupTestDB(t)
	community := seedCommunity(t, db, "RST")
	resident, _ := seedResident(t, db, community.ID, "forgot@test.local", "old-password")

	mail := &fakeMailPublisher{}
	svc := NewPasswordResetService(db, mail, 15*time.Minute)

	require.NoError(t, svc.Request(resident.Email))
	require.NoError(t, svc.Request(resident.Email))

	// Age one of the two tokens past the TTL.
	var tokens []models.PasswordResetToken
	require.NoError(t, db.Find(&tokens).Error)
	require.NotEmpty(t, tokens)
	require.NoError(t, db.Model(&models.PasswordResetToken{}).
		Where("id = ?", tokens[0].ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	deleted, err := svc.DeleteExpired(time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)
}
