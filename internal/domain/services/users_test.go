package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
)

func TestEmailInUseSpansBothTables(t *testing.T) {
	db := setupTestDB(t)
	community := seedCommunity(t, db, "EML")
	resident, _ := seedResident(t, db, community.ID, "resident@test.local", "password123")
	admin, _ := seedAdmin(t, db, &community.ID, "admin@test.local", "password123", models.RoleAdmin)

	check := func(email, exclude string) bool {
		used, err := EmailInUse(db, email, exclude)
		require.NoError(t, err)
		return used
	}

	assert.True(t, check("resident@test.local", ""))
	assert.True(t, check("admin@test.local", ""))
	assert.False(t, check("free@test.local", ""))

	// A profile keeping its own email is not a conflict.
	assert.False(t, check("resident@test.local", resident.ID))
	assert.False(t, check("admin@test.local", admin.ID))

	// But excluding one profile does not free the other table's email.
	assert.True(t, check("admin@test.local", resident.ID))
}

func TestFindUserByEmail(t *testing.T) {
	db := setupTestDB(t)
	community := seedCommunity(t, db, "EML")
	resident, residentCaller := seedResident(t, db, community.ID, "resident@test.local", "password123")
	admin, adminCaller := seedAdmin(t, db, &community.ID, "admin@test.local", "password123", models.RoleAdmin)

	user, err := FindUserByEmail(db, "resident@test.local")
	require.NoError(t, err)
	assert.Equal(t, residentCaller.UserID, user.ID)
	assert.Equal(t, resident.ID, user.EntityID)
	assert.Equal(t, models.EntityResident, user.EntityType)

	user, err = FindUserByEmail(db, "admin@test.local")
	require.NoError(t, err)
	assert.Equal(t, adminCaller.UserID, user.ID)
	assert.Equal(t, admin.ID, user.EntityID)
	assert.Equal(t, models.EntityAdmin, user.EntityType)

	_, err = FindUserByEmail(db, "nobody@test.local")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
