package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
)

func TestCommunityCreateRootOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCommunityService(db)
	existing := seedCommunity(t, db, "EXS")
	_, admin := seedAdmin(t, db, &existing.ID, "manager@test.local", "password123", models.RoleAdmin)

	err := svc.Create(admin, &models.Community{Name: "New", ShortName: "NEW"})
	assert.ErrorIs(t, err, ErrNotPermitted)

	err = svc.Create(rootCaller(t, db), &models.Community{Name: "New", ShortName: "NEW"})
	assert.NoError(t, err)
}

func TestCommunityVisibilityScoping(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCommunityService(db)
	mine := seedCommunity(t, db, "MIN")
	other := seedCommunity(t, db, "OTH")
	_, admin := seedAdmin(t, db, &mine.ID, "manager@test.local", "password123", models.RoleAdmin)

	got, err := svc.Get(admin, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, mine.ID, got.ID)

	_, err = svc.Get(admin, other.ID)
	assert.ErrorIs(t, err, ErrNotPermitted)

	list, total, err := svc.List(admin, models.PaginationQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)

	_, total, err = svc.List(rootCaller(t, db), models.PaginationQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestCommunityUpdateAndDeleteRootOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCommunityService(db)
	community := seedCommunity(t, db, "UPD")
	_, admin := seedAdmin(t, db, &community.ID, "manager@test.local", "password123", models.RoleAdmin)

	_, err := svc.Update(admin, community.ID, &models.Community{Name: "Renamed", ShortName: "UPD"})
	assert.ErrorIs(t, err, ErrNotPermitted)

	root := rootCaller(t, db)
	updated, err := svc.Update(root, community.ID, &models.Community{Name: "Renamed", ShortName: "UPD"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	assert.ErrorIs(t, svc.Delete(admin, community.ID), ErrNotPermitted)
	require.NoError(t, svc.Delete(root, community.ID))

	_, err = svc.Get(root, community.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
