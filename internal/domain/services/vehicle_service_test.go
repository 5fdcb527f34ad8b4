package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
)

type vehicleFixture struct {
	db        *gorm.DB
	svc       InterfaceVehicleService
	community *models.Community
	resident  *models.Resident
	owner     Caller
	admin     Caller
}

func newVehicleFixture(t *testing.T) *vehicleFixture {
	t.Helper()
	db := setupTestDB(t)
	community := seedCommunity(t, db, "VEH")
	resident, owner := seedResident(t, db, community.ID, "driver@test.local", "password123")
	_, admin := seedAdmin(t, db, &community.ID, "garage@test.local", "password123", models.RoleAdmin)

	return &vehicleFixture{
		db:        db,
		svc:       NewVehicleService(db),
		community: community,
		resident:  resident,
		owner:     owner,
		admin:     admin,
	}
}

func TestVehicleCreateRegistersForSelf(t *testing.T) {
	f := newVehicleFixture(t)

	vehicle, err := f.svc.Create(f.owner, VehicleInput{
		// Residents always register for themselves.
		ResidentID: "someone-else",
		Plate:      "ABC-1234",
		Color:      "blue",
		Model:      "Corolla",
	})
	require.NoError(t, err)
	assert.Equal(t, f.resident.ID, vehicle.ResidentID)
	assert.Equal(t, "ABC-1234", vehicle.Plate)
}

func TestVehicleDuplicatePlateRejected(t *testing.T) {
	f := newVehicleFixture(t)

	_, err := f.svc.Create(f.owner, VehicleInput{Plate: "ABC-1234"})
	require.NoError(t, err)

	_, err = f.svc.Create(f.owner, VehicleInput{Plate: "ABC-1234"})
	assert.ErrorIs(t, err, ErrPlateTaken)

	// Another resident in the same community collides too.
	_, neighbour := seedResident(t, f.db, f.community.ID, "neighbour@test.local", "password123")
	_, err = f.svc.Create(neighbour, VehicleInput{Plate: "ABC-1234"})
	assert.ErrorIs(t, err, ErrPlateTaken)

	var count int64
	require.NoError(t, f.db.Model(&models.Vehicle{}).
		Where("plate = ?", "ABC-1234").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestVehicleSamePlateOtherCommunityAllowed(t *testing.T) {
	f := newVehicleFixture(t)

	_, err := f.svc.Create(f.owner, VehicleInput{Plate: "ABC-1234"})
	require.NoError(t, err)

	other := seedCommunity(t, f.db, "VEH2")
	_, visitor := seedResident(t, f.db, other.ID, "visitor@test.local", "password123")
	_, err = f.svc.Create(visitor, VehicleInput{Plate: "ABC-1234"})
	assert.NoError(t, err)
}

func TestVehicleUpdatePlateCollision(t *testing.T) {
	f := newVehicleFixture(t)

	first, err := f.svc.Create(f.owner, VehicleInput{Plate: "AAA-0001"})
	require.NoError(t, err)
	second, err := f.svc.Create(f.owner, VehicleInput{Plate: "BBB-0002", Color: "red"})
	require.NoError(t, err)

	_, err = f.svc.Update(f.owner, second.ID, VehicleInput{Plate: first.Plate})
	assert.ErrorIs(t, err, ErrPlateTaken)

	// Keeping its own plate is not a collision.
	updated, err := f.svc.Update(f.owner, second.ID, VehicleInput{Plate: second.Plate, Color: "green"})
	require.NoError(t, err)
	assert.Equal(t, "green", updated.Color)
}

func TestVehicleResidentCannotReassign(t *testing.T) {
	f := newVehicleFixture(t)

	vehicle, err := f.svc.Create(f.owner, VehicleInput{Plate: "CCC-0003"})
	require.NoError(t, err)

	other, _ := seedResident(t, f.db, f.community.ID, "other@test.local", "password123")
	_, err = f.svc.Update(f.owner, vehicle.ID, VehicleInput{
		ResidentID: other.ID,
		Plate:      vehicle.Plate,
	})
	assert.ErrorIs(t, err, ErrNotPermitted)

	// The admin can move it, and the plate check follows the new owner's
	// community.
	moved, err := f.svc.Update(f.admin, vehicle.ID, VehicleInput{
		ResidentID: other.ID,
		Plate:      vehicle.Plate,
	})
	require.NoError(t, err)
	assert.Equal(t, other.ID, moved.ResidentID)
}

func TestVehicleListScopedToOwner(t *testing.T) {
	f := newVehicleFixture(t)

	_, err := f.svc.Create(f.owner, VehicleInput{Plate: "DDD-0004"})
	require.NoError(t, err)
	_, otherCaller := seedResident(t, f.db, f.community.ID, "second@test.local", "password123")
	_, err = f.svc.Create(otherCaller, VehicleInput{Plate: "EEE-0005"})
	require.NoError(t, err)

	mine, total, err := f.svc.List(f.owner, models.PaginationQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, mine, 1)
	assert.Equal(t, f.resident.ID, mine[0].ResidentID)

	all, total, err := f.svc.List(f.admin, models.PaginationQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)
}
