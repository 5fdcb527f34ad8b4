package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
)

type reservationFixture struct {
	db        *gorm.DB
	svc       InterfaceReservationService
	community *models.Community
	area      *models.CommonArea
	resident  *models.Resident
	caller    Caller
}

func newReservationFixture(t *testing.T) *reservationFixture {
	t.Helper()
	db := setupTestDB(t)
	community := seedCommunity(t, db, "RSV")

	area := &models.CommonArea{
		CommunityID: community.ID,
		Name:        "Party Room",
		Capacity:    30,
	}
	require.NoError(t, db.Create(area).Error)

	resident, caller := seedResident(t, db, community.ID, "booker@test.local", "password123")

	return &reservationFixture{
		db:        db,
		svc:       NewReservationService(db),
		community: community,
		area:      area,
		resident:  resident,
		caller:    caller,
	}
}

func (f *reservationFixture) window(startOffset, endOffset time.Duration) ReservationInput {
	base := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	return ReservationInput{
		ResidentID:   f.resident.ID,
		CommonAreaID: f.area.ID,
		StartTime:    base.Add(startOffset),
		EndTime:      base.Add(endOffset),
	}
}

func TestReservationCreate(t *testing.T) {
	f := newReservationFixture(t)

	reservation, err := f.svc.Create(f.caller, f.window(0, 2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, models.ReservationReserved, reservation.Status)
	assert.Equal(t, f.resident.ID, reservation.ResidentID)
}

func TestReservationCreateRejectsInvertedWindow(t *testing.T) {
	f := newReservationFixture(t)

	_, err := f.svc.Create(f.caller, f.window(2*time.Hour, 0))
	assert.ErrorIs(t, err, ErrInvalidWindow)

	// Zero-length windows are equally invalid.
	_, err = f.svc.Create(f.caller, f.window(time.Hour, time.Hour))
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestReservationOverlapRejected(t *testing.T) {
	f := newReservationFixture(t)

	first, err := f.svc.Create(f.caller, f.window(0, 2*time.Hour))
	require.NoError(t, err)

	// Partially intersecting window collides.
	_, err = f.svc.Create(f.caller, f.window(time.Hour, 3*time.Hour))
	var overlap *OverlapError
	require.ErrorAs(t, err, &overlap)
	assert.Equal(t, first.StartTime.Unix(), overlap.Start.Unix())
	assert.Equal(t, first.EndTime.Unix(), overlap.End.Unix())

	// A window fully inside the booking collides too.
	_, err = f.svc.Create(f.caller, f.window(30*time.Minute, 90*time.Minute))
	assert.ErrorAs(t, err, &overlap)
}

func TestReservationBackToBackAllowed(t *testing.T) {
	f := newReservationFixture(t)

	_, err := f.svc.Create(f.caller, f.window(0, 2*time.Hour))
	require.NoError(t, err)

	// Windows are half-open, so a booking starting exactly when the
	// previous one ends does not collide.
	_, err = f.svc.Create(f.caller, f.window(2*time.Hour, 4*time.Hour))
	assert.NoError(t, err)

	_, err = f.svc.Create(f.caller, f.window(-2*time.Hour, 0))
	assert.NoError(t, err)
}

func TestReservationFinishedDoesNotBlock(t *testing.T) {
	f := newReservationFixture(t)

	reservation, err := f.svc.Create(f.caller, f.window(0, 2*time.Hour))
	require.NoError(t, err)
	require.NoError(t, f.db.Model(&models.Reservation{}).
		Where("id = ?", reservation.ID).
		Update("status", models.ReservationFinished).Error)

	_, err = f.svc.Create(f.caller, f.window(0, 2*time.Hour))
	assert.NoError(t, err)
}

func TestReservationResidentBooksOnlyForSelf(t *testing.T) {
	f := newReservationFixture(t)
	other, _ := seedResident(t, f.db, f.community.ID, "other@test.local", "password123")

	input := f.window(0, time.Hour)
	input.ResidentID = other.ID

	// The resident id is forced back to the caller regardless of the
	// request body.
	reservation, err := f.svc.Create(f.caller, input)
	require.NoError(t, err)
	assert.Equal(t, f.resident.ID, reservation.ResidentID)
}

func TestReservationAdminBooksOnBehalf(t *testing.T) {
	f := newReservationFixture(t)
	_, adminCaller := seedAdmin(t, f.db, &f.community.ID, "admin@test.local", "password123", models.RoleAdmin)

	reservation, err := f.svc.Create(adminCaller, f.window(0, time.Hour))
	require.NoError(t, err)
	assert.Equal(t, f.resident.ID, reservation.ResidentID)
}

func TestReservationCrossCommunityDenied(t *testing.T) {
	f := newReservationFixture(t)
	otherCommunity := seedCommunity(t, f.db, "OTH")
	_, foreignAdmin := seedAdmin(t, f.db, &otherCommunity.ID, "foreign@test.local", "password123", models.RoleAdmin)

	_, err := f.svc.Create(foreignAdmin, f.window(0, time.Hour))
	assert.ErrorIs(t, err, ErrNotPermitted)
}

func TestReservationAreaAndResidentMustShareCommunity(t *testing.T) {
	f := newReservationFixture(t)
	otherCommunity := seedCommunity(t, f.db, "OTH")
	foreignArea := &models.CommonArea{CommunityID: otherCommunity.ID, Name: "Foreign Gym"}
	require.NoError(t, f.db.Create(foreignArea).Error)

	input := f.window(0, time.Hour)
	input.CommonAreaID = foreignArea.ID
	_, err := f.svc.Create(rootCaller(t, f.db), input)
	assert.ErrorIs(t, err, ErrNotPermitted)
}

func TestReservationUpdateReschedules(t *testing.T) {
	f := newReservationFixture(t)

	reservation, err := f.svc.Create(f.caller, f.window(0, 2*time.Hour))
	require.NoError(t, err)

	updated, err := f.svc.Update(f.caller, reservation.ID, f.window(4*time.Hour, 6*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, reservation.ID, updated.ID)

	// Rescheduling over itself is fine: the overlap check skips the
	// booking being moved.
	_, err = f.svc.Update(f.caller, reservation.ID, f.window(4*time.Hour, 5*time.Hour))
	assert.NoError(t, err)
}

func TestReservationUpdateOnlyBeforeStart(t *testing.T) {
	f := newReservationFixture(t)

	reservation, err := f.svc.Create(f.caller, f.window(0, 2*time.Hour))
	require.NoError(t, err)
	require.NoError(t, f.db.Model(&models.Reservation{}).
		Where("id = ?", reservation.ID).
		Update("status", models.ReservationOngoing).Error)

	_, err = f.svc.Update(f.caller, reservation.ID, f.window(4*time.Hour, 6*time.Hour))
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestReservationListScoping(t *testing.T) {
	f := newReservationFixture(t)
	other, otherCaller := seedResident(t, f.db, f.community.ID, "other@test.local", "password123")

	_, err := f.svc.Create(f.caller, f.window(0, time.Hour))
	require.NoError(t, err)
	input := f.window(time.Hour, 2*time.Hour)
	input.ResidentID = other.ID
	_, err = f.svc.Create(otherCaller, input)
	require.NoError(t, err)

	// Residents see only their own bookings.
	mine, total, err := f.svc.List(f.caller, models.PaginationQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, mine, 1)
	assert.Equal(t, f.resident.ID, mine[0].ResidentID)

	// Admins see the whole community.
	_, adminCaller := seedAdmin(t, f.db, &f.community.ID, "admin@test.local", "password123", models.RoleAdmin)
	all, total, err := f.svc.List(adminCaller, models.PaginationQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, all, 2)
}

func TestReservationSweepStatuses(t *testing.T) {
	f := newReservationFixture(t)
	now := time.Now()

	seed := func(start, end time.Time, status models.ReservationStatus) *models.Reservation {
		r := &models.Reservation{
			ResidentID:   f.resident.ID,
			CommonAreaID: f.area.ID,
			StartTime:    start,
			EndTime:      end,
			Status:       status,
		}
		require.NoError(t, f.db.Create(r).Error)
		return r
	}

	started := seed(now.Add(-time.Hour), now.Add(time.Hour), models.ReservationReserved)
	ended := seed(now.Add(-3*time.Hour), now.Add(-2*time.Hour), models.ReservationOngoing)
	missed := seed(now.Add(-5*time.Hour), now.Add(-4*time.Hour), models.ReservationReserved)
	future := seed(now.Add(time.Hour), now.Add(2*time.Hour), models.ReservationReserved)

	moved, err := f.svc.SweepStatuses(now)
	require.NoError(t, err)
	assert.EqualValues(t, 3, moved)

	status := func(id string) models.ReservationStatus {
		var r models.Reservation
		require.NoError(t, f.db.First(&r, "id = ?", id).Error)
		return r.Status
	}

	assert.Equal(t, models.ReservationOngoing, status(started.ID))
	assert.Equal(t, models.ReservationFinished, status(ended.ID))
	assert.Equal(t, models.ReservationFinished, status(missed.ID))
	assert.Equal(t, models.ReservationReserved, status(future.ID))

	// A second sweep at the same instant moves nothing.
	moved, err = f.svc.SweepStatuses(now)
	require.NoError(t, err)
	assert.Zero(t, moved)
}
