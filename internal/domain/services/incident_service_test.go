package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
)

type incidentFixture struct {
	db        *gorm.DB
	notices   *fakeNoticePublisher
	svc       InterfaceIncidentService
	community *models.Community
	resident  *models.Resident
	reporter  Caller
	admin     Caller
}

func newIncidentFixture(t *testing.T) *incidentFixture {
	t.Helper()
	db := setupTestDB(t)
	community := seedCommunity(t, db, "INC")
	resident, reporter := seedResident(t, db, community.ID, "reporter@test.local", "password123")
	_, admin := seedAdmin(t, db, &community.ID, "manager@test.local", "password123", models.RoleAdmin)
	notices := &fakeNoticePublisher{}

	return &incidentFixture{
		db:        db,
		notices:   notices,
		svc:       NewIncidentService(db, notices),
		community: community,
		resident:  resident,
		reporter:  reporter,
		admin:     admin,
	}
}

func TestIncidentCreateOpensAndNotifies(t *testing.T) {
	f := newIncidentFixture(t)

	incident, err := f.svc.Create(f.reporter, IncidentInput{
		Subject: "Elevator stuck",
		// The client cannot pick a starting status.
		Status: models.IncidentResolved,
	})
	require.NoError(t, err)
	assert.Equal(t, models.IncidentOpen, incident.Status)
	assert.Equal(t, f.resident.ID, incident.ResidentID)
	assert.Equal(t, f.community.ID, incident.CommunityID)

	require.Len(t, f.notices.notices, 1)
	assert.Equal(t, f.community.ID, f.notices.notices[0].CommunityID)
	assert.Equal(t, "incident_opened", f.notices.notices[0].NoticeType)
}

func TestIncidentStatusChangeByAdminOnly(t *testing.T) {
	f := newIncidentFixture(t)

	incident, err := f.svc.Create(f.reporter, IncidentInput{Subject: "Leak in garage"})
	require.NoError(t, err)

	_, err = f.svc.Update(f.reporter, incident.ID, IncidentInput{
		Subject: "Leak in garage",
		Status:  models.IncidentResolved,
	})
	assert.ErrorIs(t, err, ErrNotPermitted)

	updated, err := f.svc.Update(f.admin, incident.ID, IncidentInput{
		Subject: "Leak in garage",
		Status:  models.IncidentInProgress,
	})
	require.NoError(t, err)
	assert.Equal(t, models.IncidentInProgress, updated.Status)

	// One notice for the creation, one for the status move.
	require.Len(t, f.notices.notices, 2)
	assert.Equal(t, "incident_status_changed", f.notices.notices[1].NoticeType)
}

func TestIncidentUpdateRejectsUnknownStatus(t *testing.T) {
	f := newIncidentFixture(t)

	incident, err := f.svc.Create(f.reporter, IncidentInput{Subject: "Noise"})
	require.NoError(t, err)

	_, err = f.svc.Update(f.admin, incident.ID, IncidentInput{
		Subject: "Noise",
		Status:  models.IncidentStatus("bogus"),
	})
	assert.Error(t, err)
}

func TestIncidentResidentEditsOwnReportText(t *testing.T) {
	f := newIncidentFixture(t)

	incident, err := f.svc.Create(f.reporter, IncidentInput{Subject: "Noise"})
	require.NoError(t, err)

	updated, err := f.svc.Update(f.reporter, incident.ID, IncidentInput{
		Subject:     "Noise at night",
		Description: "Unit 304, every night after 23:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Noise at night", updated.Subject)
	assert.Equal(t, models.IncidentOpen, updated.Status)
}

func TestIncidentResidentSeesOnlyOwnReports(t *testing.T) {
	f := newIncidentFixture(t)
	_, otherReporter := seedResident(t, f.db, f.community.ID, "other@test.local", "password123")

	mine, err := f.svc.Create(f.reporter, IncidentInput{Subject: "Mine"})
	require.NoError(t, err)
	theirs, err := f.svc.Create(otherReporter, IncidentInput{Subject: "Theirs"})
	require.NoError(t, err)

	list, total, err := f.svc.List(f.reporter, models.PaginationQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)

	_, err = f.svc.Get(f.reporter, theirs.ID)
	assert.ErrorIs(t, err, ErrNotPermitted)

	_, err = f.svc.Get(f.admin, theirs.ID)
	assert.NoError(t, err)
}

func TestIncidentWorksWithoutNoticeBroker(t *testing.T) {
	db := setupTestDB(t)
	community := seedCommunity(t, db, "INC")
	_, reporter := seedResident(t, db, community.ID, "reporter@test.local", "password123")

	// The broker being down must not break incident filing.
	svc := NewIncidentService(db, nil)
	_, err := svc.Create(reporter, IncidentInput{Subject: "Broken gate"})
	assert.NoError(t, err)
}
