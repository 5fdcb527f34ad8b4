package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
)

type residentFixture struct {
	db        *gorm.DB
	mail      *fakeMailPublisher
	svc       InterfaceResidentService
	community *models.Community
	admin     Caller
}

func newResidentFixture(t *testing.T) *residentFixture {
	t.Helper()
	db := setupTestDB(t)
	community := seedCommunity(t, db, "RES")
	_, admin := seedAdmin(t, db, &community.ID, "manager@test.local", "password123", models.RoleAdmin)
	mail := &fakeMailPublisher{}

	return &residentFixture{
		db:        db,
		mail:      mail,
		svc:       NewResidentService(db, mail),
		community: community,
		admin:     admin,
	}
}

func (f *residentFixture) input(email string) ResidentInput {
	return ResidentInput{
		FirstName:   "Nova",
		LastName:    "Moradora",
		Email:       email,
		Unit:        "202",
		CommunityID: f.community.ID,
		Password:    "password123",
	}
}

func TestResidentCreateProvisionsLogin(t *testing.T) {
	f := newResidentFixture(t)

	resident, err := f.svc.Create(f.admin, f.input("nova@test.local"))
	require.NoError(t, err)

	var user models.User
	require.NoError(t, f.db.First(&user, "entity_id = ?", resident.ID).Error)
	assert.Equal(t, models.EntityResident, user.EntityType)

	var role models.UserRole
	require.NoError(t, f.db.First(&role, "user_id = ?", user.ID).Error)
	assert.Equal(t, models.RoleResident, role.Role)
	require.NotNil(t, role.CommunityID)
	assert.Equal(t, f.community.ID, *role.CommunityID)
}

func TestResidentCreateRejectsDuplicateEmail(t *testing.T) {
	f := newResidentFixture(t)

	_, err := f.svc.Create(f.admin, f.input("nova@test.local"))
	require.NoError(t, err)

	_, err = f.svc.Create(f.admin, f.input("nova@test.local"))
	assert.ErrorIs(t, err, ErrEmailTaken)

	// The admin's email is equally off limits.
	_, err = f.svc.Create(f.admin, f.input("manager@test.local"))
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestResidentInviteMailsTempPassword(t *testing.T) {
	f := newResidentFixture(t)

	input := f.input("invited@test.local")
	input.Password = ""
	resident, err := f.svc.Invite(f.admin, input)
	require.NoError(t, err)

	sent := f.mail.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, resident.Email, sent[0].To)
	assert.NotEmpty(t, sent[0].Body)

	// The invited account can already authenticate with the mailed
	// password, which the service generated.
	var user models.User
	require.NoError(t, f.db.First(&user, "entity_id = ?", resident.ID).Error)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestResidentInviteSurvivesMailOutage(t *testing.T) {
	f := newResidentFixture(t)
	f.mail.fail = true

	input := f.input("invited@test.local")
	input.Password = ""
	resident, err := f.svc.Invite(f.admin, input)
	require.NoError(t, err)

	// The account exists even though the mail never left.
	var count int64
	require.NoError(t, f.db.Model(&models.Resident{}).
		Where("id = ?", resident.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResidentCannotManageResidents(t *testing.T) {
	f := newResidentFixture(t)
	_, residentCaller := seedResident(t, f.db, f.community.ID, "existing@test.local", "password123")

	_, err := f.svc.Create(residentCaller, f.input("nova@test.local"))
	assert.ErrorIs(t, err, ErrNotPermitted)

	_, err = f.svc.Invite(residentCaller, f.input("nova@test.local"))
	assert.ErrorIs(t, err, ErrNotPermitted)
}

func TestResidentSelfUpdateKeepsCommunity(t *testing.T) {
	f := newResidentFixture(t)
	resident, residentCaller := seedResident(t, f.db, f.community.ID, "self@test.local", "password123")
	otherCommunity := seedCommunity(t, f.db, "OTH")

	input := f.input("self@test.local")
	input.FirstName = "Renamed"
	input.CommunityID = otherCommunity.ID

	_, err := f.svc.Update(residentCaller, resident.ID, input)
	assert.ErrorIs(t, err, ErrNotPermitted)

	input.CommunityID = f.community.ID
	updated, err := f.svc.Update(residentCaller, resident.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.FirstName)
}

func TestResidentCommunityMoveUpdatesRole(t *testing.T) {
	f := newResidentFixture(t)
	resident, _ := seedResident(t, f.db, f.community.ID, "mover@test.local", "password123")
	otherCommunity := seedCommunity(t, f.db, "OTH")

	input := f.input("mover@test.local")
	input.CommunityID = otherCommunity.ID

	_, err := f.svc.Update(rootCaller(t, f.db), resident.ID, input)
	require.NoError(t, err)

	var user models.User
	require.NoError(t, f.db.First(&user, "entity_id = ?", resident.ID).Error)
	var role models.UserRole
	require.NoError(t, f.db.First(&role, "user_id = ?", user.ID).Error)
	require.NotNil(t, role.CommunityID)
	assert.Equal(t, otherCommunity.ID, *role.CommunityID)
}

func TestResidentDeleteCascades(t *testing.T) {
	f := newResidentFixture(t)
	resident, residentCaller := seedResident(t, f.db, f.community.ID, "leaver@test.local", "password123")

	vehicle := models.Vehicle{ResidentID: resident.ID, Plate: "ABC1D23"}
	require.NoError(t, f.db.Create(&vehicle).Error)
	token := models.AuthToken{ID: "session-x", UserID: residentCaller.UserID, Active: true}
	require.NoError(t, f.db.Create(&token).Error)

	require.NoError(t, f.svc.Delete(f.admin, resident.ID))

	var count int64
	require.NoError(t, f.db.Model(&models.Resident{}).Where("id = ?", resident.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, f.db.Model(&models.Vehicle{}).Where("resident_id = ?", resident.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, f.db.Model(&models.User{}).Where("entity_id = ?", resident.ID).Count(&count).Error)
	assert.Zero(t, count)

	// Sessions stay behind, revoked.
	var after models.AuthToken
	require.NoError(t, f.db.First(&after, "id = ?", token.ID).Error)
	assert.False(t, after.Active)
}

func TestResidentListScoping(t *testing.T) {
	f := newResidentFixture(t)
	mine, myCaller := seedResident(t, f.db, f.community.ID, "mine@test.local", "password123")
	seedResident(t, f.db, f.community.ID, "their@test.local", "password123")

	otherCommunity := seedCommunity(t, f.db, "OTH")
	seedResident(t, f.db, otherCommunity.ID, "far@test.local", "password123")

	// Residents see only themselves.
	list, total, err := f.svc.List(myCaller, models.PaginationQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)

	// Admins see their community only.
	list, total, err = f.svc.List(f.admin, models.PaginationQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, list, 2)

	// Root sees everything.
	_, total, err = f.svc.List(rootCaller(t, f.db), models.PaginationQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}
