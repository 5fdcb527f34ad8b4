package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/notification"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/utils"
)

// setupTestDB opens a fresh in-memory SQLite database with the full schema.
// The pool is pinned to one connection so every query sees the same
// in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Community{},
		&models.Admin{},
		&models.Resident{},
		&models.User{},
		&models.UserRole{},
		&models.AuthToken{},
		&models.PasswordResetToken{},
		&models.CommonArea{},
		&models.Reservation{},
		&models.Invoice{},
		&models.Incident{},
		&models.Parcel{},
		&models.Vehicle{},
		&models.Election{},
		&models.ElectionCandidate{},
		&models.ElectionVote{},
		&models.MaintenanceSchedule{},
	))

	return db
}

func seedCommunity(t *testing.T, db *gorm.DB, shortName string) *models.Community {
	t.Helper()
	community := &models.Community{
		Name:      "Community " + shortName,
		ShortName: shortName,
		Address:   "1 Test Street",
	}
	require.NoError(t, db.Create(community).Error)
	return community
}

// seedResident creates a resident with its login row and role and returns
// the profile plus the caller it authenticates as.
func seedResident(t *testing.T, db *gorm.DB, communityID, email, password string) (*models.Resident, Caller) {
	t.Helper()

	resident := &models.Resident{
		FirstName:   "Rita",
		LastName:    "Moradora",
		Email:       email,
		Unit:        "101",
		CommunityID: communityID,
	}
	require.NoError(t, db.Create(resident).Error)

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{
		EntityID:     resident.ID,
		EntityType:   models.EntityResident,
		PasswordHash: hash,
	}
	require.NoError(t, db.Create(user).Error)

	role := &models.UserRole{
		UserID:      user.ID,
		Role:        models.RoleResident,
		CommunityID: &resident.CommunityID,
	}
	require.NoError(t, db.Create(role).Error)

	return resident, Caller{
		UserID:      user.ID,
		EntityID:    resident.ID,
		EntityType:  models.EntityResident,
		Role:        models.RoleResident,
		CommunityID: &resident.CommunityID,
	}
}

func seedAdmin(t *testing.T, db *gorm.DB, communityID *string, email, password string, role models.RoleType) (*models.Admin, Caller) {
	t.Helper()

	admin := &models.Admin{
		FirstName: "Ana",
		LastName:  "Sindica",
		Email:     email,
	}
	require.NoError(t, db.Create(admin).Error)

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{
		EntityID:     admin.ID,
		EntityType:   models.EntityAdmin,
		PasswordHash: hash,
	}
	require.NoError(t, db.Create(user).Error)

	userRole := &models.UserRole{
		UserID:      user.ID,
		Role:        role,
		CommunityID: communityID,
	}
	require.NoError(t, db.Create(userRole).Error)

	return admin, Caller{
		UserID:      user.ID,
		EntityID:    admin.ID,
		EntityType:  models.EntityAdmin,
		Role:        role,
		CommunityID: communityID,
	}
}

func rootCaller(t *testing.T, db *gorm.DB) Caller {
	t.Helper()
	_, caller := seedAdmin(t, db, nil, fmt.Sprintf("root-%s@test.local", uuid.NewString()[:8]), "root-password", models.RoleRoot)
	return caller
}

// fakeMailPublisher records published mail jobs for assertions.
type fakeMailPublisher struct {
	mu       sync.Mutex
	messages []notification.MailMessage
	fail     bool
}

func (f *fakeMailPublisher) PublishMail(msg notification.MailMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return fmt.Errorf("publisher down")
	}
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeMailPublisher) sent() []notification.MailMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]notification.MailMessage, len(f.messages))
	copy(out, f.messages)
	return out
}

// fakeNoticePublisher records published community notices.
type fakeNoticePublisher struct {
	mu      sync.Mutex
	notices []publishedNotice
}

type publishedNotice struct {
	CommunityID string
	NoticeType  string
	Payload     map[string]interface{}
}

func (f *fakeNoticePublisher) PublishNotice(communityID, noticeType string, payload map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, publishedNotice{communityID, noticeType, payload})
	return nil
}
