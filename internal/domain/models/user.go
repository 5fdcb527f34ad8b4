package models

import "time"

// User is one login-capable identity. It points at either an Admin or a
// Resident profile row through EntityID/EntityType and carries the bcrypt
// password hash. The password itself is never stored or exposed.
type User struct {
	BaseModel
	EntityID     string         `gorm:"type:char(36);unique;not null" json:"entity_id"`
	EntityType   UserEntityType `gorm:"type:varchar(20);not null" json:"entity_type"`
	PasswordHash string         `gorm:"type:varchar(100);not null" json:"-"`

	// Relations
	Role       *UserRole   `gorm:"foreignKey:UserID" json:"role,omitempty"`
	AuthTokens []AuthToken `gorm:"foreignKey:UserID" json:"-"`
}

// UserRole is the authorization scope record for a user. CommunityID is NULL
// only for the root role.
type UserRole struct {
	BaseModel
	UserID      string   `gorm:"type:char(36);unique;not null" json:"user_id"`
	Role        RoleType `gorm:"type:varchar(20);not null" json:"role"`
	CommunityID *string  `gorm:"type:char(36)" json:"community_id,omitempty"`
}

// AuthToken is one issued session. Tokens are deactivated on logout or
// expiry, never hard-deleted, so the row doubles as a revocation list entry.
type AuthToken struct {
	ID         string    `gorm:"type:char(36);primaryKey" json:"id"`
	UserID     string    `gorm:"type:char(36);index;not null" json:"user_id"`
	Active     bool      `gorm:"not null;default:true" json:"active"`
	UserAgent  string    `gorm:"type:varchar(255)" json:"user_agent"`
	RemoteAddr string    `gorm:"type:varchar(64)" json:"remote_addr"`
	CreatedAt  time.Time `json:"created_at"`
	LastUsedAt time.Time `json:"last_used_at"`
}

// PasswordResetToken is a short-lived reset secret. Unlike auth tokens these
// rows are hard-deleted once older than the reset TTL.
type PasswordResetToken struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	UserID    string    `gorm:"type:char(36);index;not null" json:"user_id"`
	Token     string    `gorm:"type:char(36);unique;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
