package models

import "time"

// Parcel is a delivery logged at the front desk waiting for a resident to
// pick it up.
type Parcel struct {
	BaseModel
	ResidentID  string    `gorm:"type:char(36);index;not null" json:"resident_id"`
	CommunityID string    `gorm:"type:char(36);index;not null" json:"community_id"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	ArrivedAt   time.Time `gorm:"not null" json:"arrived_at"`
	PickedUp    bool      `gorm:"not null;default:false" json:"picked_up"`

	// Relations
	Resident *Resident `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
}
