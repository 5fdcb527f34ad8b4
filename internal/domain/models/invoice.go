package models

import "time"

// Invoice is a charge issued to a resident by their community.
type Invoice struct {
	BaseModel
	ResidentID  string    `gorm:"type:char(36);index;not null" json:"resident_id"`
	CommunityID string    `gorm:"type:char(36);index;not null" json:"community_id"`
	Amount      float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Detail      string    `gorm:"type:varchar(255)" json:"detail"`
	DueDate     time.Time `gorm:"not null" json:"due_date"`
	Paid        bool      `gorm:"not null;default:false" json:"paid"`

	// Relations
	Resident *Resident `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
}
