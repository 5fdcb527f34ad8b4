package models

// Incident is a problem report filed by a resident (broken elevator, leak,
// noise complaint) and worked by the community admin.
type Incident struct {
	BaseModel
	ResidentID  string         `gorm:"type:char(36);index;not null" json:"resident_id"`
	CommunityID string         `gorm:"type:char(36);index;not null" json:"community_id"`
	Subject     string         `gorm:"type:varchar(100);not null" json:"subject"`
	Description string         `gorm:"type:varchar(1000)" json:"description"`
	Status      IncidentStatus `gorm:"type:varchar(20);not null;default:open" json:"status"`

	// Relations
	Resident *Resident `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
}
