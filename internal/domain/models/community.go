package models

// Community is the tenancy root. Every scoped resource hangs off exactly one
// community, and only the root role may manage communities themselves.
type Community struct {
	BaseModel
	Name      string `gorm:"type:varchar(100);not null" json:"name"`
	ShortName string `gorm:"type:varchar(20);unique;not null" json:"short_name"`
	Address   string `gorm:"type:varchar(255)" json:"address"`

	// Relations
	CommonAreas []CommonArea `gorm:"foreignKey:CommunityID" json:"common_areas,omitempty"`
	Residents   []Resident   `gorm:"foreignKey:CommunityID" json:"residents,omitempty"`
}
