package models

// Resident is the profile entity behind a resident login, scoped to the
// community it lives in.
type Resident struct {
	BaseModel
	FirstName   string `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName    string `gorm:"type:varchar(50);not null" json:"last_name"`
	Email       string `gorm:"type:varchar(100);unique;not null" json:"email"`
	Phone       string `gorm:"type:varchar(20)" json:"phone"`
	Unit        string `gorm:"type:varchar(20)" json:"unit"`
	CommunityID string `gorm:"type:char(36);index;not null" json:"community_id"`

	// Relations
	Community    *Community    `gorm:"foreignKey:CommunityID" json:"community,omitempty"`
	Reservations []Reservation `gorm:"foreignKey:ResidentID" json:"reservations,omitempty"`
	Vehicles     []Vehicle     `gorm:"foreignKey:ResidentID" json:"vehicles,omitempty"`
}
