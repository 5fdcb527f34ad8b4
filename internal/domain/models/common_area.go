package models

// CommonArea is a bookable shared space inside a community (gym, barbecue
// deck, party room). Opening hours are informational; booking collisions are
// decided purely by the reservation overlap check.
type CommonArea struct {
	BaseModel
	CommunityID string `gorm:"type:char(36);index;not null" json:"community_id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:varchar(255)" json:"description"`
	Capacity    int    `gorm:"not null;default:0" json:"capacity"`
	OpensAt     string `gorm:"type:varchar(5)" json:"opens_at"`
	ClosesAt    string `gorm:"type:varchar(5)" json:"closes_at"`

	// Relations
	Community    *Community    `gorm:"foreignKey:CommunityID" json:"community,omitempty"`
	Reservations []Reservation `gorm:"foreignKey:CommonAreaID" json:"reservations,omitempty"`
}
