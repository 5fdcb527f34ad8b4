package models

// Vehicle is a car registered by a resident. Community scoping is resolved
// through the owning resident (vehicles -> residents -> community).
type Vehicle struct {
	BaseModel
	ResidentID string `gorm:"type:char(36);index;not null" json:"resident_id"`
	Plate      string `gorm:"type:varchar(20);not null;index" json:"plate"`
	Color      string `gorm:"type:varchar(30)" json:"color"`
	Model      string `gorm:"type:varchar(50)" json:"model"`

	// Relations
	Resident *Resident `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
}
