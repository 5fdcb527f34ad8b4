package models

import "time"

// Reservation books a common area for the half-open window
// [StartTime, EndTime). Status moves reserved -> ongoing -> finished driven
// by wall-clock time; finished is terminal.
type Reservation struct {
	BaseModel
	ResidentID   string            `gorm:"type:char(36);index;not null" json:"resident_id"`
	CommonAreaID string            `gorm:"type:char(36);index;not null" json:"common_area_id"`
	StartTime    time.Time         `gorm:"not null" json:"start_time"`
	EndTime      time.Time         `gorm:"not null" json:"end_time"`
	Status       ReservationStatus `gorm:"type:varchar(20);not null;default:reserved" json:"status"`

	// Relations
	Resident   *Resident   `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
	CommonArea *CommonArea `gorm:"foreignKey:CommonAreaID" json:"common_area,omitempty"`
}
