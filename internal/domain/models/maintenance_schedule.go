package models

import "time"

// MaintenanceSchedule is a recurring upkeep task for a community (elevator
// inspection, pool cleaning). NextDate advances by IntervalDays each cycle.
type MaintenanceSchedule struct {
	BaseModel
	CommunityID  string    `gorm:"type:char(36);index;not null" json:"community_id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Description  string    `gorm:"type:varchar(1000)" json:"description"`
	NextDate     time.Time `gorm:"not null" json:"next_date"`
	IntervalDays int       `gorm:"not null;default:0" json:"interval_days"`
}
