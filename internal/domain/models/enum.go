package models

import "fmt"

// RoleType is the authorization tier attached to a user role record.
type RoleType string

const (
	RoleRoot     RoleType = "root"
	RoleAdmin    RoleType = "admin"
	RoleResident RoleType = "resident"
)

// RoleTypes lists every legal role value.
var RoleTypes = []RoleType{RoleRoot, RoleAdmin, RoleResident}

// UserEntityType tells which profile table a user row points at.
type UserEntityType string

const (
	EntityAdmin    UserEntityType = "admin"
	EntityResident UserEntityType = "resident"
)

// UserEntityTypes lists every legal entity type value.
var UserEntityTypes = []UserEntityType{EntityAdmin, EntityResident}

// ReservationStatus is the lifecycle state of a common-area reservation.
type ReservationStatus string

const (
	ReservationReserved ReservationStatus = "reserved"
	ReservationOngoing  ReservationStatus = "ongoing"
	ReservationFinished ReservationStatus = "finished"
)

// ReservationStatuses lists every legal reservation status value.
var ReservationStatuses = []ReservationStatus{ReservationReserved, ReservationOngoing, ReservationFinished}

// IncidentStatus is the handling state of a reported incident.
type IncidentStatus string

const (
	IncidentOpen       IncidentStatus = "open"
	IncidentInProgress IncidentStatus = "in_progress"
	IncidentResolved   IncidentStatus = "resolved"
)

// IncidentStatuses lists every legal incident status value.
var IncidentStatuses = []IncidentStatus{IncidentOpen, IncidentInProgress, IncidentResolved}

// ParseEnum converts raw text into one of the listed enum values. Every
// string-backed enum in this package shares this single codec instead of
// carrying its own parse routine.
func ParseEnum[T ~string](raw string, values []T) (T, error) {
	for _, v := range values {
		if string(v) == raw {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q", raw)
}

// EnumValid reports whether v is one of the listed enum values.
func EnumValid[T ~string](v T, values []T) bool {
	_, err := ParseEnum(string(v), values)
	return err == nil
}
