package services

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors shared by the entity services. Controllers translate these
// into the response envelope; everything else surfaces as a generic database
// error.
var (
	// ErrNotFound covers both genuinely missing rows and rows outside the
	// caller's scope, so a cross-tenant probe cannot confirm existence.
	ErrNotFound = errors.New("record not found")

	// ErrNotPermitted is returned when the caller's role forbids the
	// operation outright.
	ErrNotPermitted = errors.New("operation not permitted")

	// ErrUnauthorized is the single error for every authentication failure:
	// bad signature, expired token, revoked session or missing role.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrEmailTaken is returned when an email already belongs to an admin
	// or a resident.
	ErrEmailTaken = errors.New("email address already registered")

	// ErrPlateTaken is returned when another vehicle in the same community
	// already carries the plate.
	ErrPlateTaken = errors.New("plate already registered in this community")

	// ErrInvalidWindow is returned when a reservation ends at or before its
	// start.
	ErrInvalidWindow = errors.New("reservation end must be after its start")

	// ErrElectionClosed is returned for votes outside the election window.
	ErrElectionClosed = errors.New("election is not open for voting")

	// ErrResetTokenInvalid is returned for unknown or expired reset tokens.
	ErrResetTokenInvalid = errors.New("invalid or expired reset token")
)

// OverlapError reports a reservation collision, naming the conflicting
// window so the client can show it.
type OverlapError struct {
	Start time.Time
	End   time.Time
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("common area already reserved from %s to %s",
		e.Start.Format("15:04:05"), e.End.Format("15:04:05"))
}
