package code

// Default message per error code.
var codeMessageMap = map[int]string{
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "invalid request body",
	ErrValidation:      "invalid request parameters",
	ErrTokenInvalid:    "invalid authentication token",
	ErrForbidden:       "operation not permitted",
	ErrTooManyRequests: "too many requests",

	ErrUserNotFound:      "user not found",
	ErrEmailTaken:        "email address already registered",
	ErrCredentials:       "invalid email or password",
	ErrResetTokenInvalid: "invalid or expired reset token",

	ErrCommunityNotFound: "community not found",
	ErrCommunityExists:   "community short name already in use",

	ErrReservationNotFound: "reservation not found",
	ErrReservationOverlap:  "common area already reserved for that window",
	ErrReservationWindow:   "reservation end must be after its start",

	ErrElectionNotFound:  "election not found",
	ErrElectionClosed:    "election is not open for voting",
	ErrCandidateNotFound: "candidate not found",

	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",

	ErrNotificationPublish: "failed to enqueue notification",

	ErrPlateTaken: "plate already registered in this community",
}

// HTTP status per error code.
var codeStatusMap = map[int]int{
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrForbidden:       StatusForbidden,
	ErrTooManyRequests: StatusTooManyRequests,

	ErrUserNotFound:      StatusNotFound,
	ErrEmailTaken:        StatusBadRequest,
	ErrCredentials:       StatusUnauthorized,
	ErrResetTokenInvalid: StatusUnauthorized,

	ErrCommunityNotFound: StatusNotFound,
	ErrCommunityExists:   StatusBadRequest,

	ErrReservationNotFound: StatusNotFound,
	ErrReservationOverlap:  StatusConflict,
	ErrReservationWindow:   StatusBadRequest,

	ErrElectionNotFound:  StatusNotFound,
	ErrElectionClosed:    StatusBadRequest,
	ErrCandidateNotFound: StatusNotFound,

	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,

	ErrNotificationPublish: StatusInternalServerError,

	ErrPlateTaken: StatusConflict,
}

// GetMessage returns the default message for an error code.
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status for an error code.
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
