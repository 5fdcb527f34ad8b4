package code

// HTTP status codes used by the response layer.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusCreated - 201: resource created.
	StatusCreated = 201
	// StatusBadRequest - 400: malformed or invalid request.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: missing, invalid or revoked credentials.
	StatusUnauthorized = 401
	// StatusForbidden - 403: authenticated but not permitted.
	StatusForbidden = 403
	// StatusNotFound - 404: resource missing or outside caller scope.
	StatusNotFound = 404
	// StatusConflict - 409: resource state conflict.
	StatusConflict = 409
	// StatusInternalServerError - 500: server-side failure.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: rate limited.
	StatusTooManyRequests = 429
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body binding error.
	ErrBind
	// ErrValidation - 400: request field validation error.
	ErrValidation
	// ErrTokenInvalid - 401: missing, invalid or revoked token.
	ErrTokenInvalid
	// ErrForbidden - 403: caller role does not permit the operation.
	ErrForbidden
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// User and authentication error codes (101xxx).
const (
	// ErrUserNotFound - 404: user does not exist.
	ErrUserNotFound int = iota + 101000
	// ErrEmailTaken - 400: email already registered to an admin or resident.
	ErrEmailTaken
	// ErrCredentials - 401: email or password incorrect.
	ErrCredentials
	// ErrResetTokenInvalid - 401: password reset token unknown or expired.
	ErrResetTokenInvalid
)

// Community error codes (102xxx).
const (
	// ErrCommunityNotFound - 404: community does not exist.
	ErrCommunityNotFound int = iota + 102000
	// ErrCommunityExists - 400: community short name already in use.
	ErrCommunityExists
)

// Reservation error codes (103xxx).
const (
	// ErrReservationNotFound - 404: reservation does not exist.
	ErrReservationNotFound int = iota + 103000
	// ErrReservationOverlap - 409: window collides with an existing booking.
	ErrReservationOverlap
	// ErrReservationWindow - 400: end time not after start time.
	ErrReservationWindow
)

// Election error codes (104xxx).
const (
	// ErrElectionNotFound - 404: election does not exist.
	ErrElectionNotFound int = iota + 104000
	// ErrElectionClosed - 400: election is outside its voting window.
	ErrElectionClosed
	// ErrCandidateNotFound - 404: candidate does not exist on the ballot.
	ErrCandidateNotFound
)

// Database error codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: record does not exist.
	ErrRecordNotFound
)

// Notification error codes (106xxx).
const (
	// ErrNotificationPublish - 500: could not enqueue the notification.
	ErrNotificationPublish int = iota + 106000
)

// Vehicle error codes (107xxx).
const (
	// ErrPlateTaken - 409: plate already registered in the community.
	ErrPlateTaken int = iota + 107000
)
