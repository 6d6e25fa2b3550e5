package domain

import "errors"

// Authentication and registration errors. Login failures deliberately
// collapse account-not-found and wrong-password into ErrInvalidCredentials
// so callers cannot probe which accounts exist.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUserNotFound       = errors.New("user not found")
)

// Token verification errors.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)

// Authorization errors. Unauthenticated means "log in again" and Forbidden
// means "you lack permission"; they map to distinct HTTP statuses.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access forbidden")
)

// Rental platform errors.
var (
	ErrListingNotFound       = errors.New("listing not found")
	ErrInquiryNotFound       = errors.New("inquiry not found")
	ErrInquiryAlreadyReplied = errors.New("inquiry already replied")
	ErrInvalidListingStatus  = errors.New("invalid listing status")
	ErrPreferenceNotFound    = errors.New("preferences not set")
)
