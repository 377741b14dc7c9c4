package auth

import "errors"

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrEmailAlreadyExists = errors.New("email already registered in this clinic")
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrAmbiguousEmail     = errors.New("email exists in multiple clinics; clinic id required")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrAccountLocked      = errors.New("account temporarily locked due to repeated login failures")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrStaleToken         = errors.New("token has been revoked")
	ErrWrongPassword      = errors.New("current password is incorrect")
)
