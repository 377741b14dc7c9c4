package doctor

import "errors"

var (
	ErrNotFound      = errors.New("doctor not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrNameRequired  = errors.New("first and last name are required")
	ErrInvalidPhone  = errors.New("invalid phone number")
	ErrAlreadyLinked = errors.New("user already linked to a doctor profile")
)
