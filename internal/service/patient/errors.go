package patient

import "errors"

var (
	ErrNotFound      = errors.New("patient not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrNameRequired  = errors.New("first and last name are required")
	ErrInvalidPhone  = errors.New("invalid phone number")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrInvalidGender = errors.New("gender must be male, female or other")
	ErrAlreadyLinked = errors.New("user already linked to a patient profile")
)
