package user

import "errors"

var (
	ErrNotFound           = errors.New("user not found")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidRole        = errors.New("invalid role")
	ErrEmailAlreadyExists = errors.New("email already registered in this clinic")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
)
