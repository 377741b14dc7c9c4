package assistant

import "errors"

var (
	ErrNotFound      = errors.New("assistant not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrNameRequired  = errors.New("first and last name are required")
	ErrAlreadyLinked = errors.New("user already linked to an assistant profile")
	ErrTitleOnly     = errors.New("assistants may change only their own title")
)
