package clinic

import "errors"

var (
	ErrNotFound        = errors.New("clinic not found")
	ErrNameRequired    = errors.New("clinic name is required")
	ErrInvalidTimezone = errors.New("invalid timezone")
)
