package schedule

import "errors"

var (
	ErrNotFound       = errors.New("weekly slot not found")
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrInvalidWeekday = errors.New("weekday must be between 1 and 7")
	ErrInvalidTime    = errors.New("time must be zero-padded HH:MM")
	ErrInvalidRange   = errors.New("start time must be before end time")
	ErrDuplicate      = errors.New("an identical slot already exists")
	ErrOverlap        = errors.New("slot overlaps an existing slot")
)
