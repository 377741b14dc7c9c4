package appointment

import "errors"

var (
	ErrNotFound        = errors.New("appointment not found")
	ErrDoctorNotFound  = errors.New("doctor not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrInvalidInterval = errors.New("start must be before end")
	ErrStartInPast     = errors.New("start must be in the future")
	ErrConflict        = errors.New("appointment overlaps an existing appointment")
	ErrInvalidStatus   = errors.New("invalid appointment status")
	ErrBadTransition   = errors.New("status transition not allowed")
)
