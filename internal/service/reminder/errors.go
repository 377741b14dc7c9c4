package reminder

import "errors"

var (
	ErrNotFound            = errors.New("reminder not found")
	ErrRuleNotFound        = errors.New("reminder rule not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentInPast   = errors.New("appointment start is not in the future")
	ErrNoActiveRules       = errors.New("clinic has no active reminder rules")
	ErrInvalidOffset       = errors.New("offset must be a positive number of minutes")
	ErrInvalidChannel      = errors.New("channel must be SMS or EMAIL")
	ErrDuplicateRule       = errors.New("a rule with this offset and channel already exists")
	ErrNotScheduled        = errors.New("only scheduled reminders can transition")
	ErrMissingError        = errors.New("marking failed requires an error message")
)
