package webhook

import "errors"

var (
	ErrNotFound     = errors.New("webhook endpoint not found")
	ErrDuplicateURL = errors.New("an endpoint with this URL already exists")
	ErrTestFailed   = errors.New("webhook test delivery failed")
)
