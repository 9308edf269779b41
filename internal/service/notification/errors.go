package notification

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotificationExists   = errors.New("notification for event already exists")
	ErrInvalidCustomerID    = errors.New("invalid customer id")
	ErrInvalidEvent         = errors.New("invalid booking submitted event")
)
