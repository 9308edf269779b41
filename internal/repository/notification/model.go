package notification

import (
	"time"

	"github.com/google/uuid"
)

type NotificationDB struct {
	ID            uuid.UUID
	EventID       uuid.UUID
	CustomerID    string
	BookingNumber string
	Message       string
	CreatedAt     time.Time
	ReadAt        *time.Time
}

type NotificationModifyDB struct {
	ID            *uuid.UUID
	EventID       *uuid.UUID
	CustomerID    *string
	BookingNumber *string
	Message       *string
	CreatedAt     *time.Time
	ReadAt        *time.Time
}
