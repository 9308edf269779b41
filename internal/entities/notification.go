package entities

import (
	"time"

	"github.com/google/uuid"
)

// BookingSubmittedEvent публикуется после успешной отправки бронирования.
type BookingSubmittedEvent struct {
	EventID       uuid.UUID `json:"eventId"`
	BookingID     string    `json:"bookingId"`
	BookingNumber string    `json:"bookingNumber"`
	CustomerID    string    `json:"customerId"`
	CustomerEmail string    `json:"customerEmail"`
	ProfileID     string    `json:"profileId"`
	Total         float64   `json:"total"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

type Notification struct {
	ID            uuid.UUID
	EventID       uuid.UUID
	CustomerID    string
	BookingNumber string
	Message       string
	CreatedAt     time.Time
	ReadAt        *time.Time
}

type NotificationModify struct {
	ID            *uuid.UUID
	EventID       *uuid.UUID
	CustomerID    *string
	BookingNumber *string
	Message       *string
	CreatedAt     *time.Time
	ReadAt        *time.Time
}
