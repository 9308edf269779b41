//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_test
package booking

import (
	"context"
	"time"

	"booking/internal/entities"
	"booking/pkg/logger"
)

type DraftStore interface {
	Load(ctx context.Context, profileID string) (*entities.DraftRecord, error)
	Save(ctx context.Context, record entities.DraftRecord) error
	Clear(ctx context.Context, profileID string) error
	CurrentStep(ctx context.Context, profileID string) (entities.Step, error)
	DeleteExpired(ctx context.Context, savedBefore time.Time) (int64, error)
}

type Submitter interface {
	Prepare(draft entities.BookingDraft) (entities.BookingRequest, error)
	Send(ctx context.Context, request entities.BookingRequest) (*entities.BookingConfirmation, error)
}

type FareEstimator interface {
	Quote(from, to string, weightKg float64) entities.Quote
}

type EventPublisher interface {
	PublishBookingSubmitted(ctx context.Context, event entities.BookingSubmittedEvent) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
