//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=submission_test
package submission

import (
	"context"

	"booking/internal/entities"
)

type Gateway interface {
	CreateBooking(ctx context.Context, request entities.BookingRequest, idempotencyKey string) (*entities.BookingConfirmation, error)
}

type FareEstimator interface {
	Quote(from, to string, weightKg float64) entities.Quote
}
