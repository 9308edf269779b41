//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_steps_next_post_test
package booking_steps_next_post

import (
	"context"

	"booking/internal/entities"
	"booking/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	NextStep(ctx context.Context, profileID string) (*entities.WizardView, error)
}
