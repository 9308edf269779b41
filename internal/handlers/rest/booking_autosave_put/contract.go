//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_autosave_put_test
package booking_autosave_put

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
	SetAutoSave(ctx context.Context, profileID string, enabled bool) (*entities.WizardView, error)
}
