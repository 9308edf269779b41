//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_fields_patch_test
package booking_fields_patch

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
	SetField(ctx context.Context, profileID, path string, value any) (*entities.FieldUpdate, error)
}
