//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fare_estimate_get_test
package fare_estimate_get

import (
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
	Estimate(from, to string, weightKg float64) entities.Quote
}
