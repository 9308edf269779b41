//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=wizard_response_test
package wizard_response

import (
	"booking/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
