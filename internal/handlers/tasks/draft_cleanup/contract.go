//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=draft_cleanup_test
package draft_cleanup

import (
	"context"

	"booking/pkg/logger"
)

type Service interface {
	CleanupExpiredDrafts(ctx context.Context) (int64, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
