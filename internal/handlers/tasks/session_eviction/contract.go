//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_eviction_test
package session_eviction

import (
	"context"

	"booking/pkg/logger"
)

type Service interface {
	EvictIdleSessions(ctx context.Context) int
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
