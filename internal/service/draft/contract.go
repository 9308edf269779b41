//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=draft_test
package draft

import (
	"context"
	"time"

	"booking/internal/entities"
	"booking/pkg/logger"
)

// Store одна запись черновика на профиль. Отсутствие записи ErrDraftNotFound.
type Store interface {
	Load(ctx context.Context, profileID string) (*entities.DraftRecord, error)
	Save(ctx context.Context, record entities.DraftRecord) error
	Clear(ctx context.Context, profileID string) error
	CurrentStep(ctx context.Context, profileID string) (entities.Step, error)
	DeleteExpired(ctx context.Context, savedBefore time.Time) (int64, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
