//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"
	"time"

	"booking/internal/entities"
	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, notificationModify entities.NotificationModify) (*entities.Notification, error)
	GetByEventID(ctx context.Context, eventID uuid.UUID) (*entities.Notification, error)
	ListByCustomer(ctx context.Context, customerID string, limit uint64) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, customerID string, readAt time.Time) (*entities.Notification, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
