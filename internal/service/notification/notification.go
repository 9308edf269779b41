package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"booking/internal/entities"
	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type Notification struct {
	repository Repository
	txManager  TxManager
	now        func() time.Time
}

func New(repository Repository, txManager TxManager) *Notification {
	return &Notification{
		repository: repository,
		txManager:  txManager,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// HandleBookingSubmitted создает уведомление о бронировании. Повторная доставка
// того же события возвращает уже созданное уведомление и created=false.
func (n *Notification) HandleBookingSubmitted(
	ctx context.Context,
	event entities.BookingSubmittedEvent,
) (result *entities.Notification, created bool, err error) {
	if !isValidEvent(event) {
		return nil, false, fmt.Errorf("%w: event %s", ErrInvalidEvent, event.EventID)
	}

	err = n.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := n.repository.GetByEventID(ctx, event.EventID)
		if err == nil {
			result, created = existing, false
			return nil
		}
		if !errors.Is(err, ErrNotificationNotFound) {
			return fmt.Errorf("get notification by event id: %w", err)
		}

		id := uuid.New()
		createdAt := n.now()
		message := bookingMessage(event)
		result, err = n.repository.Create(ctx, entities.NotificationModify{
			ID:            &id,
			EventID:       &event.EventID,
			CustomerID:    &event.CustomerID,
			BookingNumber: &event.BookingNumber,
			Message:       &message,
			CreatedAt:     &createdAt,
		})
		if err != nil {
			return fmt.Errorf("create notification: %w", err)
		}
		created = true
		return nil
	})
	if err != nil {
		// параллельный обработчик успел вставить запись с тем же event id
		if errors.Is(err, ErrNotificationExists) {
			existing, getErr := n.repository.GetByEventID(ctx, event.EventID)
			if getErr != nil {
				return nil, false, fmt.Errorf("get notification after conflict: %w", getErr)
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return result, created, nil
}

func (n *Notification) List(ctx context.Context, customerID string, limit uint64) ([]entities.Notification, error) {
	if !isValidCustomerID(customerID) {
		return nil, ErrInvalidCustomerID
	}

	switch {
	case limit == 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	notifications, err := n.repository.ListByCustomer(ctx, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

func (n *Notification) MarkRead(ctx context.Context, customerID string, id uuid.UUID) (*entities.Notification, error) {
	if !isValidCustomerID(customerID) {
		return nil, ErrInvalidCustomerID
	}

	notification, err := n.repository.MarkRead(ctx, id, customerID, n.now())
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return notification, nil
}

func bookingMessage(event entities.BookingSubmittedEvent) string {
	return fmt.Sprintf("Booking %s has been submitted. Total: %.2f INR", event.BookingNumber, event.Total)
}
