package notification

import (
	"booking/internal/entities"
)

func ToDomain(n *NotificationDB) *entities.Notification {
	if n == nil {
		return nil
	}

	return &entities.Notification{
		ID:            n.ID,
		EventID:       n.EventID,
		CustomerID:    n.CustomerID,
		BookingNumber: n.BookingNumber,
		Message:       n.Message,
		CreatedAt:     n.CreatedAt,
		ReadAt:        n.ReadAt,
	}
}

func FromDomainModify(modify *entities.NotificationModify) *NotificationModifyDB {
	if modify == nil {
		return nil
	}

	return &NotificationModifyDB{
		ID:            modify.ID,
		EventID:       modify.EventID,
		CustomerID:    modify.CustomerID,
		BookingNumber: modify.BookingNumber,
		Message:       modify.Message,
		CreatedAt:     modify.CreatedAt,
		ReadAt:        modify.ReadAt,
	}
}

func ToDomainList(notificationsDB []NotificationDB) []entities.Notification {
	if len(notificationsDB) == 0 {
		return []entities.Notification{}
	}

	result := make([]entities.Notification, len(notificationsDB))
	for i, notificationDB := range notificationsDB {
		result[i] = *ToDomain(&notificationDB)
	}
	return result
}
