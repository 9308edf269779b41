package notifications_get

import (
	"booking/internal/entities"
	"booking/internal/generated/dto"
	"github.com/samber/lo"
)

func toDTO(notifications []entities.Notification) dto.NotificationList {
	return dto.NotificationList{
		Items: lo.Map(notifications, func(n entities.Notification, _ int) dto.Notification {
			return dto.Notification{
				Id:            n.ID.String(),
				EventId:       n.EventID.String(),
				BookingNumber: n.BookingNumber,
				Message:       n.Message,
				CreatedAt:     n.CreatedAt,
				ReadAt:        n.ReadAt,
			}
		}),
	}
}
