package booking

import (
	"booking/internal/entities"
)

func toDomain(resp *createBookingResponse) *entities.BookingConfirmation {
	if resp == nil {
		return nil
	}

	return &entities.BookingConfirmation{
		ID:            resp.ID,
		BookingNumber: resp.BookingNumber,
		Total:         resp.Total,
	}
}
