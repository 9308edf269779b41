package submission

import (
	"fmt"
	"strings"
	"time"

	"booking/internal/entities"
)

const scheduleLayout = "2006-01-02 15:04"

// даты и время в форме указываются по местному времени
var bookingZone = time.FixedZone("IST", 5*60*60+30*60)

// buildRequest переводит черновик в запрос бэкенда. Каждое поле запроса берется из формы
// или оценки, результат затем проверяется валидатором целиком.
func buildRequest(draft entities.BookingDraft, quote entities.Quote) (entities.BookingRequest, error) {
	pickupAt, err := scheduledAt(draft.Pickup)
	if err != nil {
		return entities.BookingRequest{}, fmt.Errorf("%w: pickup: %w", ErrInvalidRequest, err)
	}
	deliveryAt, err := scheduledAt(draft.Delivery)
	if err != nil {
		return entities.BookingRequest{}, fmt.Errorf("%w: delivery: %w", ErrInvalidRequest, err)
	}

	return entities.BookingRequest{
		Cargo: entities.CargoSection{
			Description:         strings.TrimSpace(draft.Cargo.Description),
			Type:                draft.Cargo.Type,
			Weight:              draft.Cargo.Weight,
			Dimensions:          draft.Cargo.Dimensions,
			DeclaredValue:       draft.Cargo.Value,
			SpecialInstructions: strings.TrimSpace(draft.Cargo.SpecialInstructions),
		},
		Pickup:   toLocationSection(draft.Pickup, pickupAt),
		Delivery: toLocationSection(draft.Delivery, deliveryAt),
		Route: entities.RouteSection{
			DistanceKm:    quote.Route.DistanceKm,
			DurationHours: quote.Route.DurationHours,
		},
		Pricing: entities.PricingSection{
			BaseFare:      quote.Fare.BaseFare,
			GST:           quote.Fare.GST,
			ServiceCharge: quote.Fare.ServiceCharge,
			Insurance:     quote.Fare.Insurance,
			Total:         quote.Fare.Total,
			Currency:      quote.Fare.Currency,
		},
		Customer: entities.CustomerSection{
			ID:    strings.TrimSpace(draft.Customer.ID),
			Email: strings.TrimSpace(draft.Customer.Email),
			Phone: strings.TrimSpace(draft.Customer.Phone),
		},
		Payment: entities.PaymentSection{
			Method: draft.Payment.Method,
		},
		Status: entities.BookingPending,
	}, nil
}

func toLocationSection(location entities.LocationDetails, at time.Time) entities.LocationSection {
	return entities.LocationSection{
		Address:      location.Address,
		Contact:      location.Contact,
		ScheduledAt:  at,
		Instructions: strings.TrimSpace(location.Instructions),
	}
}

func scheduledAt(location entities.LocationDetails) (time.Time, error) {
	at, err := time.ParseInLocation(scheduleLayout, location.Date+" "+location.Time, bookingZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("schedule %q %q: %w", location.Date, location.Time, err)
	}
	return at.UTC(), nil
}
