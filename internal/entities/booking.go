package entities

import "time"

type BookingStatus string

const BookingPending BookingStatus = "pending"

func (s BookingStatus) String() string {
	return string(s)
}

// BookingRequest тело запроса на создание бронирования в бэкенде.
type BookingRequest struct {
	Cargo    CargoSection    `json:"cargo" validate:"required"`
	Pickup   LocationSection `json:"pickup" validate:"required"`
	Delivery LocationSection `json:"delivery" validate:"required"`
	Route    RouteSection    `json:"route" validate:"required"`
	Pricing  PricingSection  `json:"pricing" validate:"required"`
	Customer CustomerSection `json:"customer" validate:"required"`
	Payment  PaymentSection  `json:"payment" validate:"required"`
	Status   BookingStatus   `json:"status" validate:"eq=pending"`
}

type CargoSection struct {
	Description         string     `json:"description" validate:"required"`
	Type                CargoType  `json:"type" validate:"oneof=general fragile hazardous perishable valuable"`
	Weight              float64    `json:"weight" validate:"gt=0,lte=100000"`
	Dimensions          Dimensions `json:"dimensions"`
	DeclaredValue       float64    `json:"declaredValue" validate:"gte=0,lte=1000000000"`
	SpecialInstructions string     `json:"specialInstructions,omitempty"`
}

type LocationSection struct {
	Address      Address   `json:"address"`
	Contact      Contact   `json:"contact"`
	ScheduledAt  time.Time `json:"scheduledAt" validate:"required"`
	Instructions string    `json:"instructions,omitempty"`
}

type RouteSection struct {
	DistanceKm    float64 `json:"distanceKm" validate:"gt=0"`
	DurationHours float64 `json:"durationHours" validate:"gt=0"`
}

type PricingSection struct {
	BaseFare      float64 `json:"baseFare" validate:"gt=0"`
	GST           float64 `json:"gst" validate:"gte=0"`
	ServiceCharge float64 `json:"serviceCharge" validate:"gte=0"`
	Insurance     float64 `json:"insurance" validate:"gte=0"`
	Total         float64 `json:"total" validate:"gtefield=BaseFare"`
	Currency      string  `json:"currency" validate:"len=3"`
}

type CustomerSection struct {
	ID    string `json:"id" validate:"required,max=64"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,phone10"`
}

type PaymentSection struct {
	Method PaymentMethod `json:"method" validate:"oneof=card upi net_banking wallet cash"`
}

// BookingConfirmation ответ бэкенда на успешное создание.
type BookingConfirmation struct {
	ID            string
	BookingNumber string
	Total         float64
}
