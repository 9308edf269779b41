package notification

import (
	"strings"

	"booking/internal/entities"
	"github.com/google/uuid"
)

const maxCustomerIDLength = 64

func isValidCustomerID(customerID string) bool {
	customerID = strings.TrimSpace(customerID)
	return customerID != "" && len(customerID) <= maxCustomerIDLength
}

func isValidEvent(event entities.BookingSubmittedEvent) bool {
	return event.EventID != uuid.Nil &&
		event.BookingNumber != "" &&
		isValidCustomerID(event.CustomerID)
}
