package booking

type createBookingResponse struct {
	ID            string  `json:"id"`
	BookingNumber string  `json:"bookingNumber"`
	Total         float64 `json:"total,omitempty"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
