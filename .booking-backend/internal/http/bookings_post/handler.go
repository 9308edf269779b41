package bookings_post

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

type createRequest struct {
	Customer struct {
		ID string `json:"id"`
	} `json:"customer"`
	Pricing struct {
		Total float64 `json:"total"`
	} `json:"pricing"`
}

type createResponse struct {
	ID            string  `json:"id"`
	BookingNumber string  `json:"bookingNumber"`
	Total         float64 `json:"total"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Handler принимает бронирования и запоминает ответ по Idempotency-Key:
// повторный запрос с тем же ключом получает то же бронирование.
type Handler struct {
	mu       sync.Mutex
	byKey    map[string]createResponse
	sequence atomic.Uint64
}

func New() *Handler {
	return &Handler{
		byKey: make(map[string]createResponse),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Header.Get("Idempotency-Key")
	if key == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "Idempotency-Key header is required"})
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON body"})
		return
	}
	if req.Customer.ID == "" {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "validation", Message: "customer.id is required"})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if existing, ok := h.byKey[key]; ok {
		writeJSON(w, http.StatusOK, existing)
		return
	}

	created := createResponse{
		ID:            uuid.NewString(),
		BookingNumber: fmt.Sprintf("BK%08d", h.sequence.Add(1)),
		Total:         req.Pricing.Total,
	}
	h.byKey[key] = created

	log.Printf("booking %s created for customer %s", created.BookingNumber, req.Customer.ID)
	writeJSON(w, http.StatusCreated, created)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("write response: %v", err)
	}
}
