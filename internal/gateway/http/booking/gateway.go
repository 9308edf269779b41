package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"booking/internal/entities"
	"booking/internal/service/submission"
)

const (
	serviceName = "booking-backend"

	// тело ответа с ошибкой попадает в сообщение не целиком
	maxErrorBody = 512
)

// BookingGateway создает бронирования в бэкенде. Повторов нет: решение
// о повторной отправке принимает пользователь, каждая попытка со своим ключом.
type BookingGateway struct {
	client  doer
	baseURL string
}

func New(client doer, baseURL string) *BookingGateway {
	return &BookingGateway{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func (g *BookingGateway) CreateBooking(
	ctx context.Context,
	request entities.BookingRequest,
	idempotencyKey string,
) (*entities.BookingConfirmation, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %w", submission.ErrInvalidRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/bookings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", submission.ErrBackendUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Idempotency-Key", idempotencyKey)

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		GatewayRequestDuration.WithLabelValues(serviceName, "CreateBooking", "transport_error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("%w: %w", submission.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	GatewayRequestDuration.WithLabelValues(serviceName, "CreateBooking", strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d: %s", submission.ErrBackendRejected, resp.StatusCode, readErrorBody(resp.Body))
	}

	var created createBookingResponse
	err = json.NewDecoder(resp.Body).Decode(&created)
	if err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", submission.ErrBackendRejected, err)
	}
	if created.ID == "" || created.BookingNumber == "" {
		return nil, fmt.Errorf("%w: response without booking id or number", submission.ErrBackendRejected)
	}

	return toDomain(&created), nil
}

func readErrorBody(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return "empty response"
	}

	var parsed errorResponse
	if json.Unmarshal(raw, &parsed) == nil {
		switch {
		case parsed.Message != "":
			return parsed.Message
		case parsed.Error != "":
			return parsed.Error
		}
	}
	return strings.TrimSpace(string(raw))
}
