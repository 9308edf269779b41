package submission

import (
	"context"
	"fmt"

	"booking/internal/entities"
	"booking/internal/pkg/validation"
	"github.com/go-playground/validator/v10"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type Pipeline struct {
	gateway   Gateway
	estimator FareEstimator
	validate  *validator.Validate
}

func New(gateway Gateway, estimator FareEstimator, validate *validator.Validate) *Pipeline {
	return &Pipeline{
		gateway:   gateway,
		estimator: estimator,
		validate:  validate,
	}
}

// Prepare собирает и проверяет запрос. Форма должна быть уже валидна по шагам.
func (p *Pipeline) Prepare(draft entities.BookingDraft) (entities.BookingRequest, error) {
	quote := p.estimator.Quote(draft.Pickup.Address.City, draft.Delivery.Address.City, draft.Cargo.Weight)

	request, err := buildRequest(draft, quote)
	if err != nil {
		return entities.BookingRequest{}, err
	}

	err = p.validate.Struct(request)
	if err != nil {
		return entities.BookingRequest{}, fmt.Errorf("%w: %s", ErrInvalidRequest, validation.Describe(err))
	}
	return request, nil
}

// Send одна попытка создания бронирования. Повторов нет, новая попытка получает новый ключ.
func (p *Pipeline) Send(ctx context.Context, request entities.BookingRequest) (*entities.BookingConfirmation, error) {
	key, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generate idempotency key: %w", err)
	}

	confirmation, err := p.gateway.CreateBooking(ctx, request, key)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return confirmation, nil
}
