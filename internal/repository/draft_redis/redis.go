package draft_redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"booking/internal/entities"
	"booking/internal/service/draft"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "booking_form_draft:"

	fieldStep    = "current_step"
	fieldPayload = "payload"
	fieldSavedAt = "saved_at"
)

// Repository хранит черновик профиля в хэше booking_form_draft:<profile>.
// Просрочка на стороне Redis через TTL ключа.
type Repository struct {
	client redis.Cmdable
	ttl    time.Duration
}

func New(client redis.Cmdable, ttl time.Duration) *Repository {
	return &Repository{
		client: client,
		ttl:    ttl,
	}
}

func (r *Repository) Load(ctx context.Context, profileID string) (*entities.DraftRecord, error) {
	values, err := r.client.HGetAll(ctx, key(profileID)).Result()
	if err != nil {
		return nil, fmt.Errorf("unexpected draft redis load error: %w", err)
	}
	if len(values) == 0 {
		return nil, draft.ErrDraftNotFound
	}

	step, err := strconv.Atoi(values[fieldStep])
	if err != nil {
		return nil, fmt.Errorf("%w: current step %q", draft.ErrDraftCorrupted, values[fieldStep])
	}

	savedAt, err := time.Parse(time.RFC3339Nano, values[fieldSavedAt])
	if err != nil {
		return nil, fmt.Errorf("%w: saved at %q", draft.ErrDraftCorrupted, values[fieldSavedAt])
	}

	return &entities.DraftRecord{
		ProfileID:   profileID,
		CurrentStep: entities.Step(step),
		Payload:     []byte(values[fieldPayload]),
		SavedAt:     savedAt,
	}, nil
}

func (r *Repository) Save(ctx context.Context, record entities.DraftRecord) error {
	k := key(record.ProfileID)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, k)
		pipe.HSet(ctx, k,
			fieldStep, strconv.Itoa(int(record.CurrentStep)),
			fieldPayload, record.Payload,
			fieldSavedAt, record.SavedAt.UTC().Format(time.RFC3339Nano),
		)
		if r.ttl > 0 {
			pipe.Expire(ctx, k, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("unexpected draft redis save error: %w", err)
	}
	return nil
}

func (r *Repository) Clear(ctx context.Context, profileID string) error {
	err := r.client.Del(ctx, key(profileID)).Err()
	if err != nil {
		return fmt.Errorf("unexpected draft redis clear error: %w", err)
	}
	return nil
}

func (r *Repository) CurrentStep(ctx context.Context, profileID string) (entities.Step, error) {
	value, err := r.client.HGet(ctx, key(profileID), fieldStep).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, draft.ErrDraftNotFound
		}
		return 0, fmt.Errorf("unexpected draft redis current step error: %w", err)
	}

	step, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: current step %q", draft.ErrDraftCorrupted, value)
	}
	return entities.Step(step), nil
}

// DeleteExpired ничего не делает: ключи истекают сами.
func (r *Repository) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func key(profileID string) string {
	return keyPrefix + profileID
}
