package draft

import (
	"context"
	"fmt"
	"time"

	"booking/internal/entities"
	"booking/internal/repository"
	"booking/internal/service/draft"
	sq "github.com/Masterminds/squirrel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repository хранит по одной записи черновика на профиль в таблице booking_drafts.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Load(ctx context.Context, profileID string) (*entities.DraftRecord, error) {
	query := `SELECT profile_id, current_step, payload, saved_at
		FROM booking_drafts
		WHERE profile_id = $1`

	var draftModel DraftDB
	err := r.querier.QueryRow(ctx, query, profileID).
		Scan(
			&draftModel.ProfileID,
			&draftModel.CurrentStep,
			&draftModel.Payload,
			&draftModel.SavedAt,
		)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, draft.ErrDraftNotFound
		}
		return nil, fmt.Errorf("unexpected draft repository load error: %w", err)
	}

	return ToDomain(&draftModel), nil
}

// Save перезаписывает черновик профиля целиком, последняя запись побеждает.
func (r *Repository) Save(ctx context.Context, record entities.DraftRecord) error {
	draftModel := FromDomain(&record)

	query, args, err := qb.
		Insert("booking_drafts").
		Columns("profile_id", "current_step", "payload", "saved_at").
		Values(draftModel.ProfileID, draftModel.CurrentStep, draftModel.Payload, draftModel.SavedAt).
		Suffix(`ON CONFLICT (profile_id) DO UPDATE SET
			current_step = EXCLUDED.current_step,
			payload = EXCLUDED.payload,
			saved_at = EXCLUDED.saved_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected draft repository save error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected draft repository save error: %w", err)
	}
	return nil
}

// Clear идемпотентен: отсутствие черновика не ошибка.
func (r *Repository) Clear(ctx context.Context, profileID string) error {
	query := `DELETE FROM booking_drafts WHERE profile_id = $1`

	_, err := r.querier.Exec(ctx, query, profileID)
	if err != nil {
		return fmt.Errorf("unexpected draft repository clear error: %w", err)
	}
	return nil
}

func (r *Repository) CurrentStep(ctx context.Context, profileID string) (entities.Step, error) {
	query := `SELECT current_step FROM booking_drafts WHERE profile_id = $1`

	var step int16
	err := r.querier.QueryRow(ctx, query, profileID).Scan(&step)
	if err != nil {
		if repository.IsNotFound(err) {
			return 0, draft.ErrDraftNotFound
		}
		return 0, fmt.Errorf("unexpected draft repository current step error: %w", err)
	}

	return entities.Step(step), nil
}

func (r *Repository) DeleteExpired(ctx context.Context, savedBefore time.Time) (int64, error) {
	query, args, err := qb.
		Delete("booking_drafts").
		Where(sq.Lt{"saved_at": savedBefore}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected draft repository delete expired error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected draft repository delete expired error: %w", err)
	}
	return result.RowsAffected(), nil
}
