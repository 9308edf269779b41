package notification

import (
	"context"
	"fmt"
	"time"

	"booking/internal/entities"
	"booking/internal/repository"
	"booking/internal/service/notification"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const columns = "id, event_id, customer_id, booking_number, message, created_at, read_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, notificationModify entities.NotificationModify) (*entities.Notification, error) {
	modifyModel := FromDomainModify(&notificationModify)
	query := `INSERT INTO notifications (id, event_id, customer_id, booking_number, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + columns

	notificationModel, err := scanNotification(r.querier.QueryRow(
		ctx,
		query,
		modifyModel.ID,
		modifyModel.EventID,
		modifyModel.CustomerID,
		modifyModel.BookingNumber,
		modifyModel.Message,
		modifyModel.CreatedAt,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, notification.ErrNotificationExists
		}
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return ToDomain(notificationModel), nil
}

func (r *Repository) GetByEventID(ctx context.Context, eventID uuid.UUID) (*entities.Notification, error) {
	query := `SELECT ` + columns + `
		FROM notifications
		WHERE event_id = $1`

	notificationModel, err := scanNotification(r.querier.QueryRow(ctx, query, eventID))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, notification.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("unexpected notification repository get by event id error: %w", err)
	}

	return ToDomain(notificationModel), nil
}

func (r *Repository) ListByCustomer(ctx context.Context, customerID string, limit uint64) ([]entities.Notification, error) {
	query, args, err := qb.
		Select(columns).
		From("notifications").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC", "id").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	notificationModels := make([]NotificationDB, 0, limit)
	for rows.Next() {
		notificationModel, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
		}
		notificationModels = append(notificationModels, *notificationModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	return ToDomainList(notificationModels), nil
}

// MarkRead повторная отметка сохраняет первое время прочтения.
func (r *Repository) MarkRead(ctx context.Context, id uuid.UUID, customerID string, readAt time.Time) (*entities.Notification, error) {
	query, args, err := qb.
		Update("notifications").
		Set("read_at", sq.Expr("COALESCE(read_at, ?)", readAt)).
		Where(sq.Eq{"id": id, "customer_id": customerID}).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository mark read error: %w", err)
	}

	notificationModel, err := scanNotification(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, notification.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("unexpected notification repository mark read error: %w", err)
	}

	return ToDomain(notificationModel), nil
}

func scanNotification(row pgx.Row) (*NotificationDB, error) {
	var notificationModel NotificationDB
	err := row.Scan(
		&notificationModel.ID,
		&notificationModel.EventID,
		&notificationModel.CustomerID,
		&notificationModel.BookingNumber,
		&notificationModel.Message,
		&notificationModel.CreatedAt,
		&notificationModel.ReadAt,
	)
	if err != nil {
		return nil, err
	}
	return &notificationModel, nil
}
