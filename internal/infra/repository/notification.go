package repository

import (
	"context"
	"time"

	"autocare-api/internal/infra"
	"autocare-api/internal/pkg/pgconv"
	"autocare-api/internal/usecase/notifier"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// NotificationRepository is the write side of the append-only notification
// history. Rows are inserted by the notification consumer and never touched
// again.
type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n notifier.NewNotification) error {
	statement, args, err := psql.
		Insert("notifications").
		Columns(
			"service_request_id",
			"target_user_id",
			"action",
			"field_name",
			"old_value",
			"new_value",
			"message",
			"changed_on").
		Values(
			pgconv.UUIDToPgtype(n.ServiceRequestID),
			pgconv.UUIDToPgtype(n.TargetUserID),
			n.Action.String(),
			n.Field.String(),
			n.OldValue,
			n.NewValue,
			n.Message,
			pgconv.TimeToPgtype(n.ChangedOn)).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build notification insert", err)
	}

	if _, err := r.db.Exec(ctx, statement, args...); err != nil {
		return infra.WrapRepoErr("failed to insert notification", err)
	}

	return nil
}

func (r *NotificationRepository) RecentExists(ctx context.Context, key notifier.DedupKey, since time.Time) (bool, error) {
	statement, args, err := psql.
		Select("1").
		From("notifications").
		Where(sq.Eq{
			"service_request_id": pgconv.UUIDToPgtype(key.ServiceRequestID),
			"target_user_id":     pgconv.UUIDToPgtype(key.TargetUserID),
			"action":             key.Action.String(),
			"field_name":         key.Field.String(),
			"new_value":          key.NewValue,
		}).
		Where(sq.Gt{"changed_on": pgconv.TimeToPgtype(since)}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build dedup query", err)
	}

	var one int
	err = r.db.QueryRow(ctx, statement, args...).Scan(&one)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to query recent notifications", err)
	}

	return true, nil
}
