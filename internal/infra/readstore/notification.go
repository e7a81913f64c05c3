package readstore

import (
	"context"

	"autocare-api/internal/infra"
	"autocare-api/internal/pkg/pgconv"
	"autocare-api/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// NotificationReadStore serves the UI's notification polling.
type NotificationReadStore struct {
	db *pgxpool.Pool
}

func NewNotificationReadStore(db *pgxpool.Pool) *NotificationReadStore {
	return &NotificationReadStore{db: db}
}

func (s *NotificationReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	statement, args, err := psql.
		Select(
			"id",
			"service_request_id",
			"target_user_id",
			"action",
			"field_name",
			"old_value",
			"new_value",
			"message",
			"changed_on").
		From("notifications").
		Where(sq.Eq{"target_user_id": pgconv.UUIDToPgtype(userID)}).
		OrderBy("changed_on DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build notification list query", err)
	}

	rows, err := s.db.Query(ctx, statement, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	var result []*queries.NotificationView
	for rows.Next() {
		var (
			id                       int64
			serviceRequestID, target pgtype.UUID
			action, fieldName        string
			oldValue, newValue       string
			message                  string
			changedOn                pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &serviceRequestID, &target, &action, &fieldName, &oldValue, &newValue, &message, &changedOn); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification row", err)
		}
		result = append(result, &queries.NotificationView{
			ID:               id,
			ServiceRequestID: uuid.UUID(serviceRequestID.Bytes),
			TargetUserID:     uuid.UUID(target.Bytes),
			Action:           action,
			FieldName:        fieldName,
			OldValue:         oldValue,
			NewValue:         newValue,
			Message:          message,
			ChangedOn:        pgconv.TimeFromPgtype(changedOn),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification rows", err)
	}

	return result, nil
}
