package queries

import (
	"context"

	"github.com/google/uuid"
)

// DefaultNotificationLimit caps how much history the UI pulls per poll.
const DefaultNotificationLimit = 20

type NotificationQueries interface {
	// ListForUser returns the user's notification history ordered by
	// changed_on descending.
	ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*NotificationView, error)
}

type NotificationReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*NotificationView, error) {
	if limit <= 0 || limit > DefaultNotificationLimit {
		limit = DefaultNotificationLimit
	}
	return q.store.ListByUser(ctx, userID, int32(limit))
}
