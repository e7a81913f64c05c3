package notifier

import (
	"context"
	"time"

	"autocare-api/internal/domain/notification"
	"autocare-api/internal/domain/servicerequest"
	"autocare-api/internal/domain/user"

	"github.com/google/uuid"
)

// NewNotification is the write-side record persisted for each recipient.
type NewNotification struct {
	ServiceRequestID uuid.UUID
	TargetUserID     uuid.UUID
	Action           notification.Action
	Field            notification.Field
	OldValue         string
	NewValue         string
	Message          string
	ChangedOn        time.Time
}

// DedupKey identifies notifications that say the same thing to the same
// person. ChangedOn is deliberately absent: the guard matches any row with
// this key inside the trailing window.
type DedupKey struct {
	ServiceRequestID uuid.UUID
	TargetUserID     uuid.UUID
	Action           notification.Action
	Field            notification.Field
	NewValue         string
}

// ServiceRequestSource supplies the latest committed service request state.
type ServiceRequestSource interface {
	Snapshot(ctx context.Context, id uuid.UUID) (*servicerequest.Snapshot, error)
}

// RoleDirectory answers role-membership questions for audience resolution.
type RoleDirectory interface {
	UserIDsInRole(ctx context.Context, role user.Role) ([]uuid.UUID, error)
	RolesOf(ctx context.Context, id uuid.UUID) ([]user.Role, error)
}

// NotificationStore is the append-only notification history.
type NotificationStore interface {
	Create(ctx context.Context, n NewNotification) error
	RecentExists(ctx context.Context, key DedupKey, since time.Time) (bool, error)
}
