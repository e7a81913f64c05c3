package notifier

import (
	"context"
	"log/slog"
	"time"

	"autocare-api/internal/domain/notification"
	"autocare-api/internal/domain/servicerequest"
	"autocare-api/internal/domain/user"
	"autocare-api/internal/pkg/clock"
	"autocare-api/internal/pkg/eventq"
	"autocare-api/internal/pkg/metrics"

	"github.com/google/uuid"
)

// Consumer drains the change-event queue serially and turns each event into
// per-recipient notification rows.
//
// There must be exactly one Consumer per queue. The dedup guard and the
// combined-assignment branching both assume a non-interleaved view of what
// was just emitted; running consumers in parallel would reintroduce the
// duplicates the guard exists to suppress.
//
// Failure policy is at-most-once: an event that errors mid-processing is
// logged with its identifying fields and dropped, and the loop moves on.
// Notifications for a failed event are lost, not retried.
type Consumer struct {
	queue    *eventq.Queue[notification.ChangeEvent]
	requests ServiceRequestSource
	roles    RoleDirectory
	store    NotificationStore
	clock    clock.Clock
	window   time.Duration
	logger   *slog.Logger
}

func NewConsumer(
	queue *eventq.Queue[notification.ChangeEvent],
	requests ServiceRequestSource,
	roles RoleDirectory,
	store NotificationStore,
	clk clock.Clock,
	dedupWindow time.Duration,
	logger *slog.Logger,
) *Consumer {
	return &Consumer{
		queue:    queue,
		requests: requests,
		roles:    roles,
		store:    store,
		clock:    clk,
		window:   dedupWindow,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled, then finishes draining already-queued
// events before returning. Cancellation is observed between events only; an
// event already dequeued runs to completion (or to its logged failure) on a
// detached context.
func (c *Consumer) Run(ctx context.Context) {
	c.logger.Info("notification consumer started", "dedup_window", c.window.String())

	detached := context.WithoutCancel(ctx)
	for {
		ev, err := c.queue.Dequeue(ctx)
		if err != nil {
			drained := c.drain(detached)
			c.logger.Info("notification consumer stopped", "drained", drained)
			return
		}
		metrics.QueueDepth.Set(float64(c.queue.Len()))
		c.handle(detached, ev)
	}
}

func (c *Consumer) drain(ctx context.Context) int {
	n := 0
	for {
		ev, ok := c.queue.TryDequeue()
		if !ok {
			return n
		}
		c.handle(ctx, ev)
		n++
	}
}

// handle is the per-event fault boundary: one bad event must never take the
// consumer loop down.
func (c *Consumer) handle(ctx context.Context, ev notification.ChangeEvent) {
	defer func() {
		if r := recover(); r != nil {
			metrics.EventsConsumed.WithLabelValues("dropped").Inc()
			c.logger.Error("panic while processing change event",
				"service_request_id", ev.ServiceRequestID,
				"action", ev.Action.String(),
				"panic", r)
		}
	}()

	if err := c.process(ctx, ev); err != nil {
		metrics.EventsConsumed.WithLabelValues("dropped").Inc()
		c.logger.Error("dropping change event",
			"service_request_id", ev.ServiceRequestID,
			"action", ev.Action.String(),
			"changes", len(ev.Changes),
			"error", err)
		return
	}
	metrics.EventsConsumed.WithLabelValues("processed").Inc()
}

func (c *Consumer) process(ctx context.Context, ev notification.ChangeEvent) error {
	// Always re-read: the snapshot at publish time may be stale by now.
	snap, err := c.requests.Snapshot(ctx, ev.ServiceRequestID)
	if err != nil {
		return err
	}

	managers, err := c.roles.UserIDsInRole(ctx, user.RoleManager)
	if err != nil {
		return err
	}
	managerSet := make(map[uuid.UUID]struct{}, len(managers))
	for _, id := range managers {
		managerSet[id] = struct{}{}
	}

	audience := notification.Resolve(ev, *snap, managers)

	for _, target := range audience.Primary {
		role := c.recipientRole(ctx, target, snap, managerSet)
		if err := c.notify(ctx, ev, target, role, false); err != nil {
			return err
		}
	}

	for _, target := range audience.Oversight {
		if err := c.notify(ctx, ev, target, user.RoleManager, true); err != nil {
			return err
		}
	}

	return nil
}

// notify emits the notifications one recipient gets for one event. The
// combined-assignment branch runs before the per-field loop and marks both
// fields handled so the recipient never sees the assignment twice.
// Oversight recipients only follow status and assignment changes.
func (c *Consumer) notify(ctx context.Context, ev notification.ChangeEvent, target uuid.UUID, role user.Role, oversight bool) error {
	// Added events carry first-change semantics: one message per recipient,
	// regardless of how many field entries the producer recorded.
	if ev.Action == notification.ActionAdded {
		first, ok := ev.FirstChange()
		if !ok {
			return nil
		}
		msg := notification.Compose(ev, role, first)
		if msg == "" {
			return nil
		}
		return c.emit(ctx, ev, target, first, msg, role)
	}

	handled := make(map[notification.Field]bool, 2)

	if ev.IsCombinedAssignment() {
		if msg := notification.ComposeCombined(ev, role); msg != "" {
			status, _ := ev.Change(notification.FieldStatus)
			if err := c.emit(ctx, ev, target, status, msg, role); err != nil {
				return err
			}
			handled[notification.FieldStatus] = true
			handled[notification.FieldTechnicianID] = true
		}
	}

	for _, ch := range ev.Changes {
		if handled[ch.Field] {
			continue
		}
		if oversight && ch.Field != notification.FieldStatus && ch.Field != notification.FieldTechnicianID {
			continue
		}
		msg := notification.Compose(ev, role, ch)
		if msg == "" {
			continue
		}
		if err := c.emit(ctx, ev, target, ch, msg, role); err != nil {
			return err
		}
	}

	return nil
}

// emit persists one notification unless an equivalent one was stored inside
// the trailing dedup window. The window is a heuristic against fan-out
// duplicates, not an exactly-once guarantee.
func (c *Consumer) emit(ctx context.Context, ev notification.ChangeEvent, target uuid.UUID, ch notification.FieldChange, msg string, role user.Role) error {
	now := c.clock.Now()

	key := DedupKey{
		ServiceRequestID: ev.ServiceRequestID,
		TargetUserID:     target,
		Action:           ev.Action,
		Field:            ch.Field,
		NewValue:         ch.New,
	}

	exists, err := c.store.RecentExists(ctx, key, now.Add(-c.window))
	if err != nil {
		return err
	}
	if exists {
		metrics.DuplicatesSuppressed.Inc()
		c.logger.Debug("suppressed duplicate notification",
			"service_request_id", ev.ServiceRequestID,
			"target_user_id", target,
			"field", ch.Field.String(),
			"new_value", ch.New)
		return nil
	}

	err = c.store.Create(ctx, NewNotification{
		ServiceRequestID: ev.ServiceRequestID,
		TargetUserID:     target,
		Action:           ev.Action,
		Field:            ch.Field,
		OldValue:         ch.Old,
		NewValue:         ch.New,
		Message:          msg,
		ChangedOn:        now,
	})
	if err != nil {
		return err
	}

	metrics.NotificationsCreated.WithLabelValues(roleLabel(role)).Inc()
	return nil
}

// recipientRole decides which phrasing a recipient gets: relation to the
// service request first, then role membership for explicit targets.
func (c *Consumer) recipientRole(ctx context.Context, target uuid.UUID, snap *servicerequest.Snapshot, managerSet map[uuid.UUID]struct{}) user.Role {
	if target == snap.CustomerID {
		return user.RoleCustomer
	}
	if snap.TechnicianID != nil && target == *snap.TechnicianID {
		return user.RoleTechnician
	}
	if _, ok := managerSet[target]; ok {
		return user.RoleManager
	}

	roles, err := c.roles.RolesOf(ctx, target)
	if err != nil {
		c.logger.Warn("role lookup failed, using fallback phrasing",
			"target_user_id", target, "error", err)
		return ""
	}
	for _, preferred := range []user.Role{user.RoleManager, user.RoleTechnician, user.RoleCustomer} {
		for _, r := range roles {
			if r == preferred {
				return r
			}
		}
	}
	return ""
}

func roleLabel(role user.Role) string {
	if role == "" {
		return "user"
	}
	return role.String()
}
