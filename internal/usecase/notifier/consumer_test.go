//go:build unit

package notifier_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"autocare-api/internal/domain/notification"
	"autocare-api/internal/domain/servicerequest"
	"autocare-api/internal/domain/user"
	"autocare-api/internal/pkg/clock"
	"autocare-api/internal/pkg/eventq"
	"autocare-api/internal/usecase/notifier"
	notifiermock "autocare-api/internal/usecase/notifier/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeStore is an in-memory NotificationStore with real dedup-window
// semantics, so suppression can be asserted across simulated time.
type fakeStore struct {
	mu   sync.Mutex
	rows []notifier.NewNotification
	fail bool
}

func (f *fakeStore) Create(_ context.Context, n notifier.NewNotification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("insert failed")
	}
	f.rows = append(f.rows, n)
	return nil
}

func (f *fakeStore) RecentExists(_ context.Context, key notifier.DedupKey, since time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.ServiceRequestID == key.ServiceRequestID &&
			r.TargetUserID == key.TargetUserID &&
			r.Action == key.Action &&
			r.Field == key.Field &&
			r.NewValue == key.NewValue &&
			r.ChangedOn.After(since) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) rowsFor(target uuid.UUID) []notifier.NewNotification {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []notifier.NewNotification
	for _, r := range f.rows {
		if r.TargetUserID == target {
			out = append(out, r)
		}
	}
	return out
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

type consumerFixture struct {
	queue    *eventq.Queue[notification.ChangeEvent]
	requests *notifiermock.MockServiceRequestSource
	roles    *notifiermock.MockRoleDirectory
	store    *fakeStore
	clock    *clock.MockClock
	consumer *notifier.Consumer

	customerID   uuid.UUID
	technicianID uuid.UUID
	managerID    uuid.UUID
	requestID    uuid.UUID
}

func newConsumerFixture(t *testing.T) *consumerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &consumerFixture{
		queue:        eventq.New[notification.ChangeEvent](),
		requests:     notifiermock.NewMockServiceRequestSource(ctrl),
		roles:        notifiermock.NewMockRoleDirectory(ctrl),
		store:        &fakeStore{},
		clock:        clock.NewMockClock(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)),
		customerID:   uuid.New(),
		technicianID: uuid.New(),
		managerID:    uuid.New(),
		requestID:    uuid.New(),
	}
	f.consumer = notifier.NewConsumer(
		f.queue, f.requests, f.roles, f.store,
		f.clock, time.Minute,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return f
}

func (f *consumerFixture) snapshot(status servicerequest.Status, withTechnician bool) *servicerequest.Snapshot {
	snap := &servicerequest.Snapshot{
		ID:         f.requestID,
		CustomerID: f.customerID,
		Status:     status,
	}
	if withTechnician {
		snap.TechnicianID = &f.technicianID
	}
	return snap
}

// runUntilDrained runs the consumer against a cancelled context so it takes
// the drain path and returns once the queue is empty.
func (f *consumerFixture) runUntilDrained(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.consumer.Run(ctx)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("consumer did not drain")
	}
}

func TestConsumerCombinedAssignment(t *testing.T) {
	f := newConsumerFixture(t)

	f.requests.EXPECT().Snapshot(gomock.Any(), f.requestID).
		Return(f.snapshot(servicerequest.StatusAssigned, true), nil)
	f.roles.EXPECT().UserIDsInRole(gomock.Any(), user.RoleManager).
		Return([]uuid.UUID{f.managerID}, nil)

	f.queue.Publish(notification.ChangeEvent{
		ServiceRequestID: f.requestID,
		Action:           notification.ActionUpdated,
		Changes: []notification.FieldChange{
			{Field: notification.FieldStatus, Old: "Requested", New: "Assigned"},
			{Field: notification.FieldTechnicianID, Old: "None", New: f.technicianID.String()},
		},
	})
	f.runUntilDrained(t)

	// One combined row per recipient, recorded under the status field.
	assert.Equal(t, 3, f.store.count())

	customerRows := f.store.rowsFor(f.customerID)
	require.Len(t, customerRows, 1)
	assert.Equal(t, notification.FieldStatus, customerRows[0].Field)
	assert.Equal(t,
		fmt.Sprintf("A technician has been assigned to your service request #%s. Your service is now Assigned.", f.requestID),
		customerRows[0].Message)

	technicianRows := f.store.rowsFor(f.technicianID)
	require.Len(t, technicianRows, 1)
	assert.Equal(t,
		fmt.Sprintf("You have been assigned to Service Request #%s. The service is now Assigned.", f.requestID),
		technicianRows[0].Message)

	managerRows := f.store.rowsFor(f.managerID)
	require.Len(t, managerRows, 1)
	assert.Equal(t,
		fmt.Sprintf("A technician has been assigned to Service Request #%s. The service is now Assigned.", f.requestID),
		managerRows[0].Message)
}

func TestConsumerAddedEvent(t *testing.T) {
	f := newConsumerFixture(t)

	f.requests.EXPECT().Snapshot(gomock.Any(), f.requestID).
		Return(f.snapshot(servicerequest.StatusRequested, false), nil)
	f.roles.EXPECT().UserIDsInRole(gomock.Any(), user.RoleManager).
		Return([]uuid.UUID{f.managerID}, nil)

	f.queue.Publish(notification.ChangeEvent{
		ServiceRequestID: f.requestID,
		Action:           notification.ActionAdded,
		Changes: []notification.FieldChange{
			{Field: notification.FieldStatus, Old: "", New: "Requested"},
		},
	})
	f.runUntilDrained(t)

	customerRows := f.store.rowsFor(f.customerID)
	require.Len(t, customerRows, 1)
	assert.Equal(t, notification.ActionAdded, customerRows[0].Action)
	assert.Equal(t,
		fmt.Sprintf("Your service request #%s has been successfully booked.", f.requestID),
		customerRows[0].Message)

	managerRows := f.store.rowsFor(f.managerID)
	require.Len(t, managerRows, 1)
	assert.Equal(t,
		fmt.Sprintf("New service request #%s has been created.", f.requestID),
		managerRows[0].Message)
}

func TestConsumerDeduplication(t *testing.T) {
	statusEvent := func(requestID uuid.UUID) notification.ChangeEvent {
		return notification.ChangeEvent{
			ServiceRequestID: requestID,
			Action:           notification.ActionUpdated,
			Changes: []notification.FieldChange{
				{Field: notification.FieldStatus, Old: "Assigned", New: "In Progress"},
			},
		}
	}

	t.Run("identical event inside the window is suppressed", func(t *testing.T) {
		f := newConsumerFixture(t)

		f.requests.EXPECT().Snapshot(gomock.Any(), f.requestID).
			Return(f.snapshot(servicerequest.StatusInProgress, true), nil).Times(2)
		f.roles.EXPECT().UserIDsInRole(gomock.Any(), user.RoleManager).
			Return([]uuid.UUID{f.managerID}, nil).Times(2)

		f.queue.Publish(statusEvent(f.requestID))
		f.runUntilDrained(t)
		first := f.store.count()

		f.clock.Add(10 * time.Second)
		f.queue.Publish(statusEvent(f.requestID))
		f.runUntilDrained(t)

		assert.Equal(t, 3, first)
		assert.Equal(t, first, f.store.count(), "duplicate inside window must not add rows")
	})

	t.Run("same event outside the window is stored again", func(t *testing.T) {
		f := newConsumerFixture(t)

		f.requests.EXPECT().Snapshot(gomock.Any(), f.requestID).
			Return(f.snapshot(servicerequest.StatusInProgress, true), nil).Times(2)
		f.roles.EXPECT().UserIDsInRole(gomock.Any(), user.RoleManager).
			Return([]uuid.UUID{f.managerID}, nil).Times(2)

		f.queue.Publish(statusEvent(f.requestID))
		f.runUntilDrained(t)
		first := f.store.count()

		f.clock.Add(90 * time.Second)
		f.queue.Publish(statusEvent(f.requestID))
		f.runUntilDrained(t)

		assert.Equal(t, first*2, f.store.count(), "window expired, event must be stored again")
	})

	t.Run("different new value is not a duplicate", func(t *testing.T) {
		f := newConsumerFixture(t)

		f.requests.EXPECT().Snapshot(gomock.Any(), f.requestID).
			Return(f.snapshot(servicerequest.StatusInProgress, true), nil).Times(2)
		f.roles.EXPECT().UserIDsInRole(gomock.Any(), user.RoleManager).
			Return([]uuid.UUID{f.managerID}, nil).Times(2)

		f.queue.Publish(statusEvent(f.requestID))
		f.queue.Publish(notification.ChangeEvent{
			ServiceRequestID: f.requestID,
			Action:           notification.ActionUpdated,
			Changes: []notification.FieldChange{
				{Field: notification.FieldStatus, Old: "In Progress", New: "Completed"},
			},
		})
		f.runUntilDrained(t)

		customerRows := f.store.rowsFor(f.customerID)
		assert.Len(t, customerRows, 2)
	})
}

func TestConsumerFailurePolicy(t *testing.T) {
	t.Run("failed event is dropped and the loop continues", func(t *testing.T) {
		f := newConsumerFixture(t)
		otherRequest := uuid.New()

		f.requests.EXPECT().Snapshot(gomock.Any(), otherRequest).
			Return(nil, errors.New("request vanished"))
		f.requests.EXPECT().Snapshot(gomock.Any(), f.requestID).
			Return(f.snapshot(servicerequest.StatusInProgress, true), nil)
		f.roles.EXPECT().UserIDsInRole(gomock.Any(), user.RoleManager).
			Return(nil, nil)

		f.queue.Publish(notification.ChangeEvent{
			ServiceRequestID: otherRequest,
			Action:           notification.ActionUpdated,
			Changes: []notification.FieldChange{
				{Field: notification.FieldStatus, Old: "Assigned", New: "In Progress"},
			},
		})
		f.queue.Publish(notification.ChangeEvent{
			ServiceRequestID: f.requestID,
			Action:           notification.ActionUpdated,
			Changes: []notification.FieldChange{
				{Field: notification.FieldStatus, Old: "Assigned", New: "In Progress"},
			},
		})
		f.runUntilDrained(t)

		// Only the second event produced rows; the first is gone, not retried.
		assert.NotEmpty(t, f.store.rowsFor(f.customerID))
		assert.Empty(t, f.store.rowsFor(uuid.Nil))
		for _, r := range f.store.rowsFor(f.customerID) {
			assert.Equal(t, f.requestID, r.ServiceRequestID)
		}
	})

	t.Run("store failure drops the event without retry", func(t *testing.T) {
		f := newConsumerFixture(t)
		f.store.fail = true

		f.requests.EXPECT().Snapshot(gomock.Any(), f.requestID).
			Return(f.snapshot(servicerequest.StatusInProgress, true), nil)
		f.roles.EXPECT().UserIDsInRole(gomock.Any(), user.RoleManager).
			Return(nil, nil)

		f.queue.Publish(notification.ChangeEvent{
			ServiceRequestID: f.requestID,
			Action:           notification.ActionUpdated,
			Changes: []notification.FieldChange{
				{Field: notification.FieldStatus, Old: "Assigned", New: "In Progress"},
			},
		})
		f.runUntilDrained(t)

		assert.Equal(t, 0, f.store.count())
		assert.Equal(t, 0, f.queue.Len(), "failed event must not be requeued")
	})
}

func TestConsumerOversightScope(t *testing.T) {
	f := newConsumerFixture(t)

	f.requests.EXPECT().Snapshot(gomock.Any(), f.requestID).
		Return(f.snapshot(servicerequest.StatusRequested, false), nil)
	f.roles.EXPECT().UserIDsInRole(gomock.Any(), user.RoleManager).
		Return([]uuid.UUID{f.managerID}, nil)

	f.queue.Publish(notification.ChangeEvent{
		ServiceRequestID: f.requestID,
		Action:           notification.ActionUpdated,
		Changes: []notification.FieldChange{
			{Field: notification.FieldRequestedDate, Old: "2026-09-01T09:00:00Z", New: "2026-09-03T09:00:00Z"},
		},
	})
	f.runUntilDrained(t)

	assert.Len(t, f.store.rowsFor(f.customerID), 1)
	assert.Empty(t, f.store.rowsFor(f.managerID), "managers do not follow reschedules")
}

func TestConsumerDrainOnShutdown(t *testing.T) {
	f := newConsumerFixture(t)
	const queued = 5

	f.requests.EXPECT().Snapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*servicerequest.Snapshot, error) {
			return &servicerequest.Snapshot{ID: id, CustomerID: f.customerID, Status: servicerequest.StatusRequested}, nil
		}).Times(queued)
	f.roles.EXPECT().UserIDsInRole(gomock.Any(), user.RoleManager).
		Return(nil, nil).Times(queued)

	for i := 0; i < queued; i++ {
		f.queue.Publish(notification.ChangeEvent{
			ServiceRequestID: uuid.New(),
			Action:           notification.ActionAdded,
			Changes: []notification.FieldChange{
				{Field: notification.FieldStatus, Old: "", New: "Requested"},
			},
		})
	}
	f.runUntilDrained(t)

	assert.Equal(t, 0, f.queue.Len())
	assert.Equal(t, queued, f.store.count(), "everything queued before shutdown must be processed")
}
