//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"autocare-api/internal/domain/notification"
	"autocare-api/internal/domain/servicerequest"
	"autocare-api/internal/domain/user"
	"autocare-api/internal/pkg/clock"
	"autocare-api/internal/pkg/errs"
	"autocare-api/internal/usecase/commands"
	commandsmock "autocare-api/internal/usecase/commands/mock"
	notifiermock "autocare-api/internal/usecase/notifier/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type commandsFixture struct {
	repo      *commandsmock.MockServiceRequestRepository
	publisher *notifiermock.MockPublisher
	clock     *clock.MockClock
	uc        commands.ServiceRequestCommands

	customerID   uuid.UUID
	technicianID uuid.UUID
	managerID    uuid.UUID
}

func newCommandsFixture(t *testing.T) *commandsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &commandsFixture{
		repo:         commandsmock.NewMockServiceRequestRepository(ctrl),
		publisher:    notifiermock.NewMockPublisher(ctrl),
		clock:        clock.NewMockClock(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)),
		customerID:   uuid.New(),
		technicianID: uuid.New(),
		managerID:    uuid.New(),
	}
	f.uc = commands.NewServiceRequestUseCase(f.repo, f.publisher, f.clock)
	return f
}

func (f *commandsFixture) existing(id uuid.UUID, status servicerequest.Status, withTechnician bool) *servicerequest.ServiceRequest {
	var technicianID *uuid.UUID
	if withTechnician {
		technicianID = &f.technicianID
	}
	now := f.clock.Now()
	return servicerequest.ReconstructServiceRequest(
		id, f.customerID, technicianID,
		"2019 Corolla", "Brakes squeal",
		status, now.Add(48*time.Hour), now, now,
	)
}

func (f *commandsFixture) customer() commands.Actor {
	return commands.Actor{ID: f.customerID, Role: user.RoleCustomer}
}

func (f *commandsFixture) technician() commands.Actor {
	return commands.Actor{ID: f.technicianID, Role: user.RoleTechnician}
}

func (f *commandsFixture) manager() commands.Actor {
	return commands.Actor{ID: f.managerID, Role: user.RoleManager}
}

func TestCreateServiceRequest(t *testing.T) {
	t.Run("persists then publishes an Added event", func(t *testing.T) {
		f := newCommandsFixture(t)
		ctx := context.Background()

		var created *servicerequest.ServiceRequest
		f.repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req *servicerequest.ServiceRequest) error {
				created = req
				return nil
			})
		f.publisher.EXPECT().Publish(gomock.Any()).
			Do(func(ev notification.ChangeEvent) {
				assert.Equal(t, notification.ActionAdded, ev.Action)
				require.Len(t, ev.Changes, 1)
				assert.Equal(t, notification.FieldStatus, ev.Changes[0].Field)
				assert.Equal(t, "", ev.Changes[0].Old)
				assert.Equal(t, "Requested", ev.Changes[0].New)
			})

		id, err := f.uc.Create(ctx, f.customer(), commands.CreateServiceRequestParams{
			VehicleDesc:   "2019 Corolla",
			ProblemDesc:   "Brakes squeal",
			RequestedDate: f.clock.Now().Add(48 * time.Hour),
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, created.ID(), id)
		assert.Equal(t, f.customerID, created.CustomerID())
	})

	t.Run("no event when the insert fails", func(t *testing.T) {
		f := newCommandsFixture(t)
		ctx := context.Background()

		f.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("connection reset"))
		// publisher must not be called

		_, err := f.uc.Create(ctx, f.customer(), commands.CreateServiceRequestParams{
			VehicleDesc:   "car",
			ProblemDesc:   "problem",
			RequestedDate: f.clock.Now().Add(time.Hour),
		})
		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))
	})

	t.Run("rejects a past requested date", func(t *testing.T) {
		f := newCommandsFixture(t)

		_, err := f.uc.Create(context.Background(), f.customer(), commands.CreateServiceRequestParams{
			VehicleDesc:   "car",
			ProblemDesc:   "problem",
			RequestedDate: f.clock.Now().Add(-time.Hour),
		})
		assert.True(t, errs.Is(err, commands.ErrDomainValidation))
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("assigned technician publishes old and new status", func(t *testing.T) {
		f := newCommandsFixture(t)
		ctx := context.Background()
		id := uuid.New()

		f.repo.EXPECT().FindByID(ctx, id).Return(f.existing(id, servicerequest.StatusAssigned, true), nil)
		f.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any()).
			Do(func(ev notification.ChangeEvent) {
				assert.Equal(t, id, ev.ServiceRequestID)
				assert.Equal(t, notification.ActionUpdated, ev.Action)
				require.Len(t, ev.Changes, 1)
				assert.Equal(t, "Assigned", ev.Changes[0].Old)
				assert.Equal(t, "In Progress", ev.Changes[0].New)
			})

		err := f.uc.UpdateStatus(ctx, f.technician(), commands.UpdateStatusParams{
			RequestID: id,
			NewStatus: "In Progress",
		})
		require.NoError(t, err)
	})

	t.Run("unassigned technician is forbidden", func(t *testing.T) {
		f := newCommandsFixture(t)
		ctx := context.Background()
		id := uuid.New()

		f.repo.EXPECT().FindByID(ctx, id).Return(f.existing(id, servicerequest.StatusAssigned, true), nil)

		err := f.uc.UpdateStatus(ctx, commands.Actor{ID: uuid.New(), Role: user.RoleTechnician}, commands.UpdateStatusParams{
			RequestID: id,
			NewStatus: "In Progress",
		})
		assert.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("illegal transition publishes nothing", func(t *testing.T) {
		f := newCommandsFixture(t)
		ctx := context.Background()
		id := uuid.New()

		f.repo.EXPECT().FindByID(ctx, id).Return(f.existing(id, servicerequest.StatusRequested, false), nil)

		err := f.uc.UpdateStatus(ctx, f.manager(), commands.UpdateStatusParams{
			RequestID: id,
			NewStatus: "Completed",
		})
		assert.True(t, errs.Is(err, commands.ErrInvalidTransition))
	})

	t.Run("unknown status string", func(t *testing.T) {
		f := newCommandsFixture(t)

		err := f.uc.UpdateStatus(context.Background(), f.manager(), commands.UpdateStatusParams{
			RequestID: uuid.New(),
			NewStatus: "InProgress",
		})
		assert.True(t, errs.Is(err, commands.ErrInvalidStatus))
	})
}

func TestAssignTechnician(t *testing.T) {
	t.Run("publishes one event carrying both changes", func(t *testing.T) {
		f := newCommandsFixture(t)
		ctx := context.Background()
		id := uuid.New()

		f.repo.EXPECT().FindByID(ctx, id).Return(f.existing(id, servicerequest.StatusRequested, false), nil)
		f.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any()).
			Do(func(ev notification.ChangeEvent) {
				require.Len(t, ev.Changes, 2)
				assert.Equal(t, notification.FieldStatus, ev.Changes[0].Field)
				assert.Equal(t, "Requested", ev.Changes[0].Old)
				assert.Equal(t, "Assigned", ev.Changes[0].New)
				assert.Equal(t, notification.FieldTechnicianID, ev.Changes[1].Field)
				assert.Equal(t, "None", ev.Changes[1].Old)
				assert.Equal(t, f.technicianID.String(), ev.Changes[1].New)
				assert.True(t, ev.IsCombinedAssignment())
			})

		err := f.uc.AssignTechnician(ctx, f.manager(), commands.AssignTechnicianParams{
			RequestID:    id,
			TechnicianID: f.technicianID,
		})
		require.NoError(t, err)
	})

	t.Run("reassignment records the previous technician", func(t *testing.T) {
		f := newCommandsFixture(t)
		ctx := context.Background()
		id := uuid.New()
		replacement := uuid.New()

		f.repo.EXPECT().FindByID(ctx, id).Return(f.existing(id, servicerequest.StatusAssigned, true), nil)
		f.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any()).
			Do(func(ev notification.ChangeEvent) {
				require.Len(t, ev.Changes, 2)
				assert.Equal(t, f.technicianID.String(), ev.Changes[1].Old)
				assert.Equal(t, replacement.String(), ev.Changes[1].New)
			})

		err := f.uc.AssignTechnician(ctx, f.manager(), commands.AssignTechnicianParams{
			RequestID:    id,
			TechnicianID: replacement,
		})
		require.NoError(t, err)
	})

	t.Run("only managers may assign", func(t *testing.T) {
		f := newCommandsFixture(t)

		err := f.uc.AssignTechnician(context.Background(), f.technician(), commands.AssignTechnicianParams{
			RequestID:    uuid.New(),
			TechnicianID: uuid.New(),
		})
		assert.ErrorIs(t, err, commands.ErrForbidden)
	})
}

func TestReschedule(t *testing.T) {
	t.Run("publishes formatted old and new dates", func(t *testing.T) {
		f := newCommandsFixture(t)
		ctx := context.Background()
		id := uuid.New()

		existing := f.existing(id, servicerequest.StatusRequested, false)
		oldDate := existing.RequestedDate()
		newDate := f.clock.Now().Add(96 * time.Hour)

		f.repo.EXPECT().FindByID(ctx, id).Return(existing, nil)
		f.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any()).
			Do(func(ev notification.ChangeEvent) {
				require.Len(t, ev.Changes, 1)
				assert.Equal(t, notification.FieldRequestedDate, ev.Changes[0].Field)
				assert.Equal(t, oldDate.Format(time.RFC3339), ev.Changes[0].Old)
				assert.Equal(t, newDate.Format(time.RFC3339), ev.Changes[0].New)
			})

		err := f.uc.Reschedule(ctx, f.customer(), commands.RescheduleParams{
			RequestID:     id,
			RequestedDate: newDate,
		})
		require.NoError(t, err)
	})

	t.Run("another customer is forbidden", func(t *testing.T) {
		f := newCommandsFixture(t)
		ctx := context.Background()
		id := uuid.New()

		f.repo.EXPECT().FindByID(ctx, id).Return(f.existing(id, servicerequest.StatusRequested, false), nil)

		err := f.uc.Reschedule(ctx, commands.Actor{ID: uuid.New(), Role: user.RoleCustomer}, commands.RescheduleParams{
			RequestID:     id,
			RequestedDate: f.clock.Now().Add(time.Hour),
		})
		assert.ErrorIs(t, err, commands.ErrForbidden)
	})
}

func TestCancel(t *testing.T) {
	t.Run("owner cancels and the event records the transition", func(t *testing.T) {
		f := newCommandsFixture(t)
		ctx := context.Background()
		id := uuid.New()

		f.repo.EXPECT().FindByID(ctx, id).Return(f.existing(id, servicerequest.StatusRequested, false), nil)
		f.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any()).
			Do(func(ev notification.ChangeEvent) {
				require.Len(t, ev.Changes, 1)
				assert.Equal(t, "Requested", ev.Changes[0].Old)
				assert.Equal(t, "Cancelled", ev.Changes[0].New)
			})

		require.NoError(t, f.uc.Cancel(ctx, f.customer(), id))
	})

	t.Run("terminal request cannot be cancelled again", func(t *testing.T) {
		f := newCommandsFixture(t)
		ctx := context.Background()
		id := uuid.New()

		f.repo.EXPECT().FindByID(ctx, id).Return(f.existing(id, servicerequest.StatusCancelled, false), nil)

		err := f.uc.Cancel(ctx, f.customer(), id)
		assert.True(t, errs.Is(err, commands.ErrInvalidTransition))
	})
}
