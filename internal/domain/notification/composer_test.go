//go:build unit

package notification_test

import (
	"fmt"
	"testing"

	"autocare-api/internal/domain/notification"
	"autocare-api/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func updatedStatus(id uuid.UUID, oldStatus, newStatus string) notification.ChangeEvent {
	return notification.ChangeEvent{
		ServiceRequestID: id,
		Action:           notification.ActionUpdated,
		Changes: []notification.FieldChange{
			{Field: notification.FieldStatus, Old: oldStatus, New: newStatus},
		},
	}
}

func TestCompose(t *testing.T) {
	id := uuid.New()

	added := notification.ChangeEvent{
		ServiceRequestID: id,
		Action:           notification.ActionAdded,
		Changes: []notification.FieldChange{
			{Field: notification.FieldStatus, Old: "", New: "Requested"},
		},
	}

	t.Run("added event", func(t *testing.T) {
		first, _ := added.FirstChange()

		assert.Equal(t,
			fmt.Sprintf("Your service request #%s has been successfully booked.", id),
			notification.Compose(added, user.RoleCustomer, first))
		assert.Equal(t,
			fmt.Sprintf("New service request #%s has been created.", id),
			notification.Compose(added, user.RoleManager, first))
	})

	t.Run("work started", func(t *testing.T) {
		ev := updatedStatus(id, "Assigned", "In Progress")
		ch := ev.Changes[0]

		assert.Equal(t,
			fmt.Sprintf("You have started working on Service Request #%s.", id),
			notification.Compose(ev, user.RoleTechnician, ch))
		assert.Equal(t,
			fmt.Sprintf("The technician has started working on your service #%s.", id),
			notification.Compose(ev, user.RoleCustomer, ch))
	})

	t.Run("completed asks the customer to pay", func(t *testing.T) {
		ev := updatedStatus(id, "In Progress", "Completed")
		ch := ev.Changes[0]

		assert.Equal(t,
			fmt.Sprintf("Your service request #%s has been completed. Please complete the payment to collect your vehicle.", id),
			notification.Compose(ev, user.RoleCustomer, ch))
	})

	t.Run("closed", func(t *testing.T) {
		ev := updatedStatus(id, "Completed", "Closed")
		ch := ev.Changes[0]

		assert.Equal(t,
			fmt.Sprintf("Your service request #%s has been updated to 'Closed' and payment is done.", id),
			notification.Compose(ev, user.RoleCustomer, ch))
		assert.Equal(t,
			fmt.Sprintf("Service Request #%s has been closed and the payment is done.", id),
			notification.Compose(ev, user.RoleManager, ch))
	})

	t.Run("generic status update", func(t *testing.T) {
		ev := updatedStatus(id, "In Progress", "Pending Review")
		ch := ev.Changes[0]

		assert.Equal(t,
			fmt.Sprintf("Your service request #%s status has been updated to 'Pending Review'.", id),
			notification.Compose(ev, user.RoleCustomer, ch))
		assert.Equal(t,
			fmt.Sprintf("Service Request #%s assigned to you has been updated to 'Pending Review'.", id),
			notification.Compose(ev, user.RoleTechnician, ch))
		assert.Equal(t,
			fmt.Sprintf("Service Request #%s status has been updated to 'Pending Review'.", id),
			notification.Compose(ev, user.RoleManager, ch))
	})

	t.Run("reschedule", func(t *testing.T) {
		ev := notification.ChangeEvent{
			ServiceRequestID: id,
			Action:           notification.ActionUpdated,
			Changes: []notification.FieldChange{
				{Field: notification.FieldRequestedDate, Old: "2026-09-01T09:00:00Z", New: "2026-09-03T09:00:00Z"},
			},
		}
		ch := ev.Changes[0]

		assert.Equal(t,
			fmt.Sprintf("Your service request #%s has been rescheduled to 2026-09-03T09:00:00Z.", id),
			notification.Compose(ev, user.RoleCustomer, ch))
	})

	t.Run("unknown field says nothing", func(t *testing.T) {
		ev := notification.ChangeEvent{
			ServiceRequestID: id,
			Action:           notification.ActionUpdated,
			Changes: []notification.FieldChange{
				{Field: notification.Field("Color"), Old: "red", New: "blue"},
			},
		}
		assert.Empty(t, notification.Compose(ev, user.RoleCustomer, ev.Changes[0]))
	})
}

func TestComposeCombined(t *testing.T) {
	id := uuid.New()
	ev := notification.ChangeEvent{
		ServiceRequestID: id,
		Action:           notification.ActionUpdated,
		Changes: []notification.FieldChange{
			{Field: notification.FieldStatus, Old: "Requested", New: "Assigned"},
			{Field: notification.FieldTechnicianID, Old: "None", New: uuid.NewString()},
		},
	}

	t.Run("one sentence per role", func(t *testing.T) {
		assert.Equal(t,
			fmt.Sprintf("A technician has been assigned to your service request #%s. Your service is now Assigned.", id),
			notification.ComposeCombined(ev, user.RoleCustomer))
		assert.Equal(t,
			fmt.Sprintf("You have been assigned to Service Request #%s. The service is now Assigned.", id),
			notification.ComposeCombined(ev, user.RoleTechnician))
		assert.Equal(t,
			fmt.Sprintf("A technician has been assigned to Service Request #%s. The service is now Assigned.", id),
			notification.ComposeCombined(ev, user.RoleManager))
	})

	t.Run("needs a status change to say anything", func(t *testing.T) {
		noStatus := notification.ChangeEvent{
			ServiceRequestID: id,
			Action:           notification.ActionUpdated,
			Changes: []notification.FieldChange{
				{Field: notification.FieldTechnicianID, Old: "None", New: uuid.NewString()},
			},
		}
		assert.Empty(t, notification.ComposeCombined(noStatus, user.RoleCustomer))
	})

	t.Run("detection requires both fields", func(t *testing.T) {
		assert.True(t, ev.IsCombinedAssignment())

		statusOnly := notification.ChangeEvent{
			ServiceRequestID: id,
			Action:           notification.ActionUpdated,
			Changes: []notification.FieldChange{
				{Field: notification.FieldStatus, Old: "Requested", New: "Assigned"},
			},
		}
		assert.False(t, statusOnly.IsCombinedAssignment())
	})
}
