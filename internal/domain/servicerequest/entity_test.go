//go:build unit

package servicerequest_test

import (
	"testing"
	"time"

	"autocare-api/internal/domain/servicerequest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T) *servicerequest.ServiceRequest {
	t.Helper()
	now := time.Now()
	req, err := servicerequest.NewServiceRequest(
		uuid.New(),
		"2019 Corolla",
		"Brakes squeal at low speed",
		now.Add(48*time.Hour),
		now,
	)
	require.NoError(t, err)
	return req
}

func TestNewServiceRequest(t *testing.T) {
	t.Run("starts in Requested with no technician", func(t *testing.T) {
		req := newRequest(t)
		assert.NotEqual(t, uuid.Nil, req.ID())
		assert.Equal(t, servicerequest.StatusRequested, req.Status())
		assert.Nil(t, req.TechnicianID())
	})

	t.Run("rejects past requested date", func(t *testing.T) {
		now := time.Now()
		_, err := servicerequest.NewServiceRequest(
			uuid.New(), "car", "problem", now.Add(-time.Hour), now,
		)
		assert.ErrorIs(t, err, servicerequest.ErrPastRequestedDate)
	})
}

func TestChangeStatus(t *testing.T) {
	type transitionCase struct {
		name  string
		from  servicerequest.Status
		to    servicerequest.Status
		errIs error
	}

	cases := []transitionCase{
		{name: "Requested to Assigned", from: servicerequest.StatusRequested, to: servicerequest.StatusAssigned},
		{name: "Requested to Cancelled", from: servicerequest.StatusRequested, to: servicerequest.StatusCancelled},
		{name: "Assigned to In Progress", from: servicerequest.StatusAssigned, to: servicerequest.StatusInProgress},
		{name: "In Progress to Completed", from: servicerequest.StatusInProgress, to: servicerequest.StatusCompleted},
		{name: "In Progress to Pending Review", from: servicerequest.StatusInProgress, to: servicerequest.StatusPendingReview},
		{name: "Pending Review to Completed", from: servicerequest.StatusPendingReview, to: servicerequest.StatusCompleted},
		{name: "Pending Review back to In Progress", from: servicerequest.StatusPendingReview, to: servicerequest.StatusInProgress},
		{name: "Completed to Closed", from: servicerequest.StatusCompleted, to: servicerequest.StatusClosed},
		{name: "Requested cannot jump to Completed", from: servicerequest.StatusRequested, to: servicerequest.StatusCompleted, errIs: servicerequest.ErrInvalidTransition},
		{name: "Assigned cannot skip to Closed", from: servicerequest.StatusAssigned, to: servicerequest.StatusClosed, errIs: servicerequest.ErrInvalidTransition},
		{name: "Closed is terminal", from: servicerequest.StatusClosed, to: servicerequest.StatusRequested, errIs: servicerequest.ErrAlreadyTerminal},
		{name: "Cancelled is terminal", from: servicerequest.StatusCancelled, to: servicerequest.StatusAssigned, errIs: servicerequest.ErrAlreadyTerminal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := reconstructWithStatus(tc.from)
			err := req.ChangeStatus(tc.to)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, tc.from, req.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, req.Status())
		})
	}

	t.Run("rejects unknown status", func(t *testing.T) {
		req := newRequest(t)
		err := req.ChangeStatus(servicerequest.Status("Vaporized"))
		assert.ErrorIs(t, err, servicerequest.ErrInvalidStatus)
	})
}

func TestAssign(t *testing.T) {
	t.Run("sets technician and moves to Assigned", func(t *testing.T) {
		req := newRequest(t)
		techID := uuid.New()

		require.NoError(t, req.Assign(techID))
		require.NotNil(t, req.TechnicianID())
		assert.Equal(t, techID, *req.TechnicianID())
		assert.Equal(t, servicerequest.StatusAssigned, req.Status())
	})

	t.Run("reassignment replaces the technician", func(t *testing.T) {
		req := newRequest(t)
		require.NoError(t, req.Assign(uuid.New()))

		replacement := uuid.New()
		require.NoError(t, req.Assign(replacement))
		assert.Equal(t, replacement, *req.TechnicianID())
		assert.Equal(t, servicerequest.StatusAssigned, req.Status())
	})

	t.Run("cannot assign once work started", func(t *testing.T) {
		req := reconstructWithStatus(servicerequest.StatusInProgress)
		assert.ErrorIs(t, req.Assign(uuid.New()), servicerequest.ErrInvalidTransition)
	})

	t.Run("cannot assign a cancelled request", func(t *testing.T) {
		req := reconstructWithStatus(servicerequest.StatusCancelled)
		assert.ErrorIs(t, req.Assign(uuid.New()), servicerequest.ErrAlreadyTerminal)
	})
}

func TestReschedule(t *testing.T) {
	t.Run("moves the requested date", func(t *testing.T) {
		req := newRequest(t)
		now := time.Now()
		newDate := now.Add(96 * time.Hour)

		require.NoError(t, req.Reschedule(newDate, now))
		assert.Equal(t, newDate, req.RequestedDate())
	})

	t.Run("rejects past date", func(t *testing.T) {
		req := newRequest(t)
		now := time.Now()
		assert.ErrorIs(t, req.Reschedule(now.Add(-time.Minute), now), servicerequest.ErrPastRequestedDate)
	})

	t.Run("rejects terminal request", func(t *testing.T) {
		req := reconstructWithStatus(servicerequest.StatusClosed)
		now := time.Now()
		assert.ErrorIs(t, req.Reschedule(now.Add(time.Hour), now), servicerequest.ErrAlreadyTerminal)
	})
}

func TestCancel(t *testing.T) {
	t.Run("cancels an open request", func(t *testing.T) {
		req := newRequest(t)
		require.NoError(t, req.Cancel())
		assert.Equal(t, servicerequest.StatusCancelled, req.Status())
	})

	t.Run("cancel is not idempotent", func(t *testing.T) {
		req := newRequest(t)
		require.NoError(t, req.Cancel())
		assert.ErrorIs(t, req.Cancel(), servicerequest.ErrAlreadyTerminal)
	})
}

func TestNewStatus(t *testing.T) {
	for _, valid := range []string{
		"Requested", "Assigned", "In Progress", "Completed", "Closed", "Cancelled", "Pending Review",
	} {
		t.Run(valid, func(t *testing.T) {
			s, err := servicerequest.NewStatus(valid)
			require.NoError(t, err)
			assert.Equal(t, valid, s.String())
		})
	}

	t.Run("rejects unknown value", func(t *testing.T) {
		_, err := servicerequest.NewStatus("InProgress")
		assert.ErrorIs(t, err, servicerequest.ErrInvalidStatus)
	})
}

func reconstructWithStatus(status servicerequest.Status) *servicerequest.ServiceRequest {
	now := time.Now()
	var technicianID *uuid.UUID
	if status != servicerequest.StatusRequested {
		id := uuid.New()
		technicianID = &id
	}
	return servicerequest.ReconstructServiceRequest(
		uuid.New(), uuid.New(), technicianID,
		"2019 Corolla", "Brakes squeal at low speed",
		status, now.Add(48*time.Hour), now, now,
	)
}
