package servicerequest

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrTechnicianNotAssigned = errors.New("technician not assigned")
	ErrAlreadyTerminal       = errors.New("service request is already closed or cancelled")
	ErrPastRequestedDate     = errors.New("requested date is in the past")
)

type ServiceRequest struct {
	id            uuid.UUID
	customerID    uuid.UUID
	technicianID  *uuid.UUID
	vehicleDesc   string
	problemDesc   string
	status        Status
	requestedDate time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewServiceRequest(customerID uuid.UUID, vehicleDesc, problemDesc string, requestedDate, now time.Time) (*ServiceRequest, error) {
	if requestedDate.Before(now) {
		return nil, ErrPastRequestedDate
	}
	return &ServiceRequest{
		id:            uuid.New(),
		customerID:    customerID,
		vehicleDesc:   vehicleDesc,
		problemDesc:   problemDesc,
		status:        StatusRequested,
		requestedDate: requestedDate,
	}, nil
}

func ReconstructServiceRequest(
	id, customerID uuid.UUID,
	technicianID *uuid.UUID,
	vehicleDesc, problemDesc string,
	status Status,
	requestedDate time.Time,
	createdAt, updatedAt time.Time,
) *ServiceRequest {
	return &ServiceRequest{
		id:            id,
		customerID:    customerID,
		technicianID:  technicianID,
		vehicleDesc:   vehicleDesc,
		problemDesc:   problemDesc,
		status:        status,
		requestedDate: requestedDate,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// legal transitions from each status
var transitions = map[Status][]Status{
	StatusRequested:     {StatusAssigned, StatusCancelled},
	StatusAssigned:      {StatusInProgress, StatusCancelled},
	StatusInProgress:    {StatusCompleted, StatusPendingReview, StatusCancelled},
	StatusPendingReview: {StatusCompleted, StatusInProgress},
	StatusCompleted:     {StatusClosed},
}

// ChangeStatus validates and applies a status transition.
func (s *ServiceRequest) ChangeStatus(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if s.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	for _, allowed := range transitions[s.status] {
		if next == allowed {
			s.status = next
			return nil
		}
	}
	return ErrInvalidTransition
}

// Assign sets the technician and moves the request to Assigned. Assignment
// and the status change are one business operation; callers publish them as
// a single change event.
func (s *ServiceRequest) Assign(technicianID uuid.UUID) error {
	if s.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if s.status != StatusRequested && s.status != StatusAssigned {
		return ErrInvalidTransition
	}
	s.technicianID = &technicianID
	s.status = StatusAssigned
	return nil
}

func (s *ServiceRequest) Reschedule(date time.Time, now time.Time) error {
	if s.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if date.Before(now) {
		return ErrPastRequestedDate
	}
	s.requestedDate = date
	return nil
}

func (s *ServiceRequest) Cancel() error {
	if s.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	s.status = StatusCancelled
	return nil
}

func (s *ServiceRequest) ID() uuid.UUID            { return s.id }
func (s *ServiceRequest) CustomerID() uuid.UUID    { return s.customerID }
func (s *ServiceRequest) TechnicianID() *uuid.UUID { return s.technicianID }
func (s *ServiceRequest) VehicleDesc() string      { return s.vehicleDesc }
func (s *ServiceRequest) ProblemDesc() string      { return s.problemDesc }
func (s *ServiceRequest) Status() Status           { return s.status }
func (s *ServiceRequest) RequestedDate() time.Time { return s.requestedDate }
func (s *ServiceRequest) CreatedAt() time.Time     { return s.createdAt }
func (s *ServiceRequest) UpdatedAt() time.Time     { return s.updatedAt }

// Snapshot is the read-only view of a service request the notification
// consumer works from. The consumer always re-reads it instead of trusting
// the state at publish time.
type Snapshot struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	TechnicianID  *uuid.UUID
	Status        Status
	RequestedDate time.Time
}
