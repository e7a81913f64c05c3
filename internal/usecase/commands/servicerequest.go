package commands

import (
	"context"
	"time"

	"autocare-api/internal/domain/notification"
	"autocare-api/internal/domain/servicerequest"
	"autocare-api/internal/domain/user"
	"autocare-api/internal/infra"
	"autocare-api/internal/pkg/clock"
	"autocare-api/internal/pkg/errs"
	"autocare-api/internal/usecase/notifier"

	"github.com/google/uuid"
)

var (
	ErrServiceRequestNotFound  = errs.New("service request not found")
	ErrForbidden               = errs.New("actor is not allowed to modify this service request")
	ErrInvalidStatus           = errs.New("invalid status")
	ErrInvalidTransition       = errs.New("invalid status transition")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// noTechnician is the rendered old value when a request had no technician yet.
const noTechnician = "None"

const dateLayout = time.RFC3339

// Actor identifies who is executing a command.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

type ServiceRequestCommands interface {
	Create(ctx context.Context, actor Actor, params CreateServiceRequestParams) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, actor Actor, params UpdateStatusParams) error
	AssignTechnician(ctx context.Context, actor Actor, params AssignTechnicianParams) error
	Reschedule(ctx context.Context, actor Actor, params RescheduleParams) error
	Cancel(ctx context.Context, actor Actor, requestID uuid.UUID) error
}

type serviceRequestUseCaseImpl struct {
	repo      ServiceRequestRepository
	publisher notifier.Publisher
	clock     clock.Clock
}

func NewServiceRequestUseCase(
	repo ServiceRequestRepository,
	publisher notifier.Publisher,
	clock clock.Clock,
) ServiceRequestCommands {
	return &serviceRequestUseCaseImpl{
		repo:      repo,
		publisher: publisher,
		clock:     clock,
	}
}

// Create books a new service request and announces it. The event is published
// only after the insert succeeds, so the consumer never sees a request it
// cannot re-read.
func (u *serviceRequestUseCaseImpl) Create(ctx context.Context, actor Actor, params CreateServiceRequestParams) (uuid.UUID, error) {
	customerID := params.CustomerID
	if actor.Role == user.RoleCustomer {
		customerID = actor.ID
	}

	req, err := servicerequest.NewServiceRequest(
		customerID,
		params.VehicleDesc,
		params.ProblemDesc,
		params.RequestedDate,
		u.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.repo.Create(ctx, req); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.publisher.Publish(notification.ChangeEvent{
		ServiceRequestID: req.ID(),
		Action:           notification.ActionAdded,
		Changes: []notification.FieldChange{
			{Field: notification.FieldStatus, Old: "", New: req.Status().String()},
		},
	})

	return req.ID(), nil
}

func (u *serviceRequestUseCaseImpl) UpdateStatus(ctx context.Context, actor Actor, params UpdateStatusParams) error {
	next, err := servicerequest.NewStatus(params.NewStatus)
	if err != nil {
		return errs.Mark(err, ErrInvalidStatus)
	}

	req, err := u.load(ctx, params.RequestID)
	if err != nil {
		return err
	}
	if err := u.authorizeStatusChange(actor, req); err != nil {
		return err
	}

	oldStatus := req.Status()
	if err := req.ChangeStatus(next); err != nil {
		return errs.Mark(err, ErrInvalidTransition)
	}

	if err := u.repo.Update(ctx, req); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.publisher.Publish(notification.ChangeEvent{
		ServiceRequestID: req.ID(),
		Action:           notification.ActionUpdated,
		Changes: []notification.FieldChange{
			{Field: notification.FieldStatus, Old: oldStatus.String(), New: req.Status().String()},
		},
	})

	return nil
}

// AssignTechnician sets the technician and the Assigned status in one
// operation and publishes them as a single event carrying both field changes.
func (u *serviceRequestUseCaseImpl) AssignTechnician(ctx context.Context, actor Actor, params AssignTechnicianParams) error {
	if actor.Role != user.RoleManager && actor.Role != user.RoleAdmin {
		return ErrForbidden
	}

	req, err := u.load(ctx, params.RequestID)
	if err != nil {
		return err
	}

	oldStatus := req.Status()
	oldTechnician := noTechnician
	if prev := req.TechnicianID(); prev != nil {
		oldTechnician = prev.String()
	}

	if err := req.Assign(params.TechnicianID); err != nil {
		return errs.Mark(err, ErrInvalidTransition)
	}

	if err := u.repo.Update(ctx, req); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.publisher.Publish(notification.ChangeEvent{
		ServiceRequestID: req.ID(),
		Action:           notification.ActionUpdated,
		Changes: []notification.FieldChange{
			{Field: notification.FieldStatus, Old: oldStatus.String(), New: req.Status().String()},
			{Field: notification.FieldTechnicianID, Old: oldTechnician, New: params.TechnicianID.String()},
		},
	})

	return nil
}

func (u *serviceRequestUseCaseImpl) Reschedule(ctx context.Context, actor Actor, params RescheduleParams) error {
	req, err := u.load(ctx, params.RequestID)
	if err != nil {
		return err
	}
	if err := u.authorizeCustomerChange(actor, req); err != nil {
		return err
	}

	oldDate := req.RequestedDate()
	if err := req.Reschedule(params.RequestedDate, u.clock.Now()); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	if err := u.repo.Update(ctx, req); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.publisher.Publish(notification.ChangeEvent{
		ServiceRequestID: req.ID(),
		Action:           notification.ActionUpdated,
		Changes: []notification.FieldChange{
			{
				Field: notification.FieldRequestedDate,
				Old:   oldDate.Format(dateLayout),
				New:   req.RequestedDate().Format(dateLayout),
			},
		},
	})

	return nil
}

func (u *serviceRequestUseCaseImpl) Cancel(ctx context.Context, actor Actor, requestID uuid.UUID) error {
	req, err := u.load(ctx, requestID)
	if err != nil {
		return err
	}
	if err := u.authorizeCustomerChange(actor, req); err != nil {
		return err
	}

	oldStatus := req.Status()
	if err := req.Cancel(); err != nil {
		return errs.Mark(err, ErrInvalidTransition)
	}

	if err := u.repo.Update(ctx, req); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.publisher.Publish(notification.ChangeEvent{
		ServiceRequestID: req.ID(),
		Action:           notification.ActionUpdated,
		Changes: []notification.FieldChange{
			{Field: notification.FieldStatus, Old: oldStatus.String(), New: req.Status().String()},
		},
	})

	return nil
}

func (u *serviceRequestUseCaseImpl) load(ctx context.Context, id uuid.UUID) (*servicerequest.ServiceRequest, error) {
	req, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceRequestNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return req, nil
}

// authorizeStatusChange allows the assigned technician, managers, and admins.
func (u *serviceRequestUseCaseImpl) authorizeStatusChange(actor Actor, req *servicerequest.ServiceRequest) error {
	switch actor.Role {
	case user.RoleManager, user.RoleAdmin:
		return nil
	case user.RoleTechnician:
		if assigned := req.TechnicianID(); assigned != nil && *assigned == actor.ID {
			return nil
		}
	}
	return ErrForbidden
}

// authorizeCustomerChange allows the owning customer, managers, and admins.
func (u *serviceRequestUseCaseImpl) authorizeCustomerChange(actor Actor, req *servicerequest.ServiceRequest) error {
	switch actor.Role {
	case user.RoleManager, user.RoleAdmin:
		return nil
	case user.RoleCustomer:
		if req.CustomerID() == actor.ID {
			return nil
		}
	}
	return ErrForbidden
}
