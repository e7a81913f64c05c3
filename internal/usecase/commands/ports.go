package commands

import (
	"context"
	"time"

	"autocare-api/internal/domain/servicerequest"

	"github.com/google/uuid"
)

// ServiceRequestRepository is the write-side persistence port.
type ServiceRequestRepository interface {
	Create(ctx context.Context, req *servicerequest.ServiceRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*servicerequest.ServiceRequest, error)
	Update(ctx context.Context, req *servicerequest.ServiceRequest) error
}

type CreateServiceRequestParams struct {
	CustomerID    uuid.UUID
	VehicleDesc   string
	ProblemDesc   string
	RequestedDate time.Time
}

type UpdateStatusParams struct {
	RequestID uuid.UUID
	NewStatus string
}

type AssignTechnicianParams struct {
	RequestID    uuid.UUID
	TechnicianID uuid.UUID
}

type RescheduleParams struct {
	RequestID     uuid.UUID
	RequestedDate time.Time
}
