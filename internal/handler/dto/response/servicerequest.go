package response

import (
	"time"

	"autocare-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceRequestResponse struct {
	ID            uuid.UUID  `json:"id"`
	CustomerID    uuid.UUID  `json:"customerId"`
	CustomerEmail string     `json:"customerEmail"`
	TechnicianID  *uuid.UUID `json:"technicianId,omitempty"`
	VehicleDesc   string     `json:"vehicleDesc"`
	ProblemDesc   string     `json:"problemDesc"`
	Status        string     `json:"status"`
	RequestedDate time.Time  `json:"requestedDate"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type ServiceRequestListResponse struct {
	ID            uuid.UUID  `json:"id"`
	CustomerID    uuid.UUID  `json:"customerId"`
	TechnicianID  *uuid.UUID `json:"technicianId,omitempty"`
	VehicleDesc   string     `json:"vehicleDesc"`
	Status        string     `json:"status"`
	RequestedDate time.Time  `json:"requestedDate"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromServiceRequestView(rm *queries.ServiceRequestView) *ServiceRequestResponse {
	return &ServiceRequestResponse{
		ID:            rm.ID,
		CustomerID:    rm.CustomerID,
		CustomerEmail: rm.CustomerEmail,
		TechnicianID:  rm.TechnicianID,
		VehicleDesc:   rm.VehicleDesc,
		ProblemDesc:   rm.ProblemDesc,
		Status:        rm.Status,
		RequestedDate: rm.RequestedDate,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

func FromServiceRequestListItem(rm *queries.ServiceRequestListItem) *ServiceRequestListResponse {
	return &ServiceRequestListResponse{
		ID:            rm.ID,
		CustomerID:    rm.CustomerID,
		TechnicianID:  rm.TechnicianID,
		VehicleDesc:   rm.VehicleDesc,
		Status:        rm.Status,
		RequestedDate: rm.RequestedDate,
		CreatedAt:     rm.CreatedAt,
	}
}
