package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateServiceRequestRequest struct {
	VehicleDesc   string    `json:"vehicle_desc" binding:"required"`
	ProblemDesc   string    `json:"problem_desc" binding:"required"`
	RequestedDate time.Time `json:"requested_date" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AssignTechnicianRequest struct {
	TechnicianID uuid.UUID `json:"technician_id" binding:"required"`
}

type RescheduleRequest struct {
	RequestedDate time.Time `json:"requested_date" binding:"required"`
}
