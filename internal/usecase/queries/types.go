package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// NotificationView is one row of a user's notification history.
type NotificationView struct {
	ID               int64     `json:"id"`
	ServiceRequestID uuid.UUID `json:"service_request_id"`
	TargetUserID     uuid.UUID `json:"target_user_id"`
	Action           string    `json:"action"`
	FieldName        string    `json:"field_name"`
	OldValue         string    `json:"old_value"`
	NewValue         string    `json:"new_value"`
	Message          string    `json:"message"`
	ChangedOn        time.Time `json:"changed_on"`
}

type ServiceRequestView struct {
	ID            uuid.UUID  `json:"id"`
	CustomerID    uuid.UUID  `json:"customer_id"`
	CustomerEmail string     `json:"customer_email"`
	TechnicianID  *uuid.UUID `json:"technician_id,omitempty"`
	VehicleDesc   string     `json:"vehicle_desc"`
	ProblemDesc   string     `json:"problem_desc"`
	Status        string     `json:"status"`
	RequestedDate time.Time  `json:"requested_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type ServiceRequestListItem struct {
	ID            uuid.UUID  `json:"id"`
	CustomerID    uuid.UUID  `json:"customer_id"`
	TechnicianID  *uuid.UUID `json:"technician_id,omitempty"`
	VehicleDesc   string     `json:"vehicle_desc"`
	Status        string     `json:"status"`
	RequestedDate time.Time  `json:"requested_date"`
	CreatedAt     time.Time  `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	FullName string    `json:"full_name"`
	IsActive bool      `json:"is_active"`
}
