package notification

import (
	"fmt"

	"autocare-api/internal/domain/servicerequest"
	"autocare-api/internal/domain/user"

	"github.com/google/uuid"
)

// Compose renders the human-readable message for one field change and one
// recipient role. An empty result means no template applies and nothing
// should be said; callers skip those silently.
func Compose(ev ChangeEvent, role user.Role, ch FieldChange) string {
	if ev.Action == ActionAdded {
		return composeAdded(ev.ServiceRequestID, role)
	}

	switch ch.Field {
	case FieldStatus:
		return composeStatus(ev.ServiceRequestID, role, ch)
	case FieldTechnicianID:
		return composeAssignment(ev.ServiceRequestID, role)
	case FieldRequestedDate:
		return composeReschedule(ev.ServiceRequestID, role, ch.New)
	default:
		return ""
	}
}

// ComposeCombined renders the single sentence used when a technician
// assignment and a status change arrive in one event. From the recipient's
// perspective that is one action, so it must never read as two messages.
func ComposeCombined(ev ChangeEvent, role user.Role) string {
	status, ok := ev.Change(FieldStatus)
	if !ok {
		return ""
	}

	switch role {
	case user.RoleCustomer:
		return fmt.Sprintf("A technician has been assigned to your service request #%s. Your service is now %s.",
			ev.ServiceRequestID, status.New)
	case user.RoleTechnician:
		return fmt.Sprintf("You have been assigned to Service Request #%s. The service is now %s.",
			ev.ServiceRequestID, status.New)
	case user.RoleManager:
		return fmt.Sprintf("A technician has been assigned to Service Request #%s. The service is now %s.",
			ev.ServiceRequestID, status.New)
	default:
		return fmt.Sprintf("A technician has been assigned to Service Request #%s. The service is now %s.",
			ev.ServiceRequestID, status.New)
	}
}

func composeAdded(id uuid.UUID, role user.Role) string {
	if role == user.RoleCustomer {
		return fmt.Sprintf("Your service request #%s has been successfully booked.", id)
	}
	return fmt.Sprintf("New service request #%s has been created.", id)
}

func composeStatus(id uuid.UUID, role user.Role, ch FieldChange) string {
	oldStatus := servicerequest.Status(ch.Old)
	newStatus := servicerequest.Status(ch.New)

	// Work-started: technician moved the request from Assigned to In Progress.
	if oldStatus == servicerequest.StatusAssigned && newStatus == servicerequest.StatusInProgress {
		switch role {
		case user.RoleTechnician:
			return fmt.Sprintf("You have started working on Service Request #%s.", id)
		case user.RoleCustomer:
			return fmt.Sprintf("The technician has started working on your service #%s.", id)
		}
	}

	if newStatus == servicerequest.StatusCompleted && role == user.RoleCustomer {
		return fmt.Sprintf("Your service request #%s has been completed. Please complete the payment to collect your vehicle.", id)
	}

	if newStatus == servicerequest.StatusClosed {
		switch role {
		case user.RoleCustomer:
			return fmt.Sprintf("Your service request #%s has been updated to 'Closed' and payment is done.", id)
		case user.RoleManager:
			return fmt.Sprintf("Service Request #%s has been closed and the payment is done.", id)
		}
	}

	switch role {
	case user.RoleCustomer:
		return fmt.Sprintf("Your service request #%s status has been updated to '%s'.", id, ch.New)
	case user.RoleTechnician:
		return fmt.Sprintf("Service Request #%s assigned to you has been updated to '%s'.", id, ch.New)
	default:
		return fmt.Sprintf("Service Request #%s status has been updated to '%s'.", id, ch.New)
	}
}

func composeAssignment(id uuid.UUID, role user.Role) string {
	switch role {
	case user.RoleCustomer:
		return fmt.Sprintf("A technician has been assigned to your service request #%s.", id)
	case user.RoleTechnician:
		return fmt.Sprintf("You have been assigned to Service Request #%s.", id)
	default:
		return fmt.Sprintf("A technician has been assigned to Service Request #%s.", id)
	}
}

func composeReschedule(id uuid.UUID, role user.Role, newDate string) string {
	switch role {
	case user.RoleCustomer:
		return fmt.Sprintf("Your service request #%s has been rescheduled to %s.", id, newDate)
	case user.RoleTechnician:
		return fmt.Sprintf("Service Request #%s assigned to you has been rescheduled to %s.", id, newDate)
	default:
		return fmt.Sprintf("Service Request #%s scheduled date changed to %s.", id, newDate)
	}
}
