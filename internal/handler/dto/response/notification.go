package response

import (
	"time"

	"autocare-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID               int64     `json:"id"`
	ServiceRequestID uuid.UUID `json:"serviceRequestId"`
	Action           string    `json:"action"`
	FieldName        string    `json:"fieldName"`
	OldValue         string    `json:"oldValue"`
	NewValue         string    `json:"newValue"`
	Message          string    `json:"message"`
	ChangedOn        time.Time `json:"changedOn"`
}

func FromNotificationView(rm *queries.NotificationView) *NotificationResponse {
	return &NotificationResponse{
		ID:               rm.ID,
		ServiceRequestID: rm.ServiceRequestID,
		Action:           rm.Action,
		FieldName:        rm.FieldName,
		OldValue:         rm.OldValue,
		NewValue:         rm.NewValue,
		Message:          rm.Message,
		ChangedOn:        rm.ChangedOn,
	}
}
