package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Service request errors
	ErrServiceRequestNotFound  = errors.New("service request not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrTechnicianRequired      = errors.New("technician required")

	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Notification errors
	ErrNotificationNotFound = errors.New("notification not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
