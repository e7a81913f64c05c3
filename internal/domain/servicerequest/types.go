package servicerequest

type Status string

const (
	StatusRequested     Status = "Requested"
	StatusAssigned      Status = "Assigned"
	StatusInProgress    Status = "In Progress"
	StatusCompleted     Status = "Completed"
	StatusClosed        Status = "Closed"
	StatusCancelled     Status = "Cancelled"
	StatusPendingReview Status = "Pending Review"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusRequested, StatusAssigned, StatusInProgress, StatusCompleted,
		StatusClosed, StatusCancelled, StatusPendingReview:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further status transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusClosed || s == StatusCancelled
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
