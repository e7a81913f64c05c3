package notification

import (
	"github.com/google/uuid"
)

type Action string

const (
	ActionAdded   Action = "Added"
	ActionUpdated Action = "Updated"
)

func (a Action) String() string {
	return string(a)
}

// Field is the closed set of service-request fields that produce
// notifications. Keeping it closed lets the composer switch exhaustively
// instead of falling through on arbitrary strings.
type Field string

const (
	FieldStatus        Field = "Status"
	FieldTechnicianID  Field = "TechnicianId"
	FieldRequestedDate Field = "RequestedDate"
)

func (f Field) String() string {
	return string(f)
}

// FieldChange records one field transition carried by a change event.
type FieldChange struct {
	Field Field
	Old   string
	New   string
}

// ChangeEvent describes one logical change to a service request. It is the
// queue payload: constructed by a producer right after its transactional
// state change commits, consumed exactly once, never persisted itself.
type ChangeEvent struct {
	ServiceRequestID uuid.UUID
	Action           Action

	// Changes preserves producer insertion order; the first entry carries
	// the "first change" semantics for Added events.
	Changes []FieldChange

	// ExplicitTargets overrides audience resolution when non-empty.
	ExplicitTargets []uuid.UUID
}

// Change returns the change for f, if the event carries one.
func (e ChangeEvent) Change(f Field) (FieldChange, bool) {
	for _, ch := range e.Changes {
		if ch.Field == f {
			return ch, true
		}
	}
	return FieldChange{}, false
}

func (e ChangeEvent) HasChange(f Field) bool {
	_, ok := e.Change(f)
	return ok
}

// FirstChange returns the first change in insertion order.
func (e ChangeEvent) FirstChange() (FieldChange, bool) {
	if len(e.Changes) == 0 {
		return FieldChange{}, false
	}
	return e.Changes[0], true
}

// IsCombinedAssignment reports whether the event carries both a status and a
// technician change. Those arrive together when a manager assigns a
// technician, and must be phrased as one message per recipient.
func (e ChangeEvent) IsCombinedAssignment() bool {
	return e.HasChange(FieldStatus) && e.HasChange(FieldTechnicianID)
}
