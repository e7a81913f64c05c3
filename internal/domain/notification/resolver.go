package notification

import (
	"autocare-api/internal/domain/servicerequest"

	"github.com/google/uuid"
)

// Audience is the outcome of resolving who must be told about an event.
// Primary targets are directly affected (customer, assigned technician, or
// the producer's explicit list); oversight targets are managers notified for
// visibility. The two sets never overlap.
type Audience struct {
	Primary   []uuid.UUID
	Oversight []uuid.UUID
}

// Resolve maps a change event plus the current service request snapshot to
// the users who must be notified. managers is the full manager-role
// membership at resolution time.
func Resolve(ev ChangeEvent, snap servicerequest.Snapshot, managers []uuid.UUID) Audience {
	var primary []uuid.UUID

	if len(ev.ExplicitTargets) > 0 {
		primary = dedupe(ev.ExplicitTargets)
	} else {
		if snap.CustomerID != uuid.Nil {
			primary = append(primary, snap.CustomerID)
		}
		if snap.TechnicianID != nil && (ev.HasChange(FieldTechnicianID) || ev.HasChange(FieldStatus)) {
			primary = append(primary, *snap.TechnicianID)
		}
		primary = dedupe(primary)
	}

	// Managers follow status and assignment changes only, and never receive
	// a second notification when they are already a primary target.
	var oversight []uuid.UUID
	if ev.HasChange(FieldStatus) || ev.HasChange(FieldTechnicianID) {
		inPrimary := make(map[uuid.UUID]struct{}, len(primary))
		for _, id := range primary {
			inPrimary[id] = struct{}{}
		}
		for _, id := range dedupe(managers) {
			if _, ok := inPrimary[id]; !ok {
				oversight = append(oversight, id)
			}
		}
	}

	return Audience{Primary: primary, Oversight: oversight}
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
