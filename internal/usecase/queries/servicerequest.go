package queries

import (
	"context"

	"autocare-api/internal/domain/user"

	"github.com/google/uuid"
)

type ServiceRequestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceRequestView, error)
	// ListForActor scopes the listing by role: customers see their own
	// requests, technicians their assignments, managers and admins all.
	ListForActor(ctx context.Context, actorID uuid.UUID, role user.Role) ([]*ServiceRequestListItem, error)
}

type ServiceRequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceRequestView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ServiceRequestListItem, error)
	ListByTechnician(ctx context.Context, technicianID uuid.UUID) ([]*ServiceRequestListItem, error)
	ListAll(ctx context.Context) ([]*ServiceRequestListItem, error)
}

type serviceRequestQueriesImpl struct {
	store ServiceRequestReadStore
}

func NewServiceRequestQueries(store ServiceRequestReadStore) ServiceRequestQueries {
	return &serviceRequestQueriesImpl{store: store}
}

func (q *serviceRequestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ServiceRequestView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *serviceRequestQueriesImpl) ListForActor(ctx context.Context, actorID uuid.UUID, role user.Role) ([]*ServiceRequestListItem, error) {
	switch role {
	case user.RoleManager, user.RoleAdmin:
		return q.store.ListAll(ctx)
	case user.RoleTechnician:
		return q.store.ListByTechnician(ctx, actorID)
	default:
		return q.store.ListByCustomer(ctx, actorID)
	}
}
