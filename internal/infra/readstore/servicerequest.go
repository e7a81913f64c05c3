package readstore

import (
	"context"

	"autocare-api/internal/domain/servicerequest"
	"autocare-api/internal/infra"
	"autocare-api/internal/pkg/pgconv"
	"autocare-api/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceRequestReadStore struct {
	db *pgxpool.Pool
}

func NewServiceRequestReadStore(db *pgxpool.Pool) *ServiceRequestReadStore {
	return &ServiceRequestReadStore{db: db}
}

// Snapshot returns the current state the notification consumer resolves
// audiences from. It must reflect the latest committed state at call time.
func (s *ServiceRequestReadStore) Snapshot(ctx context.Context, id uuid.UUID) (*servicerequest.Snapshot, error) {
	statement, args, err := psql.
		Select("id", "customer_id", "technician_id", "status", "requested_date").
		From("service_requests").
		Where(sq.Eq{"id": pgconv.UUIDToPgtype(id)}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build snapshot query", err)
	}

	var (
		rowID, customerID pgtype.UUID
		technicianID      pgtype.UUID
		status            string
		requested         pgtype.Timestamptz
	)
	err = s.db.QueryRow(ctx, statement, args...).Scan(&rowID, &customerID, &technicianID, &status, &requested)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load service request snapshot", err)
	}

	return &servicerequest.Snapshot{
		ID:            uuid.UUID(rowID.Bytes),
		CustomerID:    uuid.UUID(customerID.Bytes),
		TechnicianID:  pgconv.UUIDPtrFromPgtype(technicianID),
		Status:        servicerequest.Status(status),
		RequestedDate: pgconv.TimeFromPgtype(requested),
	}, nil
}

func (s *ServiceRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceRequestView, error) {
	statement, args, err := psql.
		Select(
			"sr.id",
			"sr.customer_id",
			"u.email",
			"sr.technician_id",
			"sr.vehicle_desc",
			"sr.problem_desc",
			"sr.status",
			"sr.requested_date",
			"sr.created_at",
			"sr.updated_at").
		From("service_requests sr").
		Join("users u ON sr.customer_id = u.id").
		Where(sq.Eq{"sr.id": pgconv.UUIDToPgtype(id)}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build service request view query", err)
	}

	var (
		rowID, customerID           pgtype.UUID
		customerEmail               string
		technicianID                pgtype.UUID
		vehicleDesc, problemDesc    string
		status                      string
		requested, created, updated pgtype.Timestamptz
	)
	err = s.db.QueryRow(ctx, statement, args...).Scan(
		&rowID, &customerID, &customerEmail, &technicianID, &vehicleDesc,
		&problemDesc, &status, &requested, &created, &updated,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service request view", err)
	}

	return &queries.ServiceRequestView{
		ID:            uuid.UUID(rowID.Bytes),
		CustomerID:    uuid.UUID(customerID.Bytes),
		CustomerEmail: customerEmail,
		TechnicianID:  pgconv.UUIDPtrFromPgtype(technicianID),
		VehicleDesc:   vehicleDesc,
		ProblemDesc:   problemDesc,
		Status:        status,
		RequestedDate: pgconv.TimeFromPgtype(requested),
		CreatedAt:     pgconv.TimeFromPgtype(created),
		UpdatedAt:     pgconv.TimeFromPgtype(updated),
	}, nil
}

func (s *ServiceRequestReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.ServiceRequestListItem, error) {
	return s.list(ctx, sq.Eq{"customer_id": pgconv.UUIDToPgtype(customerID)})
}

func (s *ServiceRequestReadStore) ListByTechnician(ctx context.Context, technicianID uuid.UUID) ([]*queries.ServiceRequestListItem, error) {
	return s.list(ctx, sq.Eq{"technician_id": pgconv.UUIDToPgtype(technicianID)})
}

func (s *ServiceRequestReadStore) ListAll(ctx context.Context) ([]*queries.ServiceRequestListItem, error) {
	return s.list(ctx, nil)
}

func (s *ServiceRequestReadStore) list(ctx context.Context, where any) ([]*queries.ServiceRequestListItem, error) {
	builder := psql.
		Select("id", "customer_id", "technician_id", "vehicle_desc", "status", "requested_date", "created_at").
		From("service_requests").
		OrderBy("created_at DESC")
	if where != nil {
		builder = builder.Where(where)
	}

	statement, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build service request list query", err)
	}

	rows, err := s.db.Query(ctx, statement, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service requests", err)
	}
	defer rows.Close()

	var result []*queries.ServiceRequestListItem
	for rows.Next() {
		var (
			rowID, customerID  pgtype.UUID
			technicianID       pgtype.UUID
			vehicleDesc        string
			status             string
			requested, created pgtype.Timestamptz
		)
		if err := rows.Scan(&rowID, &customerID, &technicianID, &vehicleDesc, &status, &requested, &created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service request row", err)
		}
		result = append(result, &queries.ServiceRequestListItem{
			ID:            uuid.UUID(rowID.Bytes),
			CustomerID:    uuid.UUID(customerID.Bytes),
			TechnicianID:  pgconv.UUIDPtrFromPgtype(technicianID),
			VehicleDesc:   vehicleDesc,
			Status:        status,
			RequestedDate: pgconv.TimeFromPgtype(requested),
			CreatedAt:     pgconv.TimeFromPgtype(created),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service request rows", err)
	}

	return result, nil
}
