package repository

import (
	"context"

	"autocare-api/internal/domain/servicerequest"
	"autocare-api/internal/infra"
	"autocare-api/internal/pkg/pgconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceRequestRepository struct {
	db *pgxpool.Pool
}

func NewServiceRequestRepository(db *pgxpool.Pool) *ServiceRequestRepository {
	return &ServiceRequestRepository{db: db}
}

func (r *ServiceRequestRepository) Create(ctx context.Context, req *servicerequest.ServiceRequest) error {
	statement, args, err := psql.
		Insert("service_requests").
		Columns(
			"id",
			"customer_id",
			"technician_id",
			"vehicle_desc",
			"problem_desc",
			"status",
			"requested_date").
		Values(
			pgconv.UUIDToPgtype(req.ID()),
			pgconv.UUIDToPgtype(req.CustomerID()),
			pgconv.UUIDPtrToPgtype(req.TechnicianID()),
			req.VehicleDesc(),
			req.ProblemDesc(),
			req.Status().String(),
			pgconv.TimeToPgtype(req.RequestedDate())).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build service request insert", err)
	}

	if _, err := r.db.Exec(ctx, statement, args...); err != nil {
		return infra.WrapRepoErr("failed to insert service request", err)
	}

	return nil
}

func (r *ServiceRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*servicerequest.ServiceRequest, error) {
	statement, args, err := psql.
		Select(
			"id",
			"customer_id",
			"technician_id",
			"vehicle_desc",
			"problem_desc",
			"status",
			"requested_date",
			"created_at",
			"updated_at").
		From("service_requests").
		Where(sq.Eq{"id": pgconv.UUIDToPgtype(id)}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build service request query", err)
	}

	var (
		rowID, customerID           pgtype.UUID
		technicianID                pgtype.UUID
		vehicleDesc, problemDesc    string
		status                      string
		requested, created, updated pgtype.Timestamptz
	)
	err = r.db.QueryRow(ctx, statement, args...).Scan(
		&rowID, &customerID, &technicianID, &vehicleDesc, &problemDesc,
		&status, &requested, &created, &updated,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service request", err)
	}

	domainStatus, err := servicerequest.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid status in database", err)
	}

	return servicerequest.ReconstructServiceRequest(
		uuid.UUID(rowID.Bytes),
		uuid.UUID(customerID.Bytes),
		pgconv.UUIDPtrFromPgtype(technicianID),
		vehicleDesc,
		problemDesc,
		domainStatus,
		pgconv.TimeFromPgtype(requested),
		pgconv.TimeFromPgtype(created),
		pgconv.TimeFromPgtype(updated),
	), nil
}

// Update persists the mutable fields after a domain transition.
func (r *ServiceRequestRepository) Update(ctx context.Context, req *servicerequest.ServiceRequest) error {
	statement, args, err := psql.
		Update("service_requests").
		Set("technician_id", pgconv.UUIDPtrToPgtype(req.TechnicianID())).
		Set("status", req.Status().String()).
		Set("requested_date", pgconv.TimeToPgtype(req.RequestedDate())).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": pgconv.UUIDToPgtype(req.ID())}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build service request update", err)
	}

	result, err := r.db.Exec(ctx, statement, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update service request", err)
	}
	if result.RowsAffected() == 0 {
		return infra.WrapRepoErr("service request not found", nil, infra.KindNotFound)
	}

	return nil
}
