package readstore

import (
	"context"

	"autocare-api/internal/domain/user"
	"autocare-api/internal/infra"
	"autocare-api/internal/pkg/pgconv"
	"autocare-api/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserReadStore covers authentication lookups and the role directory the
// notification consumer resolves audiences with.
type UserReadStore struct {
	db *pgxpool.Pool
}

func NewUserReadStore(db *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{db: db}
}

// FindByEmail returns the user view together with the stored password hash.
func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	statement, args, err := psql.
		Select("id", "email", "role", "full_name", "is_active", "password_hash").
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to build user query", err)
	}

	var (
		id           pgtype.UUID
		rowEmail     string
		role         string
		fullName     string
		isActive     bool
		passwordHash string
	)
	err = s.db.QueryRow(ctx, statement, args...).Scan(&id, &rowEmail, &role, &fullName, &isActive, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &queries.AuthorizedUserView{
		ID:       uuid.UUID(id.Bytes),
		Email:    rowEmail,
		Role:     role,
		FullName: fullName,
		IsActive: isActive,
	}, passwordHash, nil
}

func (s *UserReadStore) FindByID(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	statement, args, err := psql.
		Select("id", "email", "role", "full_name", "is_active").
		From("users").
		Where(sq.Eq{"id": pgconv.UUIDToPgtype(userID)}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build user query", err)
	}

	var (
		id       pgtype.UUID
		email    string
		role     string
		fullName string
		isActive bool
	)
	err = s.db.QueryRow(ctx, statement, args...).Scan(&id, &email, &role, &fullName, &isActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}

	return &queries.AuthorizedUserView{
		ID:       uuid.UUID(id.Bytes),
		Email:    email,
		Role:     role,
		FullName: fullName,
		IsActive: isActive,
	}, nil
}

// UserIDsInRole returns active users holding the given role.
func (s *UserReadStore) UserIDsInRole(ctx context.Context, role user.Role) ([]uuid.UUID, error) {
	statement, args, err := psql.
		Select("id").
		From("users").
		Where(sq.Eq{"role": role.String(), "is_active": true}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build role membership query", err)
	}

	rows, err := s.db.Query(ctx, statement, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users in role", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id pgtype.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user id", err)
		}
		ids = append(ids, uuid.UUID(id.Bytes))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}

	return ids, nil
}

// RolesOf returns the roles held by a user. The schema stores one role per
// user, so the slice has at most one element.
func (s *UserReadStore) RolesOf(ctx context.Context, id uuid.UUID) ([]user.Role, error) {
	statement, args, err := psql.
		Select("role").
		From("users").
		Where(sq.Eq{"id": pgconv.UUIDToPgtype(id)}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build role query", err)
	}

	var role string
	err = s.db.QueryRow(ctx, statement, args...).Scan(&role)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to query user role", err)
	}

	r, err := user.NewRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid role in database", err)
	}

	return []user.Role{r}, nil
}
