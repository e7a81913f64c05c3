package repository

import (
	"context"

	"autocare-api/internal/infra"
	"autocare-api/internal/pkg/pgconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	statement, args, err := psql.
		Update("users").
		Set("last_login", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": pgconv.UUIDToPgtype(userID)}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build last login update", err)
	}

	if _, err := r.db.Exec(ctx, statement, args...); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}

	return nil
}
