package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/repository/ports"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// storageFailure translates a repository error into the error taxonomy.
// Missing rows become domain.ErrNotFound; everything else is a storage error.
func storageFailure(op string, err error) error {
	switch {
	case isNotFound(err):
		return domain.ErrNotFound
	case isUniqueViolation(err):
		return domain.NewStorageError(op+": duplicate key", err)
	default:
		return domain.NewStorageError(op, err)
	}
}

func checkInsert(op string, res ports.WriteResult, err error) error {
	if err != nil {
		return storageFailure(op, err)
	}
	if !res.Acknowledged {
		return domain.NewStorageError(op+": write was not acknowledged", nil)
	}
	return nil
}

func checkUpdate(op string, res ports.WriteResult, err error) error {
	if err != nil {
		return storageFailure(op, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func checkDelete(op string, res ports.WriteResult, err error) error {
	if err != nil {
		return storageFailure(op, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func findOne[T any](ctx context.Context, op string, id int64, find func(context.Context, int64) (*T, error)) (*T, error) {
	if id < 0 {
		return nil, domain.NewValidationError("id must be a non-negative integer, got %d", id)
	}
	item, err := find(ctx, id)
	if err != nil {
		return nil, storageFailure(op, err)
	}
	return item, nil
}
