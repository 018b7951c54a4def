package postgres

import (
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/repository/ports"
)

func New(dsn string) (*sqlx.DB, error) {
	return sqlx.Connect("pgx", dsn)
}

func insertResult(res sql.Result) (ports.WriteResult, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return ports.WriteResult{}, err
	}
	return ports.WriteResult{Acknowledged: n == 1, MatchedCount: n}, nil
}

func updateResult(res sql.Result) (ports.WriteResult, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return ports.WriteResult{}, err
	}
	return ports.WriteResult{Acknowledged: true, MatchedCount: n}, nil
}

func deleteResult(res sql.Result) (ports.WriteResult, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return ports.WriteResult{}, err
	}
	return ports.WriteResult{Acknowledged: true, MatchedCount: n, DeletedCount: n}, nil
}
