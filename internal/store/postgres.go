package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps values in the greeting_kv table.
// Apply database.Migrate before use.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a store on top of an open pool
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(ctx, QueryGetValue, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf(ErrFmtGetValue, key, err)
	}
	return value, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.Exec(ctx, QueryUpsertValue, key, value); err != nil {
		return fmt.Errorf(ErrFmtSetValue, key, err)
	}
	return nil
}
