package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ghuser/growthtrack/pkg/database"
)

const (
	upsertPostgres = `INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, CURRENT_TIMESTAMP)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
	selectPostgres = `SELECT value FROM kv_entries WHERE key = $1`
)

// Postgres stores entries in a kv_entries table through a pgx pool.
type Postgres struct {
	db *database.Database
}

// NewPostgres returns a Store over an already migrated database.
func NewPostgres(db *database.Database) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := p.db.Pool().QueryRow(ctx, selectPostgres, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kv: postgres get %s: %w", key, err)
	}
	return []byte(value), nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	return p.db.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, upsertPostgres, key, string(value)); err != nil {
			return fmt.Errorf("kv: postgres set %s: %w", key, err)
		}
		return nil
	})
}

func (p *Postgres) Ping(ctx context.Context) error { return p.db.Ping(ctx) }

func (p *Postgres) Close() error {
	p.db.Close()
	return nil
}
