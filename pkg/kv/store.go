// Package kv provides the key/value persistence collaborator. A Store holds
// opaque byte values under string keys; callers own the encoding.
//
// Backends:
//   - memory:   process-local map, lost on exit
//   - file:     all keys in one JSON document on disk
//   - sqlite:   modernc.org/sqlite, kv_entries table
//   - redis:    plain SET/GET
//   - postgres: pgx pool, kv_entries table
//
// Every Set is synchronous and durable by the time it returns (for the
// durable backends).
package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/ghuser/growthtrack/pkg/cache"
	"github.com/ghuser/growthtrack/pkg/config"
	"github.com/ghuser/growthtrack/pkg/database"
	"github.com/ghuser/growthtrack/pkg/logger"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("kv: key not found")

// Store is the persistence collaborator used by record repositories.
type Store interface {
	// Get returns the value stored under key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases backend resources.
	Close() error
}

// Open constructs the backend selected by cfg.StoreBackend.
func Open(ctx context.Context, cfg *config.Config, log logger.Logger) (Store, error) {
	switch cfg.StoreBackend {
	case config.StoreMemory:
		return NewMemory(), nil
	case config.StoreFile, "":
		return NewFile(cfg.StorePath)
	case config.StoreSQLite:
		return NewSQLite(ctx, cfg.SQLitePath)
	case config.StoreRedis:
		rc, err := cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return NewRedis(rc), nil
	case config.StorePostgres:
		if err := MigratePostgres(cfg.DatabaseURL); err != nil {
			return nil, err
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, err
		}
		return NewPostgres(pool), nil
	default:
		return nil, fmt.Errorf("kv: unknown store backend %q", cfg.StoreBackend)
	}
}
