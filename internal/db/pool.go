package db

import (
	"context"
	"fmt"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NewDBPoolParams struct {
	// StoreURL is a postgres connection URL, StoreKey (when set) overrides its password
	StoreURL       string
	StoreKey       string
	MaxConns       int32
	TracingEnabled bool
}

// NewDBPool creates the one pool shared by all repositories.
// Connections are opened lazily, the caller decides whether to ping.
func NewDBPool(ctx context.Context, params NewDBPoolParams) (*pgxpool.Pool, error) {
	poolConfig, err := newPoolConfig(params)
	if err != nil {
		return nil, err
	}

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	return db, nil
}

func newPoolConfig(params NewDBPoolParams) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(params.StoreURL)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	if params.StoreKey != "" {
		poolConfig.ConnConfig.Password = params.StoreKey
	}
	if params.MaxConns > 0 {
		poolConfig.MaxConns = params.MaxConns
	}
	if params.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	return poolConfig, nil
}
