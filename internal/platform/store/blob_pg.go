package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgBlob keeps collection blobs in a single key/value table. Mutations
// overwrite the whole row, matching the backend contract.
type pgBlob struct {
	pool *pgxpool.Pool
}

func NewPGBlob(pool *pgxpool.Pool) Blob {
	return &pgBlob{pool: pool}
}

func NewPool(ctx context.Context, databaseURL string, maxConns, minConns int32) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	cfg.MaxConns = maxConns
	cfg.MinConns = minConns

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// EnsureSchema creates the blob table if it does not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS blob_store (
			key  TEXT PRIMARY KEY,
			blob JSONB NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("create blob_store table: %w", err)
	}
	return nil
}

func (b *pgBlob) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := b.pool.QueryRow(ctx, `SELECT blob FROM blob_store WHERE key = $1`, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select blob %s: %w", key, err)
	}
	return data, true, nil
}

func (b *pgBlob) Put(ctx context.Context, key string, data []byte) error {
	_, err := b.pool.Exec(ctx, `
		INSERT INTO blob_store (key, blob) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET blob = EXCLUDED.blob`, key, data)
	if err != nil {
		return fmt.Errorf("upsert blob %s: %w", key, err)
	}
	return nil
}
