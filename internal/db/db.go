package db

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"wordwatch/migrations"
)

// DB wraps a pgxpool connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a new database connection pool.
func New(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// RunMigrations runs all embedded SQL migrations.
func (d *DB) RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Close closes the connection pool.
func (d *DB) Close() {
	d.Pool.Close()
}

// Ping checks that the database is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

// SeedWordLists inserts words and exceptions that are not stored yet.
// Entries are expected to be normalized by the caller.
func (d *DB) SeedWordLists(ctx context.Context, words, exceptions []string) error {
	for _, w := range words {
		if err := d.seed(ctx, wordsTable, w); err != nil {
			return fmt.Errorf("failed to seed word %s: %w", w, err)
		}
	}
	for _, e := range exceptions {
		if err := d.seed(ctx, exceptionsTable, e); err != nil {
			return fmt.Errorf("failed to seed exception %s: %w", e, err)
		}
	}
	return nil
}

func (d *DB) seed(ctx context.Context, t table, word string) error {
	_, err := d.Pool.Exec(ctx, t.insertQuery, word)
	return err
}
