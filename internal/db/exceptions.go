package db

import (
	"context"

	"wordwatch/internal/models"
)

// ListExceptions returns every exception, lowercased, in ascending order.
func (d *DB) ListExceptions(ctx context.Context) ([]string, error) {
	return d.list(ctx, exceptionsTable)
}

// GetExceptions returns the exception entries with their creation time.
func (d *DB) GetExceptions(ctx context.Context) ([]models.Word, error) {
	return d.entries(ctx, exceptionsTable)
}

// AddException stores an exception. Returns ErrDuplicateException if it already exists.
func (d *DB) AddException(ctx context.Context, word string) error {
	return d.add(ctx, exceptionsTable, word)
}

// DeleteException removes an exception. Returns ErrExceptionNotFound if it is not stored.
func (d *DB) DeleteException(ctx context.Context, word string) error {
	return d.remove(ctx, exceptionsTable, word)
}

// CountExceptions returns the number of exceptions.
func (d *DB) CountExceptions(ctx context.Context) (int, error) {
	return d.count(ctx, exceptionsTable)
}
