package db

import (
	"context"

	"wordwatch/internal/models"
)

// ListWords returns every banned word, lowercased, in ascending order.
func (d *DB) ListWords(ctx context.Context) ([]string, error) {
	return d.list(ctx, wordsTable)
}

// GetWords returns the banned word entries with their creation time.
func (d *DB) GetWords(ctx context.Context) ([]models.Word, error) {
	return d.entries(ctx, wordsTable)
}

// AddWord stores a banned word. Returns ErrDuplicateWord if it already exists.
func (d *DB) AddWord(ctx context.Context, word string) error {
	return d.add(ctx, wordsTable, word)
}

// DeleteWord removes a banned word. Returns ErrWordNotFound if it is not stored.
func (d *DB) DeleteWord(ctx context.Context, word string) error {
	return d.remove(ctx, wordsTable, word)
}

// CountWords returns the number of banned words.
func (d *DB) CountWords(ctx context.Context) (int, error) {
	return d.count(ctx, wordsTable)
}
