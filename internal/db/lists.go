package db

import (
	"context"
	"strings"

	"wordwatch/internal/models"
)

// table holds the queries for one word list. Both lists share a schema.
type table struct {
	name        string
	insertQuery string
	errNotFound error
	errExists   error
}

var (
	wordsTable = table{
		name:        models.ListWords,
		insertQuery: `INSERT INTO words (word) VALUES ($1) ON CONFLICT (word) DO NOTHING`,
		errNotFound: ErrWordNotFound,
		errExists:   ErrDuplicateWord,
	}
	exceptionsTable = table{
		name:        models.ListExceptions,
		insertQuery: `INSERT INTO exceptions (word) VALUES ($1) ON CONFLICT (word) DO NOTHING`,
		errNotFound: ErrExceptionNotFound,
		errExists:   ErrDuplicateException,
	}
)

// list returns the lowercased entries of a table in ascending order.
func (d *DB) list(ctx context.Context, t table) ([]string, error) {
	rows, err := d.Pool.Query(ctx, `SELECT word FROM `+t.name+` ORDER BY word ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, strings.ToLower(w))
	}
	return words, rows.Err()
}

func (d *DB) entries(ctx context.Context, t table) ([]models.Word, error) {
	rows, err := d.Pool.Query(ctx, `SELECT word, created_at FROM `+t.name+` ORDER BY word ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		var w models.Word
		if err := rows.Scan(&w.Word, &w.CreatedAt); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

func (d *DB) add(ctx context.Context, t table, word string) error {
	tag, err := d.Pool.Exec(ctx, t.insertQuery, word)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return t.errExists
	}
	return nil
}

func (d *DB) remove(ctx context.Context, t table, word string) error {
	tag, err := d.Pool.Exec(ctx, `DELETE FROM `+t.name+` WHERE word = $1`, word)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return t.errNotFound
	}
	return nil
}

func (d *DB) count(ctx context.Context, t table) (int, error) {
	var n int
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+t.name).Scan(&n)
	return n, err
}
