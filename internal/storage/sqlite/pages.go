package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/kestrelhq/daybook/internal/daykey"
	"github.com/kestrelhq/daybook/internal/models"
)

func scanPageEntry(row rowScanner) (models.PageEntry, error) {
	var e models.PageEntry
	var day, createdAt, updatedAt string

	err := row.Scan(&e.ID, &day, &e.Content, &e.WordCount, &createdAt, &updatedAt)
	if err != nil {
		return models.PageEntry{}, err
	}

	e.Day, err = daykey.Parse(day)
	if err != nil {
		return models.PageEntry{}, fmt.Errorf("failed to parse day for entry %s: %w", e.ID, err)
	}
	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.PageEntry{}, fmt.Errorf("failed to parse created_at for entry %s: %w", e.ID, err)
	}
	e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.PageEntry{}, fmt.Errorf("failed to parse updated_at for entry %s: %w", e.ID, err)
	}

	return e, nil
}

// PutPageEntry inserts or fully replaces the entry for its day.
func (s *Store) PutPageEntry(entry models.PageEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO page_entries (id, day, content, word_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET
			content = excluded.content,
			word_count = excluded.word_count,
			updated_at = excluded.updated_at`,
		entry.ID, entry.Day.String(), entry.Content, entry.WordCount,
		entry.CreatedAt.Format(time.RFC3339), entry.UpdatedAt.Format(time.RFC3339))

	return err
}

// GetPageEntry returns the entry for a day, or nil when absent.
func (s *Store) GetPageEntry(day daykey.Key) (*models.PageEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, day, content, word_count, created_at, updated_at
		FROM page_entries WHERE day = ?`, day.String())

	e, err := scanPageEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// GetRecentPageEntries returns the newest entries, most recent day first.
func (s *Store) GetRecentPageEntries(limit int) ([]models.PageEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, day, content, word_count, created_at, updated_at
		FROM page_entries
		ORDER BY day DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.PageEntry
	for rows.Next() {
		e, err := scanPageEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
