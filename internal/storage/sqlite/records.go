package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/kestrelhq/daybook/internal/daykey"
	"github.com/kestrelhq/daybook/internal/models"
)

const recordColumns = "id, practice_id, day, completed, count, note, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (models.AdherenceRecord, error) {
	var r models.AdherenceRecord
	var day, createdAt, updatedAt string
	var completed int

	err := row.Scan(&r.ID, &r.PracticeID, &day, &completed, &r.Count, &r.Note, &createdAt, &updatedAt)
	if err != nil {
		return models.AdherenceRecord{}, err
	}

	r.Completed = completed != 0
	r.Day, err = daykey.Parse(day)
	if err != nil {
		return models.AdherenceRecord{}, fmt.Errorf("failed to parse day for record %s: %w", r.ID, err)
	}
	r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.AdherenceRecord{}, fmt.Errorf("failed to parse created_at for record %s: %w", r.ID, err)
	}
	r.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.AdherenceRecord{}, fmt.Errorf("failed to parse updated_at for record %s: %w", r.ID, err)
	}

	return r, nil
}

// PutRecord inserts or fully replaces the record for (practice, day). The
// UNIQUE(practice_id, day) constraint plus ON CONFLICT upsert makes
// concurrent writes resolve last-committed-wins rather than erroring.
func (s *Store) PutRecord(record models.AdherenceRecord) error {
	completed := 0
	if record.Completed {
		completed = 1
	}

	_, err := s.db.Exec(`
		INSERT INTO adherence_records (id, practice_id, day, completed, count, note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(practice_id, day) DO UPDATE SET
			completed = excluded.completed,
			count = excluded.count,
			note = excluded.note,
			updated_at = excluded.updated_at`,
		record.ID, record.PracticeID, record.Day.String(), completed, record.Count, record.Note,
		record.CreatedAt.Format(time.RFC3339), record.UpdatedAt.Format(time.RFC3339))

	return err
}

// RecordFor returns the record for (practice, day), or nil when absent.
func (s *Store) RecordFor(practiceID string, day daykey.Key) (*models.AdherenceRecord, error) {
	row := s.db.QueryRow(`
		SELECT `+recordColumns+`
		FROM adherence_records WHERE practice_id = ? AND day = ?`,
		practiceID, day.String())

	r, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

// RecordsInWindow returns records for the practice with from <= day <= to,
// ordered by day ascending.
func (s *Store) RecordsInWindow(practiceID string, from, to daykey.Key) ([]models.AdherenceRecord, error) {
	rows, err := s.db.Query(`
		SELECT `+recordColumns+`
		FROM adherence_records
		WHERE practice_id = ? AND day >= ? AND day <= ?
		ORDER BY day`, practiceID, from.String(), to.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

// CompletedRecords returns the most recent completed records for the
// practice, newest first, capped at limit.
func (s *Store) CompletedRecords(practiceID string, limit int) ([]models.AdherenceRecord, error) {
	rows, err := s.db.Query(`
		SELECT `+recordColumns+`
		FROM adherence_records
		WHERE practice_id = ? AND completed = 1
		ORDER BY day DESC
		LIMIT ?`, practiceID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

// RecordsForDay returns all practices' records for one day.
func (s *Store) RecordsForDay(day daykey.Key) ([]models.AdherenceRecord, error) {
	rows, err := s.db.Query(`
		SELECT `+recordColumns+`
		FROM adherence_records WHERE day = ?
		ORDER BY created_at`, day.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

func collectRecords(rows *sql.Rows) ([]models.AdherenceRecord, error) {
	var records []models.AdherenceRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
