package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/kestrelhq/daybook/internal/daykey"
	"github.com/kestrelhq/daybook/internal/models"
)

const recordColumns = "id, practice_id, day, completed, count, note, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (models.AdherenceRecord, error) {
	var r models.AdherenceRecord
	var day string

	err := row.Scan(&r.ID, &r.PracticeID, &day, &r.Completed, &r.Count, &r.Note, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return models.AdherenceRecord{}, err
	}

	r.Day, err = daykey.Parse(day)
	if err != nil {
		return models.AdherenceRecord{}, fmt.Errorf("failed to parse day for record %s: %w", r.ID, err)
	}

	return r, nil
}

// PutRecord inserts or fully replaces the record for (practice, day). The
// UNIQUE(practice_id, day) constraint plus ON CONFLICT upsert makes
// concurrent writes resolve last-committed-wins rather than erroring.
func (s *Store) PutRecord(record models.AdherenceRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO adherence_records (id, practice_id, day, completed, count, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (practice_id, day) DO UPDATE SET
			completed = EXCLUDED.completed,
			count = EXCLUDED.count,
			note = EXCLUDED.note,
			updated_at = EXCLUDED.updated_at`,
		record.ID, record.PracticeID, record.Day.String(), record.Completed, record.Count, record.Note,
		record.CreatedAt, record.UpdatedAt)

	return err
}

// RecordFor returns the record for (practice, day), or nil when absent.
func (s *Store) RecordFor(practiceID string, day daykey.Key) (*models.AdherenceRecord, error) {
	row := s.db.QueryRow(`
		SELECT `+recordColumns+`
		FROM adherence_records WHERE practice_id = $1 AND day = $2`,
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
		WHERE practice_id = $1 AND day >= $2 AND day <= $3
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
		WHERE practice_id = $1 AND completed
		ORDER BY day DESC
		LIMIT $2`, practiceID, limit)
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
		FROM adherence_records WHERE day = $1
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
