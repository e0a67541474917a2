package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/kestrelhq/daybook/internal/models"
)

func (s *Store) AddPractice(practice models.Practice) error {
	return s.UpdatePractice(practice)
}

func scanPracticeRow(row *sql.Row) (models.Practice, error) {
	var p models.Practice
	var archivedAt, deletedAt sql.NullTime

	err := row.Scan(&p.ID, &p.Name, &p.CreatedAt, &archivedAt, &deletedAt)
	if err != nil {
		return models.Practice{}, err
	}

	if archivedAt.Valid {
		t := archivedAt.Time
		p.ArchivedAt = &t
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		p.DeletedAt = &t
	}

	return p, nil
}

func (s *Store) GetPractice(id string) (models.Practice, error) {
	row := s.db.QueryRow(`
		SELECT id, name, created_at, archived_at, deleted_at
		FROM practices WHERE id = $1 AND deleted_at IS NULL`, id)
	return scanPracticeRow(row)
}

func (s *Store) GetPracticeByName(name string) (models.Practice, error) {
	row := s.db.QueryRow(`
		SELECT id, name, created_at, archived_at, deleted_at
		FROM practices WHERE name = $1 AND deleted_at IS NULL`, name)
	return scanPracticeRow(row)
}

func (s *Store) GetAllPractices(includeArchived, includeDeleted bool) ([]models.Practice, error) {
	query := "SELECT id, name, created_at, archived_at, deleted_at FROM practices WHERE TRUE"
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}
	if !includeArchived {
		query += " AND archived_at IS NULL"
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var practices []models.Practice
	for rows.Next() {
		var p models.Practice
		var archivedAt, deletedAt sql.NullTime

		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &archivedAt, &deletedAt); err != nil {
			return nil, err
		}
		if archivedAt.Valid {
			t := archivedAt.Time
			p.ArchivedAt = &t
		}
		if deletedAt.Valid {
			t := deletedAt.Time
			p.DeletedAt = &t
		}

		practices = append(practices, p)
	}

	return practices, rows.Err()
}

func (s *Store) UpdatePractice(practice models.Practice) error {
	var archivedAt, deletedAt sql.NullTime
	if practice.ArchivedAt != nil {
		archivedAt = sql.NullTime{Time: *practice.ArchivedAt, Valid: true}
	}
	if practice.DeletedAt != nil {
		deletedAt = sql.NullTime{Time: *practice.DeletedAt, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO practices (id, name, created_at, archived_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			archived_at = EXCLUDED.archived_at,
			deleted_at = EXCLUDED.deleted_at`,
		practice.ID, practice.Name, practice.CreatedAt, archivedAt, deletedAt)

	return err
}

func (s *Store) ArchivePractice(id string) error {
	result, err := s.db.Exec(`
		UPDATE practices SET archived_at = $1 WHERE id = $2 AND deleted_at IS NULL AND archived_at IS NULL`,
		time.Now(), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("practice not found or already archived/deleted")
	}

	return nil
}

func (s *Store) UnarchivePractice(id string) error {
	result, err := s.db.Exec(`
		UPDATE practices SET archived_at = NULL WHERE id = $1 AND deleted_at IS NULL AND archived_at IS NOT NULL`,
		id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("practice not found or not archived")
	}

	return nil
}

func (s *Store) DeletePractice(id string) error {
	result, err := s.db.Exec(`
		UPDATE practices SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now(), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("practice not found or already deleted")
	}

	return nil
}

func (s *Store) RestorePractice(id string) error {
	result, err := s.db.Exec(`
		UPDATE practices SET deleted_at = NULL WHERE id = $1 AND deleted_at IS NOT NULL`,
		id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("practice not found or not deleted")
	}

	return nil
}
