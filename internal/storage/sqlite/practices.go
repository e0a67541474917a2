package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/kestrelhq/daybook/internal/models"
)

func (s *Store) AddPractice(practice models.Practice) error {
	return s.UpdatePractice(practice)
}

func (s *Store) scanPractice(row *sql.Row) (models.Practice, error) {
	var p models.Practice
	var createdAt string
	var archivedAt, deletedAt sql.NullString

	err := row.Scan(&p.ID, &p.Name, &createdAt, &archivedAt, &deletedAt)
	if err != nil {
		return models.Practice{}, err
	}

	p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Practice{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if archivedAt.Valid {
		t, err := time.Parse(time.RFC3339, archivedAt.String)
		if err != nil {
			return models.Practice{}, fmt.Errorf("failed to parse archived_at: %w", err)
		}
		p.ArchivedAt = &t
	}
	if deletedAt.Valid {
		t, err := time.Parse(time.RFC3339, deletedAt.String)
		if err != nil {
			return models.Practice{}, fmt.Errorf("failed to parse deleted_at: %w", err)
		}
		p.DeletedAt = &t
	}

	return p, nil
}

func (s *Store) GetPractice(id string) (models.Practice, error) {
	row := s.db.QueryRow(`
		SELECT id, name, created_at, archived_at, deleted_at
		FROM practices WHERE id = ? AND deleted_at IS NULL`, id)
	return s.scanPractice(row)
}

func (s *Store) GetPracticeByName(name string) (models.Practice, error) {
	row := s.db.QueryRow(`
		SELECT id, name, created_at, archived_at, deleted_at
		FROM practices WHERE name = ? AND deleted_at IS NULL`, name)
	return s.scanPractice(row)
}

func (s *Store) GetAllPractices(includeArchived, includeDeleted bool) ([]models.Practice, error) {
	query := "SELECT id, name, created_at, archived_at, deleted_at FROM practices WHERE 1=1"
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
		var createdAt string
		var archivedAt, deletedAt sql.NullString

		if err := rows.Scan(&p.ID, &p.Name, &createdAt, &archivedAt, &deletedAt); err != nil {
			return nil, err
		}

		p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for practice %s: %w", p.ID, err)
		}
		if archivedAt.Valid {
			t, err := time.Parse(time.RFC3339, archivedAt.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse archived_at for practice %s: %w", p.ID, err)
			}
			p.ArchivedAt = &t
		}
		if deletedAt.Valid {
			t, err := time.Parse(time.RFC3339, deletedAt.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse deleted_at for practice %s: %w", p.ID, err)
			}
			p.DeletedAt = &t
		}

		practices = append(practices, p)
	}

	return practices, rows.Err()
}

func (s *Store) UpdatePractice(practice models.Practice) error {
	var archivedAt, deletedAt sql.NullString
	if practice.ArchivedAt != nil {
		archivedAt = sql.NullString{String: practice.ArchivedAt.Format(time.RFC3339), Valid: true}
	}
	if practice.DeletedAt != nil {
		deletedAt = sql.NullString{String: practice.DeletedAt.Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO practices (id, name, created_at, archived_at, deleted_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			archived_at = excluded.archived_at,
			deleted_at = excluded.deleted_at`,
		practice.ID, practice.Name, practice.CreatedAt.Format(time.RFC3339), archivedAt, deletedAt)

	return err
}

func (s *Store) ArchivePractice(id string) error {
	result, err := s.db.Exec(`
		UPDATE practices SET archived_at = ? WHERE id = ? AND deleted_at IS NULL AND archived_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
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
		UPDATE practices SET archived_at = NULL WHERE id = ? AND deleted_at IS NULL AND archived_at IS NOT NULL`,
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
		UPDATE practices SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
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
		UPDATE practices SET deleted_at = NULL WHERE id = ? AND deleted_at IS NOT NULL`,
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
