package storage

import (
	"net/url"
	"strings"

	"github.com/kestrelhq/daybook/internal/daykey"
	"github.com/kestrelhq/daybook/internal/models"
	"github.com/kestrelhq/daybook/internal/storage/postgres"
	"github.com/kestrelhq/daybook/internal/storage/sqlite"
)

// Provider is the persistence contract shared by both database backends.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Practices
	AddPractice(models.Practice) error
	GetPractice(id string) (models.Practice, error)
	GetPracticeByName(name string) (models.Practice, error)
	GetAllPractices(includeArchived, includeDeleted bool) ([]models.Practice, error)
	UpdatePractice(models.Practice) error
	ArchivePractice(id string) error
	UnarchivePractice(id string) error
	DeletePractice(id string) error
	RestorePractice(id string) error

	// Adherence records. PutRecord is an atomic replace-or-insert keyed by
	// (practice, day); concurrent writers resolve last-committed-wins.
	PutRecord(models.AdherenceRecord) error
	RecordFor(practiceID string, day daykey.Key) (*models.AdherenceRecord, error)
	RecordsInWindow(practiceID string, from, to daykey.Key) ([]models.AdherenceRecord, error)
	CompletedRecords(practiceID string, limit int) ([]models.AdherenceRecord, error)
	RecordsForDay(day daykey.Key) ([]models.AdherenceRecord, error)

	// Morning pages entries
	PutPageEntry(models.PageEntry) error
	GetPageEntry(day daykey.Key) (*models.PageEntry, error)
	GetRecentPageEntries(limit int) ([]models.PageEntry, error)

	// Utils
	GetConfigPath() string
}

// NewSQLiteStore creates a Provider backed by a local SQLite file.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore creates a Provider backed by PostgreSQL.
func NewPostgresStore(connStr string) Provider {
	return postgres.New(connStr)
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password inline. Credentials belong in the keyring, the
// environment, or .pgpass, never in command-line arguments.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User == nil {
			return false
		}
		_, hasPassword := u.User.Password()
		return hasPassword
	}

	// DSN format: space-separated key=value pairs
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], "password") {
			return true
		}
	}
	return false
}
