package practice

import (
	"github.com/google/uuid"

	"github.com/kestrelhq/daybook/internal/constants"
	"github.com/kestrelhq/daybook/internal/daykey"
	"github.com/kestrelhq/daybook/internal/errors"
	"github.com/kestrelhq/daybook/internal/models"
)

// Store is the slice of persistence the engine needs. PutRecord must be an
// atomic replace-or-insert keyed by (practice, day); both database backends
// enforce this with a uniqueness constraint and an upsert.
type Store interface {
	PutRecord(models.AdherenceRecord) error
	RecordFor(practiceID string, day daykey.Key) (*models.AdherenceRecord, error)
	RecordsInWindow(practiceID string, from, to daykey.Key) ([]models.AdherenceRecord, error)
	CompletedRecords(practiceID string, limit int) ([]models.AdherenceRecord, error)
}

// PreferenceReader resolves user preferences. The bool result reports
// whether a value is configured; the engine falls back to defaults when not.
type PreferenceReader interface {
	CutoffHour(practiceID string) (int, bool, error)
	StreakWindow(practiceID string) (int, bool, error)
}

// Service is the daily practice engine. All state lives in the injected
// collaborators; every method computes from a fresh snapshot.
type Service struct {
	store Store
	prefs PreferenceReader
	clock Clock
}

func NewService(store Store, prefs PreferenceReader, clock Clock) *Service {
	return &Service{
		store: store,
		prefs: prefs,
		clock: clock,
	}
}

// Today returns the current calendar day in the practice's reference
// timezone.
func (s *Service) Today(practiceID string) (daykey.Key, error) {
	loc, err := s.clock.Timezone(practiceID)
	if err != nil {
		return daykey.Key{}, err
	}
	return daykey.Of(s.clock.Now(), loc), nil
}

// Log upserts the adherence record for (practice, day). A nil day means
// today. Logging a future day is rejected with an InvalidDayError; a
// negative count with an InputError. Re-logging a day replaces the stored
// record in full, so a correction overwrites every field.
func (s *Service) Log(practiceID string, day *daykey.Key, completed bool, count *int, note string) (models.AdherenceRecord, error) {
	today, err := s.Today(practiceID)
	if err != nil {
		return models.AdherenceRecord{}, err
	}

	d := today
	if day != nil {
		d = *day
	}
	if d.After(today) {
		return models.AdherenceRecord{}, &errors.InvalidDayError{Day: d.String(), Today: today.String()}
	}

	c := 0
	if completed {
		c = 1
	}
	if count != nil {
		if *count < 0 {
			return models.AdherenceRecord{}, errors.NewInput("count must be >= 0, got %d", *count)
		}
		c = *count
	}

	existing, err := s.store.RecordFor(practiceID, d)
	if err != nil {
		return models.AdherenceRecord{}, errors.Store(err)
	}

	now := s.clock.Now()
	record := models.AdherenceRecord{
		ID:         uuid.New().String(),
		PracticeID: practiceID,
		Day:        d,
		Completed:  completed,
		Count:      c,
		Note:       note,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if existing != nil {
		// Same row identity; only the logged fields change
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	}

	if err := s.store.PutRecord(record); err != nil {
		return models.AdherenceRecord{}, errors.Store(err)
	}

	return record, nil
}

// RecordFor returns the record for (practice, day), or nil when absent.
func (s *Service) RecordFor(practiceID string, day daykey.Key) (*models.AdherenceRecord, error) {
	record, err := s.store.RecordFor(practiceID, day)
	if err != nil {
		return nil, errors.Store(err)
	}
	return record, nil
}

// History returns the practice's records between from and to inclusive,
// ordered by day ascending. Callable repeatedly with different windows.
func (s *Service) History(practiceID string, from, to daykey.Key) ([]models.AdherenceRecord, error) {
	if to.Before(from) {
		return nil, errors.NewInput("window end %s precedes start %s", to, from)
	}
	records, err := s.store.RecordsInWindow(practiceID, from, to)
	if err != nil {
		return nil, errors.Store(err)
	}
	return records, nil
}

// Streak computes the practice's streak statistics as of today.
func (s *Service) Streak(practiceID string) (models.StreakResult, error) {
	today, err := s.Today(practiceID)
	if err != nil {
		return models.StreakResult{}, err
	}

	window := constants.DefaultStreakWindowDays
	if w, ok, err := s.prefs.StreakWindow(practiceID); err != nil {
		return models.StreakResult{}, errors.Store(err)
	} else if ok && w > 0 {
		window = w
	}

	records, err := s.store.CompletedRecords(practiceID, window)
	if err != nil {
		return models.StreakResult{}, errors.Store(err)
	}

	return ComputeStreak(records, today), nil
}

// AccessDecision evaluates the daily ritual access gate for the practice.
func (s *Service) AccessDecision(practiceID string) (models.GateDecision, error) {
	loc, err := s.clock.Timezone(practiceID)
	if err != nil {
		return models.GateDecision{}, err
	}

	now := s.clock.Now().In(loc)
	today := daykey.Of(now, loc)

	cutoff := constants.DefaultCutoffHour
	if h, ok, err := s.prefs.CutoffHour(practiceID); err != nil {
		return models.GateDecision{}, errors.Store(err)
	} else if ok {
		if h < 0 || h > 23 {
			return models.GateDecision{}, errors.NewInput("cutoff hour must be in [0,23], got %d", h)
		}
		cutoff = h
	}

	record, err := s.store.RecordFor(practiceID, today)
	if err != nil {
		return models.GateDecision{}, errors.Store(err)
	}

	return EvaluateGate(now.Hour(), cutoff, record), nil
}
