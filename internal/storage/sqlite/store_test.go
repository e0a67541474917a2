package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kestrelhq/daybook/internal/constants"
	"github.com/kestrelhq/daybook/internal/daykey"
	"github.com/kestrelhq/daybook/internal/models"
)

// setupTestStore creates and initializes a SQLite store in a temp directory
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func mustDay(t *testing.T, s string) daykey.Key {
	t.Helper()
	d, err := daykey.Parse(s)
	if err != nil {
		t.Fatalf("failed to parse day %q: %v", s, err)
	}
	return d
}

func testPractice(name string) models.Practice {
	return models.Practice{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func testRecord(practiceID string, day daykey.Key, completed bool) models.AdherenceRecord {
	count := 0
	if completed {
		count = 1
	}
	now := time.Now().UTC().Truncate(time.Second)
	return models.AdherenceRecord{
		ID:         uuid.New().String(),
		PracticeID: practiceID,
		Day:        day,
		Completed:  completed,
		Count:      count,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestInitCreatesDefaultSettings(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}

	if settings.Timezone != constants.DefaultTimezone {
		t.Errorf("expected timezone %q, got %q", constants.DefaultTimezone, settings.Timezone)
	}
	if settings.CutoffHour != constants.DefaultCutoffHour {
		t.Errorf("expected cutoff hour %d, got %d", constants.DefaultCutoffHour, settings.CutoffHour)
	}
	if settings.StreakWindowDays != constants.DefaultStreakWindowDays {
		t.Errorf("expected streak window %d, got %d", constants.DefaultStreakWindowDays, settings.StreakWindowDays)
	}
}

func TestLoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))

	if err := store.Load(); err == nil {
		t.Error("expected Load to fail for an uninitialized store")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	want := models.Settings{
		Timezone:         "America/New_York",
		CutoffHour:       10,
		StreakWindowDays: 90,
		RecentPageCount:  5,
	}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if got != want {
		t.Errorf("settings round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestPracticeLifecycle(t *testing.T) {
	store := setupTestStore(t)
	p := testPractice("meditation")

	if err := store.AddPractice(p); err != nil {
		t.Fatalf("failed to add practice: %v", err)
	}

	got, err := store.GetPractice(p.ID)
	if err != nil {
		t.Fatalf("failed to get practice: %v", err)
	}
	if got.Name != "meditation" {
		t.Errorf("expected name meditation, got %q", got.Name)
	}

	byName, err := store.GetPracticeByName("meditation")
	if err != nil {
		t.Fatalf("failed to get practice by name: %v", err)
	}
	if byName.ID != p.ID {
		t.Errorf("expected ID %s, got %s", p.ID, byName.ID)
	}

	if err := store.ArchivePractice(p.ID); err != nil {
		t.Fatalf("failed to archive practice: %v", err)
	}
	active, err := store.GetAllPractices(false, false)
	if err != nil {
		t.Fatalf("failed to list practices: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("expected no active practices after archive, got %d", len(active))
	}

	if err := store.UnarchivePractice(p.ID); err != nil {
		t.Fatalf("failed to unarchive practice: %v", err)
	}
	active, err = store.GetAllPractices(false, false)
	if err != nil {
		t.Fatalf("failed to list practices: %v", err)
	}
	if len(active) != 1 {
		t.Errorf("expected one active practice after unarchive, got %d", len(active))
	}

	if err := store.DeletePractice(p.ID); err != nil {
		t.Fatalf("failed to delete practice: %v", err)
	}
	if _, err := store.GetPractice(p.ID); err == nil {
		t.Error("expected soft-deleted practice to be invisible")
	}

	if err := store.RestorePractice(p.ID); err != nil {
		t.Fatalf("failed to restore practice: %v", err)
	}
	if _, err := store.GetPractice(p.ID); err != nil {
		t.Errorf("expected restored practice to be visible: %v", err)
	}
}

func TestArchiveMissingPractice(t *testing.T) {
	store := setupTestStore(t)

	if err := store.ArchivePractice(uuid.New().String()); err == nil {
		t.Error("expected archiving a missing practice to fail")
	}
}

func TestPutRecordUpserts(t *testing.T) {
	store := setupTestStore(t)
	p := testPractice("journaling")
	if err := store.AddPractice(p); err != nil {
		t.Fatalf("failed to add practice: %v", err)
	}
	day := mustDay(t, "2024-06-10")

	first := testRecord(p.ID, day, true)
	first.Note = "first attempt"
	if err := store.PutRecord(first); err != nil {
		t.Fatalf("failed to put record: %v", err)
	}

	// Second put for the same (practice, day) replaces, not duplicates
	second := testRecord(p.ID, day, false)
	second.Note = "correction"
	if err := store.PutRecord(second); err != nil {
		t.Fatalf("failed to put second record: %v", err)
	}

	records, err := store.RecordsInWindow(p.ID, day, day)
	if err != nil {
		t.Fatalf("failed to read window: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one record after double put, got %d", len(records))
	}
	if records[0].Completed {
		t.Error("expected second write to win")
	}
	if records[0].Note != "correction" {
		t.Errorf("expected note %q, got %q", "correction", records[0].Note)
	}
	// The conflict clause keeps the original row's id
	if records[0].ID != first.ID {
		t.Errorf("expected row identity %s to survive upsert, got %s", first.ID, records[0].ID)
	}
}

func TestRecordForMissingDay(t *testing.T) {
	store := setupTestStore(t)

	record, err := store.RecordFor(uuid.New().String(), mustDay(t, "2024-06-10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record != nil {
		t.Error("expected nil record for a day never logged")
	}
}

func TestRecordsInWindowOrdering(t *testing.T) {
	store := setupTestStore(t)
	p := testPractice("reading")
	if err := store.AddPractice(p); err != nil {
		t.Fatalf("failed to add practice: %v", err)
	}

	// Insert out of order
	for _, d := range []string{"2024-06-05", "2024-06-01", "2024-06-03"} {
		if err := store.PutRecord(testRecord(p.ID, mustDay(t, d), true)); err != nil {
			t.Fatalf("failed to put record for %s: %v", d, err)
		}
	}

	records, err := store.RecordsInWindow(p.ID, mustDay(t, "2024-06-01"), mustDay(t, "2024-06-04"))
	if err != nil {
		t.Fatalf("failed to read window: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records in window, got %d", len(records))
	}
	if records[0].Day.String() != "2024-06-01" || records[1].Day.String() != "2024-06-03" {
		t.Errorf("expected ascending day order, got %s then %s", records[0].Day, records[1].Day)
	}
}

func TestCompletedRecordsFilterAndLimit(t *testing.T) {
	store := setupTestStore(t)
	p := testPractice("running")
	if err := store.AddPractice(p); err != nil {
		t.Fatalf("failed to add practice: %v", err)
	}

	if err := store.PutRecord(testRecord(p.ID, mustDay(t, "2024-06-01"), true)); err != nil {
		t.Fatalf("failed to put record: %v", err)
	}
	if err := store.PutRecord(testRecord(p.ID, mustDay(t, "2024-06-02"), false)); err != nil {
		t.Fatalf("failed to put record: %v", err)
	}
	if err := store.PutRecord(testRecord(p.ID, mustDay(t, "2024-06-03"), true)); err != nil {
		t.Fatalf("failed to put record: %v", err)
	}
	if err := store.PutRecord(testRecord(p.ID, mustDay(t, "2024-06-04"), true)); err != nil {
		t.Fatalf("failed to put record: %v", err)
	}

	records, err := store.CompletedRecords(p.ID, 2)
	if err != nil {
		t.Fatalf("failed to read completed records: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	// Newest first, incomplete days excluded
	if records[0].Day.String() != "2024-06-04" || records[1].Day.String() != "2024-06-03" {
		t.Errorf("expected newest-first completed days, got %s then %s", records[0].Day, records[1].Day)
	}
}

func TestRecordsForDayAcrossPractices(t *testing.T) {
	store := setupTestStore(t)
	day := mustDay(t, "2024-06-10")

	a := testPractice("a")
	b := testPractice("b")
	for _, p := range []models.Practice{a, b} {
		if err := store.AddPractice(p); err != nil {
			t.Fatalf("failed to add practice: %v", err)
		}
		if err := store.PutRecord(testRecord(p.ID, day, true)); err != nil {
			t.Fatalf("failed to put record: %v", err)
		}
	}

	records, err := store.RecordsForDay(day)
	if err != nil {
		t.Fatalf("failed to read records for day: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected records from both practices, got %d", len(records))
	}
}

func TestPageEntryUpsert(t *testing.T) {
	store := setupTestStore(t)
	day := mustDay(t, "2024-06-10")
	now := time.Now().UTC().Truncate(time.Second)

	entry := models.PageEntry{
		ID:        uuid.New().String(),
		Day:       day,
		Content:   "three pages of thoughts",
		WordCount: 4,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := store.PutPageEntry(entry); err != nil {
		t.Fatalf("failed to put page entry: %v", err)
	}

	entry.ID = uuid.New().String()
	entry.Content = "revised thoughts"
	entry.WordCount = 2
	if err := store.PutPageEntry(entry); err != nil {
		t.Fatalf("failed to put revised page entry: %v", err)
	}

	got, err := store.GetPageEntry(day)
	if err != nil {
		t.Fatalf("failed to get page entry: %v", err)
	}
	if got == nil {
		t.Fatal("expected an entry for the day")
	}
	if got.Content != "revised thoughts" {
		t.Errorf("expected revised content, got %q", got.Content)
	}

	recent, err := store.GetRecentPageEntries(10)
	if err != nil {
		t.Fatalf("failed to get recent entries: %v", err)
	}
	if len(recent) != 1 {
		t.Errorf("expected a single entry after upsert, got %d", len(recent))
	}
}

func TestGetPageEntryMissing(t *testing.T) {
	store := setupTestStore(t)

	entry, err := store.GetPageEntry(mustDay(t, "2024-06-10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry != nil {
		t.Error("expected nil for a day with no entry")
	}
}

func TestRecentPageEntriesNewestFirst(t *testing.T) {
	store := setupTestStore(t)
	now := time.Now().UTC().Truncate(time.Second)

	for _, d := range []string{"2024-06-01", "2024-06-03", "2024-06-02"} {
		entry := models.PageEntry{
			ID:        uuid.New().String(),
			Day:       mustDay(t, d),
			Content:   "entry for " + d,
			WordCount: 3,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := store.PutPageEntry(entry); err != nil {
			t.Fatalf("failed to put page entry for %s: %v", d, err)
		}
	}

	recent, err := store.GetRecentPageEntries(2)
	if err != nil {
		t.Fatalf("failed to get recent entries: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
	if recent[0].Day.String() != "2024-06-03" || recent[1].Day.String() != "2024-06-02" {
		t.Errorf("expected newest-first order, got %s then %s", recent[0].Day, recent[1].Day)
	}
}

func TestReopenAfterInit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	p := testPractice("persisted")
	if err := store.AddPractice(p); err != nil {
		t.Fatalf("failed to add practice: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	reopened := NewStore(dbPath)
	if err := reopened.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetPractice(p.ID)
	if err != nil {
		t.Fatalf("failed to get practice after reload: %v", err)
	}
	if got.Name != "persisted" {
		t.Errorf("expected persisted practice, got %q", got.Name)
	}
}
