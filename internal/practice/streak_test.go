package practice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelhq/daybook/internal/daykey"
	"github.com/kestrelhq/daybook/internal/models"
)

func day(t *testing.T, s string) daykey.Key {
	t.Helper()
	k, err := daykey.Parse(s)
	require.NoError(t, err)
	return k
}

func completedOn(days ...daykey.Key) []models.AdherenceRecord {
	records := make([]models.AdherenceRecord, 0, len(days))
	for _, d := range days {
		records = append(records, models.AdherenceRecord{
			PracticeID: "p1",
			Day:        d,
			Completed:  true,
			Count:      1,
		})
	}
	return records
}

func TestComputeStreakEmpty(t *testing.T) {
	today := day(t, "2024-06-10")

	result := ComputeStreak(nil, today)

	assert.Equal(t, 0, result.Current)
	assert.Equal(t, 0, result.Longest)
	assert.Nil(t, result.LastCompleted)
}

func TestComputeStreakIgnoresIncompleteRecords(t *testing.T) {
	today := day(t, "2024-06-10")
	records := []models.AdherenceRecord{
		{PracticeID: "p1", Day: today, Completed: false},
		{PracticeID: "p1", Day: today.Prev(), Completed: false},
	}

	result := ComputeStreak(records, today)

	assert.Equal(t, 0, result.Current)
	assert.Equal(t, 0, result.Longest)
	assert.Nil(t, result.LastCompleted)
}

func TestComputeStreakUnbrokenRun(t *testing.T) {
	// Completed today, yesterday, and the day before
	today := day(t, "2024-06-10")
	records := completedOn(today, today.Prev(), today.Prev().Prev())

	result := ComputeStreak(records, today)

	assert.Equal(t, 3, result.Current)
	assert.Equal(t, 3, result.Longest)
	require.NotNil(t, result.LastCompleted)
	assert.Equal(t, today, *result.LastCompleted)
}

func TestComputeStreakTwoSeparateRuns(t *testing.T) {
	// Runs: [day-5, day-4] and [day-1, day0]
	today := day(t, "2024-06-10")
	records := completedOn(
		day(t, "2024-06-05"), day(t, "2024-06-06"),
		day(t, "2024-06-09"), today,
	)

	result := ComputeStreak(records, today)

	assert.Equal(t, 2, result.Current)
	assert.Equal(t, 2, result.Longest)
	assert.Equal(t, today, *result.LastCompleted)
}

func TestComputeStreakYesterdayKeepsItAlive(t *testing.T) {
	// Completed yesterday but not yet today: the streak is alive until a
	// day is fully missed
	today := day(t, "2024-06-10")
	records := completedOn(today.Prev())

	result := ComputeStreak(records, today)

	assert.Equal(t, 1, result.Current)
	assert.Equal(t, 1, result.Longest)
	assert.Equal(t, today.Prev(), *result.LastCompleted)
}

func TestComputeStreakLapsedAfterGap(t *testing.T) {
	// Last completion three days ago: current is gone, history remains
	today := day(t, "2024-06-10")
	lastDay := day(t, "2024-06-07")
	records := completedOn(lastDay)

	result := ComputeStreak(records, today)

	assert.Equal(t, 0, result.Current)
	assert.Equal(t, 1, result.Longest)
	assert.Equal(t, lastDay, *result.LastCompleted)
}

func TestComputeStreakLongestOutlivesCurrent(t *testing.T) {
	// A long historical run followed by a fresh shorter one
	today := day(t, "2024-06-10")
	records := completedOn(
		day(t, "2024-05-01"), day(t, "2024-05-02"), day(t, "2024-05-03"),
		day(t, "2024-05-04"), day(t, "2024-05-05"),
		today.Prev(), today,
	)

	result := ComputeStreak(records, today)

	assert.Equal(t, 2, result.Current)
	assert.Equal(t, 5, result.Longest)
}

func TestComputeStreakOrderIndependent(t *testing.T) {
	today := day(t, "2024-06-10")
	records := completedOn(
		day(t, "2024-06-01"), day(t, "2024-06-02"), day(t, "2024-06-03"),
		day(t, "2024-06-07"), day(t, "2024-06-08"), day(t, "2024-06-09"), today,
	)

	want := ComputeStreak(records, today)
	assert.Equal(t, 4, want.Current)
	assert.Equal(t, 4, want.Longest)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]models.AdherenceRecord, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		assert.Equal(t, want, ComputeStreak(shuffled, today))
	}
}

func TestComputeStreakCollapsesDuplicateDays(t *testing.T) {
	today := day(t, "2024-06-10")
	records := append(completedOn(today, today.Prev()), completedOn(today)...)

	result := ComputeStreak(records, today)

	assert.Equal(t, 2, result.Current)
	assert.Equal(t, 2, result.Longest)
}

func TestComputeStreakExtendingRunGrowsByOne(t *testing.T) {
	today := day(t, "2024-06-10")
	records := completedOn(today.Prev(), today.Prev().Prev())

	before := ComputeStreak(records, today)
	after := ComputeStreak(append(records, completedOn(today)...), today)

	assert.Equal(t, before.Current+1, after.Current)
}

func TestComputeStreakDistantDayDoesNotTouchCurrent(t *testing.T) {
	today := day(t, "2024-06-10")
	records := completedOn(today, today.Prev())

	before := ComputeStreak(records, today)
	after := ComputeStreak(append(records, completedOn(day(t, "2024-05-01"))...), today)

	assert.Equal(t, before.Current, after.Current)
}
