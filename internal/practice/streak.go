package practice

import (
	"sort"

	"github.com/kestrelhq/daybook/internal/daykey"
	"github.com/kestrelhq/daybook/internal/models"
)

// ComputeStreak reduces a set of adherence records to streak statistics
// relative to today. It is a pure function: same records and today always
// give the same result, regardless of input order.
//
// A run is a maximal sequence of consecutive completed calendar days. The
// current streak is the run touching today or yesterday: completing
// yesterday but not yet today keeps the streak alive until a day is fully
// missed. This is deliberate product behavior, not an accident; see
// DESIGN.md before changing it.
func ComputeStreak(records []models.AdherenceRecord, today daykey.Key) models.StreakResult {
	// Distinct completed days only. The ledger guarantees one record per
	// day, so duplicates here can only come from a caller merging
	// snapshots; collapsing them keeps the result order-independent.
	seen := make(map[daykey.Key]struct{}, len(records))
	var days []daykey.Key
	for _, r := range records {
		if !r.Completed {
			continue
		}
		if _, dup := seen[r.Day]; dup {
			continue
		}
		seen[r.Day] = struct{}{}
		days = append(days, r.Day)
	}

	if len(days) == 0 {
		return models.StreakResult{}
	}

	// Most recent first
	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})

	longest := 1
	run := 1
	firstRun := 1
	inFirstRun := true

	for i := 1; i < len(days); i++ {
		if daykey.Between(days[i], days[i-1]) == 1 {
			// Exactly one calendar day apart: the run continues
			run++
		} else {
			inFirstRun = false
			run = 1
		}
		if inFirstRun {
			firstRun = run
		}
		if run > longest {
			longest = run
		}
	}

	mostRecent := days[0]

	current := 0
	if mostRecent == today || mostRecent == today.Prev() {
		current = firstRun
	}

	return models.StreakResult{
		Current:       current,
		Longest:       longest,
		LastCompleted: &mostRecent,
	}
}
