package models

import (
	"time"

	"github.com/kestrelhq/daybook/internal/daykey"
)

// AdherenceRecord is the single source-of-truth entry for whether a practice
// was completed on a given calendar day. At most one record exists per
// (practice, day); re-logging the same day replaces the record in full.
type AdherenceRecord struct {
	ID         string     `json:"id"`
	PracticeID string     `json:"practice_id"`
	Day        daykey.Key `json:"day"`
	Completed  bool       `json:"completed"`
	Count      int        `json:"count"`
	Note       string     `json:"note,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// StreakResult summarizes a practice's completion history. It is derived on
// demand from the adherence records and never persisted.
type StreakResult struct {
	Current       int         `json:"current_streak"`
	Longest       int         `json:"longest_streak"`
	LastCompleted *daykey.Key `json:"last_completed_day,omitempty"`
}

// GateReason explains an access gate decision.
type GateReason string

const (
	// ReasonAfterCutoff grants access because the cutoff hour has passed.
	ReasonAfterCutoff GateReason = "after_cutoff"
	// ReasonAlreadyCompleted grants access because today's ritual is done.
	ReasonAlreadyCompleted GateReason = "already_completed"
	// ReasonBeforeCutoffIncomplete denies access: before cutoff, not done.
	ReasonBeforeCutoffIncomplete GateReason = "before_cutoff_incomplete"
)

// GateDecision is the access-control outcome for the time-boxed daily
// ritual. Derived fresh on every call, never persisted.
type GateDecision struct {
	Allowed bool             `json:"allowed"`
	Reason  GateReason       `json:"reason"`
	Record  *AdherenceRecord `json:"record,omitempty"`
}

// PageEntry holds the text of one morning pages session. One entry per day;
// rewriting the same day replaces it.
type PageEntry struct {
	ID        string     `json:"id"`
	Day       daykey.Key `json:"day"`
	Content   string     `json:"content"`
	WordCount int        `json:"word_count"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
