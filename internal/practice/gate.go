package practice

import "github.com/kestrelhq/daybook/internal/models"

// EvaluateGate decides whether the daily ritual surface is accessible. The
// rows are checked in strict order and exactly one applies to every input:
//
//	currentHour >= cutoffHour  -> allowed, after_cutoff
//	today's record exists      -> allowed, already_completed (carries record)
//	otherwise                  -> denied, before_cutoff_incomplete
//
// The decision is a total function of its inputs, recomputed on every call.
// Nothing is cached: changing the cutoff preference changes today's decision
// immediately, with no stale unlocked flag to invalidate.
func EvaluateGate(currentHour, cutoffHour int, todaysRecord *models.AdherenceRecord) models.GateDecision {
	if currentHour >= cutoffHour {
		return models.GateDecision{
			Allowed: true,
			Reason:  models.ReasonAfterCutoff,
		}
	}

	if todaysRecord != nil {
		return models.GateDecision{
			Allowed: true,
			Reason:  models.ReasonAlreadyCompleted,
			Record:  todaysRecord,
		}
	}

	return models.GateDecision{
		Allowed: false,
		Reason:  models.ReasonBeforeCutoffIncomplete,
	}
}
