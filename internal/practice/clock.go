package practice

import (
	"time"

	"github.com/kestrelhq/daybook/internal/errors"
)

// Clock provides wall-clock time and the reference timezone for a practice.
// The engine never touches global clock or timezone state; injecting this
// keeps every day-identity decision deterministic under test.
type Clock interface {
	Now() time.Time
	Timezone(practiceID string) (*time.Location, error)
}

// SystemClock is the production Clock: real time, with the reference
// timezone resolved from a configured IANA name.
type SystemClock struct {
	// TimezoneName is an IANA timezone name, or "Local"/empty for the
	// system timezone.
	TimezoneName string
}

func (c SystemClock) Now() time.Time {
	return time.Now()
}

func (c SystemClock) Timezone(string) (*time.Location, error) {
	if c.TimezoneName == "" || c.TimezoneName == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimezoneName)
	if err != nil {
		return nil, errors.NewInput("invalid timezone %q: %v", c.TimezoneName, err)
	}
	return loc, nil
}
