package validation

import (
	"time"

	"github.com/kestrelhq/daybook/internal/errors"
)

// Timezone checks that name is a loadable IANA timezone, "Local", or empty.
func Timezone(name string) error {
	if name == "" || name == "Local" {
		return nil
	}
	if _, err := time.LoadLocation(name); err != nil {
		return errors.NewInput("invalid timezone %q: %v", name, err)
	}
	return nil
}

// Hour checks that h is a valid hour of day.
func Hour(h int) error {
	if h < 0 || h > 23 {
		return errors.NewInput("hour must be in [0,23], got %d", h)
	}
	return nil
}

// Window checks that a day-count window is positive.
func Window(days int) error {
	if days <= 0 {
		return errors.NewInput("window must be a positive number of days, got %d", days)
	}
	return nil
}
