package daykey

import (
	"time"

	"github.com/kestrelhq/daybook/internal/constants"
	"github.com/kestrelhq/daybook/internal/errors"
)

const secondsPerDay = 86400

// Key identifies a single calendar day in a reference timezone. It carries no
// time-of-day component: two timestamps map to the same Key exactly when they
// fall on the same local calendar day. Keys are comparable with == and
// totally ordered.
type Key struct {
	days int // civil days since 1970-01-01
}

// Of returns the Key for the calendar day that t falls on in loc.
func Of(t time.Time, loc *time.Location) Key {
	year, month, day := t.In(loc).Date()
	return fromCivil(year, month, day)
}

func fromCivil(year int, month time.Month, day int) Key {
	// Midnight UTC of a civil date is an exact multiple of 86400 seconds,
	// so the division is exact for dates before and after the epoch.
	u := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix()
	return Key{days: int(u / secondsPerDay)}
}

// Parse converts a YYYY-MM-DD string into a Key.
func Parse(s string) (Key, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return Key{}, errors.NewInput("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return fromCivil(t.Date()), nil
}

// String formats the Key as YYYY-MM-DD, the form stored by both database
// backends. Lexical order of the strings matches the order of the Keys.
func (k Key) String() string {
	return time.Unix(int64(k.days)*secondsPerDay, 0).UTC().Format(constants.DateFormat)
}

// Next returns the following calendar day.
func (k Key) Next() Key {
	return Key{days: k.days + 1}
}

// Prev returns the preceding calendar day.
func (k Key) Prev() Key {
	return Key{days: k.days - 1}
}

// After reports whether k is strictly later than other.
func (k Key) After(other Key) bool {
	return k.days > other.days
}

// Before reports whether k is strictly earlier than other.
func (k Key) Before(other Key) bool {
	return k.days < other.days
}

// MarshalText implements encoding.TextMarshaler so Keys serialize as
// YYYY-MM-DD in JSON.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Between returns the signed number of calendar days from a to b, so
// Between(a, a.Next()) == 1 and Between(a, a.Prev()) == -1.
func Between(a, b Key) int {
	return b.days - a.days
}
