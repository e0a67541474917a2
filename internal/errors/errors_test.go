package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestInputError(t *testing.T) {
	err := NewInput("bad hour %d", 25)

	if err.Error() != "bad hour 25" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !IsInput(err) {
		t.Error("IsInput should match a direct InputError")
	}
	if !IsInput(fmt.Errorf("context: %w", err)) {
		t.Error("IsInput should match a wrapped InputError")
	}
	if IsInput(stderrors.New("plain")) {
		t.Error("IsInput should not match unrelated errors")
	}
}

func TestInvalidDayError(t *testing.T) {
	err := &InvalidDayError{Day: "2024-06-11", Today: "2024-06-10"}

	if !IsInvalidDay(err) {
		t.Error("IsInvalidDay should match a direct InvalidDayError")
	}
	if !IsInvalidDay(fmt.Errorf("context: %w", err)) {
		t.Error("IsInvalidDay should match a wrapped InvalidDayError")
	}
	if IsInvalidDay(NewInput("different kind")) {
		t.Error("IsInvalidDay should not match an InputError")
	}

	want := "cannot log adherence for future day 2024-06-11 (today is 2024-06-10)"
	if got := err.Error(); got != want {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestStoreWrapping(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Store(cause)

	if !stderrors.Is(err, ErrStoreUnavailable) {
		t.Error("Store(err) should match ErrStoreUnavailable")
	}
	if Store(nil) != nil {
		t.Error("Store(nil) should stay nil")
	}
}

func TestFormat(t *testing.T) {
	if got := Format(stderrors.New("boom")); got != "Error: boom" {
		t.Errorf("unexpected format: %q", got)
	}
	if got := Format(nil); got != "" {
		t.Errorf("expected empty string for nil error, got %q", got)
	}
	if got := Formatf("code %d", 7); got != "Error: code 7" {
		t.Errorf("unexpected format: %q", got)
	}
}
