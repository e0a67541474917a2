package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/kestrelhq/daybook/internal/logger"
)

// ErrStoreUnavailable marks failures of the persistence collaborator. The
// engine performs no retries of its own; callers may re-issue the request.
var ErrStoreUnavailable = stderrors.New("store unavailable")

// InputError reports a malformed caller-supplied value (day string, hour,
// timezone name). It is surfaced immediately and never retried.
type InputError struct {
	msg string
}

// NewInput creates an InputError with a formatted message.
func NewInput(format string, args ...interface{}) *InputError {
	return &InputError{msg: fmt.Sprintf(format, args...)}
}

func (e *InputError) Error() string {
	return e.msg
}

// IsInput reports whether err is (or wraps) an InputError.
func IsInput(err error) bool {
	var ie *InputError
	return stderrors.As(err, &ie)
}

// InvalidDayError rejects an attempt to log adherence for a future day.
type InvalidDayError struct {
	Day   string
	Today string
}

func (e *InvalidDayError) Error() string {
	return fmt.Sprintf("cannot log adherence for future day %s (today is %s)", e.Day, e.Today)
}

// IsInvalidDay reports whether err is (or wraps) an InvalidDayError.
func IsInvalidDay(err error) bool {
	var de *InvalidDayError
	return stderrors.As(err, &de)
}

// Store wraps a collaborator failure so callers can match it with
// errors.Is(err, ErrStoreUnavailable).
func Store(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
