/*
errors.go - Error types for the projection engine

PURPOSE:
  The engine has very few ways to fail. Everything it can report lives here
  so the HTTP and CLI boundaries can map errors with errors.Is/errors.As.

ERROR CATEGORIES:
  1. Input errors - start date that is not a year-month
  2. Rate errors  - annual rates with no real monthly equivalent

USAGE:
  series, err := goal.Project(req)
  if errors.Is(err, goal.ErrInvalidDateFormat) {
      // tell the caller to use mm-YYYY
  }

SEE ALSO:
  - month.go: ParseMonth returns DateFormatError
  - rates.go: MonthlyRate returns ErrInvalidRate
*/
package goal

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidDateFormat is returned when a year-month string does not
	// match the mm-YYYY layout. No partial series is produced.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidRate is returned when an annual rate is -100% or lower.
	ErrInvalidRate = errors.New("invalid rate")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// DateFormatError records the offending input.
type DateFormatError struct {
	Input string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date format %q: use %s", e.Input, KeyLayout)
}

func (e *DateFormatError) Unwrap() error {
	return ErrInvalidDateFormat
}

// RateError records which rate could not be converted.
type RateError struct {
	Name  string // "return_rate" or "inflation_rate"
	Value string
	Err   error
}

func (e *RateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Name, e.Value, e.Err)
	}
	return fmt.Sprintf("%s %s: must be greater than -1", e.Name, e.Value)
}

func (e *RateError) Unwrap() error {
	return ErrInvalidRate
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidDateFormat) ||
		errors.Is(err, ErrInvalidRate)
}
