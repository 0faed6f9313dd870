package goal

import (
	"strings"
	"time"
)

// =============================================================================
// MONTH - Year-month with no day component (this IS a monthly simulation)
// =============================================================================

// KeyLayout is the canonical textual form of a month, used for every key in
// requests and in the projected series.
const KeyLayout = "mm-YYYY"

const (
	keyFormat = "01-2006"
	// parseLayout accepts a one- or two-digit month followed by a four-digit year.
	parseLayout = "1-2006"
)

type Month struct {
	Year  int
	Month time.Month
}

// Constructors
func NewMonth(year int, month time.Month) Month {
	return fromTime(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

func fromTime(t time.Time) Month { return Month{Year: t.Year(), Month: t.Month()} }

// ParseMonth parses a mm-YYYY string. "1-2025" is accepted as January 2025.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(parseLayout, strings.TrimSpace(s))
	if err != nil {
		return Month{}, &DateFormatError{Input: s}
	}
	return fromTime(t), nil
}

// MustParseMonth is ParseMonth for literals known to be valid. It panics otherwise.
func MustParseMonth(s string) Month {
	m, err := ParseMonth(s)
	if err != nil {
		panic(err)
	}
	return m
}

// CanonicalKey parses a mapping key and returns it in canonical mm-YYYY form.
func CanonicalKey(s string) (string, error) {
	m, err := ParseMonth(s)
	if err != nil {
		return "", err
	}
	return m.Key(), nil
}

func (m Month) time() time.Time { return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC) }

// Comparison
func (m Month) Before(other Month) bool { return m.index() < other.index() }
func (m Month) Equal(other Month) bool  { return m.index() == other.index() }
func (m Month) After(other Month) bool  { return m.index() > other.index() }

func (m Month) index() int { return m.Year*12 + int(m.Month) - 1 }

// Arithmetic
func (m Month) AddMonths(n int) Month { return fromTime(m.time().AddDate(0, n, 0)) }
func (m Month) AddYears(n int) Month  { return m.AddMonths(12 * n) }

// MonthsBetween returns how many months separate from and to (negative if to is earlier).
func MonthsBetween(from, to Month) int { return to.index() - from.index() }

// Properties
func (m Month) IsZero() bool   { return m.Year == 0 && m.Month == 0 }
func (m Month) Key() string    { return m.time().Format(keyFormat) }
func (m Month) String() string { return m.Key() }
