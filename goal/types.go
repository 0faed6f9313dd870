/*
Package goal provides the savings goal projection engine.

PURPOSE:
  Given a savings goal, a horizon, a contribution schedule and annual return
  and inflation rates, the engine simulates the portfolio month by month and
  reports, for each month, the projected value with and without an extra
  income stream and whether the inflation-adjusted goal has been reached.

KEY CONCEPTS IN THIS FILE (types.go):
  - Request: Everything one simulation needs, already validated
  - Snapshot: The reported figures for a single month
  - Series: Snapshots in chronological order, also addressable by key
  - TimeUnit: How a request expresses its horizon

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal for every amount and rate
  2. Purity: No I/O, no shared state; same input, same output
  3. Keys: Months are addressed by their canonical mm-YYYY string

USAGE:
  series, err := goal.Project(goal.Request{
      Goal:              decimal.NewFromInt(12000),
      Horizon:           goal.HorizonMonths(1, goal.UnitYears),
      MonthlyInvestment: decimal.NewFromInt(1000),
      StartDate:         "01-2025",
  })

SEE ALSO:
  - projection.go: The simulation loop
  - month.go: Year-month arithmetic and keys
  - rates.go: Annual to monthly rate conversion
*/
package goal

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// HORIZON - Duration plus unit
// =============================================================================

type TimeUnit string

const (
	UnitMonths TimeUnit = "months"
	UnitYears  TimeUnit = "years"
)

// HorizonMonths converts a duration to a month count. Anything that is not
// UnitMonths counts as years.
func HorizonMonths(duration int, unit TimeUnit) int {
	if unit == UnitMonths {
		return duration
	}
	return duration * monthsPerYear
}

// =============================================================================
// REQUEST - Input to one simulation
// =============================================================================

// Request is consumed once by Project and never modified.
type Request struct {
	Goal    decimal.Decimal
	Horizon int // months; <= 0 yields an empty series

	MonthlyInvestment decimal.Decimal
	ExtraIncome       decimal.Decimal // only feeds the "with extra" series
	AnnualReturnRate  decimal.Decimal
	InflationRate     decimal.Decimal

	StartDate    string // mm-YYYY
	InitialValue decimal.Decimal

	// Keyed by canonical mm-YYYY.
	OneTimeInvestments       map[string]decimal.Decimal
	MonthlyInvestmentChanges map[string]decimal.Decimal
}

// =============================================================================
// SNAPSHOT / SERIES - Output
// =============================================================================

// Snapshot holds the reported (rounded) figures for one month.
type Snapshot struct {
	Month             Month
	CurrentValue      decimal.Decimal
	CurrentExtraValue decimal.Decimal
	AdjustedGoal      decimal.Decimal
	GoalAchieved      bool
}

func (s Snapshot) Key() string { return s.Month.Key() }

// Series is the ordered result of a projection.
type Series struct {
	Snapshots []Snapshot
	index     map[string]int
}

func newSeries(capacity int) *Series {
	return &Series{
		Snapshots: make([]Snapshot, 0, capacity),
		index:     make(map[string]int, capacity),
	}
}

// add records a snapshot; a repeated key overwrites the earlier entry in place.
func (s *Series) add(snap Snapshot) {
	if i, ok := s.index[snap.Key()]; ok {
		s.Snapshots[i] = snap
		return
	}
	s.index[snap.Key()] = len(s.Snapshots)
	s.Snapshots = append(s.Snapshots, snap)
}

func (s *Series) Len() int { return len(s.Snapshots) }

// Get returns the snapshot for a mm-YYYY key.
func (s *Series) Get(key string) (Snapshot, bool) {
	i, ok := s.index[key]
	if !ok {
		return Snapshot{}, false
	}
	return s.Snapshots[i], true
}

// Keys returns the month keys in chronological order.
func (s *Series) Keys() []string {
	keys := make([]string, len(s.Snapshots))
	for i, snap := range s.Snapshots {
		keys[i] = snap.Key()
	}
	return keys
}

// FirstAchieved returns the first month whose goal is reached, if any.
func (s *Series) FirstAchieved() (Snapshot, bool) {
	for _, snap := range s.Snapshots {
		if snap.GoalAchieved {
			return snap, true
		}
	}
	return Snapshot{}, false
}
