/*
projection.go - Month-by-month goal projection

PURPOSE:
  Simulates two portfolios side by side from the same starting balance:
  - value:          grows by the recurring contribution
  - valueWithExtra: grows by the extra income stream
  Both receive the same one-time investments and the same monthly return.

KEY INSIGHT:
  The running accumulators are never rounded to cents. Rounding happens only
  on the copy written into each Snapshot, so hundreds of compounding steps do
  not drift. The goal comparison uses the rounded figures, which is what a
  user reading the table sees.

CONTRIBUTION SCHEDULE:
  MonthlyInvestmentChanges:
    Sticky. A change keyed "10-2025" applies to October 2025 and every month
    after it until another change matches.

  OneTimeInvestments:
    Local. A lump sum keyed "07-2025" is added once, in July 2025, to both
    series.

INFLATION:
  The first month compares against the nominal goal. Every later month the
  goal is compounded by the monthly inflation rate.

EXAMPLE:
  12 months of 1000 at 0% against a 12000 goal:
    01-2025  1000.00  N
    ...
    12-2025 12000.00  Y

SEE ALSO:
  - types.go: Request, Snapshot, Series
  - rates.go: MonthlyRate and rounding
*/
package goal

import (
	"github.com/shopspring/decimal"
)

// Project runs the simulation. The only input errors are a start date that is
// not mm-YYYY and a rate below -100%; neither yields a partial series.
func Project(req Request) (*Series, error) {
	start, err := ParseMonth(req.StartDate)
	if err != nil {
		return nil, err
	}

	growth, err := monthlyFactor("return_rate", req.AnnualReturnRate)
	if err != nil {
		return nil, err
	}
	inflation, err := monthlyFactor("inflation_rate", req.InflationRate)
	if err != nil {
		return nil, err
	}

	horizon := req.Horizon
	if horizon < 0 {
		horizon = 0
	}
	series := newSeries(horizon)

	var (
		value             = req.InitialValue
		valueWithExtra    = req.InitialValue
		currentInvestment = req.MonthlyInvestment
		adjustedGoal      = req.Goal
	)

	for i := 0; i < horizon; i++ {
		month := start.AddMonths(i)
		key := month.Key()

		if change, ok := req.MonthlyInvestmentChanges[key]; ok {
			currentInvestment = change
		}
		punctual, ok := req.OneTimeInvestments[key]
		if !ok {
			punctual = decimal.Zero
		}

		value = value.Mul(growth).Add(currentInvestment).Add(punctual).Round(WorkingScale)
		valueWithExtra = valueWithExtra.Mul(growth).Add(req.ExtraIncome).Add(punctual).Round(WorkingScale)

		if i > 0 {
			adjustedGoal = adjustedGoal.Mul(inflation).Round(WorkingScale)
		}

		valueQ := RoundCents(value)
		extraQ := RoundCents(valueWithExtra)
		goalQ := RoundCents(adjustedGoal)

		series.add(Snapshot{
			Month:             month,
			CurrentValue:      valueQ,
			CurrentExtraValue: extraQ,
			AdjustedGoal:      goalQ,
			GoalAchieved:      valueQ.Add(extraQ).GreaterThanOrEqual(goalQ),
		})
	}

	return series, nil
}
