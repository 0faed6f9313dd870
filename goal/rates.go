package goal

import (
	"github.com/shopspring/decimal"
)

// WorkingScale is the number of decimal places carried by every running
// accumulator between months. Only reported figures are rounded to cents.
const WorkingScale int32 = 28

const monthsPerYear = 12

var (
	one        = decimal.NewFromInt(1)
	oneTwelfth = one.DivRound(decimal.NewFromInt(monthsPerYear), WorkingScale+8)
)

// MonthlyRate converts an annual rate into the equivalent monthly compounding
// rate: (1 + annual)^(1/12) - 1.
//
// A zero rate converts to exactly zero. Rates below -1 have no real root and
// return ErrInvalidRate.
func MonthlyRate(annual decimal.Decimal) (decimal.Decimal, error) {
	if annual.IsZero() {
		return decimal.Zero, nil
	}

	base := one.Add(annual)
	switch {
	case base.IsNegative():
		return decimal.Zero, ErrInvalidRate
	case base.IsZero():
		return one.Neg(), nil
	}

	root, err := base.PowWithPrecision(oneTwelfth, WorkingScale+4)
	if err != nil {
		return decimal.Zero, err
	}
	return root.Sub(one).Round(WorkingScale), nil
}

// monthlyFactor returns 1 + MonthlyRate(annual), wrapping failures with the
// rate's name for the caller.
func monthlyFactor(name string, annual decimal.Decimal) (decimal.Decimal, error) {
	rate, err := MonthlyRate(annual)
	if err != nil {
		return decimal.Zero, &RateError{Name: name, Value: annual.String(), Err: unwrapRate(err)}
	}
	return one.Add(rate), nil
}

// unwrapRate drops the sentinel so RateError does not print it twice.
func unwrapRate(err error) error {
	if err == ErrInvalidRate {
		return nil
	}
	return err
}

// RoundCents rounds half away from zero to two decimal places, the usual
// currency display convention (half-up for positive amounts).
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
