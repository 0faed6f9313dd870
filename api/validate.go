package api

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/warp/goal-engine/goal"
)

// ErrValidation is wrapped by every ValidationError.
var ErrValidation = errors.New("validation failed")

// FieldError describes one rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every problem found in a request body.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

var minRate = decimal.NewFromInt(-1)

// ToGoalRequest checks the body and builds the engine input.
//
// The start date is passed through untouched: the engine owns that check so
// its error message stays the same for every caller. maxHorizon <= 0 means
// no cap.
func (req SimulateRequest) ToGoalRequest(maxHorizon int) (goal.Request, error) {
	verr := &ValidationError{}

	required := func(field string, d *decimal.Decimal) decimal.Decimal {
		if d == nil {
			verr.add(field, "field required")
			return decimal.Zero
		}
		return *d
	}
	optional := func(d *decimal.Decimal) decimal.Decimal {
		if d == nil {
			return decimal.Zero
		}
		return *d
	}

	out := goal.Request{
		Goal:              required("goal", req.Goal),
		MonthlyInvestment: required("monthly_investment", req.MonthlyInvestment),
		ExtraIncome:       required("extra_income", req.ExtraIncome),
		AnnualReturnRate:  required("return_rate", req.ReturnRate),
		InitialValue:      optional(req.InitialValue),
		InflationRate:     optional(req.InflationRate),
	}

	if req.StartDate == nil {
		verr.add("start_date", "field required")
	} else {
		out.StartDate = *req.StartDate
	}

	switch {
	case req.Time == nil:
		verr.add("time", "field required")
	case req.TimeUnit == nil:
		verr.add("time_unit", "field required")
	default:
		out.Horizon = goal.HorizonMonths(*req.Time, goal.TimeUnit(*req.TimeUnit))
		if maxHorizon > 0 && out.Horizon > maxHorizon {
			verr.add("time", "horizon of %d months exceeds the limit of %d", out.Horizon, maxHorizon)
		}
	}

	if out.AnnualReturnRate.LessThan(minRate) {
		verr.add("return_rate", "must be at least -1")
	}
	if out.InflationRate.LessThan(minRate) {
		verr.add("inflation_rate", "must be at least -1")
	}

	out.OneTimeInvestments = canonicalSchedule(verr, "one_time_investments", req.OneTimeInvestments)
	out.MonthlyInvestmentChanges = canonicalSchedule(verr, "monthly_investment_changes", req.MonthlyInvestmentChanges)

	if len(verr.Fields) > 0 {
		return goal.Request{}, verr
	}
	return out, nil
}

// canonicalSchedule rewrites every key to mm-YYYY. Keys that do not parse,
// or that collapse onto the same month, are reported.
func canonicalSchedule(verr *ValidationError, field string, in map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(in))
	seen := make(map[string]string, len(in))
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, raw := range keys {
		amount := in[raw]
		key, err := goal.CanonicalKey(raw)
		if err != nil {
			verr.add(field+"."+raw, "invalid month, use %s", goal.KeyLayout)
			continue
		}
		if prev, dup := seen[key]; dup {
			verr.add(field+"."+raw, "same month as %q", prev)
			continue
		}
		seen[key] = raw
		out[key] = amount
	}
	return out
}
