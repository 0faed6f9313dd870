// Package plan loads goal simulation plans from TOML files.
//
// A plan uses the same field names as the HTTP body:
//
//	name = "House deposit"
//	goal = 60000
//	time = 5
//	time_unit = "years"
//	monthly_investment = 800
//	extra_income = 150
//	return_rate = "0.07"
//	start_date = "01-2026"
//
//	[one_time_investments]
//	"07-2026" = 2500
//
//	[monthly_investment_changes]
//	"01-2027" = 1000
//
// Amounts may be TOML numbers or strings. Strings are parsed as written;
// numbers are read back in their shortest decimal form.
package plan

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
	"github.com/warp/goal-engine/api"
)

// Amount is a decimal that can be written in TOML as a number or a string.
type Amount struct {
	decimal.Decimal
}

// UnmarshalTOML implements toml.Unmarshaler.
func (a *Amount) UnmarshalTOML(v any) error {
	var (
		d   decimal.Decimal
		err error
	)
	switch x := v.(type) {
	case int64:
		d = decimal.NewFromInt(x)
	case float64:
		d, err = decimal.NewFromString(strconv.FormatFloat(x, 'f', -1, 64))
	case string:
		d, err = decimal.NewFromString(strings.TrimSpace(x))
	default:
		return fmt.Errorf("amount: unsupported TOML type %T", v)
	}
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	a.Decimal = d
	return nil
}

func (a *Amount) ptr() *decimal.Decimal {
	if a == nil {
		return nil
	}
	d := a.Decimal
	return &d
}

// Plan is one savings goal scenario.
type Plan struct {
	Name              string  `toml:"name"`
	Goal              *Amount `toml:"goal"`
	Time              *int    `toml:"time"`
	TimeUnit          *string `toml:"time_unit"`
	MonthlyInvestment *Amount `toml:"monthly_investment"`
	ExtraIncome       *Amount `toml:"extra_income"`
	ReturnRate        *Amount `toml:"return_rate"`
	StartDate         *string `toml:"start_date"`
	InitialValue      *Amount `toml:"initial_value"`
	InflationRate     *Amount `toml:"inflation_rate"`

	OneTimeInvestments       map[string]Amount `toml:"one_time_investments"`
	MonthlyInvestmentChanges map[string]Amount `toml:"monthly_investment_changes"`
}

// ErrUnknownKeys is returned when a plan carries keys Plan does not define.
var ErrUnknownKeys = errors.New("unknown keys in plan")

// Load decodes a plan from TOML. Unknown keys are rejected so a typo does not
// silently fall back to a default.
func Load(r io.Reader) (*Plan, error) {
	var p Plan
	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
	}
	return &p, nil
}

// LoadFile decodes a plan from a TOML file.
func LoadFile(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Request converts the plan into the body the API validates.
func (p *Plan) Request() api.SimulateRequest {
	return api.SimulateRequest{
		Goal:                     p.Goal.ptr(),
		Time:                     p.Time,
		TimeUnit:                 p.TimeUnit,
		MonthlyInvestment:        p.MonthlyInvestment.ptr(),
		ExtraIncome:              p.ExtraIncome.ptr(),
		ReturnRate:               p.ReturnRate.ptr(),
		StartDate:                p.StartDate,
		InitialValue:             p.InitialValue.ptr(),
		InflationRate:            p.InflationRate.ptr(),
		OneTimeInvestments:       schedule(p.OneTimeInvestments),
		MonthlyInvestmentChanges: schedule(p.MonthlyInvestmentChanges),
	}
}

func schedule(in map[string]Amount) map[string]decimal.Decimal {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]decimal.Decimal, len(in))
	for k, v := range in {
		out[k] = v.Decimal
	}
	return out
}
