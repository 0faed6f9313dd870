/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's types from the external contract, allowing:
  - snake_case field names the frontend already uses
  - "Y"/"N" for goal_achieved while the engine keeps a bool
  - Decimal parsing straight from the JSON literal

NAMING CONVENTION:
  - *Request: Request body types from clients
  - *DTO: Pieces of a response
  - *Response: Top-level response wrappers

DECIMALS:
  Monetary and rate fields are decimal.Decimal. They accept JSON numbers or
  strings ("0.12" and 0.12 both work) and are parsed from their text, so
  nothing passes through float64 on the way in. Figures go out as numbers
  after rounding to cents.

SEE ALSO:
  - validate.go: SimulateRequest -> goal.Request
  - handlers.go: Uses these types
*/
package api

import (
	"bytes"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/warp/goal-engine/goal"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// SimulateRequest is the body of POST /simulate. Pointer fields are required;
// a nil pointer means the client left the field out.
type SimulateRequest struct {
	Goal              *decimal.Decimal `json:"goal"`
	Time              *int             `json:"time"`
	TimeUnit          *string          `json:"time_unit"` // "months" or "years"
	MonthlyInvestment *decimal.Decimal `json:"monthly_investment"`
	ExtraIncome       *decimal.Decimal `json:"extra_income"`
	ReturnRate        *decimal.Decimal `json:"return_rate"` // annual, 0.12 = 12%
	StartDate         *string          `json:"start_date"`  // mm-YYYY

	InitialValue             *decimal.Decimal           `json:"initial_value,omitempty"`
	OneTimeInvestments       map[string]decimal.Decimal `json:"one_time_investments,omitempty"`
	MonthlyInvestmentChanges map[string]decimal.Decimal `json:"monthly_investment_changes,omitempty"`
	InflationRate            *decimal.Decimal           `json:"inflation_rate,omitempty"`
}

// SnapshotDTO is one month of the projection.
type SnapshotDTO struct {
	CurrentValue      float64 `json:"current_value"`
	CurrentExtraValue float64 `json:"current_extra_value"`
	GoalAchieved      string  `json:"goal_achieved"` // "Y" or "N"
	AdjustedGoal      float64 `json:"adjusted_goal"`
}

// MonthDTO pairs a month key with its snapshot.
type MonthDTO struct {
	Key      string
	Snapshot SnapshotDTO
}

// SeriesDTO marshals as a JSON object keyed by month, in chronological order.
type SeriesDTO []MonthDTO

// SimulateResponse is the successful response of POST /simulate.
type SimulateResponse struct {
	Data SeriesDTO `json:"data"`
}

// HealthDTO is the response of GET /api/health.
type HealthDTO struct {
	Status string `json:"status"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Goal achievement flags as the frontend expects them.
const (
	Achieved    = "Y"
	NotAchieved = "N"
)

// MarshalJSON writes the months as object members, keeping their order.
func (s SeriesDTO) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(m.Snapshot)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toSnapshotDTO(s goal.Snapshot) SnapshotDTO {
	flag := NotAchieved
	if s.GoalAchieved {
		flag = Achieved
	}
	return SnapshotDTO{
		CurrentValue:      s.CurrentValue.InexactFloat64(),
		CurrentExtraValue: s.CurrentExtraValue.InexactFloat64(),
		GoalAchieved:      flag,
		AdjustedGoal:      s.AdjustedGoal.InexactFloat64(),
	}
}

func toSeriesDTO(series *goal.Series) SeriesDTO {
	dtos := make(SeriesDTO, series.Len())
	for i, snap := range series.Snapshots {
		dtos[i] = MonthDTO{Key: snap.Key(), Snapshot: toSnapshotDTO(snap)}
	}
	return dtos
}
