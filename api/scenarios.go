/*
scenarios.go - Preset example plans for demos and frontend defaults

PURPOSE:
  Provides ready-made simulation requests so a frontend (or a curious user)
  can show a projection without filling in the form first. Nothing is
  stored; a scenario is just a SimulateRequest literal.

AVAILABLE SCENARIOS:
  short-term:        12 months, the form defaults (10% return, 4% inflation)
  house-deposit:     5 years with a bonus top-up and a raise
  no-inflation:      Same as short-term with inflation switched off
  retirement-pot:    30 years from an existing balance

USAGE VIA API:
  GET  /api/scenarios                 List scenarios
  GET  /api/scenarios/{id}            One scenario, including its request body
  POST /api/scenarios/{id}/simulate   Run it

ADDING NEW SCENARIOS:
  Append to 'scenarios' with an ID, name, description and request.

SEE ALSO:
  - handlers.go: Run
  - dto.go: SimulateRequest
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// ScenarioDTO represents a preset plan.
type ScenarioDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Request     SimulateRequest `json:"request"`
}

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "short-term",
		Name:        "Short Term",
		Description: "One year of monthly savings with the form defaults: 10% return, 4% inflation",
		Request: SimulateRequest{
			Goal:              dec("15000"),
			Time:              intPtr(12),
			TimeUnit:          strPtr("months"),
			MonthlyInvestment: dec("1000"),
			ExtraIncome:       dec("200"),
			ReturnRate:        dec("0.10"),
			StartDate:         strPtr("01-2026"),
			InflationRate:     dec("0.04"),
		},
	},
	{
		ID:          "house-deposit",
		Name:        "House Deposit",
		Description: "Five years with a yearly bonus in December and a raise after two years",
		Request: SimulateRequest{
			Goal:              dec("60000"),
			Time:              intPtr(5),
			TimeUnit:          strPtr("years"),
			MonthlyInvestment: dec("700"),
			ExtraIncome:       dec("150"),
			ReturnRate:        dec("0.07"),
			StartDate:         strPtr("01-2026"),
			InitialValue:      dec("5000"),
			InflationRate:     dec("0.04"),
			OneTimeInvestments: map[string]decimal.Decimal{
				"12-2026": decimal.RequireFromString("3000"),
				"12-2027": decimal.RequireFromString("3000"),
				"12-2028": decimal.RequireFromString("3000"),
			},
			MonthlyInvestmentChanges: map[string]decimal.Decimal{
				"01-2028": decimal.RequireFromString("900"),
			},
		},
	},
	{
		ID:          "no-inflation",
		Name:        "Ignore Inflation",
		Description: "Short term plan compared against the nominal goal",
		Request: SimulateRequest{
			Goal:              dec("15000"),
			Time:              intPtr(12),
			TimeUnit:          strPtr("months"),
			MonthlyInvestment: dec("1000"),
			ExtraIncome:       dec("200"),
			ReturnRate:        dec("0.10"),
			StartDate:         strPtr("01-2026"),
		},
	},
	{
		ID:          "retirement-pot",
		Name:        "Retirement Pot",
		Description: "Thirty years of contributions on top of an existing balance",
		Request: SimulateRequest{
			Goal:              dec("1000000"),
			Time:              intPtr(30),
			TimeUnit:          strPtr("years"),
			MonthlyInvestment: dec("800"),
			ExtraIncome:       dec("300"),
			ReturnRate:        dec("0.08"),
			StartDate:         strPtr("01-2026"),
			InitialValue:      dec("25000"),
			InflationRate:     dec("0.035"),
		},
	},
}

func findScenario(id string) (ScenarioDTO, bool) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return ScenarioDTO{}, false
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// GetScenario returns one scenario with its request body.
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	s, ok := findScenario(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Scenario not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// SimulateScenario runs a scenario's request.
func (h *Handler) SimulateScenario(w http.ResponseWriter, r *http.Request) {
	s, ok := findScenario(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Scenario not found", nil)
		return
	}

	resp, err := h.Run(s.Request)
	if err != nil {
		writeSimulateError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// HELPERS
// =============================================================================

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }
