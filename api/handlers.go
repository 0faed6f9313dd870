/*
handlers.go - HTTP API handlers for the goal projection service

PURPOSE:
  Exposes the projection engine via REST API. Handles HTTP request/response,
  JSON serialization, and delegates the numbers to the goal package.

ENDPOINTS:
  POST   /simulate          Run a projection (path kept for existing frontends)
  POST   /api/simulate      Same handler
  POST   /api/py/simulate   Same handler
  GET    /api/health        Liveness probe

  Scenarios (scenarios.go):
    GET    /api/scenarios                List preset plans
    GET    /api/scenarios/{id}           Get one preset
    POST   /api/scenarios/{id}/simulate  Run a preset

REQUEST FLOW:
  1. Decode JSON body (decimals parsed from their literal text)
  2. Validate fields, cap the horizon, canonicalize month keys
  3. goal.Project
  4. Serialize the ordered series under "data"

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Body is not JSON, or start_date is not mm-YYYY
  - 404: Unknown scenario
  - 422: Missing fields, out-of-range rates or horizon, bad month keys
  - 500: Anything the engine did not expect

  The start date error body is exactly {"error": "Invalid date format. Use 'mm-YYYY'."}
  because frontends match on it.

SEE ALSO:
  - dto.go: Request/response data structures
  - validate.go: Request validation
  - server.go: Router setup and middleware
*/
package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/warp/goal-engine/goal"
)

// InvalidDateMessage is the error text for a start date that is not mm-YYYY.
const InvalidDateMessage = "Invalid date format. Use 'mm-YYYY'."

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	// MaxHorizonMonths caps how many months one request may simulate.
	MaxHorizonMonths int
}

// NewHandler creates a new handler.
func NewHandler(maxHorizonMonths int) *Handler {
	return &Handler{MaxHorizonMonths: maxHorizonMonths}
}

// =============================================================================
// SIMULATION HANDLERS
// =============================================================================

// Simulate runs one goal projection.
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.Run(req)
	if err != nil {
		writeSimulateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Run validates and projects a request without HTTP in between. The CLI
// calls it directly.
func (h *Handler) Run(req SimulateRequest) (*SimulateResponse, error) {
	greq, err := req.ToGoalRequest(h.MaxHorizonMonths)
	if err != nil {
		return nil, err
	}

	series, err := goal.Project(greq)
	if err != nil {
		return nil, err
	}

	return &SimulateResponse{Data: toSeriesDTO(series)}, nil
}

func writeSimulateError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	switch {
	case errors.Is(err, goal.ErrInvalidDateFormat):
		writeError(w, http.StatusBadRequest, InvalidDateMessage, nil)
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "Validation failed",
			Code:    "validation_failed",
			Details: verr.Fields,
		})
	case goal.IsClientError(err):
		writeError(w, http.StatusUnprocessableEntity, "Invalid simulation parameters", err)
	default:
		log.Printf("simulate: %v", err)
		writeError(w, http.StatusInternalServerError, "Simulation failed", err)
	}
}

// Health reports that the process is serving.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthDTO{Status: "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
