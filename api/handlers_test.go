/*
handlers_test.go - Tests for the HTTP boundary

Tests for:
- POST /simulate success and error bodies
- Ordering of the "data" object
- Validation (422) and date format (400) responses
- CORS preflight
*/
package api_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/goal-engine/api"
)

// =============================================================================
// TEST SETUP
// =============================================================================

var testOrigins = []string{"http://localhost:3000"}

func newTestServer(t *testing.T, maxHorizon int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(api.NewRouter(api.NewHandler(maxHorizon), testOrigins))
	t.Cleanup(srv.Close)
	return srv
}

const zeroRateBody = `{
	"goal": 12000.00,
	"time": 12,
	"time_unit": "months",
	"monthly_investment": 1000.00,
	"extra_income": 0.00,
	"return_rate": 0.00,
	"start_date": "01-2025",
	"initial_value": 0.00
}`

func post(t *testing.T, srv *httptest.Server, path, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

type simulateBody struct {
	Data  map[string]api.SnapshotDTO `json:"data"`
	Error string                     `json:"error"`
}

func decodeSimulate(t *testing.T, raw []byte) simulateBody {
	t.Helper()
	var body simulateBody
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

// =============================================================================
// SUCCESS TESTS
// =============================================================================

func TestSimulate_ZeroRateScenario(t *testing.T) {
	// GIVEN: 1000/month for 12 months at 0% against a 12000 goal
	// WHEN: Posting to /simulate
	// THEN: 12 months come back, the goal flips to "Y" in 12-2025 only

	srv := newTestServer(t, 1200)
	resp, raw := post(t, srv, "/simulate", zeroRateBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	body := decodeSimulate(t, raw)
	require.Len(t, body.Data, 12)

	assert.Equal(t, 1000.0, body.Data["01-2025"].CurrentValue)
	assert.Equal(t, 0.0, body.Data["01-2025"].CurrentExtraValue)
	assert.Equal(t, api.NotAchieved, body.Data["01-2025"].GoalAchieved)
	assert.Equal(t, 12000.0, body.Data["01-2025"].AdjustedGoal)

	assert.Equal(t, 12000.0, body.Data["12-2025"].CurrentValue)
	assert.Equal(t, api.Achieved, body.Data["12-2025"].GoalAchieved)
	assert.Equal(t, api.NotAchieved, body.Data["11-2025"].GoalAchieved)
}

func TestSimulate_DataKeysInChronologicalOrder(t *testing.T) {
	srv := newTestServer(t, 1200)
	body := strings.Replace(zeroRateBody, `"01-2025"`, `"11-2025"`, 1)

	resp, raw := post(t, srv, "/api/simulate", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	months := []string{"11-2025", "12-2025", "01-2026", "02-2026", "10-2026"}
	last := -1
	for _, m := range months {
		i := bytes.Index(raw, []byte(`"`+m+`"`))
		require.GreaterOrEqual(t, i, 0, "missing %s", m)
		assert.Greater(t, i, last, "%s out of order", m)
		last = i
	}
}

func TestSimulate_StringDecimalsAndSchedules(t *testing.T) {
	// GIVEN: Amounts sent as strings, a one-digit month key and a sticky change
	// WHEN: Posting
	// THEN: Keys are canonicalized and both schedules apply

	srv := newTestServer(t, 1200)
	body := `{
		"goal": "5000",
		"time": 4,
		"time_unit": "months",
		"monthly_investment": "100",
		"extra_income": "50.5",
		"return_rate": "0",
		"start_date": "01-2025",
		"one_time_investments": {"2-2025": "1000"},
		"monthly_investment_changes": {"03-2025": 300}
	}`

	resp, raw := post(t, srv, "/simulate", body)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	data := decodeSimulate(t, raw).Data
	assert.Equal(t, 100.0, data["01-2025"].CurrentValue)
	assert.Equal(t, 1200.0, data["02-2025"].CurrentValue)
	assert.Equal(t, 1500.0, data["03-2025"].CurrentValue)
	assert.Equal(t, 1800.0, data["04-2025"].CurrentValue)
	assert.Equal(t, 1202.0, data["04-2025"].CurrentExtraValue)
}

func TestSimulate_YearsUnit(t *testing.T) {
	srv := newTestServer(t, 1200)
	body := strings.Replace(zeroRateBody, `"time": 12,`, `"time": 2,`, 1)
	body = strings.Replace(body, `"months"`, `"years"`, 1)

	resp, raw := post(t, srv, "/simulate", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeSimulate(t, raw).Data, 24)
}

func TestSimulate_NegativeHorizon_EmptyData(t *testing.T) {
	srv := newTestServer(t, 1200)
	body := strings.Replace(zeroRateBody, `"time": 12,`, `"time": -3,`, 1)

	resp, raw := post(t, srv, "/simulate", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"data": {}}`, string(raw))
}

// =============================================================================
// ERROR TESTS
// =============================================================================

func TestSimulate_InvalidStartDate(t *testing.T) {
	// GIVEN: start_date in YYYY-mm order
	// WHEN: Posting
	// THEN: 400 with only the error message, no data

	srv := newTestServer(t, 1200)
	body := strings.Replace(zeroRateBody, `"01-2025"`, `"2025-01"`, 1)

	resp, raw := post(t, srv, "/simulate", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error": "Invalid date format. Use 'mm-YYYY'."}`, string(raw))
}

func TestSimulate_MalformedJSON(t *testing.T) {
	srv := newTestServer(t, 1200)

	resp, raw := post(t, srv, "/simulate", `{"goal": `)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp api.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "Invalid request body", errResp.Error)
}

func TestSimulate_MissingFields(t *testing.T) {
	srv := newTestServer(t, 1200)

	resp, raw := post(t, srv, "/simulate", `{"goal": 100}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var errResp struct {
		Error   string           `json:"error"`
		Code    string           `json:"code"`
		Details []api.FieldError `json:"details"`
	}
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "validation_failed", errResp.Code)

	var fields []string
	for _, d := range errResp.Details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{
		"monthly_investment", "extra_income", "return_rate", "start_date", "time",
	}, fields)
}

func TestSimulate_HorizonAboveLimit(t *testing.T) {
	srv := newTestServer(t, 120)
	body := strings.Replace(zeroRateBody, `"time": 12,`, `"time": 11,`, 1)
	body = strings.Replace(body, `"months"`, `"years"`, 1)

	resp, raw := post(t, srv, "/simulate", body)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(raw), "exceeds the limit of 120")
}

func TestSimulate_BadScheduleKey(t *testing.T) {
	srv := newTestServer(t, 1200)
	body := strings.Replace(zeroRateBody, `"initial_value": 0.00`,
		`"initial_value": 0.00, "one_time_investments": {"2025-02": 10}`, 1)

	resp, raw := post(t, srv, "/simulate", body)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(raw), "one_time_investments.2025-02")
}

func TestSimulate_RateBelowMinusOne(t *testing.T) {
	srv := newTestServer(t, 1200)
	body := strings.Replace(zeroRateBody, `"return_rate": 0.00`, `"return_rate": -2`, 1)

	resp, raw := post(t, srv, "/simulate", body)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(raw), "return_rate")
}

// =============================================================================
// ROUTER TESTS
// =============================================================================

func TestHealth(t *testing.T) {
	srv := newTestServer(t, 1200)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var health api.HealthDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health.Status)
}

func TestCORS_Preflight(t *testing.T) {
	router := api.NewRouter(api.NewHandler(1200), testOrigins)

	req := httptest.NewRequest(http.MethodOptions, "/simulate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_UnknownOrigin(t *testing.T) {
	router := api.NewRouter(api.NewHandler(1200), testOrigins)

	req := httptest.NewRequest(http.MethodPost, "/simulate", strings.NewReader(zeroRateBody))
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
