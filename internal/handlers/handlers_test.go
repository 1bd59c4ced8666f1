package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"investwise-api/internal/advisor"
	"investwise-api/internal/models"
	"investwise-api/internal/services"
	"investwise-api/internal/store"
)

func newTestApp(t *testing.T, opts AppOptions) *fiber.App {
	t.Helper()
	records, err := store.NewRecords(store.NewMemoryBackend(), 0, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewRecords: %v", err)
	}
	t.Cleanup(func() { records.Close() })
	svc := services.NewAdvisoryService(advisor.NewEngine(advisor.DefaultCatalog()), records, zerolog.Nop())
	return NewApp(svc, opts, zerolog.Nop())
}

func do(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	data, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return resp, data
}

func decode(t *testing.T, data []byte, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("decoding %s: %v", data, err)
	}
}

var samplePayload = map[string]interface{}{
	"name":                  "Rajesh Sharma",
	"age":                   28,
	"occupation":            "Software Engineer",
	"income":                800000,
	"current_savings":       150000,
	"investment_experience": "intermediate",
	"risk_tolerance":        "moderate",
	"financial_goals":       []string{"wealth", "tax"},
	"investment_timeline":   "5-10 years",
}

func TestFullAdvisoryFlow(t *testing.T) {
	app := newTestApp(t, AppOptions{})

	resp, body := do(t, app, http.MethodPost, "/api/user-profile", samplePayload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create status %d: %s", resp.StatusCode, body)
	}
	var created models.CreateProfileResponse
	decode(t, body, &created)
	if created.UserID == "" {
		t.Fatal("empty user id")
	}

	resp, body = do(t, app, http.MethodPost, "/api/risk-assessment?user_id="+created.UserID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("assess status %d: %s", resp.StatusCode, body)
	}
	var assessment models.BehavioralAssessment
	decode(t, body, &assessment)
	if assessment.RiskScore < 1 || assessment.RiskScore > 10 {
		t.Errorf("risk_score = %d", assessment.RiskScore)
	}
	switch assessment.InvestmentPersonality {
	case "Wealth Creator", "Tax-Efficient Investor", "Goal-Based Investor":
	default:
		t.Errorf("investment_personality = %q", assessment.InvestmentPersonality)
	}

	resp, body = do(t, app, http.MethodPost, "/api/investment-recommendations?user_id="+created.UserID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("recommend status %d: %s", resp.StatusCode, body)
	}
	var rec models.Recommendation
	decode(t, body, &rec)
	if rec.PortfolioAllocation.Total() != 100 {
		t.Errorf("allocation sums to %d", rec.PortfolioAllocation.Total())
	}
	for _, f := range rec.MutualFunds {
		if f.Name == "" || f.Rating < 3 || f.Returns3Y < 5 || f.Returns3Y > 35 ||
			f.AUM <= 1000 || f.ExpenseRatio < 0.1 || f.ExpenseRatio > 3 || f.FundManager == "" || f.MonthlySIP < 500 {
			t.Errorf("fund out of range: %+v", f)
		}
	}
	if rec.SIPRecommendation.TotalMonthlySIP != 13333 || len(rec.SIPRecommendation.FundWiseSIP) == 0 {
		t.Errorf("sip_recommendation = %+v", rec.SIPRecommendation)
	}

	resp, body = do(t, app, http.MethodGet, "/api/user/"+created.UserID+"/dashboard", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard status %d: %s", resp.StatusCode, body)
	}
	var raw map[string]json.RawMessage
	decode(t, body, &raw)
	for _, key := range []string{"user_profile", "risk_assessment", "recommendations"} {
		if v, ok := raw[key]; !ok || string(v) == "null" {
			t.Errorf("dashboard missing %s", key)
		}
	}
}

func TestDashboard_NullSnapshots(t *testing.T) {
	app := newTestApp(t, AppOptions{})

	_, body := do(t, app, http.MethodPost, "/api/user-profile", samplePayload)
	var created models.CreateProfileResponse
	decode(t, body, &created)

	resp, body := do(t, app, http.MethodGet, "/api/user/"+created.UserID+"/dashboard", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var raw map[string]json.RawMessage
	decode(t, body, &raw)
	if string(raw["risk_assessment"]) != "null" || string(raw["recommendations"]) != "null" {
		t.Errorf("expected null snapshots: %s", body)
	}
}

func TestNotFound(t *testing.T) {
	app := newTestApp(t, AppOptions{})
	tests := []struct {
		method, path string
	}{
		{http.MethodPost, "/api/risk-assessment?user_id=invalid_user_id"},
		{http.MethodPost, "/api/investment-recommendations?user_id=invalid_user_id"},
		{http.MethodGet, "/api/user/invalid_user_id/dashboard"},
	}
	for _, tt := range tests {
		resp, body := do(t, app, tt.method, tt.path, nil)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s %s = %d, want 404", tt.method, tt.path, resp.StatusCode)
			continue
		}
		var errResp models.ErrorResponse
		decode(t, body, &errResp)
		if errResp.Code != http.StatusNotFound || errResp.Error == "" {
			t.Errorf("error body = %+v", errResp)
		}
	}
}

func TestRecommendBeforeAssessIsNotFound(t *testing.T) {
	app := newTestApp(t, AppOptions{})
	_, body := do(t, app, http.MethodPost, "/api/user-profile", samplePayload)
	var created models.CreateProfileResponse
	decode(t, body, &created)

	resp, _ := do(t, app, http.MethodPost, "/api/investment-recommendations?user_id="+created.UserID, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestBadRequests(t *testing.T) {
	app := newTestApp(t, AppOptions{})

	bad := map[string]interface{}{}
	for k, v := range samplePayload {
		bad[k] = v
	}
	bad["age"] = -3
	resp, body := do(t, app, http.MethodPost, "/api/user-profile", bad)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("negative age status = %d: %s", resp.StatusCode, body)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/user-profile", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	r, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if r.StatusCode != http.StatusBadRequest {
		t.Errorf("malformed body status = %d", r.StatusCode)
	}

	resp, _ = do(t, app, http.MethodPost, "/api/risk-assessment", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing user_id status = %d", resp.StatusCode)
	}
}

func TestStaticEndpoints(t *testing.T) {
	app := newTestApp(t, AppOptions{})

	for _, path := range []string{"/", "/api/health", "/api/health/ready", "/api/funds", "/api/quotes", "/api/market-insights"} {
		resp, body := do(t, app, http.MethodGet, path, nil)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s = %d: %s", path, resp.StatusCode, body)
		}
	}

	_, body := do(t, app, http.MethodGet, "/api/health", nil)
	var health map[string]interface{}
	decode(t, body, &health)
	if health["status"] != "healthy" {
		t.Errorf("health = %v", health)
	}

	_, body = do(t, app, http.MethodGet, "/api/funds", nil)
	var funds map[models.Category][]models.FundRecord
	decode(t, body, &funds)
	if len(funds[models.LargeCap]) == 0 {
		t.Errorf("funds = %v", funds)
	}
}

func TestRequestIDHeader(t *testing.T) {
	app := newTestApp(t, AppOptions{})
	resp, _ := do(t, app, http.MethodGet, "/api/health", nil)
	if resp.Header.Get(fiber.HeaderXRequestID) == "" {
		t.Error("missing request id header")
	}
}

func TestRateLimit(t *testing.T) {
	app := newTestApp(t, AppOptions{RateLimitMax: 2})
	for i := 0; i < 2; i++ {
		if resp, _ := do(t, app, http.MethodGet, "/api/quotes", nil); resp.StatusCode != http.StatusOK {
			t.Fatalf("request %d status = %d", i, resp.StatusCode)
		}
	}
	if resp, _ := do(t, app, http.MethodGet, "/api/quotes", nil); resp.StatusCode != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", resp.StatusCode)
	}
}
