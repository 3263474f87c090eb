package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"etruck-route-service/internal/adapters/routing"
	"etruck-route-service/internal/api/dto"
	"etruck-route-service/internal/domain"
	"etruck-route-service/internal/services"
)

func newTestPlanner() *services.Planner {
	provider := routing.NewMockRouteProvider(nil)
	provider.Synthesize = true

	trucks := map[string]domain.TruckProfile{
		"eActros 600": {Model: "eActros 600", BatteryCapacity: 400, Consumption: 1.0, RangeKm: 400},
	}
	return services.NewPlanner(services.DefaultPlanningConfig(), provider, trucks, nil)
}

func TestRoutePlanHappyPath(t *testing.T) {
	h := &RouteHandler{Planner: newTestPlanner()}

	body := `{
		"route_name": "short haul",
		"start": {"lat": 0, "lon": 0},
		"end": {"lat": 0, "lon": 2},
		"truck_model": "eActros 600"
	}`
	req := httptest.NewRequest(http.MethodPost, "/routes/plan", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Plan(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res dto.RoutePlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !res.Feasible {
		t.Fatalf("plan infeasible: %s", res.Message)
	}
	if len(res.Segments) != 1 {
		t.Fatalf("segments = %d, want 1", len(res.Segments))
	}
	if res.Driver == nil || res.Driver.DriverID == "" {
		t.Fatal("expected a driver on the plan")
	}
}

func TestRoutePlanValidation(t *testing.T) {
	h := &RouteHandler{Planner: newTestPlanner()}

	cases := []struct {
		name string
		body string
	}{
		{"missing model", `{"start": {"lat": 0, "lon": 0}, "end": {"lat": 0, "lon": 2}}`},
		{"bad latitude", `{"truck_model": "eActros 600", "start": {"lat": 91, "lon": 0}, "end": {"lat": 0, "lon": 2}}`},
		{"same endpoints", `{"truck_model": "eActros 600", "start": {"lat": 0, "lon": 1}, "end": {"lat": 0, "lon": 1}}`},
		{"unknown field", `{"truck_model": "eActros 600", "start": {"lat": 0, "lon": 0}, "end": {"lat": 0, "lon": 2}, "cargo": 5}`},
		{"unknown model", `{"truck_model": "HoverTruck 9000", "start": {"lat": 0, "lon": 0}, "end": {"lat": 0, "lon": 2}}`},
		{"two objects", `{"truck_model": "eActros 600", "start": {"lat": 0, "lon": 0}, "end": {"lat": 0, "lon": 2}}{}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/routes/plan", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			h.Plan(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRoutePlanMethodNotAllowed(t *testing.T) {
	h := &RouteHandler{Planner: newTestPlanner()}

	req := httptest.NewRequest(http.MethodGet, "/routes/plan", nil)
	rec := httptest.NewRecorder()

	h.Plan(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
