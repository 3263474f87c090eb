package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"etruck-route-service/internal/api/dto"
	"etruck-route-service/internal/domain"
)

type stubStationDirectory struct {
	stations []domain.ChargingStation
}

func (s *stubStationDirectory) ListStations(ctx context.Context) ([]domain.ChargingStation, error) {
	return s.stations, nil
}

func stationFixture() *stubStationDirectory {
	return &stubStationDirectory{stations: []domain.ChargingStation{
		{StationID: 1, Country: "DE", TruckSuitable: true, OperatorName: "Ionity", MaxPowerKW: 350, PricePerKWh: 0.59},
		{StationID: 2, Country: "NL", TruckSuitable: false, OperatorName: "Allego", MaxPowerKW: 150, PricePerKWh: 0.52},
		{StationID: 3, Country: "DE", TruckSuitable: true, OperatorName: "EnBW", MaxPowerKW: 400, PricePerKWh: 0.55},
	}}
}

func TestStationListFilters(t *testing.T) {
	h := &StationHandler{Directory: stationFixture()}

	req := httptest.NewRequest(http.MethodGet, "/stations?truck_suitable_only=true&limit=1", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var res dto.ListStationsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Stations) != 1 {
		t.Fatalf("stations = %d, want 1", len(res.Stations))
	}
	if res.Stations[0].StationID != 1 {
		t.Fatalf("first suitable station = %d, want 1", res.Stations[0].StationID)
	}
}

func TestStationListBadQuery(t *testing.T) {
	h := &StationHandler{Directory: stationFixture()}

	req := httptest.NewRequest(http.MethodGet, "/stations?limit=zero", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestStationGetByID(t *testing.T) {
	h := &StationHandler{Directory: stationFixture()}

	req := httptest.NewRequest(http.MethodGet, "/stations/3", nil)
	req.SetPathValue("id", "3")
	rec := httptest.NewRecorder()

	h.GetByID(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var res dto.StationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.StationID != 3 || res.OperatorName != "EnBW" {
		t.Fatalf("unexpected station: %+v", res)
	}
}

func TestStationGetByIDNotFound(t *testing.T) {
	h := &StationHandler{Directory: stationFixture()}

	req := httptest.NewRequest(http.MethodGet, "/stations/99", nil)
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()

	h.GetByID(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
