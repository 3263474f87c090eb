package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"etruck-route-service/internal/api/dto"
	"etruck-route-service/internal/ports"
)

// TruckHandler exposes read-only truck profile retrieval endpoints.
type TruckHandler struct {
	Directory ports.TruckDirectory
}

func (h *TruckHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	trucks, err := h.Directory.ListTrucks(r.Context())
	if err != nil {
		log.Printf("list trucks failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListTrucksResponse{
		Trucks: make([]dto.TruckResponse, 0, len(trucks)),
	}
	for _, t := range trucks {
		res.Trucks = append(res.Trucks, dto.TruckResponse{
			Manufacturer:       t.Manufacturer,
			Model:              t.Model,
			BatteryCapacityKWh: t.BatteryCapacity,
			ConsumptionKWhKm:   t.Consumption,
			RangeKm:            t.RangeKm,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// StationHandler exposes read-only charging station retrieval endpoints.
type StationHandler struct {
	Directory ports.StationDirectory
}

func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()

	suitableOnly := false
	if v := q.Get("truck_suitable_only"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "truck_suitable_only must be a boolean")
			return
		}
		suitableOnly = b
	}

	country := strings.ToUpper(strings.TrimSpace(q.Get("country")))

	limit := 0
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	stations, err := h.Directory.ListStations(r.Context())
	if err != nil {
		log.Printf("list stations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListStationsResponse{
		Stations: make([]dto.StationResponse, 0, len(stations)),
	}
	for _, s := range stations {
		if suitableOnly && !s.TruckSuitable {
			continue
		}
		if country != "" && !strings.EqualFold(s.Country, country) {
			continue
		}
		res.Stations = append(res.Stations, dto.StationResponse{
			StationID:     s.StationID,
			Country:       s.Country,
			Lat:           s.Location.Lat,
			Lon:           s.Location.Lon,
			TruckSuitable: s.TruckSuitable,
			OperatorName:  s.OperatorName,
			MaxPowerKW:    s.MaxPowerKW,
			PricePerKWh:   s.PricePerKWh,
		})
		if limit > 0 && len(res.Stations) == limit {
			break
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}

// GetByID returns a single charging station or 404.
func (h *StationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		writeError(w, r, http.StatusBadRequest, "station id must be a positive integer")
		return
	}

	stations, err := h.Directory.ListStations(r.Context())
	if err != nil {
		log.Printf("get station failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	for _, s := range stations {
		if s.StationID != id {
			continue
		}
		writeJSON(w, r, http.StatusOK, dto.StationResponse{
			StationID:     s.StationID,
			Country:       s.Country,
			Lat:           s.Location.Lat,
			Lon:           s.Location.Lon,
			TruckSuitable: s.TruckSuitable,
			OperatorName:  s.OperatorName,
			MaxPowerKW:    s.MaxPowerKW,
			PricePerKWh:   s.PricePerKWh,
		})
		return
	}

	writeError(w, r, http.StatusNotFound, "station not found")
}
