package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"etruck-route-service/internal/api/dto"
	"etruck-route-service/internal/domain"
	"etruck-route-service/internal/services"
)

type FleetHandler struct {
	Planner *services.Planner
}

// Plan coordinates several routes at once, letting opposing routes exchange
// drivers at shared charging stations.
func (h *FleetHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanFleetRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if len(req.Routes) == 0 {
		writeError(w, r, http.StatusBadRequest, "routes must not be empty")
		return
	}
	if len(req.Routes) > 10 {
		writeError(w, r, http.StatusBadRequest, "at most 10 routes per fleet request")
		return
	}

	reqs := make([]domain.RouteRequest, 0, len(req.Routes))
	for i := range req.Routes {
		if msg := validateRouteRequest(&req.Routes[i]); msg != "" {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("routes[%d]: %s", i, msg))
			return
		}
		reqs = append(reqs, toRouteRequest(req.Routes[i]))
	}

	fleet, err := h.Planner.PlanFleet(r.Context(), reqs)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownTruckModel) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrProviderUnavailable) {
			log.Printf("plan fleet failed: %v", err)
			writeError(w, r, http.StatusBadGateway, "routing provider unavailable")
			return
		}
		log.Printf("plan fleet failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toFleetPlanResponse(fleet))
}

func toFleetPlanResponse(f *domain.FleetPlan) dto.FleetPlanResponse {
	routes := make([]dto.RoutePlanResponse, 0, len(f.Routes))
	for _, p := range f.Routes {
		routes = append(routes, toRoutePlanResponse(p))
	}

	drivers := make([]dto.DriverResponse, 0, len(f.Drivers))
	for _, d := range f.Drivers {
		if resp := toDriverResponse(d); resp != nil {
			drivers = append(drivers, *resp)
		}
	}

	swaps := make([]dto.SwapResponse, 0, len(f.Swaps))
	for _, s := range f.Swaps {
		swaps = append(swaps, toSwapResponse(s))
	}

	iterations := make([]dto.HopRecordResponse, 0, len(f.Iterations))
	for _, h := range f.Iterations {
		iterations = append(iterations, dto.HopRecordResponse{
			Round:       h.Round,
			RouteIndex:  h.RouteIndex,
			Start:       toCoordinates(h.Start),
			End:         toCoordinates(h.End),
			DistanceKm:  h.DistanceKm,
			DurationMin: h.DurationMin,
			CostEUR:     h.CostEUR,
		})
	}

	return dto.FleetPlanResponse{
		Routes:          routes,
		Drivers:         drivers,
		Swaps:           swaps,
		Iterations:      iterations,
		Rounds:          f.Rounds,
		TotalDistanceKm: f.TotalDistanceKm,
		TotalCostEUR:    f.TotalCostEUR,
		Message:         f.Message,
	}
}
