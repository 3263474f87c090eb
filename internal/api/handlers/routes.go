package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"etruck-route-service/internal/api/dto"
	"etruck-route-service/internal/domain"
	"etruck-route-service/internal/services"
)

type RouteHandler struct {
	Planner *services.Planner
}

// Plan computes a segmented, compliance-checked plan for a single route.
func (h *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRouteRequest

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

	if msg := validateRouteRequest(&req); msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	plan, err := h.Planner.PlanRoute(r.Context(), toRouteRequest(req))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownTruckModel) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrProviderUnavailable) {
			log.Printf("plan route failed: %v", err)
			writeError(w, r, http.StatusBadGateway, "routing provider unavailable")
			return
		}
		log.Printf("plan route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toRoutePlanResponse(plan))
}

func toRouteRequest(req dto.PlanRouteRequest) domain.RouteRequest {
	return domain.RouteRequest{
		RouteName:         strings.TrimSpace(req.RouteName),
		Start:             fromCoordinates(req.Start),
		End:               fromCoordinates(req.End),
		TruckModel:        strings.TrimSpace(req.TruckModel),
		StartingChargeKWh: req.StartingChargeKWh,
	}
}

// validateRouteRequest returns an error message, or "" when the request is
// well-formed.
func validateRouteRequest(req *dto.PlanRouteRequest) string {
	if strings.TrimSpace(req.TruckModel) == "" {
		return "truck_model is required"
	}
	if msg := validateCoordinates("start", req.Start); msg != "" {
		return msg
	}
	if msg := validateCoordinates("end", req.End); msg != "" {
		return msg
	}
	if req.Start == req.End {
		return "start and end must differ"
	}
	if req.StartingChargeKWh < 0 {
		return "starting_charge_kwh must not be negative"
	}
	return ""
}

func validateCoordinates(field string, c dto.Coordinates) string {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Sprintf("%s.lat must be between -90 and 90", field)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Sprintf("%s.lon must be between -180 and 180", field)
	}
	return ""
}
