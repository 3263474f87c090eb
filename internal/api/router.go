package api

import (
	"net/http"

	"etruck-route-service/internal/api/handlers"
	"etruck-route-service/internal/ports"
	"etruck-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	planner *services.Planner,
	trucks ports.TruckDirectory,
	stations ports.StationDirectory,
) http.Handler {
	mux := http.NewServeMux()

	truckHandler := &handlers.TruckHandler{Directory: trucks}
	stationHandler := &handlers.StationHandler{Directory: stations}
	routeHandler := &handlers.RouteHandler{Planner: planner}
	fleetHandler := &handlers.FleetHandler{Planner: planner}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/trucks", truckHandler.List)
	mux.HandleFunc("/stations", stationHandler.List)
	mux.HandleFunc("/stations/{id}", stationHandler.GetByID)
	mux.HandleFunc("/routes/plan", routeHandler.Plan)
	mux.HandleFunc("/fleet/plan", fleetHandler.Plan)

	return loggingMiddleware(mux)
}
