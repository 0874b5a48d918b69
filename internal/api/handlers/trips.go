package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"drivecalc-service/internal/api/dto"
	"drivecalc-service/internal/domain"
	"drivecalc-service/internal/ports"
	"drivecalc-service/internal/services"

	"github.com/go-playground/validator/v10"
)

// TripHandler exposes the calculate action: it validates the form input,
// runs the cost pipeline and maps pipeline outcomes to HTTP statuses.
type TripHandler struct {
	Routes   ports.RouteProvider
	Tolls    ports.TollProvider
	Prices   ports.FuelPriceProvider
	Config   services.Config
	Validate *validator.Validate
}

// CalculateCost orchestrates route, toll and fuel lookups for one trip.
// Invalid input is rejected before any network call; routing failures map to
// 502 (no fallback data exists for routes); toll/price outages are absorbed
// by the pipeline and still return 200.
func (h *TripHandler) CalculateCost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.TripCostRequest

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

	if req.Origin.Name == "" || req.Destination.Name == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	vehicle, err := domain.ParseVehicleClass(req.Vehicle)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	fuel, err := domain.ParseFuelType(req.FuelType)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	passengers := req.Passengers
	if passengers == 0 {
		passengers = 1
	}

	stops := make([]domain.Place, 0, len(req.Stops))
	for _, s := range req.Stops {
		stops = append(stops, toPlace(s))
	}

	svcReq := services.TripCostRequest{
		Origin:      toPlace(req.Origin),
		Destination: toPlace(req.Destination),
		Stops:       stops,
		Vehicle:     vehicle,
		Fuel:        fuel,
		Modifiers: domain.TripModifiers{
			RoundTrip:  req.RoundTrip,
			Passengers: passengers,
		},
	}

	result, err := services.CalculateTripCost(r.Context(), svcReq, h.Routes, h.Tolls, h.Prices, h.Config)
	if err != nil {
		if errors.Is(err, services.ErrRouteUnavailable) {
			log.Printf("route lookup failed: %v", err)
			writeError(w, r, http.StatusBadGateway, "could not compute a route between the selected locations")
			return
		}

		log.Printf("calculate trip cost failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toTripCostResponse(result, passengers, fuel))
}

func toPlace(p dto.PlaceRequest) domain.Place {
	place := domain.Place{Name: p.Name}
	if p.Lat != nil && p.Lon != nil {
		place.Coords = &domain.Coordinates{Lat: *p.Lat, Lon: *p.Lon}
	}
	return place
}

func toTripCostResponse(result services.TripCostResult, passengers int, fuel domain.FuelType) dto.TripCostResponse {
	costs := result.Costs

	stations := make([]dto.TollStationResponse, 0, len(costs.Tolls.Stations))
	for _, st := range costs.Tolls.Stations {
		stations = append(stations, dto.TollStationResponse{
			Name: st.Name,
			Fee:  st.Fee,
			Lat:  st.Coords.Lat,
			Lon:  st.Coords.Lon,
		})
	}

	waypoints := make([]dto.WaypointResponse, 0, len(result.Route.Waypoints))
	for _, wp := range result.Route.Waypoints {
		waypoints = append(waypoints, dto.WaypointResponse{
			Name: wp.Name,
			Lat:  wp.Coords.Lat,
			Lon:  wp.Coords.Lon,
		})
	}

	res := dto.TripCostResponse{
		DistanceMeters:   costs.DistanceMeters,
		DurationSeconds:  costs.DurationSeconds,
		FuelConsumption:  costs.FuelConsumption,
		FuelPricePerUnit: costs.FuelPricePerUnit,
		FuelCost:         costs.FuelCost,
		TollCost:         costs.TollCost,
		TotalCost:        costs.TotalCost,
		TollStations:     stations,
		Waypoints:        waypoints,
		Geometry:         result.Route.Geometry,
		Display: dto.DisplayResponse{
			Distance:    services.FormatDistance(costs.DistanceMeters),
			Duration:    services.FormatDuration(costs.DurationSeconds),
			Consumption: services.FormatConsumption(costs.FuelConsumption, fuel),
			FuelCost:    services.FormatMoney(costs.FuelCost),
			TollCost:    services.FormatMoney(costs.TollCost),
			TotalCost:   services.FormatMoney(costs.TotalCost),
		},
	}

	// The per-passenger split is only meaningful for shared trips.
	if passengers > 1 {
		perPassenger := costs.CostPerPassenger
		res.CostPerPassenger = &perPassenger
		res.Display.CostPerPassenger = services.FormatMoney(perPassenger)
	}

	return res
}
