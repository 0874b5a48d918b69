package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"drivecalc-service/internal/domain"
	"drivecalc-service/internal/ports"
)

// ErrRouteUnavailable wraps routing/geocoding failures. Unlike toll and fuel
// price outages these are not recoverable with substitute data: without a
// route there is no distance to price, so the calculation aborts.
var ErrRouteUnavailable = errors.New("route unavailable")

// Config is the immutable pipeline configuration: the consumption rate table
// plus the sanctioned fallback data for the two provider outages the service
// absorbs. Injected at construction so tests can substitute alternates.
type Config struct {
	Rates          domain.RateTable
	FallbackPrices domain.FuelPriceSnapshot
	FallbackTolls  domain.TollResult
}

func DefaultConfig() Config {
	return Config{
		Rates:          domain.DefaultRateTable(),
		FallbackPrices: domain.FallbackFuelPrices(),
		FallbackTolls:  domain.FallbackTollResult(),
	}
}

type TripCostRequest struct {
	Origin      domain.Place
	Destination domain.Place
	Stops       []domain.Place
	Vehicle     domain.VehicleClass
	Fuel        domain.FuelType
	Modifiers   domain.TripModifiers
}

// TripCostResult carries the cost breakdown plus the raw route for rendering.
// The fallback flags exist for logging and tests; they are deliberately not
// surfaced to the end user (the UI always gets a renderable result).
type TripCostResult struct {
	Route              domain.Route
	Costs              domain.CostBreakdown
	UsedFallbackTolls  bool
	UsedFallbackPrices bool
}

// CalculateTripCost runs the full cost pipeline for one calculate action:
//
//  1. Route from the routing provider (failure aborts, wrapped in
//     ErrRouteUnavailable).
//  2. Toll fees for the route waypoints, with the round-trip flag forwarded
//     to the provider (failure falls back to Config.FallbackTolls).
//  3. Fuel price snapshot (failure falls back to Config.FallbackPrices).
//  4. Round-trip doubling of distance and duration, applied locally BEFORE
//     the consumption lookup. Toll doubling happened remotely in step 2; the
//     two doubling semantics are intentionally independent.
//  5. Consumption, fuel cost, toll cost, total and per-passenger split.
func CalculateTripCost(
	ctx context.Context,
	req TripCostRequest,
	routes ports.RouteProvider,
	tolls ports.TollProvider,
	prices ports.FuelPriceProvider,
	cfg Config,
) (TripCostResult, error) {
	if req.Modifiers.Passengers < 1 {
		return TripCostResult{}, errors.New("calculate trip cost: passengers must be at least 1")
	}

	route, err := routes.Route(ctx, req.Origin, req.Destination, req.Stops)
	if err != nil {
		return TripCostResult{}, fmt.Errorf("calculate trip cost: %w: %v", ErrRouteUnavailable, err)
	}
	if len(route.Waypoints) < 2 {
		return TripCostResult{}, fmt.Errorf("calculate trip cost: %w: route has %d waypoints", ErrRouteUnavailable, len(route.Waypoints))
	}

	result := TripCostResult{Route: route}

	tollResult, err := tolls.TollFees(ctx, route.Waypoints, req.Vehicle, req.Fuel, req.Modifiers.RoundTrip)
	if err != nil {
		// Sanctioned fallback: a toll outage must not block the calculation.
		log.Printf("toll provider failed, using fallback data: %v", err)
		tollResult = cfg.FallbackTolls
		result.UsedFallbackTolls = true
	}

	snapshot, err := prices.Prices(ctx)
	if err != nil {
		// Sanctioned fallback: a price outage must not block the calculation.
		log.Printf("fuel price provider failed, using fallback prices: %v", err)
		snapshot = cfg.FallbackPrices
		result.UsedFallbackPrices = true
	}

	distance := route.DistanceMeters
	duration := route.DurationSeconds
	if req.Modifiers.RoundTrip {
		distance *= 2
		duration *= 2
	}

	consumption := cfg.Rates.Consumption(distance, req.Vehicle, req.Fuel)
	pricePerUnit := snapshot.PriceFor(req.Fuel)
	fuelCost := consumption * pricePerUnit
	tollCost := tollResult.TotalFee
	totalCost := fuelCost + tollCost

	result.Costs = domain.CostBreakdown{
		DistanceMeters:   distance,
		DurationSeconds:  duration,
		FuelConsumption:  consumption,
		FuelPricePerUnit: pricePerUnit,
		FuelCost:         fuelCost,
		TollCost:         tollCost,
		TotalCost:        totalCost,
		CostPerPassenger: totalCost / float64(req.Modifiers.Passengers),
		Tolls:            tollResult,
	}

	return result, nil
}
