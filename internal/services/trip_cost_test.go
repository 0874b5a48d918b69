package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"drivecalc-service/internal/adapters/fuelprice"
	"drivecalc-service/internal/adapters/routing"
	"drivecalc-service/internal/adapters/tolls"
	"drivecalc-service/internal/domain"
)

func osloGardermoenRoute() domain.Route {
	return domain.Route{
		DistanceMeters:  46000,
		DurationSeconds: 2580,
		Waypoints: []domain.Waypoint{
			{Name: "Oslo", Coords: domain.Coordinates{Lat: 59.91, Lon: 10.75}},
			{Name: "Gardermoen", Coords: domain.Coordinates{Lat: 60.19, Lon: 11.10}},
		},
	}
}

func testProviders(route domain.Route) (*routing.MockRouteProvider, *tolls.MockTollProvider, *fuelprice.MockFuelPriceProvider) {
	routes := routing.NewMockRouteProvider()
	routes.Add("Oslo", "Gardermoen", route)

	toll := &tolls.MockTollProvider{
		Result: domain.TollResult{
			TotalFee: 63.0,
			Stations: []domain.TollStation{
				{Name: "Oslo Bomring", Fee: 45.0},
				{Name: "E6 Gardermoen", Fee: 18.0},
			},
		},
	}

	prices := &fuelprice.MockFuelPriceProvider{Snapshot: domain.FallbackFuelPrices()}

	return routes, toll, prices
}

func baseRequest() TripCostRequest {
	return TripCostRequest{
		Origin:      domain.Place{Name: "Oslo"},
		Destination: domain.Place{Name: "Gardermoen"},
		Vehicle:     domain.VehicleCar,
		Fuel:        domain.FuelPetrol,
		Modifiers:   domain.TripModifiers{Passengers: 1},
	}
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCalculateTripCostOneWay(t *testing.T) {
	routes, toll, prices := testProviders(osloGardermoenRoute())

	result, err := CalculateTripCost(context.Background(), baseRequest(), routes, toll, prices, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	costs := result.Costs
	if !almostEqual(costs.FuelConsumption, 3.45) {
		t.Fatalf("fuel consumption = %v, want 3.45", costs.FuelConsumption)
	}
	if !almostEqual(costs.FuelCost, 71.76) {
		t.Fatalf("fuel cost = %v, want 71.76", costs.FuelCost)
	}
	if costs.TollCost != 63.0 {
		t.Fatalf("toll cost = %v, want 63.0", costs.TollCost)
	}
	if !almostEqual(costs.TotalCost, 134.76) {
		t.Fatalf("total cost = %v, want 134.76", costs.TotalCost)
	}
	if costs.DistanceMeters != 46000 {
		t.Fatalf("distance = %v, want 46000", costs.DistanceMeters)
	}

	if toll.LastRoundTrip {
		t.Fatal("round-trip flag should not have been forwarded")
	}
	if len(toll.LastWaypoints) != 2 {
		t.Fatalf("expected 2 waypoints forwarded to toll provider, got %d", len(toll.LastWaypoints))
	}
	if result.UsedFallbackTolls || result.UsedFallbackPrices {
		t.Fatal("no fallback should have been used")
	}
}

func TestCalculateTripCostRoundTripDoublesLocally(t *testing.T) {
	routes, toll, prices := testProviders(osloGardermoenRoute())

	req := baseRequest()
	oneWay, err := CalculateTripCost(context.Background(), req, routes, toll, prices, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req.Modifiers.RoundTrip = true
	roundTrip, err := CalculateTripCost(context.Background(), req, routes, toll, prices, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(roundTrip.Costs.FuelConsumption, 2*oneWay.Costs.FuelConsumption) {
		t.Fatalf("round trip consumption = %v, want double %v", roundTrip.Costs.FuelConsumption, oneWay.Costs.FuelConsumption)
	}
	if !almostEqual(roundTrip.Costs.FuelConsumption, 6.9) {
		t.Fatalf("round trip consumption = %v, want 6.9", roundTrip.Costs.FuelConsumption)
	}
	if !almostEqual(roundTrip.Costs.FuelCost, 143.52) {
		t.Fatalf("round trip fuel cost = %v, want 143.52", roundTrip.Costs.FuelCost)
	}
	if roundTrip.Costs.DistanceMeters != 92000 {
		t.Fatalf("round trip distance = %v, want 92000", roundTrip.Costs.DistanceMeters)
	}
	if roundTrip.Costs.DurationSeconds != 2*oneWay.Costs.DurationSeconds {
		t.Fatalf("round trip duration = %v, want double %v", roundTrip.Costs.DurationSeconds, oneWay.Costs.DurationSeconds)
	}

	// Toll doubling is the provider's job: the local pipeline only forwards
	// the flag and must not multiply the returned fee.
	if !toll.LastRoundTrip {
		t.Fatal("round-trip flag was not forwarded to the toll provider")
	}
	if roundTrip.Costs.TollCost != oneWay.Costs.TollCost {
		t.Fatalf("toll cost changed locally: %v vs %v", roundTrip.Costs.TollCost, oneWay.Costs.TollCost)
	}
}

func TestCalculateTripCostPerPassengerSplit(t *testing.T) {
	routes, toll, prices := testProviders(osloGardermoenRoute())

	for passengers := 1; passengers <= 9; passengers++ {
		req := baseRequest()
		req.Modifiers.Passengers = passengers

		result, err := CalculateTripCost(context.Background(), req, routes, toll, prices, DefaultConfig())
		if err != nil {
			t.Fatalf("passengers=%d: unexpected error: %v", passengers, err)
		}

		want := result.Costs.TotalCost / float64(passengers)
		if result.Costs.CostPerPassenger != want {
			t.Fatalf("passengers=%d: cost per passenger = %v, want %v", passengers, result.Costs.CostPerPassenger, want)
		}
	}
}

func TestCalculateTripCostPerPassengerDisplayRounding(t *testing.T) {
	routes, _, prices := testProviders(osloGardermoenRoute())

	// Force a 200.00 total: no fuel consumption (electric truck rate is 0)
	// and a 200.00 toll fee.
	toll := &tolls.MockTollProvider{Result: domain.TollResult{TotalFee: 200.0}}

	req := baseRequest()
	req.Vehicle = domain.VehicleTruck
	req.Fuel = domain.FuelElectric
	req.Modifiers.Passengers = 3

	result, err := CalculateTripCost(context.Background(), req, routes, toll, prices, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(result.Costs.TotalCost, 200.0) {
		t.Fatalf("total = %v, want 200.0", result.Costs.TotalCost)
	}
	// Internal value keeps full precision; only the display string rounds.
	if !almostEqual(result.Costs.CostPerPassenger, 200.0/3) {
		t.Fatalf("cost per passenger = %v, want %v", result.Costs.CostPerPassenger, 200.0/3)
	}
	if got := FormatMoney(result.Costs.CostPerPassenger); got != "66.67 kr" {
		t.Fatalf("display = %q, want %q", got, "66.67 kr")
	}
}

func TestCalculateTripCostTollFallback(t *testing.T) {
	routes, _, prices := testProviders(osloGardermoenRoute())
	toll := &tolls.MockTollProvider{Err: errors.New("upstream timeout")}

	result, err := CalculateTripCost(context.Background(), baseRequest(), routes, toll, prices, DefaultConfig())
	if err != nil {
		t.Fatalf("toll outage must not fail the pipeline: %v", err)
	}

	if !result.UsedFallbackTolls {
		t.Fatal("expected toll fallback to be flagged")
	}
	if result.Costs.TollCost != 125.50 {
		t.Fatalf("toll cost = %v, want fallback 125.50", result.Costs.TollCost)
	}
	if len(result.Costs.Tolls.Stations) != 3 {
		t.Fatalf("expected 3 fallback stations, got %d", len(result.Costs.Tolls.Stations))
	}
}

func TestCalculateTripCostFuelPriceFallback(t *testing.T) {
	routes, toll, _ := testProviders(osloGardermoenRoute())
	prices := &fuelprice.MockFuelPriceProvider{Err: errors.New("scrape failed")}

	result, err := CalculateTripCost(context.Background(), baseRequest(), routes, toll, prices, DefaultConfig())
	if err != nil {
		t.Fatalf("price outage must not fail the pipeline: %v", err)
	}

	if !result.UsedFallbackPrices {
		t.Fatal("expected price fallback to be flagged")
	}
	if !almostEqual(result.Costs.FuelPricePerUnit, 20.80) {
		t.Fatalf("price per unit = %v, want fallback 20.80", result.Costs.FuelPricePerUnit)
	}
	if !almostEqual(result.Costs.FuelCost, 71.76) {
		t.Fatalf("fuel cost = %v, want 71.76", result.Costs.FuelCost)
	}
}

func TestCalculateTripCostRouteFailurePropagates(t *testing.T) {
	routes := routing.NewMockRouteProvider()
	routes.Err = errors.New("mapbox down")
	toll := &tolls.MockTollProvider{}
	prices := &fuelprice.MockFuelPriceProvider{Snapshot: domain.FallbackFuelPrices()}

	_, err := CalculateTripCost(context.Background(), baseRequest(), routes, toll, prices, DefaultConfig())
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, ErrRouteUnavailable) {
		t.Fatalf("error %v is not ErrRouteUnavailable", err)
	}
}

func TestCalculateTripCostRejectsZeroPassengers(t *testing.T) {
	routes, toll, prices := testProviders(osloGardermoenRoute())

	req := baseRequest()
	req.Modifiers.Passengers = 0

	if _, err := CalculateTripCost(context.Background(), req, routes, toll, prices, DefaultConfig()); err == nil {
		t.Fatal("expected an error for zero passengers")
	}
}
