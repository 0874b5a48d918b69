package domain

// Route is the routing provider's answer for one origin/stops/destination
// query. Geometry is the decoded driving path as [lon, lat] pairs. Waypoints
// are ordered: origin first, destination last, stops in between.
type Route struct {
	DistanceMeters  float64
	DurationSeconds float64
	Geometry        [][]float64
	Waypoints       []Waypoint
}

// TollStation is one charging point along the route with its resolved fee
// (discounted when the provider offers a discount, standard otherwise).
type TollStation struct {
	Name   string
	Fee    float64
	Coords Coordinates
}

// TollResult aggregates the toll provider's answer for a route.
type TollResult struct {
	TotalFee float64
	Stations []TollStation
}

// FallbackTollResult is the fixed mock substituted when the toll provider is
// unreachable. The numbers are deliberately plausible for an Oslo-Gardermoen
// style trip so the UI always has something renderable; they are not live data.
func FallbackTollResult() TollResult {
	return TollResult{
		TotalFee: 125.50,
		Stations: []TollStation{
			{Name: "Oslo Bomring", Fee: 45.00, Coords: Coordinates{Lat: 59.91, Lon: 10.75}},
			{Name: "E6 Gardermoen", Fee: 33.50, Coords: Coordinates{Lat: 60.19, Lon: 11.10}},
			{Name: "Lillehammer", Fee: 47.00, Coords: Coordinates{Lat: 61.11, Lon: 10.46}},
		},
	}
}

// TripModifiers are the user-selected adjustments applied on top of the raw
// route: doubling for a round trip and splitting the total between passengers.
type TripModifiers struct {
	RoundTrip  bool
	Passengers int
}

// CostBreakdown is the pipeline output. Distance and duration already include
// round-trip doubling when the modifier is set. All monetary values are in
// kroner at full precision; rounding happens at the display layer only.
type CostBreakdown struct {
	DistanceMeters   float64
	DurationSeconds  float64
	FuelConsumption  float64
	FuelPricePerUnit float64
	FuelCost         float64
	TollCost         float64
	TotalCost        float64
	CostPerPassenger float64
	Tolls            TollResult
}
