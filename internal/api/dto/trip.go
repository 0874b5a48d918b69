package dto

// PlaceRequest is a location as submitted by the route selection form.
// Coordinates are present when the user picked an autocomplete suggestion;
// a bare name is geocoded server-side.
type PlaceRequest struct {
	Name string   `json:"name" validate:"required"`
	Lat  *float64 `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lon  *float64 `json:"lon" validate:"omitempty,gte=-180,lte=180"`
}

type TripCostRequest struct {
	Origin      PlaceRequest   `json:"origin"`
	Destination PlaceRequest   `json:"destination"`
	Stops       []PlaceRequest `json:"stops" validate:"dive"`
	Vehicle     string         `json:"vehicle" validate:"required,oneof=car truck"`
	FuelType    string         `json:"fuel_type" validate:"required,oneof=bensin diesel elbil hybrid"`
	RoundTrip   bool           `json:"round_trip"`
	// Passengers defaults to 1 when omitted; the form clamps to 1..9.
	Passengers int `json:"passengers" validate:"omitempty,gte=1,lte=9"`
}

type WaypointResponse struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type TollStationResponse struct {
	Name string  `json:"name"`
	Fee  float64 `json:"fee"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// DisplayResponse carries pre-formatted strings so every client renders the
// same rounding (raw values stay full precision in the parent response).
type DisplayResponse struct {
	Distance         string `json:"distance"`
	Duration         string `json:"duration"`
	Consumption      string `json:"consumption"`
	FuelCost         string `json:"fuel_cost"`
	TollCost         string `json:"toll_cost"`
	TotalCost        string `json:"total_cost"`
	CostPerPassenger string `json:"cost_per_passenger,omitempty"`
}

type TripCostResponse struct {
	DistanceMeters   float64               `json:"distance_meters"`
	DurationSeconds  float64               `json:"duration_seconds"`
	FuelConsumption  float64               `json:"fuel_consumption"`
	FuelPricePerUnit float64               `json:"fuel_price_per_unit"`
	FuelCost         float64               `json:"fuel_cost"`
	TollCost         float64               `json:"toll_cost"`
	TotalCost        float64               `json:"total_cost"`
	CostPerPassenger *float64              `json:"cost_per_passenger,omitempty"`
	TollStations     []TollStationResponse `json:"toll_stations"`
	Waypoints        []WaypointResponse    `json:"waypoints"`
	Geometry         [][]float64           `json:"geometry"`
	Display          DisplayResponse       `json:"display"`
}
