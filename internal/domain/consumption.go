package domain

// RateTable maps (vehicle class, fuel type) to average consumption per 100 km,
// in liters (or kWh for electric). It is immutable configuration: built once,
// injected into the cost pipeline, never mutated.
type RateTable map[VehicleClass]map[FuelType]float64

// DefaultRateTable returns the canonical consumption rates the calculator has
// always used. Combinations absent from the table (petrol, electric and
// hybrid trucks) deliberately resolve to rate 0 rather than an error: the
// frontend disables them, and a zero-cost answer is the documented behavior
// should one arrive anyway.
func DefaultRateTable() RateTable {
	return RateTable{
		VehicleCar: {
			FuelPetrol:   7.5,
			FuelDiesel:   6.0,
			FuelElectric: 18.0,
			FuelHybrid:   5.0,
		},
		VehicleTruck: {
			FuelDiesel: 30.0,
		},
	}
}

// Rate returns the per-100km consumption rate, or 0 for undefined combinations.
func (t RateTable) Rate(class VehicleClass, fuel FuelType) float64 {
	return t[class][fuel]
}

// Consumption converts a trip distance into fuel volume (liters or kWh):
// (distanceKm / 100) * rate. Monotonically non-decreasing in distance.
func (t RateTable) Consumption(distanceMeters float64, class VehicleClass, fuel FuelType) float64 {
	distanceKm := distanceMeters / 1000
	return (distanceKm / 100) * t.Rate(class, fuel)
}
