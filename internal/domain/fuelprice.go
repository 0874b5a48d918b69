package domain

// FuelPriceSnapshot holds one price per fuel type in kr per liter (or kWh).
// A snapshot is fetched fresh for every calculation; nothing is persisted.
type FuelPriceSnapshot map[FuelType]float64

// FallbackFuelPrices are the fixed substitutes used when the price provider
// is unreachable. The hybrid price is derived, not independently fixed:
// 0.6 x the petrol price.
func FallbackFuelPrices() FuelPriceSnapshot {
	const petrol = 20.80
	return FuelPriceSnapshot{
		FuelPetrol:   petrol,
		FuelDiesel:   19.22,
		FuelElectric: 4.99,
		FuelHybrid:   0.6 * petrol,
	}
}

// PriceFor returns the price per unit for the fuel type, or 0 when missing.
func (s FuelPriceSnapshot) PriceFor(fuel FuelType) float64 {
	return s[fuel]
}
