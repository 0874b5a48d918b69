package domain

import "fmt"

// VehicleClass is the calculator's coarse vehicle split.
type VehicleClass string

const (
	VehicleCar   VehicleClass = "car"
	VehicleTruck VehicleClass = "truck"
)

// FuelType uses the Norwegian wire names the calculator has always exposed.
type FuelType string

const (
	FuelPetrol   FuelType = "bensin"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "elbil"
	FuelHybrid   FuelType = "hybrid"
)

func ParseVehicleClass(s string) (VehicleClass, error) {
	switch VehicleClass(s) {
	case VehicleCar, VehicleTruck:
		return VehicleClass(s), nil
	}
	return "", fmt.Errorf("unknown vehicle class %q", s)
}

func ParseFuelType(s string) (FuelType, error) {
	switch FuelType(s) {
	case FuelPetrol, FuelDiesel, FuelElectric, FuelHybrid:
		return FuelType(s), nil
	}
	return "", fmt.Errorf("unknown fuel type %q", s)
}

// ConsumptionUnit returns the unit consumption and prices are expressed in.
func (f FuelType) ConsumptionUnit() string {
	if f == FuelElectric {
		return "kWh"
	}
	return "liter"
}
