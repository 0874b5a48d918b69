package tolls

import "drivecalc-service/internal/domain"

// Category is the toll provider's vehicle classification.
type Category string

const (
	StandardCar     Category = "StandardCar"
	ElectricVehicle Category = "ElectricVehicle"
	HybridVehicle   Category = "HybridVehicle"
	DieselCar       Category = "DieselCar"
	HeavyVehicle    Category = "HeavyVehicle"
)

// CategoryFor maps the calculator's vehicle/fuel split to the provider's
// categories. Trucks are always heavy vehicles regardless of fuel; petrol is
// the default car category.
func CategoryFor(class domain.VehicleClass, fuel domain.FuelType) Category {
	if class == domain.VehicleTruck {
		return HeavyVehicle
	}

	switch fuel {
	case domain.FuelElectric:
		return ElectricVehicle
	case domain.FuelHybrid:
		return HybridVehicle
	case domain.FuelDiesel:
		return DieselCar
	default:
		return StandardCar
	}
}

// apiParams encodes a Category into the provider's numeric vehicle fields.
type apiParams struct {
	Bilsize      int
	Litenbiltype int
	Storbiltype  int
}

func (c Category) apiParams() apiParams {
	switch c {
	case ElectricVehicle:
		return apiParams{Bilsize: 1, Litenbiltype: 5}
	case DieselCar:
		return apiParams{Bilsize: 1, Litenbiltype: 2}
	case HybridVehicle:
		return apiParams{Bilsize: 1, Litenbiltype: 3}
	case HeavyVehicle:
		return apiParams{Bilsize: 2, Storbiltype: 1}
	default:
		return apiParams{Bilsize: 1, Litenbiltype: 1}
	}
}
