package ports

import (
	"context"
	"drivecalc-service/internal/domain"
)

// Port: a boundary for the external toll-fee service.
//
// The round-trip flag is forwarded to the provider, which applies its own
// doubling/discount rules server-side. Callers must not double toll fees
// locally on top of it.
type TollProvider interface {
	// Return total and per-station fees for the ordered waypoint sequence
	// (>= 2 waypoints: origin, stops..., destination).
	TollFees(ctx context.Context, waypoints []domain.Waypoint, class domain.VehicleClass, fuel domain.FuelType, roundTrip bool) (domain.TollResult, error)
}
