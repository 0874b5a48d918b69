package tolls

import (
	"context"

	"drivecalc-service/internal/domain"
)

// MockTollProvider returns a fixed result, or a fixed error when Err is set.
// It records the arguments of the last call for assertions.
type MockTollProvider struct {
	Result domain.TollResult
	Err    error

	LastWaypoints []domain.Waypoint
	LastCategory  Category
	LastRoundTrip bool
}

func (p *MockTollProvider) TollFees(ctx context.Context, waypoints []domain.Waypoint, class domain.VehicleClass, fuel domain.FuelType, roundTrip bool) (domain.TollResult, error) {
	p.LastWaypoints = waypoints
	p.LastCategory = CategoryFor(class, fuel)
	p.LastRoundTrip = roundTrip

	if p.Err != nil {
		return domain.TollResult{}, p.Err
	}
	return p.Result, nil
}
