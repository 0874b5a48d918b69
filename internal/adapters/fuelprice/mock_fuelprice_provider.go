package fuelprice

import (
	"context"

	"drivecalc-service/internal/domain"
)

// MockFuelPriceProvider returns a fixed snapshot, or an error when Err is set.
type MockFuelPriceProvider struct {
	Snapshot domain.FuelPriceSnapshot
	Err      error
}

func (p *MockFuelPriceProvider) Prices(ctx context.Context) (domain.FuelPriceSnapshot, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Snapshot, nil
}
