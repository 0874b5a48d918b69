package ports

import (
	"context"
	"drivecalc-service/internal/domain"
)

// Port: a boundary for retrieving the current fuel price snapshot.
// Idempotent, no side effects beyond the outbound call.
type FuelPriceProvider interface {
	// Return current prices per fuel type (kr per liter / kWh).
	Prices(ctx context.Context) (domain.FuelPriceSnapshot, error)
}
