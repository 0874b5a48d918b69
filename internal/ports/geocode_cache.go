package ports

import (
	"context"
	"drivecalc-service/internal/domain"
)

// Port: a best-effort cache mapping place names to coordinates.
//
// Implementations may expire entries at any time; a miss is never an error.
// The routing adapter tolerates a nil cache entirely.
type GeocodeCache interface {
	// Look up coordinates for a normalized place name.
	Get(ctx context.Context, name string) (domain.Coordinates, bool, error)
	// Store coordinates for a normalized place name.
	Put(ctx context.Context, name string, coords domain.Coordinates) error
}
