package ports

import (
	"context"
	"drivecalc-service/internal/domain"
)

// Port: a boundary for computing driving routes through an external provider.
//
// Route failures are the one upstream error class this service does not paper
// over with fallback data: without a real route there is no distance to price.
type RouteProvider interface {
	// Compute a driving route origin -> stops... -> destination.
	// Places without coordinates are geocoded first.
	Route(ctx context.Context, origin, destination domain.Place, stops []domain.Place) (domain.Route, error)
}

// Port: geocoding autocomplete for the route selection form.
type LocationSearcher interface {
	// Return up to limit suggestions matching the free-text query.
	Search(ctx context.Context, query string, limit int) ([]domain.Suggestion, error)
}
