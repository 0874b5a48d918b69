package routing

import (
	"context"
	"fmt"

	"drivecalc-service/internal/domain"
)

// MockRouteProvider serves canned routes keyed by "origin|destination".
type MockRouteProvider struct {
	m map[string]domain.Route
	// Err, when set, is returned for every call.
	Err error
}

func NewMockRouteProvider() *MockRouteProvider {
	return &MockRouteProvider{m: make(map[string]domain.Route)}
}

func (p *MockRouteProvider) Add(origin, destination string, route domain.Route) {
	p.m[origin+"|"+destination] = route
}

func (p *MockRouteProvider) Route(ctx context.Context, origin, destination domain.Place, stops []domain.Place) (domain.Route, error) {
	if p.Err != nil {
		return domain.Route{}, p.Err
	}

	r, ok := p.m[origin.Name+"|"+destination.Name]
	if !ok {
		return domain.Route{}, fmt.Errorf("missing route %q -> %q", origin.Name, destination.Name)
	}

	return r, nil
}
