package routing

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"drivecalc-service/internal/ports"

	"github.com/google/uuid"
)

// MapboxProvider implements RouteProvider and LocationSearcher using the
// Mapbox Search Box and Directions APIs.
//
// It coordinates:
//   - Place-name normalization
//   - Optional geocode caching
//   - Geocoding of places the frontend submitted without coordinates
//   - Directions requests over the full origin/stops/destination sequence
//
// The provider is safe for concurrent use.
type MapboxProvider struct {
	session      *http.Client
	token        string
	baseURL      string
	country      string
	language     string
	sessionToken string
	geocodeCache ports.GeocodeCache
}

type Option func(*MapboxProvider)

// WithBaseURL overrides the Mapbox API origin (tests, proxies).
func WithBaseURL(u string) Option {
	return func(p *MapboxProvider) { p.baseURL = strings.TrimRight(u, "/") }
}

// WithGeocodeCache attaches a best-effort geocode cache. A nil cache is valid.
func WithGeocodeCache(c ports.GeocodeCache) Option {
	return func(p *MapboxProvider) { p.geocodeCache = c }
}

func NewMapboxProvider(token string, opts ...Option) (*MapboxProvider, error) {
	if token == "" {
		return nil, errors.New("mapbox token is empty")
	}

	provider := &MapboxProvider{
		session:  &http.Client{Timeout: 10 * time.Second},
		token:    token,
		baseURL:  "https://api.mapbox.com",
		country:  "no",
		language: "no",
		// The Search Box API bills suggest+retrieve pairs per session token,
		// so the same token must be reused across both calls.
		sessionToken: uuid.NewString(),
	}

	for _, opt := range opts {
		opt(provider)
	}

	return provider, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (p *MapboxProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
