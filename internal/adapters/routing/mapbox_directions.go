package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"drivecalc-service/internal/domain"
	"drivecalc-service/internal/platform/obs"

	"github.com/twpayne/go-polyline"
)

type directionsResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry string  `json:"geometry"`
	} `json:"routes"`
}

// Route computes a driving route origin -> stops... -> destination via the
// Mapbox Directions API. Places submitted without coordinates are geocoded
// first; the resulting waypoint order always matches the request order.
func (p *MapboxProvider) Route(
	ctx context.Context,
	origin, destination domain.Place,
	stops []domain.Place,
) (_ domain.Route, err error) {
	defer obs.Time(ctx, "mapbox.Route")(&err)

	places := make([]domain.Place, 0, 2+len(stops))
	places = append(places, origin)
	places = append(places, stops...)
	places = append(places, destination)

	waypoints, err := p.resolvePlaces(ctx, places)
	if err != nil {
		return domain.Route{}, fmt.Errorf("resolve route places: %w", err)
	}

	coords := make([]string, 0, len(waypoints))
	for _, wp := range waypoints {
		coords = append(coords,
			strconv.FormatFloat(wp.Coords.Lon, 'f', -1, 64)+","+
				strconv.FormatFloat(wp.Coords.Lat, 'f', -1, 64))
	}
	path := "/directions/v5/mapbox/driving/" + url.PathEscape(strings.Join(coords, ";"))

	req, err := p.newRequest(ctx, path, url.Values{
		"geometries":  {"polyline"},
		"overview":    {"full"},
		"annotations": {"distance"},
	})
	if err != nil {
		return domain.Route{}, fmt.Errorf("directions request: %w", err)
	}

	resp, err := p.do(req)
	if err != nil {
		return domain.Route{}, fmt.Errorf("execute directions request: %w", err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Route{}, fmt.Errorf("decode directions response: %w", err)
	}

	if len(decoded.Routes) == 0 {
		return domain.Route{}, fmt.Errorf("no route found between the selected locations")
	}

	best := decoded.Routes[0]

	geometry, err := decodeGeometry(best.Geometry)
	if err != nil {
		return domain.Route{}, fmt.Errorf("decode route geometry: %w", err)
	}

	return domain.Route{
		DistanceMeters:  best.Distance,
		DurationSeconds: best.Duration,
		Geometry:        geometry,
		Waypoints:       waypoints,
	}, nil
}

// decodeGeometry decodes a Directions polyline (precision 5, lat/lon order)
// into [lon, lat] pairs for domain consistency.
func decodeGeometry(encoded string) ([][]float64, error) {
	if encoded == "" {
		return [][]float64{}, nil
	}

	latLon, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}

	out := make([][]float64, 0, len(latLon))
	for _, c := range latLon {
		out = append(out, []float64{c[1], c[0]})
	}
	return out, nil
}
