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

	"golang.org/x/sync/errgroup"
)

type suggestResponse struct {
	Suggestions []struct {
		Name           string `json:"name"`
		MapboxID       string `json:"mapbox_id"`
		FeatureType    string `json:"feature_type"`
		FullAddress    string `json:"full_address"`
		PlaceFormatted string `json:"place_formatted"`
		Coordinates    *struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"coordinates"`
	} `json:"suggestions"`
}

type retrieveResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Name        string `json:"name"`
			MapboxID    string `json:"mapbox_id"`
			FeatureType string `json:"feature_type"`
		} `json:"properties"`
	} `json:"features"`
}

// Search resolves free-text queries via the Search Box suggest endpoint.
func (p *MapboxProvider) Search(
	ctx context.Context,
	query string,
	limit int,
) (_ []domain.Suggestion, err error) {
	defer obs.Time(ctx, "mapbox.Search")(&err)

	query = p.normalize(query)
	if query == "" {
		return []domain.Suggestion{}, nil
	}
	if limit < 1 || limit > 10 {
		limit = 5
	}

	req, err := p.newRequest(ctx, "/search/searchbox/v1/suggest", url.Values{
		"q":        {query},
		"limit":    {strconv.Itoa(limit)},
		"country":  {p.country},
		"language": {p.language},
	})
	if err != nil {
		return nil, fmt.Errorf("suggest request: %w", err)
	}

	resp, err := p.do(req)
	if err != nil {
		return nil, fmt.Errorf("execute suggest request: %w", err)
	}
	defer resp.Body.Close()

	var decoded suggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode suggest response: %w", err)
	}

	out := make([]domain.Suggestion, 0, len(decoded.Suggestions))
	for _, s := range decoded.Suggestions {
		sug := domain.Suggestion{
			ID:          s.MapboxID,
			Name:        s.Name,
			FeatureType: s.FeatureType,
			PlaceName:   displayName(s.Name, s.FeatureType, s.FullAddress, s.PlaceFormatted),
		}
		if s.Coordinates != nil {
			sug.Coords = &domain.Coordinates{Lon: s.Coordinates.Longitude, Lat: s.Coordinates.Latitude}
		}
		out = append(out, sug)
	}

	return out, nil
}

// displayName mirrors the frontend's presentation rules: POIs lead with the
// POI name, addresses use the full address, everything else prefers the
// formatted address over the bare name.
func displayName(name, featureType, fullAddress, placeFormatted string) string {
	if fullAddress == "" {
		fullAddress = placeFormatted
	}
	if featureType == "poi" && fullAddress != "" {
		addressPart := strings.TrimPrefix(strings.Replace(fullAddress, name, "", 1), ", ")
		return name + " - " + addressPart
	}
	if fullAddress != "" {
		return fullAddress
	}
	return name
}

// retrieve fetches full details (including coordinates) for a suggestion ID.
func (p *MapboxProvider) retrieve(ctx context.Context, mapboxID string) (domain.Coordinates, error) {
	req, err := p.newRequest(ctx, "/search/searchbox/v1/retrieve/"+url.PathEscape(mapboxID), nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("retrieve request: %w", err)
	}

	resp, err := p.do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("execute retrieve request: %w", err)
	}
	defer resp.Body.Close()

	var decoded retrieveResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode retrieve response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, fmt.Errorf("no details for suggestion %q", mapboxID)
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinates{}, fmt.Errorf("invalid coordinate format for suggestion %q", mapboxID)
	}

	return domain.Coordinates{Lon: coords[0], Lat: coords[1]}, nil
}

// geocode resolves a place name to coordinates: suggest, then retrieve when
// the top suggestion comes back without coordinates.
func (p *MapboxProvider) geocode(ctx context.Context, name string) (domain.Coordinates, error) {
	suggestions, err := p.Search(ctx, name, 5)
	if err != nil {
		return domain.Coordinates{}, err
	}
	if len(suggestions) == 0 {
		return domain.Coordinates{}, fmt.Errorf("no geocode results for %q", name)
	}

	top := suggestions[0]
	if top.Coords != nil {
		return *top.Coords, nil
	}

	return p.retrieve(ctx, top.ID)
}

// resolvePlaces turns places into ordered waypoints, geocoding any place that
// arrived without coordinates. Independent lookups run concurrently; ordering
// of the result matches the input, so no route semantics depend on timing.
func (p *MapboxProvider) resolvePlaces(
	ctx context.Context,
	places []domain.Place,
) (_ []domain.Waypoint, err error) {
	defer obs.Time(ctx, "mapbox.resolvePlaces")(&err)

	out := make([]domain.Waypoint, len(places))

	g, ctx := errgroup.WithContext(ctx)
	for i, pl := range places {
		name := p.normalize(pl.Name)
		if name == "" {
			return nil, fmt.Errorf("place %d has an empty name", i)
		}

		if pl.Coords != nil {
			out[i] = domain.Waypoint{Name: name, Coords: *pl.Coords}
			continue
		}

		i := i
		g.Go(func() error {
			coords, err := p.lookupCoords(ctx, name)
			if err != nil {
				return fmt.Errorf("geocode %q: %w", name, err)
			}
			out[i] = domain.Waypoint{Name: name, Coords: coords}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// lookupCoords consults the cache before hitting the geocoding API.
// Cache failures are logged by the cache adapter and treated as misses.
func (p *MapboxProvider) lookupCoords(ctx context.Context, name string) (domain.Coordinates, error) {
	if p.geocodeCache != nil {
		if coords, ok, err := p.geocodeCache.Get(ctx, name); err == nil && ok {
			return coords, nil
		}
	}

	coords, err := p.geocode(ctx, name)
	if err != nil {
		return domain.Coordinates{}, err
	}

	if p.geocodeCache != nil {
		_ = p.geocodeCache.Put(ctx, name, coords)
	}

	return coords, nil
}
