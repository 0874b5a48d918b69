package domain

// Immutable geographic coordinates (longitude, latitude).
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Place is a user-selected location. Coordinates are nil when the frontend
// submitted a bare place name that still needs geocoding.
type Place struct {
	Name   string
	Coords *Coordinates
}

// Waypoint is a resolved point on a computed route. The first waypoint is the
// trip origin, the last is the destination, interior waypoints are stops.
type Waypoint struct {
	Name   string
	Coords Coordinates
}

// Suggestion is a single geocoding autocomplete result. Coordinates may be
// nil when the search backend only returns them on a follow-up retrieve call.
type Suggestion struct {
	ID          string
	Name        string
	PlaceName   string
	FeatureType string
	Coords      *Coordinates
}
