package dto

type SuggestionResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	PlaceName   string   `json:"place_name"`
	FeatureType string   `json:"feature_type"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
}

type ListSuggestionsResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}

// FuelPricesResponse uses the Norwegian fuel keys the calculator has always
// exposed; prices are kr per liter (kr per kWh for elbil).
type FuelPricesResponse struct {
	Bensin float64 `json:"bensin"`
	Diesel float64 `json:"diesel"`
	Elbil  float64 `json:"elbil"`
	Hybrid float64 `json:"hybrid"`
}
