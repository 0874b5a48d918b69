package handlers

import (
	"log"
	"net/http"
	"strings"

	"drivecalc-service/internal/api/dto"
	"drivecalc-service/internal/ports"
)

// LocationHandler exposes geocoding autocomplete for the route form.
type LocationHandler struct {
	Searcher ports.LocationSearcher
}

func (h *LocationHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, r, http.StatusBadRequest, "q is required")
		return
	}

	suggestions, err := h.Searcher.Search(r.Context(), query, 5)
	if err != nil {
		log.Printf("location search failed: query=%q err=%v", query, err)
		writeError(w, r, http.StatusBadGateway, "location search is unavailable")
		return
	}

	res := dto.ListSuggestionsResponse{
		Suggestions: make([]dto.SuggestionResponse, 0, len(suggestions)),
	}
	for _, s := range suggestions {
		sr := dto.SuggestionResponse{
			ID:          s.ID,
			Name:        s.Name,
			PlaceName:   s.PlaceName,
			FeatureType: s.FeatureType,
		}
		if s.Coords != nil {
			lat, lon := s.Coords.Lat, s.Coords.Lon
			sr.Lat, sr.Lon = &lat, &lon
		}
		res.Suggestions = append(res.Suggestions, sr)
	}

	writeJSON(w, r, http.StatusOK, res)
}
