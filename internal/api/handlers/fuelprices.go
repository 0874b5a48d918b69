package handlers

import (
	"log"
	"net/http"

	"drivecalc-service/internal/api/dto"
	"drivecalc-service/internal/domain"
	"drivecalc-service/internal/ports"
)

// FuelPriceHandler exposes the current price snapshot. A scrape failure is
// absorbed with the fallback constants so this endpoint never errors toward
// the frontend (parity with the calculator's historical behavior).
type FuelPriceHandler struct {
	Provider ports.FuelPriceProvider
	Fallback domain.FuelPriceSnapshot
}

func (h *FuelPriceHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	snapshot, err := h.Provider.Prices(r.Context())
	if err != nil {
		log.Printf("fuel price scrape failed, serving fallback: %v", err)
		snapshot = h.Fallback
	}

	writeJSON(w, r, http.StatusOK, dto.FuelPricesResponse{
		Bensin: snapshot.PriceFor(domain.FuelPetrol),
		Diesel: snapshot.PriceFor(domain.FuelDiesel),
		Elbil:  snapshot.PriceFor(domain.FuelElectric),
		Hybrid: snapshot.PriceFor(domain.FuelHybrid),
	})
}
