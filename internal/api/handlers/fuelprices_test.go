package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"drivecalc-service/internal/adapters/fuelprice"
	"drivecalc-service/internal/api/dto"
	"drivecalc-service/internal/domain"
)

func TestFuelPricesServesSnapshot(t *testing.T) {
	handler := &FuelPriceHandler{
		Provider: &fuelprice.MockFuelPriceProvider{
			Snapshot: domain.FuelPriceSnapshot{
				domain.FuelPetrol:   21.49,
				domain.FuelDiesel:   19.98,
				domain.FuelElectric: 5.89,
				domain.FuelHybrid:   12.89,
			},
		},
		Fallback: domain.FallbackFuelPrices(),
	}

	req := httptest.NewRequest(http.MethodGet, "/fuel-prices", nil)
	rec := httptest.NewRecorder()
	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.FuelPricesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Bensin != 21.49 || res.Diesel != 19.98 || res.Elbil != 5.89 || res.Hybrid != 12.89 {
		t.Fatalf("unexpected prices: %+v", res)
	}
}

func TestFuelPricesFallsBackOnScrapeFailure(t *testing.T) {
	handler := &FuelPriceHandler{
		Provider: &fuelprice.MockFuelPriceProvider{Err: errors.New("scrape failed")},
		Fallback: domain.FallbackFuelPrices(),
	}

	req := httptest.NewRequest(http.MethodGet, "/fuel-prices", nil)
	rec := httptest.NewRecorder()
	handler.Get(rec, req)

	// The endpoint absorbs scrape failures; the frontend always gets prices.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var res dto.FuelPricesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Bensin != 20.80 {
		t.Errorf("bensin = %v, want fallback 20.80", res.Bensin)
	}
	if res.Diesel != 19.22 {
		t.Errorf("diesel = %v, want fallback 19.22", res.Diesel)
	}
}

func TestFuelPricesRejectsPost(t *testing.T) {
	handler := &FuelPriceHandler{
		Provider: &fuelprice.MockFuelPriceProvider{Snapshot: domain.FallbackFuelPrices()},
		Fallback: domain.FallbackFuelPrices(),
	}

	req := httptest.NewRequest(http.MethodPost, "/fuel-prices", nil)
	rec := httptest.NewRecorder()
	handler.Get(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
