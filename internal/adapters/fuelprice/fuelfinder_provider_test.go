package fuelprice

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"drivecalc-service/internal/domain"
)

const sampleListing = `<html><body>
<table class="tableStyle">
<thead><tr><th>Station</th><th>Blyfri 95</th><th>Diesel</th><th>EL normal</th></tr></thead>
<tbody>
<tr>
	<td data-title="Station">Circle K</td>
	<td data-title="Blyfri 95">21,49</td>
	<td data-title="Diesel">19,98</td>
	<td data-title="EL normal">5,89</td>
</tr>
</tbody>
</table>
</body></html>`

func listingServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/no/listprices.php" {
			t.Errorf("path = %q, want /no/listprices.php", r.URL.Path)
		}
		w.Write([]byte(body))
	}))
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestPricesParsesListing(t *testing.T) {
	server := listingServer(t, sampleListing)
	defer server.Close()

	provider := NewFuelfinderProvider(WithBaseURL(server.URL))

	prices, err := provider.Prices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := prices.PriceFor(domain.FuelPetrol); !almostEqual(got, 21.49) {
		t.Errorf("petrol = %v, want 21.49", got)
	}
	if got := prices.PriceFor(domain.FuelDiesel); !almostEqual(got, 19.98) {
		t.Errorf("diesel = %v, want 19.98", got)
	}
	if got := prices.PriceFor(domain.FuelElectric); !almostEqual(got, 5.89) {
		t.Errorf("electric = %v, want 5.89", got)
	}
	// The listing carries no hybrid column; the price is derived from petrol.
	if got := prices.PriceFor(domain.FuelHybrid); !almostEqual(got, 0.6*21.49) {
		t.Errorf("hybrid = %v, want %v", got, 0.6*21.49)
	}
}

func TestPricesPartialRowKeepsFallback(t *testing.T) {
	// Diesel cell is a zero-width placeholder, electric is missing entirely.
	listing := `<html><body><table class="tableStyle"><tbody>
<tr>
	<td data-title="Blyfri 95">22,00</td>
	<td data-title="Diesel">&#8203;</td>
</tr>
</tbody></table></body></html>`

	server := listingServer(t, listing)
	defer server.Close()

	provider := NewFuelfinderProvider(WithBaseURL(server.URL))

	prices, err := provider.Prices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fallback := domain.FallbackFuelPrices()
	if got := prices.PriceFor(domain.FuelPetrol); !almostEqual(got, 22.00) {
		t.Errorf("petrol = %v, want 22.00", got)
	}
	if got := prices.PriceFor(domain.FuelDiesel); !almostEqual(got, fallback.PriceFor(domain.FuelDiesel)) {
		t.Errorf("diesel = %v, want fallback %v", got, fallback.PriceFor(domain.FuelDiesel))
	}
	if got := prices.PriceFor(domain.FuelElectric); !almostEqual(got, fallback.PriceFor(domain.FuelElectric)) {
		t.Errorf("electric = %v, want fallback %v", got, fallback.PriceFor(domain.FuelElectric))
	}
	if got := prices.PriceFor(domain.FuelHybrid); !almostEqual(got, 0.6*22.00) {
		t.Errorf("hybrid = %v, want derived %v", got, 0.6*22.00)
	}
}

func TestPricesLastRowWins(t *testing.T) {
	listing := `<html><body><table class="tableStyle"><tbody>
<tr><td data-title="Blyfri 95">20,00</td></tr>
<tr><td data-title="Blyfri 95">21,00</td></tr>
</tbody></table></body></html>`

	server := listingServer(t, listing)
	defer server.Close()

	provider := NewFuelfinderProvider(WithBaseURL(server.URL))

	prices, err := provider.Prices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := prices.PriceFor(domain.FuelPetrol); !almostEqual(got, 21.00) {
		t.Errorf("petrol = %v, want 21.00", got)
	}
}

func TestPricesMissingTable(t *testing.T) {
	server := listingServer(t, `<html><body><p>maintenance</p></body></html>`)
	defer server.Close()

	provider := NewFuelfinderProvider(WithBaseURL(server.URL))

	if _, err := provider.Prices(context.Background()); err == nil {
		t.Fatal("expected an error when the price table is missing")
	}
}

func TestPricesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone fishing", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	provider := NewFuelfinderProvider(WithBaseURL(server.URL))

	if _, err := provider.Prices(context.Background()); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}
