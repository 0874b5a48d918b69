package fuelprice

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"drivecalc-service/internal/domain"
	"drivecalc-service/internal/platform/obs"

	"github.com/PuerkitoBio/goquery"
)

// FuelfinderProvider implements FuelPriceProvider by scraping the public
// fuelfinder.dk price listing. The scrape is best-effort by design: a single
// attempt, no retry, and per-cell parse misses keep the previous value.
// Callers substitute domain.FallbackFuelPrices() when Prices returns an error.
type FuelfinderProvider struct {
	session *http.Client
	baseURL string
}

const defaultListURL = "https://www.fuelfinder.dk"

type Option func(*FuelfinderProvider)

// WithBaseURL overrides the scrape origin (tests).
func WithBaseURL(u string) Option {
	return func(p *FuelfinderProvider) { p.baseURL = strings.TrimRight(u, "/") }
}

func NewFuelfinderProvider(opts ...Option) *FuelfinderProvider {
	provider := &FuelfinderProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultListURL,
	}

	for _, opt := range opts {
		opt(provider)
	}

	return provider
}

// Prices scrapes the current listing. The snapshot starts from the fallback
// constants and overrides each fuel as rows with parseable cells are found,
// so a partially readable table still yields usable prices. The hybrid price
// is always derived as 60% of petrol; the listing has no hybrid column.
func (p *FuelfinderProvider) Prices(ctx context.Context) (_ domain.FuelPriceSnapshot, err error) {
	defer obs.Time(ctx, "fuelfinder.Prices")(&err)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/no/listprices.php", nil)
	if err != nil {
		return nil, fmt.Errorf("create price request: %w", err)
	}

	resp, err := p.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute price request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("price listing status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse price listing: %w", err)
	}

	prices := domain.FallbackFuelPrices()

	rows := doc.Find("table.tableStyle tbody tr")
	if rows.Length() == 0 {
		return nil, errors.New("price listing has no price table")
	}

	rows.Each(func(_ int, row *goquery.Selection) {
		if v, ok := parseCell(row, "Blyfri 95"); ok {
			prices[domain.FuelPetrol] = v
		}
		if v, ok := parseCell(row, "Diesel"); ok {
			prices[domain.FuelDiesel] = v
		}
		if v, ok := parseCell(row, "EL normal"); ok {
			prices[domain.FuelElectric] = v
		}
	})

	prices[domain.FuelHybrid] = 0.6 * prices[domain.FuelPetrol]

	return prices, nil
}

// parseCell reads the td keyed by its data-title attribute. Empty cells and
// zero-width placeholder characters are treated as missing.
func parseCell(row *goquery.Selection, title string) (float64, bool) {
	text := strings.TrimSpace(row.Find(`td[data-title="` + title + `"]`).First().Text())
	text = strings.ReplaceAll(text, "​", "")
	if text == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
	if err != nil {
		return 0, false
	}

	return v, true
}
