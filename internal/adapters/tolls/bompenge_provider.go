package tolls

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"drivecalc-service/internal/domain"
	"drivecalc-service/internal/platform/obs"
)

// BompengeProvider implements TollProvider against the Norwegian toll-station
// fee API (GetFeesByWaypoints). Time-of-day pricing, AutoPASS discounts and
// round-trip handling all live on the provider side; this adapter only
// formats the request and reshapes the response.
type BompengeProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	now     func() time.Time
}

const defaultBaseURL = "https://dibkunnskapapi.azure-api.net/vCustomer/api/bomstasjoner"

type Option func(*BompengeProvider)

// WithBaseURL overrides the API origin (tests, staging).
func WithBaseURL(u string) Option {
	return func(p *BompengeProvider) { p.baseURL = strings.TrimRight(u, "/") }
}

// WithClock overrides the wall clock used for the fee timestamp (tests).
func WithClock(now func() time.Time) Option {
	return func(p *BompengeProvider) { p.now = now }
}

func NewBompengeProvider(apiKey string, opts ...Option) (*BompengeProvider, error) {
	if apiKey == "" {
		return nil, errors.New("bompenge api key is empty")
	}

	provider := &BompengeProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(provider)
	}

	return provider, nil
}

type apiWaypoint struct {
	Latitude  string `json:"Latitude"`
	Longitude string `json:"Longitude"`
}

type feeRequest struct {
	Fra            apiWaypoint   `json:"Fra"`
	Til            apiWaypoint   `json:"Til"`
	Vialiste       []apiWaypoint `json:"Vialiste"`
	DatoYYYYMMDD   string        `json:"Dato_yyyymmdd"`
	TidspunktHHMM  string        `json:"Tidspunkt_hhmm"`
	Bilsize        int           `json:"Bilsize"`
	Litenbiltype   int           `json:"Litenbiltype"`
	Storbiltype    int           `json:"Storbiltype"`
	Billengdeunder string        `json:"Billengdeunder"`
	Retur          string        `json:"Retur"`
	Tidsreferanser string        `json:"Tidsreferanser"`
}

type feeResponse struct {
	Tur []struct {
		Rabattert      float64 `json:"Rabattert"`
		AvgiftsPunkter []struct {
			Navn      string `json:"Navn"`
			Latitude  string `json:"Latitude"`
			Longitude string `json:"Longitude"`
			Avgifter  []struct {
				Pris           float64 `json:"Pris"`
				PrisRabbattert float64 `json:"PrisRabbattert"`
			} `json:"Avgifter"`
		} `json:"AvgiftsPunkter"`
	} `json:"Tur"`
}

// TollFees requests total and per-station fees for the waypoint sequence.
// The discounted (AutoPASS) fee is preferred whenever the provider offers one.
func (p *BompengeProvider) TollFees(
	ctx context.Context,
	waypoints []domain.Waypoint,
	class domain.VehicleClass,
	fuel domain.FuelType,
	roundTrip bool,
) (_ domain.TollResult, err error) {
	defer obs.Time(ctx, "bompenge.TollFees")(&err)

	if len(waypoints) < 2 {
		return domain.TollResult{}, errors.New("toll fees: need at least origin and destination waypoints")
	}

	origin := waypoints[0]
	destination := waypoints[len(waypoints)-1]
	via := waypoints[1 : len(waypoints)-1]

	viaList := make([]apiWaypoint, 0, len(via))
	for _, wp := range via {
		viaList = append(viaList, toAPIWaypoint(wp))
	}

	retur := "0"
	if roundTrip {
		retur = "1"
	}

	now := p.now()
	params := CategoryFor(class, fuel).apiParams()

	payload, err := json.Marshal(feeRequest{
		Fra:            toAPIWaypoint(origin),
		Til:            toAPIWaypoint(destination),
		Vialiste:       viaList,
		DatoYYYYMMDD:   now.Format("20060102"),
		TidspunktHHMM:  now.Format("1504"),
		Bilsize:        params.Bilsize,
		Litenbiltype:   params.Litenbiltype,
		Storbiltype:    params.Storbiltype,
		Billengdeunder: "5.9",
		Retur:          retur,
		Tidsreferanser: "1",
	})
	if err != nil {
		return domain.TollResult{}, fmt.Errorf("marshal toll request: %w", err)
	}

	endpoint := p.baseURL + "/GetFeesByWaypoints"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return domain.TollResult{}, fmt.Errorf("create toll request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.session.Do(req)
	if err != nil {
		return domain.TollResult{}, fmt.Errorf("execute toll request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return domain.TollResult{}, fmt.Errorf("toll service status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var decoded feeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.TollResult{}, fmt.Errorf("decode toll response: %w", err)
	}

	// No trips in the response means a toll-free route, not a failure.
	if len(decoded.Tur) == 0 {
		return domain.TollResult{Stations: []domain.TollStation{}}, nil
	}

	trip := decoded.Tur[0]

	stations := make([]domain.TollStation, 0, len(trip.AvgiftsPunkter))
	for _, st := range trip.AvgiftsPunkter {
		var fee float64
		if len(st.Avgifter) > 0 {
			fee = st.Avgifter[0].PrisRabbattert
			if fee == 0 {
				fee = st.Avgifter[0].Pris
			}
		}

		lat, _ := strconv.ParseFloat(st.Latitude, 64)
		lon, _ := strconv.ParseFloat(st.Longitude, 64)

		stations = append(stations, domain.TollStation{
			Name:   st.Navn,
			Fee:    fee,
			Coords: domain.Coordinates{Lat: lat, Lon: lon},
		})
	}

	return domain.TollResult{
		TotalFee: trip.Rabattert,
		Stations: stations,
	}, nil
}

func toAPIWaypoint(wp domain.Waypoint) apiWaypoint {
	return apiWaypoint{
		Latitude:  strconv.FormatFloat(wp.Coords.Lat, 'f', -1, 64),
		Longitude: strconv.FormatFloat(wp.Coords.Lon, 'f', -1, 64),
	}
}
