package api

import (
	"net/http"

	"drivecalc-service/internal/api/handlers"
	"drivecalc-service/internal/domain"
	"drivecalc-service/internal/ports"
	"drivecalc-service/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/justinas/alice"
	"github.com/rs/cors"
)

// RouterDeps are the provider ports the API needs. Handlers stay unaware of
// concrete adapters; this is the API composition root.
type RouterDeps struct {
	Routes   ports.RouteProvider
	Searcher ports.LocationSearcher
	Tolls    ports.TollProvider
	Prices   ports.FuelPriceProvider
	Config   services.Config
	// AllowedOrigins for the browser frontend; empty means same-origin only.
	AllowedOrigins []string
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler with the middleware chain applied.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	tripHandler := &handlers.TripHandler{
		Routes:   deps.Routes,
		Tolls:    deps.Tolls,
		Prices:   deps.Prices,
		Config:   deps.Config,
		Validate: validator.New(),
	}
	locationHandler := &handlers.LocationHandler{Searcher: deps.Searcher}
	fuelPriceHandler := &handlers.FuelPriceHandler{
		Provider: deps.Prices,
		Fallback: domain.FallbackFuelPrices(),
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/locations/search", locationHandler.Search)
	mux.HandleFunc("/fuel-prices", fuelPriceHandler.Get)
	mux.HandleFunc("/trips/cost", tripHandler.CalculateCost)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: deps.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	chain := alice.New(
		requestIDMiddleware,
		loggingMiddleware,
		recoverPanic,
		corsHandler.Handler,
	)

	return chain.Then(mux)
}
