package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"drivecalc-service/internal/adapters/cache"
	"drivecalc-service/internal/adapters/fuelprice"
	"drivecalc-service/internal/adapters/routing"
	"drivecalc-service/internal/adapters/tolls"
	"drivecalc-service/internal/api"
	"drivecalc-service/internal/services"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (Mapbox, Bompenge, fuelfinder) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := getEnv("PORT", "8080")

	mapboxToken := os.Getenv("MAPBOX_TOKEN")
	if strings.TrimSpace(mapboxToken) == "" {
		log.Fatal("MAPBOX_TOKEN is required")
	}

	bompengeKey := os.Getenv("BOMPENGE_API_KEY")
	if strings.TrimSpace(bompengeKey) == "" {
		log.Fatal("BOMPENGE_API_KEY is required")
	}

	// Geocode caching is optional: without Redis every place name is geocoded
	// per request, which is exactly what the provider adapter expects.
	var routingOpts []routing.Option
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		geocodeCache := cache.NewRedisGeocodeCache(client, 24*time.Hour)
		routingOpts = append(routingOpts, routing.WithGeocodeCache(geocodeCache))
		log.Printf("geocode cache enabled addr=%s", addr)
	}

	routeProvider, err := routing.NewMapboxProvider(mapboxToken, routingOpts...)
	if err != nil {
		log.Fatal(err)
	}

	tollProvider, err := tolls.NewBompengeProvider(bompengeKey)
	if err != nil {
		log.Fatal(err)
	}

	priceProvider := fuelprice.NewFuelfinderProvider()

	var allowedOrigins []string
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}

	router := api.NewRouter(api.RouterDeps{
		Routes:         routeProvider,
		Searcher:       routeProvider,
		Tolls:          tollProvider,
		Prices:         priceProvider,
		Config:         services.DefaultConfig(),
		AllowedOrigins: allowedOrigins,
	})

	// Timeouts are tuned for the sequential outbound call chain
	// (geocode -> route -> tolls -> prices) on a cold geocode cache.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
