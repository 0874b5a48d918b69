package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"drivecalc-service/internal/adapters/fuelprice"
	"drivecalc-service/internal/domain"

	"github.com/joho/godotenv"
)

// fueltool fetches the live fuel price listing and prints the snapshot the
// server would use, falling back the same way the API does. Handy for
// checking whether the scrape still matches the listing markup.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	provider := fuelprice.NewFuelfinderProvider()

	snapshot, err := provider.Prices(ctx)
	if err != nil {
		log.Printf("scrape failed (%v), showing fallback prices", err)
		snapshot = domain.FallbackFuelPrices()
	}

	for _, fuel := range []domain.FuelType{
		domain.FuelPetrol,
		domain.FuelDiesel,
		domain.FuelElectric,
		domain.FuelHybrid,
	} {
		fmt.Printf("%-8s %6.2f kr/%s\n", fuel, snapshot.PriceFor(fuel), fuel.ConsumptionUnit())
	}
}
