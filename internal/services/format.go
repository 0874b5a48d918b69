package services

import (
	"fmt"
	"math"

	"drivecalc-service/internal/domain"
)

// Display formatting for the calculator results. Rounding happens here only;
// the breakdown itself keeps full precision.

// FormatDistance renders meters as kilometers with one decimal.
func FormatDistance(meters float64) string {
	return fmt.Sprintf("%.1f km", meters/1000)
}

// FormatDuration renders seconds in the largest sensible unit, rounded to a
// whole number: days from 24h, hours from 1h, minutes below that.
func FormatDuration(seconds float64) string {
	switch {
	case seconds >= 86400:
		return fmt.Sprintf("%d dager", int(math.Round(seconds/86400)))
	case seconds >= 3600:
		return fmt.Sprintf("%d timer", int(math.Round(seconds/3600)))
	default:
		return fmt.Sprintf("%d minutter", int(math.Round(seconds/60)))
	}
}

// FormatConsumption renders fuel volume with one decimal and its unit.
func FormatConsumption(volume float64, fuel domain.FuelType) string {
	return fmt.Sprintf("%.1f %s", volume, fuel.ConsumptionUnit())
}

// FormatMoney renders kroner with two decimals.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f kr", amount)
}
