package models

import "time"

// Currency is the ISO code of a service's billing currency.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
	CurrencyCOP Currency = "COP"
)

// PriceType determines how a service's base price is applied.
type PriceType string

const (
	PriceTypeHourly PriceType = "hourly"
	PriceTypeDaily  PriceType = "daily"
	PriceTypeFixed  PriceType = "fixed"
)

// Service represents a price definition in the marketplace catalog.
// Services are never hard-deleted, only deactivated.
type Service struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`                 // e.g., "Dog Walking", "Overnight Sitting"
	Category           string    `json:"category"`             // e.g., "walking", "sitting", "grooming"
	BasePrice          float64   `json:"basePrice"`            // per unit, 2 decimal places
	Currency           Currency  `json:"currency"`
	PriceType          PriceType `json:"priceType"`            // hourly, daily or fixed
	CommissionPercent  float64   `json:"commissionPercent"`    // platform cut, 0-100
	Active             bool      `json:"active"`
	AverageMarketPrice float64   `json:"averageMarketPrice"`   // informational display value
	PopularityScore    float64   `json:"popularityScore"`
	LastUpdated        time.Time `json:"lastUpdated"`
}
