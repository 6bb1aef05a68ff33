package pricing

import (
	"math"
	"time"

	"pawcare/models"
)

const clockLayout = "15:04"

// round2 rounds to 2 decimal places using round-half-up. It is applied once
// at the end of a computation, never per intermediate step, so rounding
// drift cannot compound.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// CommissionGain returns the platform's cut of a price at the given
// commission percentage.
func CommissionGain(price, pct float64) float64 {
	return round2(price * pct / 100)
}

// MarketPrice returns the base price plus commission, used for
// informational display next to a sitter's asking price.
func MarketPrice(price, pct float64) float64 {
	return round2(price + CommissionGain(price, pct))
}

// ComputeDuration derives the billable units for a booking.
//
// For hourly services the start and end clock times ("HH:MM") are required
// and the duration is the elapsed time in hours, rounded to 2 decimals. A
// range that is empty, reversed or unparseable yields 0 together with
// ErrInvalidTimeRange; callers must block submission on it.
//
// For daily and fixed services the caller-selected day count is used as-is,
// defaulting to 1, with no time-of-day validation.
func ComputeDuration(start, end string, priceType models.PriceType, days int) (float64, error) {
	if priceType != models.PriceTypeHourly {
		if days <= 0 {
			days = 1
		}
		return float64(days), nil
	}

	startAt, err := time.Parse(clockLayout, start)
	if err != nil {
		return 0, ErrInvalidTimeRange
	}
	endAt, err := time.Parse(clockLayout, end)
	if err != nil {
		return 0, ErrInvalidTimeRange
	}
	if !endAt.After(startAt) {
		return 0, ErrInvalidTimeRange
	}

	minutes := endAt.Sub(startAt).Minutes()
	return round2(minutes / 60), nil
}

// ComputeTotal returns the total price for a booking. A pet count of zero
// still bills one unit; extra pets multiply the price.
func ComputeTotal(basePrice, durationUnits float64, petCount int) float64 {
	if petCount < 1 {
		petCount = 1
	}
	return round2(basePrice * durationUnits * float64(petCount))
}
