package pricing

import (
	"testing"

	"pawcare/models"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		amount   float64
		currency models.Currency
		expected string
	}{
		{15.5, models.CurrencyEUR, "15.50€"},
		{90, models.CurrencyEUR, "90.00€"},
		{1250.75, models.CurrencyEUR, "1,250.75€"},
		{15.5, models.CurrencyUSD, "$15.50"},
		{20, models.CurrencyGBP, "£20.00"},
		{1000, models.CurrencyCOP, "$1.000"},
		{85000, models.CurrencyCOP, "$85.000"},
		{1500000, models.CurrencyCOP, "$1.500.000"},
		{1500.5, models.CurrencyCOP, "$1.500,50"},
		{12, models.Currency("XXX"), "$12.00"},
	}
	for _, tc := range cases {
		if got := FormatPrice(tc.amount, tc.currency); got != tc.expected {
			t.Errorf("FormatPrice(%v, %s) = %q, want %q", tc.amount, tc.currency, got, tc.expected)
		}
	}
}

func TestFormatPriceIsStable(t *testing.T) {
	first := FormatPrice(85000, models.CurrencyCOP)
	for i := 0; i < 5; i++ {
		if got := FormatPrice(85000, models.CurrencyCOP); got != first {
			t.Fatalf("FormatPrice is not stable: %q then %q", first, got)
		}
	}
}
