package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"pawcare/models"
)

// currencyFormat describes the display convention for one currency.
type currencyFormat struct {
	symbol           string
	trailingSymbol   bool   // "15.50€" rather than "€15.50"
	integerPreferred bool   // whole amounts render without decimals (e.g. COP)
	thousandsSep     string
	decimalSep       string
}

var currencyFormats = map[models.Currency]currencyFormat{
	models.CurrencyEUR: {symbol: "€", trailingSymbol: true, thousandsSep: ",", decimalSep: "."},
	models.CurrencyUSD: {symbol: "$", thousandsSep: ",", decimalSep: "."},
	models.CurrencyGBP: {symbol: "£", thousandsSep: ",", decimalSep: "."},
	models.CurrencyCOP: {symbol: "$", integerPreferred: true, thousandsSep: ".", decimalSep: ","},
}

var defaultFormat = currencyFormat{symbol: "$", thousandsSep: ",", decimalSep: "."}

// FormatPrice renders an amount in the display convention of its currency.
// The output is a pure function of (amount, currency).
func FormatPrice(amount float64, currency models.Currency) string {
	f, ok := currencyFormats[currency]
	if !ok {
		f = defaultFormat
	}

	digits := 2
	if f.integerPreferred && amount == math.Trunc(amount) {
		digits = 0
	}

	s := strconv.FormatFloat(amount, 'f', digits, 64)

	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	intPart = groupThousands(intPart, f.thousandsSep)

	num := intPart
	if fracPart != "" {
		num += f.decimalSep + fracPart
	}

	if f.trailingSymbol {
		return fmt.Sprintf("%s%s", num, f.symbol)
	}
	return fmt.Sprintf("%s%s", f.symbol, num)
}

func groupThousands(digits, sep string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	if len(digits) <= 3 || sep == "" {
		if neg {
			return "-" + digits
		}
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
