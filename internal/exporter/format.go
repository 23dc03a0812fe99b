package exporter

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol prefixes every displayed money amount
const CurrencySymbol = "$"

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount formats v with thousands separators and two decimals,
// e.g. 18867.9245 -> "18,867.92".
func FormatAmount(v float64) string {
	return amountPrinter.Sprintf("%.2f", v)
}

// FormatCurrency formats v as a dollar amount, e.g. "$18,867.92"
func FormatCurrency(v float64) string {
	return CurrencySymbol + FormatAmount(v)
}

// formatCents formats v with exactly two decimals and no grouping.
// Non-finite values, which decimal cannot hold, fall back to strconv.
func formatCents(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// cellText is the text a value occupies in a cell, used for column widths.
// Whole finite floats keep a ".0" suffix, so 100000.0 measures 8 characters.
func cellText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		s := strconv.FormatFloat(x, 'f', -1, 64)
		if !math.IsNaN(x) && !math.IsInf(x, 0) && !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	default:
		return ""
	}
}
