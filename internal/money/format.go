// Package money renders amounts and ratios as the fixed display strings used
// inside indicator and recommendation text.
package money

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer returns a fresh US-English printer. Printers are not shared across
// calls so concurrent analyses never touch common state.
func printer() *message.Printer {
	return message.NewPrinter(language.AmericanEnglish)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Format renders a dollar amount rounded to whole dollars ("$1,500", "-$250").
func Format(amount float64) string {
	rounded := int64(math.Round(finite(amount)))
	if rounded < 0 {
		return "-$" + printer().Sprintf("%d", -rounded)
	}
	return "$" + printer().Sprintf("%d", rounded)
}

// Percent renders v as a percentage with the given number of decimals ("8.0%").
func Percent(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return printer().Sprintf(fmt.Sprintf("%%.%df%%%%", decimals), finite(v))
}

// Months renders a duration in months with one decimal ("2.3 months").
func Months(v float64) string {
	return fmt.Sprintf("%.1f months", finite(v))
}
