// Package format provides locale-aware number formatting for CLI output.
//
// All report values are formatted with English thousand separators so tables
// stay readable regardless of the host locale.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Number formats an integer with thousand separators.
// Example: Number(485133) returns "485,133".
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// Float formats a float with the given precision and thousand separators in
// the integer part. Example: Float(782.68, 1) returns "782.7".
func Float(f float64, precision int) string {
	const base = 10
	multiplier := math.Pow(base, float64(precision))
	rounded := math.Round(f*multiplier) / multiplier

	if precision == 0 {
		return Number(int64(rounded))
	}

	formatted := fmt.Sprintf(fmt.Sprintf("%%.%df", precision), rounded)
	intPart, frac := splitDecimal(formatted)
	if frac != "" {
		var n int64
		if _, err := fmt.Sscanf(intPart, "%d", &n); err == nil {
			return printer.Sprintf("%d", n) + "." + frac
		}
	}
	return formatted
}

// Money formats a dollar amount rounded to whole dollars.
// Example: Money(90663.4) returns "$90,663".
func Money(v float64) string {
	if v < 0 {
		return "-$" + Number(int64(math.Round(-v)))
	}
	return "$" + Number(int64(math.Round(v)))
}

// Percent formats a fraction as a percentage with one decimal.
// Example: Percent(0.125) returns "12.5%".
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

// splitDecimal splits a formatted number into integer and fractional parts.
func splitDecimal(s string) (string, string) {
	for i, c := range s {
		if c == '.' {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}
