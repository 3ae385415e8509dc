package report

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amounts = message.NewPrinter(language.English)

// FormatCurrency renders an amount for display. Magnitudes of 100 and more
// are rounded to whole units with thousands separators; smaller amounts keep
// two decimals.
func FormatCurrency(amount float64, symbol string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	if amount < 100 {
		return amounts.Sprintf("%s%s%.2f", sign, symbol, amount)
	}
	return amounts.Sprintf("%s%s%d", sign, symbol, int64(math.Round(amount)))
}

// FormatHours renders an hour total with at most one decimal.
func FormatHours(hours float64) string {
	return strconv.FormatFloat(math.Round(hours*10)/10, 'f', -1, 64)
}

// FormatPercent renders a fraction as a percentage with up to two decimals.
func FormatPercent(fraction float64) string {
	return strconv.FormatFloat(math.Round(fraction*10000)/100, 'f', -1, 64) + "%"
}
