package normalize

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	currencyCleaner = strings.NewReplacer("€", "", "$", "", ",", "", " ", "", "\u00a0", "")

	// dateLayouts are tried in order; the first match wins.
	dateLayouts = []string{
		"2006-1-2",
		"2/1/2006",
		"1/2/2006",
		"2006/1/2",
	}
)

// ParseAmount converts currency text into a number. Unparseable or empty text
// yields 0 and ok=false for non-empty input.
func ParseAmount(text string) (value float64, ok bool) {
	cleaned := currencyCleaner.Replace(strings.TrimSpace(text))
	if cleaned == "" {
		return 0, true
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, false
	}
	return d.InexactFloat64(), true
}

// ParseHours converts hour text into a non-negative number.
func ParseHours(text string) (value float64, ok bool) {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return 0, true
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil || d.IsNegative() {
		return 0, false
	}
	return d.InexactFloat64(), true
}

// ParseRate converts rate text into a fraction. A percent sign divides by 100;
// bare numbers are kept literally. It returns nil when no rate is given or the
// text is not a number, so an unspecified rate stays distinct from zero.
func ParseRate(text string) (rate *float64, ok bool) {
	cleaned := currencyCleaner.Replace(strings.TrimSpace(text))
	if cleaned == "" {
		return nil, true
	}
	percent := strings.Contains(cleaned, "%")
	cleaned = strings.ReplaceAll(cleaned, "%", "")

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil, false
	}
	if percent {
		d = d.Div(hundred)
	}
	v := d.InexactFloat64()
	return &v, true
}

// NormalizeDate reduces a native or textual date to YYYY-MM-DD. Trailing
// time-of-day text is discarded before matching. When nothing matches the
// original text is returned with ok=false.
func NormalizeDate(text string, native *time.Time) (date string, ok bool) {
	if native != nil {
		return native.Format(time.DateOnly), true
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}

	candidate := trimmed
	if i := strings.IndexByte(candidate, ' '); i >= 0 {
		candidate = candidate[:i]
	}
	if len(candidate) > 10 && candidate[10] == 'T' {
		candidate = candidate[:10]
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, candidate); err == nil {
			return t.Format(time.DateOnly), true
		}
	}
	return trimmed, false
}
