package config

import (
	"fmt"

	"github.com/Veraticus/project-ledger/internal/forecast"
	"github.com/spf13/viper"
)

// Report defaults.
const (
	DefaultOutput         = "dashboard.html"
	DefaultTitle          = "Project Financial Dashboard"
	DefaultCurrencySymbol = "€"
)

// Report holds the settings of generated dashboards.
type Report struct {
	Title          string
	Output         string
	CurrencySymbol string
	ForecastMonths int
}

// SetDefaults registers the defaults of every key this package reads.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("report.title", DefaultTitle)
	v.SetDefault("report.output", DefaultOutput)
	v.SetDefault("report.currency_symbol", DefaultCurrencySymbol)
	v.SetDefault("report.forecast_months", forecast.DefaultHorizon)
}

// LoadReport reads the report settings from the global viper instance.
func LoadReport() (Report, error) {
	r := Report{
		Title:          viper.GetString("report.title"),
		Output:         ExpandPath(viper.GetString("report.output")),
		CurrencySymbol: viper.GetString("report.currency_symbol"),
		ForecastMonths: viper.GetInt("report.forecast_months"),
	}

	if r.Title == "" {
		r.Title = DefaultTitle
	}
	if r.Output == "" {
		r.Output = DefaultOutput
	}
	if r.CurrencySymbol == "" {
		r.CurrencySymbol = DefaultCurrencySymbol
	}
	if r.ForecastMonths <= 0 {
		return Report{}, fmt.Errorf("report.forecast_months must be positive, got %d", r.ForecastMonths)
	}

	return r, nil
}
