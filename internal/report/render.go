package report

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/project-ledger/internal/common"
	"github.com/Veraticus/project-ledger/internal/ledger"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed assets/dashboard.css
var stylesheet string

//go:embed assets/ledger.js
var ledgerScript string

//go:embed assets/dashboard.js
var dashboardScript string

// ChartJSURL is the charting library the dashboard loads.
const ChartJSURL = "https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"

// Renderer writes dashboards.
type Renderer struct {
	tmpl     *template.Template
	markdown goldmark.Markdown
	currency string
}

// NewRenderer parses the embedded templates.
func NewRenderer(currency string) (*Renderer, error) {
	r := &Renderer{
		markdown: goldmark.New(goldmark.WithExtensions(extension.Table)),
		currency: currency,
	}

	tmpl, err := template.New("dashboard.html.tmpl").
		Funcs(r.funcs()).
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

type view struct {
	*Data
	Help      template.HTML
	Payload   template.JS
	Styles    template.CSS
	Script    template.JS
	ChartJS   string
	Generated string
	Global    *ledger.Rollup
	Monthly   []ledger.MonthSummary
}

// Render writes the dashboard HTML for data to w.
func (r *Renderer) Render(w io.Writer, data *Data) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode report data: %w", err)
	}

	help, err := r.help()
	if err != nil {
		return err
	}

	v := view{
		Data:      data,
		Help:      help,
		Payload:   template.JS(payload), // #nosec G203 -- json.Marshal escapes <, > and &
		Styles:    template.CSS(stylesheet),
		Script:    template.JS(ledgerScript + "\n" + dashboardScript), // #nosec G203 -- embedded static assets
		ChartJS:   ChartJSURL,
		Generated: data.GeneratedAt.Format("2006-01-02 15:04"),
		Global:    data.Result.Global,
		Monthly:   data.Result.MonthlySummary(),
	}
	return r.tmpl.Execute(w, v)
}

// RenderFile renders to a temporary file and renames it into place, so a
// failed render never leaves a truncated dashboard behind.
func (r *Renderer) RenderFile(path string, data *Data) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, data); err != nil {
		return fmt.Errorf("%w: %w", common.ErrReportWrite, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".ledger-*.html")
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrReportWrite, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %w", common.ErrReportWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", common.ErrReportWrite, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil { // #nosec G302 -- the report is meant to be shared
		return fmt.Errorf("%w: %w", common.ErrReportWrite, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", common.ErrReportWrite, err)
	}
	return nil
}

func (r *Renderer) help() (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(ledger.RulesMarkdown()), &buf); err != nil {
		return "", fmt.Errorf("failed to render rule help: %w", err)
	}
	return template.HTML(buf.String()), nil // #nosec G203 -- generated from the static rule table
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"money":   func(v float64) string { return FormatCurrency(v, r.currency) },
		"hours":   FormatHours,
		"percent": FormatPercent,
		"join":    func(s []string) string { return strings.Join(s, ", ") },
		"sign": func(v float64) string {
			if v < 0 {
				return "negative"
			}
			return "positive"
		},
	}
}
