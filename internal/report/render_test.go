package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/Veraticus/project-ledger/internal/common"
	"github.com/Veraticus/project-ledger/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderDocument(t *testing.T, data *Data) *goquery.Document {
	t.Helper()

	renderer, err := NewRenderer("€")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, data))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestRenderSummary(t *testing.T) {
	doc := renderDocument(t, newTestAssembler().Assemble(sampleEvents(), "ledger.xlsx"))

	assert.Equal(t, "Test Dashboard", doc.Find("title").Text())
	assert.Equal(t, "report-1", doc.Find(`meta[name="report-id"]`).AttrOr("content", ""))
	assert.Equal(t, "€1,000", doc.Find(`[data-measure="budget_coverage"] .value`).Text())
	assert.Equal(t, "€900", doc.Find(`[data-measure="total_cost"] .value`).Text())
	assert.Equal(t, "€100", doc.Find(`[data-measure="remaining_budget"] .value`).Text())
	assert.Equal(t, "Missing Coverage", doc.Find(`[data-measure="coverage_gap"] h3`).Text())
	assert.Equal(t, "-€850", doc.Find(`[data-measure="coverage_gap"] .value`).Text())
	assert.Equal(t, "1800.0%", doc.Find(`[data-measure="coverage_ratio"] .value`).Text())
	assert.Equal(t, "2024-06-30", doc.Find("#filterTo").AttrOr("value", ""))

	assert.Equal(t, 2, doc.Find("#projectCards .project-card").Length())
	assert.Equal(t, 1, doc.Find(`.project-card[data-project="Apollo"] .project-status-indicator.green`).Length())
	assert.Equal(t, "1", doc.Find(`#statusLegend [data-status="critical"] .status-count-num`).Text())

	options := doc.Find("#filterKind option").Map(func(_ int, s *goquery.Selection) string { return s.AttrOr("value", "") })
	assert.Equal(t, []string{"all", "PurchaseOrder", "Invoice", "WorkingTime", "Purchase", "Closure"}, options)

	assert.Equal(t, len(sampleEvents()), doc.Find("#eventsTable tbody tr").Length())
	assert.Equal(t, 11, doc.Find("#eventsTable thead th").Length())
}

func TestRenderMonthlySummary(t *testing.T) {
	events := append(sampleEvents(),
		model.Event{Index: 9, Date: "2024-01-25", YearMonth: "2024-01", Kind: model.KindWorkingTime, Project: "Zeus", Hours: 2.5, ComputedCost: ptr(125)})
	doc := renderDocument(t, newTestAssembler().Assemble(events, "ledger.xlsx"))

	rows := doc.Find("#monthlySummary tbody tr")
	require.Equal(t, 1, rows.Length())
	cells := rows.First().Find("td").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Equal(t, []string{"2024-01", "6.5", "€325", "Apollo, Zeus"}, cells)
	assert.Equal(t, 4, doc.Find("#monthlySummary thead th").Length())
}

func TestRenderQuickFilters(t *testing.T) {
	doc := renderDocument(t, newTestAssembler().Assemble(sampleEvents(), "ledger.xlsx"))

	projects := doc.Find(`#quickFilters .quick-filter-btn[data-project]`).Map(func(_ int, s *goquery.Selection) string {
		return s.AttrOr("data-project", "")
	})
	assert.Equal(t, []string{"all", "Apollo", "Zeus"}, projects)
	assert.True(t, doc.Find(`.quick-filter-btn[data-project="all"]`).HasClass("active"))

	periods := doc.Find("#financialFilters .quick-filter-btn").Map(func(_ int, s *goquery.Selection) string {
		return s.Text() + " " + s.AttrOr("data-from", "") + ".." + s.AttrOr("data-to", "")
	})
	assert.Equal(t, []string{
		"FY24 2023-04-01..2024-03-31",
		"FY25 2024-04-01..2025-03-31",
		"FY24Q3 2023-10-01..2023-12-31",
		"FY24Q4 2024-01-01..2024-03-31",
		"FY25Q1 2024-04-01..2024-06-30",
	}, periods)

	months := doc.Find("#monthFilters .quick-filter-btn").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Equal(t, []string{"Dec-23", "Jan-24", "Feb-24", "Mar-24", "Jun-24"}, months)
}

func TestRenderEmbedsRulesAndEvents(t *testing.T) {
	events := sampleEvents()
	events[0].Comment = `</script><script>alert("x")</script>`
	doc := renderDocument(t, newTestAssembler().Assemble(events, "ledger.xlsx"))

	raw := doc.Find("#ledger-data").Text()
	require.NotEmpty(t, raw)

	var payload struct {
		Rules []struct {
			Kind   string `json:"kind"`
			Totals []struct {
				Measure string `json:"measure"`
				Source  string `json:"source"`
				When    string `json:"when"`
			} `json:"totals"`
		} `json:"rules"`
		Events   []model.Event `json:"events"`
		Projects []string      `json:"projects"`
		DateSpan DateSpan      `json:"date_span"`
		Currency string        `json:"currency"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	assert.Equal(t, events, payload.Events)
	assert.Equal(t, []string{"Apollo", "Zeus"}, payload.Projects)
	assert.Equal(t, "€", payload.Currency)
	require.Len(t, payload.Rules, 8)
	assert.Equal(t, "PurchaseOrder", payload.Rules[0].Kind)
	assert.Equal(t, "budget_coverage", payload.Rules[0].Totals[0].Measure)

	assert.Contains(t, doc.Find("script").Last().Text(), "var Ledger = (function ()")

	assert.Equal(t, 0, doc.Find("script").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), `alert("x")`) && s.AttrOr("id", "") != "ledger-data"
	}).Length())
}

func TestRenderHelp(t *testing.T) {
	doc := renderDocument(t, newTestAssembler().Assemble(sampleEvents(), "ledger.xlsx"))

	help := doc.Find("#help")
	assert.Equal(t, "Event rules", help.Find("h1").Text())
	assert.Equal(t, len(model.Kinds()), help.Find("table tbody tr").Length())
	assert.Contains(t, help.Find("table").Text(), "Financial Record")
}

func TestRenderFile(t *testing.T) {
	renderer, err := NewRenderer("$")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "dashboard.html")

	require.NoError(t, renderer.RenderFile(path, newTestAssembler().Assemble(sampleEvents(), "x.xlsx")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "$1,000")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}

func TestRenderFileUnwritable(t *testing.T) {
	renderer, err := NewRenderer("€")
	require.NoError(t, err)

	err = renderer.RenderFile(filepath.Join(t.TempDir(), "missing", "dashboard.html"), newTestAssembler().Assemble(nil, "x"))

	assert.ErrorIs(t, err, common.ErrReportWrite)
}
