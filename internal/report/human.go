package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rotisserie/eris"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/money"
)

type palette struct {
	title, heading, dim *color.Color
	excellent, good     *color.Color
	fair, poor, crit    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		title:     color.New(color.FgWhite, color.Bold),
		heading:   color.New(color.FgCyan, color.Bold),
		dim:       color.New(color.FgHiBlack),
		excellent: color.New(color.FgGreen, color.Bold),
		good:      color.New(color.FgGreen),
		fair:      color.New(color.FgYellow),
		poor:      color.New(color.FgRed),
		crit:      color.New(color.FgRed, color.Bold),
	}
	if !enabled {
		for _, c := range []*color.Color{p.title, p.heading, p.dim, p.excellent, p.good, p.fair, p.poor, p.crit} {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) status(s string) *color.Color {
	switch s {
	case "excellent":
		return p.excellent
	case "good":
		return p.good
	case "fair":
		return p.fair
	case "poor", "limited", "high":
		return p.poor
	case "critical":
		return p.crit
	default:
		return p.dim
	}
}

// errWriter remembers the first write error so rendering code stays linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(c *color.Color, format string, args ...any) {
	if e.err != nil {
		return
	}
	if c == nil {
		_, e.err = fmt.Fprintf(e.w, format, args...)
		return
	}
	_, e.err = c.Fprintf(e.w, format, args...)
}

// WriteHuman renders a terminal report. Colors are used only when enabled
// and the color library has not detected a non-terminal output.
func WriteHuman(w io.Writer, res *model.AnalysisResult, useColor bool) error {
	p := newPalette(useColor)
	ew := &errWriter{w: w}

	ew.printf(p.title, "Financial Health Score: ")
	ew.printf(p.status(string(res.HealthLevel)), "%d/100 (%s)\n", res.OverallScore, strings.ToUpper(string(res.HealthLevel)))
	if res.Mode != model.ModeUnknown {
		ew.printf(p.dim, "Assessment: %s\n", res.Mode)
	}

	ew.printf(nil, "\n")
	ew.printf(p.heading, "INDICATORS\n")
	for _, ind := range res.Indicators {
		ew.printf(nil, "  %-30s ", ind.Name)
		ew.printf(p.status(string(ind.Status)), "%3d  %-9s", ind.Score, ind.Status)
		ew.printf(p.dim, " weight %d\n", ind.Weight)
		for _, sm := range ind.Metrics {
			ew.printf(nil, "      %s: %s", sm.Title, sm.Value)
			ew.printf(p.dim, " (target: %s)\n", sm.Benchmark)
		}
	}

	m := res.Metrics
	ew.printf(nil, "\n")
	ew.printf(p.heading, "KEY METRICS\n")
	for _, row := range [][2]string{
		{"Monthly income", money.Format(m.TotalMonthlyIncome)},
		{"Monthly expenses", money.Format(m.TotalMonthlyExpenses)},
		{"Monthly cash flow", money.Format(m.MonthlyCashFlow)},
		{"Net worth", money.Format(m.NetWorth)},
		{"Emergency fund", money.Months(m.EmergencyFundMonths)},
		{"Debt-to-income", money.Percent(m.DebtToIncomeRatio, 0)},
		{"Savings rate", money.Percent(m.SavingsRate, 1)},
		{"Credit utilization", money.Percent(m.CreditUtilization, 0)},
		{"Asset allocation score", fmt.Sprintf("%.0f/100", m.AssetAllocationScore)},
	} {
		ew.printf(nil, "  %-24s %s\n", row[0], row[1])
	}

	ew.printf(nil, "\n")
	ew.printf(p.heading, "RECOMMENDATIONS\n")
	if len(res.Recommendations) == 0 {
		ew.printf(p.good, "  Nothing urgent. Keep doing what you are doing.\n")
	}
	for i, rec := range res.Recommendations {
		ew.printf(nil, "  %d. ", i+1)
		ew.printf(p.status(string(rec.Priority)), "[%s]", strings.ToUpper(string(rec.Priority)))
		ew.printf(p.title, " %s", rec.Title)
		ew.printf(p.dim, " (%s, %s)\n", rec.Category, rec.Timeframe)
		ew.printf(nil, "     %s\n", rec.Description)
		for _, step := range rec.ActionSteps {
			ew.printf(nil, "     - %s\n", step)
		}
	}

	if ew.err != nil {
		return eris.Wrap(ew.err, "report: write human report")
	}
	return nil
}
