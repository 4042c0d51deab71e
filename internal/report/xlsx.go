package report

import (
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
)

// Sheet names in the exported workbook.
const (
	SheetSummary         = "Summary"
	SheetIndicators      = "Indicators"
	SheetMetrics         = "Metrics"
	SheetRecommendations = "Recommendations"
)

// WriteXLSX writes a workbook with summary, indicator, metric, and
// recommendation sheets.
func WriteXLSX(w io.Writer, res *model.AnalysisResult) error {
	f, err := BuildWorkbook(res)
	if err != nil {
		return err
	}
	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "xlsx: write workbook")
	}
	return nil
}

// BuildWorkbook assembles the workbook in memory.
func BuildWorkbook(res *model.AnalysisResult) (*xlsx.File, error) {
	f := xlsx.NewFile()

	summary, err := f.AddSheet(SheetSummary)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: add summary sheet")
	}
	addStringRow(summary, "Field", "Value")
	row := summary.AddRow()
	row.AddCell().SetString("Overall score")
	row.AddCell().SetInt(res.OverallScore)
	addStringRow(summary, "Health level", string(res.HealthLevel))
	addStringRow(summary, "Mode", string(res.Mode))

	indicators, err := f.AddSheet(SheetIndicators)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: add indicators sheet")
	}
	addStringRow(indicators, "Key", "Name", "Score", "Status", "Weight", "Explanation")
	for _, ind := range res.Indicators {
		row := indicators.AddRow()
		row.AddCell().SetString(ind.Key)
		row.AddCell().SetString(ind.Name)
		row.AddCell().SetInt(ind.Score)
		row.AddCell().SetString(string(ind.Status))
		row.AddCell().SetInt(ind.Weight)
		row.AddCell().SetString(ind.Explanation)
	}

	metrics, err := f.AddSheet(SheetMetrics)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: add metrics sheet")
	}
	addStringRow(metrics, "Metric", "Value")
	for _, mv := range metricRows(&res.Metrics) {
		row := metrics.AddRow()
		row.AddCell().SetString(mv.name)
		row.AddCell().SetFloat(mv.value)
	}

	recs, err := f.AddSheet(SheetRecommendations)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: add recommendations sheet")
	}
	addStringRow(recs, "ID", "Priority", "Category", "Timeframe", "Impact", "Title", "Description", "Action Steps")
	for _, r := range res.Recommendations {
		addStringRow(recs, r.ID, string(r.Priority), string(r.Category), string(r.Timeframe),
			string(r.ImpactLevel), r.Title, r.Description, strings.Join(r.ActionSteps, "\n"))
	}

	return f, nil
}

func addStringRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}

type metricValue struct {
	name  string
	value float64
}

func metricRows(m *model.Metrics) []metricValue {
	return []metricValue{
		{"totalMonthlyIncome", m.TotalMonthlyIncome},
		{"annualIncome", m.AnnualIncome},
		{"totalMonthlyExpenses", m.TotalMonthlyExpenses},
		{"monthlyCashFlow", m.MonthlyCashFlow},
		{"totalAssets", m.TotalAssets},
		{"totalLiabilities", m.TotalLiabilities},
		{"netWorth", m.NetWorth},
		{"totalLiquidAssets", m.TotalLiquidAssets},
		{"totalRetirementSavings", m.TotalRetirementSavings},
		{"emergencyFundMonths", m.EmergencyFundMonths},
		{"debtToIncomeRatio", m.DebtToIncomeRatio},
		{"debtServiceRatio", m.DebtServiceRatio},
		{"housingCostRatio", m.HousingCostRatio},
		{"savingsRate", m.SavingsRate},
		{"creditUtilization", m.CreditUtilization},
		{"liquidityRatio", m.LiquidityRatio},
		{"assetAllocationScore", m.AssetAllocationScore},
	}
}
