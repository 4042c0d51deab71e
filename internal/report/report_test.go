package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
	"gopkg.in/yaml.v3"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/analyzer"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
)

func sampleResult(t *testing.T) *model.AnalysisResult {
	t.Helper()
	d := model.SampleData()
	res, err := analyzer.New().Analyze(&d)
	require.NoError(t, err)
	return res
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{" YAML ", FormatYAML, false},
		{"human", FormatHuman, false},
		{"csv", FormatCSV, false},
		{"xlsx", FormatXLSX, false},
		{"pdf", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.True(t, FormatXLSX.Binary())
	assert.False(t, FormatJSON.Binary())
}

func TestWriteJSON_UsesCamelCaseContract(t *testing.T) {
	res := sampleResult(t)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, res))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.EqualValues(t, 57, decoded["overallScore"])
	assert.Equal(t, "fair", decoded["healthLevel"])
	assert.Contains(t, decoded, "recommendations")

	metrics, ok := decoded["metrics"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 700, metrics["monthlyCashFlow"])

	var back model.AnalysisResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, res.OverallScore, back.OverallScore)
	assert.Len(t, back.Indicators, len(res.Indicators))
}

func TestWriteYAML(t *testing.T) {
	res := sampleResult(t)

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, res))
	assert.Contains(t, buf.String(), "overallScore: 57")

	var back model.AnalysisResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, res.HealthLevel, back.HealthLevel)
	assert.Equal(t, len(res.Recommendations), len(back.Recommendations))
}

func TestWriteHuman(t *testing.T) {
	res := sampleResult(t)

	var buf bytes.Buffer
	require.NoError(t, WriteHuman(&buf, res, false))
	out := buf.String()

	assert.Contains(t, out, "Financial Health Score: 57/100 (FAIR)")
	assert.Contains(t, out, "INDICATORS")
	assert.Contains(t, out, "Debt Management")
	assert.Contains(t, out, "Monthly cash flow")
	assert.Contains(t, out, "$700")
	assert.Contains(t, out, "1. [HIGH] Reduce your debt load")
	assert.NotContains(t, out, "\x1b[", "colors disabled")
}

func TestWriteHuman_NoRecommendations(t *testing.T) {
	res := &model.AnalysisResult{OverallScore: 95, HealthLevel: model.LevelExcellent}

	var buf bytes.Buffer
	require.NoError(t, WriteHuman(&buf, res, false))
	assert.Contains(t, buf.String(), "Nothing urgent")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteHuman_PropagatesWriteError(t *testing.T) {
	err := WriteHuman(failingWriter{}, sampleResult(t), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestWriteRecommendationsCSV(t *testing.T) {
	res := sampleResult(t)

	var buf bytes.Buffer
	require.NoError(t, WriteRecommendationsCSV(&buf, res.Recommendations))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(res.Recommendations)+1)
	assert.Equal(t, recommendationColumns, records[0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, res.Recommendations[0].ID, records[1][1])
	assert.Equal(t, "high", records[1][2])
	assert.Equal(t, strings.Join(res.Recommendations[0].ActionSteps, " | "), records[1][8])
}

func TestWriteSummaryCSV(t *testing.T) {
	rows := []SummaryRow{
		{File: "a.json", OverallScore: 57, HealthLevel: model.LevelFair, Mode: model.ModeComprehensive, Recommendations: 6, TopPriority: "debt-management"},
		{File: "b.yaml", Err: errors.New("validation failed: income.primarySalary: must be greater than 0")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSummaryCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"a.json", "ok", "57", "fair", "comprehensive", "6", "debt-management", ""}, records[1])
	assert.Equal(t, "failed", records[2][1])
	assert.Empty(t, records[2][2])
	assert.Contains(t, records[2][7], "primarySalary")
}

func TestWriteXLSX(t *testing.T) {
	res := sampleResult(t)

	path := filepath.Join(t.TempDir(), "report.xlsx")
	out, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteXLSX(out, res))
	require.NoError(t, out.Close())

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 4)
	assert.Equal(t, SheetSummary, f.Sheets[0].Name)
	assert.Equal(t, SheetRecommendations, f.Sheets[3].Name)

	indicators := f.Sheet[SheetIndicators]
	require.NotNil(t, indicators)
	assert.Len(t, indicators.Rows, len(res.Indicators)+1)
	assert.Equal(t, "spending-vs-income", indicators.Rows[1].Cells[0].String())

	recs := f.Sheet[SheetRecommendations]
	require.NotNil(t, recs)
	assert.Len(t, recs.Rows, len(res.Recommendations)+1)
	assert.Equal(t, res.Recommendations[0].ID, recs.Rows[1].Cells[0].String())

	summary := f.Sheet[SheetSummary]
	assert.Equal(t, "fair", summary.Rows[2].Cells[1].String())
}

func TestWrite_Dispatch(t *testing.T) {
	res := sampleResult(t)

	for _, format := range []Format{FormatHuman, FormatJSON, FormatYAML, FormatCSV, FormatXLSX} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, res, format, Options{}))
			assert.NotZero(t, buf.Len())
		})
	}

	assert.Error(t, Write(&bytes.Buffer{}, res, Format("pdf"), Options{}))
	assert.Error(t, Write(&bytes.Buffer{}, nil, FormatJSON, Options{}))
}
