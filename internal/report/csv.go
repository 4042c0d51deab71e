package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
)

var recommendationColumns = []string{"rank", "id", "priority", "category", "timeframe", "impact", "title", "description", "action_steps"}

// WriteRecommendationsCSV writes one row per recommendation. Action steps
// are joined with " | ".
func WriteRecommendationsCSV(w io.Writer, recs []model.Recommendation) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(recommendationColumns); err != nil {
		return eris.Wrap(err, "report: write CSV header")
	}
	for i, r := range recs {
		row := []string{
			fmt.Sprintf("%d", i+1),
			r.ID,
			string(r.Priority),
			string(r.Category),
			string(r.Timeframe),
			string(r.ImpactLevel),
			r.Title,
			r.Description,
			strings.Join(r.ActionSteps, " | "),
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "report: write CSV row")
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "report: flush CSV")
}

// SummaryRow is one line of a batch summary.
type SummaryRow struct {
	File            string
	OverallScore    int
	HealthLevel     model.HealthLevel
	Mode            model.Mode
	Recommendations int
	TopPriority     string
	Err             error
}

var summaryColumns = []string{"file", "status", "overall_score", "health_level", "mode", "recommendations", "top_recommendation", "error"}

// WriteSummaryCSV writes a batch summary. Failed rows carry the error text
// and leave the score columns empty.
func WriteSummaryCSV(w io.Writer, rows []SummaryRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(summaryColumns); err != nil {
		return eris.Wrap(err, "report: write summary header")
	}
	for _, r := range rows {
		var row []string
		if r.Err != nil {
			row = []string{r.File, "failed", "", "", "", "", "", r.Err.Error()}
		} else {
			row = []string{
				r.File,
				"ok",
				fmt.Sprintf("%d", r.OverallScore),
				string(r.HealthLevel),
				string(r.Mode),
				fmt.Sprintf("%d", r.Recommendations),
				r.TopPriority,
				"",
			}
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "report: write summary row")
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "report: flush summary")
}
