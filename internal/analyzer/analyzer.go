// Package analyzer runs the full financial-health analysis: precondition
// check, metrics, indicators, overall score, and recommendations.
package analyzer

import (
	"go.uber.org/zap"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/advisor"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/health"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/metrics"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
)

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger analysis events are reported to.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.log = l
		}
	}
}

// WithMaxRecommendations caps the recommendation list. Values outside
// 1..advisor.MaxRecommendations fall back to the maximum.
func WithMaxRecommendations(n int) Option {
	return func(a *Analyzer) {
		a.maxRecs = n
	}
}

// Analyzer is safe for concurrent use; it holds only configuration.
type Analyzer struct {
	log     *zap.Logger
	maxRecs int
}

// New creates an Analyzer. Without WithLogger it logs nothing.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		log:     zap.NewNop(),
		maxRecs: advisor.MaxRecommendations,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Analyze scores d and builds its recommendations. It returns a
// *model.ValidationError, and computes nothing, when d fails the
// preconditions. d is not modified.
func (a *Analyzer) Analyze(d *model.FinancialData) (*model.AnalysisResult, error) {
	if err := model.CheckPreconditions(d); err != nil {
		a.log.Warn("analyzer: rejected record", zap.Error(err))
		return nil, err
	}

	mode := model.DetectMode(d)
	m := metrics.Compute(d)
	a.log.Debug("analyzer: metrics computed",
		zap.String("mode", string(mode)),
		zap.Float64("monthly_income", m.TotalMonthlyIncome),
		zap.Float64("monthly_expenses", m.TotalMonthlyExpenses),
		zap.Float64("emergency_months", m.EmergencyFundMonths),
		zap.Float64("debt_to_income", m.DebtToIncomeRatio),
	)

	indicators := health.Evaluate(d, &m)
	score, level := health.Aggregate(indicators)

	recs := advisor.Generate(&advisor.Input{
		Data:       d,
		Metrics:    &m,
		Indicators: indicators,
		Mode:       mode,
	}, a.maxRecs)

	a.log.Info("analyzer: analysis complete",
		zap.Int("overall_score", score),
		zap.String("health_level", string(level)),
		zap.String("mode", string(mode)),
		zap.Int("recommendations", len(recs)),
	)

	return &model.AnalysisResult{
		OverallScore:    score,
		HealthLevel:     level,
		Mode:            mode,
		Indicators:      indicators,
		Metrics:         m,
		Recommendations: recs,
	}, nil
}
