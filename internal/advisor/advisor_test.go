package advisor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/health"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/metrics"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
)

func inputFor(d *model.FinancialData) *Input {
	m := metrics.Compute(d)
	return &Input{
		Data:       d,
		Metrics:    &m,
		Indicators: health.Evaluate(d, &m),
		Mode:       model.DetectMode(d),
	}
}

func ids(recs []model.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

func assertListInvariants(t *testing.T, recs []model.Recommendation) {
	t.Helper()
	assert.LessOrEqual(t, len(recs), MaxRecommendations)
	seen := map[string]bool{}
	for i, r := range recs {
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
		if i > 0 {
			assert.LessOrEqual(t, recs[i-1].Priority.Rank(), r.Priority.Rank(), "order broken at %d", i)
		}
	}
}

func TestGenerate_Baseline(t *testing.T) {
	d := model.SampleData()
	recs := Generate(inputFor(&d), 0)

	assertListInvariants(t, recs)
	assert.Equal(t, []string{
		health.KeyDebt,
		health.KeyEmergency,
		"savings-rate",
		health.KeyInsurance,
		"optimize-" + health.KeyEmergency,
		"optimize-" + health.KeyCredit,
	}, ids(recs))

	// The common debt rule wins over the critical debt-management fallback.
	assert.Equal(t, "Reduce your debt load", recs[0].Title)
}

func TestGenerate_SharedIDKeepsFirst(t *testing.T) {
	d := model.SampleData()
	d.Assets.Checking = 0
	d.Assets.Savings = 0
	d.Assets.EmergencyFund = 0

	in := inputFor(&d)
	emergency, ok := in.indicator(health.KeyEmergency)
	require.True(t, ok)
	require.Equal(t, model.StatusCritical, emergency.Status)

	collected := Collect(Rules(), in)
	count := 0
	for _, r := range collected {
		if r.ID == health.KeyEmergency {
			count++
		}
	}
	require.Equal(t, 2, count, "common and fallback rules should both fire")

	recs := Generate(in, MaxRecommendations)
	var matches []model.Recommendation
	for _, r := range recs {
		if r.ID == health.KeyEmergency {
			matches = append(matches, r)
		}
	}
	require.Len(t, matches, 1)
	assert.Equal(t, "Build your emergency fund", matches[0].Title)
	assert.Equal(t, model.PriorityHigh, matches[0].Priority)
}

func TestGenerate_ModeGating(t *testing.T) {
	quick := model.FinancialData{
		Mode:        model.ModeQuick,
		Income:      model.Income{PrimarySalary: 3000},
		Expenses:    model.Expenses{Housing: 1500, Food: 400},
		Assets:      model.Assets{Savings: 3000},
		Liabilities: model.Liabilities{CreditScore: 700},
		PersonalInfo: model.PersonalInfo{
			Age:        40,
			Dependents: 2,
		},
	}

	recs := ids(Generate(inputFor(&quick), 0))
	assert.Contains(t, recs, "housing-cost")
	assert.Contains(t, recs, "liquidity-cushion")
	assert.NotContains(t, recs, "dependents-insurance")
	assert.NotContains(t, recs, "investment-diversification")

	full := quick
	full.Mode = model.ModeComprehensive
	recs = ids(Generate(inputFor(&full), 0))
	assert.NotContains(t, recs, "housing-cost")
	assert.NotContains(t, recs, "liquidity-cushion")
	assert.Contains(t, recs, "dependents-insurance")
}

func TestGroupEligible(t *testing.T) {
	tests := []struct {
		group Group
		mode  model.Mode
		want  bool
	}{
		{GroupCommon, model.ModeUnknown, true},
		{GroupFallback, model.ModeQuick, true},
		{GroupMinimal, model.ModeQuick, true},
		{GroupMinimal, model.ModeComprehensive, false},
		{GroupMinimal, model.ModeUnknown, false},
		{GroupFull, model.ModeComprehensive, true},
		{GroupFull, model.ModeQuick, false},
		{Group("other"), model.ModeQuick, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.group)+"/"+string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.group.Eligible(tt.mode))
		})
	}
}

func TestPrioritize(t *testing.T) {
	recs := []model.Recommendation{
		{ID: "a", Priority: model.PriorityLow},
		{ID: "b", Priority: model.PriorityHigh},
		{ID: "c", Priority: model.PriorityMedium},
		{ID: "b", Priority: model.PriorityHigh, Title: "second b"},
		{ID: "d", Priority: model.PriorityHigh},
		{ID: "c", Priority: model.PriorityLow},
	}

	out := Prioritize(recs, 0)
	assert.Equal(t, []string{"b", "d", "c", "a"}, ids(out))
	assert.Empty(t, out[0].Title)
	assertListInvariants(t, out)

	// The input slice is left untouched.
	assert.Equal(t, "a", recs[0].ID)
}

func TestPrioritize_Limit(t *testing.T) {
	var recs []model.Recommendation
	for i := 0; i < 15; i++ {
		recs = append(recs, model.Recommendation{ID: string(rune('a' + i)), Priority: model.PriorityMedium})
	}

	assert.Len(t, Prioritize(recs, 0), MaxRecommendations)
	assert.Len(t, Prioritize(recs, 25), MaxRecommendations)
	assert.Len(t, Prioritize(recs, 3), 3)
	assert.Equal(t, []string{"a", "b", "c"}, ids(Prioritize(recs, 3)))
	assert.Empty(t, Prioritize(nil, 5))
}

func TestRules_RegistryOrder(t *testing.T) {
	rules := Rules()
	require.Len(t, rules, 9+health.IndicatorCount)

	rank := map[Group]int{GroupCommon: 0, GroupMinimal: 1, GroupFull: 2, GroupFallback: 3}
	for i := 1; i < len(rules); i++ {
		assert.LessOrEqual(t, rank[rules[i-1].Group], rank[rules[i].Group], "rule %s out of group order", rules[i].Name)
	}
	assert.Equal(t, "fallback-"+health.KeySpending, rules[9].Name)
}

func TestRules_NonFiniteInputsProduceNothing(t *testing.T) {
	nan := math.NaN()
	d := model.SampleData()
	m := model.Metrics{
		EmergencyFundMonths:  nan,
		TotalMonthlyExpenses: nan,
		DebtToIncomeRatio:    math.Inf(1),
		SavingsRate:          nan,
		TotalMonthlyIncome:   nan,
		MonthlyCashFlow:      nan,
		HousingCostRatio:     nan,
		AssetAllocationScore: nan,
	}
	in := &Input{Data: &d, Metrics: &m}

	for _, r := range Rules() {
		if r.Group == GroupFallback {
			continue
		}
		t.Run(r.Name, func(t *testing.T) {
			rec, ok := r.Eval(in)
			if r.Name == "low-credit-score" || r.Name == "dependents-insurance" {
				// These read integer fields only.
				return
			}
			assert.False(t, ok, "produced %+v", rec)
		})
	}
}

func TestEmergencyFundRule(t *testing.T) {
	tests := []struct {
		name     string
		months   float64
		expenses float64
		ok       bool
		priority model.Priority
	}{
		{"under one month", 0.5, 2000, true, model.PriorityHigh},
		{"two months", 2, 2000, true, model.PriorityMedium},
		{"three months", 3, 2000, false, ""},
		{"no expenses", 0, 0, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &Input{Data: &model.FinancialData{}, Metrics: &model.Metrics{EmergencyFundMonths: tt.months, TotalMonthlyExpenses: tt.expenses}}
			rec, ok := emergencyFundRule(in)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.priority, rec.Priority)
				assert.Equal(t, health.KeyEmergency, rec.ID)
			}
		})
	}

	rec, ok := emergencyFundRule(&Input{Metrics: &model.Metrics{EmergencyFundMonths: 1, TotalMonthlyExpenses: 2000}})
	require.True(t, ok)
	assert.Contains(t, rec.ActionSteps[0], "$4,000")
}

func TestThresholdRules(t *testing.T) {
	tests := []struct {
		name     string
		rule     func(*Input) (model.Recommendation, bool)
		data     model.FinancialData
		metrics  model.Metrics
		ok       bool
		priority model.Priority
	}{
		{"dti at 36", debtToIncomeRule, model.FinancialData{}, model.Metrics{DebtToIncomeRatio: 36}, true, model.PriorityHigh},
		{"dti below 36", debtToIncomeRule, model.FinancialData{}, model.Metrics{DebtToIncomeRatio: 35.9}, false, ""},
		{"savings rate negative", savingsRateRule, model.FinancialData{}, model.Metrics{SavingsRate: -4, TotalMonthlyIncome: 1000}, true, model.PriorityHigh},
		{"savings rate low", savingsRateRule, model.FinancialData{}, model.Metrics{SavingsRate: 9.9, TotalMonthlyIncome: 1000}, true, model.PriorityMedium},
		{"savings rate healthy", savingsRateRule, model.FinancialData{}, model.Metrics{SavingsRate: 10, TotalMonthlyIncome: 1000}, false, ""},
		{"savings rate without income", savingsRateRule, model.FinancialData{}, model.Metrics{SavingsRate: 0}, false, ""},
		{"cash flow negative", negativeCashFlowRule, model.FinancialData{}, model.Metrics{MonthlyCashFlow: -1}, true, model.PriorityHigh},
		{"cash flow zero", negativeCashFlowRule, model.FinancialData{}, model.Metrics{MonthlyCashFlow: 0}, false, ""},
		{"credit 669", lowCreditScoreRule, model.FinancialData{Liabilities: model.Liabilities{CreditScore: 669}}, model.Metrics{}, true, model.PriorityMedium},
		{"credit 579", lowCreditScoreRule, model.FinancialData{Liabilities: model.Liabilities{CreditScore: 579}}, model.Metrics{}, true, model.PriorityHigh},
		{"credit 670", lowCreditScoreRule, model.FinancialData{Liabilities: model.Liabilities{CreditScore: 670}}, model.Metrics{}, false, ""},
		{"credit out of range", lowCreditScoreRule, model.FinancialData{Liabilities: model.Liabilities{CreditScore: 100}}, model.Metrics{}, false, ""},
		{"housing 45", housingCostRule, model.FinancialData{}, model.Metrics{HousingCostRatio: 45, TotalMonthlyIncome: 1000}, true, model.PriorityHigh},
		{"housing 35", housingCostRule, model.FinancialData{}, model.Metrics{HousingCostRatio: 35, TotalMonthlyIncome: 1000}, true, model.PriorityMedium},
		{"housing 30", housingCostRule, model.FinancialData{}, model.Metrics{HousingCostRatio: 30, TotalMonthlyIncome: 1000}, false, ""},
		{"cushion 2 months", liquidityCushionRule, model.FinancialData{}, model.Metrics{EmergencyFundMonths: 2, TotalMonthlyExpenses: 100}, true, model.PriorityMedium},
		{"cushion 4 months", liquidityCushionRule, model.FinancialData{}, model.Metrics{EmergencyFundMonths: 4, TotalMonthlyExpenses: 100}, true, model.PriorityLow},
		{"cushion 6 months", liquidityCushionRule, model.FinancialData{}, model.Metrics{EmergencyFundMonths: 6, TotalMonthlyExpenses: 100}, false, ""},
		{"allocation poor", diversificationRule, model.FinancialData{}, model.Metrics{AssetAllocationScore: 40, TotalAssets: 1000}, true, model.PriorityMedium},
		{"allocation fine", diversificationRule, model.FinancialData{}, model.Metrics{AssetAllocationScore: 70, TotalAssets: 1000}, false, ""},
		{"dependents uninsured", dependentsInsuranceRule, model.FinancialData{PersonalInfo: model.PersonalInfo{Dependents: 1}, Insurance: model.Insurance{Life: true}}, model.Metrics{}, true, model.PriorityHigh},
		{"dependents insured", dependentsInsuranceRule, model.FinancialData{PersonalInfo: model.PersonalInfo{Dependents: 1}, Insurance: model.Insurance{Life: true, Disability: true}}, model.Metrics{}, false, ""},
		{"no dependents", dependentsInsuranceRule, model.FinancialData{}, model.Metrics{}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, m := tt.data, tt.metrics
			rec, ok := tt.rule(&Input{Data: &d, Metrics: &m})
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.priority, rec.Priority)
				assert.NotEmpty(t, rec.ID)
				assert.NotEmpty(t, rec.ActionSteps)
			}
		})
	}
}

func TestFallbackRule(t *testing.T) {
	rule := fallbackRule(health.KeyInsurance, "Insurance Confidence")

	tests := []struct {
		status   model.Status
		ok       bool
		id       string
		priority model.Priority
	}{
		{model.StatusCritical, true, health.KeyInsurance, model.PriorityHigh},
		{model.StatusPoor, true, health.KeyInsurance, model.PriorityMedium},
		{model.StatusFair, true, "optimize-" + health.KeyInsurance, model.PriorityLow},
		{model.StatusGood, false, "", ""},
		{model.StatusExcellent, false, "", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			in := &Input{Indicators: []model.Indicator{{Key: health.KeyInsurance, Status: tt.status, Score: 40}}}
			rec, ok := rule.Eval(in)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.id, rec.ID)
				assert.Equal(t, tt.priority, rec.Priority)
				assert.Equal(t, model.CategoryRisk, rec.Category)
				assert.NotEmpty(t, rec.ActionSteps)
			}
		})
	}

	_, ok := rule.Eval(&Input{})
	assert.False(t, ok, "missing indicator")
}

func TestGenerate_NilInput(t *testing.T) {
	assert.Empty(t, Generate(nil, 0))
	assert.Empty(t, Generate(&Input{}, 0))
}
