package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
)

func TestCompute_Baseline(t *testing.T) {
	d := model.SampleData()
	m := Compute(&d)

	assert.InDelta(t, 5000, m.TotalMonthlyIncome, 0.001)
	assert.InDelta(t, 60000, m.AnnualIncome, 0.001)
	assert.InDelta(t, 4300, m.TotalMonthlyExpenses, 0.001)
	assert.InDelta(t, 700, m.MonthlyCashFlow, 0.001)
	assert.InDelta(t, 14, m.CashFlowRatio, 0.001)
	assert.InDelta(t, 35000, m.TotalAssets, 0.001)
	assert.InDelta(t, 25000, m.TotalLiabilities, 0.001)
	assert.InDelta(t, 10000, m.NetWorth, 0.001)
	assert.InDelta(t, 10000, m.TotalLiquidAssets, 0.001)
	assert.InDelta(t, 2.33, m.EmergencyFundMonths, 0.01)
	assert.InDelta(t, 500, m.DebtToIncomeRatio, 0.001)
	assert.InDelta(t, 8, m.SavingsRate, 0.001)
	assert.InDelta(t, 20, m.CreditUtilization, 0.001)
	assert.InDelta(t, 0.4, m.LiquidityRatio, 0.001)
	assert.InDelta(t, 97, m.AssetAllocationScore, 0.5)
	assert.InDelta(t, 800, m.TotalDebtPayments, 0.001)
	assert.InDelta(t, 16, m.DebtServiceRatio, 0.001)
	assert.InDelta(t, 30, m.HousingCostRatio, 0.001)
	assert.InDelta(t, 25000, m.TotalRetirementSavings, 0.001)
}

func TestCompute_Breakdown(t *testing.T) {
	d := model.SampleData()
	m := Compute(&d)

	b := m.Breakdown
	assert.InDelta(t, 5000, b.Income.Earned, 0.001)
	assert.InDelta(t, 2850, b.Expenses.Essential, 0.001)
	assert.InDelta(t, 650, b.Expenses.Discretionary, 0.001)
	assert.InDelta(t, 800, b.Expenses.DebtService, 0.001)
	assert.InDelta(t, 10000, b.Assets.Liquid, 0.001)
	assert.InDelta(t, 25000, b.Assets.Retirement, 0.001)
	assert.InDelta(t, 25000, b.DebtToIncome.Numerator, 0.001)
	assert.InDelta(t, 5000, b.DebtToIncome.Denominator, 0.001)
	assert.NotEmpty(t, b.SavingsRate.Formula)
}

func TestCompute_Nil(t *testing.T) {
	assert.Equal(t, model.Metrics{}, Compute(nil))
}

func TestCompute_EmptyRecordIsFinite(t *testing.T) {
	m := Compute(&model.FinancialData{})
	assert.Zero(t, m.EmergencyFundMonths)
	assert.Zero(t, m.DebtToIncomeRatio)
	assert.Zero(t, m.SavingsRate)
	assert.Zero(t, m.CreditUtilization)
	assert.Zero(t, m.LiquidityRatio)
	assert.Zero(t, m.InvestmentRatio)
	// Age 0 gives a target of 1.0 and no investments, so the score clips to 0.
	assert.Zero(t, m.AssetAllocationScore)
}

func TestCompute_NonFiniteInputsResolveToZero(t *testing.T) {
	d := model.SampleData()
	d.Income.SecondaryIncome = math.NaN()
	d.Expenses.Travel = math.Inf(1)
	d.Assets.Stocks = math.NaN()
	d.Liabilities.CreditCardDebt = math.Inf(1)
	d.Liabilities.TotalCreditLimit = math.NaN()

	m := Compute(&d)
	assert.InDelta(t, 5000, m.TotalMonthlyIncome, 0.001)
	assert.InDelta(t, 4100, m.TotalMonthlyExpenses, 0.001)
	assert.Zero(t, m.CreditUtilization)
	assertAllFinite(t, m)
}

func assertAllFinite(t *testing.T, m model.Metrics) {
	t.Helper()
	for name, v := range map[string]float64{
		"income":      m.TotalMonthlyIncome,
		"expenses":    m.TotalMonthlyExpenses,
		"cash_flow":   m.MonthlyCashFlow,
		"assets":      m.TotalAssets,
		"liabilities": m.TotalLiabilities,
		"net_worth":   m.NetWorth,
		"months":      m.EmergencyFundMonths,
		"dti":         m.DebtToIncomeRatio,
		"savings":     m.SavingsRate,
		"util":        m.CreditUtilization,
		"liquidity":   m.LiquidityRatio,
		"allocation":  m.AssetAllocationScore,
	} {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%s is not finite: %v", name, v)
	}
}

func TestEmergencyFundMonths(t *testing.T) {
	tests := []struct {
		name     string
		liquid   float64
		expenses float64
		want     float64
	}{
		{"zero expenses", 10000, 0, 0},
		{"negative expenses", 10000, -100, 0},
		{"nan expenses", 10000, math.NaN(), 0},
		{"three months", 9000, 3000, 3},
		{"no savings", 0, 3000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EmergencyFundMonths(tt.liquid, tt.expenses), 0.0001)
		})
	}
}

func TestEmergencyFundMonths_Monotonic(t *testing.T) {
	base := EmergencyFundMonths(10000, 4000)
	assert.Greater(t, EmergencyFundMonths(10001, 4000), base, "more liquid assets should increase months")
	assert.Less(t, EmergencyFundMonths(10000, 4001), base, "higher expenses should decrease months")
}

func TestDebtToIncomeRatio(t *testing.T) {
	tests := []struct {
		name   string
		debt   float64
		income float64
		want   float64
	}{
		{"no income with debt", 5000, 0, 100},
		{"negative income with debt", 5000, -10, 100},
		{"no income no debt", 0, 0, 0},
		{"balance vs monthly income exceeds 100", 25000, 5000, 500},
		{"low debt", 1000, 5000, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DebtToIncomeRatio(tt.debt, tt.income), 0.0001)
		})
	}
}

func TestSavingsRate(t *testing.T) {
	assert.InDelta(t, 8, SavingsRate(700, 300, 5000), 0.0001)
	assert.InDelta(t, -10, SavingsRate(-200, 300, 5000), 0.0001)
	assert.Zero(t, SavingsRate(700, 300, 0))
}

func TestCreditUtilization(t *testing.T) {
	assert.InDelta(t, 20, CreditUtilization(2000, 10000), 0.0001)
	assert.Zero(t, CreditUtilization(2000, 0))
	assert.InDelta(t, 150, CreditUtilization(1500, 1000), 0.0001)
}

func TestLiquidityRatio(t *testing.T) {
	tests := []struct {
		name        string
		liquid      float64
		liabilities float64
		want        float64
	}{
		{"with liabilities", 10000, 25000, 0.4},
		{"no liabilities with cash", 500, 0, 100},
		{"nothing", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, LiquidityRatio(tt.liquid, tt.liabilities), 0.0001)
		})
	}
}

func TestAssetAllocationScore(t *testing.T) {
	tests := []struct {
		name   string
		ratio  float64
		target float64
		want   float64
	}{
		{"exact match", 0.7, 0.7, 100},
		{"ten points off", 0.6, 0.7, 80},
		{"far off clips to zero", 0, 0.7, 0},
		{"nan ratio treated as zero", math.NaN(), 0.2, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AssetAllocationScore(tt.ratio, tt.target), 0.0001)
		})
	}
}

func TestInvestmentRatio(t *testing.T) {
	a := model.Assets{Employer401k: 10, IRA: 10, Brokerage: 10, Stocks: 10, Bonds: 60}
	assert.InDelta(t, 0.4, InvestmentRatio(a, 100), 0.0001)
	assert.Zero(t, InvestmentRatio(a, 0))
}
