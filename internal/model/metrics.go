package model

// Metrics holds the secondary figures derived from a FinancialData record.
// Every field is finite; degenerate ratios resolve to 0.
type Metrics struct {
	TotalMonthlyIncome   float64 `json:"totalMonthlyIncome" yaml:"totalMonthlyIncome"`
	AnnualIncome         float64 `json:"annualIncome" yaml:"annualIncome"`
	TotalMonthlyExpenses float64 `json:"totalMonthlyExpenses" yaml:"totalMonthlyExpenses"`
	MonthlyCashFlow      float64 `json:"monthlyCashFlow" yaml:"monthlyCashFlow"`
	CashFlowRatio        float64 `json:"cashFlowRatio" yaml:"cashFlowRatio"` // percent of income

	TotalAssets            float64 `json:"totalAssets" yaml:"totalAssets"`
	TotalLiabilities       float64 `json:"totalLiabilities" yaml:"totalLiabilities"`
	NetWorth               float64 `json:"netWorth" yaml:"netWorth"`
	TotalLiquidAssets      float64 `json:"totalLiquidAssets" yaml:"totalLiquidAssets"`
	TotalRetirementSavings float64 `json:"totalRetirementSavings" yaml:"totalRetirementSavings"`
	TotalInvestments       float64 `json:"totalInvestments" yaml:"totalInvestments"`

	EmergencyFundMonths float64 `json:"emergencyFundMonths" yaml:"emergencyFundMonths"`
	DebtToIncomeRatio   float64 `json:"debtToIncomeRatio" yaml:"debtToIncomeRatio"` // balance vs monthly income, percent
	TotalDebtPayments   float64 `json:"totalDebtPayments" yaml:"totalDebtPayments"`
	DebtServiceRatio    float64 `json:"debtServiceRatio" yaml:"debtServiceRatio"`   // percent
	HousingCostRatio    float64 `json:"housingCostRatio" yaml:"housingCostRatio"`   // percent
	SavingsRate         float64 `json:"savingsRate" yaml:"savingsRate"`             // percent
	CreditUtilization   float64 `json:"creditUtilization" yaml:"creditUtilization"` // percent
	LiquidityRatio      float64 `json:"liquidityRatio" yaml:"liquidityRatio"`

	InvestmentRatio      float64 `json:"investmentRatio" yaml:"investmentRatio"`
	TargetEquityRatio    float64 `json:"targetEquityRatio" yaml:"targetEquityRatio"`
	AssetAllocationScore float64 `json:"assetAllocationScore" yaml:"assetAllocationScore"`

	Breakdown MetricsBreakdown `json:"breakdown" yaml:"breakdown"`
}

// MetricsBreakdown explains which raw numbers produced the headline metrics.
// It exists for display and is never fed back into scoring.
type MetricsBreakdown struct {
	Income            IncomeBreakdown  `json:"income" yaml:"income"`
	Expenses          ExpenseBreakdown `json:"expenses" yaml:"expenses"`
	Assets            AssetBreakdown   `json:"assets" yaml:"assets"`
	DebtToIncome      RatioBreakdown   `json:"debtToIncome" yaml:"debtToIncome"`
	SavingsRate       RatioBreakdown   `json:"savingsRate" yaml:"savingsRate"`
	CreditUtilization RatioBreakdown   `json:"creditUtilization" yaml:"creditUtilization"`
	EmergencyFund     RatioBreakdown   `json:"emergencyFund" yaml:"emergencyFund"`
}

// IncomeBreakdown splits income into earned, passive, and other streams.
type IncomeBreakdown struct {
	Earned  float64 `json:"earned" yaml:"earned"`   // salary, secondary, business
	Passive float64 `json:"passive" yaml:"passive"` // investment, rental
	Other   float64 `json:"other" yaml:"other"`     // benefits, other
}

// ExpenseBreakdown groups the expense categories.
type ExpenseBreakdown struct {
	Essential     float64 `json:"essential" yaml:"essential"`
	Discretionary float64 `json:"discretionary" yaml:"discretionary"`
	DebtService   float64 `json:"debtService" yaml:"debtService"`
}

// AssetBreakdown groups the asset categories.
type AssetBreakdown struct {
	Liquid      float64 `json:"liquid" yaml:"liquid"`
	Retirement  float64 `json:"retirement" yaml:"retirement"`
	Brokerage   float64 `json:"brokerage" yaml:"brokerage"`
	RealEstate  float64 `json:"realEstate" yaml:"realEstate"`
	Alternative float64 `json:"alternative" yaml:"alternative"`
}

// RatioBreakdown records the inputs of a ratio metric.
type RatioBreakdown struct {
	Numerator   float64 `json:"numerator" yaml:"numerator"`
	Denominator float64 `json:"denominator" yaml:"denominator"`
	Formula     string  `json:"formula" yaml:"formula"`
}
