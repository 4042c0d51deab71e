// Package metrics derives cash-flow, balance-sheet, and ratio metrics from a
// financial data record.
package metrics

import (
	"math"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
)

// Compute derives the full metrics bag from d. It never fails: zero or
// negative denominators and non-finite inputs resolve to 0.
func Compute(d *model.FinancialData) model.Metrics {
	if d == nil {
		return model.Metrics{}
	}

	income := TotalIncome(d.Income)
	expenses := TotalExpenses(d.Expenses)
	cashFlow := income - expenses
	assets := TotalAssets(d.Assets)
	liabilities := TotalLiabilities(d.Liabilities)
	liquid := LiquidAssets(d.Assets)
	retirement := sum(d.Assets.Employer401k, d.Assets.IRA, d.Assets.RothIRA, d.Assets.Pension)
	investments := sum(d.Assets.Brokerage, d.Assets.Stocks, d.Assets.Bonds, d.Assets.MutualFunds)
	debtPayments := DebtPayments(d.Expenses)
	investing := finite(d.Behaviors.MonthlyInvestmentContribution)

	investmentRatio := InvestmentRatio(d.Assets, assets)
	target := TargetEquityRatio(d.PersonalInfo.Age)

	m := model.Metrics{
		TotalMonthlyIncome:   income,
		AnnualIncome:         income * 12,
		TotalMonthlyExpenses: expenses,
		MonthlyCashFlow:      cashFlow,
		CashFlowRatio:        percentOf(cashFlow, income),

		TotalAssets:            assets,
		TotalLiabilities:       liabilities,
		NetWorth:               assets - liabilities,
		TotalLiquidAssets:      liquid,
		TotalRetirementSavings: retirement,
		TotalInvestments:       investments,

		EmergencyFundMonths: EmergencyFundMonths(liquid, expenses),
		DebtToIncomeRatio:   DebtToIncomeRatio(liabilities, income),
		TotalDebtPayments:   debtPayments,
		DebtServiceRatio:    percentOf(debtPayments, income),
		HousingCostRatio:    percentOf(finite(d.Expenses.Housing), income),
		SavingsRate:         SavingsRate(cashFlow, investing, income),
		CreditUtilization:   CreditUtilization(finite(d.Liabilities.CreditCardDebt), finite(d.Liabilities.TotalCreditLimit)),
		LiquidityRatio:      LiquidityRatio(liquid, liabilities),

		InvestmentRatio:      investmentRatio,
		TargetEquityRatio:    target,
		AssetAllocationScore: AssetAllocationScore(investmentRatio, target),

		Breakdown: breakdown(d, income, expenses, liquid, liabilities, cashFlow, investing),
	}
	return sanitize(m)
}

// TotalIncome sums the seven monthly income streams.
func TotalIncome(in model.Income) float64 {
	return sum(in.PrimarySalary, in.SecondaryIncome, in.BusinessIncome, in.InvestmentIncome,
		in.RentalIncome, in.BenefitsIncome, in.OtherIncome)
}

// TotalExpenses sums the nineteen monthly expense categories.
func TotalExpenses(e model.Expenses) float64 {
	return essentialExpenses(e) + discretionaryExpenses(e) + DebtPayments(e)
}

// DebtPayments sums the monthly debt-service categories.
func DebtPayments(e model.Expenses) float64 {
	return sum(e.LoanPayments, e.CreditCardPayments, e.StudentLoanPayments, e.OtherDebtPayments)
}

func essentialExpenses(e model.Expenses) float64 {
	return sum(e.Housing, e.Utilities, e.Insurance, e.Childcare, e.Food, e.Transportation,
		e.Healthcare, e.Clothing, e.PersonalCare)
}

func discretionaryExpenses(e model.Expenses) float64 {
	return sum(e.Entertainment, e.DiningOut, e.Hobbies, e.Subscriptions, e.Shopping, e.Travel)
}

// TotalAssets sums the eighteen asset categories.
func TotalAssets(a model.Assets) float64 {
	return LiquidAssets(a) + finite(a.CertificatesOfDeposit) +
		sum(a.Employer401k, a.IRA, a.RothIRA, a.Pension) +
		sum(a.Brokerage, a.Stocks, a.Bonds, a.MutualFunds) +
		sum(a.PrimaryResidence, a.InvestmentProperty) +
		sum(a.Vehicles, a.Cryptocurrency, a.OtherAssets)
}

// TotalLiabilities sums the thirteen liability balances.
func TotalLiabilities(l model.Liabilities) float64 {
	return sum(l.Mortgage, l.HomeEquityLoan, l.AutoLoans, l.CreditCardDebt, l.StudentLoans,
		l.PersonalLoans, l.MedicalDebt, l.BusinessLoans, l.TaxDebt, l.PaydayLoans,
		l.FamilyLoans, l.BuyNowPayLater, l.OtherDebt)
}

// LiquidAssets is checking + savings + money market + emergency fund.
// Certificates of deposit are excluded because they are locked until maturity.
func LiquidAssets(a model.Assets) float64 {
	return sum(a.Checking, a.Savings, a.MoneyMarket, a.EmergencyFund)
}

// EmergencyFundMonths is how many months of expenses liquid assets cover.
// It is 0 when expenses are not positive.
func EmergencyFundMonths(liquid, expenses float64) float64 {
	if !(expenses > 0) {
		return 0
	}
	return finite(finite(liquid) / expenses)
}

// DebtToIncomeRatio compares the total outstanding debt balance to monthly
// income, as a percentage. Ratios above 100 are expected. With no income the
// ratio is 100 when any debt exists and 0 otherwise.
func DebtToIncomeRatio(debt, monthlyIncome float64) float64 {
	debt = finite(debt)
	if !(monthlyIncome > 0) {
		if debt > 0 {
			return 100
		}
		return 0
	}
	return finite(debt / monthlyIncome * 100)
}

// SavingsRate is the surplus left after investment contributions as a
// percentage of income.
func SavingsRate(cashFlow, investing, income float64) float64 {
	if !(income > 0) {
		return 0
	}
	return finite((finite(cashFlow) - finite(investing)) / income * 100)
}

// CreditUtilization is the credit card balance as a percentage of the limit.
func CreditUtilization(balance, limit float64) float64 {
	if !(limit > 0) {
		return 0
	}
	return finite(finite(balance) / limit * 100)
}

// LiquidityRatio is liquid assets divided by total liabilities.
func LiquidityRatio(liquid, liabilities float64) float64 {
	liquid = finite(liquid)
	switch {
	case liabilities > 0:
		return finite(liquid / liabilities)
	case liquid > 0:
		return 100
	default:
		return 0
	}
}

// InvestmentRatio is the equity-style share of total assets: 401k, IRA,
// brokerage, and individual stocks.
func InvestmentRatio(a model.Assets, totalAssets float64) float64 {
	if !(totalAssets > 0) {
		return 0
	}
	return finite(sum(a.Employer401k, a.IRA, a.Brokerage, a.Stocks) / totalAssets)
}

// TargetEquityRatio is the age-based equity target, (100 - age) / 100.
func TargetEquityRatio(age int) float64 {
	return float64(100-age) / 100
}

// AssetAllocationScore rates how close the investment ratio sits to the
// target, 100 at an exact match and losing 2 points per percentage point of
// drift, clipped to [0, 100].
func AssetAllocationScore(investmentRatio, target float64) float64 {
	score := 100 - math.Abs(finite(investmentRatio)-finite(target))*200
	return clamp(finite(score), 0, 100)
}

func breakdown(d *model.FinancialData, income, expenses, liquid, liabilities, cashFlow, investing float64) model.MetricsBreakdown {
	a := d.Assets
	return model.MetricsBreakdown{
		Income: model.IncomeBreakdown{
			Earned:  sum(d.Income.PrimarySalary, d.Income.SecondaryIncome, d.Income.BusinessIncome),
			Passive: sum(d.Income.InvestmentIncome, d.Income.RentalIncome),
			Other:   sum(d.Income.BenefitsIncome, d.Income.OtherIncome),
		},
		Expenses: model.ExpenseBreakdown{
			Essential:     essentialExpenses(d.Expenses),
			Discretionary: discretionaryExpenses(d.Expenses),
			DebtService:   DebtPayments(d.Expenses),
		},
		Assets: model.AssetBreakdown{
			Liquid:      liquid + finite(a.CertificatesOfDeposit),
			Retirement:  sum(a.Employer401k, a.IRA, a.RothIRA, a.Pension),
			Brokerage:   sum(a.Brokerage, a.Stocks, a.Bonds, a.MutualFunds),
			RealEstate:  sum(a.PrimaryResidence, a.InvestmentProperty),
			Alternative: sum(a.Vehicles, a.Cryptocurrency, a.OtherAssets),
		},
		DebtToIncome: model.RatioBreakdown{
			Numerator:   liabilities,
			Denominator: income,
			Formula:     "total debt balance / monthly income x 100",
		},
		SavingsRate: model.RatioBreakdown{
			Numerator:   cashFlow - investing,
			Denominator: income,
			Formula:     "(monthly cash flow - monthly investment contribution) / monthly income x 100",
		},
		CreditUtilization: model.RatioBreakdown{
			Numerator:   finite(d.Liabilities.CreditCardDebt),
			Denominator: finite(d.Liabilities.TotalCreditLimit),
			Formula:     "credit card debt / total credit limit x 100",
		},
		EmergencyFund: model.RatioBreakdown{
			Numerator:   liquid,
			Denominator: expenses,
			Formula:     "liquid assets / monthly expenses",
		},
	}
}
