// Package advisor turns a scored financial record into a prioritized list of
// recommendations. Rules live in a declared registry and run in registry
// order; that order breaks ties between recommendations of equal priority and
// decides which of two recommendations sharing an id survives.
package advisor

import (
	"fmt"
	"math"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/health"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/money"
)

// Group names the input completeness a rule needs before it may run.
type Group string

const (
	GroupCommon   Group = "common"
	GroupMinimal  Group = "minimal"
	GroupFull     Group = "full"
	GroupFallback Group = "fallback"
)

// Eligible reports whether rules in g run for a record in the given mode.
// Common and fallback rules always run; minimal rules need a quick record and
// full rules a comprehensive one.
func (g Group) Eligible(mode model.Mode) bool {
	switch g {
	case GroupCommon, GroupFallback:
		return true
	case GroupMinimal:
		return mode == model.ModeQuick
	case GroupFull:
		return mode == model.ModeComprehensive
	default:
		return false
	}
}

// Input is everything a rule may look at.
type Input struct {
	Data       *model.FinancialData
	Metrics    *model.Metrics
	Indicators []model.Indicator
	Mode       model.Mode
}

func (in *Input) indicator(key string) (model.Indicator, bool) {
	for _, ind := range in.Indicators {
		if ind.Key == key {
			return ind, true
		}
	}
	return model.Indicator{}, false
}

// Rule produces at most one recommendation. Eval returns false when the rule
// does not apply or its inputs are not usable numbers.
type Rule struct {
	Name  string
	Group Group
	Eval  func(in *Input) (model.Recommendation, bool)
}

// Rules returns the registry in evaluation order: common rules, then minimal,
// then full, then one fallback rule per health indicator in indicator order.
func Rules() []Rule {
	rules := []Rule{
		{"emergency-fund", GroupCommon, emergencyFundRule},
		{"debt-to-income", GroupCommon, debtToIncomeRule},
		{"savings-rate", GroupCommon, savingsRateRule},
		{"negative-cash-flow", GroupCommon, negativeCashFlowRule},
		{"low-credit-score", GroupCommon, lowCreditScoreRule},

		{"housing-cost", GroupMinimal, housingCostRule},
		{"liquidity-cushion", GroupMinimal, liquidityCushionRule},

		{"investment-diversification", GroupFull, diversificationRule},
		{"dependents-insurance", GroupFull, dependentsInsuranceRule},
	}
	for _, e := range health.Evaluators() {
		rules = append(rules, fallbackRule(e.Key, e.Name))
	}
	return rules
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func emergencyFundRule(in *Input) (model.Recommendation, bool) {
	months, expenses := in.Metrics.EmergencyFundMonths, in.Metrics.TotalMonthlyExpenses
	if !finite(months, expenses) || expenses <= 0 || months >= 3 {
		return model.Recommendation{}, false
	}

	priority := model.PriorityMedium
	if months < 1 {
		priority = model.PriorityHigh
	}
	shortfall := health.EmergencyShortfall(months, expenses)

	return model.Recommendation{
		ID:       health.KeyEmergency,
		Category: model.CategorySavings,
		Priority: priority,
		Title:    "Build your emergency fund",
		Description: fmt.Sprintf("Your liquid savings cover %s of expenses. Three months is the minimum cushion.",
			money.Months(months)),
		ActionSteps: []string{
			fmt.Sprintf("Set aside %s more to reach three months of expenses.", money.Format(shortfall)),
			"Open a separate high-yield savings account for emergencies only.",
			fmt.Sprintf("Automate a monthly transfer toward a six-month target of %s.", money.Format(expenses*6)),
		},
		Timeframe:   model.TimeframeShortTerm,
		ImpactLevel: model.ImpactHigh,
	}, true
}

func debtToIncomeRule(in *Input) (model.Recommendation, bool) {
	dti := in.Metrics.DebtToIncomeRatio
	if !finite(dti, in.Metrics.TotalLiabilities) || dti < 36 {
		return model.Recommendation{}, false
	}

	return model.Recommendation{
		ID:       health.KeyDebt,
		Category: model.CategoryDebt,
		Priority: model.PriorityHigh,
		Title:    "Reduce your debt load",
		Description: fmt.Sprintf("Outstanding debt of %s is %s of monthly income. Lenders look for 36%% or less.",
			money.Format(in.Metrics.TotalLiabilities), money.Percent(dti, 0)),
		ActionSteps: []string{
			"List every debt with its balance and interest rate.",
			"Pay minimums on all debts and put extra money toward the highest rate first.",
			"Avoid new borrowing until the balance is falling every month.",
		},
		Timeframe:   model.TimeframeMediumTerm,
		ImpactLevel: model.ImpactHigh,
	}, true
}

func savingsRateRule(in *Input) (model.Recommendation, bool) {
	rate, income := in.Metrics.SavingsRate, in.Metrics.TotalMonthlyIncome
	if !finite(rate, income) || income <= 0 || rate >= 10 {
		return model.Recommendation{}, false
	}

	priority := model.PriorityMedium
	if rate < 0 {
		priority = model.PriorityHigh
	}
	target := income * 0.10

	return model.Recommendation{
		ID:          "savings-rate",
		Category:    model.CategorySavings,
		Priority:    priority,
		Title:       "Raise your savings rate",
		Description: fmt.Sprintf("You save %s of income after investing. A healthy rate is at least 10%%.", money.Percent(rate, 1)),
		ActionSteps: []string{
			fmt.Sprintf("Work toward saving %s per month.", money.Format(target)),
			"Move savings on payday so it never sits in checking.",
			"Redirect any raise or bonus straight into savings.",
		},
		Timeframe:   model.TimeframeShortTerm,
		ImpactLevel: model.ImpactMedium,
	}, true
}

func negativeCashFlowRule(in *Input) (model.Recommendation, bool) {
	flow := in.Metrics.MonthlyCashFlow
	if !finite(flow) || flow >= 0 {
		return model.Recommendation{}, false
	}

	steps := []string{
		fmt.Sprintf("Close the %s monthly gap between income and expenses.", money.Format(-flow)),
	}
	if disc := in.Metrics.Breakdown.Expenses.Discretionary; finite(disc) && disc > 0 {
		steps = append(steps, fmt.Sprintf("Start with the %s you spend on discretionary categories.", money.Format(disc)))
	}
	steps = append(steps, "Track every expense for one month to find leaks.")

	return model.Recommendation{
		ID:          health.KeySpending,
		Category:    model.CategorySpending,
		Priority:    model.PriorityHigh,
		Title:       "Stop spending more than you earn",
		Description: "Your expenses exceed your income, so savings or debt are covering the difference.",
		ActionSteps: steps,
		Timeframe:   model.TimeframeImmediate,
		ImpactLevel: model.ImpactHigh,
	}, true
}

func lowCreditScoreRule(in *Input) (model.Recommendation, bool) {
	score := in.Data.Liabilities.CreditScore
	if score < model.MinCreditScore || score > model.MaxCreditScore || score >= 670 {
		return model.Recommendation{}, false
	}

	priority := model.PriorityMedium
	if score < 580 {
		priority = model.PriorityHigh
	}
	steps := []string{
		"Pay every bill on time; payment history is the largest factor.",
		"Check your credit reports for errors and dispute them.",
	}
	if util := in.Metrics.CreditUtilization; finite(util) && util > 30 {
		steps = append(steps, fmt.Sprintf("Bring card utilization from %s down below 30%%.", money.Percent(util, 0)))
	}

	return model.Recommendation{
		ID:          health.KeyCredit,
		Category:    model.CategoryCredit,
		Priority:    priority,
		Title:       "Improve your credit score",
		Description: fmt.Sprintf("A score of %d limits your access to good rates. 670 and above is considered good.", score),
		ActionSteps: steps,
		Timeframe:   model.TimeframeMediumTerm,
		ImpactLevel: model.ImpactMedium,
	}, true
}

func housingCostRule(in *Input) (model.Recommendation, bool) {
	ratio, income := in.Metrics.HousingCostRatio, in.Metrics.TotalMonthlyIncome
	if !finite(ratio, income) || income <= 0 || ratio <= 30 {
		return model.Recommendation{}, false
	}

	priority := model.PriorityMedium
	if ratio > 40 {
		priority = model.PriorityHigh
	}

	return model.Recommendation{
		ID:       "housing-cost",
		Category: model.CategorySpending,
		Priority: priority,
		Title:    "Lower your housing costs",
		Description: fmt.Sprintf("Housing takes %s of your income. Keeping it at or below 30%% leaves room to save.",
			money.Percent(ratio, 0)),
		ActionSteps: []string{
			fmt.Sprintf("Aim for housing costs of %s or less per month.", money.Format(income*0.30)),
			"Look at refinancing, a roommate, or a cheaper home at renewal.",
		},
		Timeframe:   model.TimeframeLongTerm,
		ImpactLevel: model.ImpactHigh,
	}, true
}

func liquidityCushionRule(in *Input) (model.Recommendation, bool) {
	months, expenses := in.Metrics.EmergencyFundMonths, in.Metrics.TotalMonthlyExpenses
	if !finite(months, expenses) || expenses <= 0 || months >= 6 {
		return model.Recommendation{}, false
	}

	priority := model.PriorityLow
	if months < 3 {
		priority = model.PriorityMedium
	}

	return model.Recommendation{
		ID:       "liquidity-cushion",
		Category: model.CategorySavings,
		Priority: priority,
		Title:    "Grow your cash cushion to six months",
		Description: fmt.Sprintf("Cash on hand covers %s. Six months protects against a job loss.",
			money.Months(months)),
		ActionSteps: []string{
			fmt.Sprintf("Target %s in checking, savings, and money market accounts.", money.Format(expenses*6)),
			"Keep the cushion separate from day-to-day spending.",
		},
		Timeframe:   model.TimeframeMediumTerm,
		ImpactLevel: model.ImpactMedium,
	}, true
}

func diversificationRule(in *Input) (model.Recommendation, bool) {
	m := in.Metrics
	if !finite(m.AssetAllocationScore, m.InvestmentRatio, m.TargetEquityRatio, m.TotalAssets) ||
		m.TotalAssets <= 0 || m.AssetAllocationScore >= 70 {
		return model.Recommendation{}, false
	}

	return model.Recommendation{
		ID:       "investment-diversification",
		Category: model.CategoryInvestment,
		Priority: model.PriorityMedium,
		Title:    "Rebalance toward your target allocation",
		Description: fmt.Sprintf("About %s of your assets are invested against an age-based target of %s.",
			money.Percent(m.InvestmentRatio*100, 0), money.Percent(m.TargetEquityRatio*100, 0)),
		ActionSteps: []string{
			"Use low-cost index funds to spread risk across the market.",
			"Rebalance once a year back to your target mix.",
			"Increase retirement contributions if you are below target.",
		},
		Timeframe:   model.TimeframeLongTerm,
		ImpactLevel: model.ImpactMedium,
	}, true
}

func dependentsInsuranceRule(in *Input) (model.Recommendation, bool) {
	d := in.Data
	if d.PersonalInfo.Dependents <= 0 || (d.Insurance.Life && d.Insurance.Disability) {
		return model.Recommendation{}, false
	}

	var steps []string
	if !d.Insurance.Life {
		steps = append(steps, "Get term life coverage of roughly ten times annual income.")
	}
	if !d.Insurance.Disability {
		steps = append(steps, "Add disability insurance replacing 60-70% of income.")
	}
	steps = append(steps, "Check employer benefits before buying individual policies.")

	return model.Recommendation{
		ID:          "dependents-insurance",
		Category:    model.CategoryRisk,
		Priority:    model.PriorityHigh,
		Title:       "Protect your dependents",
		Description: fmt.Sprintf("You support %d dependent(s) without full life and disability coverage.", d.PersonalInfo.Dependents),
		ActionSteps: steps,
		Timeframe:   model.TimeframeShortTerm,
		ImpactLevel: model.ImpactHigh,
	}, true
}
