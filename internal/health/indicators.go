// Package health evaluates the eight weighted financial-health indicators and
// folds them into an overall score.
package health

import (
	"fmt"
	"math"
	"strings"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/money"
)

// Indicator keys, in evaluation order.
const (
	KeySpending    = "spending-vs-income"
	KeyBills       = "bill-payment"
	KeyEmergency   = "emergency-savings"
	KeyDebt        = "debt-management"
	KeyCredit      = "credit-health"
	KeyInsurance   = "insurance-confidence"
	KeyLongTerm    = "long-term-goals"
	KeyEngagement  = "planning-engagement"
	IndicatorCount = 8
)

// Evaluator computes one indicator from a record and its metrics.
type Evaluator struct {
	Key    string
	Name   string
	Weight int
	Eval   func(d *model.FinancialData, m *model.Metrics) model.Indicator
}

// Evaluators returns the eight indicator evaluators in their fixed order.
// Weights sum to 105; Aggregate normalizes by the actual sum.
func Evaluators() []Evaluator {
	return []Evaluator{
		{KeySpending, "Spending vs Income", 15, evalSpending},
		{KeyBills, "Bill Payment Reliability", 15, evalBills},
		{KeyEmergency, "Emergency Savings", 20, evalEmergency},
		{KeyDebt, "Debt Management", 15, evalDebt},
		{KeyCredit, "Credit Health", 10, evalCredit},
		{KeyInsurance, "Insurance Confidence", 10, evalInsurance},
		{KeyLongTerm, "Long-term Goal Confidence", 10, evalLongTerm},
		{KeyEngagement, "Financial Planning Engagement", 10, evalEngagement},
	}
}

// Evaluate runs every evaluator against the same record and metrics.
func Evaluate(d *model.FinancialData, m *model.Metrics) []model.Indicator {
	evals := Evaluators()
	out := make([]model.Indicator, 0, len(evals))
	for _, e := range evals {
		ind := e.Eval(d, m)
		ind.Key = e.Key
		ind.Name = e.Name
		ind.Weight = e.Weight
		ind.Score = clampScore(ind.Score)
		if ind.Metrics == nil {
			ind.Metrics = []model.SubMetric{}
		}
		if ind.Recommendations == nil {
			ind.Recommendations = []string{}
		}
		out = append(out, ind)
	}
	return out
}

func evalSpending(d *model.FinancialData, m *model.Metrics) model.Indicator {
	ratio := m.CashFlowRatio
	var ind model.Indicator
	switch {
	case ratio >= 20:
		ind.Status, ind.Score = model.StatusExcellent, 100
	case ratio >= 10:
		ind.Status, ind.Score = model.StatusGood, 80
	case ratio >= 5:
		ind.Status, ind.Score = model.StatusFair, 60
	case ratio > 0:
		ind.Status, ind.Score = model.StatusPoor, 40
	default:
		ind.Status, ind.Score = model.StatusCritical, 0
	}

	ind.Metrics = []model.SubMetric{
		{
			Title:     "Monthly Cash Flow",
			Value:     money.Format(m.MonthlyCashFlow),
			Status:    ind.Status,
			Benchmark: "Positive every month",
		},
		{
			Title:     "Income Kept",
			Value:     money.Percent(ratio, 1),
			Status:    ind.Status,
			Benchmark: "20% or more of income",
		},
	}

	if ratio < 20 {
		target := m.TotalMonthlyIncome * 0.20
		ind.Recommendations = append(ind.Recommendations,
			fmt.Sprintf("Aim to keep %s per month (20%% of income) after expenses.", money.Format(target)))
	}
	if m.MonthlyCashFlow <= 0 {
		ind.Recommendations = append(ind.Recommendations,
			"Cut discretionary spending until monthly cash flow is positive.")
	}
	if disc := m.Breakdown.Expenses.Discretionary; disc > 0 && ratio < 10 {
		ind.Recommendations = append(ind.Recommendations,
			fmt.Sprintf("Review %s of monthly discretionary spending for savings.", money.Format(disc)))
	}

	ind.Explanation = fmt.Sprintf("You keep %s of your income after expenses each month.", money.Percent(ratio, 1))
	return ind
}

func evalBills(d *model.FinancialData, _ *model.Metrics) model.Indicator {
	var ind model.Indicator
	var label string
	switch d.Behaviors.BillPayment {
	case model.BillsAlwaysOnTime:
		ind.Status, ind.Score, label = model.StatusExcellent, 100, "Always on time"
	case model.BillsUsuallyOnTime:
		ind.Status, ind.Score, label = model.StatusGood, 75, "Usually on time"
	case model.BillsSometimesLate:
		ind.Status, ind.Score, label = model.StatusFair, 50, "Sometimes late"
	case model.BillsOftenLate:
		ind.Status, ind.Score, label = model.StatusPoor, 25, "Often late"
	default:
		ind.Status, ind.Score, label = model.StatusCritical, 0, "Rarely on time"
	}

	ind.Metrics = []model.SubMetric{{
		Title:     "Payment History",
		Value:     label,
		Status:    ind.Status,
		Benchmark: "Every bill paid on time",
	}}

	if ind.Score < 100 {
		ind.Recommendations = append(ind.Recommendations,
			"Set up automatic payments for at least the minimum due on every bill.")
	}
	if ind.Score <= 50 {
		ind.Recommendations = append(ind.Recommendations,
			"Use calendar reminders a few days before each due date.")
	}

	ind.Explanation = fmt.Sprintf("Payment history is %s; it is the largest factor in your credit score.", strings.ToLower(label))
	return ind
}

func evalEmergency(_ *model.FinancialData, m *model.Metrics) model.Indicator {
	months := m.EmergencyFundMonths
	var ind model.Indicator
	switch {
	case months >= 6:
		ind.Status, ind.Score = model.StatusExcellent, 100
	case months >= 3:
		ind.Status, ind.Score = model.StatusGood, 80
	case months >= 1:
		ind.Status, ind.Score = model.StatusFair, 60
	case months > 0:
		ind.Status, ind.Score = model.StatusPoor, 30
	default:
		ind.Status, ind.Score = model.StatusCritical, 0
	}

	ind.Metrics = []model.SubMetric{
		{
			Title:     "Months Covered",
			Value:     money.Months(months),
			Status:    ind.Status,
			Benchmark: "3-6 months of expenses",
		},
		{
			Title:     "Liquid Savings",
			Value:     money.Format(m.TotalLiquidAssets),
			Status:    ind.Status,
			Benchmark: money.Format(m.TotalMonthlyExpenses*3) + " minimum",
		},
	}

	if shortfall := EmergencyShortfall(months, m.TotalMonthlyExpenses); shortfall > 0 {
		ind.Recommendations = append(ind.Recommendations,
			fmt.Sprintf("Build your emergency fund by %s to reach 3 months of expenses.", money.Format(shortfall)))
	}
	if months < 6 {
		ind.Recommendations = append(ind.Recommendations,
			"Keep emergency savings in a separate high-yield savings account.")
	}

	ind.Explanation = fmt.Sprintf("Your liquid savings would cover %s of expenses.", money.Months(months))
	return ind
}

// EmergencyShortfall is the amount needed to reach three months of expenses.
func EmergencyShortfall(months, expenses float64) float64 {
	v := math.Max(0, (3-months)*expenses)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func evalDebt(_ *model.FinancialData, m *model.Metrics) model.Indicator {
	var ind model.Indicator
	ratio := 0.0
	if m.TotalMonthlyIncome <= 0 {
		if m.TotalLiabilities > 0 {
			ind.Status, ind.Score = model.StatusCritical, 0
		} else {
			ind.Status, ind.Score = model.StatusExcellent, 100
		}
	} else {
		ratio = m.TotalLiabilities / m.TotalMonthlyIncome
		ind.Score = int(math.Max(0, 100-math.Round(ratio*100)))
		switch {
		case ratio < 0.20:
			ind.Status = model.StatusExcellent
		case ratio < 0.28:
			ind.Status = model.StatusGood
		case ratio < 0.36:
			ind.Status = model.StatusFair
		case ratio < 0.43:
			ind.Status = model.StatusPoor
		default:
			ind.Status = model.StatusCritical
		}
	}

	ind.Metrics = []model.SubMetric{
		{
			Title:     "Debt-to-Income",
			Value:     money.Percent(m.DebtToIncomeRatio, 0),
			Status:    ind.Status,
			Benchmark: "Below 36%",
		},
		{
			Title:     "Total Debt",
			Value:     money.Format(m.TotalLiabilities),
			Status:    ind.Status,
			Benchmark: "Trending down",
		},
	}

	if ind.Status != model.StatusExcellent {
		ind.Recommendations = append(ind.Recommendations,
			"Pay down the highest-interest balance first while paying minimums on the rest.")
	}
	if ind.NeedsAttention() {
		ind.Recommendations = append(ind.Recommendations,
			"Avoid taking on new debt until your debt-to-income ratio falls below 36%.")
	}

	ind.Explanation = fmt.Sprintf("Your total debt of %s is %s of your monthly income.",
		money.Format(m.TotalLiabilities), money.Percent(m.DebtToIncomeRatio, 0))
	return ind
}

func evalCredit(d *model.FinancialData, m *model.Metrics) model.Indicator {
	score := d.Liabilities.CreditScore
	util := m.CreditUtilization
	var ind model.Indicator
	switch {
	case score >= 800 && util <= 10:
		ind.Status, ind.Score = model.StatusExcellent, 100
	case score >= 740 && util <= 30:
		ind.Status, ind.Score = model.StatusGood, 80
	case score >= 670:
		ind.Status, ind.Score = model.StatusFair, 60
	case score >= 580:
		ind.Status, ind.Score = model.StatusPoor, 40
	default:
		ind.Status, ind.Score = model.StatusCritical, 20
	}

	utilStatus := model.StatusGood
	switch {
	case util <= 10:
		utilStatus = model.StatusExcellent
	case util > 50:
		utilStatus = model.StatusCritical
	case util > 30:
		utilStatus = model.StatusPoor
	}

	ind.Metrics = []model.SubMetric{
		{
			Title:     "Credit Score",
			Value:     fmt.Sprintf("%d", score),
			Status:    ind.Status,
			Benchmark: "740 or higher",
		},
		{
			Title:     "Credit Utilization",
			Value:     money.Percent(util, 0),
			Status:    utilStatus,
			Benchmark: "Below 30%, ideally under 10%",
		},
	}

	if util > 30 {
		target := d.Liabilities.TotalCreditLimit * 0.30
		ind.Recommendations = append(ind.Recommendations,
			fmt.Sprintf("Bring card balances below %s (30%% of your limit).", money.Format(target)))
	}
	if score < 740 {
		ind.Recommendations = append(ind.Recommendations,
			"Check your credit reports for errors and dispute anything inaccurate.")
	}

	ind.Explanation = fmt.Sprintf("A credit score of %d with %s utilization.", score, money.Percent(util, 0))
	return ind
}

func evalInsurance(d *model.FinancialData, _ *model.Metrics) model.Indicator {
	ins := d.Insurance
	count := 0
	for _, covered := range []bool{ins.Health, ins.Life, ins.Disability} {
		if covered {
			count++
		}
	}
	healthOnly := count == 1 && ins.Health

	var ind model.Indicator
	switch {
	case count == 3 && ins.CoverageConfidence == model.VeryConfident:
		ind.Status, ind.Score = model.StatusExcellent, 100
	case count >= 2 && ins.CoverageConfidence != model.NotConfident:
		ind.Status, ind.Score = model.StatusGood, 80
	case count >= 1 && !healthOnly:
		ind.Status, ind.Score = model.StatusFair, 60
	case healthOnly:
		ind.Status, ind.Score = model.StatusPoor, 40
	default:
		ind.Status, ind.Score = model.StatusCritical, 20
	}

	ind.Metrics = []model.SubMetric{
		{
			Title:     "Core Coverage",
			Value:     fmt.Sprintf("%d of 3", count),
			Status:    ind.Status,
			Benchmark: "Health, life, and disability",
		},
		{
			Title:     "Coverage Confidence",
			Value:     confidenceLabel(ins.CoverageConfidence),
			Status:    ind.Status,
			Benchmark: "Very confident",
		},
	}

	if !ins.Health {
		ind.Recommendations = append(ind.Recommendations, "Get health insurance before anything else.")
	}
	if !ins.Disability {
		ind.Recommendations = append(ind.Recommendations,
			"Look into disability insurance to protect your income.")
	}
	if !ins.Life && d.PersonalInfo.Dependents > 0 {
		ind.Recommendations = append(ind.Recommendations,
			"Get term life insurance to protect your dependents.")
	}

	ind.Explanation = fmt.Sprintf("You hold %d of 3 core coverages.", count)
	return ind
}

func evalLongTerm(d *model.FinancialData, m *model.Metrics) model.Indicator {
	conf := d.Goals.RetirementConfidence
	hasSavings := m.TotalRetirementSavings > 0
	investing := d.Behaviors.MonthlyInvestmentContribution > 0

	var ind model.Indicator
	switch {
	case conf == model.VeryConfident && hasSavings && investing:
		ind.Status, ind.Score = model.StatusExcellent, 100
	case conf == model.SomewhatConfident && hasSavings:
		ind.Status, ind.Score = model.StatusGood, 75
	case hasSavings || investing:
		ind.Status, ind.Score = model.StatusFair, 50
	case conf != model.NotConfident:
		ind.Status, ind.Score = model.StatusPoor, 25
	default:
		ind.Status, ind.Score = model.StatusCritical, 0
	}

	ind.Metrics = []model.SubMetric{
		{
			Title:     "Retirement Savings",
			Value:     money.Format(m.TotalRetirementSavings),
			Status:    ind.Status,
			Benchmark: "1x annual income by 30",
		},
		{
			Title:     "Monthly Investing",
			Value:     money.Format(d.Behaviors.MonthlyInvestmentContribution),
			Status:    ind.Status,
			Benchmark: "15% of income",
		},
	}

	if !investing {
		ind.Recommendations = append(ind.Recommendations,
			"Start a monthly contribution to a retirement account, even a small one.")
	}
	if !hasSavings {
		ind.Recommendations = append(ind.Recommendations,
			"Open a 401(k) or IRA and capture any employer match.")
	}

	ind.Explanation = fmt.Sprintf("Retirement confidence is %s with %s saved.",
		strings.ToLower(confidenceLabel(conf)), money.Format(m.TotalRetirementSavings))
	return ind
}

func evalEngagement(d *model.FinancialData, _ *model.Metrics) model.Indicator {
	budget := budgetingScore(d.Behaviors.BudgetingMethod)
	planning := planningScore(d.Behaviors.PlanningEngagement)
	combined := int(math.Round(float64(budget)*0.5 + float64(planning)*0.5))

	ind := model.Indicator{Score: combined}
	switch {
	case combined >= 90:
		ind.Status = model.StatusExcellent
	case combined >= 70:
		ind.Status = model.StatusGood
	case combined >= 50:
		ind.Status = model.StatusFair
	case combined >= 20:
		ind.Status = model.StatusPoor
	default:
		ind.Status = model.StatusCritical
	}

	ind.Metrics = []model.SubMetric{
		{
			Title:     "Budgeting",
			Value:     fmt.Sprintf("%d/100", budget),
			Status:    statusFor(budget),
			Benchmark: "Detailed written budget",
		},
		{
			Title:     "Planning",
			Value:     fmt.Sprintf("%d/100", planning),
			Status:    statusFor(planning),
			Benchmark: "Active, regular review",
		},
	}

	if budget < 75 {
		ind.Recommendations = append(ind.Recommendations,
			"Track spending with a budgeting app or a simple spreadsheet.")
	}
	if planning < 70 {
		ind.Recommendations = append(ind.Recommendations,
			"Schedule a monthly 30-minute review of your finances and goals.")
	}

	ind.Explanation = fmt.Sprintf("Budgeting scores %d and planning scores %d out of 100.", budget, planning)
	return ind
}

func budgetingScore(m model.BudgetingMethod) int {
	switch m {
	case model.BudgetDetailed:
		return 100
	case model.BudgetAppTracking:
		return 75
	case model.BudgetMental:
		return 40
	default:
		return 0
	}
}

func planningScore(p model.PlanningEngagement) int {
	switch p {
	case model.PlanningActive:
		return 100
	case model.PlanningOccasional:
		return 70
	case model.PlanningRare:
		return 30
	default:
		return 0
	}
}

// statusFor grades a 0-100 component score with the engagement bands.
func statusFor(score int) model.Status {
	switch {
	case score >= 90:
		return model.StatusExcellent
	case score >= 70:
		return model.StatusGood
	case score >= 50:
		return model.StatusFair
	case score >= 20:
		return model.StatusPoor
	default:
		return model.StatusCritical
	}
}

func confidenceLabel(c model.Confidence) string {
	switch c {
	case model.VeryConfident:
		return "Very confident"
	case model.SomewhatConfident:
		return "Somewhat confident"
	case model.NotConfident:
		return "Not confident"
	default:
		return "Not stated"
	}
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
