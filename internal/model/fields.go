package model

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// Section names a sub-record of FinancialData.
type Section string

const (
	SectionRecord       Section = "record"
	SectionPersonalInfo Section = "personalInfo"
	SectionIncome       Section = "income"
	SectionExpenses     Section = "expenses"
	SectionAssets       Section = "assets"
	SectionLiabilities  Section = "liabilities"
	SectionInsurance    Section = "insurance"
	SectionGoals        Section = "goals"
	SectionBehaviors    Section = "behaviors"
)

// FieldKind is the value type a field accepts.
type FieldKind string

const (
	KindNumber  FieldKind = "number"
	KindInteger FieldKind = "integer"
	KindBool    FieldKind = "bool"
	KindText    FieldKind = "text"
)

// Field binds a form key ("income.primarySalary") to a typed setter on
// FinancialData.
type Field struct {
	Key     string
	Section Section
	Kind    FieldKind
	set     func(d *FinancialData, raw string) error
}

func number(section Section, name string, ptr func(*FinancialData) *float64) Field {
	return Field{
		Key: string(section) + "." + name, Section: section, Kind: KindNumber,
		set: func(d *FinancialData, raw string) error {
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return eris.Wrapf(err, "parse number %q", raw)
			}
			*ptr(d) = v
			return nil
		},
	}
}

func integer(section Section, name string, ptr func(*FinancialData) *int) Field {
	return Field{
		Key: string(section) + "." + name, Section: section, Kind: KindInteger,
		set: func(d *FinancialData, raw string) error {
			v, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return eris.Wrapf(err, "parse integer %q", raw)
			}
			*ptr(d) = v
			return nil
		},
	}
}

func flag(section Section, name string, ptr func(*FinancialData) *bool) Field {
	return Field{
		Key: string(section) + "." + name, Section: section, Kind: KindBool,
		set: func(d *FinancialData, raw string) error {
			v, err := strconv.ParseBool(strings.TrimSpace(raw))
			if err != nil {
				return eris.Wrapf(err, "parse bool %q", raw)
			}
			*ptr(d) = v
			return nil
		},
	}
}

func text[T ~string](section Section, name string, ptr func(*FinancialData) *T) Field {
	return Field{
		Key: string(section) + "." + name, Section: section, Kind: KindText,
		set: func(d *FinancialData, raw string) error {
			*ptr(d) = T(strings.TrimSpace(raw))
			return nil
		},
	}
}

// fieldTable lists every settable field in form order.
var fieldTable = []Field{
	text(SectionRecord, "mode", func(d *FinancialData) *Mode { return &d.Mode }),

	// personalInfo.
	integer(SectionPersonalInfo, "age", func(d *FinancialData) *int { return &d.PersonalInfo.Age }),
	text(SectionPersonalInfo, "maritalStatus", func(d *FinancialData) *MaritalStatus { return &d.PersonalInfo.MaritalStatus }),
	integer(SectionPersonalInfo, "dependents", func(d *FinancialData) *int { return &d.PersonalInfo.Dependents }),
	text(SectionPersonalInfo, "employmentStatus", func(d *FinancialData) *EmploymentStatus { return &d.PersonalInfo.EmploymentStatus }),
	number(SectionPersonalInfo, "employmentTenure", func(d *FinancialData) *float64 { return &d.PersonalInfo.EmploymentTenure }),
	flag(SectionPersonalInfo, "hasHealthConditions", func(d *FinancialData) *bool { return &d.PersonalInfo.HasHealthConditions }),
	flag(SectionPersonalInfo, "hasEmployerBenefits", func(d *FinancialData) *bool { return &d.PersonalInfo.HasEmployerBenefits }),

	// income.
	number(SectionIncome, "primarySalary", func(d *FinancialData) *float64 { return &d.Income.PrimarySalary }),
	number(SectionIncome, "secondaryIncome", func(d *FinancialData) *float64 { return &d.Income.SecondaryIncome }),
	number(SectionIncome, "businessIncome", func(d *FinancialData) *float64 { return &d.Income.BusinessIncome }),
	number(SectionIncome, "investmentIncome", func(d *FinancialData) *float64 { return &d.Income.InvestmentIncome }),
	number(SectionIncome, "rentalIncome", func(d *FinancialData) *float64 { return &d.Income.RentalIncome }),
	number(SectionIncome, "benefitsIncome", func(d *FinancialData) *float64 { return &d.Income.BenefitsIncome }),
	number(SectionIncome, "otherIncome", func(d *FinancialData) *float64 { return &d.Income.OtherIncome }),
	number(SectionIncome, "incomeGrowthRate", func(d *FinancialData) *float64 { return &d.Income.IncomeGrowthRate }),
	text(SectionIncome, "incomeVariability", func(d *FinancialData) *IncomeVariability { return &d.Income.IncomeVariability }),
	number(SectionIncome, "effectiveTaxRate", func(d *FinancialData) *float64 { return &d.Income.EffectiveTaxRate }),

	// expenses.
	number(SectionExpenses, "housing", func(d *FinancialData) *float64 { return &d.Expenses.Housing }),
	number(SectionExpenses, "utilities", func(d *FinancialData) *float64 { return &d.Expenses.Utilities }),
	number(SectionExpenses, "insurance", func(d *FinancialData) *float64 { return &d.Expenses.Insurance }),
	number(SectionExpenses, "loanPayments", func(d *FinancialData) *float64 { return &d.Expenses.LoanPayments }),
	number(SectionExpenses, "childcare", func(d *FinancialData) *float64 { return &d.Expenses.Childcare }),
	number(SectionExpenses, "food", func(d *FinancialData) *float64 { return &d.Expenses.Food }),
	number(SectionExpenses, "transportation", func(d *FinancialData) *float64 { return &d.Expenses.Transportation }),
	number(SectionExpenses, "healthcare", func(d *FinancialData) *float64 { return &d.Expenses.Healthcare }),
	number(SectionExpenses, "clothing", func(d *FinancialData) *float64 { return &d.Expenses.Clothing }),
	number(SectionExpenses, "personalCare", func(d *FinancialData) *float64 { return &d.Expenses.PersonalCare }),
	number(SectionExpenses, "entertainment", func(d *FinancialData) *float64 { return &d.Expenses.Entertainment }),
	number(SectionExpenses, "diningOut", func(d *FinancialData) *float64 { return &d.Expenses.DiningOut }),
	number(SectionExpenses, "hobbies", func(d *FinancialData) *float64 { return &d.Expenses.Hobbies }),
	number(SectionExpenses, "subscriptions", func(d *FinancialData) *float64 { return &d.Expenses.Subscriptions }),
	number(SectionExpenses, "shopping", func(d *FinancialData) *float64 { return &d.Expenses.Shopping }),
	number(SectionExpenses, "travel", func(d *FinancialData) *float64 { return &d.Expenses.Travel }),
	number(SectionExpenses, "creditCardPayments", func(d *FinancialData) *float64 { return &d.Expenses.CreditCardPayments }),
	number(SectionExpenses, "studentLoanPayments", func(d *FinancialData) *float64 { return &d.Expenses.StudentLoanPayments }),
	number(SectionExpenses, "otherDebtPayments", func(d *FinancialData) *float64 { return &d.Expenses.OtherDebtPayments }),

	// assets.
	number(SectionAssets, "checking", func(d *FinancialData) *float64 { return &d.Assets.Checking }),
	number(SectionAssets, "savings", func(d *FinancialData) *float64 { return &d.Assets.Savings }),
	number(SectionAssets, "moneyMarket", func(d *FinancialData) *float64 { return &d.Assets.MoneyMarket }),
	number(SectionAssets, "certificatesOfDeposit", func(d *FinancialData) *float64 { return &d.Assets.CertificatesOfDeposit }),
	number(SectionAssets, "emergencyFund", func(d *FinancialData) *float64 { return &d.Assets.EmergencyFund }),
	number(SectionAssets, "employer401k", func(d *FinancialData) *float64 { return &d.Assets.Employer401k }),
	number(SectionAssets, "ira", func(d *FinancialData) *float64 { return &d.Assets.IRA }),
	number(SectionAssets, "rothIra", func(d *FinancialData) *float64 { return &d.Assets.RothIRA }),
	number(SectionAssets, "pension", func(d *FinancialData) *float64 { return &d.Assets.Pension }),
	number(SectionAssets, "brokerage", func(d *FinancialData) *float64 { return &d.Assets.Brokerage }),
	number(SectionAssets, "stocks", func(d *FinancialData) *float64 { return &d.Assets.Stocks }),
	number(SectionAssets, "bonds", func(d *FinancialData) *float64 { return &d.Assets.Bonds }),
	number(SectionAssets, "mutualFunds", func(d *FinancialData) *float64 { return &d.Assets.MutualFunds }),
	number(SectionAssets, "primaryResidence", func(d *FinancialData) *float64 { return &d.Assets.PrimaryResidence }),
	number(SectionAssets, "investmentProperty", func(d *FinancialData) *float64 { return &d.Assets.InvestmentProperty }),
	number(SectionAssets, "vehicles", func(d *FinancialData) *float64 { return &d.Assets.Vehicles }),
	number(SectionAssets, "cryptocurrency", func(d *FinancialData) *float64 { return &d.Assets.Cryptocurrency }),
	number(SectionAssets, "otherAssets", func(d *FinancialData) *float64 { return &d.Assets.OtherAssets }),

	// liabilities.
	number(SectionLiabilities, "mortgage", func(d *FinancialData) *float64 { return &d.Liabilities.Mortgage }),
	number(SectionLiabilities, "homeEquityLoan", func(d *FinancialData) *float64 { return &d.Liabilities.HomeEquityLoan }),
	number(SectionLiabilities, "autoLoans", func(d *FinancialData) *float64 { return &d.Liabilities.AutoLoans }),
	number(SectionLiabilities, "creditCardDebt", func(d *FinancialData) *float64 { return &d.Liabilities.CreditCardDebt }),
	number(SectionLiabilities, "studentLoans", func(d *FinancialData) *float64 { return &d.Liabilities.StudentLoans }),
	number(SectionLiabilities, "personalLoans", func(d *FinancialData) *float64 { return &d.Liabilities.PersonalLoans }),
	number(SectionLiabilities, "medicalDebt", func(d *FinancialData) *float64 { return &d.Liabilities.MedicalDebt }),
	number(SectionLiabilities, "businessLoans", func(d *FinancialData) *float64 { return &d.Liabilities.BusinessLoans }),
	number(SectionLiabilities, "taxDebt", func(d *FinancialData) *float64 { return &d.Liabilities.TaxDebt }),
	number(SectionLiabilities, "paydayLoans", func(d *FinancialData) *float64 { return &d.Liabilities.PaydayLoans }),
	number(SectionLiabilities, "familyLoans", func(d *FinancialData) *float64 { return &d.Liabilities.FamilyLoans }),
	number(SectionLiabilities, "buyNowPayLater", func(d *FinancialData) *float64 { return &d.Liabilities.BuyNowPayLater }),
	number(SectionLiabilities, "otherDebt", func(d *FinancialData) *float64 { return &d.Liabilities.OtherDebt }),
	integer(SectionLiabilities, "creditScore", func(d *FinancialData) *int { return &d.Liabilities.CreditScore }),
	number(SectionLiabilities, "totalCreditLimit", func(d *FinancialData) *float64 { return &d.Liabilities.TotalCreditLimit }),

	// insurance.
	flag(SectionInsurance, "health", func(d *FinancialData) *bool { return &d.Insurance.Health }),
	flag(SectionInsurance, "life", func(d *FinancialData) *bool { return &d.Insurance.Life }),
	flag(SectionInsurance, "disability", func(d *FinancialData) *bool { return &d.Insurance.Disability }),
	flag(SectionInsurance, "homeownersRenters", func(d *FinancialData) *bool { return &d.Insurance.HomeownersRenters }),
	flag(SectionInsurance, "auto", func(d *FinancialData) *bool { return &d.Insurance.Auto }),
	flag(SectionInsurance, "longTermCare", func(d *FinancialData) *bool { return &d.Insurance.LongTermCare }),
	flag(SectionInsurance, "umbrella", func(d *FinancialData) *bool { return &d.Insurance.Umbrella }),
	text(SectionInsurance, "coverageConfidence", func(d *FinancialData) *Confidence { return &d.Insurance.CoverageConfidence }),

	// goals.
	number(SectionGoals, "emergencyFundTarget", func(d *FinancialData) *float64 { return &d.Goals.EmergencyFundTarget }),
	number(SectionGoals, "homePurchaseTarget", func(d *FinancialData) *float64 { return &d.Goals.HomePurchaseTarget }),
	number(SectionGoals, "educationTarget", func(d *FinancialData) *float64 { return &d.Goals.EducationTarget }),
	number(SectionGoals, "debtPayoffTarget", func(d *FinancialData) *float64 { return &d.Goals.DebtPayoffTarget }),
	integer(SectionGoals, "retirementAge", func(d *FinancialData) *int { return &d.Goals.RetirementAge }),
	number(SectionGoals, "retirementIncomeNeeded", func(d *FinancialData) *float64 { return &d.Goals.RetirementIncomeNeeded }),
	text(SectionGoals, "retirementConfidence", func(d *FinancialData) *Confidence { return &d.Goals.RetirementConfidence }),
	text(SectionGoals, "riskTolerance", func(d *FinancialData) *RiskTolerance { return &d.Goals.RiskTolerance }),

	// behaviors.
	text(SectionBehaviors, "billPayment", func(d *FinancialData) *BillPayment { return &d.Behaviors.BillPayment }),
	text(SectionBehaviors, "budgetingMethod", func(d *FinancialData) *BudgetingMethod { return &d.Behaviors.BudgetingMethod }),
	text(SectionBehaviors, "planningEngagement", func(d *FinancialData) *PlanningEngagement { return &d.Behaviors.PlanningEngagement }),
	number(SectionBehaviors, "monthlyInvestmentContribution", func(d *FinancialData) *float64 { return &d.Behaviors.MonthlyInvestmentContribution }),
	flag(SectionBehaviors, "automaticSavings", func(d *FinancialData) *bool { return &d.Behaviors.AutomaticSavings }),
}

var fieldIndex = func() map[string]Field {
	idx := make(map[string]Field, len(fieldTable))
	for _, f := range fieldTable {
		idx[f.Key] = f
	}
	return idx
}()

// Fields returns the field table in form order.
func Fields() []Field {
	out := make([]Field, len(fieldTable))
	copy(out, fieldTable)
	return out
}

// LookupField returns the field bound to key.
func LookupField(key string) (Field, bool) {
	f, ok := fieldIndex[key]
	return f, ok
}

// SetField parses raw according to the field's kind and stores it on d.
func SetField(d *FinancialData, key, raw string) error {
	f, ok := fieldIndex[key]
	if !ok {
		return eris.Errorf("model: unknown field %q", key)
	}
	if err := f.set(d, raw); err != nil {
		return eris.Wrapf(err, "model: set %s", key)
	}
	return nil
}

// FieldKeys returns all field keys sorted alphabetically.
func FieldKeys() []string {
	keys := make([]string, 0, len(fieldIndex))
	for k := range fieldIndex {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
