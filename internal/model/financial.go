// Package model defines the financial data record consumed by the analyzer and
// the metrics, indicators, recommendations, and results it produces.
package model

// MaritalStatus is the household's marital status.
type MaritalStatus string

const (
	MaritalSingle              MaritalStatus = "single"
	MaritalMarried             MaritalStatus = "married"
	MaritalDivorced            MaritalStatus = "divorced"
	MaritalWidowed             MaritalStatus = "widowed"
	MaritalDomesticPartnership MaritalStatus = "domestic-partnership"
)

// EmploymentStatus describes the primary earner's employment.
type EmploymentStatus string

const (
	EmploymentFullTime     EmploymentStatus = "employed-full-time"
	EmploymentPartTime     EmploymentStatus = "employed-part-time"
	EmploymentSelfEmployed EmploymentStatus = "self-employed"
	EmploymentUnemployed   EmploymentStatus = "unemployed"
	EmploymentRetired      EmploymentStatus = "retired"
	EmploymentStudent      EmploymentStatus = "student"
)

// IncomeVariability describes how much monthly income fluctuates.
type IncomeVariability string

const (
	IncomeStable           IncomeVariability = "stable"
	IncomeSomewhatVariable IncomeVariability = "somewhat-variable"
	IncomeHighlyVariable   IncomeVariability = "highly-variable"
)

// Confidence is a self-reported confidence level used for insurance coverage
// and retirement readiness.
type Confidence string

const (
	VeryConfident     Confidence = "very-confident"
	SomewhatConfident Confidence = "somewhat-confident"
	NotConfident      Confidence = "not-confident"
)

// RiskTolerance is the household's stated investment risk tolerance.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// BillPayment is the self-reported bill payment reliability.
type BillPayment string

const (
	BillsAlwaysOnTime  BillPayment = "always-on-time"
	BillsUsuallyOnTime BillPayment = "usually-on-time"
	BillsSometimesLate BillPayment = "sometimes-late"
	BillsOftenLate     BillPayment = "often-late"
	BillsRarelyOnTime  BillPayment = "rarely-on-time"
)

// BudgetingMethod is how the household tracks spending.
type BudgetingMethod string

const (
	BudgetDetailed    BudgetingMethod = "detailed-budget"
	BudgetAppTracking BudgetingMethod = "app-tracking"
	BudgetMental      BudgetingMethod = "mental-budget"
	BudgetNone        BudgetingMethod = "no-budget"
)

// PlanningEngagement is how actively the household plans its finances.
type PlanningEngagement string

const (
	PlanningActive     PlanningEngagement = "actively-planning"
	PlanningOccasional PlanningEngagement = "occasionally-reviews"
	PlanningRare       PlanningEngagement = "rarely-plans"
	PlanningNever      PlanningEngagement = "never-plans"
)

// Mode tags how complete a submitted record is. The zero value means the
// caller did not say, in which case the analyzer falls back to DetectMode.
type Mode string

const (
	ModeUnknown       Mode = ""
	ModeQuick         Mode = "quick"
	ModeComprehensive Mode = "comprehensive"
)

// FinancialData is a complete snapshot of a household's finances.
// All monetary amounts are monthly flows or current balances in dollars.
type FinancialData struct {
	Mode         Mode         `json:"mode,omitempty" yaml:"mode,omitempty" validate:"omitempty,oneof=quick comprehensive"`
	PersonalInfo PersonalInfo `json:"personalInfo" yaml:"personalInfo"`
	Income       Income       `json:"income" yaml:"income"`
	Expenses     Expenses     `json:"expenses" yaml:"expenses"`
	Assets       Assets       `json:"assets" yaml:"assets"`
	Liabilities  Liabilities  `json:"liabilities" yaml:"liabilities"`
	Insurance    Insurance    `json:"insurance" yaml:"insurance"`
	Goals        Goals        `json:"goals" yaml:"goals"`
	Behaviors    Behaviors    `json:"behaviors" yaml:"behaviors"`
}

// PersonalInfo holds household demographics.
type PersonalInfo struct {
	Age                 int              `json:"age" yaml:"age" validate:"omitempty,min=18,max=100"`
	MaritalStatus       MaritalStatus    `json:"maritalStatus" yaml:"maritalStatus" validate:"omitempty,oneof=single married divorced widowed domestic-partnership"`
	Dependents          int              `json:"dependents" yaml:"dependents" validate:"gte=0"`
	EmploymentStatus    EmploymentStatus `json:"employmentStatus" yaml:"employmentStatus" validate:"omitempty,oneof=employed-full-time employed-part-time self-employed unemployed retired student"`
	EmploymentTenure    float64          `json:"employmentTenure" yaml:"employmentTenure" validate:"gte=0"`
	HasHealthConditions bool             `json:"hasHealthConditions" yaml:"hasHealthConditions"`
	HasEmployerBenefits bool             `json:"hasEmployerBenefits" yaml:"hasEmployerBenefits"`
}

// Income holds the seven monthly income streams.
type Income struct {
	PrimarySalary     float64           `json:"primarySalary" yaml:"primarySalary" validate:"gte=0"`
	SecondaryIncome   float64           `json:"secondaryIncome" yaml:"secondaryIncome" validate:"gte=0"`
	BusinessIncome    float64           `json:"businessIncome" yaml:"businessIncome" validate:"gte=0"`
	InvestmentIncome  float64           `json:"investmentIncome" yaml:"investmentIncome" validate:"gte=0"`
	RentalIncome      float64           `json:"rentalIncome" yaml:"rentalIncome" validate:"gte=0"`
	BenefitsIncome    float64           `json:"benefitsIncome" yaml:"benefitsIncome" validate:"gte=0"`
	OtherIncome       float64           `json:"otherIncome" yaml:"otherIncome" validate:"gte=0"`
	IncomeGrowthRate  float64           `json:"incomeGrowthRate" yaml:"incomeGrowthRate"`
	IncomeVariability IncomeVariability `json:"incomeVariability" yaml:"incomeVariability" validate:"omitempty,oneof=stable somewhat-variable highly-variable"`
	EffectiveTaxRate  float64           `json:"effectiveTaxRate" yaml:"effectiveTaxRate" validate:"gte=0,lte=100"`
}

// Expenses holds the nineteen monthly expense categories.
type Expenses struct {
	Housing             float64 `json:"housing" yaml:"housing" validate:"gte=0"`
	Utilities           float64 `json:"utilities" yaml:"utilities" validate:"gte=0"`
	Insurance           float64 `json:"insurance" yaml:"insurance" validate:"gte=0"`
	LoanPayments        float64 `json:"loanPayments" yaml:"loanPayments" validate:"gte=0"`
	Childcare           float64 `json:"childcare" yaml:"childcare" validate:"gte=0"`
	Food                float64 `json:"food" yaml:"food" validate:"gte=0"`
	Transportation      float64 `json:"transportation" yaml:"transportation" validate:"gte=0"`
	Healthcare          float64 `json:"healthcare" yaml:"healthcare" validate:"gte=0"`
	Clothing            float64 `json:"clothing" yaml:"clothing" validate:"gte=0"`
	PersonalCare        float64 `json:"personalCare" yaml:"personalCare" validate:"gte=0"`
	Entertainment       float64 `json:"entertainment" yaml:"entertainment" validate:"gte=0"`
	DiningOut           float64 `json:"diningOut" yaml:"diningOut" validate:"gte=0"`
	Hobbies             float64 `json:"hobbies" yaml:"hobbies" validate:"gte=0"`
	Subscriptions       float64 `json:"subscriptions" yaml:"subscriptions" validate:"gte=0"`
	Shopping            float64 `json:"shopping" yaml:"shopping" validate:"gte=0"`
	Travel              float64 `json:"travel" yaml:"travel" validate:"gte=0"`
	CreditCardPayments  float64 `json:"creditCardPayments" yaml:"creditCardPayments" validate:"gte=0"`
	StudentLoanPayments float64 `json:"studentLoanPayments" yaml:"studentLoanPayments" validate:"gte=0"`
	OtherDebtPayments   float64 `json:"otherDebtPayments" yaml:"otherDebtPayments" validate:"gte=0"`
}

// Assets holds the eighteen balance categories.
type Assets struct {
	// Liquid.
	Checking              float64 `json:"checking" yaml:"checking" validate:"gte=0"`
	Savings               float64 `json:"savings" yaml:"savings" validate:"gte=0"`
	MoneyMarket           float64 `json:"moneyMarket" yaml:"moneyMarket" validate:"gte=0"`
	CertificatesOfDeposit float64 `json:"certificatesOfDeposit" yaml:"certificatesOfDeposit" validate:"gte=0"`
	EmergencyFund         float64 `json:"emergencyFund" yaml:"emergencyFund" validate:"gte=0"`

	// Retirement.
	Employer401k float64 `json:"employer401k" yaml:"employer401k" validate:"gte=0"`
	IRA          float64 `json:"ira" yaml:"ira" validate:"gte=0"`
	RothIRA      float64 `json:"rothIra" yaml:"rothIra" validate:"gte=0"`
	Pension      float64 `json:"pension" yaml:"pension" validate:"gte=0"`

	// Brokerage.
	Brokerage   float64 `json:"brokerage" yaml:"brokerage" validate:"gte=0"`
	Stocks      float64 `json:"stocks" yaml:"stocks" validate:"gte=0"`
	Bonds       float64 `json:"bonds" yaml:"bonds" validate:"gte=0"`
	MutualFunds float64 `json:"mutualFunds" yaml:"mutualFunds" validate:"gte=0"`

	// Real estate.
	PrimaryResidence   float64 `json:"primaryResidence" yaml:"primaryResidence" validate:"gte=0"`
	InvestmentProperty float64 `json:"investmentProperty" yaml:"investmentProperty" validate:"gte=0"`

	// Alternative.
	Vehicles       float64 `json:"vehicles" yaml:"vehicles" validate:"gte=0"`
	Cryptocurrency float64 `json:"cryptocurrency" yaml:"cryptocurrency" validate:"gte=0"`
	OtherAssets    float64 `json:"otherAssets" yaml:"otherAssets" validate:"gte=0"`
}

// Liabilities holds the thirteen outstanding balance categories plus credit data.
type Liabilities struct {
	Mortgage       float64 `json:"mortgage" yaml:"mortgage" validate:"gte=0"`
	HomeEquityLoan float64 `json:"homeEquityLoan" yaml:"homeEquityLoan" validate:"gte=0"`
	AutoLoans      float64 `json:"autoLoans" yaml:"autoLoans" validate:"gte=0"`
	CreditCardDebt float64 `json:"creditCardDebt" yaml:"creditCardDebt" validate:"gte=0"`
	StudentLoans   float64 `json:"studentLoans" yaml:"studentLoans" validate:"gte=0"`
	PersonalLoans  float64 `json:"personalLoans" yaml:"personalLoans" validate:"gte=0"`
	MedicalDebt    float64 `json:"medicalDebt" yaml:"medicalDebt" validate:"gte=0"`
	BusinessLoans  float64 `json:"businessLoans" yaml:"businessLoans" validate:"gte=0"`
	TaxDebt        float64 `json:"taxDebt" yaml:"taxDebt" validate:"gte=0"`
	PaydayLoans    float64 `json:"paydayLoans" yaml:"paydayLoans" validate:"gte=0"`
	FamilyLoans    float64 `json:"familyLoans" yaml:"familyLoans" validate:"gte=0"`
	BuyNowPayLater float64 `json:"buyNowPayLater" yaml:"buyNowPayLater" validate:"gte=0"`
	OtherDebt      float64 `json:"otherDebt" yaml:"otherDebt" validate:"gte=0"`

	CreditScore      int     `json:"creditScore" yaml:"creditScore"`
	TotalCreditLimit float64 `json:"totalCreditLimit" yaml:"totalCreditLimit" validate:"gte=0"`
}

// Insurance holds coverage flags and the household's confidence in them.
type Insurance struct {
	Health             bool       `json:"health" yaml:"health"`
	Life               bool       `json:"life" yaml:"life"`
	Disability         bool       `json:"disability" yaml:"disability"`
	HomeownersRenters  bool       `json:"homeownersRenters" yaml:"homeownersRenters"`
	Auto               bool       `json:"auto" yaml:"auto"`
	LongTermCare       bool       `json:"longTermCare" yaml:"longTermCare"`
	Umbrella           bool       `json:"umbrella" yaml:"umbrella"`
	CoverageConfidence Confidence `json:"coverageConfidence" yaml:"coverageConfidence" validate:"omitempty,oneof=very-confident somewhat-confident not-confident"`
}

// Goals holds savings targets and retirement expectations.
type Goals struct {
	EmergencyFundTarget    float64       `json:"emergencyFundTarget" yaml:"emergencyFundTarget" validate:"gte=0"`
	HomePurchaseTarget     float64       `json:"homePurchaseTarget" yaml:"homePurchaseTarget" validate:"gte=0"`
	EducationTarget        float64       `json:"educationTarget" yaml:"educationTarget" validate:"gte=0"`
	DebtPayoffTarget       float64       `json:"debtPayoffTarget" yaml:"debtPayoffTarget" validate:"gte=0"`
	RetirementAge          int           `json:"retirementAge" yaml:"retirementAge" validate:"omitempty,min=40,max=100"`
	RetirementIncomeNeeded float64       `json:"retirementIncomeNeeded" yaml:"retirementIncomeNeeded" validate:"gte=0"`
	RetirementConfidence   Confidence    `json:"retirementConfidence" yaml:"retirementConfidence" validate:"omitempty,oneof=very-confident somewhat-confident not-confident"`
	RiskTolerance          RiskTolerance `json:"riskTolerance" yaml:"riskTolerance" validate:"omitempty,oneof=conservative moderate aggressive"`
}

// Behaviors holds self-reported money habits.
type Behaviors struct {
	BillPayment                   BillPayment        `json:"billPayment" yaml:"billPayment" validate:"omitempty,oneof=always-on-time usually-on-time sometimes-late often-late rarely-on-time"`
	BudgetingMethod               BudgetingMethod    `json:"budgetingMethod" yaml:"budgetingMethod" validate:"omitempty,oneof=detailed-budget app-tracking mental-budget no-budget"`
	PlanningEngagement            PlanningEngagement `json:"planningEngagement" yaml:"planningEngagement" validate:"omitempty,oneof=actively-planning occasionally-reviews rarely-plans never-plans"`
	MonthlyInvestmentContribution float64            `json:"monthlyInvestmentContribution" yaml:"monthlyInvestmentContribution" validate:"gte=0"`
	AutomaticSavings              bool               `json:"automaticSavings" yaml:"automaticSavings"`
}

// DetectMode classifies a record that arrived without an explicit mode tag.
// A record is quick when the minimal fields are present and the
// characteristic extended fields are absent, and comprehensive when any
// extended field is present.
func DetectMode(d *FinancialData) Mode {
	if d.Mode != ModeUnknown {
		return d.Mode
	}
	extended := d.Income.SecondaryIncome > 0 || d.Assets.Employer401k > 0
	if extended {
		return ModeComprehensive
	}
	if d.Income.PrimarySalary > 0 && d.Expenses.Housing > 0 {
		return ModeQuick
	}
	return ModeUnknown
}
