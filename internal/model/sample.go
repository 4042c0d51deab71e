package model

// SampleData returns a representative single-earner household record. It is
// the template printed by the CLI's sample command and the baseline used in
// tests.
func SampleData() FinancialData {
	return FinancialData{
		PersonalInfo: PersonalInfo{
			Age:              30,
			MaritalStatus:    MaritalSingle,
			EmploymentStatus: EmploymentFullTime,
			EmploymentTenure: 3,
		},
		Income: Income{
			PrimarySalary:     5000,
			IncomeVariability: IncomeStable,
			EffectiveTaxRate:  22,
		},
		Expenses: Expenses{
			Housing:             1500,
			Utilities:           200,
			Insurance:           150,
			LoanPayments:        400,
			Food:                400,
			Transportation:      300,
			Healthcare:          150,
			Clothing:            100,
			PersonalCare:        50,
			Entertainment:       100,
			DiningOut:           150,
			Hobbies:             50,
			Subscriptions:       50,
			Shopping:            100,
			Travel:              200,
			CreditCardPayments:  100,
			StudentLoanPayments: 200,
			OtherDebtPayments:   100,
		},
		Assets: Assets{
			Checking:      2000,
			Savings:       5000,
			EmergencyFund: 3000,
			Employer401k:  25000,
		},
		Liabilities: Liabilities{
			AutoLoans:        8000,
			CreditCardDebt:   2000,
			StudentLoans:     15000,
			CreditScore:      720,
			TotalCreditLimit: 10000,
		},
		Insurance: Insurance{
			Health:             true,
			Auto:               true,
			CoverageConfidence: SomewhatConfident,
		},
		Goals: Goals{
			EmergencyFundTarget:  25800,
			RetirementAge:        65,
			RetirementConfidence: SomewhatConfident,
			RiskTolerance:        RiskModerate,
		},
		Behaviors: Behaviors{
			BillPayment:                   BillsUsuallyOnTime,
			BudgetingMethod:               BudgetAppTracking,
			PlanningEngagement:            PlanningOccasional,
			MonthlyInvestmentContribution: 300,
		},
	}
}
