package model

// Category groups recommendations by financial area.
type Category string

const (
	CategorySavings    Category = "savings"
	CategoryDebt       Category = "debt"
	CategorySpending   Category = "spending"
	CategoryInvestment Category = "investment"
	CategoryCredit     Category = "credit"
	CategoryRisk       Category = "risk"
	CategoryPlanning   Category = "planning"
)

// Priority orders recommendations; lower rank sorts first.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort rank of a priority (high=0, medium=1, low=2).
// Unknown priorities sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Timeframe is how soon a recommendation should be acted on.
type Timeframe string

const (
	TimeframeImmediate  Timeframe = "immediate"
	TimeframeShortTerm  Timeframe = "short-term"
	TimeframeMediumTerm Timeframe = "medium-term"
	TimeframeLongTerm   Timeframe = "long-term"
)

// Impact is the expected effect of acting on a recommendation.
type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// Recommendation is one actionable suggestion. ID is the de-duplication key.
type Recommendation struct {
	ID          string    `json:"id" yaml:"id"`
	Category    Category  `json:"category" yaml:"category"`
	Priority    Priority  `json:"priority" yaml:"priority"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	ActionSteps []string  `json:"actionSteps" yaml:"actionSteps"`
	Timeframe   Timeframe `json:"timeframe" yaml:"timeframe"`
	ImpactLevel Impact    `json:"impactLevel" yaml:"impactLevel"`
}
