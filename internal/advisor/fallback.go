package advisor

import (
	"fmt"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/health"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
)

var indicatorCategory = map[string]model.Category{
	health.KeySpending:   model.CategorySpending,
	health.KeyBills:      model.CategoryCredit,
	health.KeyEmergency:  model.CategorySavings,
	health.KeyDebt:       model.CategoryDebt,
	health.KeyCredit:     model.CategoryCredit,
	health.KeyInsurance:  model.CategoryRisk,
	health.KeyLongTerm:   model.CategoryInvestment,
	health.KeyEngagement: model.CategoryPlanning,
}

// fallbackRule covers an indicator no specific rule addressed. Poor and
// critical indicators get a "focus on improving" item keyed by the indicator
// key; fair indicators get a low-priority "optimize" item.
func fallbackRule(key, name string) Rule {
	return Rule{
		Name:  "fallback-" + key,
		Group: GroupFallback,
		Eval: func(in *Input) (model.Recommendation, bool) {
			ind, ok := in.indicator(key)
			if !ok {
				return model.Recommendation{}, false
			}

			category, ok := indicatorCategory[key]
			if !ok {
				category = model.CategoryPlanning
			}
			steps := append([]string(nil), ind.Recommendations...)

			switch ind.Status {
			case model.StatusCritical, model.StatusPoor:
				priority, timeframe, impact := model.PriorityMedium, model.TimeframeShortTerm, model.ImpactMedium
				if ind.Status == model.StatusCritical {
					priority, timeframe, impact = model.PriorityHigh, model.TimeframeImmediate, model.ImpactHigh
				}
				if len(steps) == 0 {
					steps = []string{fmt.Sprintf("Review your %s and set one concrete goal this month.", lowerFirst(name))}
				}
				return model.Recommendation{
					ID:          key,
					Category:    category,
					Priority:    priority,
					Title:       "Focus on improving " + name,
					Description: fmt.Sprintf("%s scored %d of 100 (%s). %s", name, ind.Score, ind.Status, ind.Explanation),
					ActionSteps: steps,
					Timeframe:   timeframe,
					ImpactLevel: impact,
				}, true

			case model.StatusFair:
				if len(steps) == 0 {
					steps = []string{fmt.Sprintf("Revisit your %s each quarter.", lowerFirst(name))}
				}
				return model.Recommendation{
					ID:          "optimize-" + key,
					Category:    category,
					Priority:    model.PriorityLow,
					Title:       "Optimize " + name,
					Description: fmt.Sprintf("%s is fair at %d of 100. Small changes can move it to good.", name, ind.Score),
					ActionSteps: steps,
					Timeframe:   model.TimeframeMediumTerm,
					ImpactLevel: model.ImpactLow,
				}, true
			}
			return model.Recommendation{}, false
		},
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
