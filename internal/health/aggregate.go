package health

import (
	"math"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
)

// WeightSum returns the sum of indicator weights.
func WeightSum(indicators []model.Indicator) int {
	total := 0
	for _, ind := range indicators {
		total += ind.Weight
	}
	return total
}

// Aggregate folds indicator scores into a 0-100 overall score weighted by
// each indicator's weight and normalized by the actual weight sum.
func Aggregate(indicators []model.Indicator) (int, model.HealthLevel) {
	total := WeightSum(indicators)
	if total <= 0 {
		return 0, Level(0)
	}

	var weighted float64
	for _, ind := range indicators {
		weighted += float64(ind.Score * ind.Weight)
	}
	score := int(math.Round(weighted / float64(total)))
	score = clampScore(score)
	return score, Level(score)
}

// Level buckets an overall score into a health level.
func Level(score int) model.HealthLevel {
	switch {
	case score >= 80:
		return model.LevelExcellent
	case score >= 65:
		return model.LevelGood
	case score >= 50:
		return model.LevelFair
	case score >= 35:
		return model.LevelLimited
	default:
		return model.LevelCritical
	}
}
