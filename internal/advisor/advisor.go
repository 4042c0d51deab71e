package advisor

import (
	"sort"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
)

// MaxRecommendations caps the final list.
const MaxRecommendations = 10

// Collect runs every rule eligible for in.Mode in registry order and returns
// what they produced, unsorted.
func Collect(rules []Rule, in *Input) []model.Recommendation {
	var out []model.Recommendation
	for _, r := range rules {
		if !r.Group.Eligible(in.Mode) {
			continue
		}
		if rec, ok := r.Eval(in); ok {
			out = append(out, rec)
		}
	}
	return out
}

// Prioritize stable-sorts recs by priority rank, drops later duplicates of an
// id, and truncates to limit. A limit outside 1..MaxRecommendations means
// MaxRecommendations.
func Prioritize(recs []model.Recommendation, limit int) []model.Recommendation {
	if limit <= 0 || limit > MaxRecommendations {
		limit = MaxRecommendations
	}

	sorted := make([]model.Recommendation, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority.Rank() < sorted[j].Priority.Rank()
	})

	out := make([]model.Recommendation, 0, min(len(sorted), limit))
	seen := make(map[string]bool, len(sorted))
	for _, rec := range sorted {
		if seen[rec.ID] {
			continue
		}
		seen[rec.ID] = true
		out = append(out, rec)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Generate runs the full registry against in and returns the final list.
func Generate(in *Input, limit int) []model.Recommendation {
	if in == nil || in.Data == nil || in.Metrics == nil {
		return []model.Recommendation{}
	}
	return Prioritize(Collect(Rules(), in), limit)
}
