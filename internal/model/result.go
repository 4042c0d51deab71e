package model

// AnalysisResult is the complete output of one analysis. It carries no
// timestamps or ids so that identical input serializes identically.
type AnalysisResult struct {
	OverallScore    int              `json:"overallScore" yaml:"overallScore"`
	HealthLevel     HealthLevel      `json:"healthLevel" yaml:"healthLevel"`
	Mode            Mode             `json:"mode" yaml:"mode"`
	Indicators      []Indicator      `json:"indicators" yaml:"indicators"`
	Metrics         Metrics          `json:"metrics" yaml:"metrics"`
	Recommendations []Recommendation `json:"recommendations" yaml:"recommendations"`
}

// Indicator returns the indicator with the given key.
func (r *AnalysisResult) Indicator(key string) (Indicator, bool) {
	for _, ind := range r.Indicators {
		if ind.Key == key {
			return ind, true
		}
	}
	return Indicator{}, false
}
