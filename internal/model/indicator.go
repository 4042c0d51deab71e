package model

// Status grades an indicator or a sub-metric.
type Status string

const (
	StatusExcellent Status = "excellent"
	StatusGood      Status = "good"
	StatusFair      Status = "fair"
	StatusPoor      Status = "poor"
	StatusCritical  Status = "critical"
)

// HealthLevel grades the overall score.
type HealthLevel string

const (
	LevelExcellent HealthLevel = "excellent"
	LevelGood      HealthLevel = "good"
	LevelFair      HealthLevel = "fair"
	LevelLimited   HealthLevel = "limited"
	LevelCritical  HealthLevel = "critical"
)

// SubMetric is one line of supporting detail shown under an indicator.
type SubMetric struct {
	Title     string `json:"title" yaml:"title"`
	Value     string `json:"value" yaml:"value"`
	Status    Status `json:"status" yaml:"status"`
	Benchmark string `json:"benchmark" yaml:"benchmark"`
}

// Indicator is one of the eight weighted health sub-scores.
type Indicator struct {
	Key             string      `json:"key" yaml:"key"`
	Name            string      `json:"name" yaml:"name"`
	Score           int         `json:"score" yaml:"score"`
	Status          Status      `json:"status" yaml:"status"`
	Weight          int         `json:"weight" yaml:"weight"`
	Metrics         []SubMetric `json:"metrics" yaml:"metrics"`
	Recommendations []string    `json:"recommendations" yaml:"recommendations"`
	Explanation     string      `json:"explanation" yaml:"explanation"`
}

// NeedsAttention reports whether the indicator is poor or critical.
func (i Indicator) NeedsAttention() bool {
	return i.Status == StatusPoor || i.Status == StatusCritical
}
