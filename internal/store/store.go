package store

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/config"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
)

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = eris.New("store: record not found")

// Record is a saved analysis. The headline fields are copied out of Result
// so listings need not decode it.
type Record struct {
	ID           string                `json:"id"`
	Label        string                `json:"label"`
	OverallScore int                   `json:"overallScore"`
	HealthLevel  model.HealthLevel     `json:"healthLevel"`
	Mode         model.Mode            `json:"mode"`
	Result       *model.AnalysisResult `json:"result,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// ListFilter specifies criteria for listing saved analyses.
type ListFilter struct {
	Label       string            `json:"label,omitempty"`
	HealthLevel model.HealthLevel `json:"healthLevel,omitempty"`
	Limit       int               `json:"limit,omitempty"`
	Offset      int               `json:"offset,omitempty"`
}

// DefaultListLimit applies when ListFilter.Limit is not positive.
const DefaultListLimit = 100

// Store persists analysis history.
type Store interface {
	SaveAnalysis(ctx context.Context, label string, res *model.AnalysisResult) (*Record, error)
	// GetAnalysis returns the record with its full result, or ErrNotFound.
	GetAnalysis(ctx context.Context, id string) (*Record, error)
	// ListAnalyses returns newest first, without the full result.
	ListAnalyses(ctx context.Context, filter ListFilter) ([]Record, error)
	DeleteAnalysis(ctx context.Context, id string) error

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// Open connects to the backend named by cfg.Driver.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "sqlite":
		dsn := cfg.Path
		if dsn == "" {
			dsn = "finhealth.db"
		}
		return NewSQLite(dsn)
	case "postgres":
		return NewPostgres(ctx, cfg.DatabaseURL, nil)
	default:
		return nil, eris.Errorf("store: unsupported driver %q", cfg.Driver)
	}
}

func newRecord(id, label string, res *model.AnalysisResult, now time.Time) *Record {
	return &Record{
		ID:           id,
		Label:        label,
		OverallScore: res.OverallScore,
		HealthLevel:  res.HealthLevel,
		Mode:         res.Mode,
		Result:       res,
		CreatedAt:    now,
	}
}
