package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
)

// Pool is the subset of pgxpool.Pool the store uses. pgxmock pools satisfy it.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(4)
	minConns := int32(1)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS analyses (
	id            TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	label         TEXT NOT NULL DEFAULT '',
	overall_score INTEGER NOT NULL,
	health_level  TEXT NOT NULL,
	mode          TEXT NOT NULL DEFAULT '',
	result        JSONB NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_analyses_label ON analyses(label);
CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at DESC);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) SaveAnalysis(ctx context.Context, label string, res *model.AnalysisResult) (*Record, error) {
	if res == nil {
		return nil, eris.New("postgres: nil analysis result")
	}
	id := uuid.New().String()
	now := time.Now().UTC()

	resultJSON, err := json.Marshal(res)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal result")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO analyses (id, label, overall_score, health_level, mode, result, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, label, res.OverallScore, string(res.HealthLevel), string(res.Mode), resultJSON, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert analysis")
	}

	return newRecord(id, label, res, now), nil
}

func (s *PostgresStore) GetAnalysis(ctx context.Context, id string) (*Record, error) {
	var r Record
	var level, mode string
	var resultJSON []byte
	err := s.pool.QueryRow(ctx,
		`SELECT id, label, overall_score, health_level, mode, created_at, result FROM analyses WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.Label, &r.OverallScore, &level, &mode, &r.CreatedAt, &resultJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, eris.Wrapf(ErrNotFound, "postgres: get analysis %s", id)
		}
		return nil, eris.Wrap(err, "postgres: get analysis")
	}
	r.HealthLevel = model.HealthLevel(level)
	r.Mode = model.Mode(mode)

	r.Result = &model.AnalysisResult{}
	if err := json.Unmarshal(resultJSON, r.Result); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal result")
	}
	return &r, nil
}

func (s *PostgresStore) ListAnalyses(ctx context.Context, filter ListFilter) ([]Record, error) {
	query := `SELECT id, label, overall_score, health_level, mode, created_at FROM analyses WHERE 1=1`
	var args []any
	n := 1

	if filter.Label != "" {
		query += fmt.Sprintf(` AND label = $%d`, n)
		args = append(args, filter.Label)
		n++
	}
	if filter.HealthLevel != "" {
		query += fmt.Sprintf(` AND health_level = $%d`, n)
		args = append(args, string(filter.HealthLevel))
		n++
	}
	query += ` ORDER BY created_at DESC, id`

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	query += fmt.Sprintf(` LIMIT $%d`, n)
	args = append(args, limit)
	n++

	if filter.Offset > 0 {
		query += fmt.Sprintf(` OFFSET $%d`, n)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list analyses")
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var level, mode string
		if err := rows.Scan(&r.ID, &r.Label, &r.OverallScore, &level, &mode, &r.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan analysis row")
		}
		r.HealthLevel = model.HealthLevel(level)
		r.Mode = model.Mode(mode)
		out = append(out, r)
	}
	return out, eris.Wrap(rows.Err(), "postgres: list analyses iterate")
}

func (s *PostgresStore) DeleteAnalysis(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return eris.Wrapf(err, "postgres: delete analysis %s", id)
	}
	if tag.RowsAffected() == 0 {
		return eris.Wrapf(ErrNotFound, "postgres: analysis %s", id)
	}
	return nil
}
