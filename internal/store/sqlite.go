package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	// Pragmas are per connection.
	db.SetMaxOpenConns(1)
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS analyses (
	id            TEXT PRIMARY KEY,
	label         TEXT NOT NULL DEFAULT '',
	overall_score INTEGER NOT NULL,
	health_level  TEXT NOT NULL,
	mode          TEXT NOT NULL DEFAULT '',
	result        TEXT NOT NULL,
	created_at    DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_analyses_label ON analyses(label);
CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveAnalysis(ctx context.Context, label string, res *model.AnalysisResult) (*Record, error) {
	if res == nil {
		return nil, eris.New("sqlite: nil analysis result")
	}
	id := uuid.New().String()
	now := time.Now().UTC()

	resultJSON, err := json.Marshal(res)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal result")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO analyses (id, label, overall_score, health_level, mode, result, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, label, res.OverallScore, string(res.HealthLevel), string(res.Mode), string(resultJSON), now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert analysis")
	}

	return newRecord(id, label, res, now), nil
}

func (s *SQLiteStore) GetAnalysis(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, label, overall_score, health_level, mode, created_at, result FROM analyses WHERE id = ?`,
		id,
	)

	var r Record
	var resultJSON string
	err := row.Scan(&r.ID, &r.Label, &r.OverallScore, &r.HealthLevel, &r.Mode, &r.CreatedAt, &resultJSON)
	if err == sql.ErrNoRows {
		return nil, eris.Wrapf(ErrNotFound, "sqlite: get analysis %s", id)
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan analysis")
	}

	r.Result = &model.AnalysisResult{}
	if err := json.Unmarshal([]byte(resultJSON), r.Result); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal result")
	}
	return &r, nil
}

func (s *SQLiteStore) ListAnalyses(ctx context.Context, filter ListFilter) ([]Record, error) {
	query := `SELECT id, label, overall_score, health_level, mode, created_at FROM analyses WHERE 1=1`
	var args []any

	if filter.Label != "" {
		query += ` AND label = ?`
		args = append(args, filter.Label)
	}
	if filter.HealthLevel != "" {
		query += ` AND health_level = ?`
		args = append(args, string(filter.HealthLevel))
	}
	query += ` ORDER BY created_at DESC, id`

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list analyses")
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Label, &r.OverallScore, &r.HealthLevel, &r.Mode, &r.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan analysis row")
		}
		out = append(out, r)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list analyses iterate")
}

func (s *SQLiteStore) DeleteAnalysis(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM analyses WHERE id = ?`, id)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete analysis %s", id)
	}
	return checkRowsAffected(res, id)
}

func checkRowsAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "sqlite: rows affected")
	}
	if n == 0 {
		return eris.Wrapf(ErrNotFound, "sqlite: analysis %s", id)
	}
	return nil
}
