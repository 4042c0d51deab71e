package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/store"
)

func TestProcessBatch_OrderAndFailures(t *testing.T) {
	files := []string{"/data/a.json", "/data/b.json", "/data/c.yaml"}
	var calls atomic.Int64

	rows, err := processBatch(context.Background(), files, 2, func(_ context.Context, path string) (*model.AnalysisResult, error) {
		calls.Add(1)
		if filepath.Base(path) == "b.json" {
			return nil, errors.New("bad record")
		}
		return &model.AnalysisResult{
			OverallScore:    70,
			HealthLevel:     model.LevelGood,
			Mode:            model.ModeQuick,
			Recommendations: []model.Recommendation{{ID: "savings-rate"}, {ID: "housing-cost"}},
		}, nil
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, calls.Load())
	require.Len(t, rows, 3)

	assert.Equal(t, "a.json", rows[0].File)
	assert.NoError(t, rows[0].Err)
	assert.Equal(t, 70, rows[0].OverallScore)
	assert.Equal(t, 2, rows[0].Recommendations)
	assert.Equal(t, "savings-rate", rows[0].TopPriority)

	assert.Equal(t, "b.json", rows[1].File)
	assert.EqualError(t, rows[1].Err, "bad record")

	assert.Equal(t, "c.yaml", rows[2].File)
	assert.NoError(t, rows[2].Err)
}

func TestProcessBatch_Empty(t *testing.T) {
	rows, err := processBatch(context.Background(), nil, 4, func(context.Context, string) (*model.AnalysisResult, error) {
		t.Fatal("analyze should not be called")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestProcessBatch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows, err := processBatch(ctx, []string{"a.json", "b.json"}, 1, func(context.Context, string) (*model.AnalysisResult, error) {
		t.Fatal("analyze should not be called")
		return nil, nil
	})
	require.NoError(t, err)
	for _, r := range rows {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}

func TestRunBatch_EndToEnd(t *testing.T) {
	c := testConfig(t)
	ctx := context.Background()
	dir := t.TempDir()

	writeRecord(t, dir, "a.json", model.SampleData())
	writeRecord(t, dir, "b.yaml", model.SampleData())
	bad := model.SampleData()
	bad.Income.PrimarySalary = 0
	writeRecord(t, dir, "c.json", bad)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	var stdout bytes.Buffer
	require.NoError(t, runBatch(ctx, c, batchOptions{dir: dir, save: true}, &stdout))

	records, err := csv.NewReader(&stdout).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "file", records[0][0])
	assert.Equal(t, []string{"a.json", "ok", "57", "fair", "comprehensive"}, records[1][:5])
	assert.Equal(t, "b.yaml", records[2][0])
	assert.Equal(t, "c.json", records[3][0])
	assert.Equal(t, "failed", records[3][1])

	st, err := openStore(ctx, c)
	require.NoError(t, err)
	defer st.Close() //nolint:errcheck

	saved, err := st.ListAnalyses(ctx, store.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, saved, 2)
}

func TestRunBatch_SummaryFileAndLimit(t *testing.T) {
	c := testConfig(t)
	dir := t.TempDir()
	writeRecord(t, dir, "a.json", model.SampleData())
	writeRecord(t, dir, "b.json", model.SampleData())
	summary := filepath.Join(t.TempDir(), "summary.csv")

	var stdout bytes.Buffer
	require.NoError(t, runBatch(context.Background(), c, batchOptions{dir: dir, summary: summary, limit: 1}, &stdout))
	assert.Zero(t, stdout.Len())

	f, err := os.Open(summary)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestRunBatch_InvalidConcurrency(t *testing.T) {
	c := testConfig(t)
	c.Batch.MaxConcurrent = 0

	err := runBatch(context.Background(), c, batchOptions{dir: t.TempDir()}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch.max_concurrent")
}
