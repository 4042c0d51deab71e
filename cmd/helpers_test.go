package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/config"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Store:    config.StoreConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "history.db")},
		Analysis: config.AnalysisConfig{MaxRecommendations: 10},
		Output:   config.OutputConfig{Format: "json"},
		Batch:    config.BatchConfig{MaxConcurrent: 2},
		Log:      config.LogConfig{Level: "info", Format: "json"},
	}
}

// writeRecord writes d into dir using the encoding implied by name.
func writeRecord(t *testing.T, dir, name string, d model.FinancialData) string {
	t.Helper()
	var (
		data []byte
		err  error
	)
	if filepath.Ext(name) == ".json" {
		data, err = json.Marshal(d)
	} else {
		data, err = yaml.Marshal(d)
	}
	require.NoError(t, err)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}
