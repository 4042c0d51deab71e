package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/config"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/input"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/report"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/store"
)

type batchOptions struct {
	dir     string
	summary string
	limit   int
	save    bool
}

var batchOpts batchOptions

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze every record in a directory",
	Long: `Analyzes each *.json, *.yaml, and *.yml record in --dir concurrently and
writes a CSV summary with one row per file. A failing file is reported in its
row and never aborts the batch.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return runBatch(ctx, cfg, batchOpts, cmd.OutOrStdout())
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchOpts.dir, "dir", "d", "", "directory of financial records")
	batchCmd.Flags().StringVar(&batchOpts.summary, "summary", "", "write the CSV summary to a file instead of stdout")
	batchCmd.Flags().IntVar(&batchOpts.limit, "limit", 0, "max number of files to process (0 = all)")
	batchCmd.Flags().BoolVar(&batchOpts.save, "save", false, "persist each result to analysis history, labeled by file name")
	_ = batchCmd.MarkFlagRequired("dir")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(ctx context.Context, c *config.Config, opts batchOptions, stdout io.Writer) error {
	if err := c.Validate("batch"); err != nil {
		return err
	}

	files, err := input.Discover(opts.dir)
	if err != nil {
		return err
	}
	if opts.limit > 0 && len(files) > opts.limit {
		files = files[:opts.limit]
	}

	var st store.Store
	if opts.save {
		st, err = openStore(ctx, c)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
	}

	a := newAnalyzer(c)
	rows, err := processBatch(ctx, files, c.Batch.MaxConcurrent, func(ctx context.Context, path string) (*model.AnalysisResult, error) {
		d, err := input.Load(path, nil)
		if err != nil {
			return nil, err
		}
		res, err := a.Analyze(d)
		if err != nil {
			return nil, err
		}
		if st != nil {
			if _, err := st.SaveAnalysis(ctx, filepath.Base(path), res); err != nil {
				return nil, err
			}
		}
		return res, nil
	})
	if err != nil {
		return err
	}

	if opts.summary == "" {
		return report.WriteSummaryCSV(stdout, rows)
	}
	f, err := os.Create(opts.summary)
	if err != nil {
		return eris.Wrapf(err, "batch: create %s", opts.summary)
	}
	if err := report.WriteSummaryCSV(f, rows); err != nil {
		f.Close() //nolint:errcheck
		return err
	}
	return eris.Wrapf(f.Close(), "batch: close %s", opts.summary)
}

// analyzeFunc is the callback signature for analyzing one record file.
type analyzeFunc func(ctx context.Context, path string) (*model.AnalysisResult, error)

// processBatch analyzes files concurrently and returns one summary row per
// file, in input order.
func processBatch(ctx context.Context, files []string, concurrency int, analyze analyzeFunc) ([]report.SummaryRow, error) {
	rows := make([]report.SummaryRow, len(files))
	if len(files) == 0 {
		zap.L().Info("batch: no records found")
		return rows, nil
	}
	if concurrency < 1 {
		concurrency = 1
	}

	zap.L().Info("batch: processing",
		zap.Int("files", len(files)),
		zap.Int("concurrency", concurrency),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var succeeded, failed atomic.Int64

	for i, path := range files {
		g.Go(func() error {
			log := zap.L().With(zap.String("file", path))
			row := report.SummaryRow{File: filepath.Base(path)}

			if err := gctx.Err(); err != nil {
				row.Err = err
				rows[i] = row
				failed.Add(1)
				return nil
			}

			res, err := analyze(gctx, path)
			if err != nil {
				failed.Add(1)
				log.Error("batch: analysis failed", zap.Error(err))
				row.Err = err
				rows[i] = row
				return nil // don't abort batch on individual failure
			}

			succeeded.Add(1)
			row.OverallScore = res.OverallScore
			row.HealthLevel = res.HealthLevel
			row.Mode = res.Mode
			row.Recommendations = len(res.Recommendations)
			if len(res.Recommendations) > 0 {
				row.TopPriority = res.Recommendations[0].ID
			}
			rows[i] = row
			log.Info("batch: analysis complete",
				zap.Int("score", res.OverallScore),
				zap.String("level", string(res.HealthLevel)),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "batch processing")
	}

	zap.L().Info("batch: complete",
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)
	return rows, nil
}
