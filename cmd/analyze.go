package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/analyzer"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/config"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/input"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/report"
)

type analyzeOptions struct {
	input     string
	overrides []string
	format    string
	output    string
	save      bool
	label     string
	noColor   bool
}

var analyzeOpts analyzeOptions

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a financial record and print recommendations",
	Long: `Loads a JSON or YAML financial record, applies any --set overrides,
validates it, and renders the analysis in the configured output format.`,
	Example: `  finhealth analyze --input household.yaml
  finhealth analyze -i household.json --set income.primarySalary=7200 --format json
  finhealth analyze -i household.json --format xlsx --output report.xlsx --save --label march`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAnalyze(cmd.Context(), cfg, analyzeOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOpts.input, "input", "i", "", "path to a JSON or YAML financial record")
	analyzeCmd.Flags().StringArrayVar(&analyzeOpts.overrides, "set", nil, "override a field (key=value, repeatable; see `finhealth fields`)")
	analyzeCmd.Flags().StringVarP(&analyzeOpts.format, "format", "f", "", "output format: human, json, yaml, csv, xlsx (default from config)")
	analyzeCmd.Flags().StringVarP(&analyzeOpts.output, "output", "o", "", "write the report to a file instead of stdout")
	analyzeCmd.Flags().BoolVar(&analyzeOpts.save, "save", false, "persist the result to analysis history")
	analyzeCmd.Flags().StringVar(&analyzeOpts.label, "label", "", "label stored with a saved analysis")
	analyzeCmd.Flags().BoolVar(&analyzeOpts.noColor, "no-color", false, "disable colored terminal output")
	_ = analyzeCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(ctx context.Context, c *config.Config, opts analyzeOptions, stdout, stderr io.Writer) error {
	if opts.format != "" {
		c.Output.Format = opts.format
	}
	if err := c.Validate("analyze"); err != nil {
		return err
	}
	format, err := report.ParseFormat(c.Output.Format)
	if err != nil {
		return err
	}
	if format.Binary() && opts.output == "" {
		return eris.Errorf("analyze: %s output requires --output", format)
	}

	d, err := input.Load(opts.input, opts.overrides)
	if err != nil {
		return err
	}

	res, err := newAnalyzer(c).Analyze(d)
	if err != nil {
		return eris.Wrap(err, "analyze")
	}

	if err := writeReport(res, format, opts, c.Output.Color, stdout); err != nil {
		return err
	}

	if opts.save {
		st, err := openStore(ctx, c)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		rec, err := st.SaveAnalysis(ctx, opts.label, res)
		if err != nil {
			return eris.Wrap(err, "analyze: save")
		}
		zap.L().Info("analyze: saved analysis", zap.String("id", rec.ID), zap.String("label", rec.Label))
		fmt.Fprintf(stderr, "Saved analysis %s\n", rec.ID)
	}
	return nil
}

func newAnalyzer(c *config.Config) *analyzer.Analyzer {
	return analyzer.New(
		analyzer.WithLogger(zap.L()),
		analyzer.WithMaxRecommendations(c.Analysis.MaxRecommendations),
	)
}

func writeReport(res *model.AnalysisResult, format report.Format, opts analyzeOptions, useColor bool, stdout io.Writer) error {
	if opts.output == "" {
		return report.Write(stdout, res, format, report.Options{Color: useColor && !opts.noColor})
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return eris.Wrapf(err, "analyze: create %s", opts.output)
	}
	if err := report.Write(f, res, format, report.Options{}); err != nil {
		f.Close() //nolint:errcheck
		return err
	}
	return eris.Wrapf(f.Close(), "analyze: close %s", opts.output)
}
