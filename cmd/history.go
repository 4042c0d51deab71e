package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/report"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect saved analyses",
	Long:  "Commands for listing, viewing, and deleting analyses saved with --save.",
}

// -- history list --

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved analyses",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		label, _ := cmd.Flags().GetString("label")
		level, _ := cmd.Flags().GetString("level")
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		recs, err := st.ListAnalyses(ctx, store.ListFilter{
			Label:       label,
			HealthLevel: model.HealthLevel(level),
			Limit:       limit,
			Offset:      offset,
		})
		if err != nil {
			return eris.Wrap(err, "history list")
		}

		if len(recs) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "No saved analyses found.")
			return nil
		}

		formatHistoryList(cmd.OutOrStdout(), recs)
		return nil
	},
}

// -- history show --

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		format, _ := cmd.Flags().GetString("format")
		if format == "" {
			format = cfg.Output.Format
		}
		f, err := report.ParseFormat(format)
		if err != nil {
			return err
		}
		if f.Binary() {
			return eris.Errorf("history show: %s output is not supported on a terminal; use analyze --output", f)
		}

		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		rec, err := st.GetAnalysis(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "history show")
		}

		return report.Write(cmd.OutOrStdout(), rec.Result, f, report.Options{Color: cfg.Output.Color})
	},
}

// -- history delete --

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		if err := st.DeleteAnalysis(ctx, args[0]); err != nil {
			return eris.Wrap(err, "history delete")
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Deleted analysis %s\n", args[0])
		return nil
	},
}

func init() {
	historyListCmd.Flags().String("label", "", "filter by label")
	historyListCmd.Flags().String("level", "", "filter by health level (excellent, good, fair, limited, critical)")
	historyListCmd.Flags().Int("limit", 50, "max number of analyses to display")
	historyListCmd.Flags().Int("offset", 0, "number of analyses to skip")

	historyShowCmd.Flags().StringP("format", "f", "", "output format: human, json, yaml, csv (default from config)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

// formatHistoryList writes a tabular list of saved analyses to w.
func formatHistoryList(out io.Writer, recs []store.Record) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tLABEL\tSCORE\tLEVEL\tMODE\tCREATED")
	_, _ = fmt.Fprintln(w, "--\t-----\t-----\t-----\t----\t-------")

	for _, r := range recs {
		label := r.Label
		if len(label) > 30 {
			label = label[:27] + "..."
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
			truncateID(r.ID),
			label,
			r.OverallScore,
			r.HealthLevel,
			r.Mode,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	_ = w.Flush()
}

// truncateID returns the first 8 characters of a UUID for compact display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
