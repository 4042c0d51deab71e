package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the field keys accepted by --set",
	RunE: func(cmd *cobra.Command, _ []string) error {
		section, _ := cmd.Flags().GetString("section")
		return writeFields(cmd.OutOrStdout(), model.Section(section))
	},
}

func init() {
	fieldsCmd.Flags().String("section", "", "only list fields in this section (e.g. income, expenses)")
	rootCmd.AddCommand(fieldsCmd)
}

func writeFields(out io.Writer, section model.Section) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "KEY\tTYPE")

	n := 0
	for _, f := range model.Fields() {
		if section != "" && f.Section != section {
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\n", f.Key, f.Kind)
		n++
	}
	if n == 0 {
		return eris.Errorf("fields: unknown section %q", section)
	}
	return w.Flush()
}
