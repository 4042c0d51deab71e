package main

import (
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print a complete example financial record",
	Long:  "Prints a comprehensive example record that can be edited and passed to analyze --input.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, _ := cmd.Flags().GetString("format")
		return writeSample(cmd.OutOrStdout(), format)
	},
}

func init() {
	sampleCmd.Flags().StringP("format", "f", "yaml", "record format: json or yaml")
	rootCmd.AddCommand(sampleCmd)
}

func writeSample(out io.Writer, format string) error {
	d := model.SampleData()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(d), "sample: encode json")
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return eris.Wrap(err, "sample: encode yaml")
		}
		return eris.Wrap(enc.Close(), "sample: close yaml encoder")
	default:
		return eris.Errorf("sample: unsupported format %q", format)
	}
}
