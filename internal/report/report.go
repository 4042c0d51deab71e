// Package report renders analysis results for people and for other tools.
package report

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
)

// Format is an output encoding.
type Format string

const (
	FormatHuman Format = "human"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCSV   Format = "csv"
	FormatXLSX  Format = "xlsx"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatHuman, FormatJSON, FormatYAML, FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", eris.Errorf("report: unsupported format %q", s)
	}
}

// Binary reports whether the format should not be written to a terminal.
func (f Format) Binary() bool { return f == FormatXLSX }

// Options tunes rendering.
type Options struct {
	Color bool
}

// Write renders res to w in the given format. CSV output contains only the
// recommendations.
func Write(w io.Writer, res *model.AnalysisResult, format Format, opts Options) error {
	if res == nil {
		return eris.New("report: nil result")
	}
	switch format {
	case FormatJSON:
		return WriteJSON(w, res)
	case FormatYAML:
		return WriteYAML(w, res)
	case FormatCSV:
		return WriteRecommendationsCSV(w, res.Recommendations)
	case FormatXLSX:
		return WriteXLSX(w, res)
	case FormatHuman:
		return WriteHuman(w, res, opts.Color)
	default:
		return eris.Errorf("report: unsupported format %q", format)
	}
}

// WriteJSON writes res as indented JSON followed by a newline.
func WriteJSON(w io.Writer, res *model.AnalysisResult) error {
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return eris.Wrap(err, "report: marshal json")
	}
	out = append(out, '\n')
	if _, err := w.Write(out); err != nil {
		return eris.Wrap(err, "report: write json")
	}
	return nil
}

// WriteYAML writes res as YAML.
func WriteYAML(w io.Writer, res *model.AnalysisResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return eris.Wrap(err, "report: encode yaml")
	}
	if err := enc.Close(); err != nil {
		return eris.Wrap(err, "report: close yaml encoder")
	}
	return nil
}
