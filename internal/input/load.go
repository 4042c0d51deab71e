// Package input reads financial data records from JSON or YAML files and
// applies key=value overrides from the field table.
package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
)

// Format is a record file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor infers the encoding from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", eris.Errorf("input: unsupported file type %q", filepath.Ext(path))
	}
}

// Decode parses one record. Unknown keys are rejected so typos in field
// names surface instead of silently scoring as zero.
func Decode(r io.Reader, format Format) (*model.FinancialData, error) {
	var d model.FinancialData
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return nil, eris.Wrap(err, "input: decode json")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, eris.New("input: empty yaml document")
			}
			return nil, eris.Wrap(err, "input: decode yaml")
		}
	default:
		return nil, eris.Errorf("input: unknown format %q", format)
	}
	return &d, nil
}

// Load reads the record at path, applies overrides, and validates it.
func Load(path string, overrides []string) (*model.FinancialData, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "input: read %s", path)
	}

	d, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, eris.Wrapf(err, "input: load %s", filepath.Base(path))
	}
	if err := ApplyOverrides(d, overrides); err != nil {
		return nil, err
	}
	if err := model.Validate(d); err != nil {
		return nil, err
	}
	return d, nil
}

// ApplyOverrides sets each "key=value" pair on d through the field table.
func ApplyOverrides(d *model.FinancialData, overrides []string) error {
	for _, o := range overrides {
		key, value, ok := strings.Cut(o, "=")
		if !ok {
			return eris.Errorf("input: override %q must be key=value", o)
		}
		if err := model.SetField(d, strings.TrimSpace(key), value); err != nil {
			return eris.Wrap(err, "input: apply override")
		}
	}
	return nil
}

// Discover lists the record files directly inside dir, sorted by name.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrapf(err, "input: read dir %s", dir)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := FormatFor(e.Name()); err == nil {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
