// Package runfile loads and validates fieldlens run documents: the YAML
// (or JSON) files that carry field definitions, per-field comparison
// configuration, model names, and per-file extracted/reference values.
package runfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fieldlens/fieldlens/internal/evaluation"
	"github.com/fieldlens/fieldlens/internal/models"
	"github.com/fieldlens/fieldlens/internal/ranking"
)

// FieldSpec is a field definition plus its per-field evaluation options.
type FieldSpec struct {
	Key              string                `yaml:"key" json:"key"`
	Name             string                `yaml:"name" json:"name"`
	Type             models.FieldType      `yaml:"type" json:"type"`
	Compare          *models.CompareConfig `yaml:"compare,omitempty" json:"compare,omitempty"`
	IncludeInMetrics *bool                 `yaml:"includeInMetrics,omitempty" json:"includeInMetrics,omitempty"`
}

// Document is a parsed run file.
type Document struct {
	Name   string                  `yaml:"name,omitempty" json:"name,omitempty"`
	Models []string                `yaml:"models" json:"models"`
	Fields []FieldSpec             `yaml:"fields" json:"fields"`
	Files  []evaluation.FileRecord `yaml:"files" json:"files"`
}

// Load reads, schema-validates, and parses a run file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}
	return Parse(data)
}

// Parse validates raw YAML/JSON bytes against the run schema and decodes
// them. Schema violations are joined into one error so a caller sees every
// problem at once.
func Parse(data []byte) (*Document, error) {
	if errs := ValidateBytes(data); len(errs) > 0 {
		return nil, fmt.Errorf("run file is not valid:\n%s", joinIndented(errs))
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing run file: %w", err)
	}
	return &doc, nil
}

// ToInput converts the document into the evaluation engine's input shape.
// Fields without an explicit compare configuration default by field type:
// dates to date-exact, numbers to exact-number, multi-selects to unordered
// lists, everything else to near-exact-string.
func (d *Document) ToInput() evaluation.Input {
	input := evaluation.Input{
		Models:        d.Models,
		Files:         d.Files,
		Configs:       make(map[string]models.CompareConfig, len(d.Fields)),
		FieldSettings: make(ranking.Settings),
	}

	for _, spec := range d.Fields {
		input.Fields = append(input.Fields, models.Field{
			Key:  spec.Key,
			Name: spec.Name,
			Type: spec.Type,
		})

		if spec.Compare != nil {
			input.Configs[spec.Key] = *spec.Compare
		} else {
			input.Configs[spec.Key] = models.CompareConfig{CompareType: defaultCompareType(spec.Type)}
		}

		if spec.IncludeInMetrics != nil {
			input.FieldSettings[spec.Key] = models.FieldSettings{IncludeInMetrics: spec.IncludeInMetrics}
		}
	}

	return input
}

func defaultCompareType(t models.FieldType) models.CompareType {
	switch t {
	case models.FieldTypeDate:
		return models.CompareDateExact
	case models.FieldTypeNumber:
		return models.CompareExactNumber
	case models.FieldTypeMultiSelect:
		return models.CompareListUnordered
	default:
		return models.CompareNearExact
	}
}

func joinIndented(errs []string) string {
	out := ""
	for _, e := range errs {
		out += "  - " + e + "\n"
	}
	return out
}
