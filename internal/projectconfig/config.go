// Package projectconfig provides the ProjectConfig struct and loader for
// .fieldlens.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values for project configuration. These are the single source of
// truth: New() references them and no other code should duplicate them.
const (
	DefaultWorkers      = 4
	DefaultOutputFormat = "table"

	// DefaultMinSubstringRunes is the substring containment floor for
	// near-exact comparisons.
	DefaultMinSubstringRunes = 4

	// Day ratios for duration normalization. A month is 365/12 days so
	// "24 months" and "2 years" reduce to the same day count.
	DefaultDaysPerWeek  = 7.0
	DefaultDaysPerMonth = 365.0 / 12.0
	DefaultDaysPerYear  = 365.0
)

// DefaultsConfig holds default evaluation parameters.
type DefaultsConfig struct {
	Workers int    `yaml:"workers,omitempty"`
	Format  string `yaml:"format,omitempty"`
}

// CompareConfig holds the tunable comparator constants.
type CompareConfig struct {
	MinSubstringRunes int      `yaml:"min_substring_runes,omitempty"`
	DaysPerWeek       float64  `yaml:"days_per_week,omitempty"`
	DaysPerMonth      float64  `yaml:"days_per_month,omitempty"`
	DaysPerYear       float64  `yaml:"days_per_year,omitempty"`
	Separators        []string `yaml:"separators,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .fieldlens.yaml.
type ProjectConfig struct {
	Defaults DefaultsConfig `yaml:"defaults,omitempty"`
	Compare  CompareConfig  `yaml:"compare,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Defaults: DefaultsConfig{
			Workers: DefaultWorkers,
			Format:  DefaultOutputFormat,
		},
		Compare: CompareConfig{
			MinSubstringRunes: DefaultMinSubstringRunes,
			DaysPerWeek:       DefaultDaysPerWeek,
			DaysPerMonth:      DefaultDaysPerMonth,
			DaysPerYear:       DefaultDaysPerYear,
			Separators:        []string{"|", ","},
		},
	}
}

// Load finds .fieldlens.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading .fieldlens.yaml: %w", err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing .fieldlens.yaml: %w", err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .fieldlens.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found. Propagates
// real I/O errors (e.g. permission denied) instead of silently swallowing
// them.
func findConfigFile(dir string) ([]byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ".fieldlens.yaml")
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Defaults.Workers > 0 {
		dst.Defaults.Workers = src.Defaults.Workers
	}
	if src.Defaults.Format != "" {
		dst.Defaults.Format = src.Defaults.Format
	}

	if src.Compare.MinSubstringRunes > 0 {
		dst.Compare.MinSubstringRunes = src.Compare.MinSubstringRunes
	}
	if src.Compare.DaysPerWeek > 0 {
		dst.Compare.DaysPerWeek = src.Compare.DaysPerWeek
	}
	if src.Compare.DaysPerMonth > 0 {
		dst.Compare.DaysPerMonth = src.Compare.DaysPerMonth
	}
	if src.Compare.DaysPerYear > 0 {
		dst.Compare.DaysPerYear = src.Compare.DaysPerYear
	}
	if len(src.Compare.Separators) > 0 {
		dst.Compare.Separators = src.Compare.Separators
	}
}
