package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// tomlConfig mirrors the structure of .vinsdash.toml. Pointer fields detect
// unset keys so TOML values only override what the file actually sets.
type tomlConfig struct {
	Input   tomlInputConfig   `toml:"input"`
	Summary tomlSummaryConfig `toml:"summary"`
	Output  tomlOutputConfig  `toml:"output"`
	Charts  tomlChartsConfig  `toml:"charts"`
	Table   tomlTableConfig   `toml:"table"`
}

type tomlInputConfig struct {
	Dir     string `toml:"dir"`
	Pattern string `toml:"pattern"`
}

type tomlSummaryConfig struct {
	Path        string `toml:"path"`
	IndexColumn string `toml:"index_column"`
}

type tomlOutputConfig struct {
	Directory   string `toml:"directory"`
	OpenBrowser *bool  `toml:"open_browser"`
}

type tomlChartsConfig struct {
	Height int `toml:"height"`
}

type tomlTableConfig struct {
	OutlierThreshold *float64          `toml:"outlier_threshold"`
	Exclude          []string          `toml:"exclude"`
	Rename           map[string]string `toml:"rename"`
}

// loadTomlInto merges a TOML config file over base and validates the result.
func loadTomlInto(base *Config, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var tc tomlConfig
	if err := toml.Unmarshal(data, &tc); err != nil {
		return nil, fmt.Errorf("failed to parse TOML config %s: %w", path, err)
	}

	if tc.Input.Dir != "" {
		base.Input.Dir = tc.Input.Dir
	}
	if tc.Input.Pattern != "" {
		base.Input.Pattern = tc.Input.Pattern
	}
	if tc.Summary.Path != "" {
		base.Summary.Path = tc.Summary.Path
	}
	if tc.Summary.IndexColumn != "" {
		base.Summary.IndexColumn = tc.Summary.IndexColumn
	}
	if tc.Output.Directory != "" {
		base.Output.Directory = tc.Output.Directory
	}
	if tc.Output.OpenBrowser != nil {
		base.Output.OpenBrowser = *tc.Output.OpenBrowser
	}
	if tc.Charts.Height != 0 {
		base.Charts.Height = tc.Charts.Height
	}
	if tc.Table.OutlierThreshold != nil {
		base.Table.OutlierThreshold = *tc.Table.OutlierThreshold
	}
	if tc.Table.Exclude != nil {
		base.Table.Exclude = tc.Table.Exclude
	}
	if tc.Table.Rename != nil {
		base.Table.Rename = tc.Table.Rename
	}

	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return base, nil
}

// DefaultTomlConfig returns the commented default configuration written by
// `vinsdash init`.
func DefaultTomlConfig() string {
	return `# vinsdash configuration

[input]
# Directory holding the trajectory CSV files
dir = "."
# Glob pattern matched against filenames under dir
pattern = "P*.csv"

[summary]
# Optional accuracy summary CSV (one row per sequence, one column per variant)
# path = "results_table.csv"
index_column = "Sequence"

[output]
directory = "static_dashboard"
open_browser = true

[charts]
height = 600

[table]
# Scores above this threshold count as failed runs
outlier_threshold = 100.0
exclude = ["sdi_w0"]

[table.rename]
base_w0 = "baseline"
`
}
