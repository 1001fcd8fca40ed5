package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/aalniak/vins-dashboard-generator/domain"
)

// Config represents the main configuration structure
type Config struct {
	// Input holds trajectory file discovery configuration
	Input InputConfig `mapstructure:"input" yaml:"input"`

	// Summary holds accuracy summary CSV configuration
	Summary SummaryConfig `mapstructure:"summary" yaml:"summary"`

	// Output holds output directory and browser configuration
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Charts holds chart rendering configuration
	Charts ChartsConfig `mapstructure:"charts" yaml:"charts"`

	// Table holds score table configuration
	Table TableConfig `mapstructure:"table" yaml:"table"`
}

// InputConfig holds trajectory file discovery configuration
type InputConfig struct {
	// Dir is the directory holding the trajectory CSV files
	Dir string `mapstructure:"dir" yaml:"dir"`

	// Pattern is the glob pattern matched against filenames under Dir
	Pattern string `mapstructure:"pattern" yaml:"pattern"`
}

// SummaryConfig holds accuracy summary CSV configuration
type SummaryConfig struct {
	// Path is the summary CSV file; empty means no summary
	Path string `mapstructure:"path" yaml:"path"`

	// IndexColumn is the designated key column
	IndexColumn string `mapstructure:"index_column" yaml:"index_column"`
}

// OutputConfig holds output configuration
type OutputConfig struct {
	// Directory is where the static pages are written
	Directory string `mapstructure:"directory" yaml:"directory"`

	// OpenBrowser controls whether the generated index opens in a browser
	OpenBrowser bool `mapstructure:"open_browser" yaml:"open_browser"`
}

// ChartsConfig holds chart rendering configuration
type ChartsConfig struct {
	// Height is the pixel height of each chart section
	Height int `mapstructure:"height" yaml:"height"`
}

// TableConfig holds score table configuration
type TableConfig struct {
	// OutlierThreshold marks scores above it as failed runs; 0 disables
	OutlierThreshold float64 `mapstructure:"outlier_threshold" yaml:"outlier_threshold"`

	// Exclude drops the named variant columns
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`

	// Rename maps old variant column names to display names
	Rename map[string]string `mapstructure:"rename" yaml:"rename"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Dir:     ".",
			Pattern: domain.DefaultPattern,
		},
		Summary: SummaryConfig{
			IndexColumn: domain.DefaultIndexColumn,
		},
		Output: OutputConfig{
			Directory:   domain.DefaultOutputDir,
			OpenBrowser: true,
		},
		Charts: ChartsConfig{
			Height: domain.DefaultChartHeight,
		},
		Table: TableConfig{
			OutlierThreshold: domain.DefaultOutlierThreshold,
			Exclude:          []string{"sdi_w0"},
			Rename:           map[string]string{"base_w0": "baseline"},
		},
	}
}

// LoadConfig loads configuration from file or returns default config
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	// If no config path specified, try to find default config files
	if configPath == "" {
		configPath = findDefaultConfig(".")
	}

	// If still no config found, return default
	if configPath == "" {
		return config, nil
	}

	if filepath.Ext(configPath) == ".toml" {
		return loadTomlInto(config, configPath)
	}

	v := viper.New()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadConfigWithTarget loads configuration, searching for config files in the
// target directory before the usual locations. An empty configPath triggers
// discovery.
func LoadConfigWithTarget(configPath, targetPath string) (*Config, error) {
	if configPath == "" && targetPath != "" {
		dir := targetPath
		if info, err := os.Stat(targetPath); err == nil && !info.IsDir() {
			dir = filepath.Dir(targetPath)
		}
		configPath = findDefaultConfig(dir)
	}
	return LoadConfig(configPath)
}

// findDefaultConfig looks for default configuration files in common locations
func findDefaultConfig(dir string) string {
	candidates := []string{
		"vinsdash.yaml",
		"vinsdash.yml",
		".vinsdash.yaml",
		".vinsdash.yml",
		".vinsdash.toml",
		"vinsdash.toml",
	}

	// Check the starting directory first
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	// Check home directory
	if home, err := os.UserHomeDir(); err == nil {
		for _, candidate := range candidates {
			path := filepath.Join(home, candidate)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if c.Input.Pattern == "" {
		return fmt.Errorf("input.pattern must not be empty")
	}

	if c.Charts.Height <= 0 {
		return fmt.Errorf("charts.height must be positive, got %d", c.Charts.Height)
	}

	if c.Output.Directory == "" {
		return fmt.Errorf("output.directory must not be empty")
	}

	if c.Table.OutlierThreshold < 0 {
		return fmt.Errorf("table.outlier_threshold must be >= 0, got %g", c.Table.OutlierThreshold)
	}

	if c.Summary.IndexColumn == "" {
		return fmt.Errorf("summary.index_column must not be empty")
	}

	return nil
}

// ToDashboardRequest converts the configuration into a dashboard request.
func (c *Config) ToDashboardRequest() domain.DashboardRequest {
	return domain.DashboardRequest{
		InputDir:    c.Input.Dir,
		Pattern:     c.Input.Pattern,
		OutputDir:   c.Output.Directory,
		SummaryPath: c.Summary.Path,
		IndexColumn: c.Summary.IndexColumn,
		ChartHeight: c.Charts.Height,
		NoOpen:      !c.Output.OpenBrowser,
	}
}
