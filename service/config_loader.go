package service

import (
	"github.com/aalniak/vins-dashboard-generator/domain"
	"github.com/aalniak/vins-dashboard-generator/internal/config"
)

// ConfigurationLoaderImpl implements the ConfigurationLoader interface
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader service
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from the specified path
func (c *ConfigurationLoaderImpl) LoadConfig(path string) (*domain.DashboardRequest, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}

	req := cfg.ToDashboardRequest()
	return &req, nil
}

// LoadDefaultConfig loads the default configuration, checking the usual
// config file locations first.
func (c *ConfigurationLoaderImpl) LoadDefaultConfig() *domain.DashboardRequest {
	if req, err := c.LoadConfig(""); err == nil {
		return req
	}

	// Fall back to hardcoded defaults when the discovered file is broken.
	req := config.DefaultConfig().ToDashboardRequest()
	return &req
}

// MergeConfig merges CLI flag values over a file-derived request. Zero values
// in the override leave the base untouched; the command layer only fills
// fields the user actually set.
func (c *ConfigurationLoaderImpl) MergeConfig(base *domain.DashboardRequest, override *domain.DashboardRequest) *domain.DashboardRequest {
	merged := *base

	if override.InputDir != "" {
		merged.InputDir = override.InputDir
	}
	if override.Pattern != "" {
		merged.Pattern = override.Pattern
	}
	if override.OutputDir != "" {
		merged.OutputDir = override.OutputDir
	}
	if override.SummaryPath != "" {
		merged.SummaryPath = override.SummaryPath
	}
	if override.IndexColumn != "" {
		merged.IndexColumn = override.IndexColumn
	}
	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}
	if override.ChartHeight > 0 {
		merged.ChartHeight = override.ChartHeight
	}
	if override.NoOpen {
		merged.NoOpen = true
	}
	if override.Verbose {
		merged.Verbose = true
	}

	return &merged
}
