package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".", cfg.Input.Dir)
	assert.Equal(t, "P*.csv", cfg.Input.Pattern)
	assert.Equal(t, "Sequence", cfg.Summary.IndexColumn)
	assert.Equal(t, "static_dashboard", cfg.Output.Directory)
	assert.True(t, cfg.Output.OpenBrowser)
	assert.Equal(t, 600, cfg.Charts.Height)
	assert.Equal(t, 100.0, cfg.Table.OutlierThreshold)
	assert.Contains(t, cfg.Table.Exclude, "sdi_w0")
	assert.Equal(t, "baseline", cfg.Table.Rename["base_w0"])

	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vinsdash.yaml")
	content := `
input:
  dir: /data/runs
  pattern: "P2*.csv"
output:
  directory: site
  open_browser: false
charts:
  height: 480
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/runs", cfg.Input.Dir)
	assert.Equal(t, "P2*.csv", cfg.Input.Pattern)
	assert.Equal(t, "site", cfg.Output.Directory)
	assert.False(t, cfg.Output.OpenBrowser)
	assert.Equal(t, 480, cfg.Charts.Height)
	// Unset sections keep defaults.
	assert.Equal(t, "Sequence", cfg.Summary.IndexColumn)
	assert.Equal(t, 100.0, cfg.Table.OutlierThreshold)
}

func TestLoadConfigTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".vinsdash.toml")
	content := `
[input]
dir = "logs"

[output]
open_browser = false

[table]
outlier_threshold = 50.0
exclude = ["sdi_w0", "base_w0"]

[table.rename]
base_w0 = "baseline"
daac_depth_w100 = "daac"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "logs", cfg.Input.Dir)
	assert.False(t, cfg.Output.OpenBrowser)
	assert.Equal(t, 50.0, cfg.Table.OutlierThreshold)
	assert.Equal(t, []string{"sdi_w0", "base_w0"}, cfg.Table.Exclude)
	assert.Equal(t, "daac", cfg.Table.Rename["daac_depth_w100"])
	// Defaults survive for unset keys.
	assert.Equal(t, "P*.csv", cfg.Input.Pattern)
	assert.Equal(t, 600, cfg.Charts.Height)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative chart height", "charts:\n  height: -5\n"},
		{"empty pattern", "input:\n  pattern: \"\"\n  dir: .\n"},
		{"negative outlier threshold", "table:\n  outlier_threshold: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "vinsdash.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestFindDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".vinsdash.toml"), []byte("[input]\ndir = \"x\"\n"), 0o644))

	found := findDefaultConfig(dir)
	assert.Equal(t, filepath.Join(dir, ".vinsdash.toml"), found)
}

func TestFindDefaultConfigPrefersYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vinsdash.yaml"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".vinsdash.toml"), []byte(""), 0o644))

	found := findDefaultConfig(dir)
	assert.Equal(t, filepath.Join(dir, "vinsdash.yaml"), found)
}

func TestFindDefaultConfigNone(t *testing.T) {
	assert.Equal(t, "", findDefaultConfig(t.TempDir()))
}

func TestToDashboardRequest(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input.Dir = "runs"
	cfg.Summary.Path = "results_table.csv"
	cfg.Output.OpenBrowser = false

	req := cfg.ToDashboardRequest()

	assert.Equal(t, "runs", req.InputDir)
	assert.Equal(t, "P*.csv", req.Pattern)
	assert.Equal(t, "results_table.csv", req.SummaryPath)
	assert.Equal(t, "static_dashboard", req.OutputDir)
	assert.True(t, req.NoOpen)
	assert.Equal(t, 600, req.ChartHeight)
}

func TestFlagTrackerMerge(t *testing.T) {
	ft := NewFlagTracker()
	ft.Set("output-dir")

	assert.True(t, ft.WasSet("output-dir"))
	assert.False(t, ft.WasSet("pattern"))
	assert.Equal(t, 1, ft.Count())

	assert.Equal(t, "cli-dir", ft.MergeString("file-dir", "cli-dir", "output-dir"))
	assert.Equal(t, "file-pattern", ft.MergeString("file-pattern", "cli-pattern", "pattern"))
	assert.Equal(t, 600, ft.MergeInt(600, 400, "chart-height"))
	assert.Equal(t, 90.0, ft.MergeFloat64(90.0, 50.0, "outlier-threshold"))
	assert.Equal(t, []string{"a"}, ft.MergeStringSlice([]string{"a"}, []string{"b"}, "exclude"))
	ft.Set("exclude")
	assert.Equal(t, []string{"b"}, ft.MergeStringSlice([]string{"a"}, []string{"b"}, "exclude"))
}
