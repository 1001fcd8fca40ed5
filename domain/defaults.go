package domain

// Default request values shared by the CLI and the configuration layer.
const (
	// DefaultPattern matches the trajectory CSVs the solver logger writes,
	// one file per sequence/variant run.
	DefaultPattern = "P*.csv"

	// DefaultOutputDir is where the static pages land when no directory is
	// configured.
	DefaultOutputDir = "static_dashboard"

	// DefaultIndexColumn is the designated key column of the summary CSV.
	DefaultIndexColumn = "Sequence"

	// DefaultChartHeight is the pixel height of each chart section.
	DefaultChartHeight = 600

	// DefaultOutlierThreshold marks summary scores above it as failed runs.
	// RMSE values this large mean the estimator diverged.
	DefaultOutlierThreshold = 100.0
)

// Chart trace colors, matching the Plotly qualitative palette the dashboards
// have always used.
const (
	ColorInitialCost = "#EF553B"
	ColorFinalCost   = "#00CC96"
	ColorReduction   = "#636EFA"
	ColorFactorCount = "#FFA15A"
)

// DefaultDashboardRequest returns a request populated with defaults.
func DefaultDashboardRequest() DashboardRequest {
	return DashboardRequest{
		InputDir:    ".",
		Pattern:     DefaultPattern,
		OutputDir:   DefaultOutputDir,
		IndexColumn: DefaultIndexColumn,
		ChartHeight: DefaultChartHeight,
	}
}

// DefaultTableRequest returns a table request populated with defaults.
func DefaultTableRequest() TableRequest {
	return TableRequest{
		IndexColumn:      DefaultIndexColumn,
		OutputFormat:     OutputFormatText,
		OutlierThreshold: DefaultOutlierThreshold,
		Exclude:          []string{"sdi_w0"},
		Rename:           map[string]string{"base_w0": "baseline"},
	}
}
