package domain

import (
	"context"
	"io"
	"time"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatCSV  OutputFormat = "csv"
	OutputFormatHTML OutputFormat = "html"
)

// DashboardRequest represents a request to generate the static dashboard
type DashboardRequest struct {
	// InputDir is the directory holding the trajectory CSV files
	InputDir string

	// Pattern is the glob pattern matched against filenames under InputDir
	Pattern string

	// OutputDir is the directory the HTML pages are written to
	OutputDir string

	// SummaryPath is the optional accuracy summary CSV; empty means none
	SummaryPath string

	// IndexColumn is the key column of the summary CSV
	IndexColumn string

	// ConfigPath is an explicit configuration file path
	ConfigPath string

	// ChartHeight is the pixel height of each chart section
	ChartHeight int

	// NoOpen disables opening the generated index in a browser
	NoOpen bool

	// Verbose enables progress detail on stderr
	Verbose bool
}

// DashboardData is the aggregated model handed from the pipeline to the
// renderer: every loaded dataset, its statistics, and the optional summary.
type DashboardData struct {
	// Keys holds dataset keys in display order
	Keys []string

	// Datasets maps key -> loaded table
	Datasets map[string]*Dataset

	// Stats maps key -> computed roll-up
	Stats map[string]DatasetStats

	// Summary is nil when no summary CSV was supplied
	Summary *SummaryTable

	// GeneratedAt is the run timestamp embedded in page footers
	GeneratedAt time.Time

	// Version is the tool version embedded in page footers
	Version string
}

// Score resolves the summary score for a dataset key; ok is false when the
// dataset has no summary entry.
func (d *DashboardData) Score(key string) (float64, bool) {
	return d.Summary.ResolveScore(key)
}

// PageInfo describes one written page.
type PageInfo struct {
	Key  string
	Path string
}

// DashboardResponse represents the outcome of a dashboard run
type DashboardResponse struct {
	// OutputDir is the absolute output directory
	OutputDir string

	// IndexPath and ComparePath are the written overview and comparison pages
	IndexPath   string
	ComparePath string

	// DatasetPages holds one entry per rendered dataset page
	DatasetPages []PageInfo

	// DatasetCount is the number of distinct dataset keys discovered
	DatasetCount int

	// Warnings collects non-fatal data issues (skipped rows, unreadable files)
	Warnings []string

	GeneratedAt time.Time
	Version     string
}

// TrajectoryLoader discovers and parses trajectory CSV files
type TrajectoryLoader interface {
	// Discover returns the sorted paths under inputDir matching pattern.
	// Zero matches is not an error.
	Discover(inputDir, pattern string) ([]string, error)

	// Load parses one CSV file into a dataset. Malformed rows are skipped
	// and reported through the returned warnings.
	Load(path string) (*Dataset, []string, error)
}

// SummaryLoader parses the optional accuracy summary CSV
type SummaryLoader interface {
	// Load parses the summary CSV keyed by indexColumn
	Load(path, indexColumn string) (*SummaryTable, error)
}

// StatsService computes aggregate statistics over loaded datasets
type StatsService interface {
	// Compute builds the per-dataset roll-up
	Compute(dataset *Dataset) DatasetStats

	// ComputeColumn computes the aggregate statistics of one series
	ComputeColumn(values []float64) ColumnStats
}

// PageRenderer turns the aggregated model into static HTML documents
type PageRenderer interface {
	// RenderIndex renders the overview page listing all datasets
	RenderIndex(data *DashboardData) (string, error)

	// RenderDataset renders the detail page for one dataset key
	RenderDataset(data *DashboardData, key string) (string, error)

	// RenderCompare renders the interactive comparison page
	RenderCompare(data *DashboardData) (string, error)
}

// PageWriter persists rendered pages into the output directory
type PageWriter interface {
	// WritePage writes content to filename under outputDir, creating the
	// directory if needed, and returns the absolute path written.
	WritePage(outputDir, filename, content string) (string, error)
}

// ReportWriter abstracts writing a single formatted report to a destination
// (file or writer) and handling side-effects like opening HTML in a browser.
//
// Implementations live in the service layer.
type ReportWriter interface {
	// Write writes formatted content using the provided writeFunc.
	// - If outputPath is non-empty, implementations should create/truncate the
	//   file at that path and pass the file as the writer to writeFunc.
	// - If outputPath is empty, implementations should pass the provided
	//   writer to writeFunc.
	Write(writer io.Writer, outputPath string, format OutputFormat, noOpen bool, writeFunc func(io.Writer) error) error
}

// ProgressReporter reports per-dataset progress during generation
type ProgressReporter interface {
	// StartProgress sets up progress tracking for totalFiles datasets
	StartProgress(totalFiles int)

	// UpdateProgress advances progress after processing currentFile
	UpdateProgress(currentFile string, processed, total int)

	// FinishProgress completes progress reporting
	FinishProgress()
}

// DashboardService runs the full extract-transform-render pipeline
type DashboardService interface {
	// Generate executes one dashboard run
	Generate(ctx context.Context, req DashboardRequest) (*DashboardResponse, error)
}

// ConfigurationLoader defines the interface for loading dashboard configuration
type ConfigurationLoader interface {
	// LoadConfig loads configuration from the specified path
	LoadConfig(path string) (*DashboardRequest, error)

	// LoadDefaultConfig loads the default configuration
	LoadDefaultConfig() *DashboardRequest

	// MergeConfig merges CLI flags with configuration file
	MergeConfig(base *DashboardRequest, override *DashboardRequest) *DashboardRequest
}
