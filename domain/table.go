package domain

import (
	"context"
	"fmt"
	"io"
)

// TableRequest represents a request to render the sequence x variant score table
type TableRequest struct {
	// SummaryPath is the accuracy summary CSV to tabulate
	SummaryPath string

	// IndexColumn is the key column of the summary CSV
	IndexColumn string

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer
	OutputPath   string
	NoOpen       bool

	// Variants keeps only the named variant columns; overrides Exclude
	Variants []string

	// Exclude drops the named variant columns
	Exclude []string

	// Rename maps old variant column names to display names
	Rename map[string]string

	// OutlierThreshold marks scores above it as failed runs (missing cells);
	// 0 disables the filter
	OutlierThreshold float64

	// ConfigPath is an explicit configuration file path
	ConfigPath string
}

// Validate validates the table request
func (r TableRequest) Validate() error {
	if r.SummaryPath == "" {
		return NewValidationError("summary CSV path is required")
	}
	if r.OutputWriter == nil && r.OutputPath == "" {
		return NewValidationError("output writer or output path is required")
	}
	if r.OutlierThreshold < 0 {
		return NewValidationError(fmt.Sprintf("outlier threshold cannot be negative: %g", r.OutlierThreshold))
	}
	switch r.OutputFormat {
	case OutputFormatText, OutputFormatJSON, OutputFormatYAML, OutputFormatCSV, OutputFormatHTML:
	default:
		return NewUnsupportedFormatError(string(r.OutputFormat))
	}
	return nil
}

// VariantSummary aggregates one variant column across all sequences
type VariantSummary struct {
	Variant string  `json:"variant" yaml:"variant"`
	Mean    float64 `json:"mean" yaml:"mean"`
	Std     float64 `json:"std" yaml:"std"`
	Count   int     `json:"count" yaml:"count"`

	// BestSequence and WorstSequence are the row keys with the lowest and
	// highest score for this variant
	BestSequence  string `json:"best_sequence" yaml:"best_sequence"`
	WorstSequence string `json:"worst_sequence" yaml:"worst_sequence"`
}

// TableResponse represents the assembled comparison table
type TableResponse struct {
	// Table is the filtered, renamed score matrix
	Table *SummaryTable

	// Summaries holds one entry per retained variant, in column order
	Summaries []VariantSummary

	// BestVariant is the variant with the lowest mean score; empty when the
	// table has no scores
	BestVariant string

	// Warnings collects non-fatal issues (unknown variants, dropped outliers)
	Warnings []string

	GeneratedAt string `json:"generated_at"`
	Version     string `json:"version"`
}

// TableService builds the comparison table from a summary CSV
type TableService interface {
	// Build loads, filters and aggregates the score matrix
	Build(ctx context.Context, req TableRequest) (*TableResponse, error)
}

// TableFormatter defines the interface for formatting table responses
type TableFormatter interface {
	// Format formats the response according to the specified format
	Format(response *TableResponse, format OutputFormat) (string, error)

	// Write writes the formatted output to the writer
	Write(response *TableResponse, format OutputFormat, writer io.Writer) error
}
