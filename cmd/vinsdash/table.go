package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalniak/vins-dashboard-generator/app"
	"github.com/aalniak/vins-dashboard-generator/domain"
	"github.com/aalniak/vins-dashboard-generator/internal/config"
	"github.com/aalniak/vins-dashboard-generator/service"
)

var (
	tableIndexColumn string
	tableVariants    []string
	tableExclude     []string
	tableRename      []string
	tableOutlier     float64

	tableJSON bool
	tableCSV  bool
	tableHTML bool
	tableYAML bool

	tableOutputPath string
	tableNoOpen     bool
	tableConfigPath string
)

// tableCmd represents the table command
var tableCmd = &cobra.Command{
	Use:   "table [summary-csv]",
	Short: "Render the sequence x variant RMSE table",
	Long: `Render the RMSE summary CSV as a sequence x variant comparison table.

Scores above the outlier threshold are treated as failed runs and shown as
missing. Each variant column is summarized with mean, standard deviation and
its best and worst sequence, and the variant with the lowest mean RMSE is
called out. The HTML format highlights the best and worst score per row.

Examples:
  vinsdash table rmse_summary.csv                 # Text table on stdout
  vinsdash table rmse_summary.csv --html          # Write rmse_table.html
  vinsdash table rmse_summary.csv --json          # JSON on stdout
  vinsdash table rmse_summary.csv --variants baseline,daac_rgd_inv_w0
  vinsdash table rmse_summary.csv --rename base_w0=baseline
  vinsdash table rmse_summary.csv --outlier 50    # Stricter failure cutoff`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTableCommand,
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().StringVar(&tableIndexColumn, "index-column", "", "Key column of the summary CSV")
	tableCmd.Flags().StringSliceVar(&tableVariants, "variants", nil, "Keep only these variant columns (overrides --exclude)")
	tableCmd.Flags().StringSliceVar(&tableExclude, "exclude", nil, "Drop these variant columns")
	tableCmd.Flags().StringSliceVar(&tableRename, "rename", nil, "Rename variant columns (old=new)")
	tableCmd.Flags().Float64Var(&tableOutlier, "outlier", 0, "Mark scores above this as failed runs (0 = keep all)")

	tableCmd.Flags().BoolVar(&tableJSON, "json", false, "Output as JSON")
	tableCmd.Flags().BoolVar(&tableCSV, "csv", false, "Output as CSV")
	tableCmd.Flags().BoolVar(&tableHTML, "html", false, "Generate HTML report file")
	tableCmd.Flags().BoolVar(&tableYAML, "yaml", false, "Output as YAML")

	tableCmd.Flags().StringVarP(&tableOutputPath, "output", "o", "", "Write output to file instead of stdout")
	tableCmd.Flags().BoolVar(&tableNoOpen, "no-open", false, "Don't auto-open HTML in browser")
	tableCmd.Flags().StringVarP(&tableConfigPath, "config", "c", "", "Configuration file path")
}

func runTableCommand(cmd *cobra.Command, args []string) error {
	request, err := buildTableRequest(cmd, args)
	if err != nil {
		return err
	}

	useCase, err := app.NewTableUseCaseBuilder().
		WithService(service.NewTableService(service.NewSummaryLoader())).
		WithFormatter(service.NewTableFormatter()).
		WithWriter(service.NewFileOutputWriter(cmd.ErrOrStderr())).
		Build()
	if err != nil {
		return fmt.Errorf("failed to create table use case: %w", err)
	}

	response, err := useCase.Execute(cmd.Context(), request)
	if err != nil {
		return fmt.Errorf("table generation failed: %w", err)
	}

	for _, warning := range response.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", warning)
	}

	return nil
}

// buildTableRequest merges the configuration file with the command line.
// Explicitly set flags win over file values.
func buildTableRequest(cmd *cobra.Command, args []string) (domain.TableRequest, error) {
	cfg, err := config.LoadConfig(tableConfigPath)
	if err != nil {
		return domain.TableRequest{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	request := domain.TableRequest{
		SummaryPath:      cfg.Summary.Path,
		IndexColumn:      cfg.Summary.IndexColumn,
		Exclude:          cfg.Table.Exclude,
		Rename:           cfg.Table.Rename,
		OutlierThreshold: cfg.Table.OutlierThreshold,
		OutputFormat:     domain.OutputFormatText,
		OutputWriter:     cmd.OutOrStdout(),
	}

	if len(args) > 0 {
		request.SummaryPath = args[0]
	}
	if request.SummaryPath == "" {
		return request, fmt.Errorf("no summary CSV given and none configured")
	}
	if _, err := os.Stat(request.SummaryPath); err != nil {
		return request, fmt.Errorf("summary CSV not readable: %s", request.SummaryPath)
	}

	tracker := config.NewFlagTrackerFromFlagSet(cmd.Flags())
	request.IndexColumn = tracker.MergeString(request.IndexColumn, tableIndexColumn, "index-column")
	request.Exclude = tracker.MergeStringSlice(request.Exclude, tableExclude, "exclude")
	request.OutlierThreshold = tracker.MergeFloat64(request.OutlierThreshold, tableOutlier, "outlier")
	request.Variants = tableVariants

	if tracker.WasSet("rename") {
		rename, err := parseRenameSpecs(tableRename)
		if err != nil {
			return request, err
		}
		request.Rename = rename
	}

	switch {
	case tableJSON:
		request.OutputFormat = domain.OutputFormatJSON
	case tableCSV:
		request.OutputFormat = domain.OutputFormatCSV
	case tableHTML:
		request.OutputFormat = domain.OutputFormatHTML
		if tableOutputPath == "" {
			tableOutputPath = "rmse_table.html"
		}
	case tableYAML:
		request.OutputFormat = domain.OutputFormatYAML
	}

	if tableOutputPath != "" {
		request.OutputPath = tableOutputPath
		request.OutputWriter = nil
	}
	request.NoOpen = tableNoOpen || !service.IsInteractiveEnvironment()

	return request, nil
}
