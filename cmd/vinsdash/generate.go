package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalniak/vins-dashboard-generator/app"
	"github.com/aalniak/vins-dashboard-generator/domain"
	"github.com/aalniak/vins-dashboard-generator/internal/config"
	"github.com/aalniak/vins-dashboard-generator/service"
)

var (
	generateInputDir    string
	generatePattern     string
	generateOutputDir   string
	generateSummaryPath string
	generateIndexColumn string
	generateChartHeight int
	generateNoOpen      bool
	generateConfigPath  string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the static HTML dashboard from trajectory CSVs",
	Long: `Generate the static HTML dashboard from the per-frame optimization CSVs.

Every file matching the pattern becomes one dataset page with interactive
cost-breakdown charts. An index page links the datasets with summary cards,
and a comparison page lets two runs be viewed side by side. When an RMSE
summary CSV is given, accuracy scores are shown on the cards and in the
comparison view.

Examples:
  vinsdash generate                              # P*.csv in the current directory
  vinsdash generate -i logs/ -o docs/            # Custom input and output
  vinsdash generate --rmse rmse_summary.csv      # Attach accuracy scores
  vinsdash generate --pattern "P2001_*.csv"      # One sequence only
  vinsdash generate --no-open                    # Don't open the browser`,
	Args: cobra.NoArgs,
	RunE: runGenerateCommand,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateInputDir, "input-dir", "i", "", "Directory holding the trajectory CSV files")
	generateCmd.Flags().StringVarP(&generatePattern, "pattern", "p", "", "Glob pattern matched against CSV filenames")
	generateCmd.Flags().StringVarP(&generateOutputDir, "output-dir", "o", "", "Directory the HTML pages are written to")
	generateCmd.Flags().StringVar(&generateSummaryPath, "rmse", "", "Optional RMSE summary CSV for accuracy scores")
	generateCmd.Flags().StringVar(&generateIndexColumn, "index-column", "", "Key column of the summary CSV")
	generateCmd.Flags().IntVar(&generateChartHeight, "chart-height", 0, "Pixel height of each chart section")
	generateCmd.Flags().BoolVar(&generateNoOpen, "no-open", false, "Don't open the generated index in a browser")
	generateCmd.Flags().StringVarP(&generateConfigPath, "config", "c", "", "Configuration file path")
}

func runGenerateCommand(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")

	request, err := buildGenerateRequest(cmd)
	if err != nil {
		return err
	}
	request.Verbose = verbose

	renderer, err := service.NewPageRenderer(request.ChartHeight)
	if err != nil {
		return fmt.Errorf("failed to create page renderer: %w", err)
	}

	useCase, err := app.NewDashboardUseCaseBuilder().
		WithTrajectoryLoader(service.NewTrajectoryLoader()).
		WithSummaryLoader(service.NewSummaryLoader()).
		WithStatsService(service.NewStatsService()).
		WithRenderer(renderer).
		WithWriter(service.NewFileOutputWriter(cmd.ErrOrStderr())).
		WithConfigLoader(service.NewConfigurationLoader()).
		WithProgress(service.NewProgressReporter(cmd.ErrOrStderr(), verbose)).
		Build()
	if err != nil {
		return fmt.Errorf("failed to create dashboard use case: %w", err)
	}

	response, err := useCase.Generate(cmd.Context(), request)
	if err != nil {
		return fmt.Errorf("dashboard generation failed: %w", err)
	}

	for _, warning := range response.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", warning)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d dataset pages in %s\n",
		response.DatasetCount, response.OutputDir)

	if !request.NoOpen && service.IsInteractiveEnvironment() {
		indexPath := filepath.Join(response.OutputDir, "index.html")
		if err := service.OpenBrowser(indexPath); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Could not open browser: %v\n", err)
			fmt.Fprintf(cmd.ErrOrStderr(), "Open manually: %s\n", indexPath)
		}
	}

	return nil
}

// buildGenerateRequest merges the configuration file with the command line.
// Explicitly set flags win over file values.
func buildGenerateRequest(cmd *cobra.Command) (domain.DashboardRequest, error) {
	cfg, err := config.LoadConfig(generateConfigPath)
	if err != nil {
		return domain.DashboardRequest{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	request := cfg.ToDashboardRequest()
	request.ConfigPath = generateConfigPath

	tracker := config.NewFlagTrackerFromFlagSet(cmd.Flags())
	request.InputDir = tracker.MergeString(request.InputDir, generateInputDir, "input-dir")
	request.Pattern = tracker.MergeString(request.Pattern, generatePattern, "pattern")
	request.OutputDir = tracker.MergeString(request.OutputDir, generateOutputDir, "output-dir")
	request.SummaryPath = tracker.MergeString(request.SummaryPath, generateSummaryPath, "rmse")
	request.IndexColumn = tracker.MergeString(request.IndexColumn, generateIndexColumn, "index-column")
	request.ChartHeight = tracker.MergeInt(request.ChartHeight, generateChartHeight, "chart-height")
	request.NoOpen = tracker.MergeBool(request.NoOpen, generateNoOpen, "no-open")

	if request.SummaryPath != "" {
		if _, err := os.Stat(request.SummaryPath); err != nil {
			return request, fmt.Errorf("RMSE summary CSV not readable: %s", request.SummaryPath)
		}
	}

	return request, nil
}
