package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalniak/vins-dashboard-generator/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "vinsdash",
	Short: "Static HTML dashboards for VINS-Fusion optimization logs",
	Long: `vinsdash turns the per-frame optimization CSVs written by the
VINS-Fusion solver logger into a static HTML dashboard: one interactive
cost-breakdown page per run, an index with summary cards, and a side-by-side
comparison page. It also renders the sequence x variant RMSE table in several
formats.

The generated pages are self-contained (charts load Plotly from a CDN) and can
be published as-is, e.g. to GitHub Pages.`,
	Version: version.Short(),
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewInitCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
