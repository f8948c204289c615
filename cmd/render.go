package cmd

import (
	"fmt"

	"github.com/mlcortez/footprint/internal/contract"
	"github.com/mlcortez/footprint/internal/outwriter"
	"github.com/mlcortez/footprint/internal/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultDashboardFile = "footprint_dashboard.html"

// renderSetup loads the minimal configuration needed to locate the dataset.
// Rendering reads a previously mined artifact, so no identity is required.
func renderSetup(_ *cobra.Command, _ []string) error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// renderCmd turns a mined dataset into an HTML dashboard.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an HTML dashboard from a mined dataset.",
	Long: `Build a static HTML dashboard from a previously mined dataset.

The dashboard shows monthly churn over time, the language composition of
tracked files, and the repositories ranked by attributed commits. All charts
are interactive and render offline in any browser.

This command never touches Git; it fails fast when the dataset artifact is
missing so stale numbers are never rendered.

Examples:
  # Render the default dataset
  footprint render

  # Render a dataset mined to a custom location
  footprint render --output-file work_history.json --html-file work.html`,
	PreRunE: renderSetup,
	Run: func(_ *cobra.Command, _ []string) {
		dataset, err := outwriter.LoadDataset(cfg.OutputFile)
		if err != nil {
			contract.LogFatal("Cannot load dataset", err)
		}

		htmlFile := viper.GetString("html-file")
		if htmlFile == "" {
			htmlFile = defaultDashboardFile
		}
		if err := render.WriteDashboard(dataset, htmlFile); err != nil {
			contract.LogFatal("Cannot render dashboard", err)
		}
		fmt.Printf("Wrote dashboard to %s\n", htmlFile)
	},
}
