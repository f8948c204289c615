// Package cmd defines the command-line interface for footprint.
package cmd

import (
	"github.com/mlcortez/footprint/internal/contract"
	"github.com/mlcortez/footprint/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(mineCmd)
	rootCmd.AddCommand(reposCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(ledgerCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the ledger subcommands to the parent ledger command
	ledgerCmd.AddCommand(ledgerStatusCmd)
	ledgerCmd.AddCommand(ledgerMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringSliceP("emails", "e", nil, "Author emails attributed to the target identity")
	rootCmd.PersistentFlags().StringSliceP("names", "n", nil, "Author names attributed to the target identity")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or json")
	rootCmd.PersistentFlags().String("output-file", schema.DefaultDatasetFile, "Path the dataset JSON is written to")
	rootCmd.PersistentFlags().String("parquet-file", "", "Optional path for a flattened-commit Parquet export")
	rootCmd.PersistentFlags().StringSlice("ignore-extensions", nil, "Extra file extensions to exclude from churn (e.g. .pb.go)")
	rootCmd.PersistentFlags().StringSlice("ignore-files", nil, "Extra exact basenames to exclude from churn (e.g. go.sum)")
	rootCmd.PersistentFlags().StringSlice("skip-dirs", nil, "Extra directory names to prune during discovery")
	rootCmd.PersistentFlags().StringToString("languages", nil, "Extension to language overrides (e.g. .zig=Zig)")
	rootCmd.PersistentFlags().String("ledger-backend", string(schema.NoneBackend), "Run ledger backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("ledger-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of renderCmd to Viper
	renderCmd.Flags().String("html-file", defaultDashboardFile, "Path the HTML dashboard is written to")
	if err := viper.BindPFlags(renderCmd.Flags()); err != nil {
		contract.LogFatal("Error binding render flags", err)
	}

	// Bind all flags of ledgerMigrateCmd to Viper
	ledgerMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(ledgerMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding ledger migrate flags", err)
	}
}
