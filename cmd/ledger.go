package cmd

import (
	"fmt"

	"github.com/mlcortez/footprint/internal/contract"
	"github.com/mlcortez/footprint/internal/runstore"
	"github.com/mlcortez/footprint/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ledgerSetup loads minimal configuration needed for ledger operations.
// This is used by commands that need ledger access without full shared setup.
func ledgerSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get ledger-related config values
	backendStr := viper.GetString("ledger-backend")
	connStr := viper.GetString("ledger-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetLedgerDBFilePath()
	}

	cfg.LedgerBackend = backend
	cfg.LedgerDBConnect = connStr

	return nil
}

// ledgerSetupWrapper wraps ledgerSetup to provide PreRunE for ledger commands.
func ledgerSetupWrapper(_ *cobra.Command, _ []string) error {
	return ledgerSetup()
}

// ledgerCmd focused on run ledger management.
//
// Note: Ledger subcommands use minimal initialization (ledgerSetup) instead of
// the full sharedSetup used by mining commands. This avoids identity validation
// and root path checks for simple bookkeeping operations.
var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Manage the run ledger (bookkeeping for mining runs)",
	Long: `Manage the run ledger that records each mining run.

When a ledger backend is configured, footprint stores one row per run:
when it started and finished, how many repositories and commits it covered,
the estimated hours, and where the dataset was written. The ledger is pure
bookkeeping; mining results never depend on it.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show ledger statistics and connection info
  migrate - Apply or roll back ledger schema migrations

Examples:
  # Check ledger status
  footprint ledger status

  # Upgrade the ledger schema to the latest version
  footprint ledger migrate`,
}

// ledgerStatusCmd shows run ledger status.
var ledgerStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run ledger statistics and connection details",
	Long: `Show basic information about the configured run ledger.

Displays the backend type, its location, and the total number of recorded
runs. Use this to verify the ledger is reachable before long mining runs.

Examples:
  # Check ledger status
  footprint ledger status

  # Check a MySQL ledger (set connection string via env variable)
  FOOTPRINT_LEDGER_BACKEND=mysql FOOTPRINT_LEDGER_DB_CONNECT="..." footprint ledger status`,
	PreRunE: ledgerSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := runstore.NewRunStore(cfg.LedgerBackend, cfg.LedgerDBConnect)
		if err != nil {
			contract.LogFatal("Failed to open run ledger", err)
		}
		defer func() { _ = store.Close() }()

		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get ledger status", err)
		}
		runstore.PrintLedgerStatus(status)
	},
}

// ledgerMigrateCmd applies schema migrations to the ledger database.
var ledgerMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back run ledger schema migrations",
	Long: `Run schema migrations against the configured ledger database.

With no flags the ledger is migrated to the latest version. Pass
--target-version to migrate to a specific version, or 0 to roll back to an
empty schema.

Examples:
  # Upgrade to the latest schema
  footprint ledger migrate

  # Roll back everything
  footprint ledger migrate --target-version 0`,
	PreRunE: ledgerSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.LedgerBackend == schema.NoneBackend {
			contract.LogFatal("Cannot migrate ledger", fmt.Errorf("no ledger backend configured; set --ledger-backend"))
		}
		targetVersion := viper.GetInt("target-version")
		if err := runstore.MigrateLedger(cfg.LedgerBackend, cfg.LedgerDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to migrate ledger", err)
		}
	},
}
