package cmd

import (
	"github.com/mlcortez/footprint/core"
	"github.com/mlcortez/footprint/internal/contract"
	"github.com/spf13/cobra"
)

// mineCmd runs the full mining pipeline and writes the dataset.
var mineCmd = &cobra.Command{
	Use:   "mine [root-path]",
	Short: "Mine every repository under a directory and write the footprint dataset.",
	Long: `Walk a directory tree, find every Git repository in it, and rebuild the
target identity's contribution footprint from commit history.

For each repository footprint extracts the commits authored by the target
identity, counts added and deleted lines per commit (with lock files, minified
assets and binary blobs filtered out), snapshots the language composition of
tracked files, and estimates active hours from commit timing.

The result is a single JSON dataset written atomically at the end of the run.
Repositories that cannot be read are skipped with a warning; they never abort
the run.

Examples:
  # Mine everything under ~/code for one identity
  footprint mine ~/code --emails jane@example.com

  # Match by name as well, and export a Parquet copy of the commits
  footprint mine ~/code -e jane@example.com -n "Jane Doe" --parquet-file commits.parquet

  # Record run bookkeeping in a local SQLite ledger
  footprint mine ~/code -e jane@example.com --ledger-backend sqlite`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		defer closeRunStore()
		if err := core.ExecuteMine(rootCtx, cfg, gitClient, runStore); err != nil {
			contract.LogFatal("Cannot run footprint mining", err)
		}
	},
}
