package cmd

import (
	"fmt"

	"github.com/mlcortez/footprint/core"
	"github.com/mlcortez/footprint/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// reposSetup loads the minimal configuration needed to walk the tree.
// Listing repositories never reads history, so no identity is required.
func reposSetup(_ *cobra.Command, args []string) error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	if len(args) == 1 {
		input.RootPathStr = args[0]
	} else {
		input.RootPathStr = "."
	}

	return contract.ProcessDiscoveryOnly(cfg, input)
}

// reposCmd lists discovered repository roots without mining them.
var reposCmd = &cobra.Command{
	Use:   "repos [root-path]",
	Short: "List the Git repositories discovered under a directory.",
	Long: `Walk a directory tree and list every Git repository root found, without
reading any history.

Discovery prunes dependency and cache directories (node_modules, vendor,
.venv and friends) and never descends into a repository once its root is
found, so nested checkouts are reported once.

Examples:
  # See which repositories a mine run would cover
  footprint repos ~/code

  # Prune extra directories
  footprint repos ~/code --skip-dirs build,dist`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: reposSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRepos(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list repositories", err)
		}
	},
}
