// main is the entry point for the footprint CLI.
package main

import (
	"os"

	"github.com/mlcortez/footprint/cmd"
	"github.com/mlcortez/footprint/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogWarn("Command failed", err)
		os.Exit(1)
	}
}
