package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Jeff-Rowell/Expression-Tree/logging"
)

func main() {
	// replaced by PersistentPreRunE once flags are parsed
	_ = logging.Configure(os.Stderr, "warn", "auto")

	os.Exit(run(newRootCmd()))
}

func run(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		logging.Error().Err(err).Msg("exprtree failed")
		return 1
	}

	return 0
}
