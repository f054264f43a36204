package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global output flags only
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "cargoship",
	Short: "Cargo container and ship loading simulator",
	Long: `cargoship models cargo containers (liquid, gas, refrigerated) and the
ships that carry them, enforcing per-variant loading rules and ship-level
capacity limits.

Fleets are declared in YAML manifests; nothing persists between runs.

Commands:
  plan        Execute a manifest's loading plan and report each step
  inspect     Build a fleet from a manifest and describe it
  products    Show the refrigerated product temperature table`,
	Version: "0.1.0-dev",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Only global output control flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output except errors")
}

// newLogger builds the zap logger for a command run based on the global
// output flags.
func newLogger() (*zap.Logger, error) {
	if quiet {
		return zap.NewNop(), nil
	}
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
