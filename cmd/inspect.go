package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-cargoship/internal/config"
	"github.com/deploymenttheory/go-cargoship/pkg/fleet"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [manifest-path]",
	Short: "Build a fleet from a manifest and describe it",
	Long: `Build the ships and containers declared in a manifest without executing
its plan, and print a summary of each.

Examples:
  # Describe the fleet declared in a manifest
  cargoship inspect fleet.yaml`,

	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInspect(args[0]); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(manifestPath string) error {
	cfg, err := config.LoadFleetConfig(manifestPath)
	if err != nil {
		return err
	}

	service := fleet.NewService()
	f, err := service.Build(cfg)
	if err != nil {
		return fmt.Errorf("failed to build fleet: %w", err)
	}

	if !quiet {
		fmt.Print(service.Describe(f))
	}
	return nil
}
