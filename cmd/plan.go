package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-cargoship/internal/config"
	"github.com/deploymenttheory/go-cargoship/pkg/fleet"
)

var planShowFleet bool

var planCmd = &cobra.Command{
	Use:   "plan [manifest-path]",
	Short: "Execute a manifest's loading plan",
	Long: `Build the fleet declared in a manifest and execute its loading plan,
printing the outcome of every step. Rejected steps are reported and
execution continues.

Examples:
  # Run the plan from a manifest
  cargoship plan fleet.yaml

  # Run the plan and show the resulting fleet state
  cargoship plan fleet.yaml --show-fleet`,

	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPlan(args[0]); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().BoolVar(&planShowFleet, "show-fleet", false, "describe the fleet after the plan has run")
}

func runPlan(manifestPath string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := config.LoadFleetConfig(manifestPath)
	if err != nil {
		return err
	}

	service := fleet.NewService(fleet.WithLogger(logger))
	f, err := service.Build(cfg)
	if err != nil {
		return fmt.Errorf("failed to build fleet: %w", err)
	}

	report := service.ExecutePlan(f, cfg.Plan)
	if !quiet {
		fmt.Println(report)
		if planShowFleet {
			fmt.Print(service.Describe(f))
		}
	}
	return nil
}
