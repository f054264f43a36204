package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-cargoship/internal/types"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Show the refrigerated product temperature table",
	Long: `List the product types a refrigerated container may carry, together
with the minimum storage temperature each one requires.`,

	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runProducts()
	},
}

func init() {
	rootCmd.AddCommand(productsCmd)
}

func runProducts() {
	for _, product := range types.KnownProducts() {
		required, err := types.RequiredStorageTemperature(product)
		if err != nil {
			continue
		}
		fmt.Printf("%-14s %6.1f°C\n", product, required)
	}
}
