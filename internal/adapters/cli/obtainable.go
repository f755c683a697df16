package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newObtainableCommand(engine *Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "obtainable",
		Short: "List every item name the catalogue has a registered route for",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range engine.Catalogue.ObtainableItems() {
				method, _ := engine.Catalogue.GetAcquisitionMethod(name)
				fmt.Printf("%-20s %s\n", name, method)
			}
			return nil
		},
	}
}
