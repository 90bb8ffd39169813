package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stevk/glTF-Asset-Generator/modelgroup"
	"github.com/stevk/glTF-Asset-Generator/property"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the model groups",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, n := range modelgroup.Names() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s %s\n", n, property.SpacedName(n.String()))
			}
		},
	}
}
