package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stevk/glTF-Asset-Generator/logger"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "assetgen",
		Short:         "Generate glTF test models and their READMEs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd(), newListCmd())
	return root
}

func main() {
	err := newRootCmd().Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
