// Version command for the modelgrid CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modelgrid/modelgrid/pkg/modelgrid"
)

const modulePath = "github.com/modelgrid/modelgrid"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the modelgrid version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "modelgrid v%s\nmodule: %s\n", modelgrid.Version, modulePath)
		return nil
	},
}
