// Parse command: decompose a possibly version-pinned namespace.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modelgrid/modelgrid/pkg/naming"
)

var parseCmd = &cobra.Command{
	Use:   "parse <namespace>",
	Short: "Decompose a namespace into name, escaped form, and version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := naming.ParseNamespace(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if flagJSON {
			return printJSON(out, map[string]string{
				"name":    parsed.Name,
				"escaped": parsed.Escaped,
				"version": parsed.Version,
			})
		}

		fmt.Fprintln(out, "name:   ", parsed.Name)
		fmt.Fprintln(out, "escaped:", parsed.Escaped)
		if parsed.Version != "" {
			fmt.Fprintln(out, "version:", parsed.Version)
		}
		return nil
	},
}
