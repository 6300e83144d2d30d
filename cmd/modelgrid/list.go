// List command: declarations of the active model.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the declarations of the active model",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := loadManager()
		if err != nil {
			return sysErr(fmt.Errorf("load model: %w", err))
		}

		decls := mgr.Declarations()
		out := cmd.OutOrStdout()
		if flagJSON {
			report := make([]map[string]any, 0, len(decls))
			for _, d := range decls {
				report = append(report, map[string]any{
					"fqn":        d.FQN,
					"super":      d.SuperName,
					"identifier": d.IdentifierField,
					"enum":       d.Enum,
				})
			}
			return printJSON(out, report)
		}

		for _, d := range decls {
			line := d.FQN
			if d.Enum {
				line += " (enum)"
			}
			if d.SuperName != "" {
				line += " extends " + d.SuperName
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}
