// Instanceof command: ancestry membership of a tagged object.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modelgrid/modelgrid/pkg/runtime"
)

var instanceofCmd = &cobra.Command{
	Use:   "instanceof <object.json> <fqn>",
	Short: "Check whether a tagged object is an instance of a declared type",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		obj, err := readObject(args[0])
		if err != nil {
			return err
		}

		mgr, err := loadManager()
		if err != nil {
			return sysErr(fmt.Errorf("load model: %w", err))
		}

		ok, err := runtime.InstanceOf(obj, mgr, args[1])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if flagJSON {
			return printJSON(out, map[string]any{
				"target":     args[1],
				"instanceof": ok,
			})
		}
		fmt.Fprintln(out, ok)
		return nil
	},
}
