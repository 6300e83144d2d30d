// Assignable command: conformance check between a type and a property.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modelgrid/modelgrid/pkg/conform"
	"github.com/modelgrid/modelgrid/pkg/naming"
)

var assignableCmd = &cobra.Command{
	Use:   "assignable <typeName> <Class.property>",
	Short: "Check whether a type may be stored in a declared property",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		typeName, target := args[0], args[1]

		classFQN, err := naming.Namespace(target)
		if err != nil || classFQN == "" {
			return fmt.Errorf("target must be of the form Class.property: %q", target)
		}
		propName := naming.ShortName(target)

		mgr, err := loadManager()
		if err != nil {
			return sysErr(fmt.Errorf("load model: %w", err))
		}

		decl, ok := mgr.ClassOf(classFQN)
		if !ok {
			return fmt.Errorf("type %q not declared in model", classFQN)
		}
		field, ok := decl.Field(propName)
		if !ok {
			return fmt.Errorf("%s declares no property %q", classFQN, propName)
		}

		assignable, err := conform.IsAssignableTo(typeName, field, mgr)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if flagJSON {
			return printJSON(out, map[string]any{
				"type":       typeName,
				"property":   target,
				"assignable": assignable,
			})
		}
		fmt.Fprintln(out, assignable)
		return nil
	},
}
