// Resolve command: split a fully-qualified name and show its declaration.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modelgrid/modelgrid/pkg/naming"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <fqn>",
	Short: "Resolve a fully-qualified type name against the active model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fqn := args[0]
		namespace, err := naming.Namespace(fqn)
		if err != nil {
			return err
		}
		short := naming.ShortName(fqn)

		mgr, err := loadManager()
		if err != nil {
			return sysErr(fmt.Errorf("load model: %w", err))
		}

		decl, ok := mgr.ClassOf(fqn)
		if !ok {
			return fmt.Errorf("type %q not declared in model", fqn)
		}

		var ancestors []string
		for _, a := range decl.AllSuperTypes() {
			ancestors = append(ancestors, a.FullyQualifiedName())
		}

		out := cmd.OutOrStdout()
		if flagJSON {
			return printJSON(out, map[string]any{
				"fqn":        fqn,
				"namespace":  namespace,
				"name":       short,
				"super":      decl.SuperName,
				"identifier": decl.IdentifierField,
				"enum":       decl.Enum,
				"ancestors":  ancestors,
			})
		}

		fmt.Fprintln(out, "namespace:", namespace)
		fmt.Fprintln(out, "name:     ", short)
		if decl.SuperName != "" {
			fmt.Fprintln(out, "super:    ", decl.SuperName)
		}
		if decl.IdentifierField != "" {
			fmt.Fprintln(out, "identifier:", decl.IdentifierField)
		}
		if decl.Enum {
			fmt.Fprintln(out, "enum:      true")
		}
		for _, a := range ancestors {
			fmt.Fprintln(out, "ancestor: ", a)
		}
		return nil
	},
}
