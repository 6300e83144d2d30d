// Inspect command: full introspection report for a tagged object.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modelgrid/modelgrid/pkg/runtime"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <object.json>",
	Short: "Report type, namespace, identifier, and URI of a tagged object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		obj, err := readObject(args[0])
		if err != nil {
			return err
		}

		mgr, err := loadManager()
		if err != nil {
			return sysErr(fmt.Errorf("load model: %w", err))
		}

		typeName, err := runtime.TypeName(obj, mgr)
		if err != nil {
			return err
		}

		// The precondition held above, so the remaining queries can only
		// fail on identifier access.
		namespace, _ := runtime.NamespaceOf(obj, mgr)
		relationship, _ := runtime.IsRelationship(obj, mgr)
		identifiable, _ := runtime.IsIdentifiable(obj, mgr)

		report := map[string]any{
			"type":         typeName,
			"namespace":    namespace,
			"relationship": relationship,
			"identifiable": identifiable,
		}
		if identifiable {
			id, err := runtime.Identifier(obj, mgr)
			if err != nil {
				return err
			}
			fqid, _ := runtime.FullyQualifiedIdentifier(obj, mgr)
			uri, _ := runtime.ToURI(obj, mgr)
			report["identifier"] = id
			report["fqid"] = fqid
			report["uri"] = uri
		}

		out := cmd.OutOrStdout()
		if flagJSON {
			return printJSON(out, report)
		}

		fmt.Fprintln(out, "type:        ", typeName)
		fmt.Fprintln(out, "namespace:   ", namespace)
		fmt.Fprintln(out, "relationship:", relationship)
		fmt.Fprintln(out, "identifiable:", identifiable)
		if identifiable {
			fmt.Fprintln(out, "identifier:  ", report["identifier"])
			fmt.Fprintln(out, "fqid:        ", report["fqid"])
			fmt.Fprintln(out, "uri:         ", report["uri"])
		}
		return nil
	},
}
