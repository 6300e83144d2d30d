// Import command: persist a model manifest into the store.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/modelgrid/modelgrid/internal/sqlite"
	"github.com/modelgrid/modelgrid/pkg/model"
)

var importCmd = &cobra.Command{
	Use:   "import <model.json>",
	Short: "Validate a model manifest and store it in the data directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := model.ReadDocumentFile(args[0])
		if err != nil {
			return err
		}

		dataDir, err := resolveDataDir()
		if err != nil {
			return sysErr(err)
		}
		store, err := sqlite.Open(filepath.Join(dataDir, dbFileName))
		if err != nil {
			return sysErr(err)
		}
		defer store.Close()

		if err := store.SaveModel(doc); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%d declarations)\n", doc.Namespace, len(doc.Declarations))
		return nil
	},
}
