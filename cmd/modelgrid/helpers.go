// Shared helpers for subcommands: model loading and object reading.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/modelgrid/modelgrid/internal/sqlite"
	"github.com/modelgrid/modelgrid/pkg/model"
	"github.com/modelgrid/modelgrid/pkg/runtime"
)

// dbFileName is the model store file inside the data directory.
const dbFileName = "model.db"

// loadManager builds the active model registry. Precedence: --model flag >
// config.yaml model_path > the model stored in the data directory.
func loadManager() (*model.Manager, error) {
	manifest := flagModel
	if manifest == "" {
		manifest = configModelPath
	}
	if manifest != "" {
		doc, err := model.ReadDocumentFile(manifest)
		if err != nil {
			return nil, err
		}
		return doc.Build()
	}

	doc, err := loadStoredDocument()
	if err != nil {
		return nil, err
	}
	return doc.Build()
}

// loadStoredDocument reads the manifest persisted by "modelgrid import".
func loadStoredDocument() (*model.Document, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}
	store, err := sqlite.Open(filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.LoadModel()
}

// readObject decodes a tagged object from a JSON file.
func readObject(path string) (runtime.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read object: %w", err)
	}
	var obj runtime.Object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("decode object: %w", err)
	}
	return obj, nil
}

// printJSON writes v to w as indented JSON.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(out))
	return nil
}
