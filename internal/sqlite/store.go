package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/modelgrid/modelgrid/pkg/model"
	"github.com/modelgrid/modelgrid/pkg/naming"
)

// Store errors.
var (
	ErrNoModel     = errors.New("no model stored")
	ErrStoreClosed = errors.New("store is closed")
)

// Store persists a single model manifest in a SQLite database file.
type Store struct {
	mu sync.RWMutex
	db *sql.DB
}

// Open creates the database file (and its directory) if needed, applies the
// schema, and returns a ready store.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// SaveModel replaces the stored manifest with doc in one transaction. The
// manifest is validated by building it first, so a store never holds a
// manifest that cannot be linked.
func (s *Store) SaveModel(doc *model.Document) error {
	if _, err := doc.Build(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return ErrStoreClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"fields", "declarations", "models"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if _, err := tx.Exec("INSERT INTO models (namespace) VALUES (?)", doc.Namespace); err != nil {
		return fmt.Errorf("save namespace: %w", err)
	}
	for i, decl := range doc.Declarations {
		fqn := naming.Qualify(doc.Namespace, decl.Name)
		_, err := tx.Exec(
			"INSERT INTO declarations (fqn, name, super, identifier_field, is_enum, ordinal) VALUES (?, ?, ?, ?, ?, ?)",
			fqn, decl.Name, decl.Super, decl.Identifier, boolToInt(decl.Enum), i,
		)
		if err != nil {
			return fmt.Errorf("save declaration %s: %w", fqn, err)
		}
		for j, p := range decl.Properties {
			_, err := tx.Exec(
				"INSERT INTO fields (declaration_fqn, name, type, ordinal) VALUES (?, ?, ?, ?)",
				fqn, p.Name, p.Type, j,
			)
			if err != nil {
				return fmt.Errorf("save field %s.%s: %w", fqn, p.Name, err)
			}
		}
	}

	return tx.Commit()
}

// LoadModel reconstitutes the stored manifest. Returns ErrNoModel when the
// store is empty.
func (s *Store) LoadModel() (*model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrStoreClosed
	}

	doc := &model.Document{}
	err := s.db.QueryRow("SELECT namespace FROM models").Scan(&doc.Namespace)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoModel
	}
	if err != nil {
		return nil, fmt.Errorf("load namespace: %w", err)
	}

	rows, err := s.db.Query(
		"SELECT fqn, name, super, identifier_field, is_enum FROM declarations ORDER BY ordinal")
	if err != nil {
		return nil, fmt.Errorf("load declarations: %w", err)
	}
	defer rows.Close()

	byFQN := make(map[string]int)
	for rows.Next() {
		var fqn string
		var decl model.DeclarationDoc
		var isEnum int
		if err := rows.Scan(&fqn, &decl.Name, &decl.Super, &decl.Identifier, &isEnum); err != nil {
			return nil, fmt.Errorf("scan declaration: %w", err)
		}
		decl.Enum = isEnum != 0
		byFQN[fqn] = len(doc.Declarations)
		doc.Declarations = append(doc.Declarations, decl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load declarations: %w", err)
	}

	fieldRows, err := s.db.Query(
		"SELECT declaration_fqn, name, type FROM fields ORDER BY declaration_fqn, ordinal")
	if err != nil {
		return nil, fmt.Errorf("load fields: %w", err)
	}
	defer fieldRows.Close()

	for fieldRows.Next() {
		var owner string
		var p model.PropertyDoc
		if err := fieldRows.Scan(&owner, &p.Name, &p.Type); err != nil {
			return nil, fmt.Errorf("scan field: %w", err)
		}
		i, ok := byFQN[owner]
		if !ok {
			return nil, fmt.Errorf("field %s.%s has no declaration row", owner, p.Name)
		}
		doc.Declarations[i].Properties = append(doc.Declarations[i].Properties, p)
	}
	if err := fieldRows.Err(); err != nil {
		return nil, fmt.Errorf("load fields: %w", err)
	}

	return doc, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
