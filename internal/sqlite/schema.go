// Package sqlite implements the on-disk model store. A store holds one
// model manifest, normalized into namespace, declaration, and field rows,
// and reconstitutes it as a model.Document on load.
package sqlite

// Schema DDL for the model store.
const (
	createModels = `CREATE TABLE IF NOT EXISTS models (
    namespace TEXT PRIMARY KEY
);`

	createDeclarations = `CREATE TABLE IF NOT EXISTS declarations (
    fqn TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    super TEXT,
    identifier_field TEXT,
    is_enum INTEGER NOT NULL DEFAULT 0,
    ordinal INTEGER NOT NULL
);`

	createFields = `CREATE TABLE IF NOT EXISTS fields (
    declaration_fqn TEXT NOT NULL,
    name TEXT NOT NULL,
    type TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    PRIMARY KEY (declaration_fqn, name)
);`
)

// schemaDDL lists the statements applied on Open, in order.
var schemaDDL = []string{createModels, createDeclarations, createFields}
