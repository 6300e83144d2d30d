// Package model defines the declaration, property, and registry capabilities
// of the modelgrid type system, together with the concrete in-memory
// implementations used by the conformance and runtime layers. Declarations
// form a single-inheritance hierarchy keyed by fully-qualified name.
package model

import "errors"

// Registry maps a fully-qualified type name to its declaration. The zero
// return value reports whether the name is declared.
type Registry interface {
	// TypeOf returns the declaration for the given fully-qualified name.
	TypeOf(fqn string) (Declaration, bool)
}

// Declaration exposes the declared shape of a class: its name, its place in
// the inheritance hierarchy, and whether instances carry an identifier.
type Declaration interface {
	// FullyQualifiedName returns the unique registry key of the class.
	FullyQualifiedName() string

	// SuperType returns the direct supertype declaration, if any.
	SuperType() (Declaration, bool)

	// AllSuperTypes returns the ordered ancestor declarations, nearest
	// first, excluding the declaration itself.
	AllSuperTypes() []Declaration

	// IdentifierFieldName returns the field that holds an instance's
	// identifier, if the class declares one.
	IdentifierFieldName() (string, bool)

	// IsEnum reports whether the declaration is an enumeration.
	IsEnum() bool
}

// Property exposes the declared type of a single class field.
type Property interface {
	// Name returns the field name within its declaring class.
	Name() string

	// FullyQualifiedTypeName returns the type the field is declared to hold.
	FullyQualifiedTypeName() string
}

// Model construction and lookup errors.
var (
	ErrUnknownType        = errors.New("type not declared in model")
	ErrDuplicateType      = errors.New("type already declared")
	ErrUnknownSuperType   = errors.New("supertype not declared in model")
	ErrSuperTypeCycle     = errors.New("supertype chain contains a cycle")
	ErrInvalidDeclaration = errors.New("invalid declaration")
)
