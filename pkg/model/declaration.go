package model

// ClassDeclaration is the concrete declaration of a class or enumeration.
// The exported fields describe the declaration as authored; the supertype
// pointer is resolved by Manager.Link and read through the Declaration
// interface afterwards.
type ClassDeclaration struct {
	FQN             string   // Fully-qualified name, unique within a model.
	SuperName       string   // Fully-qualified supertype name; empty for a root class.
	IdentifierField string   // Field holding the instance identifier; empty when not identifiable.
	Enum            bool     // Enumerations declare values, not instances.
	Fields          []*Field // Declared fields in authoring order.

	super *ClassDeclaration // Resolved by Manager.Link.
}

// FullyQualifiedName returns the unique registry key of the class.
func (c *ClassDeclaration) FullyQualifiedName() string {
	return c.FQN
}

// SuperType returns the direct supertype declaration, if any. It is only
// meaningful after the owning manager has been linked.
func (c *ClassDeclaration) SuperType() (Declaration, bool) {
	if c.super == nil {
		return nil, false
	}
	return c.super, true
}

// AllSuperTypes returns the ordered ancestors of the class, nearest first,
// excluding the class itself. Link guarantees the chain is acyclic, so the
// walk terminates.
func (c *ClassDeclaration) AllSuperTypes() []Declaration {
	var ancestors []Declaration
	for s := c.super; s != nil; s = s.super {
		ancestors = append(ancestors, s)
	}
	return ancestors
}

// IdentifierFieldName returns the declared identifier field, if any.
func (c *ClassDeclaration) IdentifierFieldName() (string, bool) {
	if c.IdentifierField == "" {
		return "", false
	}
	return c.IdentifierField, true
}

// IsEnum reports whether the declaration is an enumeration.
func (c *ClassDeclaration) IsEnum() bool {
	return c.Enum
}

// Field returns the declared field with the given name, searching the class
// and then its ancestors.
func (c *ClassDeclaration) Field(name string) (*Field, bool) {
	for d := c; d != nil; d = d.super {
		for _, f := range d.Fields {
			if f.FieldName == name {
				return f, true
			}
		}
	}
	return nil, false
}

// Field is the concrete declaration of a single class field.
type Field struct {
	FieldName string // Name within the declaring class.
	TypeName  string // Fully-qualified type the field holds, or a primitive name.
}

// Name returns the field name within its declaring class.
func (f *Field) Name() string {
	return f.FieldName
}

// FullyQualifiedTypeName returns the type the field is declared to hold.
func (f *Field) FullyQualifiedTypeName() string {
	return f.TypeName
}
