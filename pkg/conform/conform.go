// Package conform decides substitutability between declared types. A type
// may be assigned where a property expects it when the two names are equal,
// or when the expected name appears in the candidate's ancestor chain.
// Widening is nominal and single-inheritance; primitives never widen.
package conform

import (
	"fmt"

	"github.com/modelgrid/modelgrid/pkg/model"
	"github.com/modelgrid/modelgrid/pkg/naming"
)

// IsAssignableTo reports whether an instance declared as typeName may be
// stored where prop's declared type is expected.
//
// The identical name is always assignable, primitives included. Distinct
// names involving a primitive on either side are never assignable. Every
// other pair resolves typeName in the registry and widens up its ancestor
// chain; an unresolvable typeName is a model.ErrUnknownType error.
func IsAssignableTo(typeName string, prop model.Property, reg model.Registry) (bool, error) {
	propertyType := prop.FullyQualifiedTypeName()
	if typeName == propertyType {
		return true, nil
	}
	if naming.IsPrimitive(typeName) || naming.IsPrimitive(propertyType) {
		return false, nil
	}

	decl, ok := reg.TypeOf(typeName)
	if !ok {
		return false, fmt.Errorf("%w: %s", model.ErrUnknownType, typeName)
	}
	for _, ancestor := range decl.AllSuperTypes() {
		if ancestor.FullyQualifiedName() == propertyType {
			return true, nil
		}
	}
	return false, nil
}
