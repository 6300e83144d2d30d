package runtime

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/modelgrid/modelgrid/pkg/model"
)

// NewResource builds a tagged object of the declared type fqn. When the
// type is identifiable the identifier field is seeded with a fresh UUID v7;
// SetIdentifier can overwrite it. Enumerations have no instances and are
// rejected with ErrNotInstantiable.
func NewResource(reg model.Registry, fqn string) (Object, error) {
	decl, ok := reg.TypeOf(fqn)
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownType, fqn)
	}
	if decl.IsEnum() {
		return nil, fmt.Errorf("%w: %s", ErrNotInstantiable, fqn)
	}
	obj := Object{ClassField: fqn}
	if field, ok := decl.IdentifierFieldName(); ok {
		obj[field] = newID()
	}
	return obj, nil
}

// NewRelationship builds a relationship-marked reference to the instance of
// fqn identified by id. The target type must be identifiable, otherwise
// there is nothing to reference.
func NewRelationship(reg model.Registry, fqn, id string) (Object, error) {
	decl, ok := reg.TypeOf(fqn)
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownType, fqn)
	}
	field, ok := decl.IdentifierFieldName()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotIdentifiable, fqn)
	}
	return Object{
		ClassField:        fqn,
		RelationshipField: true,
		field:             id,
	}, nil
}

// newID generates a UUID v7 string.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
