// Package runtime inspects tagged runtime objects against a type registry.
// An object is a caller-owned map carrying a "$class" discriminator; every
// operation re-resolves the discriminator on entry, so a registry swap
// between calls is observed immediately.
package runtime

import (
	"errors"
	"fmt"

	"github.com/modelgrid/modelgrid/pkg/model"
	"github.com/modelgrid/modelgrid/pkg/naming"
)

// Well-known object fields and the resource URI scheme.
const (
	ClassField        = "$class"
	RelationshipField = "$relationship"
	URIScheme         = "resource:"
)

// Introspection errors.
var (
	ErrMissingTypeTag  = errors.New("object has no type tag")
	ErrNotIdentifiable = errors.New("type declares no identifier field")
	ErrNotInstantiable = errors.New("enum types cannot be instantiated")
)

// Object is a tagged runtime value keyed by field name. The map is owned by
// the caller; SetIdentifier is the only operation that writes to it.
type Object map[string]any

// resolve checks the shared precondition: the object carries a string type
// tag and the tag is declared in the registry.
func resolve(obj Object, reg model.Registry) (model.Declaration, string, error) {
	raw, ok := obj[ClassField]
	if !ok {
		return nil, "", fmt.Errorf("%w: missing %s field", ErrMissingTypeTag, ClassField)
	}
	fqn, ok := raw.(string)
	if !ok || fqn == "" {
		return nil, "", fmt.Errorf("%w: %s is not a type name", ErrMissingTypeTag, ClassField)
	}
	decl, ok := reg.TypeOf(fqn)
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", model.ErrUnknownType, fqn)
	}
	return decl, fqn, nil
}

// Identifier returns the value stored under the declared identifier field.
// A missing or non-string value is rendered as a string without further
// validation; value checking belongs to a validator above this layer.
// Returns ErrNotIdentifiable when the type declares no identifier field.
func Identifier(obj Object, reg model.Registry) (string, error) {
	decl, fqn, err := resolve(obj, reg)
	if err != nil {
		return "", err
	}
	field, ok := decl.IdentifierFieldName()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotIdentifiable, fqn)
	}
	switch v := obj[field].(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		return fmt.Sprint(v), nil
	}
}

// IsIdentifiable reports whether the object's declared type has an
// identifier field.
func IsIdentifiable(obj Object, reg model.Registry) (bool, error) {
	decl, _, err := resolve(obj, reg)
	if err != nil {
		return false, err
	}
	_, ok := decl.IdentifierFieldName()
	return ok, nil
}

// SetIdentifier stores id under the declared identifier field, mutating obj
// in place. The write happens only after the type resolves and is
// identifiable, so a failed call leaves obj untouched.
func SetIdentifier(obj Object, reg model.Registry, id string) error {
	decl, fqn, err := resolve(obj, reg)
	if err != nil {
		return err
	}
	field, ok := decl.IdentifierFieldName()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotIdentifiable, fqn)
	}
	obj[field] = id
	return nil
}

// IsRelationship reports whether the object is a reference to another
// instance: the relationship marker must be present and exactly boolean
// true. Absence or any other value means an inlined value.
func IsRelationship(obj Object, reg model.Registry) (bool, error) {
	if _, _, err := resolve(obj, reg); err != nil {
		return false, err
	}
	marker, ok := obj[RelationshipField].(bool)
	return ok && marker, nil
}

// FullyQualifiedIdentifier returns "<type>#<identifier>" for an
// identifiable object.
func FullyQualifiedIdentifier(obj Object, reg model.Registry) (string, error) {
	id, err := Identifier(obj, reg)
	if err != nil {
		return "", err
	}
	return obj[ClassField].(string) + "#" + id, nil
}

// ToURI returns the canonical resource URI
// "resource:<type>#<escaped-identifier>" for an identifiable object.
func ToURI(obj Object, reg model.Registry) (string, error) {
	id, err := Identifier(obj, reg)
	if err != nil {
		return "", err
	}
	return URIScheme + obj[ClassField].(string) + "#" + escapeURI(id), nil
}

// TypeName returns the short type name of the object's declared type.
func TypeName(obj Object, reg model.Registry) (string, error) {
	_, fqn, err := resolve(obj, reg)
	if err != nil {
		return "", err
	}
	return naming.ShortName(fqn), nil
}

// NamespaceOf returns the namespace of the object's declared type, which is
// empty for an unqualified type name.
func NamespaceOf(obj Object, reg model.Registry) (string, error) {
	_, fqn, err := resolve(obj, reg)
	if err != nil {
		return "", err
	}
	return naming.Namespace(fqn)
}

// InstanceOf reports whether the object's declared type is target or a
// descendant of target. The exact name matches first; otherwise the walk
// climbs one direct-supertype link at a time until the chain runs out.
func InstanceOf(obj Object, reg model.Registry, target string) (bool, error) {
	decl, fqn, err := resolve(obj, reg)
	if err != nil {
		return false, err
	}
	if fqn == target {
		return true, nil
	}
	for {
		super, ok := decl.SuperType()
		if !ok {
			return false, nil
		}
		if super.FullyQualifiedName() == target {
			return true, nil
		}
		decl = super
	}
}
