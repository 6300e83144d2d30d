// Package naming implements composition and decomposition of fully-qualified
// type names for the modelgrid type system. A fully-qualified name has the
// form "namespace.TypeName", where the namespace may pin a version as
// "name@semver". The package is a pure string layer with no registry access.
package naming

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrInvalidArgument is returned for empty or malformed name input.
var ErrInvalidArgument = errors.New("invalid name argument")

// Primitive type names. The set is closed; it is a constant of the type
// system, not model data.
const (
	PrimitiveBoolean  = "Boolean"
	PrimitiveString   = "String"
	PrimitiveDateTime = "DateTime"
	PrimitiveDouble   = "Double"
	PrimitiveInteger  = "Integer"
	PrimitiveLong     = "Long"
)

// primitiveTypes is the membership set for IsPrimitive.
var primitiveTypes = map[string]bool{
	PrimitiveBoolean:  true,
	PrimitiveString:   true,
	PrimitiveDateTime: true,
	PrimitiveDouble:   true,
	PrimitiveInteger:  true,
	PrimitiveLong:     true,
}

// IsPrimitive reports whether name is one of the primitive type names.
func IsPrimitive(name string) bool {
	return primitiveTypes[name]
}

// ShortName returns the type name after the last "." in fqn. A name with no
// "." is returned unchanged.
func ShortName(fqn string) string {
	if i := strings.LastIndex(fqn, "."); i >= 0 {
		return fqn[i+1:]
	}
	return fqn
}

// Namespace returns the namespace before the last "." in fqn, or the empty
// string when fqn has no ".". Returns ErrInvalidArgument when fqn is empty.
func Namespace(fqn string) (string, error) {
	if fqn == "" {
		return "", fmt.Errorf("%w: fully-qualified name must not be empty", ErrInvalidArgument)
	}
	if i := strings.LastIndex(fqn, "."); i >= 0 {
		return fqn[:i], nil
	}
	return "", nil
}

// Qualify joins a namespace and a type name into a fully-qualified name.
// When namespace is empty the type name is returned unchanged, so
// Qualify(Namespace(fqn), ShortName(fqn)) reproduces fqn.
func Qualify(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + "." + name
}

// ParsedNamespace is the decomposition of a possibly version-pinned
// namespace. Version and SemVer are populated only when the namespace
// carried an "@" separator.
type ParsedNamespace struct {
	Name    string          // Namespace without the version suffix.
	Escaped string          // Original namespace with "@" replaced by "_".
	Version string          // Version text after "@", empty when unversioned.
	SemVer  *semver.Version // Parsed version, nil when unversioned.
}

// ParseNamespace splits a namespace of the form "name" or "name@semver".
// Returns ErrInvalidArgument when ns is empty, contains more than one "@",
// or carries a version suffix that is not a valid semantic version.
func ParseNamespace(ns string) (ParsedNamespace, error) {
	if ns == "" {
		return ParsedNamespace{}, fmt.Errorf("%w: namespace must not be empty", ErrInvalidArgument)
	}

	parts := strings.Split(ns, "@")
	if len(parts) > 2 {
		return ParsedNamespace{}, fmt.Errorf("%w: namespace %q has more than one version separator", ErrInvalidArgument, ns)
	}

	parsed := ParsedNamespace{
		Name:    parts[0],
		Escaped: strings.ReplaceAll(ns, "@", "_"),
	}
	if len(parts) == 1 {
		return parsed, nil
	}

	v, err := semver.StrictNewVersion(parts[1])
	if err != nil {
		return ParsedNamespace{}, fmt.Errorf("%w: namespace %q has invalid version %q", ErrInvalidArgument, ns, parts[1])
	}
	parsed.Version = parts[1]
	parsed.SemVer = v
	return parsed, nil
}
