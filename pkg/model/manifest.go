// JSON manifest format for model exchange. A manifest declares one
// namespace and its classes; it is the CLI input format and the record
// format the SQLite store persists.
package model

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/modelgrid/modelgrid/pkg/naming"
)

// Document is a model manifest: one namespace and its declarations.
type Document struct {
	Namespace    string           `json:"namespace"`
	Declarations []DeclarationDoc `json:"declarations"`
}

// DeclarationDoc is one class or enumeration in a manifest. Super and
// property types may be short names; Build qualifies them against the
// manifest namespace.
type DeclarationDoc struct {
	Name       string        `json:"name"`
	Super      string        `json:"super,omitempty"`
	Identifier string        `json:"identifier,omitempty"`
	Enum       bool          `json:"enum,omitempty"`
	Properties []PropertyDoc `json:"properties,omitempty"`
}

// PropertyDoc is one field declaration in a manifest.
type PropertyDoc struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ReadDocument decodes a manifest from r.
func ReadDocument(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode model manifest: %w", err)
	}
	return &doc, nil
}

// ReadDocumentFile decodes a manifest from the file at path.
func ReadDocumentFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model manifest: %w", err)
	}
	defer f.Close()
	return ReadDocument(f)
}

// Marshal encodes the manifest as indented JSON.
func (d *Document) Marshal() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Build validates the manifest namespace, registers every declaration in a
// fresh manager, and links the hierarchy. Short supertype and property type
// names are qualified against the manifest namespace; primitive property
// types stay unqualified.
func (d *Document) Build() (*Manager, error) {
	if _, err := naming.ParseNamespace(d.Namespace); err != nil {
		return nil, err
	}

	m := NewManager()
	for _, decl := range d.Declarations {
		if decl.Name == "" {
			return nil, fmt.Errorf("%w: declaration without a name in %s", ErrInvalidDeclaration, d.Namespace)
		}
		c := &ClassDeclaration{
			FQN:             naming.Qualify(d.Namespace, decl.Name),
			SuperName:       d.qualify(decl.Super),
			IdentifierField: decl.Identifier,
			Enum:            decl.Enum,
		}
		for _, p := range decl.Properties {
			if p.Name == "" || p.Type == "" {
				return nil, fmt.Errorf("%w: %s.%s has a property without name or type", ErrInvalidDeclaration, d.Namespace, decl.Name)
			}
			c.Fields = append(c.Fields, &Field{
				FieldName: p.Name,
				TypeName:  d.qualify(p.Type),
			})
		}
		if err := m.AddClass(c); err != nil {
			return nil, err
		}
	}
	if err := m.Link(); err != nil {
		return nil, err
	}
	return m, nil
}

// qualify expands a short type reference against the manifest namespace.
// Primitive names and already-qualified names pass through unchanged.
func (d *Document) qualify(name string) string {
	if name == "" || naming.IsPrimitive(name) || strings.Contains(name, ".") {
		return name
	}
	return naming.Qualify(d.Namespace, name)
}
