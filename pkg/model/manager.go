package model

import (
	"fmt"
	"sort"

	"github.com/modelgrid/modelgrid/pkg/naming"
)

// Manager is the in-memory type registry. Declarations are added, then Link
// resolves supertype references and validates the hierarchy. After linking
// the manager is read-only; the conformance and runtime layers only query it.
type Manager struct {
	declarations map[string]*ClassDeclaration
	linked       bool
}

// NewManager returns an empty, unlinked manager.
func NewManager() *Manager {
	return &Manager{
		declarations: make(map[string]*ClassDeclaration),
	}
}

// AddClass registers a declaration under its fully-qualified name.
// Returns ErrInvalidDeclaration when the name is empty or primitive,
// ErrDuplicateType when the name is already taken. Adding a declaration
// unlinks the manager until the next Link.
func (m *Manager) AddClass(c *ClassDeclaration) error {
	if c == nil || c.FQN == "" {
		return fmt.Errorf("%w: missing fully-qualified name", ErrInvalidDeclaration)
	}
	if naming.IsPrimitive(c.FQN) {
		return fmt.Errorf("%w: %q is a primitive name", ErrInvalidDeclaration, c.FQN)
	}
	if _, ok := m.declarations[c.FQN]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateType, c.FQN)
	}
	m.declarations[c.FQN] = c
	m.linked = false
	return nil
}

// Link resolves every supertype reference by name and verifies that the
// hierarchy is single-inheritance and acyclic. Hierarchy walks elsewhere
// rely on this check for termination.
func (m *Manager) Link() error {
	for fqn, c := range m.declarations {
		if c.SuperName == "" {
			c.super = nil
			continue
		}
		if naming.IsPrimitive(c.SuperName) {
			return fmt.Errorf("%w: %s extends primitive %q", ErrInvalidDeclaration, fqn, c.SuperName)
		}
		super, ok := m.declarations[c.SuperName]
		if !ok {
			return fmt.Errorf("%w: %s extends %s", ErrUnknownSuperType, fqn, c.SuperName)
		}
		c.super = super
	}

	// A chain longer than the declaration count can only mean a cycle.
	limit := len(m.declarations)
	for fqn, c := range m.declarations {
		steps := 0
		for s := c.super; s != nil; s = s.super {
			steps++
			if steps > limit {
				return fmt.Errorf("%w: starting at %s", ErrSuperTypeCycle, fqn)
			}
		}
	}

	m.linked = true
	return nil
}

// TypeOf returns the declaration for the given fully-qualified name.
func (m *Manager) TypeOf(fqn string) (Declaration, bool) {
	c, ok := m.declarations[fqn]
	if !ok {
		return nil, false
	}
	return c, true
}

// ClassOf returns the concrete declaration for the given name, for callers
// that need field access beyond the Declaration capability.
func (m *Manager) ClassOf(fqn string) (*ClassDeclaration, bool) {
	c, ok := m.declarations[fqn]
	return c, ok
}

// Declarations returns every registered declaration ordered by
// fully-qualified name.
func (m *Manager) Declarations() []*ClassDeclaration {
	out := make([]*ClassDeclaration, 0, len(m.declarations))
	for _, c := range m.declarations {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FQN < out[j].FQN })
	return out
}

// Linked reports whether Link has run since the last AddClass.
func (m *Manager) Linked() bool {
	return m.linked
}
