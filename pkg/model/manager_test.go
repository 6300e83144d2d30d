package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainManager builds and links C extends B extends A under org.acme.
func chainManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager()
	require.NoError(t, m.AddClass(&ClassDeclaration{FQN: "org.acme.A", IdentifierField: "aId"}))
	require.NoError(t, m.AddClass(&ClassDeclaration{FQN: "org.acme.B", SuperName: "org.acme.A"}))
	require.NoError(t, m.AddClass(&ClassDeclaration{FQN: "org.acme.C", SuperName: "org.acme.B"}))
	require.NoError(t, m.Link())
	return m
}

func TestManagerAddClass(t *testing.T) {
	tests := []struct {
		name    string
		class   *ClassDeclaration
		wantErr error
	}{
		{name: "valid class", class: &ClassDeclaration{FQN: "org.acme.Person"}},
		{name: "nil class", class: nil, wantErr: ErrInvalidDeclaration},
		{name: "empty name", class: &ClassDeclaration{}, wantErr: ErrInvalidDeclaration},
		{name: "primitive name", class: &ClassDeclaration{FQN: "String"}, wantErr: ErrInvalidDeclaration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager()
			err := m.AddClass(tt.class)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			_, ok := m.TypeOf(tt.class.FQN)
			assert.True(t, ok)
		})
	}
}

func TestManagerAddClassDuplicate(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.AddClass(&ClassDeclaration{FQN: "org.acme.Person"}))
	assert.ErrorIs(t, m.AddClass(&ClassDeclaration{FQN: "org.acme.Person"}), ErrDuplicateType)
}

func TestManagerLink(t *testing.T) {
	m := chainManager(t)
	assert.True(t, m.Linked())

	c, ok := m.TypeOf("org.acme.C")
	require.True(t, ok)

	super, ok := c.SuperType()
	require.True(t, ok)
	assert.Equal(t, "org.acme.B", super.FullyQualifiedName())

	ancestors := c.AllSuperTypes()
	require.Len(t, ancestors, 2)
	assert.Equal(t, "org.acme.B", ancestors[0].FullyQualifiedName())
	assert.Equal(t, "org.acme.A", ancestors[1].FullyQualifiedName())

	a, ok := m.TypeOf("org.acme.A")
	require.True(t, ok)
	_, ok = a.SuperType()
	assert.False(t, ok)
	assert.Empty(t, a.AllSuperTypes())
}

func TestManagerLinkErrors(t *testing.T) {
	t.Run("unknown supertype", func(t *testing.T) {
		m := NewManager()
		require.NoError(t, m.AddClass(&ClassDeclaration{FQN: "org.acme.B", SuperName: "org.acme.Missing"}))
		assert.ErrorIs(t, m.Link(), ErrUnknownSuperType)
	})

	t.Run("primitive supertype", func(t *testing.T) {
		m := NewManager()
		require.NoError(t, m.AddClass(&ClassDeclaration{FQN: "org.acme.B", SuperName: "String"}))
		assert.ErrorIs(t, m.Link(), ErrInvalidDeclaration)
	})

	t.Run("cycle", func(t *testing.T) {
		m := NewManager()
		require.NoError(t, m.AddClass(&ClassDeclaration{FQN: "org.acme.A", SuperName: "org.acme.B"}))
		require.NoError(t, m.AddClass(&ClassDeclaration{FQN: "org.acme.B", SuperName: "org.acme.A"}))
		assert.ErrorIs(t, m.Link(), ErrSuperTypeCycle)
	})

	t.Run("self cycle", func(t *testing.T) {
		m := NewManager()
		require.NoError(t, m.AddClass(&ClassDeclaration{FQN: "org.acme.A", SuperName: "org.acme.A"}))
		assert.ErrorIs(t, m.Link(), ErrSuperTypeCycle)
	})
}

func TestClassDeclarationIdentifier(t *testing.T) {
	m := chainManager(t)

	a, _ := m.TypeOf("org.acme.A")
	field, ok := a.IdentifierFieldName()
	assert.True(t, ok)
	assert.Equal(t, "aId", field)

	b, _ := m.TypeOf("org.acme.B")
	_, ok = b.IdentifierFieldName()
	assert.False(t, ok)
}

func TestClassDeclarationFieldLookup(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.AddClass(&ClassDeclaration{
		FQN:    "org.acme.Base",
		Fields: []*Field{{FieldName: "name", TypeName: "String"}},
	}))
	require.NoError(t, m.AddClass(&ClassDeclaration{
		FQN:       "org.acme.Derived",
		SuperName: "org.acme.Base",
		Fields:    []*Field{{FieldName: "age", TypeName: "Integer"}},
	}))
	require.NoError(t, m.Link())

	derived, ok := m.ClassOf("org.acme.Derived")
	require.True(t, ok)

	own, ok := derived.Field("age")
	require.True(t, ok)
	assert.Equal(t, "Integer", own.FullyQualifiedTypeName())

	// Inherited field resolves through the ancestor chain.
	inherited, ok := derived.Field("name")
	require.True(t, ok)
	assert.Equal(t, "String", inherited.FullyQualifiedTypeName())

	_, ok = derived.Field("missing")
	assert.False(t, ok)
}

func TestManagerDeclarationsOrdered(t *testing.T) {
	m := chainManager(t)
	decls := m.Declarations()
	require.Len(t, decls, 3)
	assert.Equal(t, "org.acme.A", decls[0].FQN)
	assert.Equal(t, "org.acme.B", decls[1].FQN)
	assert.Equal(t, "org.acme.C", decls[2].FQN)
}
