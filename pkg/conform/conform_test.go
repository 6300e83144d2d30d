package conform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelgrid/modelgrid/pkg/model"
)

// testRegistry links C extends B extends A plus an unrelated Other.
func testRegistry(t *testing.T) *model.Manager {
	t.Helper()
	m := model.NewManager()
	require.NoError(t, m.AddClass(&model.ClassDeclaration{FQN: "org.acme.A"}))
	require.NoError(t, m.AddClass(&model.ClassDeclaration{FQN: "org.acme.B", SuperName: "org.acme.A"}))
	require.NoError(t, m.AddClass(&model.ClassDeclaration{FQN: "org.acme.C", SuperName: "org.acme.B"}))
	require.NoError(t, m.AddClass(&model.ClassDeclaration{FQN: "org.acme.Other"}))
	require.NoError(t, m.AddClass(&model.ClassDeclaration{FQN: "org.acme.Level", Enum: true}))
	require.NoError(t, m.Link())
	return m
}

func TestIsAssignableTo(t *testing.T) {
	reg := testRegistry(t)

	tests := []struct {
		name     string
		typeName string
		propType string
		want     bool
		wantErr  error
	}{
		{name: "identical declared type", typeName: "org.acme.A", propType: "org.acme.A", want: true},
		{name: "identical primitive", typeName: "String", propType: "String", want: true},
		{name: "distinct primitives", typeName: "String", propType: "Integer", want: false},
		{name: "primitive to declared", typeName: "String", propType: "org.acme.A", want: false},
		{name: "declared to primitive", typeName: "org.acme.A", propType: "String", want: false},
		{name: "widen one level", typeName: "org.acme.B", propType: "org.acme.A", want: true},
		{name: "widen two levels", typeName: "org.acme.C", propType: "org.acme.A", want: true},
		{name: "no narrowing", typeName: "org.acme.A", propType: "org.acme.C", want: false},
		{name: "unrelated types", typeName: "org.acme.C", propType: "org.acme.Other", want: false},
		{name: "enum is not primitive-exempt", typeName: "org.acme.Level", propType: "org.acme.A", want: false},
		{name: "unknown source type", typeName: "org.acme.Ghost", propType: "org.acme.A", wantErr: model.ErrUnknownType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prop := &model.Field{FieldName: "p", TypeName: tt.propType}
			got, err := IsAssignableTo(tt.typeName, prop, reg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsAssignableToReflexiveBeforeLookup(t *testing.T) {
	// The reflexive case never touches the registry, so even an undeclared
	// name is assignable to itself.
	reg := model.NewManager()
	require.NoError(t, reg.Link())

	prop := &model.Field{FieldName: "p", TypeName: "org.acme.Ghost"}
	got, err := IsAssignableTo("org.acme.Ghost", prop, reg)
	require.NoError(t, err)
	assert.True(t, got)
}
