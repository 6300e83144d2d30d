package runtime

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelgrid/modelgrid/pkg/model"
)

func factoryRegistry(t *testing.T) *model.Manager {
	t.Helper()
	m := model.NewManager()
	require.NoError(t, m.AddClass(&model.ClassDeclaration{
		FQN:             "org.acme.Person",
		IdentifierField: "personId",
	}))
	require.NoError(t, m.AddClass(&model.ClassDeclaration{FQN: "org.acme.Note"}))
	require.NoError(t, m.AddClass(&model.ClassDeclaration{FQN: "org.acme.Level", Enum: true}))
	require.NoError(t, m.Link())
	return m
}

func TestNewResource(t *testing.T) {
	reg := factoryRegistry(t)

	obj, err := NewResource(reg, "org.acme.Person")
	require.NoError(t, err)
	assert.Equal(t, "org.acme.Person", obj[ClassField])

	// Identifiable types get a generated UUID identifier.
	id, err := Identifier(obj, reg)
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	// Two resources never share an identifier.
	other, err := NewResource(reg, "org.acme.Person")
	require.NoError(t, err)
	assert.NotEqual(t, obj["personId"], other["personId"])
}

func TestNewResourceNotIdentifiable(t *testing.T) {
	reg := factoryRegistry(t)

	obj, err := NewResource(reg, "org.acme.Note")
	require.NoError(t, err)
	assert.Equal(t, Object{ClassField: "org.acme.Note"}, obj)
}

func TestNewResourceErrors(t *testing.T) {
	reg := factoryRegistry(t)

	_, err := NewResource(reg, "org.acme.Ghost")
	assert.ErrorIs(t, err, model.ErrUnknownType)

	_, err = NewResource(reg, "org.acme.Level")
	assert.ErrorIs(t, err, ErrNotInstantiable)
}

func TestNewRelationship(t *testing.T) {
	reg := factoryRegistry(t)

	rel, err := NewRelationship(reg, "org.acme.Person", "p1")
	require.NoError(t, err)

	isRel, err := IsRelationship(rel, reg)
	require.NoError(t, err)
	assert.True(t, isRel)

	uri, err := ToURI(rel, reg)
	require.NoError(t, err)
	assert.Equal(t, "resource:org.acme.Person#p1", uri)

	_, err = NewRelationship(reg, "org.acme.Note", "n1")
	assert.ErrorIs(t, err, ErrNotIdentifiable)

	_, err = NewRelationship(reg, "org.acme.Ghost", "g1")
	assert.ErrorIs(t, err, model.ErrUnknownType)
}
