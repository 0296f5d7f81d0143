package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relgqlx/relgraph/depvalue"
	"github.com/relgqlx/relgraph/schema"
)

func introspectionSchema(t *testing.T) *schema.Schema {
	t.Helper()
	_, _, cat, _, _ := buildingBlocksSchema(t)
	s, err := schema.New(&schema.Definition{Query: (func() *schema.ObjectType {
		q := &schema.ObjectType{Name: "Query"}
		q.Fields = []*schema.FieldDef{{Name: "cat", Type: schema.Named(cat)}}
		return q
	})()})
	require.NoError(t, err)
	return s
}

func TestFieldDefFor_TypeFieldResolvesKnownTypeName(t *testing.T) {
	s := introspectionSchema(t)
	typeField := s.TypeField()
	populate := typeField.Resolver.Resolve.(schema.OptionalPopulator)

	internal := depvalue.NewContext()
	internal.Set("name", depvalue.OptionalStringValue{Value: strPtr("Cat")})

	ctx, ok := populate(nil, internal)
	require.True(t, ok)
	v, found := ctx.Get("name")
	require.True(t, found)
	assert.Equal(t, depvalue.StringValue{Value: "Cat"}, v)
}

func TestFieldDefFor_TypeFieldReportsNotOkForUnknownName(t *testing.T) {
	s := introspectionSchema(t)
	typeField := s.TypeField()
	populate := typeField.Resolver.Resolve.(schema.OptionalPopulator)

	internal := depvalue.NewContext()
	internal.Set("name", depvalue.OptionalStringValue{Value: strPtr("Nonexistent")})

	_, ok := populate(nil, internal)
	assert.False(t, ok)
}

func TestFieldDefFor_TypeFieldReportsNotOkWhenNameArgumentAbsent(t *testing.T) {
	s := introspectionSchema(t)
	typeField := s.TypeField()
	populate := typeField.Resolver.Resolve.(schema.OptionalPopulator)

	_, ok := populate(nil, depvalue.NewContext())
	assert.False(t, ok)
}

func TestTypenameField_HasNoResolver(t *testing.T) {
	// the executor resolves __typename directly from the concrete type it already knows, without
	// invoking a Resolver (spec §6).
	assert.Nil(t, schema.TypenameField.Resolver)
	assert.Equal(t, "__typename", schema.TypenameField.Name)
}

func strPtr(s string) *string { return &s }
