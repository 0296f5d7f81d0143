package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relgqlx/relgraph/schema"
)

func TestNew_RequiresQueryRoot(t *testing.T) {
	_, err := schema.New(&schema.Definition{})
	assert.Error(t, err)
}

func TestNew_RejectsIllegalTypeName(t *testing.T) {
	bad := &schema.ObjectType{Name: "2Bad"}
	_, err := schema.New(&schema.Definition{Query: bad})
	assert.Error(t, err)
}

func TestNew_RejectsDunderPrefixedTypeName(t *testing.T) {
	bad := &schema.ObjectType{Name: "__Bad"}
	_, err := schema.New(&schema.Definition{Query: bad})
	assert.Error(t, err)
}

func TestNew_RejectsNameCollisionWithDifferentType(t *testing.T) {
	query := &schema.ObjectType{Name: "Query"}
	other := &schema.ObjectType{Name: "Query"}
	query.Fields = []*schema.FieldDef{
		{Name: "other", Type: schema.Named(other)},
	}
	_, err := schema.New(&schema.Definition{Query: query, AdditionalTypes: []schema.NamedType{other}})
	assert.Error(t, err)
}

func TestNew_IdempotentOnIdenticalPointerReregistration(t *testing.T) {
	shared := &schema.ScalarType{Name: "Money"}
	query := &schema.ObjectType{Name: "Query"}
	query.Fields = []*schema.FieldDef{
		{Name: "a", Type: schema.Named(shared)},
		{Name: "b", Type: schema.Named(shared)},
	}
	s, err := schema.New(&schema.Definition{Query: query})
	require.NoError(t, err)
	assert.Equal(t, shared, s.NamedType("Money"))
}

func TestSchema_RootTypeAccessors(t *testing.T) {
	query := &schema.ObjectType{Name: "Query"}
	mutation := &schema.ObjectType{Name: "Mutation"}
	subscription := &schema.ObjectType{Name: "Subscription"}

	s, err := schema.New(&schema.Definition{Query: query, Mutation: mutation, Subscription: subscription})
	require.NoError(t, err)

	assert.Equal(t, query, s.QueryType())
	assert.Equal(t, mutation, s.MutationType())
	assert.Equal(t, subscription, s.SubscriptionType())
	assert.Nil(t, s.NamedType("Nonexistent"))
}

func buildingBlocksSchema(t *testing.T) (*schema.Schema, *schema.InterfaceType, *schema.ObjectType, *schema.ObjectType, *schema.UnionType) {
	t.Helper()

	cat := &schema.ObjectType{Name: "Cat", ImplementedInterfaces: []string{"Pet"}}
	cat.Fields = []*schema.FieldDef{{Name: "name", Type: schema.NonNull(schema.Named(schema.StringType))}}

	dog := &schema.ObjectType{Name: "Dog", ImplementedInterfaces: []string{"Pet"}}
	dog.Fields = []*schema.FieldDef{{Name: "name", Type: schema.NonNull(schema.Named(schema.StringType))}}

	pet := &schema.InterfaceType{
		Name:            "Pet",
		Fields:          []*schema.FieldDef{{Name: "name", Type: schema.NonNull(schema.Named(schema.StringType))}},
		Implementations: []*schema.ObjectType{cat, dog},
	}

	petOrToy := &schema.UnionType{Name: "PetOrToy", PossibleTypes: []*schema.ObjectType{cat, dog}}

	query := &schema.ObjectType{Name: "Query"}
	query.Fields = []*schema.FieldDef{
		{Name: "pet", Type: schema.Named(pet)},
		{Name: "petOrToy", Type: schema.Named(petOrToy)},
	}

	s, err := schema.New(&schema.Definition{Query: query, AdditionalTypes: []schema.NamedType{pet, petOrToy}})
	require.NoError(t, err)
	return s, pet, cat, dog, petOrToy
}

func TestNew_InterfaceImplementationsRegisteredTransitively(t *testing.T) {
	s, _, cat, dog, _ := buildingBlocksSchema(t)
	assert.Equal(t, cat, s.NamedType("Cat"))
	assert.Equal(t, dog, s.NamedType("Dog"))
}

func TestSchema_InterfaceImplementations(t *testing.T) {
	s, _, cat, dog, _ := buildingBlocksSchema(t)
	impls := s.InterfaceImplementations("Pet")
	assert.ElementsMatch(t, []*schema.ObjectType{cat, dog}, impls)
	assert.Empty(t, s.InterfaceImplementations("Nonexistent"))
}

func TestFieldDefFor_TypenameAvailableOnAnyComposite(t *testing.T) {
	s, pet, cat, _, petOrToy := buildingBlocksSchema(t)
	assert.Equal(t, schema.TypenameField, schema.FieldDefFor(s, cat, "__typename"))
	assert.Equal(t, schema.TypenameField, schema.FieldDefFor(s, pet, "__typename"))
	assert.Equal(t, schema.TypenameField, schema.FieldDefFor(s, petOrToy, "__typename"))
}

func TestFieldDefFor_TypenameUnavailableOnScalar(t *testing.T) {
	s, _, _, _, _ := buildingBlocksSchema(t)
	assert.Nil(t, schema.FieldDefFor(s, schema.StringType, "__typename"))
}

func TestFieldDefFor_TypeFieldOnlyOnQueryRoot(t *testing.T) {
	s, _, cat, _, _ := buildingBlocksSchema(t)
	assert.NotNil(t, schema.FieldDefFor(s, s.QueryType(), "__type"))
	assert.Nil(t, schema.FieldDefFor(s, cat, "__type"))
}

func TestFieldDefFor_UnionResolvesNoDirectFieldOtherThanTypename(t *testing.T) {
	s, _, _, _, petOrToy := buildingBlocksSchema(t)
	assert.Nil(t, schema.FieldDefFor(s, petOrToy, "name"))
}

func TestFieldDefFor_ObjectAndInterfaceResolveOwnFields(t *testing.T) {
	s, pet, cat, _, _ := buildingBlocksSchema(t)
	assert.Equal(t, cat.Field("name"), schema.FieldDefFor(s, cat, "name"))
	assert.Equal(t, pet.Field("name"), schema.FieldDefFor(s, pet, "name"))
}

func TestFieldDefFor_NilEnclosingReturnsNil(t *testing.T) {
	s, _, _, _, _ := buildingBlocksSchema(t)
	assert.Nil(t, schema.FieldDefFor(s, nil, "name"))
}

func TestPossibleTypes_ObjectInterfaceUnion(t *testing.T) {
	s, pet, cat, dog, petOrToy := buildingBlocksSchema(t)

	assert.Equal(t, map[string]*schema.ObjectType{"Cat": cat}, schema.PossibleTypes(s, cat))
	assert.Equal(t, map[string]*schema.ObjectType{"Cat": cat, "Dog": dog}, schema.PossibleTypes(s, pet))
	assert.Equal(t, map[string]*schema.ObjectType{"Cat": cat, "Dog": dog}, schema.PossibleTypes(s, petOrToy))
}

func TestIsComposite(t *testing.T) {
	_, pet, cat, _, petOrToy := buildingBlocksSchema(t)
	assert.True(t, schema.IsComposite(cat))
	assert.True(t, schema.IsComposite(pet))
	assert.True(t, schema.IsComposite(petOrToy))
	assert.False(t, schema.IsComposite(schema.StringType))
}

func TestInterfaceNamesOf(t *testing.T) {
	s, _, _, _, _ := buildingBlocksSchema(t)
	assert.Equal(t, []string{"Pet"}, schema.InterfaceNamesOf(s, "Cat"))
	assert.Nil(t, schema.InterfaceNamesOf(s, "Pet"))
	assert.Nil(t, schema.InterfaceNamesOf(s, "Nonexistent"))
}

func TestPossibleTypeNamesOf(t *testing.T) {
	s, _, _, _, _ := buildingBlocksSchema(t)
	assert.Equal(t, []string{"Cat"}, schema.PossibleTypeNamesOf(s, "Cat"))
	assert.Equal(t, []string{"Cat", "Dog"}, schema.PossibleTypeNamesOf(s, "Pet"))
	assert.Equal(t, []string{"Cat", "Dog"}, schema.PossibleTypeNamesOf(s, "PetOrToy"))
	assert.Nil(t, schema.PossibleTypeNamesOf(s, "Nonexistent"))
}
