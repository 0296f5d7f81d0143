package schema

import (
	"github.com/relgqlx/relgraph/depvalue"
	"github.com/relgqlx/relgraph/responsevalue"
)

// typeIntrospectionObject backs __type's result shape: `name: String`, `interfaces: [__Type]`
// (spec §6). It is never registered in the Schema's name table — nothing selects it by name, only
// through the synthetic __type field — so its "__Type" name never has to pass the dunder-prefix
// check applied to user-declared types.
var typeIntrospectionObject = &ObjectType{
	Name: "__Type",
	Fields: []*FieldDef{
		{
			Name: "name",
			Type: Named(StringType),
			Resolver: &FieldResolver{
				ExternalDependencies: []string{"name"},
				Resolve: Carver(func(external, internal *depvalue.Context) responsevalue.Value {
					v := external.MustGet("name").(depvalue.StringValue)
					return responsevalue.String{Value: v.Value}
				}),
			},
		},
	},
}

func init() {
	typeIntrospectionObject.Fields = append(typeIntrospectionObject.Fields,
		&FieldDef{
			Name: "interfaces",
			Type: ListOf(Named(typeIntrospectionObject)),
			Resolver: &FieldResolver{
				ExternalDependencies: []string{"name"},
				InternalDependencies: []InternalDependency{
					{Name: "interfaces", Type: depvalue.ListOfStrings, Source: IntrospectionInterfacesSource{}},
				},
				Resolve: PopulatorList(func(external, internal *depvalue.Context) []*depvalue.Context {
					lv := internal.MustGet("interfaces").(depvalue.ListValue)
					ctxs := make([]*depvalue.Context, len(lv.Values))
					for i, n := range lv.Values {
						c := depvalue.NewContext()
						c.Set("name", depvalue.StringValue{Value: n})
						ctxs[i] = c
					}
					return ctxs
				}),
			},
		},
		&FieldDef{
			Name: "possibleTypes",
			Type: ListOf(Named(typeIntrospectionObject)),
			Resolver: &FieldResolver{
				ExternalDependencies: []string{"name"},
				InternalDependencies: []InternalDependency{
					{Name: "possibleTypes", Type: depvalue.ListOfStrings, Source: IntrospectionPossibleTypesSource{}},
				},
				Resolve: PopulatorList(func(external, internal *depvalue.Context) []*depvalue.Context {
					lv := internal.MustGet("possibleTypes").(depvalue.ListValue)
					ctxs := make([]*depvalue.Context, len(lv.Values))
					for i, n := range lv.Values {
						c := depvalue.NewContext()
						c.Set("name", depvalue.StringValue{Value: n})
						ctxs[i] = c
					}
					return ctxs
				}),
			},
		},
	)
}

// TypenameField is the synthetic __typename field available on any composite selection (spec
// §3/§6). The executor resolves it directly from the concrete type it already knows at that
// position, without invoking a Resolver.
var TypenameField = &FieldDef{
	Name: "__typename",
	Type: NonNull(Named(StringType)),
}

// typeField builds the synthetic __type(name: String): __Type field available on the query root,
// closing over s so it can look up any named type by the supplied name.
func typeField(s *Schema) *FieldDef {
	return &FieldDef{
		Name:       "__type",
		Type:       Named(typeIntrospectionObject),
		Parameters: []Param{{Name: "name", Type: Named(StringType)}},
		Resolver: &FieldResolver{
			InternalDependencies: []InternalDependency{
				{Name: "name", Type: depvalue.OptionalString, Source: ArgumentSource{Name: "name"}},
			},
			Resolve: OptionalPopulator(func(external, internal *depvalue.Context) (*depvalue.Context, bool) {
				nv, ok := internal.Get("name")
				if !ok {
					return nil, false
				}
				sv, ok := nv.(depvalue.OptionalStringValue)
				if !ok || sv.Value == nil {
					return nil, false
				}
				nt := s.NamedType(*sv.Value)
				if nt == nil {
					return nil, false
				}
				ctx := depvalue.NewContext()
				ctx.Set("name", depvalue.StringValue{Value: nt.TypeName()})
				return ctx, true
			}),
		},
	}
}

// TypeField returns the query root's synthetic __type field, built once at schema construction.
func (s *Schema) TypeField() *FieldDef {
	return s.typeField
}
