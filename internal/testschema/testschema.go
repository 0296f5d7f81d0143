// Package testschema builds one small, reusable schema + fixture database shared by every
// package's tests that need a real *schema.Schema and dbiface.Database rather than hand-rolling
// one per _test.go file. It mirrors cmd/relgraphq's demo schema (Query.author, Author{id,name,
// bio,posts}, Post{id,title}), plus a second, polymorphic corner of the schema — the HasName
// interface and the Actor/Designer/ActorOrDesigner types — built expressly to exercise the union
// and interface resolver variants and the spec's literal end-to-end scenarios, which the
// Author/Post half of the schema has no shape for.
package testschema

import (
	"github.com/relgqlx/relgraph/dbfixture"
	"github.com/relgqlx/relgraph/depvalue"
	"github.com/relgqlx/relgraph/responsevalue"
	"github.com/relgqlx/relgraph/schema"
)

// New returns a fresh Schema and an empty fixture Database wired against it.
func New() (*schema.Schema, *dbfixture.DB) {
	s, err := Build()
	if err != nil {
		panic(err)
	}
	return s, dbfixture.New()
}

// Build constructs the schema on its own, for tests that want to assert on construction errors.
func Build() (*schema.Schema, error) {
	postType := &schema.ObjectType{Name: "Post"}
	postType.Fields = []*schema.FieldDef{
		idField(),
		{
			Name: "title",
			Type: schema.NonNull(schema.Named(schema.StringType)),
			Resolver: &schema.FieldResolver{
				InternalDependencies: []schema.InternalDependency{
					{Name: "title", Type: depvalue.String, Source: schema.ColumnGet{Table: "posts", Column: "title", IdColumn: "id"}},
				},
				Resolve: schema.Carver(func(external, internal *depvalue.Context) responsevalue.Value {
					return responsevalue.String{Value: internal.MustGet("title").(depvalue.StringValue).Value}
				}),
			},
		},
	}

	authorType := &schema.ObjectType{Name: "Author"}
	authorType.Fields = []*schema.FieldDef{
		idField(),
		{
			Name: "name",
			Type: schema.NonNull(schema.Named(schema.StringType)),
			Resolver: &schema.FieldResolver{
				InternalDependencies: []schema.InternalDependency{
					{Name: "name", Type: depvalue.String, Source: schema.ColumnGet{Table: "authors", Column: "name", IdColumn: "id"}},
				},
				Resolve: schema.Carver(func(external, internal *depvalue.Context) responsevalue.Value {
					return responsevalue.String{Value: internal.MustGet("name").(depvalue.StringValue).Value}
				}),
			},
		},
		{
			// bio shares Author's (table, idColumn, id) with name: querying both in the same
			// selection exercises fetch.go's columnGetGroup, which coalesces them into a single
			// GetColumns call instead of two GetColumn round trips (spec §4.5 fetch coalescing).
			Name: "bio",
			Type: schema.NonNull(schema.Named(schema.StringType)),
			Resolver: &schema.FieldResolver{
				InternalDependencies: []schema.InternalDependency{
					{Name: "bio", Type: depvalue.String, Source: schema.ColumnGet{Table: "authors", Column: "bio", IdColumn: "id"}},
				},
				Resolve: schema.Carver(func(external, internal *depvalue.Context) responsevalue.Value {
					return responsevalue.String{Value: internal.MustGet("bio").(depvalue.StringValue).Value}
				}),
			},
		},
		{
			Name: "posts",
			Type: schema.NonNull(schema.ListOf(schema.NonNull(schema.Named(postType)))),
			Resolver: &schema.FieldResolver{
				InternalDependencies: []schema.InternalDependency{
					{
						Name:   "postIds",
						Type:   depvalue.ListOfIds,
						Source: schema.ColumnGetList{Table: "posts", Column: "id", Wheres: []schema.Where{{Column: "author_id"}}},
					},
				},
				Resolve: schema.PopulatorList(func(external, internal *depvalue.Context) []*depvalue.Context {
					ids := internal.MustGet("postIds").(depvalue.ListValue).Ids
					ctxs := make([]*depvalue.Context, len(ids))
					for i, id := range ids {
						c := depvalue.NewContext()
						c.Set("id", depvalue.IdValue{Value: id})
						ctxs[i] = c
					}
					return ctxs
				}),
			},
		},
	}

	hasNameType, actorType, designerType, actorOrDesignerType := polymorphicTypes()

	queryType := &schema.ObjectType{Name: "Query"}
	queryType.Fields = []*schema.FieldDef{
		{
			Name:       "author",
			Type:       schema.Named(authorType),
			Parameters: []schema.Param{{Name: "id", Type: schema.NonNull(schema.Named(schema.IdType))}},
			Resolver: &schema.FieldResolver{
				InternalDependencies: []schema.InternalDependency{
					{Name: "id", Type: depvalue.Id, Source: schema.ArgumentSource{Name: "id"}},
				},
				Resolve: schema.Populator(func(external, internal *depvalue.Context) *depvalue.Context {
					c := depvalue.NewContext()
					c.Set("id", internal.MustGet("id"))
					return c
				}),
			},
		},
		{
			// actor(id: ID!) requires id; querying it without an argument is spec §8 scenario 5
			// ("Missing required argument `id`").
			Name:       "actor",
			Type:       schema.Named(actorType),
			Parameters: []schema.Param{{Name: "id", Type: schema.NonNull(schema.Named(schema.IdType))}},
			Resolver: &schema.FieldResolver{
				InternalDependencies: []schema.InternalDependency{
					{Name: "id", Type: depvalue.Id, Source: schema.ArgumentSource{Name: "id"}},
				},
				Resolve: schema.Populator(func(external, internal *depvalue.Context) *depvalue.Context {
					c := depvalue.NewContext()
					c.Set("id", internal.MustGet("id"))
					return c
				}),
			},
		},
		{
			// actorKatie is a literal-id populator (spec §8 scenario 1): it always resolves to
			// the actors row with id 1, with no argument or column lookup involved in picking it.
			Name: "actorKatie",
			Type: schema.Named(actorType),
			Resolver: &schema.FieldResolver{
				InternalDependencies: []schema.InternalDependency{
					{Name: "id", Type: depvalue.Id, Source: schema.LiteralSource{Value: depvalue.IdValue{Value: depvalue.IntId(1)}}},
				},
				Resolve: schema.Populator(func(external, internal *depvalue.Context) *depvalue.Context {
					c := depvalue.NewContext()
					c.Set("id", internal.MustGet("id"))
					return c
				}),
			},
		},
		{
			// actors lists every row of the actors table (spec §8 scenario 2).
			Name: "actors",
			Type: schema.NonNull(schema.ListOf(schema.NonNull(schema.Named(actorType)))),
			Resolver: &schema.FieldResolver{
				InternalDependencies: []schema.InternalDependency{
					{Name: "actorIds", Type: depvalue.ListOfIds, Source: schema.ColumnGetList{Table: "actors", Column: "id"}},
				},
				Resolve: schema.PopulatorList(func(external, internal *depvalue.Context) []*depvalue.Context {
					ids := internal.MustGet("actorIds").(depvalue.ListValue).Ids
					ctxs := make([]*depvalue.Context, len(ids))
					for i, id := range ids {
						c := depvalue.NewContext()
						c.Set("id", depvalue.IdValue{Value: id})
						ctxs[i] = c
					}
					return ctxs
				}),
			},
		},
		{
			// certainActorOrDesigner always resolves to the designers row for Proenza Schouler
			// (spec §8 scenario 3): the field exists specifically to drive
			// UnionOrInterfaceTypePopulator end to end, picking "Designer" as the concrete type a
			// selection's inline fragments are planned and executed against.
			Name: "certainActorOrDesigner",
			Type: schema.Named(actorOrDesignerType),
			Resolver: &schema.FieldResolver{
				Resolve: schema.UnionOrInterfaceTypePopulator(func(external, internal *depvalue.Context) (*depvalue.Context, string) {
					c := depvalue.NewContext()
					c.Set("id", depvalue.IdValue{Value: depvalue.IntId(1)})
					return c, designerType.Name
				}),
			},
		},
	}

	return schema.New(&schema.Definition{
		Query:           queryType,
		AdditionalTypes: []schema.NamedType{hasNameType},
	})
}

// polymorphicTypes builds the HasName interface and its two implementations, Actor and Designer,
// plus the ActorOrDesigner union over them — the schema's one polymorphic corner, grounded on
// spec §8 scenarios 3 and 6 (the `certainActorOrDesigner` union spread and the `__type(name:
// "Actor")` introspection query, which expects Actor to report implementing HasName).
func polymorphicTypes() (*schema.InterfaceType, *schema.ObjectType, *schema.ObjectType, *schema.UnionType) {
	actorType := &schema.ObjectType{
		Name:                  "Actor",
		ImplementedInterfaces: []string{"HasName"},
	}
	actorType.Fields = []*schema.FieldDef{
		idField(),
		tableBoundNameField("actors"),
		{
			Name: "expression",
			Type: schema.NonNull(schema.Named(schema.StringType)),
			Resolver: &schema.FieldResolver{
				InternalDependencies: []schema.InternalDependency{
					{Name: "expression", Type: depvalue.String, Source: schema.ColumnGet{Table: "actors", Column: "expression", IdColumn: "id"}},
				},
				Resolve: schema.Carver(func(external, internal *depvalue.Context) responsevalue.Value {
					return responsevalue.String{Value: internal.MustGet("expression").(depvalue.StringValue).Value}
				}),
			},
		},
	}

	designerType := &schema.ObjectType{
		Name:                  "Designer",
		ImplementedInterfaces: []string{"HasName"},
	}
	designerType.Fields = []*schema.FieldDef{
		idField(),
		tableBoundNameField("designers"),
	}

	hasNameType := &schema.InterfaceType{
		Name: "HasName",
		// The interface's own FieldDef declares the signature only (no Resolver): nothing in
		// this schema selects a field directly against the bare interface type, since every
		// query field that can yield a HasName implementer is typed as Actor, Designer, or the
		// ActorOrDesigner union, never as HasName itself. Each implementer carries its own
		// table-bound "name" FieldDef, which is what actually resolves.
		Fields:          []*schema.FieldDef{{Name: "name", Type: schema.NonNull(schema.Named(schema.StringType))}},
		Implementations: []*schema.ObjectType{actorType, designerType},
	}

	actorOrDesignerType := &schema.UnionType{
		Name:          "ActorOrDesigner",
		PossibleTypes: []*schema.ObjectType{actorType, designerType},
	}

	return hasNameType, actorType, designerType, actorOrDesignerType
}

func tableBoundNameField(table string) *schema.FieldDef {
	return &schema.FieldDef{
		Name: "name",
		Type: schema.NonNull(schema.Named(schema.StringType)),
		Resolver: &schema.FieldResolver{
			InternalDependencies: []schema.InternalDependency{
				{Name: "name", Type: depvalue.String, Source: schema.ColumnGet{Table: table, Column: "name", IdColumn: "id"}},
			},
			Resolve: schema.Carver(func(external, internal *depvalue.Context) responsevalue.Value {
				return responsevalue.String{Value: internal.MustGet("name").(depvalue.StringValue).Value}
			}),
		},
	}
}

func idField() *schema.FieldDef {
	return &schema.FieldDef{
		Name: "id",
		Type: schema.NonNull(schema.Named(schema.IdType)),
		Resolver: &schema.FieldResolver{
			ExternalDependencies: []string{"id"},
			Resolve: schema.Carver(func(external, internal *depvalue.Context) responsevalue.Value {
				id := external.MustGet("id").(depvalue.IdValue).Value
				return responsevalue.Int{Value: id.AsInt()}
			}),
		},
	}
}

// SeedFixture populates db with two authors, three posts, two actors, and one designer, matching
// cmd/relgraphq's demo data plus spec §8's literal scenario fixtures (Katie Cassidy, Jessica
// Szohr, Proenza Schouler).
func SeedFixture(db *dbfixture.DB) {
	db.AddRow("authors", depvalue.IntId(1), map[string]depvalue.Value{
		"name": depvalue.StringValue{Value: "Ada Lovelace"},
		"bio":  depvalue.StringValue{Value: "Mathematician and writer."},
	})
	db.AddRow("authors", depvalue.IntId(2), map[string]depvalue.Value{
		"name": depvalue.StringValue{Value: "Grace Hopper"},
		"bio":  depvalue.StringValue{Value: "Computer scientist and Navy rear admiral."},
	})
	db.AddRow("posts", depvalue.IntId(10), map[string]depvalue.Value{
		"author_id": depvalue.IdValue{Value: depvalue.IntId(1)},
		"title":     depvalue.StringValue{Value: "Notes on the Analytical Engine"},
	})
	db.AddRow("posts", depvalue.IntId(11), map[string]depvalue.Value{
		"author_id": depvalue.IdValue{Value: depvalue.IntId(1)},
		"title":     depvalue.StringValue{Value: "On the Diagram"},
	})
	db.AddRow("posts", depvalue.IntId(12), map[string]depvalue.Value{
		"author_id": depvalue.IdValue{Value: depvalue.IntId(2)},
		"title":     depvalue.StringValue{Value: "The Future of Automatic Computing"},
	})
	db.AddRow("actors", depvalue.IntId(1), map[string]depvalue.Value{
		"name":       depvalue.StringValue{Value: "Katie Cassidy"},
		"expression": depvalue.StringValue{Value: "determined"},
	})
	db.AddRow("actors", depvalue.IntId(2), map[string]depvalue.Value{
		"name":       depvalue.StringValue{Value: "Jessica Szohr"},
		"expression": depvalue.StringValue{Value: "wry"},
	})
	db.AddRow("designers", depvalue.IntId(1), map[string]depvalue.Value{
		"name": depvalue.StringValue{Value: "Proenza Schouler"},
	})
}
