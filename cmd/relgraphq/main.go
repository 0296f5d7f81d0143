// Command relgraphq is a development CLI: it lexes, parses, validates, and runs one query against
// an in-memory fixture database and schema, then prints the resulting Response as JSON. It exists
// so the engine can be exercised end to end without standing up a real dbiface.Database adapter,
// mirroring the teacher's cmd/gql-client-gen as a single-file pflag-driven tool wired to one
// package's public API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/relgqlx/relgraph"
	"github.com/relgqlx/relgraph/dbfixture"
	"github.com/relgqlx/relgraph/depvalue"
	"github.com/relgqlx/relgraph/querycache"
	"github.com/relgqlx/relgraph/responsevalue"
	"github.com/relgqlx/relgraph/schema"
)

func main() {
	flags := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	query := flags.StringP("query", "q", "query { author(id: 1) { id name posts { id title } } }", "the query document to run")
	cacheSize := flags.Int("cache-size", querycache.DefaultCapacity, "validated-document cache capacity; 0 disables the cache")
	sync := flags.Bool("sync", false, "execute against the fixture database's synchronous fast path instead of the wave executor")
	flags.Parse(os.Args[1:])

	s, err := buildSchema()
	if err != nil {
		fmt.Fprintln(os.Stderr, "relgraphq: building schema:", err)
		os.Exit(1)
	}

	var cache *querycache.Cache
	if *cacheSize > 0 {
		cache, err = querycache.New(*cacheSize)
		if err != nil {
			fmt.Fprintln(os.Stderr, "relgraphq: building cache:", err)
			os.Exit(1)
		}
	}

	req := &relgraph.Request{
		Schema:   s,
		Database: buildFixture(*sync),
		Cache:    cache,
		Query:    *query,
	}

	resp := relgraph.Execute(context.Background(), req)
	out, err := resp.MarshalJSON()
	if err != nil {
		fmt.Fprintln(os.Stderr, "relgraphq: marshaling response:", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
	if len(resp.Errors) > 0 {
		os.Exit(1)
	}
}

// buildFixture seeds a tiny two-table database: authors, each with a list of posts keyed by
// author_id. --sync toggles whether the returned Database advertises the synchronous fast path
// (executor.ExecuteSync) or the default asynchronous wave path (executor.Execute); relgraph.Execute
// picks the path from the Database's IsSync, so --sync switches which executor runs the query; see
// dbfixture.NewSync.
func buildFixture(sync bool) *dbfixture.DB {
	var db *dbfixture.DB
	if sync {
		db = dbfixture.NewSync()
	} else {
		db = dbfixture.New()
	}

	db.AddRow("authors", depvalue.IntId(1), map[string]depvalue.Value{
		"name": depvalue.StringValue{Value: "Ada Lovelace"},
	})
	db.AddRow("authors", depvalue.IntId(2), map[string]depvalue.Value{
		"name": depvalue.StringValue{Value: "Grace Hopper"},
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

	return db
}

// buildSchema declares Query { author(id: ID!): Author }, Author { id, name, posts: [Post!]! },
// Post { id, title }, wiring schema.ArgumentSource, schema.ColumnGet, and schema.ColumnGetList —
// the three Database-facing DependencySource variants a real adapter would also exercise.
func buildSchema() (*schema.Schema, error) {
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
	}

	return schema.New(&schema.Definition{Query: queryType})
}

// idField is the `id: ID!` field both Author and Post expose, reading the "id" external dependency
// every Populator in this schema sets on its child context.
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
