package assembler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relgqlx/relgraph/assembler"
	"github.com/relgqlx/relgraph/ast"
	"github.com/relgqlx/relgraph/executor"
	"github.com/relgqlx/relgraph/internal/testschema"
	"github.com/relgqlx/relgraph/parser"
	"github.com/relgqlx/relgraph/planner"
	"github.com/relgqlx/relgraph/responsevalue"
)

func execute(t *testing.T, query string) []executor.Event {
	t.Helper()
	s, db := testschema.New()
	testschema.SeedFixture(db)

	doc, perrs := parser.ParseDocument([]byte(query), false)
	require.Empty(t, perrs)
	op := ast.Operations(doc)[0]
	plans, err := planner.Plan(doc, op, s)
	require.NoError(t, err)

	events, err := executor.Execute(context.Background(), db, s, "Query", plans["Query"])
	require.NoError(t, err)
	return events
}

func TestAssemble_ScalarFieldsAssembleAsAnOrderedMap(t *testing.T) {
	events := execute(t, `{ author(id: 1) { id name } }`)
	v := assembler.Assemble(events)

	root, ok := v.(*responsevalue.Map)
	require.True(t, ok)
	require.Len(t, root.Fields, 1)
	assert.Equal(t, "author", root.Fields[0].Key)

	author := root.Fields[0].Value.(*responsevalue.Map)
	require.Len(t, author.Fields, 2)
	assert.Equal(t, "id", author.Fields[0].Key)
	assert.Equal(t, responsevalue.Int{Value: 1}, author.Fields[0].Value)
	assert.Equal(t, "name", author.Fields[1].Key)
	assert.Equal(t, responsevalue.String{Value: "Ada Lovelace"}, author.Fields[1].Value)
}

func TestAssemble_ListOfObjectsPreservesItemOrder(t *testing.T) {
	events := execute(t, `{ author(id: 1) { posts { title } } }`)
	v := assembler.Assemble(events)

	root := v.(*responsevalue.Map)
	author := root.Fields[0].Value.(*responsevalue.Map)
	require.Equal(t, "posts", author.Fields[0].Key)

	posts := author.Fields[0].Value.(*responsevalue.List)
	require.Len(t, posts.Items, 2)
	var titles []string
	for _, item := range posts.Items {
		m := item.(*responsevalue.Map)
		titles = append(titles, m.Fields[0].Value.(responsevalue.String).Value)
	}
	assert.Equal(t, []string{"Notes on the Analytical Engine", "On the Diagram"}, titles)
}

func TestAssemble_FieldOrderFollowsFieldIndexNotEventOrder(t *testing.T) {
	// Build a hand-crafted log where the log order and FieldIndex order diverge, to confirm
	// buildObject sorts by FieldIndex rather than trusting append order.
	events := []executor.Event{
		{Kind: executor.NewRootObject},
		{Kind: executor.FieldScalar, ParentObjectIndex: 0, FieldIndex: 1, FieldKey: "second", Value: responsevalue.Int{Value: 2}},
		{Kind: executor.FieldScalar, ParentObjectIndex: 0, FieldIndex: 0, FieldKey: "first", Value: responsevalue.Int{Value: 1}},
	}
	v := assembler.Assemble(events)
	root := v.(*responsevalue.Map)
	require.Len(t, root.Fields, 2)
	assert.Equal(t, "first", root.Fields[0].Key)
	assert.Equal(t, "second", root.Fields[1].Key)
}

func TestAssemble_EmptyLogPanics(t *testing.T) {
	assert.Panics(t, func() { assembler.Assemble(nil) })
}

func TestAssemble_FieldNewNullBecomesNullValue(t *testing.T) {
	events := []executor.Event{
		{Kind: executor.NewRootObject},
		{Kind: executor.FieldNewNull, ParentObjectIndex: 0, FieldIndex: 0, FieldKey: "author"},
	}
	v := assembler.Assemble(events)
	root := v.(*responsevalue.Map)
	assert.Equal(t, responsevalue.Null{}, root.Fields[0].Value)
}
