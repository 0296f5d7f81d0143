package executor_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relgqlx/relgraph/ast"
	"github.com/relgqlx/relgraph/dbfixture"
	"github.com/relgqlx/relgraph/dbiface"
	"github.com/relgqlx/relgraph/depvalue"
	"github.com/relgqlx/relgraph/executor"
	"github.com/relgqlx/relgraph/internal/testschema"
	"github.com/relgqlx/relgraph/parser"
	"github.com/relgqlx/relgraph/planner"
	"github.com/relgqlx/relgraph/responsevalue"
)

// countingDB wraps a *dbfixture.DB and counts calls to GetColumns, so a test can assert fetch.go's
// columnGetGroup coalescing actually merges several ColumnGet dependencies into one round trip
// instead of one per field.
type countingDB struct {
	*dbfixture.DB
	getColumnsCalls int32
}

func (d *countingDB) GetColumns(ctx context.Context, table string, columns []dbiface.ColumnSpec, id depvalue.Id, idColumn string) (map[string]depvalue.Value, error) {
	atomic.AddInt32(&d.getColumnsCalls, 1)
	return d.DB.GetColumns(ctx, table, columns, id, idColumn)
}

func plan(t *testing.T, query string) []*planner.FieldPlan {
	t.Helper()
	s, _ := testschema.New()
	doc, perrs := parser.ParseDocument([]byte(query), false)
	require.Empty(t, perrs)
	op := ast.Operations(doc)[0]
	plans, err := planner.Plan(doc, op, s)
	require.NoError(t, err)
	return plans["Query"]
}

func scalarValues(events []executor.Event) []responsevalue.Value {
	var out []responsevalue.Value
	for _, e := range events {
		if e.Kind == executor.FieldScalar {
			out = append(out, e.Value)
		}
	}
	return out
}

func TestExecute_ResolvesScalarFields(t *testing.T) {
	s, db := testschema.New()
	testschema.SeedFixture(db)
	plans := plan(t, `{ author(id: 1) { id name } }`)

	events, err := executor.Execute(context.Background(), db, s, "Query", plans)
	require.NoError(t, err)

	require.Equal(t, executor.NewRootObject, events[0].Kind)
	values := scalarValues(events)
	require.Len(t, values, 2)
	assert.Equal(t, responsevalue.Int{Value: 1}, values[0])
	assert.Equal(t, responsevalue.String{Value: "Ada Lovelace"}, values[1])
}

func TestExecute_ResolvesListOfObjects(t *testing.T) {
	s, db := testschema.New()
	testschema.SeedFixture(db)
	plans := plan(t, `{ author(id: 1) { posts { id title } } }`)

	events, err := executor.Execute(context.Background(), db, s, "Query", plans)
	require.NoError(t, err)

	var newListCount, newItemCount int
	for _, e := range events {
		switch e.Kind {
		case executor.FieldNewListOfObjects:
			newListCount++
		case executor.ListItemNewObject:
			newItemCount++
		}
	}
	assert.Equal(t, 1, newListCount)
	assert.Equal(t, 2, newItemCount) // author 1 has two posts

	titles := map[string]bool{}
	for _, v := range scalarValues(events) {
		if sv, ok := v.(responsevalue.String); ok {
			titles[sv.Value] = true
		}
	}
	assert.True(t, titles["Notes on the Analytical Engine"])
	assert.True(t, titles["On the Diagram"])
}

func TestExecute_EveryOpenedSlotIsReferencedInOrder(t *testing.T) {
	// spec §8 "Event well-formedness": every object/list event that opens a slot is referenced
	// only by events later in the log, never earlier.
	s, db := testschema.New()
	testschema.SeedFixture(db)
	plans := plan(t, `{ author(id: 1) { id name posts { id title } } }`)

	events, err := executor.Execute(context.Background(), db, s, "Query", plans)
	require.NoError(t, err)

	for i, e := range events {
		switch e.Kind {
		case executor.FieldNewObject, executor.FieldNewListOfObjects, executor.FieldNewListOfScalars, executor.FieldScalar, executor.FieldNewNull:
			assert.Less(t, e.ParentObjectIndex, i)
		case executor.ListItemNewObject, executor.ListItemScalar:
			assert.Less(t, e.ParentListIndex, i)
		}
	}
}

func TestExecute_UnknownAuthorFetchReturnsError(t *testing.T) {
	s, db := testschema.New()
	// no rows seeded: the GetColumns fetch for name will error, since author id 1 does not exist.
	plans := plan(t, `{ author(id: 1) { name } }`)

	_, err := executor.Execute(context.Background(), db, s, "Query", plans)
	assert.Error(t, err)
}

func TestExecute_CoalescesMultipleColumnGetFieldsIntoOneGetColumnsCall(t *testing.T) {
	// spec §4.5 fetch coalescing: name and bio both source from authors(id) via ColumnGet, so
	// selecting both in the same query must produce exactly one GetColumns call, not two.
	_, fixtureDB := testschema.New()
	testschema.SeedFixture(fixtureDB)
	db := &countingDB{DB: fixtureDB}
	s, _ := testschema.New()
	plans := plan(t, `{ author(id: 1) { name bio } }`)

	events, err := executor.Execute(context.Background(), db, s, "Query", plans)
	require.NoError(t, err)

	values := scalarValues(events)
	require.Len(t, values, 2)
	assert.Equal(t, responsevalue.String{Value: "Ada Lovelace"}, values[0])
	assert.Equal(t, responsevalue.String{Value: "Mathematician and writer."}, values[1])
	assert.EqualValues(t, 1, atomic.LoadInt32(&db.getColumnsCalls), "name and bio share (table, idColumn, id) and must coalesce into a single GetColumns call")
}

func TestExecute_UnionOrInterfaceTypePopulatorResolvesConcreteType(t *testing.T) {
	// spec §8 scenario 3: certainActorOrDesigner always resolves to the Proenza Schouler
	// designers row, driving UnionOrInterfaceTypePopulator end to end.
	s, db := testschema.New()
	testschema.SeedFixture(db)
	plans := plan(t, `{ certainActorOrDesigner { ... on Actor { expression } ... on Designer { name } } }`)

	events, err := executor.Execute(context.Background(), db, s, "Query", plans)
	require.NoError(t, err)

	values := scalarValues(events)
	require.Len(t, values, 1)
	assert.Equal(t, responsevalue.String{Value: "Proenza Schouler"}, values[0])
}

func TestExecuteSync_RequiresASynchronousDatabase(t *testing.T) {
	s, db := testschema.New() // New() is non-sync
	testschema.SeedFixture(db)
	plans := plan(t, `{ author(id: 1) { id } }`)

	_, err := executor.ExecuteSync(context.Background(), db, s, "Query", plans)
	assert.Error(t, err)
}

func TestExecuteSync_MatchesExecuteOnSameFixtureData(t *testing.T) {
	s, asyncDB := testschema.New()
	testschema.SeedFixture(asyncDB)
	asyncPlans := plan(t, `{ author(id: 1) { id name posts { id title } } }`)
	asyncEvents, err := executor.Execute(context.Background(), asyncDB, s, "Query", asyncPlans)
	require.NoError(t, err)

	syncDB := dbfixture.NewSync()
	testschema.SeedFixture(syncDB)
	syncPlans := plan(t, `{ author(id: 1) { id name posts { id title } } }`)
	syncEvents, err := executor.ExecuteSync(context.Background(), syncDB, s, "Query", syncPlans)
	require.NoError(t, err)

	assert.Equal(t, scalarValues(asyncEvents), scalarValues(syncEvents))
}
