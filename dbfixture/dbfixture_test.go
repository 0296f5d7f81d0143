package dbfixture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relgqlx/relgraph/dbiface"
	"github.com/relgqlx/relgraph/depvalue"
)

func TestNew_IsSyncFalse(t *testing.T) {
	db := New()
	assert.False(t, db.IsSync())
}

func TestNewSync_IsSyncTrue(t *testing.T) {
	db := NewSync()
	assert.True(t, db.IsSync())
}

func TestAddRow_DuplicateIdPanics(t *testing.T) {
	db := New()
	db.AddRow("authors", depvalue.IntId(1), map[string]depvalue.Value{"name": depvalue.StringValue{Value: "A"}})
	assert.Panics(t, func() {
		db.AddRow("authors", depvalue.IntId(1), map[string]depvalue.Value{"name": depvalue.StringValue{Value: "B"}})
	})
}

func TestGetColumn_HappyPathAndErrors(t *testing.T) {
	db := New()
	db.AddRow("authors", depvalue.IntId(1), map[string]depvalue.Value{"name": depvalue.StringValue{Value: "Ada"}})

	v, err := db.GetColumn(context.Background(), "authors", "name", depvalue.IntId(1), "id", depvalue.String)
	require.NoError(t, err)
	assert.Equal(t, depvalue.StringValue{Value: "Ada"}, v)

	_, err = db.GetColumn(context.Background(), "authors", "name", depvalue.IntId(99), "id", depvalue.String)
	assert.Error(t, err)

	_, err = db.GetColumn(context.Background(), "authors", "missing", depvalue.IntId(1), "id", depvalue.String)
	assert.Error(t, err)
}

func TestGetColumnList_FiltersByWhere(t *testing.T) {
	db := New()
	db.AddRow("posts", depvalue.IntId(10), map[string]depvalue.Value{
		"author_id": depvalue.IdValue{Value: depvalue.IntId(1)},
		"title":     depvalue.StringValue{Value: "first"},
	})
	db.AddRow("posts", depvalue.IntId(11), map[string]depvalue.Value{
		"author_id": depvalue.IdValue{Value: depvalue.IntId(2)},
		"title":     depvalue.StringValue{Value: "second"},
	})

	vals, err := db.GetColumnList(context.Background(), "posts", "title", depvalue.String, []dbiface.Where{
		{Column: "author_id", Value: depvalue.IdValue{Value: depvalue.IntId(1)}},
	})
	require.NoError(t, err)
	require.Len(t, vals, 1)
	assert.Equal(t, depvalue.StringValue{Value: "first"}, vals[0])
}

func TestGetColumns_ReturnsRequestedColumnsOnly(t *testing.T) {
	db := New()
	db.AddRow("authors", depvalue.IntId(1), map[string]depvalue.Value{
		"name": depvalue.StringValue{Value: "Ada"},
		"age":  depvalue.IntValue{Value: 36},
	})

	out, err := db.GetColumns(context.Background(), "authors", []dbiface.ColumnSpec{{Column: "name", Type: depvalue.String}}, depvalue.IntId(1), "id")
	require.NoError(t, err)
	assert.Equal(t, map[string]depvalue.Value{"name": depvalue.StringValue{Value: "Ada"}}, out)
}

func TestGetColumnsList_FiltersAndProjects(t *testing.T) {
	db := New()
	db.AddRow("posts", depvalue.IntId(10), map[string]depvalue.Value{
		"author_id": depvalue.IdValue{Value: depvalue.IntId(1)},
		"title":     depvalue.StringValue{Value: "first"},
	})
	db.AddRow("posts", depvalue.IntId(11), map[string]depvalue.Value{
		"author_id": depvalue.IdValue{Value: depvalue.IntId(2)},
		"title":     depvalue.StringValue{Value: "second"},
	})

	rows, err := db.GetColumnsList(context.Background(), "posts", []dbiface.ColumnSpec{{Column: "title", Type: depvalue.String}}, []dbiface.Where{
		{Column: "author_id", Value: depvalue.IdValue{Value: depvalue.IntId(2)}},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, depvalue.StringValue{Value: "second"}, rows[0]["title"])
}

func TestSyncMethods_MatchTheirAsyncCounterparts(t *testing.T) {
	db := NewSync()
	db.AddRow("authors", depvalue.IntId(1), map[string]depvalue.Value{"name": depvalue.StringValue{Value: "Ada"}})

	asyncV, err := db.GetColumn(context.Background(), "authors", "name", depvalue.IntId(1), "id", depvalue.String)
	require.NoError(t, err)
	syncV, err := db.GetColumnSync("authors", "name", depvalue.IntId(1), "id", depvalue.String)
	require.NoError(t, err)
	assert.Equal(t, asyncV, syncV)
}

func TestColumnTokens_ReturnsNilWithoutPanicking(t *testing.T) {
	db := New()
	assert.Nil(t, db.ColumnTokens())
}
