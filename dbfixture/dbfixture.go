// Package dbfixture is an in-memory dbiface.Database for tests: each table is a slice of rows,
// each row a map[string]depvalue.Value keyed by column name plus an implicit "id" column. It
// mirrors the original source's in-memory row-table test fixtures (see SPEC_FULL.md "supplemented
// features" and spec §8's six literal end-to-end scenarios), re-expressed against dbiface.Database
// instead of the Rust trait the original tests targeted.
package dbfixture

import (
	"context"
	"fmt"

	"github.com/relgqlx/relgraph/dbiface"
	"github.com/relgqlx/relgraph/depvalue"
)

type row struct {
	id      depvalue.Id
	columns map[string]depvalue.Value
}

// DB is a fixture database; the zero value is ready to use.
type DB struct {
	dbiface.Unimplemented
	tables      map[string][]row
	synchronous bool
}

// New returns an empty fixture database whose IsSync reports false, so callers exercise
// executor.Execute's wave/coalescing path.
func New() *DB {
	return &DB{tables: map[string][]row{}}
}

// NewSync returns an empty fixture database whose IsSync reports true, so callers exercise
// executor.ExecuteSync's synchronous fast path instead. The underlying row lookups are identical
// either way — only the advertised capability differs.
func NewSync() *DB {
	return &DB{tables: map[string][]row{}, synchronous: true}
}

func (db *DB) IsSync() bool { return db.synchronous }

// ColumnTokens reports no interned column tokens; the fixture has no use for them, but
// implementing the method (rather than inheriting Unimplemented's panic) keeps DB a complete,
// non-panicking dbiface.Database regardless of which mode it was constructed in.
func (db *DB) ColumnTokens() map[string]map[string]dbiface.ColumnToken { return nil }

func (db *DB) GetColumnSync(table, column string, id depvalue.Id, idColumn string, depType depvalue.Type) (depvalue.Value, error) {
	return db.GetColumn(context.Background(), table, column, id, idColumn, depType)
}

func (db *DB) GetColumnListSync(table, column string, depType depvalue.Type, wheres []dbiface.Where) ([]depvalue.Value, error) {
	return db.GetColumnList(context.Background(), table, column, depType, wheres)
}

func (db *DB) GetColumnsSync(table string, columns []dbiface.ColumnSpec, id depvalue.Id, idColumn string) (map[string]depvalue.Value, error) {
	return db.GetColumns(context.Background(), table, columns, id, idColumn)
}

func (db *DB) GetColumnsListSync(table string, columns []dbiface.ColumnSpec, wheres []dbiface.Where) ([]map[string]depvalue.Value, error) {
	return db.GetColumnsList(context.Background(), table, columns, wheres)
}

// AddRow inserts one row into table, keyed by id, with the given column values. It panics if
// table already has a row with that id — tests are expected to build fixtures once, up front.
func (db *DB) AddRow(table string, id depvalue.Id, columns map[string]depvalue.Value) {
	if db.tables == nil {
		db.tables = map[string][]row{}
	}
	for _, r := range db.tables[table] {
		if r.id.Equal(id) {
			panic(fmt.Sprintf("dbfixture: table %q already has a row with id %s", table, id))
		}
	}
	cols := make(map[string]depvalue.Value, len(columns)+1)
	for k, v := range columns {
		cols[k] = v
	}
	if _, ok := cols["id"]; !ok {
		cols["id"] = depvalue.IdValue{Value: id}
	}
	db.tables[table] = append(db.tables[table], row{id: id, columns: cols})
}

func (db *DB) rowByID(table string, id depvalue.Id) (row, bool) {
	for _, r := range db.tables[table] {
		if r.id.Equal(id) {
			return r, true
		}
	}
	return row{}, false
}

func (db *DB) GetColumn(ctx context.Context, table, column string, id depvalue.Id, idColumn string, depType depvalue.Type) (depvalue.Value, error) {
	r, ok := db.rowByID(table, id)
	if !ok {
		return nil, fmt.Errorf("dbfixture: no row in %q with id %s", table, id)
	}
	v, ok := r.columns[column]
	if !ok {
		return nil, fmt.Errorf("dbfixture: %q has no column %q", table, column)
	}
	return v, nil
}

func (db *DB) GetColumnList(ctx context.Context, table, column string, depType depvalue.Type, wheres []dbiface.Where) ([]depvalue.Value, error) {
	var out []depvalue.Value
	for _, r := range db.tables[table] {
		if !matches(r, wheres) {
			continue
		}
		v, ok := r.columns[column]
		if !ok {
			return nil, fmt.Errorf("dbfixture: %q has no column %q", table, column)
		}
		out = append(out, v)
	}
	return out, nil
}

func (db *DB) GetColumns(ctx context.Context, table string, columns []dbiface.ColumnSpec, id depvalue.Id, idColumn string) (map[string]depvalue.Value, error) {
	r, ok := db.rowByID(table, id)
	if !ok {
		return nil, fmt.Errorf("dbfixture: no row in %q with id %s", table, id)
	}
	out := make(map[string]depvalue.Value, len(columns))
	for _, spec := range columns {
		v, ok := r.columns[spec.Column]
		if !ok {
			return nil, fmt.Errorf("dbfixture: %q has no column %q", table, spec.Column)
		}
		out[spec.Column] = v
	}
	return out, nil
}

func (db *DB) GetColumnsList(ctx context.Context, table string, columns []dbiface.ColumnSpec, wheres []dbiface.Where) ([]map[string]depvalue.Value, error) {
	var out []map[string]depvalue.Value
	for _, r := range db.tables[table] {
		if !matches(r, wheres) {
			continue
		}
		rowOut := make(map[string]depvalue.Value, len(columns))
		for _, spec := range columns {
			v, ok := r.columns[spec.Column]
			if !ok {
				return nil, fmt.Errorf("dbfixture: %q has no column %q", table, spec.Column)
			}
			rowOut[spec.Column] = v
		}
		out = append(out, rowOut)
	}
	return out, nil
}

func matches(r row, wheres []dbiface.Where) bool {
	for _, w := range wheres {
		v, ok := r.columns[w.Column]
		if !ok || !equalDependencyValue(v, w.Value) {
			return false
		}
	}
	return true
}

func equalDependencyValue(a, b depvalue.Value) bool {
	ai, aok := a.(depvalue.IdValue)
	bi, bok := b.(depvalue.IdValue)
	if aok && bok {
		return ai.Value.Equal(bi.Value)
	}
	return a == b
}
