// Package dbiface defines the narrow column-access surface the executor consumes (spec §6): the
// Go rendering of the Rust DatabaseInterface trait in the original source's src/database/mod.rs.
// Identifier strings (table/column names) are not escaped by the core; callers are responsible
// for ensuring they are SQL-safe, per spec §6 and §9 "SQL safety" — see internal/sqlident for the
// allow-listing helper a real adapter should run table/column names through.
package dbiface

import (
	"context"

	"github.com/relgqlx/relgraph/depvalue"
)

// Where binds a column to a value for a ColumnGetList/GetColumnsList filter. The core only ever
// constructs these bound to the current external "id" dependency (design note §9 "Polymorphic
// where values"), but the interface itself takes an already-resolved value so a Database
// implementation never needs dependency-model knowledge.
type Where struct {
	Column string
	Value  depvalue.Value
}

// ColumnSpec names one column of a multi-column fetch (spec §4.5 fetch coalescing: GetColumns
// combines what would otherwise be several single-column round-trips).
type ColumnSpec struct {
	Column string
	Type   depvalue.Type
}

// ColumnToken identifies a (table, column) pair for the synchronous fast path's ColumnTokens
// discovery (spec §4.5, §6).
type ColumnToken struct {
	Table  uint32
	Column uint32
}

// ColumnMassager post-processes a raw column string before it is coerced into a DependencyValue —
// "per-table per-column massagers" (spec §6), carried from the original's ColumnValueMassager.
type ColumnMassager func(raw string) string

// Database is the minimum surface the core consumes.
type Database interface {
	GetColumn(ctx context.Context, table, column string, id depvalue.Id, idColumn string, depType depvalue.Type) (depvalue.Value, error)
	GetColumnList(ctx context.Context, table, column string, depType depvalue.Type, wheres []Where) ([]depvalue.Value, error)
	GetColumns(ctx context.Context, table string, columns []ColumnSpec, id depvalue.Id, idColumn string) (map[string]depvalue.Value, error)
	GetColumnsList(ctx context.Context, table string, columns []ColumnSpec, wheres []Where) ([]map[string]depvalue.Value, error)

	// IsSync reports whether the synchronous fast path (spec §4.5) is available: if true, the
	// *Sync methods below and ColumnTokens must be implemented.
	IsSync() bool
	ColumnTokens() map[string]map[string]ColumnToken

	GetColumnSync(table, column string, id depvalue.Id, idColumn string, depType depvalue.Type) (depvalue.Value, error)
	GetColumnListSync(table, column string, depType depvalue.Type, wheres []Where) ([]depvalue.Value, error)
	GetColumnsSync(table string, columns []ColumnSpec, id depvalue.Id, idColumn string) (map[string]depvalue.Value, error)
	GetColumnsListSync(table string, columns []ColumnSpec, wheres []Where) ([]map[string]depvalue.Value, error)
}

// Unimplemented embeds into a Database implementation that only supports the async surface; every
// synchronous method panics if accidentally invoked, and IsSync reports false so the executor
// never calls them.
type Unimplemented struct{}

func (Unimplemented) IsSync() bool                                   { return false }
func (Unimplemented) ColumnTokens() map[string]map[string]ColumnToken { return nil }

func (Unimplemented) GetColumnSync(table, column string, id depvalue.Id, idColumn string, depType depvalue.Type) (depvalue.Value, error) {
	panic("dbiface: synchronous fast path is not implemented")
}

func (Unimplemented) GetColumnListSync(table, column string, depType depvalue.Type, wheres []Where) ([]depvalue.Value, error) {
	panic("dbiface: synchronous fast path is not implemented")
}

func (Unimplemented) GetColumnsSync(table string, columns []ColumnSpec, id depvalue.Id, idColumn string) (map[string]depvalue.Value, error) {
	panic("dbiface: synchronous fast path is not implemented")
}

func (Unimplemented) GetColumnsListSync(table string, columns []ColumnSpec, wheres []Where) ([]map[string]depvalue.Value, error) {
	panic("dbiface: synchronous fast path is not implemented")
}
