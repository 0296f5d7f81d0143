// Package planner builds the FieldPlan tree from spec §4.4: given a validated operation and
// schema, it merges every Field/FragmentSpread/InlineFragment contribution at each position into
// a per-concrete-type map of ordered field plans, ready for the executor to walk without any
// further AST traversal.
package planner

import (
	"github.com/relgqlx/relgraph/ast"
	"github.com/relgqlx/relgraph/schema"
)

// FieldPlan is one selected field at one concrete type: its resolved FieldDef, the arguments
// supplied at the (first-occurrence) call site, and — if composite — a per-concrete-type map of
// child field plans (nil for scalar/enum fields).
type FieldPlan struct {
	Def         *schema.FieldDef
	ResponseKey string
	Arguments   []*ast.Argument
	Children    map[string][]*FieldPlan
}
