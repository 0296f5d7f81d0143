package planner

import (
	"fmt"

	"github.com/relgqlx/relgraph/ast"
	"github.com/relgqlx/relgraph/schema"
)

// Plan builds the FieldPlan tree for op against s (spec §4.4). The result always has exactly one
// key: the name of the operation's root type (query, mutation or subscription).
func Plan(doc *ast.Document, op *ast.OperationDefinition, s *schema.Schema) (map[string][]*FieldPlan, error) {
	root := rootTypeFor(op, s)
	if root == nil {
		return nil, fmt.Errorf("planner: operation has no corresponding root type in schema")
	}

	possibleTypes := map[string]*schema.ObjectType{root.Name: root}

	c := newCollector(s, ast.FragmentIndex(doc))
	c.collect(op.SelectionSet, possibleTypes)
	return c.build(possibleTypes), nil
}

func rootTypeFor(op *ast.OperationDefinition, s *schema.Schema) *schema.ObjectType {
	if op.OperationType == nil {
		return s.QueryType()
	}
	switch op.OperationType.Value {
	case "mutation":
		return s.MutationType()
	case "subscription":
		return s.SubscriptionType()
	default:
		return s.QueryType()
	}
}
