package validator

import (
	"github.com/relgqlx/relgraph/ast"
	"github.com/relgqlx/relgraph/schema"
)

// checkOperationNameUniqueness is spec §4.3 check 1.
func checkOperationNameUniqueness(doc *ast.Document, s *schema.Schema, typeInfo *TypeInfo) []*Error {
	var ret []*Error
	byName := map[string][]*ast.OperationDefinition{}
	for _, op := range ast.Operations(doc) {
		if op.Name != nil {
			byName[op.Name.Name] = append(byName[op.Name.Name], op)
		}
	}
	for name, ops := range byName {
		if len(ops) < 2 {
			continue
		}
		var nodes []ast.Node
		for _, op := range ops {
			nodes = append(nodes, op)
		}
		ret = append(ret, newErrorForNodes(nodes, "Non-unique operation names: `%s`", name))
	}
	return ret
}

// checkLoneAnonymousOperation is spec §4.3 check 2.
func checkLoneAnonymousOperation(doc *ast.Document, s *schema.Schema, typeInfo *TypeInfo) []*Error {
	ops := ast.Operations(doc)
	var anonymous []*ast.OperationDefinition
	for _, op := range ops {
		if op.Name == nil {
			anonymous = append(anonymous, op)
		}
	}
	if len(anonymous) == 0 || len(ops) == 1 {
		return nil
	}
	var ret []*Error
	for _, op := range anonymous {
		ret = append(ret, newError(op, "anonymous operation must be the only defined operation"))
	}
	return ret
}
