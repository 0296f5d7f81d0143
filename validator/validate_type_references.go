package validator

import (
	"github.com/relgqlx/relgraph/ast"
	"github.com/relgqlx/relgraph/schema"
)

// checkTypeReferencesExist is spec §4.3 check 3: every `on T` in a fragment definition or inline
// fragment must name a declared type, interface, or union.
func checkTypeReferencesExist(doc *ast.Document, s *schema.Schema, typeInfo *TypeInfo) []*Error {
	var ret []*Error

	check := func(tc *ast.NamedType) {
		nt := s.NamedType(tc.Name.Name)
		if nt == nil {
			ret = append(ret, newError(tc.Name, "undefined type: %s", tc.Name.Name))
			return
		}
		if !schema.IsComposite(nt) {
			ret = append(ret, newError(tc.Name, "fragments may only be defined on objects, interfaces, and unions"))
		}
	}

	for _, frag := range ast.Fragments(doc) {
		check(frag.TypeCondition)
	}

	ast.Inspect(doc, func(node interface{}) bool {
		if inline, ok := node.(*ast.InlineFragment); ok && inline.TypeCondition != nil {
			check(inline.TypeCondition)
		}
		return true
	})

	return ret
}
