package validator

import (
	"github.com/relgqlx/relgraph/ast"
	"github.com/relgqlx/relgraph/schema"
)

var recognizedDirectives = map[string]bool{
	"skip":    true,
	"include": true,
}

// directiveSites visits every AST location that carries a Directives list, reporting whether
// directives are syntactically permitted there. Operations and fragment definitions carry
// Directives in the grammar but @skip/@include are semantically disallowed there (check 6).
func directiveSites(doc *ast.Document, f func(directives []*ast.Directive, placementAllowed bool)) {
	ast.Inspect(doc, func(node interface{}) bool {
		switch n := node.(type) {
		case *ast.OperationDefinition:
			f(n.Directives, false)
		case *ast.FragmentDefinition:
			f(n.Directives, false)
		case *ast.Field:
			f(n.Directives, true)
		case *ast.FragmentSpread:
			f(n.Directives, true)
		case *ast.InlineFragment:
			f(n.Directives, true)
		}
		return true
	})
}

// checkDirectivesExist is spec §4.3 check 5: only @skip and @include are recognized.
func checkDirectivesExist(doc *ast.Document, s *schema.Schema, typeInfo *TypeInfo) []*Error {
	var ret []*Error
	directiveSites(doc, func(directives []*ast.Directive, _ bool) {
		for _, d := range directives {
			if !recognizedDirectives[d.Name.Name] {
				ret = append(ret, newError(d.Name, "unrecognized directive: @%s", d.Name.Name))
			}
		}
	})
	return ret
}

// checkDirectivePlacement is spec §4.3 check 6.
func checkDirectivePlacement(doc *ast.Document, s *schema.Schema, typeInfo *TypeInfo) []*Error {
	var ret []*Error
	directiveSites(doc, func(directives []*ast.Directive, placementAllowed bool) {
		if placementAllowed {
			return
		}
		for _, d := range directives {
			if recognizedDirectives[d.Name.Name] {
				ret = append(ret, newError(d.Name, "@%s is not valid on operations or fragment definitions", d.Name.Name))
			}
		}
	})
	return ret
}

// checkDirectiveUniqueness is spec §4.3 check 7: no directive appears twice at the same location.
func checkDirectiveUniqueness(doc *ast.Document, s *schema.Schema, typeInfo *TypeInfo) []*Error {
	var ret []*Error
	directiveSites(doc, func(directives []*ast.Directive, _ bool) {
		seen := map[string]bool{}
		for _, d := range directives {
			if seen[d.Name.Name] {
				ret = append(ret, newError(d.Name, "the directive @%s may not be used more than once at a single location", d.Name.Name))
			}
			seen[d.Name.Name] = true
		}
	})
	return ret
}
