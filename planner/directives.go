package planner

import "github.com/relgqlx/relgraph/ast"

// shouldSkip applies @skip/@include per design note §9: selections are dropped during planning,
// before merging, rather than carried into the plan for the executor to re-check. The argument
// grammar has no variables (spec §4.2), so `if` is always a literal and is read directly; a
// non-boolean literal (impossible for a schema-valid @skip/@include per validator check 9/10, but
// defensive here) is treated as false.
func shouldSkip(directives []*ast.Directive) bool {
	skip := false
	include := true
	for _, d := range directives {
		arg := findArgument(d.Arguments, "if")
		switch d.Name.Name {
		case "skip":
			if arg != nil {
				skip = literalBool(arg.Value)
			}
		case "include":
			if arg != nil {
				include = literalBool(arg.Value)
			}
		}
	}
	return skip || !include
}

func findArgument(args []*ast.Argument, name string) *ast.Argument {
	for _, a := range args {
		if a.Name.Name == name {
			return a
		}
	}
	return nil
}

func literalBool(v ast.Value) bool {
	b, ok := v.(*ast.BooleanValue)
	return ok && b.Value
}
