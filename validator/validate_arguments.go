package validator

import (
	"github.com/relgqlx/relgraph/ast"
	"github.com/relgqlx/relgraph/schema"
)

// ifParam is the sole parameter @skip/@include declare.
var ifParam = schema.Param{Name: "if", Type: schema.NonNull(schema.Named(schema.BooleanType))}

// argumentSites visits every argument list in the document along with the declared parameters
// (nil when unknown, e.g. an unrecognized directive already reported by an earlier check) its
// arguments should be checked against.
func argumentSites(doc *ast.Document, typeInfo *TypeInfo, f func(node ast.Node, arguments []*ast.Argument, params []schema.Param)) {
	ast.Inspect(doc, func(node interface{}) bool {
		switch n := node.(type) {
		case *ast.Field:
			fd := typeInfo.FieldDefs[n]
			var params []schema.Param
			if fd != nil {
				params = fd.Parameters
			}
			f(n, n.Arguments, params)
		case *ast.Directive:
			var params []schema.Param
			if recognizedDirectives[n.Name.Name] {
				params = []schema.Param{ifParam}
			}
			f(n, n.Arguments, params)
		}
		return true
	})
}

// checkArgumentNameDuplication is spec §4.3 check 8.
func checkArgumentNameDuplication(doc *ast.Document, s *schema.Schema, typeInfo *TypeInfo) []*Error {
	var ret []*Error
	argumentSites(doc, typeInfo, func(node ast.Node, arguments []*ast.Argument, params []schema.Param) {
		seen := map[string]bool{}
		for _, a := range arguments {
			if seen[a.Name.Name] {
				ret = append(ret, newError(a.Name, "the argument `%s` may not be used more than once", a.Name.Name))
			}
			seen[a.Name.Name] = true
		}
	})
	return ret
}

func findParam(params []schema.Param, name string) *schema.Param {
	for i := range params {
		if params[i].Name == name {
			return &params[i]
		}
	}
	return nil
}

// checkArgumentNamesExist is spec §4.3 check 9.
func checkArgumentNamesExist(doc *ast.Document, s *schema.Schema, typeInfo *TypeInfo) []*Error {
	var ret []*Error
	argumentSites(doc, typeInfo, func(node ast.Node, arguments []*ast.Argument, params []schema.Param) {
		if params == nil {
			return
		}
		for _, a := range arguments {
			if findParam(params, a.Name.Name) == nil {
				ret = append(ret, newError(a.Name, "unknown argument: %s", a.Name.Name))
			}
		}
	})
	return ret
}

// checkRequiredArguments is spec §4.3 check 10: every NonNull parameter must have a non-null
// argument supplied.
func checkRequiredArguments(doc *ast.Document, s *schema.Schema, typeInfo *TypeInfo) []*Error {
	var ret []*Error
	argumentSites(doc, typeInfo, func(node ast.Node, arguments []*ast.Argument, params []schema.Param) {
		for _, p := range params {
			if !p.Type.IsNonNull() {
				continue
			}
			var supplied *ast.Argument
			for _, a := range arguments {
				if a.Name.Name == p.Name {
					supplied = a
					break
				}
			}
			if supplied == nil || ast.IsNullValue(supplied.Value) {
				ret = append(ret, newError(node, "Missing required argument `%s`", p.Name))
			}
		}
	})
	return ret
}
