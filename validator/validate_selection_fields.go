package validator

import (
	"github.com/relgqlx/relgraph/ast"
	"github.com/relgqlx/relgraph/schema"
)

// checkSelectionFieldsExist is spec §4.3 check 4: fields must exist on their enclosing type
// (unions permit only __typename as a direct field), scalar fields must not carry a selection
// set, and composite fields must.
func checkSelectionFieldsExist(doc *ast.Document, s *schema.Schema, typeInfo *TypeInfo) []*Error {
	var ret []*Error

	ast.Inspect(doc, func(node interface{}) bool {
		field, ok := node.(*ast.Field)
		if !ok {
			return true
		}

		fd := typeInfo.FieldDefs[field]
		if fd == nil {
			// No definition was found on the enclosing type, so the field is reported as
			// undefined. An unresolved `on T` enclosing type was already reported by
			// checkTypeReferencesExist, which runs first and stops the pipeline.
			ret = append(ret, newError(field.Name, "undefined field: %s", field.Name.Name))
			return true
		}

		if fd.Type == nil {
			return true
		}

		if schema.IsScalarOrEnum(fd.Type) {
			if field.SelectionSet != nil {
				ret = append(ret, newError(field.SelectionSet, "scalar fields must not have a selection set"))
			}
		} else if field.SelectionSet == nil {
			ret = append(ret, newError(field.Name, "composite fields must have a selection set"))
		}

		return true
	})

	unionDirectFieldCheck(doc, s, typeInfo, &ret)

	return ret
}

// unionDirectFieldCheck enforces that a selection set whose enclosing type is a union only
// selects __typename directly; member fields must be reached through an inline fragment.
func unionDirectFieldCheck(doc *ast.Document, s *schema.Schema, typeInfo *TypeInfo, ret *[]*Error) {
	ast.Inspect(doc, func(node interface{}) bool {
		ss, ok := node.(*ast.SelectionSet)
		if !ok {
			return true
		}
		t := typeInfo.SelectionSetTypes[ss]
		if _, ok := t.(*schema.UnionType); !ok {
			return true
		}
		for _, sel := range ss.Selections {
			if field, ok := sel.(*ast.Field); ok && field.Name.Name != "__typename" {
				*ret = append(*ret, newError(field.Name, "unions may only select __typename directly; use an inline fragment to select member fields"))
			}
		}
		return true
	})
}
