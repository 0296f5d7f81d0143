package validator

import (
	"github.com/relgqlx/relgraph/ast"
	"github.com/relgqlx/relgraph/schema"
)

// TypeInfo is a one-pass-computed index from AST position to schema type, shared by every check
// that needs "what type is selected against here" (field existence, argument checks, fragment
// spread relevance). It tolerates unresolved types (nil) so that a check running after an earlier
// one already reported the root cause doesn't have to re-derive it — though in practice only one
// check's errors are ever returned, since Validate stops at the first non-empty set.
type TypeInfo struct {
	SelectionSetTypes map[*ast.SelectionSet]schema.NamedType
	FieldDefs         map[*ast.Field]*schema.FieldDef
}

func rootTypeFor(s *schema.Schema, opType *ast.OperationType) schema.NamedType {
	if opType == nil {
		return s.QueryType()
	}
	switch opType.Value {
	case "mutation":
		if t := s.MutationType(); t != nil {
			return t
		}
		return nil
	case "subscription":
		if t := s.SubscriptionType(); t != nil {
			return t
		}
		return nil
	default:
		return s.QueryType()
	}
}

func resolveNamedType(s *schema.Schema, nt *ast.NamedType) schema.NamedType {
	if nt == nil || nt.Name == nil {
		return nil
	}
	return s.NamedType(nt.Name.Name)
}

func buildTypeInfo(doc *ast.Document, s *schema.Schema) *TypeInfo {
	info := &TypeInfo{
		SelectionSetTypes: map[*ast.SelectionSet]schema.NamedType{},
		FieldDefs:         map[*ast.Field]*schema.FieldDef{},
	}

	var stack []schema.NamedType
	current := func() schema.NamedType {
		if len(stack) == 0 {
			return nil
		}
		return stack[len(stack)-1]
	}

	ast.Inspect(doc, func(node interface{}) bool {
		if node == nil {
			stack = stack[:len(stack)-1]
			return true
		}

		t := current()
		switch n := node.(type) {
		case *ast.OperationDefinition:
			t = rootTypeFor(s, n.OperationType)
		case *ast.FragmentDefinition:
			t = resolveNamedType(s, n.TypeCondition)
		case *ast.InlineFragment:
			if n.TypeCondition != nil {
				t = resolveNamedType(s, n.TypeCondition)
			}
		case *ast.SelectionSet:
			info.SelectionSetTypes[n] = t
		case *ast.Field:
			fd := schema.FieldDefFor(s, t, n.Name.Name)
			info.FieldDefs[n] = fd
			if fd != nil {
				if named := schema.NamedOf(fd.Type); named != nil {
					t = named.Named
				} else {
					t = nil
				}
			} else {
				t = nil
			}
		}
		stack = append(stack, t)
		return true
	})

	return info
}
