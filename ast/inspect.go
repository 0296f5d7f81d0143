package ast

import (
	"fmt"
	"reflect"
)

// Inspect performs a depth-first traversal of node, invoking f on each node it finds. f is also
// invoked with nil immediately after a node's children have all been visited, so callers can
// maintain a stack (used by the validator's type-info pass). Traversal stops early for a subtree
// when f returns false for its root.
func Inspect(node interface{}, f func(interface{}) bool) {
	if node == nil || reflect.ValueOf(node).IsNil() || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Document:
		for _, d := range n.Definitions {
			Inspect(d, f)
		}
	case *OperationDefinition:
		Inspect(n.Name, f)
		for _, d := range n.Directives {
			Inspect(d, f)
		}
		Inspect(n.SelectionSet, f)
	case *FragmentDefinition:
		Inspect(n.Name, f)
		for _, d := range n.Directives {
			Inspect(d, f)
		}
		Inspect(n.SelectionSet, f)
	case *ListType:
		Inspect(n.Type, f)
	case *NonNullType:
		Inspect(n.Type, f)
	case *Directive:
		Inspect(n.Name, f)
		for _, a := range n.Arguments {
			Inspect(a, f)
		}
	case *SelectionSet:
		for _, s := range n.Selections {
			Inspect(s, f)
		}
	case *Field:
		Inspect(n.Alias, f)
		Inspect(n.Name, f)
		for _, a := range n.Arguments {
			Inspect(a, f)
		}
		for _, d := range n.Directives {
			Inspect(d, f)
		}
		Inspect(n.SelectionSet, f)
	case *FragmentSpread:
		Inspect(n.FragmentName, f)
		for _, d := range n.Directives {
			Inspect(d, f)
		}
	case *InlineFragment:
		Inspect(n.TypeCondition, f)
		for _, d := range n.Directives {
			Inspect(d, f)
		}
		Inspect(n.SelectionSet, f)
	case *Argument:
		Inspect(n.Name, f)
		Inspect(n.Value, f)
	case *NamedType:
		Inspect(n.Name, f)
	case *Name, *BooleanValue, *IntValue, *StringValue, *EnumValue, *NullValue:
	default:
		panic(fmt.Errorf("unknown node type: %T", n))
	}

	f(nil)
}
