package executor

import (
	"fmt"

	"github.com/relgqlx/relgraph/ast"
	"github.com/relgqlx/relgraph/depvalue"
)

// coerceArgumentValue turns a literal AST value into the DependencyValue a FieldResolver declared
// (spec §4.5 "Argument coercion"). The validator already proved the argument exists and has a
// required-ness consistent with the schema (checks 9/10); any further mismatch here — an Int
// literal against a declared String, say — is a schema bug, not a request error, and panics rather
// than surfacing as a response Error.
func coerceArgumentValue(v ast.Value, t depvalue.Type) depvalue.Value {
	if ast.IsNullValue(v) {
		switch t {
		case depvalue.OptionalInt:
			return depvalue.OptionalIntValue{}
		case depvalue.OptionalFloat:
			return depvalue.OptionalFloatValue{}
		case depvalue.OptionalString:
			return depvalue.OptionalStringValue{}
		case depvalue.OptionalId:
			return depvalue.OptionalIdValue{}
		default:
			panic(fmt.Sprintf("executor: null literal coerced to non-optional dependency type %s", t))
		}
	}

	switch t {
	case depvalue.Int:
		return depvalue.IntValue{Value: mustInt(v)}
	case depvalue.OptionalInt:
		i := mustInt(v)
		return depvalue.OptionalIntValue{Value: &i}
	case depvalue.Float:
		return depvalue.FloatValue{Value: mustFloat(v)}
	case depvalue.OptionalFloat:
		f := mustFloat(v)
		return depvalue.OptionalFloatValue{Value: &f}
	case depvalue.String:
		return depvalue.StringValue{Value: mustString(v)}
	case depvalue.OptionalString:
		s := mustString(v)
		return depvalue.OptionalStringValue{Value: &s}
	case depvalue.Id:
		return depvalue.IdValue{Value: mustID(v)}
	case depvalue.OptionalId:
		id := mustID(v)
		return depvalue.OptionalIdValue{Value: &id}
	default:
		panic(fmt.Sprintf("executor: no argument coercion defined for dependency type %s", t))
	}
}

func mustInt(v ast.Value) int64 {
	n, ok := v.(*ast.IntValue)
	if !ok {
		panic(fmt.Sprintf("executor: expected an Int literal, got %T", v))
	}
	var i int64
	if _, err := fmt.Sscanf(n.Value, "%d", &i); err != nil {
		panic(fmt.Sprintf("executor: malformed Int literal %q: %v", n.Value, err))
	}
	return i
}

func mustFloat(v ast.Value) float64 {
	var f float64
	switch n := v.(type) {
	case *ast.IntValue:
		if _, err := fmt.Sscanf(n.Value, "%g", &f); err != nil {
			panic(fmt.Sprintf("executor: malformed numeric literal %q: %v", n.Value, err))
		}
	default:
		panic(fmt.Sprintf("executor: expected a numeric literal, got %T", v))
	}
	return f
}

func mustString(v ast.Value) string {
	switch n := v.(type) {
	case *ast.StringValue:
		return n.Value
	case *ast.EnumValue:
		return n.Value
	default:
		panic(fmt.Sprintf("executor: expected a String or enum literal, got %T", v))
	}
}

func mustID(v ast.Value) depvalue.Id {
	switch n := v.(type) {
	case *ast.IntValue:
		return depvalue.IntId(mustInt(v))
	case *ast.StringValue:
		return depvalue.StringId(n.Value)
	default:
		panic(fmt.Sprintf("executor: expected an Int or String literal for an Id argument, got %T", v))
	}
}
