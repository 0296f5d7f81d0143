package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relgqlx/relgraph/ast"
)

func TestParseDocument_AnonymousQuery(t *testing.T) {
	doc, errs := ParseDocument([]byte(`{ node(id: 1) { id name } }`), false)
	require.Empty(t, errs)
	require.Len(t, doc.Definitions, 1)

	op, ok := doc.Definitions[0].(*ast.OperationDefinition)
	require.True(t, ok)
	assert.Nil(t, op.OperationType)
	require.Len(t, op.SelectionSet.Selections, 1)

	field := op.SelectionSet.Selections[0].(*ast.Field)
	assert.Equal(t, "node", field.Name.Name)
	require.Len(t, field.Arguments, 1)
	assert.Equal(t, "id", field.Arguments[0].Name.Name)
	assert.Equal(t, &ast.IntValue{Value: "1"}, stripPositions(field.Arguments[0].Value).(*ast.IntValue))
	require.Len(t, field.SelectionSet.Selections, 2)
}

func TestParseDocument_NamedQueryWithOperationType(t *testing.T) {
	doc, errs := ParseDocument([]byte(`query GetNode { node { id } }`), false)
	require.Empty(t, errs)
	op := doc.Definitions[0].(*ast.OperationDefinition)
	require.NotNil(t, op.OperationType)
	assert.Equal(t, "query", op.OperationType.Value)
	require.NotNil(t, op.Name)
	assert.Equal(t, "GetNode", op.Name.Name)
}

func TestParseDocument_Alias(t *testing.T) {
	doc, errs := ParseDocument([]byte(`{ n: node { id } }`), false)
	require.Empty(t, errs)
	op := doc.Definitions[0].(*ast.OperationDefinition)
	field := op.SelectionSet.Selections[0].(*ast.Field)
	require.NotNil(t, field.Alias)
	assert.Equal(t, "n", field.Alias.Name)
	assert.Equal(t, "node", field.Name.Name)
}

func TestParseDocument_FragmentSpreadAndInlineFragment(t *testing.T) {
	src := `
		{ node { ...frag ... on Named { name } } }
		fragment frag on Node { id }
	`
	doc, errs := ParseDocument([]byte(src), false)
	require.Empty(t, errs)
	require.Len(t, doc.Definitions, 2)

	op := doc.Definitions[0].(*ast.OperationDefinition)
	field := op.SelectionSet.Selections[0].(*ast.Field)
	require.Len(t, field.SelectionSet.Selections, 2)

	spread, ok := field.SelectionSet.Selections[0].(*ast.FragmentSpread)
	require.True(t, ok)
	assert.Equal(t, "frag", spread.FragmentName.Name)

	inline, ok := field.SelectionSet.Selections[1].(*ast.InlineFragment)
	require.True(t, ok)
	require.NotNil(t, inline.TypeCondition)
	assert.Equal(t, "Named", inline.TypeCondition.Name.Name)

	frag := doc.Definitions[1].(*ast.FragmentDefinition)
	assert.Equal(t, "frag", frag.Name.Name)
	assert.Equal(t, "Node", frag.TypeCondition.Name.Name)
}

func TestParseDocument_Directives(t *testing.T) {
	doc, errs := ParseDocument([]byte(`{ node { name @skip(if: true) } }`), false)
	require.Empty(t, errs)
	op := doc.Definitions[0].(*ast.OperationDefinition)
	field := op.SelectionSet.Selections[0].(*ast.Field)
	name := field.SelectionSet.Selections[0].(*ast.Field)
	require.Len(t, name.Directives, 1)
	assert.Equal(t, "skip", name.Directives[0].Name.Name)
	assert.Equal(t, "if", name.Directives[0].Arguments[0].Name.Name)
}

func TestParseDocument_ValueLiterals(t *testing.T) {
	doc, errs := ParseDocument([]byte(`{ node(a: 1, b: "s", c: true, d: false, e: null, f: RED) }`), false)
	require.Empty(t, errs)
	op := doc.Definitions[0].(*ast.OperationDefinition)
	field := op.SelectionSet.Selections[0].(*ast.Field)
	args := map[string]ast.Value{}
	for _, a := range field.Arguments {
		args[a.Name.Name] = a.Value
	}
	assert.IsType(t, &ast.IntValue{}, args["a"])
	assert.IsType(t, &ast.StringValue{}, args["b"])
	assert.Equal(t, true, args["c"].(*ast.BooleanValue).Value)
	assert.Equal(t, false, args["d"].(*ast.BooleanValue).Value)
	assert.IsType(t, &ast.NullValue{}, args["e"])
	assert.Equal(t, "RED", args["f"].(*ast.EnumValue).Value)
}

func TestParseDocument_EmptySelectionSetIsRejected(t *testing.T) {
	_, errs := ParseDocument([]byte(`{ node { } }`), false)
	require.NotEmpty(t, errs)
}

func TestParseDocument_EmptyDocumentIsRejected(t *testing.T) {
	_, errs := ParseDocument([]byte(``), false)
	require.NotEmpty(t, errs)
}

func TestParseDocument_EmptyArgumentListIsRejected(t *testing.T) {
	_, errs := ParseDocument([]byte(`{ node() }`), false)
	require.NotEmpty(t, errs)
}

func TestParseDocument_PositionsArePopulatedOnlyWhenRequested(t *testing.T) {
	doc, errs := ParseDocument([]byte("{\n  node { id }\n}"), true)
	require.Empty(t, errs)
	op := doc.Definitions[0].(*ast.OperationDefinition)
	field := op.SelectionSet.Selections[0].(*ast.Field)
	assert.True(t, field.Name.NamePosition.IsValid())
	assert.Equal(t, 2, field.Name.NamePosition.Line)

	doc2, _ := ParseDocument([]byte("{\n  node { id }\n}"), false)
	op2 := doc2.Definitions[0].(*ast.OperationDefinition)
	field2 := op2.SelectionSet.Selections[0].(*ast.Field)
	assert.False(t, field2.Name.NamePosition.IsValid())
}

func TestParseDocument_SyntaxErrorHasLocationWhenTrackingPositions(t *testing.T) {
	_, errs := ParseDocument([]byte("{ node( }"), true)
	require.NotEmpty(t, errs)
	assert.True(t, errs[0].Location.IsValid())
}

// stripPositions clears position fields so value-shape assertions don't need to hardcode offsets.
func stripPositions(v ast.Value) ast.Value {
	switch n := v.(type) {
	case *ast.IntValue:
		return &ast.IntValue{Value: n.Value}
	default:
		return v
	}
}
