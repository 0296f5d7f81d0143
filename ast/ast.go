// Package ast defines the syntax tree produced by the parser, per spec §3/§4.2.
package ast

import "github.com/relgqlx/relgraph/token"

// Node is any AST element that can report its source position.
type Node interface {
	Position() token.Position
}

// Document is a parsed query document: an ordered list of operation and fragment definitions.
type Document struct {
	Definitions []Definition
}

func (*Document) Position() token.Position { return token.Position{Line: 1, Column: 1} }

// Definition is an OperationDefinition or FragmentDefinition.
type Definition interface {
	Node
}

// OperationDefinition is either an anonymous query (bare selection set) or a named operation.
type OperationDefinition struct {
	OperationType *OperationType // nil for the anonymous query shorthand
	Name          *Name
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

func (n *OperationDefinition) Position() token.Position {
	if n.OperationType != nil {
		return n.OperationType.Position()
	}
	return n.SelectionSet.Position()
}

// OperationType is "query", "mutation", or "subscription". Only query operations are executed
// (spec §1 Non-goals); the others are parsed and validated so the engine can report a clear error
// rather than a parse failure.
type OperationType struct {
	Value         string
	ValuePosition token.Position
}

func (n *OperationType) Position() token.Position { return n.ValuePosition }

func (t *OperationType) IsValid() bool {
	switch t.Value {
	case "query", "mutation", "subscription":
		return true
	}
	return false
}

// FragmentDefinition is `fragment <name> on <TypeName> { ... }`.
type FragmentDefinition struct {
	Fragment      token.Position
	Name          *Name
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

func (n *FragmentDefinition) Position() token.Position { return n.Fragment }

// Type is a NamedType, ListType, or NonNullType reference.
type Type interface {
	Node
}

type ListType struct {
	Type    Type
	Opening token.Position
}

func (n *ListType) Position() token.Position { return n.Opening }

type NonNullType struct {
	Type Type
	Bang token.Position
}

func (n *NonNullType) Position() token.Position { return n.Type.Position() }

type Directive struct {
	Name      *Name
	Arguments []*Argument
	At        token.Position
}

func (n *Directive) Position() token.Position { return n.At }

type SelectionSet struct {
	Selections []Selection
	Opening    token.Position
	Closing    token.Position
}

func (n *SelectionSet) Position() token.Position { return n.Opening }

// Selection is a Field, FragmentSpread, or InlineFragment.
type Selection interface {
	Node
	SelectionDirectives() []*Directive
}

type Field struct {
	Alias        *Name
	Name         *Name
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet *SelectionSet
}

func (n *Field) Position() token.Position {
	if n.Alias != nil {
		return n.Alias.Position()
	}
	return n.Name.Position()
}

func (n *Field) SelectionDirectives() []*Directive { return n.Directives }

// ResponseKey returns the alias if present, else the field name (spec §3 FieldPlan / Glossary).
func (n *Field) ResponseKey() string {
	if n.Alias != nil {
		return n.Alias.Name
	}
	return n.Name.Name
}

type FragmentSpread struct {
	FragmentName *Name
	Directives   []*Directive
	Ellipsis     token.Position
}

func (n *FragmentSpread) Position() token.Position          { return n.Ellipsis }
func (n *FragmentSpread) SelectionDirectives() []*Directive { return n.Directives }

type InlineFragment struct {
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
	Ellipsis      token.Position
}

func (n *InlineFragment) Position() token.Position          { return n.Ellipsis }
func (n *InlineFragment) SelectionDirectives() []*Directive { return n.Directives }

type Argument struct {
	Name  *Name
	Value Value
}

func (n *Argument) Position() token.Position { return n.Name.Position() }

type Name struct {
	Name         string
	NamePosition token.Position
}

func (n *Name) Position() token.Position { return n.NamePosition }

type NamedType struct {
	Name *Name
}

func (n *NamedType) Position() token.Position { return n.Name.Position() }

// Value is the restricted argument-value grammar from spec §4.2: Int, String, Null, Bool, or a
// bare EnumVariant name. Unlike the teacher, there are no variables, list values, or object
// values — the spec's argument grammar doesn't have them.
type Value interface {
	Node
	IsValue() bool
}

type IntValue struct {
	Value   string
	Literal token.Position
}

func (*IntValue) IsValue() bool              { return true }
func (n *IntValue) Position() token.Position { return n.Literal }

type StringValue struct {
	Value   string // unescaped
	Literal token.Position
}

func (*StringValue) IsValue() bool              { return true }
func (n *StringValue) Position() token.Position { return n.Literal }

type BooleanValue struct {
	Value   bool
	Literal token.Position
}

func (*BooleanValue) IsValue() bool              { return true }
func (n *BooleanValue) Position() token.Position { return n.Literal }

type NullValue struct {
	Literal token.Position
}

func (*NullValue) IsValue() bool              { return true }
func (n *NullValue) Position() token.Position { return n.Literal }

func IsNullValue(v Value) bool {
	_, ok := v.(*NullValue)
	return ok
}

type EnumValue struct {
	Value   string
	Literal token.Position
}

func (*EnumValue) IsValue() bool              { return true }
func (n *EnumValue) Position() token.Position { return n.Literal }
