package querycache

// The ast package's Document is a graph of interfaces (Definition, Selection, Value) that
// msgpack's reflection-based Marshal/Unmarshal (the same top-level Marshal/Unmarshal call the
// teacher stack uses for pagination cursors) cannot round-trip on its own — it has no declared
// concrete type to decode an interface field into. wireDocument is a flat, interface-free mirror
// of exactly the AST shapes the planner needs, tagged with an explicit Kind byte per polymorphic
// slot; toWire/fromWire do the (de)polymorphization, and msgpack only ever sees plain structs.

import (
	"fmt"

	"github.com/relgqlx/relgraph/ast"
)

const (
	defOperation byte = iota
	defFragment
)

const (
	selField byte = iota
	selFragmentSpread
	selInlineFragment
)

const (
	valInt byte = iota
	valString
	valBoolean
	valNull
	valEnum
)

type wireDocument struct {
	Definitions []wireDefinition
}

type wireDefinition struct {
	Kind      byte
	Operation wireOperationDefinition
	Fragment  wireFragmentDefinition
}

type wireOperationDefinition struct {
	HasOperationType bool
	OperationType    string
	HasName          bool
	Name             string
	Directives       []wireDirective
	SelectionSet     []wireSelection
}

type wireFragmentDefinition struct {
	Name          string
	TypeCondition string
	Directives    []wireDirective
	SelectionSet  []wireSelection
}

type wireSelection struct {
	Kind           byte
	Field          wireField
	FragmentSpread wireFragmentSpread
	InlineFragment wireInlineFragment
}

type wireField struct {
	HasAlias     bool
	Alias        string
	Name         string
	Arguments    []wireArgument
	Directives   []wireDirective
	HasSelection bool
	SelectionSet []wireSelection
}

type wireFragmentSpread struct {
	Name       string
	Directives []wireDirective
}

type wireInlineFragment struct {
	HasTypeCondition bool
	TypeCondition    string
	Directives       []wireDirective
	SelectionSet     []wireSelection
}

type wireArgument struct {
	Name  string
	Value wireValue
}

type wireDirective struct {
	Name      string
	Arguments []wireArgument
}

type wireValue struct {
	Kind        byte
	IntValue    string
	StringValue string
	BoolValue   bool
	EnumValue   string
}

func toWire(doc *ast.Document) wireDocument {
	w := wireDocument{Definitions: make([]wireDefinition, len(doc.Definitions))}
	for i, d := range doc.Definitions {
		w.Definitions[i] = defToWire(d)
	}
	return w
}

func defToWire(d ast.Definition) wireDefinition {
	switch n := d.(type) {
	case *ast.OperationDefinition:
		wd := wireOperationDefinition{Directives: directivesToWire(n.Directives), SelectionSet: selectionsToWire(n.SelectionSet.Selections)}
		if n.OperationType != nil {
			wd.HasOperationType, wd.OperationType = true, n.OperationType.Value
		}
		if n.Name != nil {
			wd.HasName, wd.Name = true, n.Name.Name
		}
		return wireDefinition{Kind: defOperation, Operation: wd}
	case *ast.FragmentDefinition:
		return wireDefinition{Kind: defFragment, Fragment: wireFragmentDefinition{
			Name:          n.Name.Name,
			TypeCondition: n.TypeCondition.Name.Name,
			Directives:    directivesToWire(n.Directives),
			SelectionSet:  selectionsToWire(n.SelectionSet.Selections),
		}}
	default:
		panic(fmt.Sprintf("querycache: unhandled definition type %T", d))
	}
}

func selectionsToWire(sels []ast.Selection) []wireSelection {
	out := make([]wireSelection, len(sels))
	for i, s := range sels {
		out[i] = selectionToWire(s)
	}
	return out
}

func selectionToWire(s ast.Selection) wireSelection {
	switch n := s.(type) {
	case *ast.Field:
		wf := wireField{Name: n.Name.Name, Arguments: argumentsToWire(n.Arguments), Directives: directivesToWire(n.Directives)}
		if n.Alias != nil {
			wf.HasAlias, wf.Alias = true, n.Alias.Name
		}
		if n.SelectionSet != nil {
			wf.HasSelection, wf.SelectionSet = true, selectionsToWire(n.SelectionSet.Selections)
		}
		return wireSelection{Kind: selField, Field: wf}
	case *ast.FragmentSpread:
		return wireSelection{Kind: selFragmentSpread, FragmentSpread: wireFragmentSpread{
			Name: n.FragmentName.Name, Directives: directivesToWire(n.Directives),
		}}
	case *ast.InlineFragment:
		wi := wireInlineFragment{Directives: directivesToWire(n.Directives), SelectionSet: selectionsToWire(n.SelectionSet.Selections)}
		if n.TypeCondition != nil {
			wi.HasTypeCondition, wi.TypeCondition = true, n.TypeCondition.Name.Name
		}
		return wireSelection{Kind: selInlineFragment, InlineFragment: wi}
	default:
		panic(fmt.Sprintf("querycache: unhandled selection type %T", s))
	}
}

func argumentsToWire(args []*ast.Argument) []wireArgument {
	out := make([]wireArgument, len(args))
	for i, a := range args {
		out[i] = wireArgument{Name: a.Name.Name, Value: valueToWire(a.Value)}
	}
	return out
}

func directivesToWire(dirs []*ast.Directive) []wireDirective {
	out := make([]wireDirective, len(dirs))
	for i, d := range dirs {
		out[i] = wireDirective{Name: d.Name.Name, Arguments: argumentsToWire(d.Arguments)}
	}
	return out
}

func valueToWire(v ast.Value) wireValue {
	switch n := v.(type) {
	case *ast.IntValue:
		return wireValue{Kind: valInt, IntValue: n.Value}
	case *ast.StringValue:
		return wireValue{Kind: valString, StringValue: n.Value}
	case *ast.BooleanValue:
		return wireValue{Kind: valBoolean, BoolValue: n.Value}
	case *ast.NullValue:
		return wireValue{Kind: valNull}
	case *ast.EnumValue:
		return wireValue{Kind: valEnum, EnumValue: n.Value}
	default:
		panic(fmt.Sprintf("querycache: unhandled value type %T", v))
	}
}

func fromWire(w wireDocument) *ast.Document {
	defs := make([]ast.Definition, len(w.Definitions))
	for i, d := range w.Definitions {
		defs[i] = defFromWire(d)
	}
	return &ast.Document{Definitions: defs}
}

func defFromWire(w wireDefinition) ast.Definition {
	switch w.Kind {
	case defOperation:
		n := &ast.OperationDefinition{SelectionSet: &ast.SelectionSet{Selections: selectionsFromWire(w.Operation.SelectionSet)}, Directives: directivesFromWire(w.Operation.Directives)}
		if w.Operation.HasOperationType {
			n.OperationType = &ast.OperationType{Value: w.Operation.OperationType}
		}
		if w.Operation.HasName {
			n.Name = &ast.Name{Name: w.Operation.Name}
		}
		return n
	case defFragment:
		return &ast.FragmentDefinition{
			Name:          &ast.Name{Name: w.Fragment.Name},
			TypeCondition: &ast.NamedType{Name: &ast.Name{Name: w.Fragment.TypeCondition}},
			Directives:    directivesFromWire(w.Fragment.Directives),
			SelectionSet:  &ast.SelectionSet{Selections: selectionsFromWire(w.Fragment.SelectionSet)},
		}
	default:
		panic(fmt.Sprintf("querycache: unhandled wire definition kind %d", w.Kind))
	}
}

func selectionsFromWire(ws []wireSelection) []ast.Selection {
	out := make([]ast.Selection, len(ws))
	for i, w := range ws {
		out[i] = selectionFromWire(w)
	}
	return out
}

func selectionFromWire(w wireSelection) ast.Selection {
	switch w.Kind {
	case selField:
		f := &ast.Field{
			Name:       &ast.Name{Name: w.Field.Name},
			Arguments:  argumentsFromWire(w.Field.Arguments),
			Directives: directivesFromWire(w.Field.Directives),
		}
		if w.Field.HasAlias {
			f.Alias = &ast.Name{Name: w.Field.Alias}
		}
		if w.Field.HasSelection {
			f.SelectionSet = &ast.SelectionSet{Selections: selectionsFromWire(w.Field.SelectionSet)}
		}
		return f
	case selFragmentSpread:
		return &ast.FragmentSpread{
			FragmentName: &ast.Name{Name: w.FragmentSpread.Name},
			Directives:   directivesFromWire(w.FragmentSpread.Directives),
		}
	case selInlineFragment:
		n := &ast.InlineFragment{
			Directives:   directivesFromWire(w.InlineFragment.Directives),
			SelectionSet: &ast.SelectionSet{Selections: selectionsFromWire(w.InlineFragment.SelectionSet)},
		}
		if w.InlineFragment.HasTypeCondition {
			n.TypeCondition = &ast.NamedType{Name: &ast.Name{Name: w.InlineFragment.TypeCondition}}
		}
		return n
	default:
		panic(fmt.Sprintf("querycache: unhandled wire selection kind %d", w.Kind))
	}
}

func argumentsFromWire(ws []wireArgument) []*ast.Argument {
	out := make([]*ast.Argument, len(ws))
	for i, w := range ws {
		out[i] = &ast.Argument{Name: &ast.Name{Name: w.Name}, Value: valueFromWire(w.Value)}
	}
	return out
}

func directivesFromWire(ws []wireDirective) []*ast.Directive {
	out := make([]*ast.Directive, len(ws))
	for i, w := range ws {
		out[i] = &ast.Directive{Name: &ast.Name{Name: w.Name}, Arguments: argumentsFromWire(w.Arguments)}
	}
	return out
}

func valueFromWire(w wireValue) ast.Value {
	switch w.Kind {
	case valInt:
		return &ast.IntValue{Value: w.IntValue}
	case valString:
		return &ast.StringValue{Value: w.StringValue}
	case valBoolean:
		return &ast.BooleanValue{Value: w.BoolValue}
	case valNull:
		return &ast.NullValue{}
	case valEnum:
		return &ast.EnumValue{Value: w.EnumValue}
	default:
		panic(fmt.Sprintf("querycache: unhandled wire value kind %d", w.Kind))
	}
}
