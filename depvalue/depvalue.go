// Package depvalue implements the Dependency Value Model from spec §3: a tagged DependencyType
// enum, a Value union mirroring it (plus List), and Context, the keyed container resolvers read
// external dependencies from and internal dependencies into.
package depvalue

import "time"

// Type is the declared type of a dependency, named by a schema's FieldResolver.
type Type int

const (
	Id Type = iota
	Int
	Float
	String
	OptionalInt
	OptionalFloat
	OptionalString
	OptionalId
	Timestamp
	Date
	ListOfIds
	ListOfStrings
)

func (t Type) String() string {
	switch t {
	case Id:
		return "Id"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case String:
		return "String"
	case OptionalInt:
		return "OptionalInt"
	case OptionalFloat:
		return "OptionalFloat"
	case OptionalString:
		return "OptionalString"
	case OptionalId:
		return "OptionalId"
	case Timestamp:
		return "Timestamp"
	case Date:
		return "Date"
	case ListOfIds:
		return "ListOfIds"
	case ListOfStrings:
		return "ListOfStrings"
	default:
		return "unknown"
	}
}

// Value is a runtime dependency value: one of the DependencyType variants below, plus List (used
// for ListOfIds/ListOfStrings results and for an argument coerced as a list of scalars).
type Value interface {
	isDependencyValue()
	// Type reports which DependencyType this value was produced for.
	Type() Type
}

type IdValue struct{ Value Id }

func (IdValue) isDependencyValue() {}
func (IdValue) Type() Type         { return Id }

type IntValue struct{ Value int64 }

func (IntValue) isDependencyValue() {}
func (IntValue) Type() Type         { return Int }

type FloatValue struct{ Value float64 }

func (FloatValue) isDependencyValue() {}
func (FloatValue) Type() Type         { return Float }

type StringValue struct{ Value string }

func (StringValue) isDependencyValue() {}
func (StringValue) Type() Type         { return String }

// OptionalIntValue, OptionalFloatValue, OptionalStringValue, and OptionalIdValue carry a nil
// pointer for SQL NULL.
type OptionalIntValue struct{ Value *int64 }

func (OptionalIntValue) isDependencyValue() {}
func (OptionalIntValue) Type() Type         { return OptionalInt }

type OptionalFloatValue struct{ Value *float64 }

func (OptionalFloatValue) isDependencyValue() {}
func (OptionalFloatValue) Type() Type         { return OptionalFloat }

type OptionalStringValue struct{ Value *string }

func (OptionalStringValue) isDependencyValue() {}
func (OptionalStringValue) Type() Type         { return OptionalString }

type OptionalIdValue struct{ Value *Id }

func (OptionalIdValue) isDependencyValue() {}
func (OptionalIdValue) Type() Type         { return OptionalId }

// TimestampValue carries a full instant; DateValue carries a calendar date with the time-of-day
// component meaningless (truncated to midnight UTC). The original Rust source keeps these
// distinct rather than collapsing Date into Timestamp (see SPEC_FULL.md supplemented features).
type TimestampValue struct{ Value time.Time }

func (TimestampValue) isDependencyValue() {}
func (TimestampValue) Type() Type         { return Timestamp }

type DateValue struct{ Value time.Time }

func (DateValue) isDependencyValue() {}
func (DateValue) Type() Type         { return Date }

// ListValue backs both ListOfIds and ListOfStrings; Elem reports which.
type ListValue struct {
	Elem   Type // Id or String
	Ids    []Id
	Values []string
}

func (ListValue) isDependencyValue() {}
func (v ListValue) Type() Type {
	if v.Elem == Id {
		return ListOfIds
	}
	return ListOfStrings
}

func NewIdsList(ids []Id) ListValue        { return ListValue{Elem: Id, Ids: ids} }
func NewStringsList(ss []string) ListValue { return ListValue{Elem: String, Values: ss} }
