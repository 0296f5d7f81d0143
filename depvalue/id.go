package depvalue

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// IdKind discriminates the concrete representation an Id carries. The original Rust source
// (src/dependencies.rs) models ids as int, string, or uuid; spec.md folds these into a single
// opaque Id, but the three-variant shape is supplemented here (see SPEC_FULL.md) since real
// relational primary keys are rarely one uniform type across tables.
type IdKind int

const (
	IdInt IdKind = iota
	IdString
	IdUuid
)

// Id is a relational row identifier, one of an int64, a string, or a uuid.UUID.
type Id struct {
	kind IdKind
	i    int64
	s    string
	u    uuid.UUID
}

func IntId(v int64) Id      { return Id{kind: IdInt, i: v} }
func StringId(v string) Id  { return Id{kind: IdString, s: v} }
func UuidId(v uuid.UUID) Id { return Id{kind: IdUuid, u: v} }

func (id Id) Kind() IdKind { return id.kind }

// AsInt panics if the id is not an IdInt. Callers that coerce schema-declared Id dependencies
// know the underlying column type and are expected to call the matching accessor.
func (id Id) AsInt() int64 {
	if id.kind != IdInt {
		panic(fmt.Sprintf("depvalue: Id is not an int (kind %v)", id.kind))
	}
	return id.i
}

func (id Id) AsString() string {
	if id.kind != IdString {
		panic(fmt.Sprintf("depvalue: Id is not a string (kind %v)", id.kind))
	}
	return id.s
}

func (id Id) AsUuid() uuid.UUID {
	if id.kind != IdUuid {
		panic(fmt.Sprintf("depvalue: Id is not a uuid (kind %v)", id.kind))
	}
	return id.u
}

// String renders the id's underlying value, useful for where-clause binding and logging.
func (id Id) String() string {
	switch id.kind {
	case IdInt:
		return strconv.FormatInt(id.i, 10)
	case IdString:
		return id.s
	case IdUuid:
		return id.u.String()
	default:
		return ""
	}
}

func (id Id) Equal(other Id) bool {
	if id.kind != other.kind {
		return false
	}
	switch id.kind {
	case IdInt:
		return id.i == other.i
	case IdString:
		return id.s == other.s
	case IdUuid:
		return id.u == other.u
	default:
		return true
	}
}
