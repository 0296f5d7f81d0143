package executor

import "github.com/relgqlx/relgraph/responsevalue"

// EventKind tags one entry of the production log (spec §3, §4.5, §4.6).
type EventKind int

const (
	// NewRootObject opens the single root object slot; always the first event, at index 0.
	NewRootObject EventKind = iota
	// FieldNewObject opens a new object slot for a composite field; its own index is the slot id
	// later FieldNew*/FieldScalar/FieldNewNull events reference as ParentObjectIndex.
	FieldNewObject
	// FieldNewListOfObjects opens a list-of-objects slot; its own index is the slot id later
	// ListItemNewObject events reference as ParentListIndex.
	FieldNewListOfObjects
	// FieldNewListOfScalars opens a list-of-scalars slot; its own index is the slot id later
	// ListItemScalar events reference as ParentListIndex.
	FieldNewListOfScalars
	// ListItemNewObject opens an object slot for one element of a list-of-objects; its own index
	// is the slot id later field events reference as ParentObjectIndex.
	ListItemNewObject
	// FieldScalar is a leaf: a scalar/enum field's value, attached directly to its parent object.
	FieldScalar
	// ListItemScalar is a leaf: one element of a list-of-scalars.
	ListItemScalar
	// FieldNewNull marks a composite field whose Resolver yielded nothing (OptionalPopulator /
	// OptionalUnionOrInterfaceTypePopulator returning ok=false).
	FieldNewNull
)

// Event is one append-only entry of the production log. Which fields are meaningful depends on
// Kind: field-attached events (FieldNewObject, FieldNewListOfObjects, FieldNewListOfScalars,
// FieldScalar, FieldNewNull) carry ParentObjectIndex/FieldIndex/FieldKey; list-item events
// (ListItemNewObject, ListItemScalar) carry ParentListIndex/ItemIndex. Scalar-carrying events
// (FieldScalar, ListItemScalar) carry Value.
type Event struct {
	Kind EventKind

	ParentObjectIndex int
	FieldIndex        int
	FieldKey          string

	ParentListIndex int
	ItemIndex       int

	Value responsevalue.Value
}

// opensSlot reports whether this event's own index in the log is itself referenced by later
// events (spec §3 "every non-scalar event creates a slot").
func (e Event) opensSlot() bool {
	switch e.Kind {
	case NewRootObject, FieldNewObject, FieldNewListOfObjects, FieldNewListOfScalars, ListItemNewObject:
		return true
	default:
		return false
	}
}
