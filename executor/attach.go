package executor

import "github.com/relgqlx/relgraph/responsevalue"

// attachPoint names where one field's (or list item's) outcome event is appended: either as a
// field of an object slot, or as an item of a list slot. Exactly one of the two shapes is used at
// a time; Go has no sum type, so the unused half simply stays zero.
type attachPoint struct {
	parentObjectIndex int
	fieldIndex        int
	fieldKey          string

	isListItem      bool
	parentListIndex int
	itemIndex       int
}

func fieldAttach(parentObjectIndex, fieldIndex int, fieldKey string) attachPoint {
	return attachPoint{parentObjectIndex: parentObjectIndex, fieldIndex: fieldIndex, fieldKey: fieldKey}
}

func listItemAttach(parentListIndex, itemIndex int) attachPoint {
	return attachPoint{isListItem: true, parentListIndex: parentListIndex, itemIndex: itemIndex}
}

func (a attachPoint) event(kind EventKind, value responsevalue.Value) Event {
	if a.isListItem {
		return Event{Kind: kind, ParentListIndex: a.parentListIndex, ItemIndex: a.itemIndex, Value: value}
	}
	return Event{Kind: kind, ParentObjectIndex: a.parentObjectIndex, FieldIndex: a.fieldIndex, FieldKey: a.fieldKey, Value: value}
}
