// Package assembler implements spec §4.6: turning the executor's flat, append-only production
// event log into the tree-shaped ResponseValue a request actually returns. It never builds the
// tree during resolution — the log is assembled in one pass afterward, so wave-based concurrency
// never has to touch a shared tree structure while fields are still being resolved.
package assembler

import (
	"fmt"
	"sort"

	"github.com/relgqlx/relgraph/executor"
	"github.com/relgqlx/relgraph/responsevalue"
)

// Assemble builds the response tree rooted at events[0] (always a NewRootObject, spec §3).
func Assemble(events []executor.Event) responsevalue.Value {
	if len(events) == 0 {
		panic("assembler: empty production event log")
	}
	idx := index(events)
	return idx.buildObject(0)
}

// eventIndex groups every event by the slot it attaches to, so buildObject/buildList never scan
// the whole log.
type eventIndex struct {
	events       []executor.Event
	objectFields map[int][]int // object slot index -> indices into events, unsorted
	listItems    map[int][]int // list slot index -> indices into events, unsorted
}

func index(events []executor.Event) *eventIndex {
	idx := &eventIndex{
		events:       events,
		objectFields: map[int][]int{},
		listItems:    map[int][]int{},
	}
	for i, e := range events {
		switch e.Kind {
		case executor.FieldNewObject, executor.FieldNewListOfObjects, executor.FieldNewListOfScalars,
			executor.FieldScalar, executor.FieldNewNull:
			idx.objectFields[e.ParentObjectIndex] = append(idx.objectFields[e.ParentObjectIndex], i)
		case executor.ListItemNewObject, executor.ListItemScalar:
			idx.listItems[e.ParentListIndex] = append(idx.listItems[e.ParentListIndex], i)
		}
	}
	return idx
}

// buildObject assembles the object whose slot is events[objectIndex], sorting its fields by
// FieldIndex (spec invariant: "field indices within a single object are unique and dense starting
// at 0") so the response never depends on fetch completion order.
func (idx *eventIndex) buildObject(objectIndex int) responsevalue.Value {
	fieldEventIdxs := append([]int(nil), idx.objectFields[objectIndex]...)
	sort.Slice(fieldEventIdxs, func(a, b int) bool {
		return idx.events[fieldEventIdxs[a]].FieldIndex < idx.events[fieldEventIdxs[b]].FieldIndex
	})

	m := &responsevalue.Map{}
	for _, i := range fieldEventIdxs {
		e := idx.events[i]
		m.Set(e.FieldKey, idx.valueOf(i, e))
	}
	return m
}

// buildList assembles the list whose slot is events[listIndex], sorting its items by ItemIndex
// (spec invariant: "list item indices are unique and dense starting at 0").
func (idx *eventIndex) buildList(listIndex int) responsevalue.Value {
	itemEventIdxs := append([]int(nil), idx.listItems[listIndex]...)
	sort.Slice(itemEventIdxs, func(a, b int) bool {
		return idx.events[itemEventIdxs[a]].ItemIndex < idx.events[itemEventIdxs[b]].ItemIndex
	})

	items := make([]responsevalue.Value, len(itemEventIdxs))
	for n, i := range itemEventIdxs {
		e := idx.events[i]
		items[n] = idx.valueOf(i, e)
	}
	return &responsevalue.List{Items: items}
}

// valueOf resolves the value a single event contributes: a leaf Value directly, or a recursive
// build keyed off the event's own index as a child slot.
func (idx *eventIndex) valueOf(eventIndex int, e executor.Event) responsevalue.Value {
	switch e.Kind {
	case executor.FieldScalar, executor.ListItemScalar:
		return e.Value
	case executor.FieldNewNull:
		return responsevalue.Null{}
	case executor.FieldNewObject, executor.ListItemNewObject:
		return idx.buildObject(eventIndex)
	case executor.FieldNewListOfObjects, executor.FieldNewListOfScalars:
		return idx.buildList(eventIndex)
	default:
		panic(fmt.Sprintf("assembler: unexpected event kind %v at a leaf position", e.Kind))
	}
}
