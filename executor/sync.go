package executor

// ExecuteSync is the fast path described in SPEC_FULL.md §3/§6 and the original source's
// `is_sync`/`*_sync` methods: when a Database reports IsSync, every dependency can be resolved on
// the calling goroutine, one field at a time, with no wave/coalescing machinery at all. It trades
// fetch coalescing (a sync adapter is assumed cheap enough, e.g. backed by an in-process cache or
// already-loaded snapshot, that a one-column-at-a-time round trip is not worth batching) for a
// much simpler call graph than Execute's wave loop.

import (
	"context"
	"fmt"

	"github.com/relgqlx/relgraph/dbiface"
	"github.com/relgqlx/relgraph/depvalue"
	"github.com/relgqlx/relgraph/planner"
	"github.com/relgqlx/relgraph/responsevalue"
	"github.com/relgqlx/relgraph/schema"
)

// ExecuteSync runs plans to completion against db's synchronous fast path, returning the same
// shape of production event log Execute does. It returns an error if db does not report IsSync.
func ExecuteSync(ctx context.Context, db dbiface.Database, s *schema.Schema, rootType string, plans []*planner.FieldPlan) ([]Event, error) {
	if !db.IsSync() {
		return nil, fmt.Errorf("executor: ExecuteSync requires a Database with IsSync() == true")
	}
	r := &run{ctx: ctx, db: db, s: s}
	r.events = append(r.events, Event{Kind: NewRootObject})
	if err := r.walkObjectSync(0, rootType, plans, depvalue.NewContext()); err != nil {
		return nil, err
	}
	return r.events, nil
}

func (r *run) walkObjectSync(objectIndex int, concreteType string, plans []*planner.FieldPlan, external *depvalue.Context) error {
	for i, fp := range plans {
		if err := r.walkFieldSync(fieldAttach(objectIndex, i, fp.ResponseKey), fp, concreteType, external); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) walkFieldSync(attach attachPoint, fp *planner.FieldPlan, concreteType string, external *depvalue.Context) error {
	def := fp.Def
	if def.Resolver == nil {
		r.emit(attach.event(FieldScalar, responsevalue.String{Value: concreteType}))
		return nil
	}

	internal := depvalue.NewContext()
	for _, dep := range def.Resolver.InternalDependencies {
		v, err := r.resolveDependencySync(dep, fp, external)
		if err != nil {
			return err
		}
		internal.Set(dep.Name, v)
	}
	return r.applyFieldSync(attach, fp, concreteType, external, internal)
}

// resolveDependencySync extends resolveSyncDependency with the two Database-backed sources,
// routed through dbiface.Database's *Sync methods rather than the async wave machinery.
func (r *run) resolveDependencySync(dep schema.InternalDependency, fp *planner.FieldPlan, external *depvalue.Context) (depvalue.Value, error) {
	if v, ok := r.resolveSyncDependency(dep, fp, external); ok {
		return v, nil
	}
	switch src := dep.Source.(type) {
	case schema.ColumnGet:
		id := externalID(external)
		v, err := r.db.GetColumnSync(src.Table, src.Column, id, src.IdColumn, dep.Type)
		if err != nil {
			return nil, fmt.Errorf("executor: fetching column %q.%q: %w", src.Table, src.Column, err)
		}
		return v, nil
	case schema.ColumnGetList:
		wheres := wheresFor(src.Wheres, external)
		values, err := r.db.GetColumnListSync(src.Table, src.Column, elementType(dep.Type), wheres)
		if err != nil {
			return nil, fmt.Errorf("executor: fetching column list %q.%q: %w", src.Table, src.Column, err)
		}
		return listFromElements(values, dep.Type), nil
	default:
		panic(fmt.Sprintf("executor: unhandled dependency source %T", dep.Source))
	}
}

// applyFieldSync mirrors applyField's resolver-variant switch, recursing via walkObjectSync
// instead of walkObject so every descendant stays on the synchronous path.
func (r *run) applyFieldSync(attach attachPoint, fp *planner.FieldPlan, concreteType string, external, internal *depvalue.Context) error {
	switch resolve := fp.Def.Resolver.Resolve.(type) {
	case schema.Carver:
		r.emit(attach.event(FieldScalar, resolve(external, internal)))
		return nil

	case schema.CarverList:
		values := resolve(external, internal)
		listIdx := r.emit(attach.event(FieldNewListOfScalars, nil))
		for i, v := range values {
			r.emit(listItemAttach(listIdx, i).event(ListItemScalar, v))
		}
		return nil

	case schema.Populator:
		childCtx := resolve(external, internal)
		objIdx := r.emit(attach.event(FieldNewObject, nil))
		childType := onlyChildType(fp)
		return r.walkObjectSync(objIdx, childType, fp.Children[childType], childCtx)

	case schema.PopulatorList:
		childCtxs := resolve(external, internal)
		listIdx := r.emit(attach.event(FieldNewListOfObjects, nil))
		childType := onlyChildType(fp)
		childPlans := fp.Children[childType]
		for i, cc := range childCtxs {
			itemIdx := r.emit(listItemAttach(listIdx, i).event(ListItemNewObject, nil))
			if err := r.walkObjectSync(itemIdx, childType, childPlans, cc); err != nil {
				return err
			}
		}
		return nil

	case schema.OptionalPopulator:
		childCtx, ok := resolve(external, internal)
		if !ok {
			r.emit(attach.event(FieldNewNull, nil))
			return nil
		}
		objIdx := r.emit(attach.event(FieldNewObject, nil))
		childType := onlyChildType(fp)
		return r.walkObjectSync(objIdx, childType, fp.Children[childType], childCtx)

	case schema.UnionOrInterfaceTypePopulator:
		childCtx, concrete := resolve(external, internal)
		objIdx := r.emit(attach.event(FieldNewObject, nil))
		return r.walkObjectSync(objIdx, concrete, fp.Children[concrete], childCtx)

	case schema.OptionalUnionOrInterfaceTypePopulator:
		childCtx, concrete, ok := resolve(external, internal)
		if !ok {
			r.emit(attach.event(FieldNewNull, nil))
			return nil
		}
		objIdx := r.emit(attach.event(FieldNewObject, nil))
		return r.walkObjectSync(objIdx, concrete, fp.Children[concrete], childCtx)

	default:
		panic(fmt.Sprintf("executor: unhandled resolver variant %T", resolve))
	}
}
