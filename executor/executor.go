// Package executor implements spec §4.5: it walks a FieldPlan tree against a Database, emitting
// the flat ProductionEvent log the assembler later turns into a response tree. Synchronously
// resolvable fields (arguments, literals, introspection) are resolved and recursed into
// immediately; fields needing a Database round trip are deferred into a wave, and every wave's
// fetches are coalesced and issued together before any of that wave's continuations run.
package executor

import (
	"context"
	"fmt"

	"github.com/relgqlx/relgraph/ast"
	"github.com/relgqlx/relgraph/dbiface"
	"github.com/relgqlx/relgraph/depvalue"
	"github.com/relgqlx/relgraph/planner"
	"github.com/relgqlx/relgraph/responsevalue"
	"github.com/relgqlx/relgraph/schema"
)

// job is a field whose resolution is waiting on one or more Database fetches.
type job struct {
	attach       attachPoint
	plan         *planner.FieldPlan
	concreteType string
	external     *depvalue.Context
	internal     *depvalue.Context
	pending      []schema.InternalDependency
}

// run carries the state of one Execute call: the append-only event log and the Database it fetches
// against. Only runWave's fetch phase is concurrent; event emission and continuation application
// always happen on the calling goroutine, in job order, so the log never needs a mutex.
type run struct {
	ctx    context.Context
	db     dbiface.Database
	s      *schema.Schema
	events []Event
}

// Execute runs plans (the root concrete type's FieldPlan slice, from planner.Plan) to completion
// and returns the production event log, or an error if a Database fetch failed (spec §7: Database
// errors are fatal to the whole request).
func Execute(ctx context.Context, db dbiface.Database, s *schema.Schema, rootType string, plans []*planner.FieldPlan) ([]Event, error) {
	r := &run{ctx: ctx, db: db, s: s}
	r.events = append(r.events, Event{Kind: NewRootObject})

	wave := r.walkObject(0, rootType, plans, depvalue.NewContext())
	for len(wave) > 0 {
		next, err := r.runWave(wave)
		if err != nil {
			return nil, err
		}
		wave = next
	}
	return r.events, nil
}

func (r *run) emit(e Event) int {
	idx := len(r.events)
	r.events = append(r.events, e)
	return idx
}

// walkObject resolves every field plans at objectIndex/concreteType against external, returning
// the jobs deferred to the next wave.
func (r *run) walkObject(objectIndex int, concreteType string, plans []*planner.FieldPlan, external *depvalue.Context) []*job {
	var wave []*job
	for i, fp := range plans {
		wave = append(wave, r.walkField(fieldAttach(objectIndex, i, fp.ResponseKey), fp, concreteType, external)...)
	}
	return wave
}

// walkField resolves one field: immediately if every internal dependency is synchronously
// resolvable (or there are none), else it is deferred into a job.
func (r *run) walkField(attach attachPoint, fp *planner.FieldPlan, concreteType string, external *depvalue.Context) []*job {
	def := fp.Def
	if def == nil {
		panic("executor: field plan has no FieldDef (validator should have rejected this request)")
	}
	if def.Resolver == nil {
		// __typename: the executor already knows the concrete type at this position.
		r.emit(attach.event(FieldScalar, responsevalue.String{Value: concreteType}))
		return nil
	}

	internal := depvalue.NewContext()
	var pending []schema.InternalDependency
	for _, dep := range def.Resolver.InternalDependencies {
		v, ok := r.resolveSyncDependency(dep, fp, external)
		if ok {
			internal.Set(dep.Name, v)
		} else {
			pending = append(pending, dep)
		}
	}

	if len(pending) == 0 {
		return r.applyField(attach, fp, concreteType, external, internal)
	}
	return []*job{{
		attach: attach, plan: fp, concreteType: concreteType,
		external: external, internal: internal, pending: pending,
	}}
}

// resolveSyncDependency resolves the dependency sources that never need a Database round trip
// (spec §4.5; DependencySource.CanResolveSynchronously). ColumnGet/ColumnGetList always return
// ok=false here — those go through the wave's fetch phase instead.
func (r *run) resolveSyncDependency(dep schema.InternalDependency, fp *planner.FieldPlan, external *depvalue.Context) (depvalue.Value, bool) {
	switch src := dep.Source.(type) {
	case schema.ArgumentSource:
		arg := findArgument(fp.Arguments, src.Name)
		if arg == nil {
			return absentOptional(dep.Type), true
		}
		return coerceArgumentValue(arg.Value, dep.Type), true
	case schema.LiteralSource:
		return src.Value, true
	case schema.IntrospectionInterfacesSource:
		name := external.MustGet("name").(depvalue.StringValue).Value
		return depvalue.NewStringsList(schema.InterfaceNamesOf(r.s, name)), true
	case schema.IntrospectionPossibleTypesSource:
		name := external.MustGet("name").(depvalue.StringValue).Value
		return depvalue.NewStringsList(schema.PossibleTypeNamesOf(r.s, name)), true
	default:
		return nil, false
	}
}

// absentOptional is the zero value for an Optional* dependency type whose argument was not
// supplied. The validator guarantees a NonNull argument is always present (check 10); an absent
// Optional argument is the normal "not given" case, not an error.
func absentOptional(t depvalue.Type) depvalue.Value {
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
		panic(fmt.Sprintf("executor: argument-sourced dependency of non-optional type %s was not supplied", t))
	}
}

func findArgument(args []*ast.Argument, name string) *ast.Argument {
	for _, a := range args {
		if a.Name.Name == name {
			return a
		}
	}
	return nil
}

// applyField invokes fp's Resolver against a fully-resolved (external, internal) pair, emitting
// the resulting event(s) and recursing into any child selection immediately (spec §4.5 "Handling
// populators"). The returned jobs are whatever the recursion itself deferred.
func (r *run) applyField(attach attachPoint, fp *planner.FieldPlan, concreteType string, external, internal *depvalue.Context) []*job {
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
		return r.walkObject(objIdx, childType, fp.Children[childType], childCtx)

	case schema.PopulatorList:
		childCtxs := resolve(external, internal)
		listIdx := r.emit(attach.event(FieldNewListOfObjects, nil))
		childType := onlyChildType(fp)
		childPlans := fp.Children[childType]
		var wave []*job
		for i, cc := range childCtxs {
			itemIdx := r.emit(listItemAttach(listIdx, i).event(ListItemNewObject, nil))
			wave = append(wave, r.walkObject(itemIdx, childType, childPlans, cc)...)
		}
		return wave

	case schema.OptionalPopulator:
		childCtx, ok := resolve(external, internal)
		if !ok {
			r.emit(attach.event(FieldNewNull, nil))
			return nil
		}
		objIdx := r.emit(attach.event(FieldNewObject, nil))
		childType := onlyChildType(fp)
		return r.walkObject(objIdx, childType, fp.Children[childType], childCtx)

	case schema.UnionOrInterfaceTypePopulator:
		childCtx, concrete := resolve(external, internal)
		objIdx := r.emit(attach.event(FieldNewObject, nil))
		return r.walkObject(objIdx, concrete, fp.Children[concrete], childCtx)

	case schema.OptionalUnionOrInterfaceTypePopulator:
		childCtx, concrete, ok := resolve(external, internal)
		if !ok {
			r.emit(attach.event(FieldNewNull, nil))
			return nil
		}
		objIdx := r.emit(attach.event(FieldNewObject, nil))
		return r.walkObject(objIdx, concrete, fp.Children[concrete], childCtx)

	default:
		panic(fmt.Sprintf("executor: unhandled resolver variant %T", resolve))
	}
}

// onlyChildType returns fp's single concrete child type name. Non-polymorphic fields (everything
// but UnionOrInterfaceTypePopulator, which names its own concrete type directly) always plan to
// exactly one concrete type.
func onlyChildType(fp *planner.FieldPlan) string {
	for name := range fp.Children {
		return name
	}
	return ""
}

func externalID(external *depvalue.Context) depvalue.Id {
	return external.MustGet("id").(depvalue.IdValue).Value
}
