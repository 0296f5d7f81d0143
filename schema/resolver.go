package schema

import (
	"github.com/relgqlx/relgraph/depvalue"
	"github.com/relgqlx/relgraph/responsevalue"
)

// FieldResolver is the three-part contract from spec §3: the external dependencies a field reads
// from its parent's populated context, the internal dependencies it obtains for itself, and the
// CarverOrPopulator that turns those into a response value or a context for the child selection.
type FieldResolver struct {
	ExternalDependencies []string
	InternalDependencies []InternalDependency
	Resolve              Resolver
}

// InternalDependency is one named value a FieldResolver obtains before invoking Resolve.
type InternalDependency struct {
	Name   string
	Type   depvalue.Type
	Source DependencySource
}

// DependencySource names where an InternalDependency's value comes from (spec §3).
type DependencySource interface {
	isDependencySource()
	// CanResolveSynchronously reports whether this source never requires an async Database
	// round-trip (Argument, Literal, Introspection). ColumnGet/ColumnGetList always answer false
	// here — the executor's separate synchronous fast path (spec §4.5, dbiface.Database.IsSync)
	// is a different mechanism from this per-dependency check.
	CanResolveSynchronously() bool
}

// ColumnGet fetches a single column for one row keyed by id.
type ColumnGet struct {
	Table      string
	Column     string
	IdColumn   string
}

func (ColumnGet) isDependencySource()          {}
func (ColumnGet) CanResolveSynchronously() bool { return false }

// Where binds Column to the current external dependency named "id" (design note §9: the source
// only supports binding where-clauses to the parent's id; extending to arbitrary external keys is
// a known future item, not implemented here).
type Where struct {
	Column string
}

// ColumnGetList fetches a column across rows filtered by Wheres.
type ColumnGetList struct {
	Table  string
	Column string
	Wheres []Where
}

func (ColumnGetList) isDependencySource()          {}
func (ColumnGetList) CanResolveSynchronously() bool { return false }

// ArgumentSource takes its value from the current field's supplied arguments, coerced to the
// declared DependencyType (spec §4.5 "Argument coercion").
type ArgumentSource struct {
	Name string
}

func (ArgumentSource) isDependencySource()          {}
func (ArgumentSource) CanResolveSynchronously() bool { return true }

// LiteralSource is a schema-supplied constant.
type LiteralSource struct {
	Value depvalue.Value
}

func (LiteralSource) isDependencySource()          {}
func (LiteralSource) CanResolveSynchronously() bool { return true }

// IntrospectionInterfacesSource synthesizes the list of interface names a concrete type
// implements, for `__type(name) { interfaces { name } }` (spec §6).
type IntrospectionInterfacesSource struct{}

func (IntrospectionInterfacesSource) isDependencySource()          {}
func (IntrospectionInterfacesSource) CanResolveSynchronously() bool { return true }

// IntrospectionPossibleTypesSource synthesizes the list of concrete type names a union or
// interface admits.
type IntrospectionPossibleTypesSource struct{}

func (IntrospectionPossibleTypesSource) isDependencySource()          {}
func (IntrospectionPossibleTypesSource) CanResolveSynchronously() bool { return true }

// Resolver is the closed tagged variant of CarverOrPopulator kinds described in design note §9:
// built-in function-shaped variants cover every case spec §4.5 names; there is deliberately no
// "custom" escape hatch yet since nothing in this core needs one.
type Resolver interface {
	isResolver()
}

// Carver produces a leaf ResponseValue directly.
type Carver func(external, internal *depvalue.Context) responsevalue.Value

func (Carver) isResolver() {}

// CarverList produces a list of leaf ResponseValues (FieldNewListOfScalars + ListItemScalar*).
type CarverList func(external, internal *depvalue.Context) []responsevalue.Value

func (CarverList) isResolver() {}

// Populator produces a new Context to feed the child selection (FieldNewObject).
type Populator func(external, internal *depvalue.Context) *depvalue.Context

func (Populator) isResolver() {}

// PopulatorList produces contexts for each element of a list of objects (FieldNewListOfObjects +
// ListItemNewObject*).
type PopulatorList func(external, internal *depvalue.Context) []*depvalue.Context

func (PopulatorList) isResolver() {}

// OptionalPopulator is a Populator that may yield nothing, emitting FieldNewNull instead.
type OptionalPopulator func(external, internal *depvalue.Context) (ctx *depvalue.Context, ok bool)

func (OptionalPopulator) isResolver() {}

// UnionOrInterfaceTypePopulator additionally reports which concrete type the returned context
// should be resolved against.
type UnionOrInterfaceTypePopulator func(external, internal *depvalue.Context) (ctx *depvalue.Context, concreteType string)

func (UnionOrInterfaceTypePopulator) isResolver() {}

// OptionalUnionOrInterfaceTypePopulator combines the two: it may yield nothing, and when it does
// yield, it names the concrete type.
type OptionalUnionOrInterfaceTypePopulator func(external, internal *depvalue.Context) (ctx *depvalue.Context, concreteType string, ok bool)

func (OptionalUnionOrInterfaceTypePopulator) isResolver() {}
