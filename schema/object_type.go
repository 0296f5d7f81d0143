package schema

// Param is one declared parameter of a field: name plus its TypeRef. Parameter order is
// preserved and matters for no semantic reason beyond predictable introspection/documentation,
// but validator check 10 walks it to find unsatisfied NonNull parameters.
type Param struct {
	Name string
	Type TypeRef
}

// FieldDef is one field of an Object or Interface type (spec §3): its name, declared TypeRef, the
// FieldResolver that produces its value, and its ordered parameter list.
type FieldDef struct {
	Name       string
	Type       TypeRef
	Resolver   *FieldResolver
	Parameters []Param
}

func (f *FieldDef) Parameter(name string) *Param {
	for i := range f.Parameters {
		if f.Parameters[i].Name == name {
			return &f.Parameters[i]
		}
	}
	return nil
}

// ObjectType is a concrete, selectable type: an ordered field map plus the names of interfaces it
// implements. Field order is preserved and governs response field order (spec §3).
type ObjectType struct {
	Name                  string
	Fields                []*FieldDef
	ImplementedInterfaces []string
}

func (t *ObjectType) TypeName() string { return t.Name }

// Field looks up a declared field by name. __typename (and, for the query root, __type) are
// synthesized separately by the validator/planner rather than stored here, matching spec §3's
// "synthetic fields" language.
func (t *ObjectType) Field(name string) *FieldDef {
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (t *ObjectType) ImplementsInterface(name string) bool {
	for _, i := range t.ImplementedInterfaces {
		if i == name {
			return true
		}
	}
	return false
}

// InterfaceType declares a field signature set that member ObjectTypes must honor (field-level
// compatibility is not enforced here — schema authors are trusted, per Non-goals); it also lets a
// selection target the interface directly, matching field names against Fields.
type InterfaceType struct {
	Name   string
	Fields []*FieldDef
	// Implementations lists concrete object types known to implement this interface at schema
	// construction time, so New can register them even if otherwise unreferenced.
	Implementations []*ObjectType
}

func (t *InterfaceType) TypeName() string { return t.Name }

func (t *InterfaceType) Field(name string) *FieldDef {
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// UnionType is a polymorphic type with no fields of its own beyond __typename (validator check
// 4): selections must use inline fragments to reach member fields.
type UnionType struct {
	Name          string
	PossibleTypes []*ObjectType
}

func (t *UnionType) TypeName() string { return t.Name }

func (t *UnionType) HasPossibleType(name string) bool {
	for _, pt := range t.PossibleTypes {
		if pt.Name == name {
			return true
		}
	}
	return false
}

// EnumType declares the set of bare names an EnumValue literal may take.
type EnumType struct {
	Name   string
	Values []string
}

func (t *EnumType) TypeName() string { return t.Name }

func (t *EnumType) HasValue(v string) bool {
	for _, val := range t.Values {
		if val == v {
			return true
		}
	}
	return false
}

// ScalarType is a leaf type with no sub-selection. The built-in scalars are Int, Float, String,
// Boolean, ID, Timestamp, Date, and Uuid (see builtins.go); schemas may declare additional opaque
// scalars but New does not validate their coercions (out of scope, spec §1 non-goal on
// introspection/coercion ergonomics beyond the stated grammar).
type ScalarType struct {
	Name string
}

func (t *ScalarType) TypeName() string { return t.Name }
