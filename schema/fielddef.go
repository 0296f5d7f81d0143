package schema

// FieldDefFor resolves the FieldDef a selection of name selects against enclosing, special-casing
// the synthetic __typename (available on any composite type) and __type (available only on the
// query root) fields before falling back to the type's own declared fields. Unions never resolve
// a direct field other than __typename (spec §4.3 check 4); shared by the validator and planner
// so the two can never disagree about what a selection resolves to.
func FieldDefFor(s *Schema, enclosing NamedType, name string) *FieldDef {
	if enclosing == nil {
		return nil
	}
	if name == "__typename" {
		if IsComposite(enclosing) {
			return TypenameField
		}
		return nil
	}
	switch t := enclosing.(type) {
	case *ObjectType:
		if name == "__type" && t == s.QueryType() {
			return s.TypeField()
		}
		return t.Field(name)
	case *InterfaceType:
		return t.Field(name)
	default:
		return nil
	}
}
