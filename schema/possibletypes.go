package schema

import (
	"fmt"
	"sort"
)

// PossibleTypes returns the set of concrete object types t could resolve to at runtime: itself
// for an ObjectType, its registered implementations for an InterfaceType, or its members for a
// UnionType. Used by the validator's fragment-spread-type-relevance check and the planner's
// type-set intersection (spec §4.3 check 14, §4.4).
func PossibleTypes(s *Schema, t NamedType) map[string]*ObjectType {
	ret := map[string]*ObjectType{}
	switch t := t.(type) {
	case *ObjectType:
		ret[t.Name] = t
	case *InterfaceType:
		for _, obj := range s.InterfaceImplementations(t.Name) {
			ret[obj.Name] = obj
		}
	case *UnionType:
		for _, obj := range t.PossibleTypes {
			ret[obj.Name] = obj
		}
	default:
		panic(fmt.Sprintf("schema: %T has no possible types", t))
	}
	return ret
}

// IsComposite reports whether t is selectable (Object, Interface, or Union) as opposed to a leaf
// Scalar/Enum type.
func IsComposite(t NamedType) bool {
	switch t.(type) {
	case *ObjectType, *InterfaceType, *UnionType:
		return true
	default:
		return false
	}
}

// InterfaceNamesOf returns the names of the interfaces typeName implements, for
// IntrospectionInterfacesSource (spec §6 `__type { interfaces { name } }`). Non-object types and
// unknown names implement nothing.
func InterfaceNamesOf(s *Schema, typeName string) []string {
	obj, ok := s.NamedType(typeName).(*ObjectType)
	if !ok {
		return nil
	}
	return obj.ImplementedInterfaces
}

// PossibleTypeNamesOf returns the concrete type names typeName could resolve to, for
// IntrospectionPossibleTypesSource (spec §6 `__type { possibleTypes { name } }`). An ObjectType's
// only possible type is itself.
func PossibleTypeNamesOf(s *Schema, typeName string) []string {
	nt := s.NamedType(typeName)
	if nt == nil || !IsComposite(nt) {
		return nil
	}
	pts := PossibleTypes(s, nt)
	names := make([]string, 0, len(pts))
	for name := range pts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
