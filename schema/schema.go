// Package schema implements the Data Model from spec §3: Schema, Type (Object/Scalar/Enum, plus
// Interface/Union for polymorphism), FieldDef, and FieldResolver. A Schema is constructed once
// from a Definition and is immutable and safe for concurrent reads thereafter (spec §5).
package schema

import (
	"fmt"
	"regexp"
	"strings"
)

var nameRegex = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

func isName(s string) bool {
	return nameRegex.MatchString(s)
}

// NamedType is any type that can appear in the Schema's name → type mapping: ObjectType,
// ScalarType, EnumType, InterfaceType, or UnionType.
type NamedType interface {
	TypeName() string
}

// Definition is the input to New: the query root plus any types only reachable indirectly (e.g.
// union member types not otherwise referenced, or interfaces with no implementing object yet).
type Definition struct {
	Query        *ObjectType
	Mutation     *ObjectType
	Subscription *ObjectType

	AdditionalTypes []NamedType
}

// Schema is an immutable registry of named types, built from a Definition. Exactly one type is
// the query root (spec §3 invariant); every field type name referenced resolves to a declared
// type, built-in scalar, interface, or union.
type Schema struct {
	namedTypes               map[string]NamedType
	interfaceImplementations map[string][]*ObjectType

	query        *ObjectType
	mutation     *ObjectType
	subscription *ObjectType

	typeField *FieldDef
}

func (s *Schema) QueryType() *ObjectType        { return s.query }
func (s *Schema) MutationType() *ObjectType     { return s.mutation }
func (s *Schema) SubscriptionType() *ObjectType { return s.subscription }

func (s *Schema) NamedType(name string) NamedType {
	return s.namedTypes[name]
}

// InterfaceImplementations returns the concrete object types implementing the named interface,
// precomputed at construction time (spec §3: "each interface carries a precomputed set of
// concrete types implementing it").
func (s *Schema) InterfaceImplementations(name string) []*ObjectType {
	return s.interfaceImplementations[name]
}

// New validates and registers every type reachable from def, returning a SchemaError (per spec
// §7) if the query root is missing, a name is illegal, or a type name collides with a
// differently-shaped definition.
func New(def *Definition) (*Schema, error) {
	if def.Query == nil {
		return nil, fmt.Errorf("schemas must define the query operation")
	}

	s := &Schema{
		namedTypes:               map[string]NamedType{},
		interfaceImplementations: map[string][]*ObjectType{},
		query:                    def.Query,
		mutation:                 def.Mutation,
		subscription:             def.Subscription,
	}

	for _, t := range builtins {
		s.namedTypes[t.TypeName()] = t
	}

	roots := []NamedType{def.Query}
	if def.Mutation != nil {
		roots = append(roots, def.Mutation)
	}
	if def.Subscription != nil {
		roots = append(roots, def.Subscription)
	}
	roots = append(roots, def.AdditionalTypes...)

	for _, t := range roots {
		if err := s.register(t); err != nil {
			return nil, err
		}
	}

	for _, nt := range s.namedTypes {
		if obj, ok := nt.(*ObjectType); ok {
			for _, iface := range obj.ImplementedInterfaces {
				s.interfaceImplementations[iface] = append(s.interfaceImplementations[iface], obj)
			}
		}
	}

	s.typeField = typeField(s)

	return s, nil
}

func (s *Schema) register(t NamedType) error {
	name := t.TypeName()
	if !isName(name) || strings.HasPrefix(name, "__") {
		return fmt.Errorf("illegal type name: %v", name)
	}
	if existing, ok := s.namedTypes[name]; ok {
		if existing != t {
			return fmt.Errorf("multiple definitions for named type: %v", name)
		}
		return nil
	}
	s.namedTypes[name] = t

	switch t := t.(type) {
	case *ObjectType:
		for _, f := range t.Fields {
			if err := s.registerTypeRef(f.Type); err != nil {
				return err
			}
		}
	case *InterfaceType:
		for _, f := range t.Fields {
			if err := s.registerTypeRef(f.Type); err != nil {
				return err
			}
		}
		for _, impl := range t.Implementations {
			if err := s.register(impl); err != nil {
				return err
			}
		}
	case *UnionType:
		for _, member := range t.PossibleTypes {
			if err := s.register(member); err != nil {
				return err
			}
		}
	case *EnumType, *ScalarType:
		// no further references
	}
	return nil
}

func (s *Schema) registerTypeRef(t TypeRef) error {
	switch t := t.(type) {
	case *ListTypeRef:
		return s.registerTypeRef(t.Of)
	case *NonNullTypeRef:
		return s.registerTypeRef(t.Of)
	case *NamedTypeRef:
		if t.Named != nil {
			return s.register(t.Named)
		}
		return fmt.Errorf("unresolved named type reference: %v", t.Name)
	}
	return nil
}
