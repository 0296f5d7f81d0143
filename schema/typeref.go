package schema

import "github.com/relgqlx/relgraph/responsevalue"

// TypeRef is a reference to a type in field/argument position: a bare named type, a list of
// TypeRef, or a non-null TypeRef (spec §3 "TypeRef"). Per design note §9, schema references are
// by name plus lookup rather than embedding — Named is resolved once at construction and reused,
// so the schema graph can freely cycle (an object field can refer back to its own object type).
type TypeRef interface {
	// IsNonNull reports whether a null value is disallowed at this position.
	IsNonNull() bool
}

// NamedTypeRef refers to a type by name: an object, scalar, enum, interface, or union.
type NamedTypeRef struct {
	Name  string
	Named NamedType
}

func (*NamedTypeRef) IsNonNull() bool { return false }

// ListTypeRef denotes `[T]`.
type ListTypeRef struct {
	Of TypeRef
}

func (*ListTypeRef) IsNonNull() bool { return false }

// NonNullTypeRef denotes a trailing `!`.
type NonNullTypeRef struct {
	Of TypeRef
}

func (*NonNullTypeRef) IsNonNull() bool { return true }

// NamedOf unwraps List/NonNull wrappers to the underlying NamedTypeRef.
func NamedOf(t TypeRef) *NamedTypeRef {
	for {
		switch tt := t.(type) {
		case *ListTypeRef:
			t = tt.Of
		case *NonNullTypeRef:
			t = tt.Of
		case *NamedTypeRef:
			return tt
		default:
			return nil
		}
	}
}

// IsListType reports whether t is a list at its outermost non-NonNull layer.
func IsListType(t TypeRef) bool {
	if nn, ok := t.(*NonNullTypeRef); ok {
		t = nn.Of
	}
	_, ok := t.(*ListTypeRef)
	return ok
}

// IsScalarOrEnum reports whether the named type underlying t is a leaf (Carver) type as opposed
// to composite (Populator) type.
func IsScalarOrEnum(t TypeRef) bool {
	named := NamedOf(t)
	if named == nil || named.Named == nil {
		return false
	}
	switch named.Named.(type) {
	case *ScalarType, *EnumType:
		return true
	default:
		return false
	}
}

// NullResponseValue is the canonical representation of a null/absent field value.
var NullResponseValue responsevalue.Value = responsevalue.Null{}
