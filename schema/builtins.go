package schema

// Built-in scalar types, always present in every Schema (spec §3/§6). Timestamp, Date, and Uuid
// round out the DependencyType/ResponseValue kinds the original source distinguishes (see
// SPEC_FULL.md "Supplemented from original_source").
var (
	IntType       = &ScalarType{Name: "Int"}
	FloatType     = &ScalarType{Name: "Float"}
	StringType    = &ScalarType{Name: "String"}
	BooleanType   = &ScalarType{Name: "Boolean"}
	IdType        = &ScalarType{Name: "ID"}
	TimestampType = &ScalarType{Name: "Timestamp"}
	DateType      = &ScalarType{Name: "Date"}
	UuidType      = &ScalarType{Name: "Uuid"}
)

var builtins = []NamedType{
	IntType, FloatType, StringType, BooleanType, IdType, TimestampType, DateType, UuidType,
}

// NonNull wraps t in a NonNullTypeRef.
func NonNull(t TypeRef) TypeRef { return &NonNullTypeRef{Of: t} }

// ListOf wraps t in a ListTypeRef.
func ListOf(t TypeRef) TypeRef { return &ListTypeRef{Of: t} }

// Named returns a NamedTypeRef for t.
func Named(t NamedType) TypeRef { return &NamedTypeRef{Name: t.TypeName(), Named: t} }
