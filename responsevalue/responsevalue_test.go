package responsevalue

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_SetPreservesInsertionOrder(t *testing.T) {
	m := &Map{}
	m.Set("b", Int{Value: 2})
	m.Set("a", Int{Value: 1})

	require.Len(t, m.Fields, 2)
	assert.Equal(t, "b", m.Fields[0].Key)
	assert.Equal(t, "a", m.Fields[1].Key)
}

func TestMap_MarshalJSONPreservesFieldOrder(t *testing.T) {
	m := Map{Fields: []MapField{
		{Key: "z", Value: Int{Value: 1}},
		{Key: "a", Value: String{Value: "x"}},
	}}
	b, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":"x"}`, string(b))
}

func TestScalarMarshalJSON(t *testing.T) {
	for _, tc := range []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null{}, "null"},
		{"bool true", Bool{Value: true}, "true"},
		{"bool false", Bool{Value: false}, "false"},
		{"int", Int{Value: 42}, "42"},
		{"negative int", Int{Value: -7}, "-7"},
		{"string", String{Value: "hi"}, `"hi"`},
		{"string with quote", String{Value: `a"b`}, `"a\"b"`},
		{"enum", EnumValue{Value: "RED"}, `"RED"`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b, err := marshalJSON(tc.v)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(b))
		})
	}
}

func TestUuid_MarshalJSONRendersCanonicalForm(t *testing.T) {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	b, err := Uuid{Value: id}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"123e4567-e89b-12d3-a456-426614174000"`, string(b))
}

func TestList_MarshalJSONEmptyAndNonEmpty(t *testing.T) {
	b, err := List{}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(b))

	b, err = List{Items: []Value{Int{Value: 1}, Null{}}}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `[1,null]`, string(b))
}

// marshalJSON dispatches to the concrete value's own MarshalJSON, since Value itself declares no
// such method (only isResponseValue).
func marshalJSON(v Value) ([]byte, error) {
	switch val := v.(type) {
	case Null:
		return val.MarshalJSON()
	case Bool:
		return val.MarshalJSON()
	case Int:
		return val.MarshalJSON()
	case Float:
		return val.MarshalJSON()
	case String:
		return val.MarshalJSON()
	case EnumValue:
		return val.MarshalJSON()
	case Uuid:
		return val.MarshalJSON()
	default:
		panic("unsupported value in test helper")
	}
}
