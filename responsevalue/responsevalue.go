// Package responsevalue defines the tree-shaped value the response assembler produces (spec
// §4.6): Null, Bool, Int, Float, String, EnumValue, Uuid, List, and Map. It is the common currency
// between a Carver's direct output and the assembler's event-log reconstruction, so both
// schema.Resolver and the assembler package depend on it without depending on each other.
package responsevalue

import (
	"bytes"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/google/uuid"
)

// Value is a single node of a response tree.
type Value interface {
	isResponseValue()
}

type Null struct{}

func (Null) isResponseValue() {}

type Bool struct{ Value bool }

func (Bool) isResponseValue() {}

type Int struct{ Value int64 }

func (Int) isResponseValue() {}

type Float struct{ Value float64 }

func (Float) isResponseValue() {}

type String struct{ Value string }

func (String) isResponseValue() {}

// EnumValue renders as its bare name, same as String, but is kept distinct so a future
// implementation can validate it against an EnumType's declared values.
type EnumValue struct{ Value string }

func (EnumValue) isResponseValue() {}

type Uuid struct{ Value uuid.UUID }

func (Uuid) isResponseValue() {}

type List struct{ Items []Value }

func (List) isResponseValue() {}

// MapField is one key/value pair of a Map, in response field order.
type MapField struct {
	Key   string
	Value Value
}

// Map is an ordered object; field order is plan order; see spec §8 "Response shape".
type Map struct {
	Fields []MapField
}

func (Map) isResponseValue() {}

func (m *Map) Set(key string, v Value) {
	m.Fields = append(m.Fields, MapField{Key: key, Value: v})
}

// MarshalJSON implements json.Marshaler (and is respected by jsoniter, which relgraph.Response
// uses for the outer serialization boundary) so that field order survives marshaling, which a
// plain Go map could not guarantee.
func (m Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range m.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := jsoniter.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := jsoniter.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (n Null) MarshalJSON() ([]byte, error)  { return []byte("null"), nil }
func (b Bool) MarshalJSON() ([]byte, error)  { return strconv.AppendBool(nil, b.Value), nil }
func (i Int) MarshalJSON() ([]byte, error)   { return strconv.AppendInt(nil, i.Value, 10), nil }
func (f Float) MarshalJSON() ([]byte, error) { return jsoniter.Marshal(f.Value) }
func (s String) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(s.Value)
}
func (e EnumValue) MarshalJSON() ([]byte, error) { return jsoniter.Marshal(e.Value) }
func (u Uuid) MarshalJSON() ([]byte, error)      { return jsoniter.Marshal(u.Value.String()) }
func (l List) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, item := range l.Items {
		if i > 0 {
			buf.WriteByte(',')
		}
		v, err := jsoniter.Marshal(item)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
