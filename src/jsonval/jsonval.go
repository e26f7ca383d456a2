package jsonval

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Value is a closed variant over the JSON types. The only implementations
// are Null, Bool, Number, String, Array, and Object; anything a store hands
// back is converted (and validated) into this set before the rest of the
// program touches it.
type Value interface {
	jsonValue()
}

// Null is the JSON null value.
type Null struct{}

// Bool is a JSON true/false.
type Bool bool

// Number is a JSON number kept as its original decimal text, so integers
// round-trip without float coercion.
type Number string

// String is a JSON string.
type String string

// Array is a JSON array.
type Array []Value

// Object is a JSON object. encoding/json emits map keys in sorted order,
// which keeps serialization deterministic for a given mapping.
type Object map[string]Value

func (Null) jsonValue()   {}
func (Bool) jsonValue()   {}
func (Number) jsonValue() {}
func (String) jsonValue() {}
func (Array) jsonValue()  {}
func (Object) jsonValue() {}

// MarshalJSON writes the literal null token.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalJSON emits the number's original decimal text.
func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return nil, errors.New("jsonval: empty number")
	}
	return []byte(n), nil
}

// FromGo converts a decoded JSON shape (what encoding/json produces for an
// `any` target, plus common Go scalar kinds) into a Value. Any type outside
// that set is rejected, which is how unrepresentable store values surface.
func FromGo(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case json.Number:
		return Number(x), nil
	case float64:
		return Number(strconv.FormatFloat(x, 'g', -1, 64)), nil
	case float32:
		return Number(strconv.FormatFloat(float64(x), 'g', -1, 32)), nil
	case int:
		return Number(strconv.FormatInt(int64(x), 10)), nil
	case int32:
		return Number(strconv.FormatInt(int64(x), 10)), nil
	case int64:
		return Number(strconv.FormatInt(x, 10)), nil
	case uint:
		return Number(strconv.FormatUint(uint64(x), 10)), nil
	case uint64:
		return Number(strconv.FormatUint(x, 10)), nil
	case []any:
		arr := make(Array, 0, len(x))
		for i, el := range x {
			cv, err := FromGo(el)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr = append(arr, cv)
		}
		return arr, nil
	case map[string]any:
		obj := make(Object, len(x))
		for k, el := range x {
			cv, err := FromGo(el)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			obj[k] = cv
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("jsonval: %T has no JSON representation", v)
	}
}

// Decode parses JSON text into a Value. Numbers are kept verbatim and
// trailing non-whitespace after the document is rejected.
func Decode(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("jsonval: trailing data after JSON document")
	}
	return FromGo(raw)
}

// TypeName reports the JSON type of v, for human-facing listings.
func TypeName(v Value) string {
	switch v.(type) {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}
