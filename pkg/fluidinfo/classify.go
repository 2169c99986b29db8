package fluidinfo

import (
	"encoding/json"
	"io"
	"reflect"
)

// Kind is the classification of a request body.
type Kind int

const (
	// Opaque values are only meaningful together with a mime type.
	Opaque Kind = iota
	// StructuredObject values are maps and structs, always sent as JSON.
	StructuredObject
	// Primitive values are nil, booleans, numbers, strings and string lists.
	Primitive
)

func (k Kind) String() string {
	switch k {
	case StructuredObject:
		return "structured"
	case Primitive:
		return "primitive"
	default:
		return "opaque"
	}
}

var (
	bytesType      = reflect.TypeOf([]byte(nil))
	rawMessageType = reflect.TypeOf(json.RawMessage(nil))
)

// Classify returns the Kind of a request body. Maps and structs are always
// StructuredObject; otherwise an explicit mime type makes the body Opaque.
// Classify has no side effects.
func Classify(body any, mime string) Kind {
	kind := classify(body)
	if kind != StructuredObject && mime != "" {
		return Opaque
	}
	return kind
}

func classify(body any) Kind {
	if body == nil {
		return Primitive
	}
	if _, ok := body.(io.Reader); ok {
		return Opaque
	}

	v := reflect.ValueOf(body)
	t := v.Type()
	if t == bytesType || t == rawMessageType {
		return Opaque
	}

	switch t.Kind() {
	case reflect.Map:
		if t.Key().Kind() == reflect.String {
			return StructuredObject
		}
		return Opaque
	case reflect.Struct:
		return StructuredObject
	case reflect.Pointer:
		if t.Elem().Kind() == reflect.Struct {
			if v.IsNil() {
				return Opaque
			}
			return StructuredObject
		}
		return Opaque
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return Primitive
	case reflect.Slice, reflect.Array:
		if isStringList(v) {
			return Primitive
		}
		return Opaque
	default:
		return Opaque
	}
}

// isStringList reports whether every element of a slice or array is a
// string. Lists of numbers or booleans do not count: the API only accepts
// sets of strings as primitive list values.
func isStringList(v reflect.Value) bool {
	if v.Type().Elem().Kind() == reflect.String {
		return true
	}
	if v.Type().Elem().Kind() != reflect.Interface {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		if elem.IsNil() || elem.Elem().Kind() != reflect.String {
			return false
		}
	}
	return true
}
