package typedconfig

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// ValueType tags the native shape of a raw store value.
type ValueType int

const (
	// ValueAbsent means the store has no entry for the key.
	ValueAbsent ValueType = iota
	// ValueNull means the key exists and holds nil.
	ValueNull
	// ValueBool holds a boolean.
	ValueBool
	// ValueInt holds any signed or unsigned integer that fits in an int64.
	ValueInt
	// ValueFloat holds a float32 or float64, including NaN and infinities.
	ValueFloat
	// ValueString holds a string.
	ValueString
	// ValueMap holds a key/value container.
	ValueMap
	// ValueUnclassified holds anything else (pointers, handles, structs, ...).
	ValueUnclassified
)

// String returns the value type name.
func (t ValueType) String() string {
	switch t {
	case ValueAbsent:
		return "absent"
	case ValueNull:
		return "null"
	case ValueBool:
		return "bool"
	case ValueInt:
		return "int"
	case ValueFloat:
		return "float"
	case ValueString:
		return "string"
	case ValueMap:
		return "map"
	case ValueUnclassified:
		return "unclassified"
	default:
		return "unknown"
	}
}

// Value is a raw store value classified into exactly one ValueType.
// Only the field matching Type is meaningful.
type Value struct {
	Type ValueType

	b bool
	i int64
	f float64
	s string
	m map[string]any

	raw any
}

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload.
func (v Value) Int() int64 { return v.i }

// Float returns the float payload.
func (v Value) Float() float64 { return v.f }

// Str returns the string payload.
func (v Value) Str() string { return v.s }

// Map returns the container payload.
func (v Value) Map() map[string]any { return v.m }

// Raw returns the value exactly as the store returned it.
func (v Value) Raw() any { return v.raw }

// IsEmpty reports whether the value is absent or null.
func (v Value) IsEmpty() bool {
	return v.Type == ValueAbsent || v.Type == ValueNull
}

// Describe renders the value type for error messages, including the payload
// for non-finite floats so "float (+Inf)" is distinguishable from "float".
func (v Value) Describe() string {
	if v.Type == ValueFloat && (math.IsNaN(v.f) || math.IsInf(v.f, 0)) {
		return fmt.Sprintf("float (%v)", v.f)
	}
	if v.Type == ValueUnclassified {
		return fmt.Sprintf("unclassified %T", v.raw)
	}
	return v.Type.String()
}

// Classify inspects a raw store result and tags it. Present is the boolean
// returned by Store.Lookup. Types are matched exactly: strings holding digits
// stay strings, and integral floats stay floats.
func Classify(raw any, present bool) Value {
	if !present {
		return Value{Type: ValueAbsent}
	}
	v := Value{raw: raw}

	switch x := raw.(type) {
	case nil:
		v.Type = ValueNull
	case bool:
		v.Type, v.b = ValueBool, x
	case int:
		v.Type, v.i = ValueInt, int64(x)
	case int8:
		v.Type, v.i = ValueInt, int64(x)
	case int16:
		v.Type, v.i = ValueInt, int64(x)
	case int32:
		v.Type, v.i = ValueInt, int64(x)
	case int64:
		v.Type, v.i = ValueInt, x
	case uint8:
		v.Type, v.i = ValueInt, int64(x)
	case uint16:
		v.Type, v.i = ValueInt, int64(x)
	case uint32:
		v.Type, v.i = ValueInt, int64(x)
	case uint:
		v = classifyUint(v, uint64(x))
	case uint64:
		v = classifyUint(v, x)
	case float32:
		v.Type, v.f = ValueFloat, float64(x)
	case float64:
		v.Type, v.f = ValueFloat, x
	case json.Number:
		v = classifyNumber(v, x)
	case string:
		v.Type, v.s = ValueString, x
	case map[string]any:
		v.Type, v.m = ValueMap, x
	case map[string]string:
		m := make(map[string]any, len(x))
		for k, s := range x {
			m[k] = s
		}
		v.Type, v.m = ValueMap, m
	case map[any]any:
		v = classifyAnyMap(v, x)
	case []any:
		m := make(map[string]any, len(x))
		for i, item := range x {
			m[strconv.Itoa(i)] = item
		}
		v.Type, v.m = ValueMap, m
	case []string:
		m := make(map[string]any, len(x))
		for i, item := range x {
			m[strconv.Itoa(i)] = item
		}
		v.Type, v.m = ValueMap, m
	default:
		v = classifyNamed(v)
	}
	return v
}

func classifyUint(v Value, x uint64) Value {
	if x > math.MaxInt64 {
		v.Type = ValueUnclassified
		return v
	}
	v.Type, v.i = ValueInt, int64(x)
	return v
}

func classifyNumber(v Value, n json.Number) Value {
	if i, err := n.Int64(); err == nil {
		v.Type, v.i = ValueInt, i
		return v
	}
	if f, err := n.Float64(); err == nil {
		v.Type, v.f = ValueFloat, f
		return v
	}
	v.Type = ValueUnclassified
	return v
}

// classifyAnyMap accepts map[any]any only when every key is a string.
func classifyAnyMap(v Value, x map[any]any) Value {
	m := make(map[string]any, len(x))
	for k, item := range x {
		ks, ok := k.(string)
		if !ok {
			v.Type = ValueUnclassified
			return v
		}
		m[ks] = item
	}
	v.Type, v.m = ValueMap, m
	return v
}

// classifyNamed handles defined types over basic kinds, e.g. time.Duration
// or `type Mode string`, and typed containers such as []int or
// map[string]int.
func classifyNamed(v Value) Value {
	rv := reflect.ValueOf(v.raw)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			v.Type = ValueUnclassified
			return v
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		v.Type, v.m = ValueMap, m
	case reflect.Slice, reflect.Array:
		m := make(map[string]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			m[strconv.Itoa(i)] = rv.Index(i).Interface()
		}
		v.Type, v.m = ValueMap, m
	case reflect.Bool:
		v.Type, v.b = ValueBool, rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.Type, v.i = ValueInt, rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v = classifyUint(v, rv.Uint())
	case reflect.Float32, reflect.Float64:
		v.Type, v.f = ValueFloat, rv.Float()
	case reflect.String:
		v.Type, v.s = ValueString, rv.String()
	default:
		v.Type = ValueUnclassified
	}
	return v
}
