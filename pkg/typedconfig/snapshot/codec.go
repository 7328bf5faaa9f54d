package snapshot

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/randalmurphal/typedconfig/pkg/typedconfig"
)

// Wire type tags.
const (
	wireNull   = "null"
	wireBool   = "bool"
	wireInt    = "int"
	wireFloat  = "float"
	wireString = "string"
	wireMap    = "map"
	wireList   = "list"
)

// wireValue carries a value with its kind so that ints, floats, and
// non-finite floats survive a JSON round trip. Scalars are held as text.
type wireValue struct {
	T string               `json:"t"`
	V string               `json:"v,omitempty"`
	M map[string]wireValue `json:"m,omitempty"`
	L []wireValue          `json:"l,omitempty"`
}

func encodeValue(raw any) (wireValue, error) {
	if items, ok := sequence(raw); ok {
		return encodeList(items)
	}

	v := typedconfig.Classify(raw, true)
	switch v.Type {
	case typedconfig.ValueNull:
		return wireValue{T: wireNull}, nil
	case typedconfig.ValueBool:
		return wireValue{T: wireBool, V: strconv.FormatBool(v.Bool())}, nil
	case typedconfig.ValueInt:
		return wireValue{T: wireInt, V: strconv.FormatInt(v.Int(), 10)}, nil
	case typedconfig.ValueFloat:
		return wireValue{T: wireFloat, V: strconv.FormatFloat(v.Float(), 'g', -1, 64)}, nil
	case typedconfig.ValueString:
		return wireValue{T: wireString, V: v.Str()}, nil
	case typedconfig.ValueMap:
		m := make(map[string]wireValue, len(v.Map()))
		for k, item := range v.Map() {
			w, err := encodeValue(item)
			if err != nil {
				return wireValue{}, fmt.Errorf("%s: %w", k, err)
			}
			m[k] = w
		}
		return wireValue{T: wireMap, M: m}, nil
	default:
		return wireValue{}, fmt.Errorf("%w: %s", ErrUnsupportedValue, v.Describe())
	}
}

// sequence returns the elements of any slice or array so that sequences stay
// lists on the wire instead of index-keyed maps.
func sequence(raw any) ([]any, bool) {
	if items, ok := raw.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

func encodeList(items []any) (wireValue, error) {
	l := make([]wireValue, len(items))
	for i, item := range items {
		w, err := encodeValue(item)
		if err != nil {
			return wireValue{}, fmt.Errorf("%d: %w", i, err)
		}
		l[i] = w
	}
	return wireValue{T: wireList, L: l}, nil
}

// decodeValue restores a value. Integers decode as int64 and maps as
// map[string]any.
func decodeValue(w wireValue) (any, error) {
	switch w.T {
	case wireNull:
		return nil, nil
	case wireBool:
		return strconv.ParseBool(w.V)
	case wireInt:
		return strconv.ParseInt(w.V, 10, 64)
	case wireFloat:
		return strconv.ParseFloat(w.V, 64)
	case wireString:
		return w.V, nil
	case wireMap:
		m := make(map[string]any, len(w.M))
		for k, item := range w.M {
			v, err := decodeValue(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			m[k] = v
		}
		return m, nil
	case wireList:
		l := make([]any, len(w.L))
		for i, item := range w.L {
			v, err := decodeValue(item)
			if err != nil {
				return nil, fmt.Errorf("%d: %w", i, err)
			}
			l[i] = v
		}
		return l, nil
	default:
		return nil, fmt.Errorf("%w: unknown type tag %q", ErrUnsupportedValue, w.T)
	}
}
