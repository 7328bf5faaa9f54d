package typedconfig

import (
	"fmt"
	"math"
	"strings"
)

// Kind identifies the type a caller requests from the store.
type Kind int

const (
	// KindArray requests a key/value mapping.
	KindArray Kind = iota
	// KindBool requests a boolean.
	KindBool
	// KindInt requests an integer.
	KindInt
	// KindFloat requests a finite float. Integers are widened.
	KindFloat
	// KindFloatInclusive requests a float that may be NaN or ±Inf.
	KindFloatInclusive
	// KindString requests a string.
	KindString
)

// Kinds lists every supported kind in declaration order.
var Kinds = []Kind{KindArray, KindBool, KindInt, KindFloat, KindFloatInclusive, KindString}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindArray:
		return "array"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindFloatInclusive:
		return "float-inclusive"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// ParseKind converts a kind name (as returned by Kind.String) into a Kind.
// Matching is case-insensitive and accepts "_" in place of "-".
func ParseKind(name string) (Kind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, k := range Kinds {
		if k.String() == normalized {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q", name)
}

// kind describes how a present, non-null Value converts to T.
type kind[T any] struct {
	id Kind
	// extract returns the typed value and whether the Value satisfies the kind.
	extract func(Value) (T, bool)
}

var (
	arrayKind = kind[map[string]any]{
		id: KindArray,
		extract: func(v Value) (map[string]any, bool) {
			return v.Map(), v.Type == ValueMap
		},
	}

	boolKind = kind[bool]{
		id: KindBool,
		extract: func(v Value) (bool, bool) {
			return v.Bool(), v.Type == ValueBool
		},
	}

	intKind = kind[int]{
		id: KindInt,
		extract: func(v Value) (int, bool) {
			if v.Type != ValueInt {
				return 0, false
			}
			i := int(v.Int())
			// Rejects values that overflow int on 32-bit platforms.
			return i, int64(i) == v.Int()
		},
	}

	floatKind          = newFloatKind(KindFloat, true)
	floatInclusiveKind = newFloatKind(KindFloatInclusive, false)

	stringKind = kind[string]{
		id: KindString,
		extract: func(v Value) (string, bool) {
			return v.Str(), v.Type == ValueString
		},
	}
)

func newFloatKind(id Kind, finite bool) kind[float64] {
	return kind[float64]{
		id: id,
		extract: func(v Value) (float64, bool) {
			var f float64
			switch v.Type {
			case ValueFloat:
				f = v.Float()
			case ValueInt:
				f = float64(v.Int())
			default:
				return 0, false
			}
			if finite && (math.IsNaN(f) || math.IsInf(f, 0)) {
				return 0, false
			}
			return f, true
		},
	}
}
