package typedconfig

import "fmt"

// MandatoryArray returns the mapping stored at key.
//
// Absent or null keys yield def[0] when a non-nil default is given and
// ErrMissingMandatoryValue otherwise. Native maps are returned as-is; sequences
// are returned as maps keyed by decimal index.
func (a *Accessor) MandatoryArray(key string, def ...map[string]any) (map[string]any, error) {
	v, _, err := resolve(a, arrayKind, key, true, def, hasMapDefault(def))
	return v, err
}

// OptionalArray returns the mapping stored at key, or nil when the key is
// absent or null and no non-nil default is given.
func (a *Accessor) OptionalArray(key string, def ...map[string]any) (map[string]any, error) {
	v, _, err := resolve(a, arrayKind, key, false, def, hasMapDefault(def))
	return v, err
}

// A nil map default is treated as no default at all.
func hasMapDefault(def []map[string]any) bool {
	return len(def) > 0 && def[0] != nil
}

// MandatoryBool returns the boolean stored at key.
func (a *Accessor) MandatoryBool(key string, def ...bool) (bool, error) {
	return mandatory(a, boolKind, key, def)
}

// OptionalBool returns the boolean stored at key, or nil when absent.
func (a *Accessor) OptionalBool(key string, def ...bool) (*bool, error) {
	return optional(a, boolKind, key, def)
}

// MandatoryInt returns the integer stored at key. Floats and numeric strings
// are rejected with ErrInvalidValueType.
func (a *Accessor) MandatoryInt(key string, def ...int) (int, error) {
	return mandatory(a, intKind, key, def)
}

// OptionalInt returns the integer stored at key, or nil when absent.
func (a *Accessor) OptionalInt(key string, def ...int) (*int, error) {
	return optional(a, intKind, key, def)
}

// MandatoryFloat returns the finite float stored at key. Integers are widened;
// NaN and ±Inf are rejected.
func (a *Accessor) MandatoryFloat(key string, def ...float64) (float64, error) {
	return mandatory(a, floatKind, key, def)
}

// OptionalFloat returns the finite float stored at key, or nil when absent.
func (a *Accessor) OptionalFloat(key string, def ...float64) (*float64, error) {
	return optional(a, floatKind, key, def)
}

// MandatoryFloatInclusive returns the float stored at key, including NaN and
// ±Inf.
func (a *Accessor) MandatoryFloatInclusive(key string, def ...float64) (float64, error) {
	return mandatory(a, floatInclusiveKind, key, def)
}

// OptionalFloatInclusive returns the float stored at key, including NaN and
// ±Inf, or nil when absent.
func (a *Accessor) OptionalFloatInclusive(key string, def ...float64) (*float64, error) {
	return optional(a, floatInclusiveKind, key, def)
}

// MandatoryString returns the string stored at key.
func (a *Accessor) MandatoryString(key string, def ...string) (string, error) {
	return mandatory(a, stringKind, key, def)
}

// OptionalString returns the string stored at key, or nil when absent.
func (a *Accessor) OptionalString(key string, def ...string) (*string, error) {
	return optional(a, stringKind, key, def)
}

// Lookup resolves key as kind k and returns the result boxed in any.
// Optional lookups that find nothing return (nil, nil). It backs tooling that
// picks the kind at runtime, such as the command-line client.
//
// A non-nil def[0] is converted to the kind the same way a stored value would
// be; a default that does not satisfy k fails with ErrInvalidValueType.
func (a *Accessor) Lookup(k Kind, key string, isMandatory bool, def ...any) (any, error) {
	switch k {
	case KindArray:
		return box(a, arrayKind, key, isMandatory, def)
	case KindBool:
		return box(a, boolKind, key, isMandatory, def)
	case KindInt:
		return box(a, intKind, key, isMandatory, def)
	case KindFloat:
		return box(a, floatKind, key, isMandatory, def)
	case KindFloatInclusive:
		return box(a, floatInclusiveKind, key, isMandatory, def)
	case KindString:
		return box(a, stringKind, key, isMandatory, def)
	default:
		return nil, fmt.Errorf("unknown kind %d", int(k))
	}
}

func box[T any](a *Accessor, k kind[T], key string, isMandatory bool, def []any) (any, error) {
	var typed []T
	if len(def) > 0 && def[0] != nil {
		d, ok := k.extract(Classify(def[0], true))
		if !ok {
			return nil, fmt.Errorf("default for %s: %w", k.id, ErrInvalidValueType)
		}
		typed = []T{d}
	}
	v, ok, err := resolve(a, k, key, isMandatory, typed, len(typed) > 0)
	if err != nil || !ok {
		return nil, err
	}
	return v, nil
}
