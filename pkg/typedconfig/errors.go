package typedconfig

import (
	"errors"
	"fmt"
)

// Sentinel errors for typed lookups.
var (
	// ErrMissingMandatoryValue indicates a mandatory key was absent or null
	// and no default was supplied.
	ErrMissingMandatoryValue = errors.New("missing mandatory value")

	// ErrInvalidValueType indicates the key holds a non-null value whose
	// native type does not satisfy the requested kind.
	ErrInvalidValueType = errors.New("invalid value type")
)

// ValueError wraps a lookup failure with the key and kind involved.
type ValueError struct {
	// Key is the configuration key that was looked up.
	Key string
	// Kind is the requested kind.
	Kind Kind
	// Got describes the value found in the store.
	Got Value
	// Err is ErrMissingMandatoryValue or ErrInvalidValueType.
	Err error
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	if errors.Is(e.Err, ErrInvalidValueType) {
		return fmt.Sprintf("config key %q (%s): %v: got %s", e.Key, e.Kind, e.Err, e.Got.Describe())
	}
	return fmt.Sprintf("config key %q (%s): %v", e.Key, e.Kind, e.Err)
}

// Unwrap returns the underlying sentinel for errors.Is/As support.
func (e *ValueError) Unwrap() error {
	return e.Err
}

// IsMissing reports whether err is a missing mandatory value error.
func IsMissing(err error) bool {
	return errors.Is(err, ErrMissingMandatoryValue)
}

// IsInvalidType reports whether err is an invalid value type error.
func IsInvalidType(err error) bool {
	return errors.Is(err, ErrInvalidValueType)
}
