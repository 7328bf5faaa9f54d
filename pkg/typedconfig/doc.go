/*
Package typedconfig provides strict, typed access to a dynamically-typed
configuration store.

# Overview

A Store maps string keys to values of unknown runtime type. An Accessor wraps a
Store and exposes one mandatory and one optional getter per kind. Each getter
returns either a value of the requested type or a *ValueError. It never
returns a silently converted value.

	store := config.New(map[string]any{
	    "port":    8080,
	    "debug":   true,
	    "ratio":   0.75,
	    "name":    "api",
	    "headers": map[string]any{"accept": "json"},
	})
	cfg := typedconfig.New(store)

	port, err := cfg.MandatoryInt("port")            // 8080
	name, err := cfg.OptionalString("missing")       // nil, nil
	retries, err := cfg.MandatoryInt("retries", 3)   // 3 (default)
	_, err = cfg.MandatoryInt("name")                // ErrInvalidValueType

# Kinds

  - Array: a key/value mapping. Native map[string]any values are returned
    unchanged; slices are returned keyed by decimal index.
  - Bool, Int, String: exact native type only. "42" is not an int and 1 is
    not a bool.
  - Float: float or integer (widened), finite only.
  - FloatInclusive: like Float, but NaN and ±Inf are returned unchanged.

# Absent, Null, and Defaults

A key that is missing and a key holding nil are treated the same. For either:

  - with a default, the default is returned as given;
  - without one, mandatory getters fail with ErrMissingMandatoryValue and
    optional getters return nil.

Defaults never rescue a present value of the wrong type: that is always
ErrInvalidValueType.

# Errors

Failures are *ValueError values wrapping ErrMissingMandatoryValue or
ErrInvalidValueType:

	_, err := cfg.MandatoryInt("name")
	if typedconfig.IsInvalidType(err) {
	    var ve *typedconfig.ValueError
	    errors.As(err, &ve)
	    log.Printf("%s holds %s", ve.Key, ve.Got.Describe())
	}

# Observability

Lookups can be logged with WithLogger and measured with WithMetrics and
WithSpanManager. All three are off by default.

# Thread Safety

An Accessor is safe for concurrent use when its Store is.
*/
package typedconfig
