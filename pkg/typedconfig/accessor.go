package typedconfig

import (
	"context"
	"log/slog"

	"github.com/randalmurphal/typedconfig/pkg/typedconfig/observability"
)

// Accessor resolves typed values from a shared Store.
//
// An Accessor holds no state besides its Store reference and observability
// hooks, so it is safe for concurrent use whenever the Store is.
type Accessor struct {
	store Store

	ctx     context.Context
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// New wraps store in an Accessor. The store is borrowed, not owned.
func New(store Store, opts ...Option) *Accessor {
	a := &Accessor{
		store:   store,
		ctx:     context.Background(),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// Store returns the Store passed to New.
func (a *Accessor) Store() Store {
	return a.store
}

// WithContext returns a copy of a whose lookups report spans and metrics
// under ctx. The copy shares the same Store.
func (a *Accessor) WithContext(ctx context.Context) *Accessor {
	if ctx == nil {
		ctx = context.Background()
	}
	cp := *a
	cp.ctx = ctx
	return &cp
}

// resolve is the single decision procedure behind every typed getter.
//
// It returns the value, whether a value exists (false only for optional
// lookups with nothing to return), and an error. Defaults rescue absent or
// null entries only; a present value of the wrong type is always an error.
func resolve[T any](a *Accessor, k kind[T], key string, mandatory bool, def []T, hasDef bool) (T, bool, error) {
	var zero T
	kindName := k.id.String()
	ctx, span := a.spans.StartLookupSpan(a.ctx, key, kindName)
	elapsed := observability.TimedOperation()

	finish := func(outcome string, err error) {
		a.metrics.RecordLookup(ctx, kindName, outcome, elapsed(), err)
		a.spans.EndSpanWithError(span, err)
		if err != nil {
			observability.LogLookupError(a.logger, key, kindName, err)
			return
		}
		observability.LogLookup(a.logger, key, kindName, outcome)
	}

	raw, present := a.store.Lookup(key)
	v := Classify(raw, present)

	if v.IsEmpty() {
		switch {
		case hasDef:
			finish(observability.OutcomeDefault, nil)
			return def[0], true, nil
		case mandatory:
			err := &ValueError{Key: key, Kind: k.id, Got: v, Err: ErrMissingMandatoryValue}
			finish(observability.OutcomeMissing, err)
			return zero, false, err
		default:
			finish(observability.OutcomeAbsent, nil)
			return zero, false, nil
		}
	}

	out, ok := k.extract(v)
	if !ok {
		err := &ValueError{Key: key, Kind: k.id, Got: v, Err: ErrInvalidValueType}
		finish(observability.OutcomeInvalid, err)
		return zero, false, err
	}

	finish(observability.OutcomeValue, nil)
	return out, true, nil
}

// mandatory and optional adapt resolve to the public getter shapes.

func mandatory[T any](a *Accessor, k kind[T], key string, def []T) (T, error) {
	v, _, err := resolve(a, k, key, true, def, len(def) > 0)
	return v, err
}

func optional[T any](a *Accessor, k kind[T], key string, def []T) (*T, error) {
	v, ok, err := resolve(a, k, key, false, def, len(def) > 0)
	if err != nil || !ok {
		return nil, err
	}
	return &v, nil
}
