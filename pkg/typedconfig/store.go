package typedconfig

// Store is the read-only capability the Accessor queries.
//
// Lookup returns the raw value and true when key exists, even if the value is
// nil. It returns false when the key is absent. Implementations must return
// the same answer for a key for the duration of a call sequence; the Accessor
// never mutates, reloads, or closes a Store.
type Store interface {
	Lookup(key string) (any, bool)
}

// StoreFunc adapts a plain function to Store.
type StoreFunc func(key string) (any, bool)

// Lookup implements Store.
func (f StoreFunc) Lookup(key string) (any, bool) {
	return f(key)
}

// MapStore is a Store over a flat map. Keys are matched exactly.
type MapStore map[string]any

// Lookup implements Store.
func (m MapStore) Lookup(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}
