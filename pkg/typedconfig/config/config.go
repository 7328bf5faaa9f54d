package config

import (
	"sort"
	"strconv"
	"strings"
)

// Config is a read-only, in-memory store over a nested map.
//
// Keys are dotted paths. A key is first matched exactly against the top-level
// map, so flat documents with dots in their keys work unchanged. Otherwise the
// longest top-level key that prefixes the path is taken and the remaining
// segments are walked through nested maps and sequences.
type Config struct {
	data map[string]any
}

// New creates a Config from the given map.
// If data is nil, an empty Config is returned. The map is not copied.
func New(data map[string]any) Config {
	if data == nil {
		data = make(map[string]any)
	}
	return Config{data: data}
}

// Lookup returns the raw value at key and whether it exists.
// A present key holding nil returns (nil, true).
func (c Config) Lookup(key string) (any, bool) {
	if v, ok := c.data[key]; ok {
		return v, true
	}
	if !strings.Contains(key, ".") {
		return nil, false
	}

	segs := strings.Split(key, ".")
	for i := len(segs) - 1; i > 0; i-- {
		head, ok := c.data[strings.Join(segs[:i], ".")]
		if !ok {
			continue
		}
		if v, ok := walk(head, segs[i:]); ok {
			return v, true
		}
	}
	return nil, false
}

func walk(cur any, segs []string) (any, bool) {
	for _, seg := range segs {
		next, ok := child(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// child steps one path segment into a container.
func child(container any, seg string) (any, bool) {
	switch c := container.(type) {
	case map[string]any:
		v, ok := c[seg]
		return v, ok
	case map[any]any:
		v, ok := c[seg]
		return v, ok
	case []any:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= len(c) {
			return nil, false
		}
		return c[i], true
	default:
		return nil, false
	}
}

// Has returns true if the key exists in the config, including null values.
func (c Config) Has(key string) bool {
	_, ok := c.Lookup(key)
	return ok
}

// Keys returns the dotted path of every leaf value, sorted.
// Nested maps are descended; sequences and scalars are leaves. An empty map is
// reported as a leaf so it stays addressable.
func (c Config) Keys() []string {
	var keys []string
	collectKeys("", c.data, &keys)
	sort.Strings(keys)
	return keys
}

func collectKeys(prefix string, m map[string]any, out *[]string) {
	for k, v := range m {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok && len(nested) > 0 {
			collectKeys(path, nested, out)
			continue
		}
		*out = append(*out, path)
	}
}

// Len returns the number of top-level keys.
func (c Config) Len() int {
	return len(c.data)
}

// Raw returns the underlying map.
// The returned map should not be modified.
func (c Config) Raw() map[string]any {
	return c.data
}
