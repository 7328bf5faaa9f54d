// Package koanfstore adapts a koanf configuration tree to typedconfig.Store
// and provides a Loader that layers YAML files, .env files, and environment
// variables into one tree.
//
// Sources loaded later override earlier ones:
//  1. Maps passed to LoadMap (typically defaults)
//  2. Configuration file (YAML)
//  3. .env files
//  4. Environment variables
//
// Values from environment variables and .env files are strings. The typed
// accessor never parses strings, so "8080" from TYPEDCONFIG_SERVER_PORT is an
// invalid int; use string getters for environment-sourced keys or supply
// typed values through a file.
package koanfstore

import (
	"github.com/knadh/koanf/v2"
)

// Store is a typedconfig.Store backed by a koanf instance.
type Store struct {
	k *koanf.Koanf
}

// New wraps an existing koanf instance. The instance is shared, not copied.
func New(k *koanf.Koanf) *Store {
	return &Store{k: k}
}

// Lookup returns the value at the dotted key path.
// Intermediate paths resolve to their sub-tree as map[string]any.
func (s *Store) Lookup(key string) (any, bool) {
	if !s.k.Exists(key) {
		return nil, false
	}
	return s.k.Get(key), true
}

// Keys returns every leaf key.
func (s *Store) Keys() []string {
	return s.k.Keys()
}

// Raw returns a copy of the whole configuration tree.
func (s *Store) Raw() map[string]any {
	return s.k.Raw()
}

// Koanf returns the underlying koanf instance.
func (s *Store) Koanf() *koanf.Koanf {
	return s.k
}
