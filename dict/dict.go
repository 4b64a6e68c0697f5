// Package dict provides functional helpers over Go maps, reporting absent
// keys through Options instead of bare ok flags.
package dict

import "github.com/lambdadepot/fn/option"

// Get looks up key, wrapping the outcome as an Option.
//
// Example:
//
//	port := dict.Get(env, "PORT").GetOrElse("8080")
func Get[K comparable, V any](m map[K]V, key K) option.Option[V] {
	v, ok := m[key]
	return option.FromOk(v, ok)
}

// GetOrElse looks up key, returning fallback when it is absent.
func GetOrElse[K comparable, V any](m map[K]V, key K, fallback V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

// GetOrElseFunc looks up key, lazily computing the fallback only when the key
// is absent.
func GetOrElseFunc[K comparable, V any](m map[K]V, key K, fn func() V) V {
	if fn == nil {
		panic("dict: nil fallback")
	}
	if v, ok := m[key]; ok {
		return v
	}
	return fn()
}

// GetOrPut returns the value stored under key, inserting and returning the
// supplier's value when the key is absent. The supplier only runs on a miss.
func GetOrPut[K comparable, V any](m map[K]V, key K, fn func() V) V {
	if fn == nil {
		panic("dict: nil supplier")
	}
	if v, ok := m[key]; ok {
		return v
	}
	v := fn()
	m[key] = v
	return v
}

// Keys collects the map's keys. Order is unspecified.
func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Values collects the map's values. Order is unspecified.
func Values[K comparable, V any](m map[K]V) []V {
	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}

// MapValues transforms every value with fn, returning a new map. The input is
// never mutated.
func MapValues[K comparable, V any, U any](m map[K]V, fn func(V) U) map[K]U {
	if fn == nil {
		panic("dict: nil mapper")
	}
	out := make(map[K]U, len(m))
	for k, v := range m {
		out[k] = fn(v)
	}
	return out
}

// Filter keeps entries satisfying predicate, returning a new map.
func Filter[K comparable, V any](m map[K]V, predicate func(K, V) bool) map[K]V {
	if predicate == nil {
		panic("dict: nil predicate")
	}
	out := make(map[K]V)
	for k, v := range m {
		if predicate(k, v) {
			out[k] = v
		}
	}
	return out
}

// Merge combines the maps left to right into a new map; later entries win on
// key collisions.
func Merge[K comparable, V any](maps ...map[K]V) map[K]V {
	size := 0
	for _, m := range maps {
		size += len(m)
	}
	out := make(map[K]V, size)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
