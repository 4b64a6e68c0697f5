// Package set implements a value set with functional transformation helpers.
package set

// Set holds unique values of type T. The zero value is not usable; construct
// sets with New or Of.
type Set[T comparable] map[T]struct{}

// New creates an empty Set.
func New[T comparable]() Set[T] {
	return make(Set[T])
}

// Of creates a Set holding the listed values.
func Of[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts value into the set.
func (s Set[T]) Add(value T) {
	s[value] = struct{}{}
}

// Has reports whether value is a member.
func (s Set[T]) Has(value T) bool {
	_, ok := s[value]
	return ok
}

// Delete removes value from the set if present.
func (s Set[T]) Delete(value T) {
	delete(s, value)
}

// Len returns the number of members.
func (s Set[T]) Len() int {
	return len(s)
}

// Values collects the members into a slice. Order is unspecified.
func (s Set[T]) Values() []T {
	values := make([]T, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	return values
}

// Map transforms every member with fn into a new Set. Distinct inputs may
// collapse when fn maps them to the same output.
func Map[T comparable, U comparable](s Set[T], fn func(T) U) Set[U] {
	if fn == nil {
		panic("set: nil mapper")
	}
	out := make(Set[U], len(s))
	for v := range s {
		out[fn(v)] = struct{}{}
	}
	return out
}

// FlatMap applies fn to every member and unions the resulting sets.
func FlatMap[T comparable, U comparable](s Set[T], fn func(T) Set[U]) Set[U] {
	if fn == nil {
		panic("set: nil mapper")
	}
	out := make(Set[U])
	for v := range s {
		for u := range fn(v) {
			out[u] = struct{}{}
		}
	}
	return out
}

// Filter keeps members satisfying predicate in a new Set.
func Filter[T comparable](s Set[T], predicate func(T) bool) Set[T] {
	if predicate == nil {
		panic("set: nil predicate")
	}
	out := make(Set[T])
	for v := range s {
		if predicate(v) {
			out[v] = struct{}{}
		}
	}
	return out
}

// Union returns a new Set containing members of either input.
func Union[T comparable](a, b Set[T]) Set[T] {
	out := make(Set[T], len(a)+len(b))
	for v := range a {
		out[v] = struct{}{}
	}
	for v := range b {
		out[v] = struct{}{}
	}
	return out
}

// Intersect returns a new Set containing members of both inputs.
func Intersect[T comparable](a, b Set[T]) Set[T] {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	out := make(Set[T])
	for v := range small {
		if _, ok := large[v]; ok {
			out[v] = struct{}{}
		}
	}
	return out
}

// Diff returns a new Set with members of a that are not in b.
func Diff[T comparable](a, b Set[T]) Set[T] {
	out := make(Set[T])
	for v := range a {
		if _, ok := b[v]; !ok {
			out[v] = struct{}{}
		}
	}
	return out
}
