// Package getter provides reusable nil-safe property accessor chains built on
// Option. A Getter captures a path through nested structs where any step may
// be absent (nil pointer, failed guard) and collapses the whole access into a
// single Option-returning call.
//
// Example:
//
//	street := getter.Then(
//		getter.OfPtr(func(u User) *Address { return u.Address }),
//		func(a Address) string { return a.Street },
//	)
//	name := street.Get(user).GetOrElse("unknown")
package getter

import "github.com/lambdadepot/fn/option"

// Getter is a reusable accessor extracting an O property from an I input,
// wrapped as an Option. Getters are immutable; composition methods return new
// instances.
type Getter[I any, O any] struct {
	get func(I) option.Option[O]
}

// Of builds a Getter from a plain accessor whose result is always present.
func Of[I any, O any](fn func(I) O) Getter[I, O] {
	if fn == nil {
		panic("getter: nil accessor")
	}
	return Getter[I, O]{get: func(in I) option.Option[O] {
		return option.Some(fn(in))
	}}
}

// OfPtr builds a Getter from a pointer-returning accessor, treating nil as
// absence.
func OfPtr[I any, O any](fn func(I) *O) Getter[I, O] {
	if fn == nil {
		panic("getter: nil accessor")
	}
	return Getter[I, O]{get: func(in I) option.Option[O] {
		return option.FromPtr(fn(in))
	}}
}

// FromOption builds a Getter from an accessor that already reports absence
// through an Option.
func FromOption[I any, O any](fn func(I) option.Option[O]) Getter[I, O] {
	if fn == nil {
		panic("getter: nil accessor")
	}
	return Getter[I, O]{get: fn}
}

// When gates the accessor with a predicate: values failing the guard are
// treated as absent.
func (g Getter[I, O]) When(predicate func(O) bool) Getter[I, O] {
	if predicate == nil {
		panic("getter: nil predicate")
	}
	prev := g.get
	return Getter[I, O]{get: func(in I) option.Option[O] {
		return prev(in).Filter(predicate)
	}}
}

// Then appends a plain accessor step to the chain.
func Then[I any, O any, U any](g Getter[I, O], next func(O) U) Getter[I, U] {
	if next == nil {
		panic("getter: nil accessor")
	}
	return Getter[I, U]{get: func(in I) option.Option[U] {
		return option.Map(g.get(in), next)
	}}
}

// ThenPtr appends a pointer-returning accessor step, treating nil as absence.
func ThenPtr[I any, O any, U any](g Getter[I, O], next func(O) *U) Getter[I, U] {
	if next == nil {
		panic("getter: nil accessor")
	}
	return Getter[I, U]{get: func(in I) option.Option[U] {
		return option.FlatMap(g.get(in), func(o O) option.Option[U] {
			return option.FromPtr(next(o))
		})
	}}
}

// ThenGetter appends a whole Getter as the next step in the chain.
func ThenGetter[I any, O any, V any](g Getter[I, O], next Getter[O, V]) Getter[I, V] {
	if next.get == nil {
		panic("getter: nil getter")
	}
	return Getter[I, V]{get: func(in I) option.Option[V] {
		return option.FlatMap(g.get(in), next.get)
	}}
}

// Get runs the accessor chain against in. Any absent step yields None.
func (g Getter[I, O]) Get(in I) option.Option[O] {
	if g.get == nil {
		return option.None[O]()
	}
	return g.get(in)
}
