// Package validated accumulates multiple errors while still returning values.
//
// Use it for input validation, DTO decoding, and config parsing where all
// issues should be reported at once instead of short-circuiting on the first
// failure. It is the accumulating counterpart to package result, which always
// stops at the first error.
package validated

import (
	"errors"

	"github.com/lambdadepot/fn/result"
)

// Validated wraps either a successful value or a collection of validation errors.
type Validated[E any, T any] struct {
	value  T
	errors []E
}

// Valid constructs a successful Validated value.
func Valid[E any, T any](value T) Validated[E, T] {
	return Validated[E, T]{value: value}
}

// Invalid constructs a failed Validated aggregating the provided errors. At
// least one error is required; an invalid state without a cause panics.
func Invalid[E any, T any](errs ...E) Validated[E, T] {
	if len(errs) == 0 {
		panic("validated: Invalid requires at least one error")
	}
	copyErrs := make([]E, len(errs))
	copy(copyErrs, errs)
	return Validated[E, T]{errors: copyErrs}
}

// IsValid reports whether the value is valid.
func (v Validated[E, T]) IsValid() bool {
	return len(v.errors) == 0
}

// Errors returns a copy of the collected errors.
func (v Validated[E, T]) Errors() []E {
	if len(v.errors) == 0 {
		return []E{}
	}
	copyErrs := make([]E, len(v.errors))
	copy(copyErrs, v.errors)
	return copyErrs
}

// UnsafeValue returns the stored value even when invalid.
func (v Validated[E, T]) UnsafeValue() T {
	return v.value
}

// Map transforms the stored value when valid. Errors propagate unchanged.
func Map[E any, A any, B any](v Validated[E, A], fn func(A) B) Validated[E, B] {
	if fn == nil {
		panic("validated: nil mapper")
	}
	if !v.IsValid() {
		return Validated[E, B]{errors: v.errors}
	}
	return Valid[E, B](fn(v.value))
}

// Map2 combines two Validated values with fn, accumulating errors from both
// sides when either is invalid.
func Map2[E any, A any, B any, C any](a Validated[E, A], b Validated[E, B], fn func(A, B) C) Validated[E, C] {
	if fn == nil {
		panic("validated: nil mapper")
	}
	if a.IsValid() && b.IsValid() {
		return Valid[E](fn(a.value, b.value))
	}
	return Validated[E, C]{errors: appendErrors(appendErrors(nil, a.errors), b.errors)}
}

// FlatMap chains a Validated-producing function. Unlike Map2 this
// short-circuits: fn never runs when v is already invalid, so errors from the
// two stages do not accumulate with each other.
func FlatMap[E any, A any, B any](v Validated[E, A], fn func(A) Validated[E, B]) Validated[E, B] {
	if fn == nil {
		panic("validated: nil mapper")
	}
	if !v.IsValid() {
		return Validated[E, B]{errors: v.errors}
	}
	return fn(v.value)
}

// Zip combines two Validated values, accumulating errors from both sides.
func Zip[E any, A any, B any](a Validated[E, A], b Validated[E, B]) Validated[E, result.Tuple2[A, B]] {
	return Map2(a, b, func(av A, bv B) result.Tuple2[A, B] {
		return result.Tuple2[A, B]{First: av, Second: bv}
	})
}

// Sequence collapses a slice of Validated values, accumulating every error
// across the slice or returning all values when none failed.
func Sequence[E any, T any](items []Validated[E, T]) Validated[E, []T] {
	if len(items) == 0 {
		return Valid[E, []T]([]T{})
	}
	values := make([]T, 0, len(items))
	var errs []E
	for _, item := range items {
		if item.IsValid() {
			values = append(values, item.value)
			continue
		}
		errs = appendErrors(errs, item.errors)
	}
	if len(errs) > 0 {
		return Validated[E, []T]{errors: errs}
	}
	return Valid[E, []T](values)
}

// Traverse maps the input slice to Validated values and sequences them.
func Traverse[E any, A any, B any](items []A, fn func(A) Validated[E, B]) Validated[E, []B] {
	if fn == nil {
		panic("validated: nil mapper")
	}
	if len(items) == 0 {
		return Valid[E, []B]([]B{})
	}
	values := make([]B, 0, len(items))
	var errs []E
	for _, item := range items {
		res := fn(item)
		if res.IsValid() {
			values = append(values, res.value)
			continue
		}
		errs = appendErrors(errs, res.errors)
	}
	if len(errs) > 0 {
		return Validated[E, []B]{errors: errs}
	}
	return Valid[E, []B](values)
}

// FromResult lifts a Result into a Validated using error accumulation semantics.
func FromResult[T any](res result.Result[T]) Validated[error, T] {
	if value, ok := res.Value(); ok {
		return Valid[error](value)
	}
	return Invalid[error, T](res.Err())
}

// ToResult converts a Validated of errors into a Result, joining the
// accumulated errors when the value is invalid.
func ToResult[T any](v Validated[error, T]) result.Result[T] {
	if v.IsValid() {
		return result.Ok(v.value)
	}
	return result.Err[T](errors.Join(v.errors...))
}

func appendErrors[E any](dst []E, src []E) []E {
	if len(src) == 0 {
		return dst
	}
	if len(dst) == 0 {
		dst = make([]E, 0, len(src))
	}
	return append(dst, src...)
}
