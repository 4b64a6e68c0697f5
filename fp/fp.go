// Package fp provides lightweight functional composition helpers for Go.
//
// Example:
//
//	value := fp.Pipe("go",
//		func(s string) string { return strings.ToUpper(s) },
//		func(s string) string { return s + "!" },
//	)
package fp

// Identity returns the supplied value unchanged.
//
// Example:
//
//	value := Identity(42)
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that always returns v.
//
// Example:
//
//	getDefault := Constant(time.Minute)
//	fmt.Println(getDefault())
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Pipe applies a sequence of functions to value. All functions must accept and
// return the same type.
//
// Example:
//
//	result := Pipe(2,
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 1 },
//	)
func Pipe[T any](value T, fns ...func(T) T) T {
	result := value
	for _, fn := range fns {
		result = fn(result)
	}
	return result
}

// Compose composes functions in right-to-left order.
//
// Example:
//
//	fn := Compose(
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 3 },
//	)
//	value := fn(5)
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		result := value
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}
		return result
	}
}

// Curry converts a binary function into its curried form.
//
// Example:
//
//	add := func(a, b int) int { return a + b }
//	curried := Curry(add)
//	addFive := curried(5)
//	result := addFive(3)
func Curry[A any, B any, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}

// Curry3 converts a ternary function into its curried form.
func Curry3[A any, B any, C any, D any](fn func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return fn(a, b, c)
			}
		}
	}
}

// Curry4 converts a four-argument function into its curried form.
func Curry4[A any, B any, C any, D any, E any](fn func(A, B, C, D) E) func(A) func(B) func(C) func(D) E {
	return func(a A) func(B) func(C) func(D) E {
		return func(b B) func(C) func(D) E {
			return func(c C) func(D) E {
				return func(d D) E {
					return fn(a, b, c, d)
				}
			}
		}
	}
}

// Partial fixes the first argument of a binary function.
//
// Example:
//
//	add := func(a, b int) int { return a + b }
//	addTen := Partial(add, 10)
//	value := addTen(5)
func Partial[A any, B any, C any](fn func(A, B) C, a A) func(B) C {
	return func(b B) C {
		return fn(a, b)
	}
}

// Partial2 fixes the first two arguments of a ternary function.
func Partial2[A any, B any, C any, D any](fn func(A, B, C) D, a A, b B) func(C) D {
	return func(c C) D {
		return fn(a, b, c)
	}
}

// Flip swaps the argument order of a binary function.
//
// Example:
//
//	div := func(a, b float64) float64 { return a / b }
//	half := Flip(div)(2) // curried divide-by-two
func Flip[A any, B any, C any](fn func(A, B) C) func(B) func(A) C {
	return func(b B) func(A) C {
		return func(a A) C {
			return fn(a, b)
		}
	}
}

// Not negates a predicate.
//
// Example:
//
//	nonEmpty := Not(func(s string) bool { return s == "" })
func Not[T any](predicate func(T) bool) func(T) bool {
	return func(v T) bool {
		return !predicate(v)
	}
}

// And combines predicates conjunctively with short-circuit evaluation.
func And[T any](predicates ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range predicates {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Or combines predicates disjunctively with short-circuit evaluation.
func Or[T any](predicates ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range predicates {
			if p(v) {
				return true
			}
		}
		return false
	}
}
