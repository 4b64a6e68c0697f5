package result

import (
	"errors"
	"fmt"
)

// PanicError wraps a panic value that was recovered inside a capturing
// boundary (Map, FlatMap, Try, the Lift adapters) and is not itself an error.
// Panic values that already implement error are stored verbatim so that
// errors.Is and errors.As gates keep working downstream.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("result: recovered panic: %v", e.Value)
}

// capturedError normalizes a recovered panic value into an error.
func capturedError(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return &PanicError{Value: rec}
}

// FlatMapErr chains error handlers, allowing recovery paths that still return
// Results. Successful Results pass through untouched.
//
// Example:
//
//	recovered := result.FlatMapErr(load(), func(err error) result.Result[Config] {
//		return loadFromFallback()
//	})
func FlatMapErr[T any](r Result[T], fn func(error) Result[T]) Result[T] {
	if fn == nil {
		panic("result: nil mapper")
	}
	if r.err == nil {
		return r
	}
	return fn(r.err)
}

// FlatMapErrMatching recovers only when predicate matches the stored error.
// Unmatched failures and successes pass through unchanged.
//
// Example:
//
//	res := result.FlatMapErrMatching(load(), isTimeout, retry)
func FlatMapErrMatching[T any](r Result[T], predicate func(error) bool, fn func(error) Result[T]) Result[T] {
	if predicate == nil {
		panic("result: nil predicate")
	}
	if fn == nil {
		panic("result: nil mapper")
	}
	if r.err == nil || !predicate(r.err) {
		return r
	}
	return fn(r.err)
}

// FlatMapErrAs recovers only when the stored error matches the target type E
// under errors.As semantics, handing the typed error to fn.
//
// Example:
//
//	res := result.FlatMapErrAs(load(), func(e *fs.PathError) result.Result[Config] {
//		return defaults()
//	})
func FlatMapErrAs[E error, T any](r Result[T], fn func(E) Result[T]) Result[T] {
	if fn == nil {
		panic("result: nil mapper")
	}
	if r.err == nil {
		return r
	}
	var target E
	if !errors.As(r.err, &target) {
		return r
	}
	return fn(target)
}

// Recover converts an error Result into success using fn while keeping success
// values untouched. fn is invoked lazily, only on the failure path.
//
// Example:
//
//	res := result.Recover(loadConfig(), func(err error) Config {
//		return defaultConfig
//	})
func Recover[T any](r Result[T], fn func(error) T) Result[T] {
	if fn == nil {
		panic("result: nil fallback")
	}
	if r.err == nil {
		return r
	}
	return Ok(fn(r.err))
}

// RecoverMatching converts an error Result into success only when predicate
// matches the stored error; unmatched failures pass through unchanged.
func RecoverMatching[T any](r Result[T], predicate func(error) bool, fn func(error) T) Result[T] {
	if predicate == nil {
		panic("result: nil predicate")
	}
	if fn == nil {
		panic("result: nil fallback")
	}
	if r.err == nil || !predicate(r.err) {
		return r
	}
	return Ok(fn(r.err))
}

// RecoverAs converts an error Result into success only when the stored error
// matches the target type E under errors.As semantics.
func RecoverAs[E error, T any](r Result[T], fn func(E) T) Result[T] {
	if fn == nil {
		panic("result: nil fallback")
	}
	if r.err == nil {
		return r
	}
	var target E
	if !errors.As(r.err, &target) {
		return r
	}
	return Ok(fn(target))
}

// Fallback replaces any failure with the given value, leaving successes
// untouched.
//
// Example:
//
//	res := result.Fallback(load(), defaultConfig)
func Fallback[T any](r Result[T], value T) Result[T] {
	if r.err == nil {
		return r
	}
	return Ok(value)
}

// FallbackMatching replaces a failure with the given value only when predicate
// matches the stored error.
func FallbackMatching[T any](r Result[T], predicate func(error) bool, value T) Result[T] {
	if predicate == nil {
		panic("result: nil predicate")
	}
	if r.err == nil || !predicate(r.err) {
		return r
	}
	return Ok(value)
}

// TapErrMatching executes fn only when the Result is a failure and predicate
// matches the stored error, returning the original Result unchanged.
func TapErrMatching[T any](r Result[T], predicate func(error) bool, fn func(error)) Result[T] {
	if predicate == nil {
		panic("result: nil predicate")
	}
	if fn == nil {
		panic("result: nil tap")
	}
	if r.err != nil && predicate(r.err) {
		fn(r.err)
	}
	return r
}

// TapErrAs executes fn only when the stored error matches the target type E
// under errors.As semantics, handing the typed error to fn. The original
// Result is returned unchanged.
//
// Example:
//
//	_ = result.TapErrAs(res, func(e *result.PanicError) {
//		log.Println("mapper panicked with", e.Value)
//	})
func TapErrAs[E error, T any](r Result[T], fn func(E)) Result[T] {
	if fn == nil {
		panic("result: nil tap")
	}
	if r.err == nil {
		return r
	}
	var target E
	if errors.As(r.err, &target) {
		fn(target)
	}
	return r
}
