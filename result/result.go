// Package result provides a success/error abstraction similar to Go's (T, error).
//
// Example:
//
//	res := result.Ok("done")
//	value, err := res.Unwrap()
//	_ = value
//
// Result combinators uphold Functor/Monad laws (see laws_result_test.go) to make
// transformations predictable even across retries and RPC boundaries. Map and
// FlatMap are capturing boundaries: a panic raised inside the mapper is
// recovered and converted into a failure instead of unwinding past the call.
package result

import "fmt"

// Result represents the outcome of a computation that may succeed with a value
// or fail with an error. It never panics except in Unsafe helpers and on
// violated preconditions (nil errors, nil function arguments).
//
// Example:
//
//	res := result.Ok("token")
//	value, err := res.Unwrap()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(value)
type Result[T any] struct {
	value T
	err   error
}

// Ok constructs a successful Result carrying value.
//
// Example:
//
//	res := result.Ok(200)
//	fmt.Println(res.IsOk()) // true
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err constructs a failed Result. A nil error is a precondition violation and
// panics immediately; a failure must always carry its cause.
//
// Example:
//
//	res := result.Err[int](errors.New("boom"))
//	_, err := res.Unwrap()
//	fmt.Println(err)
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result: nil error")
	}
	return Result[T]{err: err}
}

// FromTuple converts a standard Go (value, error) pair to a Result.
//
// Example:
//
//	value, err := repo.Load()
//	res := result.FromTuple(value, err)
//	return res
func FromTuple[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// Try runs fn inside a capturing boundary and converts its outcome into a
// Result: a returned error or a recovered panic becomes a failure. Panic
// values that are not errors are wrapped in *PanicError.
//
// Example:
//
//	res := result.Try(func() (int, error) {
//		return strconv.Atoi(raw)
//	})
func Try[T any](fn func() (T, error)) (out Result[T]) {
	if fn == nil {
		panic("result: nil fn")
	}
	defer func() {
		if rec := recover(); rec != nil {
			out = Err[T](capturedError(rec))
		}
	}()
	return FromTuple(fn())
}

// IsOk reports whether the Result represents success.
//
// Example:
//
//	if res.IsOk() {
//		fmt.Println("success")
//	}
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the Result represents failure.
//
// Example:
//
//	if res.IsErr() {
//		log.Println(res.Err())
//	}
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Err returns the stored error, or nil when the Result is a success.
//
// Example:
//
//	if err := res.Err(); err != nil {
//		return err
//	}
func (r Result[T]) Err() error {
	return r.err
}

// Value returns the stored value along with a boolean reporting success. On
// failure the zero value is returned; no panic is raised.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.err == nil
}

// UnsafeUnwrap returns the underlying value or panics if the Result is an error.
//
// Example:
//
//	func mustConfig(res result.Result[Config]) Config {
//		return res.UnsafeUnwrap()
//	}
func (r Result[T]) UnsafeUnwrap() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// Unwrap returns the value and error, mirroring standard Go semantics.
//
// Example:
//
//	value, err := res.Unwrap()
//	if err != nil {
//		return err
//	}
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// ToTuple exposes the underlying (value, error) pair, matching idiomatic Go
// callers that expect tuple returns.
//
// Example:
//
//	value, err := res.ToTuple()
func (r Result[T]) ToTuple() (T, error) {
	return r.value, r.err
}

// UnwrapOr returns the value when ok, otherwise returns fallback.
//
// Example:
//
//	code := res.UnwrapOr(http.StatusInternalServerError)
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err == nil {
		return r.value
	}
	return fallback
}

// UnwrapOrElse lazily computes a fallback using fn when the Result is an error.
// fn is never invoked on success.
//
// Example:
//
//	value := res.UnwrapOrElse(func(err error) string {
//		return "error: " + err.Error()
//	})
func (r Result[T]) UnwrapOrElse(fn func(error) T) T {
	if fn == nil {
		panic("result: nil fallback")
	}
	if r.err == nil {
		return r.value
	}
	return fn(r.err)
}

// String implements fmt.Stringer for debugging.
func (r Result[T]) String() string {
	if r.err == nil {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Map transforms the value on success. The mapper runs inside a capturing
// boundary: a panic inside fn is recovered and becomes a failure. On failure
// fn is never invoked and the error propagates unchanged.
//
// Example:
//
//	length := result.Map(res, func(s string) int { return len(s) })
func Map[T any, U any](r Result[T], fn func(T) U) (out Result[U]) {
	if fn == nil {
		panic("result: nil mapper")
	}
	if r.err != nil {
		return Err[U](r.err)
	}
	defer func() {
		if rec := recover(); rec != nil {
			out = Err[U](capturedError(rec))
		}
	}()
	return Ok(fn(r.value))
}

// FlatMap chains computations, propagating the first error. Like Map, the
// mapper runs inside a capturing boundary: a panic inside fn becomes a
// failure rather than unwinding the caller.
//
// Example:
//
//	res := result.FlatMap(loadUser(), fetchProfile)
func FlatMap[T any, U any](r Result[T], fn func(T) Result[U]) (out Result[U]) {
	if fn == nil {
		panic("result: nil mapper")
	}
	if r.err != nil {
		return Err[U](r.err)
	}
	defer func() {
		if rec := recover(); rec != nil {
			out = Err[U](capturedError(rec))
		}
	}()
	return fn(r.value)
}

// MapErr transforms the stored error when present. The mapped error must be
// non-nil; success values pass through untouched.
//
// Example:
//
//	res := result.MapErr(load(), func(err error) error {
//		return fmt.Errorf("wrap: %w", err)
//	})
func MapErr[T any](r Result[T], fn func(error) error) Result[T] {
	if fn == nil {
		panic("result: nil mapper")
	}
	if r.err == nil {
		return r
	}
	return Err[T](fn(r.err))
}

// Fold collapses the Result into a single value. It is the escape hatch for
// applying an arbitrary transformation over the whole wrapper.
//
// Example:
//
//	message := result.Fold(res,
//		func(err error) string { return "failed: " + err.Error() },
//		func(val string) string { return "ok: " + val },
//	)
func Fold[T any, U any](r Result[T], onErr func(error) U, onOk func(T) U) U {
	if onErr == nil || onOk == nil {
		panic("result: nil fold branch")
	}
	if r.err == nil {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Match dispatches on the Result's state, invoking exactly one of the two
// callbacks.
//
// Example:
//
//	result.Match(res,
//		func(v int) { fmt.Println("got", v) },
//		func(err error) { fmt.Println("failed:", err) },
//	)
func Match[T any](r Result[T], onOk func(T), onErr func(error)) {
	if onOk == nil || onErr == nil {
		panic("result: nil match branch")
	}
	if r.err == nil {
		onOk(r.value)
		return
	}
	onErr(r.err)
}

// Tap executes fn when the Result is Ok and returns the original Result.
//
// Example:
//
//	_ = result.Tap(saveUser(), func(u User) {
//		metrics.Count("user_saved")
//	})
func Tap[T any](r Result[T], fn func(T)) Result[T] {
	if fn == nil {
		panic("result: nil tap")
	}
	if r.err == nil {
		fn(r.value)
	}
	return r
}

// TapErr executes fn when the Result is Err and returns the original Result.
//
// Example:
//
//	_ = result.TapErr(load(), func(err error) {
//		log.Println("load failed", err)
//	})
func TapErr[T any](r Result[T], fn func(error)) Result[T] {
	if fn == nil {
		panic("result: nil tap")
	}
	if r.err != nil {
		fn(r.err)
	}
	return r
}

// Collect gathers the successful values from the provided Results, ignoring failures.
// The returned slice never shares the backing array with inputs.
//
// Example:
//
//	values := result.Collect([]result.Result[int]{result.Ok(1), result.Err[int](err)})
func Collect[T any](results []Result[T]) []T {
	if len(results) == 0 {
		return []T{}
	}
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.err == nil {
			values = append(values, r.value)
		}
	}
	return values
}

// PartitionResults splits the input slice into successful values and collected errors.
//
// Example:
//
//	vals, errs := result.PartitionResults(results)
func PartitionResults[T any](results []Result[T]) ([]T, []error) {
	if len(results) == 0 {
		return []T{}, []error{}
	}
	values := make([]T, 0, len(results))
	errs := make([]error, 0, len(results))
	for _, r := range results {
		if r.err == nil {
			values = append(values, r.value)
			continue
		}
		errs = append(errs, r.err)
	}
	return values, errs
}

// Zip2 combines two results into one containing a pair of values.
//
// Example:
//
//	combined := result.Zip2(loadUser(), loadProfile())
func Zip2[A any, B any](ra Result[A], rb Result[B]) Result[Tuple2[A, B]] {
	if ra.err != nil {
		return Err[Tuple2[A, B]](ra.err)
	}
	if rb.err != nil {
		return Err[Tuple2[A, B]](rb.err)
	}
	return Ok(Tuple2[A, B]{First: ra.value, Second: rb.value})
}

// Zip3 combines three results into one containing a triple of values.
//
// Example:
//
//	combined := result.Zip3(loadUser(), loadProfile(), loadSettings())
func Zip3[A any, B any, C any](ra Result[A], rb Result[B], rc Result[C]) Result[Tuple3[A, B, C]] {
	if ra.err != nil {
		return Err[Tuple3[A, B, C]](ra.err)
	}
	if rb.err != nil {
		return Err[Tuple3[A, B, C]](rb.err)
	}
	if rc.err != nil {
		return Err[Tuple3[A, B, C]](rc.err)
	}
	return Ok(Tuple3[A, B, C]{First: ra.value, Second: rb.value, Third: rc.value})
}

// Sequence converts a slice of Results into a Result containing a slice of
// values, failing fast on the first error.
//
// Example:
//
//	res := result.Sequence([]result.Result[int]{loadA(), loadB()})
func Sequence[T any](results []Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			return Err[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok(values)
}

// Traverse maps input values to Results and sequences them.
//
// Example:
//
//	res := result.Traverse(ids, func(id int) result.Result[User] {
//		return loadUser(id)
//	})
func Traverse[A any, B any](items []A, fn func(A) Result[B]) Result[[]B] {
	if fn == nil {
		panic("result: nil mapper")
	}
	values := make([]B, 0, len(items))
	for _, item := range items {
		res := fn(item)
		if res.err != nil {
			return Err[[]B](res.err)
		}
		values = append(values, res.value)
	}
	return Ok(values)
}

// Tuple2 represents a pair of values.
//
// Example:
//
//	p := result.Tuple2[int, string]{First: 1, Second: "a"}
type Tuple2[A any, B any] struct {
	First  A
	Second B
}

// Tuple3 represents three values.
//
// Example:
//
//	t := result.Tuple3[int, string, bool]{First: 1, Second: "a", Third: true}
type Tuple3[A any, B any, C any] struct {
	First  A
	Second B
	Third  C
}
