package result

// Lift adapters convert ordinary fallible functions into Result-returning
// ones. The returned function runs the original inside the same capturing
// boundary used by Map and FlatMap: a returned error or a recovered panic
// becomes a failure, other outcomes become successes.

// Lift0 adapts a zero-argument fallible function.
//
// Example:
//
//	load := result.Lift0(config.Load)
//	res := load()
func Lift0[R any](fn func() (R, error)) func() Result[R] {
	if fn == nil {
		panic("result: nil fn")
	}
	return func() Result[R] {
		return Try(fn)
	}
}

// Lift1 adapts a one-argument fallible function.
//
// Example:
//
//	atoi := result.Lift1(strconv.Atoi)
//	res := atoi("42")
func Lift1[T1 any, R any](fn func(T1) (R, error)) func(T1) Result[R] {
	if fn == nil {
		panic("result: nil fn")
	}
	return func(t1 T1) Result[R] {
		return Try(func() (R, error) { return fn(t1) })
	}
}

// Lift2 adapts a two-argument fallible function.
func Lift2[T1 any, T2 any, R any](fn func(T1, T2) (R, error)) func(T1, T2) Result[R] {
	if fn == nil {
		panic("result: nil fn")
	}
	return func(t1 T1, t2 T2) Result[R] {
		return Try(func() (R, error) { return fn(t1, t2) })
	}
}

// Lift3 adapts a three-argument fallible function.
func Lift3[T1 any, T2 any, T3 any, R any](fn func(T1, T2, T3) (R, error)) func(T1, T2, T3) Result[R] {
	if fn == nil {
		panic("result: nil fn")
	}
	return func(t1 T1, t2 T2, t3 T3) Result[R] {
		return Try(func() (R, error) { return fn(t1, t2, t3) })
	}
}

// Lift4 adapts a four-argument fallible function.
func Lift4[T1 any, T2 any, T3 any, T4 any, R any](fn func(T1, T2, T3, T4) (R, error)) func(T1, T2, T3, T4) Result[R] {
	if fn == nil {
		panic("result: nil fn")
	}
	return func(t1 T1, t2 T2, t3 T3, t4 T4) Result[R] {
		return Try(func() (R, error) { return fn(t1, t2, t3, t4) })
	}
}
