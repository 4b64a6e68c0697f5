package option

import "github.com/lambdadepot/fn/seq"

// Tap executes fn when the Option is Some and returns the original Option
// unchanged, enabling inline observation in a chain.
//
// Example:
//
//	opt := option.Tap(lookup(id), func(u User) {
//		log.Println("found", u.Name)
//	})
func Tap[T any](o Option[T], fn func(T)) Option[T] {
	if fn == nil {
		panic("option: nil tap")
	}
	if o.ok {
		fn(o.value)
	}
	return o
}

// TapNone executes fn when the Option is None and returns the original Option
// unchanged.
func TapNone[T any](o Option[T], fn func()) Option[T] {
	if fn == nil {
		panic("option: nil tap")
	}
	if !o.ok {
		fn()
	}
	return o
}

// TapEither observes both states, invoking exactly one of the callbacks, and
// returns the original Option unchanged.
func TapEither[T any](o Option[T], onSome func(T), onNone func()) Option[T] {
	if onSome == nil || onNone == nil {
		panic("option: nil tap branch")
	}
	if o.ok {
		onSome(o.value)
	} else {
		onNone()
	}
	return o
}

// Zip combines two Options into one containing a pair, short-circuiting to
// None when either input is None.
func Zip[A any, B any](a Option[A], b Option[B]) Option[seq.Pair[A, B]] {
	if !a.ok || !b.ok {
		return None[seq.Pair[A, B]]()
	}
	return Some(seq.Pair[A, B]{First: a.value, Second: b.value})
}

// Sequence converts a slice of Options into an Option of slice, returning
// None when any element is None.
func Sequence[T any](opts []Option[T]) Option[[]T] {
	values := make([]T, 0, len(opts))
	for _, o := range opts {
		if !o.ok {
			return None[[]T]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}

// Traverse maps input values to Options and sequences them, returning None on
// the first absent result.
func Traverse[A any, B any](items []A, fn func(A) Option[B]) Option[[]B] {
	if fn == nil {
		panic("option: nil mapper")
	}
	values := make([]B, 0, len(items))
	for _, item := range items {
		o := fn(item)
		if !o.ok {
			return None[[]B]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}
