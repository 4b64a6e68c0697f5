// Package lazy defines deferred computations with memoized evaluation.
//
// Example:
//
//	config := lazy.New(loadConfig)
//	// loadConfig has not run yet
//	cfg := config.Get() // first access computes and caches
package lazy

// Lazy represents a computation whose result is produced on first access and
// cached for every later one. Evaluation is unsynchronized: two goroutines
// racing on the first Get may both run the supplier. Instances are intended
// for single-goroutine use or external synchronization.
type Lazy[T any] struct {
	fn        func() T
	value     T
	evaluated bool
}

// New wraps a supplier into a Lazy. The supplier runs at most once per
// goroutine-free use, on the first Get.
//
// Example:
//
//	pool := lazy.New(func() *Pool { return newPool(size) })
func New[T any](fn func() T) *Lazy[T] {
	if fn == nil {
		panic("lazy: nil supplier")
	}
	return &Lazy[T]{fn: fn}
}

// Of creates an already-evaluated Lazy holding value.
//
// Example:
//
//	ready := lazy.Of(42)
//	fmt.Println(ready.IsEvaluated()) // true
func Of[T any](value T) *Lazy[T] {
	return &Lazy[T]{value: value, evaluated: true}
}

// Get returns the computed value, running the supplier on first access and
// caching its result. The supplier reference is dropped after evaluation so
// captured state can be collected.
func (l *Lazy[T]) Get() T {
	if !l.evaluated {
		l.value = l.fn()
		l.evaluated = true
		l.fn = nil
	}
	return l.value
}

// IsEvaluated reports whether the supplier has already run.
func (l *Lazy[T]) IsEvaluated() bool {
	return l.evaluated
}

// Map derives a new Lazy whose value is fn applied to l's value. The
// derivation is itself deferred: neither l nor fn is touched until the
// returned Lazy is first accessed.
//
// Example:
//
//	port := lazy.Map(config, func(c Config) int { return c.Port })
func Map[T any, U any](l *Lazy[T], fn func(T) U) *Lazy[U] {
	if l == nil {
		panic("lazy: nil lazy")
	}
	if fn == nil {
		panic("lazy: nil mapper")
	}
	return New(func() U {
		return fn(l.Get())
	})
}

// FlatMap chains a Lazy with a function producing another Lazy, deferring the
// entire chain until first access.
//
// Example:
//
//	conn := lazy.FlatMap(config, func(c Config) *lazy.Lazy[Conn] {
//		return lazy.New(func() Conn { return dial(c.Addr) })
//	})
func FlatMap[T any, U any](l *Lazy[T], fn func(T) *Lazy[U]) *Lazy[U] {
	if l == nil {
		panic("lazy: nil lazy")
	}
	if fn == nil {
		panic("lazy: nil mapper")
	}
	return New(func() U {
		next := fn(l.Get())
		if next == nil {
			panic("lazy: mapper returned nil Lazy")
		}
		return next.Get()
	})
}
