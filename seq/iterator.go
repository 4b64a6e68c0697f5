// Package seq offers eager and lazy functional helpers for Go slices.
package seq

// Iterator is a lazy, pull-based iterator.
type Iterator[T any] struct {
	next func() (T, bool)
}

// Next yields the next value. When ok is false, iteration is complete.
func (it Iterator[T]) Next() (T, bool) {
	if it.next == nil {
		var zero T
		return zero, false
	}
	return it.next()
}

// Of creates an iterator over the listed values.
func Of[T any](values ...T) Iterator[T] {
	return FromSlice(values)
}

// Empty returns an iterator that yields nothing.
func Empty[T any]() Iterator[T] {
	return Iterator[T]{}
}

// FromSlice creates an iterator over the provided slice without copying.
func FromSlice[T any](values []T) Iterator[T] {
	idx := 0
	return Iterator[T]{
		next: func() (T, bool) {
			if idx >= len(values) {
				var zero T
				return zero, false
			}
			v := values[idx]
			idx++
			return v, true
		},
	}
}

// MapIter lazily transforms iterator values.
func MapIter[A any, B any](it Iterator[A], fn func(A) B) Iterator[B] {
	return Iterator[B]{
		next: func() (B, bool) {
			v, ok := it.Next()
			if !ok {
				var zero B
				return zero, false
			}
			return fn(v), true
		},
	}
}

// FilterIter keeps values satisfying predicate.
func FilterIter[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	return Iterator[T]{
		next: func() (T, bool) {
			for {
				v, ok := it.Next()
				if !ok {
					var zero T
					return zero, false
				}
				if predicate(v) {
					return v, true
				}
			}
		},
	}
}

// Take returns an iterator that yields at most n elements.
func Take[T any](it Iterator[T], n int) Iterator[T] {
	if n <= 0 {
		return Iterator[T]{}
	}
	count := 0
	return Iterator[T]{
		next: func() (T, bool) {
			if count >= n {
				var zero T
				return zero, false
			}
			v, ok := it.Next()
			if !ok {
				var zero T
				return zero, false
			}
			count++
			return v, true
		},
	}
}

// Drop skips the first n elements.
func Drop[T any](it Iterator[T], n int) Iterator[T] {
	if n <= 0 {
		return it
	}
	skipped := false
	return Iterator[T]{
		next: func() (T, bool) {
			if !skipped {
				for range n {
					if _, ok := it.Next(); !ok {
						var zero T
						return zero, false
					}
				}
				skipped = true
			}
			return it.Next()
		},
	}
}

// ToSlice exhausts the iterator and collects its values.
func ToSlice[T any](it Iterator[T]) []T {
	var result []T
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		result = append(result, v)
	}
	if result == nil {
		return []T{}
	}
	return result
}

// Range yields the integers from start (inclusive) to end (exclusive).
func Range(start, end int) Iterator[int] {
	current := start
	return Iterator[int]{
		next: func() (int, bool) {
			if current >= end {
				return 0, false
			}
			v := current
			current++
			return v, true
		},
	}
}

// Repeat yields value forever. Always bound it with Take or TakeWhile.
func Repeat[T any](value T) Iterator[T] {
	return Iterator[T]{
		next: func() (T, bool) {
			return value, true
		},
	}
}

// Iterate yields seed, fn(seed), fn(fn(seed)) and so on, forever.
func Iterate[T any](seed T, fn func(T) T) Iterator[T] {
	current := seed
	first := true
	return Iterator[T]{
		next: func() (T, bool) {
			if first {
				first = false
				return current, true
			}
			current = fn(current)
			return current, true
		},
	}
}

// TakeWhile yields values while predicate holds, then stops permanently.
func TakeWhile[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	done := false
	return Iterator[T]{
		next: func() (T, bool) {
			var zero T
			if done {
				return zero, false
			}
			v, ok := it.Next()
			if !ok || !predicate(v) {
				done = true
				return zero, false
			}
			return v, true
		},
	}
}

// DropWhile skips values while predicate holds, then yields the remainder.
func DropWhile[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	dropping := true
	return Iterator[T]{
		next: func() (T, bool) {
			for {
				v, ok := it.Next()
				if !ok {
					var zero T
					return zero, false
				}
				if dropping && predicate(v) {
					continue
				}
				dropping = false
				return v, true
			}
		},
	}
}

// ForEach exhausts the iterator, applying fn to every value.
func ForEach[T any](it Iterator[T], fn func(T)) {
	for {
		v, ok := it.Next()
		if !ok {
			return
		}
		fn(v)
	}
}
