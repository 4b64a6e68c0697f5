package seq

// Head returns the first element of the slice.
func Head[T any](in []T) (T, bool) {
	if len(in) == 0 {
		var zero T
		return zero, false
	}
	return in[0], true
}

// Last returns the final element of the slice.
func Last[T any](in []T) (T, bool) {
	if len(in) == 0 {
		var zero T
		return zero, false
	}
	return in[len(in)-1], true
}

// At returns the element at index, reporting false when index is out of range.
func At[T any](in []T, index int) (T, bool) {
	if index < 0 || index >= len(in) {
		var zero T
		return zero, false
	}
	return in[index], true
}

// Append returns a new slice with elements added after in. The input slices
// are never mutated and share no backing array with the result.
func Append[T any](in []T, elements ...T) []T {
	out := make([]T, 0, len(in)+len(elements))
	out = append(out, in...)
	return append(out, elements...)
}

// Prepend returns a new slice with elements placed before in.
func Prepend[T any](in []T, elements ...T) []T {
	out := make([]T, 0, len(in)+len(elements))
	out = append(out, elements...)
	return append(out, in...)
}
