package seq_test

import (
	"reflect"
	"testing"

	"github.com/lambdadepot/fn/seq"
)

func TestHeadLastAt(t *testing.T) {
	values := []int{10, 20, 30}
	if v, ok := seq.Head(values); !ok || v != 10 {
		t.Fatalf("unexpected head %v %v", v, ok)
	}
	if v, ok := seq.Last(values); !ok || v != 30 {
		t.Fatalf("unexpected last %v %v", v, ok)
	}
	if v, ok := seq.At(values, 1); !ok || v != 20 {
		t.Fatalf("unexpected element %v %v", v, ok)
	}
	if _, ok := seq.At(values, 3); ok {
		t.Fatalf("expected out of range to report false")
	}
	if _, ok := seq.At(values, -1); ok {
		t.Fatalf("expected negative index to report false")
	}
	if _, ok := seq.Head([]int{}); ok {
		t.Fatalf("expected empty head to report false")
	}
}

func TestAppendPrependImmutability(t *testing.T) {
	base := []int{1, 2}
	appended := seq.Append(base, 3, 4)
	prepended := seq.Prepend(base, 0)

	if !reflect.DeepEqual(appended, []int{1, 2, 3, 4}) {
		t.Fatalf("unexpected append result: %v", appended)
	}
	if !reflect.DeepEqual(prepended, []int{0, 1, 2}) {
		t.Fatalf("unexpected prepend result: %v", prepended)
	}
	if !reflect.DeepEqual(base, []int{1, 2}) {
		t.Fatalf("input slice mutated: %v", base)
	}
	appended[0] = 99
	if base[0] != 1 {
		t.Fatalf("result shares backing array with input")
	}
}

func TestIteratorOfAndForEach(t *testing.T) {
	var sum int
	seq.ForEach(seq.Of(1, 2, 3), func(v int) { sum += v })
	if sum != 6 {
		t.Fatalf("unexpected sum %d", sum)
	}
	if _, ok := seq.Empty[int]().Next(); ok {
		t.Fatalf("empty iterator must not yield")
	}
}
