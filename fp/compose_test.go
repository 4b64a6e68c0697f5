package fp_test

import (
	"testing"

	"github.com/lambdadepot/fn/fp"
)

func TestCurryHigherArities(t *testing.T) {
	sum3 := func(a, b, c int) int { return a + b + c }
	if fp.Curry3(sum3)(1)(2)(3) != 6 {
		t.Fatalf("unexpected curry3 result")
	}
	sum4 := func(a, b, c, d int) int { return a + b + c + d }
	if fp.Curry4(sum4)(1)(2)(3)(4) != 10 {
		t.Fatalf("unexpected curry4 result")
	}
}

func TestPartialApplication(t *testing.T) {
	concat := func(a, b string) string { return a + b }
	hello := fp.Partial(concat, "hello ")
	if hello("world") != "hello world" {
		t.Fatalf("unexpected partial result")
	}
	clamp := func(lo, hi, v int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	percent := fp.Partial2(clamp, 0, 100)
	if percent(150) != 100 || percent(-5) != 0 || percent(42) != 42 {
		t.Fatalf("unexpected clamp results")
	}
}

func TestFlip(t *testing.T) {
	div := func(a, b float64) float64 { return a / b }
	half := fp.Flip(div)(2)
	if half(10) != 5 {
		t.Fatalf("unexpected flip result")
	}
}

func TestPredicateCombinators(t *testing.T) {
	positive := func(v int) bool { return v > 0 }
	even := func(v int) bool { return v%2 == 0 }

	if !fp.And(positive, even)(4) || fp.And(positive, even)(3) {
		t.Fatalf("unexpected conjunction results")
	}
	if !fp.Or(positive, even)(-2) || fp.Or(positive, even)(-3) {
		t.Fatalf("unexpected disjunction results")
	}
	if fp.Not(positive)(1) || !fp.Not(positive)(-1) {
		t.Fatalf("unexpected negation results")
	}
	if !fp.And[int]()(7) {
		t.Fatalf("empty conjunction must hold")
	}
	if fp.Or[int]()(7) {
		t.Fatalf("empty disjunction must not hold")
	}
}

func TestConstantAndIdentity(t *testing.T) {
	if fp.Identity("v") != "v" {
		t.Fatalf("identity changed its input")
	}
	get := fp.Constant(42)
	if get() != 42 || get() != 42 {
		t.Fatalf("constant should always return the same value")
	}
}
