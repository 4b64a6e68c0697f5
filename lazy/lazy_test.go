package lazy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lambdadepot/fn/lazy"
)

func TestGetMemoizesFirstAccess(t *testing.T) {
	calls := 0
	l := lazy.New(func() int {
		calls++
		return 42
	})

	assert.False(t, l.IsEvaluated())
	assert.Zero(t, calls, "construction must not evaluate")

	assert.Equal(t, 42, l.Get())
	assert.Equal(t, 42, l.Get())
	assert.Equal(t, 1, calls, "supplier runs exactly once")
	assert.True(t, l.IsEvaluated())
}

func TestOfIsPreEvaluated(t *testing.T) {
	l := lazy.Of("ready")
	assert.True(t, l.IsEvaluated())
	assert.Equal(t, "ready", l.Get())
}

func TestMapDefersAndMemoizes(t *testing.T) {
	baseCalls, mapCalls := 0, 0
	base := lazy.New(func() int {
		baseCalls++
		return 10
	})
	doubled := lazy.Map(base, func(v int) int {
		mapCalls++
		return v * 2
	})

	assert.Zero(t, baseCalls)
	assert.Zero(t, mapCalls)

	assert.Equal(t, 20, doubled.Get())
	assert.Equal(t, 20, doubled.Get())
	assert.Equal(t, 1, baseCalls)
	assert.Equal(t, 1, mapCalls)

	// The source is shared: a second derivation reuses the cached base value.
	tripled := lazy.Map(base, func(v int) int { return v * 3 })
	assert.Equal(t, 30, tripled.Get())
	assert.Equal(t, 1, baseCalls)
}

func TestFlatMapChains(t *testing.T) {
	base := lazy.Of(2)
	chained := lazy.FlatMap(base, func(v int) *lazy.Lazy[int] {
		return lazy.New(func() int { return v + 5 })
	})
	assert.Equal(t, 7, chained.Get())
}

func TestNilSupplierPanics(t *testing.T) {
	assert.PanicsWithValue(t, "lazy: nil supplier", func() {
		lazy.New[int](nil)
	})
	assert.PanicsWithValue(t, "lazy: nil mapper", func() {
		lazy.Map[int, int](lazy.Of(1), nil)
	})
}
