package fromback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fromback "github.com/fromback/fromback-go"
)

func TestIndexAccessors(t *testing.T) {
	front := fromback.Front(3)
	assert.Equal(t, 3, front.Offset())
	assert.False(t, front.FromBack())

	back := fromback.Back(2)
	assert.Equal(t, 2, back.Offset())
	assert.True(t, back.FromBack())
}

func TestIndexZeroValue(t *testing.T) {
	var ix fromback.Index
	assert.Equal(t, fromback.Front(0), ix)
}

func TestRangeZeroValue(t *testing.T) {
	var rng fromback.Range
	assert.Equal(t, fromback.All(), rng)
}

func TestRangeBuilder(t *testing.T) {
	rng := fromback.From(fromback.Front(2)).To(fromback.Back(3))

	start, ok := rng.Start()
	require.True(t, ok)
	assert.Equal(t, fromback.Front(2), start)

	end, ok := rng.End()
	require.True(t, ok)
	assert.Equal(t, fromback.Back(3), end)

	assert.False(t, rng.Inclusive())
}

func TestRangeBuilderOrderIndependent(t *testing.T) {
	a := fromback.From(fromback.Front(2)).To(fromback.Front(7))
	b := fromback.To(fromback.Front(7)).From(fromback.Front(2))
	assert.Equal(t, a, b)
}

func TestRangeBuilderInclusive(t *testing.T) {
	rng := fromback.Through(fromback.Back(1))
	assert.True(t, rng.Inclusive())

	// To overrides an earlier Through.
	rng = fromback.Through(fromback.Back(1)).To(fromback.Back(1))
	assert.False(t, rng.Inclusive())
}

func TestRangeOpenBounds(t *testing.T) {
	all := fromback.All()

	_, ok := all.Start()
	assert.False(t, ok)
	_, ok = all.End()
	assert.False(t, ok)
	assert.False(t, all.Inclusive())
}

func TestIndexString(t *testing.T) {
	assert.Equal(t, "3", fromback.Front(3).String())
	assert.Equal(t, "^3", fromback.Back(3).String())
	assert.Equal(t, "0", fromback.Front(0).String())
	assert.Equal(t, "^0", fromback.Back(0).String())
}

func TestRangeString(t *testing.T) {
	type testCase struct {
		name string
		rng  fromback.Range
		want string
	}

	cases := []testCase{
		{"fully open", fromback.All(), ".."},
		{"start only", fromback.From(fromback.Front(2)), "2.."},
		{"back start only", fromback.From(fromback.Back(2)), "^2.."},
		{"end only", fromback.To(fromback.Back(3)), "..^3"},
		{"inclusive end only", fromback.Through(fromback.Front(7)), "..=7"},
		{"both endpoints", fromback.From(fromback.Front(2)).To(fromback.Back(3)), "2..^3"},
		{"both endpoints inclusive", fromback.From(fromback.Back(5)).Through(fromback.Back(1)), "^5..=^1"},
		{"zero offsets", fromback.From(fromback.Front(0)).To(fromback.Front(0)), "0..0"},
	}

	for _, tCase := range cases {
		t.Run(tCase.name, func(t *testing.T) {
			assert.Equal(t, tCase.want, tCase.rng.String())
		})
	}
}

func TestNegativeOffsetPanics(t *testing.T) {
	assert.Panics(t, func() { fromback.Front(-1) })
	assert.Panics(t, func() { fromback.Back(-1) })
}
