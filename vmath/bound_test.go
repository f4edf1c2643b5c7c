package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cube(h float64) Extents {
	return Extents{Right: h, Left: -h, Up: h, Down: -h, Front: h, Rear: -h}
}

func TestNestedBoxesOverlapOnAllAxes(t *testing.T) {
	outer := ComputeBound(cube(1), Identity())
	inner := ComputeBound(cube(0.5), Identity())

	assert.True(t, IntervalsOverlap(outer.X, inner.X))
	assert.True(t, IntervalsOverlap(outer.Y, inner.Y))
	assert.True(t, IntervalsOverlap(outer.Z, inner.Z))
	assert.True(t, BoundsOverlap(outer, inner))
	assert.True(t, BoundsOverlap(inner, outer))
}

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjoint", Interval{Max: 1, Min: 0}, Interval{Max: 3, Min: 2}, false},
		{"touching", Interval{Max: 1, Min: 0}, Interval{Max: 2, Min: 1}, true},
		{"contained", Interval{Max: 5, Min: -5}, Interval{Max: 1, Min: 0}, true},
		{"partial", Interval{Max: 1, Min: -1}, Interval{Max: 2, Min: 0.5}, true},
		{"degenerate point inside", Interval{Max: 0, Min: 0}, Interval{Max: 1, Min: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntervalsOverlap(tt.a, tt.b))
			assert.Equal(t, tt.want, IntervalsOverlap(tt.b, tt.a))
		})
	}
}

func TestBoundsOverlapNeedsEveryAxis(t *testing.T) {
	a := ComputeBound(cube(0.5), Identity())
	b := ComputeBound(cube(0.5), Translation(0, 0, 2))
	assert.False(t, BoundsOverlap(a, b))
	assert.True(t, FootprintOverlap(a, ComputeBound(cube(0.5), Translation(0, 5, 0))))
	assert.False(t, BoundsOverlap(a, ComputeBound(cube(0.5), Translation(0, 5, 0))))
}

func TestComputeBoundTranslatesAndScales(t *testing.T) {
	e := Extents{Right: 1, Left: -1, Up: 2, Down: 0, Front: 0.5, Rear: -0.5}
	b := ComputeBound(e, Translation(2, 1, -3).Times(Scaling(0.5, 0.5, 0.5)))

	assert.InDelta(t, 2.5, b.X.Max, 1e-12)
	assert.InDelta(t, 1.5, b.X.Min, 1e-12)
	assert.InDelta(t, 2.0, b.Y.Max, 1e-12)
	assert.InDelta(t, 1.0, b.Y.Min, 1e-12)
	assert.InDelta(t, -2.75, b.Z.Max, 1e-12)
	assert.InDelta(t, -3.25, b.Z.Min, 1e-12)
}

func TestComputeBoundUsesAllCornersUnderRotation(t *testing.T) {
	// A tall thin box pitched a quarter turn lies along Z
	e := Extents{Right: 0.1, Left: -0.1, Up: 1, Down: 0, Front: 0.1, Rear: -0.1}
	b := ComputeBound(e, RotationX(math.Pi/2))

	require.GreaterOrEqual(t, b.Y.Max, b.Y.Min)
	assert.InDelta(t, 0.1, b.Y.Max, 1e-9)
	assert.InDelta(t, -0.1, b.Y.Min, 1e-9)
	assert.InDelta(t, 1.0, b.Z.Max, 1e-9)
	assert.InDelta(t, 0.0, b.Z.Min, 1e-9)
}
