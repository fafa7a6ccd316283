package kernel

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproxHullSquareWithInterior(t *testing.T) {
	points := []Coordinate{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 4, Y: 4},
		{X: 0, Y: 4},
		{X: 2, Y: 2},
		{X: 1, Y: 3},
	}
	hull := NewApproxHull(points, nil).Result()
	require.GreaterOrEqual(t, len(hull), 5)
	assert.Equal(t, hull[0], hull[len(hull)-1], "result must be closed")
	assertAllInsideOrOn(t, points, hull)
}

func TestApproxHullFewerThanFourPoints(t *testing.T) {
	assert.Empty(t, NewApproxHull([]Coordinate{}, nil).Result())

	// Duplicates collapse, order is first-seen, no closure.
	points := []Coordinate{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 1}}
	assert.Equal(t, []Coordinate{{X: 1, Y: 1}, {X: 2, Y: 2}}, NewApproxHull(points, nil).Result())
}

func TestApproxHullVerticalPointSet(t *testing.T) {
	points := []Coordinate{
		{X: 3, Y: 0}, {X: 3, Y: 7}, {X: 3, Y: 2}, {X: 3, Y: 5},
	}
	hull := NewApproxHull(points, nil).Result()
	assert.Equal(t, []Coordinate{{X: 3, Y: 0}, {X: 3, Y: 7}}, hull)
}

func TestApproxHullNilPoints(t *testing.T) {
	assert.Panics(t, func() { NewApproxHull(nil, nil) })
}

// Two above-chord points sharing a bin next to an empty one is the worst case
// for retention: only one of them is kept, and the discarded one falls outside
// the retained chain. It must be folded back into the result.
func TestApproxHullNeverExcludesInput(t *testing.T) {
	points := []Coordinate{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 4, Y: 10}, {X: 4.9, Y: 9.9},
	}
	hull := NewApproxHull(points, nil).Result()
	assert.Equal(t, hull[0], hull[len(hull)-1])
	assert.Contains(t, hull, Coordinate{X: 4.9, Y: 9.9})
	assertAllInsideOrOn(t, points, hull)
}

// The approximate hull may keep more vertices than the exact one, but it must
// never let an input point escape. Points sampled on a circle are adversarial
// for bin retention: every point is a hull vertex, so each bin discards points
// that lie outside the chain of its single retained candidate.
func TestApproxHullSupersetContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var points []Coordinate
	for i := 0; i < 60; i++ {
		angle := rng.Float64() * 2 * math.Pi
		points = append(points, Coordinate{
			X: 50 * math.Cos(angle),
			Y: 50 * math.Sin(angle),
		})
	}

	hull := NewApproxHull(points, nil).Result()
	require.GreaterOrEqual(t, len(hull), 4)
	assert.Equal(t, hull[0], hull[len(hull)-1])
	assertAllInsideOrOn(t, points, hull)
}

// Interior points can survive into the approximate result when they win a
// bin, growing the polygon beyond the minimal hull, but never shrinking it.
func TestApproxHullMayExceedExactHull(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	square := []Coordinate{
		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 20}, {X: 0, Y: 20},
	}
	points := append([]Coordinate{}, square...)
	for i := 0; i < 30; i++ {
		points = append(points, Coordinate{
			X: 1 + rng.Float64()*18,
			Y: 1 + rng.Float64()*18,
		})
	}

	hull := NewApproxHull(points, nil).Result()
	assert.Equal(t, hull[0], hull[len(hull)-1])
	// The square's corners bound everything, so whatever the bins retain,
	// the corners must all be vertices of the result.
	for _, corner := range square {
		assert.Contains(t, hull, corner)
	}
	assertAllInsideOrOn(t, points, hull)
}

func TestApproxHullMemoization(t *testing.T) {
	points := []Coordinate{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 2, Y: 1},
	}
	builder := NewApproxHull(points, nil)

	calls := 0
	inner := builder.orient
	builder.orient = func(a, b, c Coordinate) Orientation {
		calls++
		return inner(a, b, c)
	}

	first := builder.Result()
	require.NotZero(t, calls)
	callsAfterFirst := calls

	second := builder.Result()
	assert.Equal(t, callsAfterFirst, calls)
	assert.Same(t, &first[0], &second[0])
}

func TestApproxHullFixture(t *testing.T) {
	ring := LoadFixture("comb")
	points := []Coordinate(ring[:len(ring)-1])
	hull := NewApproxHull(points, nil).Result()
	assert.Equal(t, hull[0], hull[len(hull)-1])
	assertAllInsideOrOn(t, points, hull)
}
