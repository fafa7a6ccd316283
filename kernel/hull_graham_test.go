package kernel

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExactHullSquareWithInterior(t *testing.T) {
	points := []Coordinate{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 4, Y: 4},
		{X: 0, Y: 4},
		{X: 2, Y: 2}, // interior
		{X: 1, Y: 1}, // interior
	}
	hull := NewExactHull(points, nil).Result()
	assert.Equal(t, []Coordinate{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 4, Y: 4},
		{X: 0, Y: 4},
	}, hull)
}

func TestExactHullDropsCollinearEdgePoints(t *testing.T) {
	points := []Coordinate{
		{X: 0, Y: 0},
		{X: 2, Y: 0}, // on the bottom edge
		{X: 4, Y: 0},
		{X: 4, Y: 4},
		{X: 0, Y: 4},
	}
	hull := NewExactHull(points, nil).Result()
	assert.Len(t, hull, 4)
	assert.NotContains(t, hull, Coordinate{X: 2, Y: 0})
}

func TestExactHullClosedResult(t *testing.T) {
	points := []Coordinate{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3}}
	closed := NewExactHull(points, nil).ClosedResult()
	require.NotEmpty(t, closed)
	assert.Equal(t, closed[0], closed[len(closed)-1])
	assert.Len(t, closed, 4)
}

func TestExactHullDegenerates(t *testing.T) {
	assert.Empty(t, NewExactHull([]Coordinate{}, nil).Result())
	assert.Len(t, NewExactHull([]Coordinate{{X: 1, Y: 1}}, nil).Result(), 1)
	assert.Len(t, NewExactHull([]Coordinate{{X: 1, Y: 1}, {X: 2, Y: 2}}, nil).Result(), 2)

	// All collinear: degenerates to the extreme pair.
	collinear := []Coordinate{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	hull := NewExactHull(collinear, nil).Result()
	assert.Equal(t, []Coordinate{{X: 0, Y: 0}, {X: 3, Y: 3}}, hull)

	three := []Coordinate{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}
	assert.Equal(t, []Coordinate{{X: 0, Y: 0}, {X: 2, Y: 2}}, NewExactHull(three, nil).Result())
}

func TestExactHullNilPoints(t *testing.T) {
	assert.Panics(t, func() { NewExactHull(nil, nil) })
}

// Consecutive hull edges must always turn counterclockwise, and every input
// point must land inside or on the hull.
func TestExactHullConvexityAndContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		points := make([]Coordinate, 50)
		for i := range points {
			angle := rng.Float64() * 2 * math.Pi
			radius := rng.Float64() * 10
			points[i] = Coordinate{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
		}

		builder := NewExactHull(points, nil)
		hull := builder.Result()
		require.GreaterOrEqual(t, len(hull), 3)

		for i := range hull {
			a := hull[i]
			b := hull[(i+1)%len(hull)]
			c := hull[(i+2)%len(hull)]
			assert.Equal(t, CounterClockwise, Orient(a, b, c, nil))
		}

		assertAllInsideOrOn(t, points, builder.ClosedResult())
	}
}

func TestExactHullMemoization(t *testing.T) {
	points := []Coordinate{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 2, Y: 2},
	}
	builder := NewExactHull(points, nil)

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
	assert.Equal(t, callsAfterFirst, calls, "second Result must not re-run the scan")
	assert.Same(t, &first[0], &second[0], "cached slice must be returned as-is")
}

func TestExactHullFixture(t *testing.T) {
	ring := LoadFixture("notch")
	points := []Coordinate(ring[:len(ring)-1])
	builder := NewExactHull(points, nil)
	hull := builder.Result()
	// The notch corner is reflex and must not survive.
	assert.NotContains(t, hull, Coordinate{X: 60, Y: 60})
	assertAllInsideOrOn(t, points, builder.ClosedResult())
}

// assertAllInsideOrOn checks the superset property shared by both hull
// builders: no input point may escape the hull ring.
func assertAllInsideOrOn(t *testing.T, points []Coordinate, closedHull []Coordinate) {
	t.Helper()
	ring := Ring(closedHull)
	test := NewContainmentTest(ring, Coordinate{}, nil)
	test.SetBoundaryCheck(true)
	for _, p := range points {
		test.SetTarget(p)
		result := test.Result()
		assert.NotEqual(t, Outside, result.Location, "point %v escaped the hull", p)
	}
}
