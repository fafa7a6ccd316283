package kernel

import "sort"

// ExactHull computes the exact convex hull of a point set with the Graham
// scan: pick the lowest point as a pivot, sort the rest by polar angle around
// it, then sweep a stack that discards anything which would make the chain
// turn the wrong way. O(n log n), and the result is minimal: every returned
// coordinate is a hull vertex (collinear edge points are dropped).
//
// The builder computes its result on the first call to Result and caches it.
// A single builder is meant to be owned by one goroutine; distinct builders
// over distinct inputs are fully independent.
type ExactHull struct {
	points []Coordinate
	orient orientFunc

	result []Coordinate
	done   bool
}

// NewExactHull validates eagerly: a nil point sequence is a caller error. The
// input is copied, since the scan reorders coordinates. A nil precision model
// means the floating default.
func NewExactHull(points []Coordinate, pm *PrecisionModel) *ExactHull {
	if points == nil {
		fatalf("points: must not be nil")
	}
	copied := make([]Coordinate, len(points))
	copy(copied, points)
	return &ExactHull{points: copied, orient: orientWith(pm)}
}

// Result returns the hull vertices in counterclockwise order, starting at the
// pivot. The sequence is not closed; see ClosedResult. Fewer than 3 input
// points, or an entirely collinear input, degenerate to the lower-dimensional
// chain (a point or a segment's endpoints).
func (h *ExactHull) Result() []Coordinate {
	if !h.done {
		h.result = h.compute()
		h.done = true
	}
	return h.result
}

// ClosedResult appends the first hull vertex to close the ring, for callers
// that need a closed ring.
func (h *ExactHull) ClosedResult() []Coordinate {
	result := h.Result()
	if len(result) == 0 {
		return result
	}
	closed := make([]Coordinate, len(result), len(result)+1)
	copy(closed, result)
	return append(closed, closed[0])
}

func (h *ExactHull) compute() []Coordinate {
	pts := h.points
	if len(pts) <= 2 {
		return pts
	}

	h.preSort(pts)
	return h.scan(pts)
}

// preSort swaps the lowest point (minimum Y, ties broken by minimum X) into
// position 0, then sorts the remainder radially around it. Collinear ties are
// ordered nearer-first so the scan visits them in chain order.
func (h *ExactHull) preSort(pts []Coordinate) {
	for i := 1; i < len(pts); i++ {
		if pts[i].Y < pts[0].Y || (pts[i].Y == pts[0].Y && pts[i].X < pts[0].X) {
			pts[0], pts[i] = pts[i], pts[0]
		}
	}

	pivot := pts[0]
	rest := pts[1:]
	sort.Slice(rest, func(i, j int) bool {
		switch h.orient(pivot, rest[i], rest[j]) {
		case CounterClockwise:
			return true
		case Clockwise:
			return false
		default:
			return Distance(pivot, rest[i]) < Distance(pivot, rest[j])
		}
	})
}

func (h *ExactHull) scan(pts []Coordinate) []Coordinate {
	stack := make(CoordStack, 0, len(pts))
	stack.Push(pts[0])
	stack.Push(pts[1])
	for _, candidate := range pts[2:] {
		// Discard turns that aren't counterclockwise; collinear points on
		// the chain are dropped too, keeping the hull minimal. Seeding the
		// stack with only two points matters here: it lets the scan pop
		// points that sit on the pivot's first ray.
		for stack.Len() >= 2 && h.orient(stack.Under(), stack.Peek(), candidate) != CounterClockwise {
			stack.Pop()
		}
		stack.Push(candidate)
	}
	return []Coordinate(stack)
}
