package kernel

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"
)

// Location classifies a coordinate against a ring. OnBoundary is its own value
// rather than a flag hanging off Inside/Outside: a point exactly on an edge is
// neither, and the winding count alone can't say which side it "belongs" to.
type Location int

const (
	Outside Location = iota
	Inside
	OnBoundary
)

func (l Location) String() string {
	switch l {
	case Inside:
		return "inside"
	case OnBoundary:
		return "boundary"
	default:
		return "outside"
	}
}

// Containment is the immutable result of a containment test: the signed
// winding number and the location it implies. When Location is OnBoundary the
// winding number is still reported but carries no inside/outside meaning.
type Containment struct {
	Winding  int
	Location Location
}

// String is colored for interactive debugging: green inside, red outside,
// cyan on the boundary.
func (c Containment) String() string {
	s := fmt.Sprintf("%s (winding %d)", c.Location, c.Winding)
	switch c.Location {
	case Inside:
		return aurora.Green(s).String()
	case OnBoundary:
		return aurora.Cyan(s).String()
	default:
		return aurora.Red(s).String()
	}
}

// ContainmentTest classifies a target coordinate against a closed ring by
// winding number. Each ring edge that crosses the target's horizontal is
// scored through the shared orientation predicate: counterclockwise upward
// crossings count +1, clockwise downward crossings −1. Non-zero total means
// the target is inside.
//
// The test memoizes its result; SetTarget and SetBoundaryCheck invalidate the
// cache. A single test value must not be shared across goroutines while its
// configuration can change.
type ContainmentTest struct {
	ring           Ring
	target         Coordinate
	verifyBoundary bool
	pm             *PrecisionModel
	orient         orientFunc

	result Containment
	done   bool
}

// NewContainmentTest validates the ring eagerly (closure, minimum size). The
// ring is not copied; the caller must not mutate it while the test is live.
func NewContainmentTest(ring Ring, target Coordinate, pm *PrecisionModel) *ContainmentTest {
	validateRing("ring", ring)
	return &ContainmentTest{ring: ring, target: target, pm: pm, orient: orientWith(pm)}
}

// SetTarget moves the test to a new coordinate, discarding the cached result.
func (t *ContainmentTest) SetTarget(target Coordinate) {
	t.target = target
	t.done = false
}

// SetBoundaryCheck enables or disables boundary verification. Without it, a
// target on an edge is only detected when a crossing edge happens to be
// collinear with it; with it, a fallback scan checks every edge.
func (t *ContainmentTest) SetBoundaryCheck(on bool) {
	t.verifyBoundary = on
	t.done = false
}

func (t *ContainmentTest) Result() Containment {
	if !t.done {
		t.result = t.compute()
		t.done = true
	}
	return t.result
}

func (t *ContainmentTest) compute() Containment {
	winding := 0
	onBoundary := false

	for i := 0; i+1 < len(t.ring); i++ {
		start, end := t.ring[i], t.ring[i+1]
		switch {
		case start.Y <= t.target.Y && t.target.Y < end.Y:
			// Upward crossing.
			switch t.orient(t.target, start, end) {
			case CounterClockwise:
				winding++
			case Collinear:
				onBoundary = true
			}
		case start.Y > t.target.Y && t.target.Y >= end.Y:
			// Downward crossing.
			switch t.orient(t.target, start, end) {
			case Clockwise:
				winding--
			case Collinear:
				onBoundary = true
			}
		}
	}

	if t.verifyBoundary && !onBoundary {
		onBoundary = t.onAnyEdge()
	}

	location := Outside
	switch {
	case onBoundary:
		location = OnBoundary
	case winding != 0:
		location = Inside
	}
	return Containment{Winding: winding, Location: location}
}

// onAnyEdge is the fallback boundary scan: collinear with an edge and within
// its bounding box. It catches targets on horizontal edges, which the
// crossing rules deliberately skip.
func (t *ContainmentTest) onAnyEdge() bool {
	for i := 0; i+1 < len(t.ring); i++ {
		if t.onSegment(t.ring[i], t.ring[i+1]) {
			return true
		}
	}
	return false
}

func (t *ContainmentTest) onSegment(a, b Coordinate) bool {
	if t.orient(a, b, t.target) != Collinear {
		return false
	}
	eps := t.pm.tolerance()
	return t.target.X >= math.Min(a.X, b.X)-eps && t.target.X <= math.Max(a.X, b.X)+eps &&
		t.target.Y >= math.Min(a.Y, b.Y)-eps && t.target.Y <= math.Max(a.Y, b.Y)+eps
}

// Contains reports whether the target is properly inside the polygon: a
// non-zero winding against the shell and a zero winding against every hole.
// Targets on the shell or on a hole boundary report false.
func (p Polygon) Contains(target Coordinate, pm *PrecisionModel) bool {
	shell := NewContainmentTest(p.Shell, target, pm)
	shell.SetBoundaryCheck(true)
	if r := shell.Result(); r.Location != Inside {
		return false
	}
	for _, hole := range p.Holes {
		test := NewContainmentTest(hole, target, pm)
		test.SetBoundaryCheck(true)
		if r := test.Result(); r.Location != Outside {
			return false
		}
	}
	return true
}
