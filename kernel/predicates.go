package kernel

import "math"

// The predicate layer. Everything that needs a "which way does this turn"
// decision, in both hull builders and the winding-number test, goes through
// Orient with the same precision model, so the components can never disagree
// about the same three coordinates.

// Orient returns the turn direction of the ordered triple (a, b, c): the sign
// of cross(b−a, c−a), computed after snapping the coordinates through pm.
// Collinear is returned when the cross product's magnitude is within the
// model's tolerance of zero. A nil pm means the floating default.
//
// The function is total over finite coordinates. NaN or infinite ordinates are
// undefined behavior, not validated.
func Orient(a, b, c Coordinate, pm *PrecisionModel) Orientation {
	a = pm.makePrecise2D(a)
	b = pm.makePrecise2D(b)
	c = pm.makePrecise2D(c)
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if math.Abs(cross) <= pm.tolerance() {
		return Collinear
	}
	if cross > 0 {
		return CounterClockwise
	}
	return Clockwise
}

// Distance is the Euclidean distance between a and b in the XY plane.
func Distance(a, b Coordinate) float64 {
	return length2D(b.X-a.X, b.Y-a.Y)
}

// Distance3D includes the Z ordinate.
func Distance3D(a, b Coordinate) float64 {
	dx, dy, dz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func length2D(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}

// orientFunc lets a builder carry its predicate as a closure over its
// precision model. Tests wrap it with a counter to prove memoization.
type orientFunc func(a, b, c Coordinate) Orientation

func orientWith(pm *PrecisionModel) orientFunc {
	return func(a, b, c Coordinate) Orientation {
		return Orient(a, b, c, pm)
	}
}
