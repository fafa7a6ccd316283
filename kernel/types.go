package kernel

// Coordinate is an (X, Y, Z) triple. Z is carried along but ignored by the 2D
// algorithms. Coordinates are plain values; equality is exact numeric equality.
// Tolerance-aware comparison lives in the predicates, not here, so that two
// coordinates that merely look the same under a coarse precision model are
// still distinguishable as inputs.
type Coordinate struct {
	X, Y, Z float64
}

// Equals2D reports exact equality of X and Y.
func (c Coordinate) Equals2D(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y
}

// Equals3D reports exact equality of all three ordinates.
func (c Coordinate) Equals3D(other Coordinate) bool {
	return c.Equals2D(other) && c.Z == other.Z
}

// Sub gives the XY vector from other to c.
func (c Coordinate) Sub(other Coordinate) Vector {
	return Vector{c.X - other.X, c.Y - other.Y}
}

// Vector is a 2D direction in the XY plane. Only the clipper uses these; the
// other algorithms phrase everything in terms of the orientation predicate.
type Vector struct {
	X, Y float64
}

func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vector) Length() float64 {
	return length2D(v.X, v.Y)
}

// Normalized returns a unit-length copy of v. The zero vector normalizes to
// itself rather than dividing by zero.
func (v Vector) Normalized() Vector {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector{v.X / l, v.Y / l}
}

// Perp rotates v by 90° counterclockwise.
func (v Vector) Perp() Vector {
	return Vector{-v.Y, v.X}
}

// Orientation is the turn direction of three ordered coordinates. The numeric
// values are the sign of the cross product, so an Orientation can be compared
// and negated arithmetically.
type Orientation int

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "CW"
	case CounterClockwise:
		return "CCW"
	default:
		return "collinear"
	}
}

// Envelope is an axis-aligned bounding box. Its only job in this package is to
// be a convenient way of specifying a rectangular clip window.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// Ring returns the envelope's corners as a closed counterclockwise ring.
func (e Envelope) Ring() Ring {
	return Ring{
		{X: e.MinX, Y: e.MinY},
		{X: e.MaxX, Y: e.MinY},
		{X: e.MaxX, Y: e.MaxY},
		{X: e.MinX, Y: e.MaxY},
		{X: e.MinX, Y: e.MinY},
	}
}

// Line is an open polyline.
type Line []Coordinate

// Segment is a single line piece.
type Segment struct {
	Start, End Coordinate
}

// Ring is a closed coordinate sequence: the first and last coordinates must be
// equal, and there must be at least 3 distinct coordinates before closure.
// Construction does not enforce this; the algorithms validate it eagerly at
// their public entry points.
type Ring []Coordinate

// Closed reports whether the ring's first and last coordinates coincide.
func (r Ring) Closed() bool {
	return len(r) >= 2 && r[0].Equals2D(r[len(r)-1])
}

// SignedArea is twice the shoelace area; positive for counterclockwise rings.
func (r Ring) SignedArea() float64 {
	var sum float64
	for i := 0; i+1 < len(r); i++ {
		sum += r[i].X*r[i+1].Y - r[i+1].X*r[i].Y
	}
	return sum
}

// Polygon is a shell ring plus zero or more hole rings.
type Polygon struct {
	Shell Ring
	Holes []Ring
}

// CoordStack is a push/pop stack of coordinates, used by the hull scans.
type CoordStack []Coordinate

func (s *CoordStack) Push(c Coordinate) {
	*s = append(*s, c)
}

func (s *CoordStack) Pop() Coordinate {
	c := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return c
}

func (s *CoordStack) Peek() Coordinate {
	return (*s)[len(*s)-1]
}

// Under returns the coordinate just below the top of the stack.
func (s *CoordStack) Under() Coordinate {
	return (*s)[len(*s)-2]
}

func (s *CoordStack) Len() int {
	return len(*s)
}
